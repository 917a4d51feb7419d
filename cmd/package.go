package cmd

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	packageOut      string
	packageIncludes []string
)

var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Zip the input data and generated outputs for submission",
	Long: `Create a ZIP archive of the project deliverables: the input data,
the generated report and diagram images. Directories that do not exist
are skipped. The archive itself is never included.

Examples:
  gobeam package
  gobeam package --out beam-analysis.zip --include data --include output`,
	RunE: runPackage,
}

func init() {
	rootCmd.AddCommand(packageCmd)

	packageCmd.Flags().StringVarP(&packageOut, "out", "o", "submission.zip", "Output archive path")
	packageCmd.Flags().StringArrayVar(&packageIncludes, "include", []string{"data", "output", "assets"}, "Directories to include")
}

func runPackage(cmd *cobra.Command, args []string) error {
	out, err := os.Create(packageOut)
	if err != nil {
		return err
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	absOut, _ := filepath.Abs(packageOut)
	var count int
	for _, dir := range packageIncludes {
		if _, err := os.Stat(dir); err != nil {
			log.Debugf("skipping %s: %v", dir, err)
			continue
		}
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			if abs, _ := filepath.Abs(path); abs == absOut {
				return nil
			}
			if err := addToArchive(zw, path); err != nil {
				return err
			}
			count++
			return nil
		})
		if err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return err
	}
	log.Infof("wrote %s with %d files", packageOut, count)
	return nil
}

func addToArchive(zw *zip.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := zw.Create(filepath.ToSlash(path))
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	return err
}
