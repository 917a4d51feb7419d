// Package table reads beam input data from spreadsheet files and resolves
// which columns carry which quantity. Two schemas are supported: a raw
// point-load table (position + magnitude, names inferred) and a strict
// precomputed diagram table (x + shear + moment, names matched exactly).
package table

import (
	"sort"
	"strings"

	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobeam/internal/engine"
)

// Options controls how a workbook is read. The keyword lists drive the
// name-based column inference for the raw load schema; they are threaded
// here explicitly rather than living in package state.
type Options struct {
	// Sheet selects the worksheet by name. Empty means the first sheet.
	Sheet string

	// PositionKeys and MagnitudeKeys are matched case-insensitively as
	// substrings against column headers.
	PositionKeys  []string
	MagnitudeKeys []string
}

// DefaultOptions returns the standard inference keyword sets.
func DefaultOptions() Options {
	return Options{
		PositionKeys:  []string{"pos", "x", "dist", "location"},
		MagnitudeKeys: []string{"load", "force", "p", "w", "magnitude"},
	}
}

// Accepted header names for the strict precomputed-diagram schema. Exact
// case-insensitive match only; three unlabeled columns are too ambiguous
// to fall back on positions here.
var (
	xNames      = []string{"x", "position", "pos"}
	shearNames  = []string{"shear force", "shear_force", "shear", "shearforce"}
	momentNames = []string{"bending moment", "bending_moment", "moment", "bendingmoment"}
)

// ReadLoads reads a point-load table from an Excel workbook. Column
// resolution is best effort: keyword inference first, then a documented
// fallback to the first two columns in declared order (column 1 position,
// column 2 magnitude). Rows with blank cells in the selected columns are
// dropped; remaining cells must coerce to numbers. The result is sorted
// by position, stable among ties.
func ReadLoads(path string, opts Options) ([]engine.LoadPoint, error) {
	rows, err := readRows(path, opts.Sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := normalizeHeaders(rows[0])
	posIdx, magIdx, err := resolveLoadColumns(headers, opts)
	if err != nil {
		return nil, err
	}

	var loads []engine.LoadPoint
	for i, row := range rows[1:] {
		posCell := cellAt(row, posIdx)
		magCell := cellAt(row, magIdx)
		if posCell == "" || magCell == "" {
			continue
		}
		pos, err := cast.ToFloat64E(posCell)
		if err != nil {
			return nil, engine.WrapError(engine.KindType, err,
				"row %d: position %q is not numeric", i+2, posCell)
		}
		mag, err := cast.ToFloat64E(magCell)
		if err != nil {
			return nil, engine.WrapError(engine.KindType, err,
				"row %d: magnitude %q is not numeric", i+2, magCell)
		}
		loads = append(loads, engine.LoadPoint{Position: pos, Magnitude: mag})
	}

	sort.SliceStable(loads, func(a, b int) bool {
		return loads[a].Position < loads[b].Position
	})
	return loads, nil
}

// ReadSeries reads a precomputed (x, shear, moment) table. All three
// columns must be present by name; there is no positional fallback on
// this path.
func ReadSeries(path string, opts Options) (engine.Series, error) {
	rows, err := readRows(path, opts.Sheet)
	if err != nil {
		return engine.Series{}, err
	}
	if len(rows) == 0 {
		return engine.Series{}, engine.Errorf(engine.KindSchema, "sheet has no header row")
	}

	headers := normalizeHeaders(rows[0])
	xIdx, err := resolveExact(headers, xNames, "x")
	if err != nil {
		return engine.Series{}, err
	}
	shearIdx, err := resolveExact(headers, shearNames, "shear")
	if err != nil {
		return engine.Series{}, err
	}
	momentIdx, err := resolveExact(headers, momentNames, "moment")
	if err != nil {
		return engine.Series{}, err
	}

	type record struct{ x, v, m float64 }
	var recs []record
	for i, row := range rows[1:] {
		xCell := cellAt(row, xIdx)
		vCell := cellAt(row, shearIdx)
		mCell := cellAt(row, momentIdx)
		if xCell == "" || vCell == "" || mCell == "" {
			continue
		}
		var rec record
		if rec.x, err = cast.ToFloat64E(xCell); err != nil {
			return engine.Series{}, engine.WrapError(engine.KindType, err,
				"row %d: x %q is not numeric", i+2, xCell)
		}
		if rec.v, err = cast.ToFloat64E(vCell); err != nil {
			return engine.Series{}, engine.WrapError(engine.KindType, err,
				"row %d: shear %q is not numeric", i+2, vCell)
		}
		if rec.m, err = cast.ToFloat64E(mCell); err != nil {
			return engine.Series{}, engine.WrapError(engine.KindType, err,
				"row %d: moment %q is not numeric", i+2, mCell)
		}
		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(a, b int) bool { return recs[a].x < recs[b].x })

	s := engine.Series{
		X:      make([]float64, len(recs)),
		Shear:  make([]float64, len(recs)),
		Moment: make([]float64, len(recs)),
	}
	for i, rec := range recs {
		s.X[i] = rec.x
		s.Shear[i] = rec.v
		s.Moment[i] = rec.m
	}
	return s, nil
}

func readRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, engine.WrapError(engine.KindSourceUnavailable, err,
			"could not open workbook %q", path)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, engine.WrapError(engine.KindSourceUnavailable, err,
			"could not read sheet %q of %q", sheet, path)
	}
	return rows, nil
}

func normalizeHeaders(row []string) []string {
	headers := make([]string, len(row))
	for i, h := range row {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return headers
}

// resolveLoadColumns applies the inference tiers: keyword match for both
// roles, then first-two-columns fallback. The magnitude scan skips the
// column already claimed for position so headers like "Position_m" cannot
// satisfy both roles.
func resolveLoadColumns(headers []string, opts Options) (posIdx, magIdx int, err error) {
	posIdx = matchKeyword(headers, opts.PositionKeys, -1)
	magIdx = matchKeyword(headers, opts.MagnitudeKeys, posIdx)

	if posIdx >= 0 && magIdx >= 0 {
		return posIdx, magIdx, nil
	}
	if len(headers) < 2 {
		return 0, 0, engine.Errorf(engine.KindSchema,
			"could not infer columns and the table has fewer than two columns")
	}
	// best-effort fallback: first column is position, second is magnitude
	return 0, 1, nil
}

func matchKeyword(headers, keys []string, skip int) int {
	for i, h := range headers {
		if i == skip || h == "" {
			continue
		}
		for _, k := range keys {
			if strings.Contains(h, k) {
				return i
			}
		}
	}
	return -1
}

func resolveExact(headers, names []string, role string) (int, error) {
	for i, h := range headers {
		for _, n := range names {
			if h == n {
				return i, nil
			}
		}
	}
	return 0, engine.Errorf(engine.KindSchema, "missing required %s column (accepted names: %s)",
		role, strings.Join(names, ", "))
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
