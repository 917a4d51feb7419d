package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKindThroughWrapping(t *testing.T) {
	err := Errorf(KindDomain, "span length must be positive, got %g", -1.0)
	wrapped := fmt.Errorf("analyze: %w", err)

	assert.True(t, IsKind(wrapped, KindDomain))
	assert.False(t, IsKind(wrapped, KindRange))
	assert.False(t, IsKind(errors.New("plain"), KindDomain))
}

func TestErrorMessages(t *testing.T) {
	e := Errorf(KindSchema, "missing column")
	assert.Equal(t, "schema error: missing column", e.Error())

	cause := errors.New("file truncated")
	w := WrapError(KindSourceUnavailable, cause, "could not open %q", "forces.xlsx")
	assert.Contains(t, w.Error(), "source unavailable")
	assert.Contains(t, w.Error(), "file truncated")
	assert.ErrorIs(t, w, cause)
}
