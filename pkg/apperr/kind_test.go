package apperr

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalog_Define_Panics(t *testing.T) {
	c := NewCatalog(Domain("SCRATCH"), "SCRATCH")
	c.Define("SCRATCH-001", "first", ShapeNotFound, "없음")

	tests := []struct {
		name string
		fn   func()
	}{
		{name: "duplicate code", fn: func() { c.Define("SCRATCH-001", "again", ShapeNotFound, "없음") }},
		{name: "duplicate name", fn: func() { c.Define("SCRATCH-002", "first", ShapeNotFound, "없음") }},
		{name: "foreign prefix", fn: func() { c.Define("GROUP-001", "foreign", ShapeNotFound, "없음") }},
		{name: "malformed suffix", fn: func() { c.Define("SCRATCH-1", "short", ShapeNotFound, "없음") }},
		{name: "unknown infix", fn: func() { c.Define("SCRATCH-XYZ-001", "infix", ShapeNotFound, "없음") }},
		{name: "empty message", fn: func() { c.Define("SCRATCH-003", "empty", ShapeNotFound, "") }},
		{name: "empty name", fn: func() { c.Define("SCRATCH-004", "", ShapeNotFound, "없음") }},
		{name: "zero shape", fn: func() { c.Define("SCRATCH-005", "noshape", Shape{}, "없음") }},
		{name: "retire live code", fn: func() { c.Retire("SCRATCH-001") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Panics(t, tt.fn)
		})
	}
}

func TestCatalog_RetiredCodeNeverReused(t *testing.T) {
	require.Contains(t, Retired(), "TESTING-099")
	require.Panics(t, func() {
		testCatalog.Define("TESTING-099", "resurrected", ShapeNotFound, "없음")
	})
}

func TestRegistry_Lookup(t *testing.T) {
	k, ok := Lookup("TESTING-PERM-001")
	require.True(t, ok)
	require.Same(t, kindPerm, k)

	_, ok = Lookup("TESTING-404")
	require.False(t, ok)
}

func TestRegistry_KindsOf(t *testing.T) {
	kinds := KindsOf(Domain("TESTING"))
	require.Len(t, kinds, 5)
	for i := 1; i < len(kinds); i++ {
		require.Less(t, kinds[i-1].Code, kinds[i].Code)
	}
	require.Contains(t, Domains(), Domain("TESTING"))
	require.Equal(t, testCatalog.Kinds()[0], kindTooSmall)
}

func TestKind_Accessors(t *testing.T) {
	require.Equal(t, "TESTING-004", kindXSS.Error())
	require.Equal(t, CategorySecurity, kindXSS.Category())
	require.Equal(t, http.StatusBadRequest, kindXSS.HTTPStatus())
	require.Equal(t, SeverityCritical, kindXSS.Severity())
	require.False(t, kindXSS.Retryable())
}
