package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnhandledType(t *testing.T) {
	r := UnhandledType("parse(_:)", "(Int) -> Int")
	assert.Equal(t, LOW001, r.Code)
	assert.Equal(t, PhaseLowering, r.Phase)
	assert.Equal(t, SchemaV1, r.Schema)
	assert.Contains(t, r.Message, "parse(_:)")
	assert.Equal(t, "(Int) -> Int", r.Data["type"])
}

func TestWrapReportAndAsReport(t *testing.T) {
	r := InoutNotSupported("bump", "x", "Int32")
	err := WrapReport(r)
	require.Error(t, err)

	got, ok := AsReport(err)
	require.True(t, ok)
	assert.Same(t, r, got)

	wrapped := errors.New("outer: " + err.Error())
	_, ok = AsReport(wrapped)
	assert.False(t, ok, "a plain error should not unwrap to a Report")
}

func TestReportToJSON(t *testing.T) {
	r := UnresolvedType("translated(by:)", "Poiint")
	js, err := r.ToJSON(true)
	require.NoError(t, err)
	assert.True(t, strings.Contains(js, `"code":"LOW003"`))
	assert.True(t, strings.Contains(js, SchemaV1))
}

func TestWithFixChaining(t *testing.T) {
	r := ImproperResultLowering("sum(_:)").WithFix("file a bug: this should be unreachable", 0.1)
	require.NotNil(t, r.Fix)
	assert.Equal(t, 0.1, r.Fix.Confidence)
}
