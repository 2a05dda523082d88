package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	swifterrors "github.com/swiftlower/swiftlower/internal/errors"
	"github.com/swiftlower/swiftlower/internal/report"
)

func TestRun_CountsClassifyWarningsSeparatelyFromErrors(t *testing.T) {
	r := report.New()
	r.AddLowered("add")
	r.AddDiagnostic("Widget.init?", swifterrors.FailableInitializerSkipped("Widget"))
	r.AddDiagnostic("translated", swifterrors.ImproperResultLowering("translated"))

	lowered, warnings, errs := r.Counts()
	assert.Equal(t, 1, lowered)
	assert.Equal(t, 1, warnings)
	assert.Equal(t, 1, errs)
}

func TestRun_SummaryIncludesEveryDeclarationName(t *testing.T) {
	r := report.New()
	r.AddLowered("add")
	r.AddDiagnostic("badProp", swifterrors.UntypedPropertyDefaultedToVoid("badProp"))

	out := r.Summary()
	assert.Contains(t, out, "add")
	assert.Contains(t, out, "badProp")
	assert.Contains(t, out, "1 lowered, 1 warnings, 0 errors")
}
