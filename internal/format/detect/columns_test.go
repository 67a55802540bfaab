package detect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poindexter12/maxwells-wallet/internal/format"
	"github.com/poindexter12/maxwells-wallet/internal/format/detect"
)

func TestClassifyColumns_NamesCorroboratedByValues(t *testing.T) {
	header := []string{"Date", "Description", "Amount"}
	rows := [][]string{
		{"01/15/2025", "COFFEE SHOP", "-4.50"},
		{"01/16/2025", "PAYCHECK", "2500.00"},
	}

	hints := detect.ClassifyColumns(header, rows)
	require.Len(t, hints, 3)

	assert.Equal(t, format.RoleDate, hints[0].Role)
	assert.InDelta(t, 1.0, hints[0].Confidence, 0.001)

	assert.Equal(t, format.RoleDescription, hints[1].Role)
	assert.InDelta(t, 0.9, hints[1].Confidence, 0.001)

	assert.Equal(t, format.RoleAmount, hints[2].Role)
	assert.InDelta(t, 1.0, hints[2].Confidence, 0.001)
}

func TestClassifyColumns_ValueShapeBeatsMeaninglessNames(t *testing.T) {
	header := []string{"A", "B", "C"}
	rows := [][]string{
		{"01/15/2025", "-4.50", "COFFEE SHOP"},
		{"01/16/2025", "2500.00", "PAYCHECK"},
	}

	hints := detect.ClassifyColumns(header, rows)
	require.Len(t, hints, 3)

	assert.Equal(t, format.RoleDate, hints[0].Role)
	assert.InDelta(t, 0.8, hints[0].Confidence, 0.001)

	assert.Equal(t, format.RoleAmount, hints[1].Role)
	assert.InDelta(t, 0.8, hints[1].Confidence, 0.001)

	assert.Equal(t, format.RoleUnknown, hints[2].Role)
	assert.Zero(t, hints[2].Confidence)
}

func TestClassifyColumns_ExactNameBeatsValueShape(t *testing.T) {
	// Reference ids are often all-numeric and would pass the amount shape
	// check; an exact header name must not be overridden by that.
	header := []string{"Reference"}
	rows := [][]string{{"1234567"}, {"7654321"}}

	hints := detect.ClassifyColumns(header, rows)
	require.Len(t, hints, 1)

	assert.Equal(t, format.RoleReference, hints[0].Role)
	assert.InDelta(t, 0.9, hints[0].Confidence, 0.001)
}

func TestClassifyColumns_PartialNameMatch(t *testing.T) {
	header := []string{"Posting Date", "Check or Slip #"}
	rows := [][]string{{"01/15/2025", ""}}

	hints := detect.ClassifyColumns(header, rows)
	require.Len(t, hints, 2)

	assert.Equal(t, format.RoleDate, hints[0].Role)
	assert.Equal(t, format.RoleReference, hints[1].Role)
}

func TestClassifyColumns_EmptyColumn(t *testing.T) {
	header := []string{"Date", ""}
	rows := [][]string{
		{"01/15/2025", ""},
		{"01/16/2025", ""},
	}

	hints := detect.ClassifyColumns(header, rows)
	require.Len(t, hints, 2)

	assert.Equal(t, format.RoleUnknown, hints[1].Role)
	assert.Zero(t, hints[1].Confidence)

	idx, isIndex := hints[1].Ref.Index()
	require.True(t, isIndex)
	assert.Equal(t, 1, idx)
}

func TestClassifyColumns_MostlyDatesIsWeakSignal(t *testing.T) {
	header := []string{"Posted"}
	rows := [][]string{
		{"01/15/2025"},
		{"01/16/2025"},
		{"01/17/2025"},
		{"01/18/2025"},
		{"pending"},
	}

	hints := detect.ClassifyColumns(header, rows)
	require.Len(t, hints, 1)

	assert.Equal(t, format.RoleDate, hints[0].Role)
	assert.InDelta(t, 0.5, hints[0].Confidence, 0.001)
}
