package importance

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	dErrors "churnsight/pkg/domain-errors"
)

func writeSheet(t *testing.T, headers []string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, h))
	}
	for ri, row := range rows {
		for ci, v := range row {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	path := filepath.Join(t.TempDir(), "feature_importance.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestLoadSheet(t *testing.T) {
	path := writeSheet(t,
		[]string{ColumnFeature, ColumnScore},
		[][]any{
			{"current_balance", 0.31},
			{"vintage", 0.12},
			{"age", 0.2},
		},
	)

	rows, err := LoadSheet(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Sorted ascending by score for the bar chart.
	assert.Equal(t, "vintage", rows[0].Feature)
	assert.Equal(t, "age", rows[1].Feature)
	assert.Equal(t, "current_balance", rows[2].Feature)
	assert.InDelta(t, 0.31, rows[2].Score, 1e-9)
}

func TestLoadSheet_ExtraColumnsIgnored(t *testing.T) {
	path := writeSheet(t,
		[]string{"Rank", ColumnFeature, ColumnScore},
		[][]any{{1, "age", 0.2}},
	)

	rows, err := LoadSheet(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "age", rows[0].Feature)
}

func TestLoadSheet_MissingFile(t *testing.T) {
	_, err := LoadSheet(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeArtifactMissing))
}

func TestLoadSheet_MissingColumns(t *testing.T) {
	path := writeSheet(t, []string{"Feature", "Score"}, [][]any{{"age", 0.2}})
	_, err := LoadSheet(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Feature Importance Score")
}

func TestLoadSheet_NonNumericScore(t *testing.T) {
	path := writeSheet(t,
		[]string{ColumnFeature, ColumnScore},
		[][]any{{"age", "high"}},
	)
	_, err := LoadSheet(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age")
}
