// Package importance serves the static feature-importance ranking shown
// next to the prediction panel. The scores are computed by the offline
// training job and shipped as a spreadsheet; this package only reads and
// renders them.
package importance

import (
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	dErrors "churnsight/pkg/domain-errors"
)

// Column headers the sheet must carry. Extra columns are ignored.
const (
	ColumnFeature = "Feature"
	ColumnScore   = "Feature Importance Score"
)

// Row is one feature with its precomputed importance score.
type Row struct {
	Feature string  `json:"feature"`
	Score   float64 `json:"score"`
}

// LoadSheet reads the first worksheet of the spreadsheet at path and returns
// rows sorted ascending by score, the order the horizontal bar chart wants.
// A missing file is terminal, like a missing model artifact: the sheet is a
// fixed deployment asset.
func LoadSheet(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeArtifactMissing, "open feature importance sheet")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, dErrors.New(dErrors.CodeInternal, "feature importance sheet has no worksheets")
	}
	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "read feature importance sheet")
	}
	if len(cells) == 0 {
		return nil, dErrors.New(dErrors.CodeInternal, "feature importance sheet is empty")
	}

	featureCol, scoreCol := -1, -1
	for i, h := range cells[0] {
		switch strings.TrimSpace(h) {
		case ColumnFeature:
			featureCol = i
		case ColumnScore:
			scoreCol = i
		}
	}
	if featureCol < 0 || scoreCol < 0 {
		return nil, dErrors.Newf(dErrors.CodeInternal,
			"feature importance sheet needs %q and %q columns", ColumnFeature, ColumnScore)
	}

	rows := make([]Row, 0, len(cells)-1)
	for _, rec := range cells[1:] {
		if featureCol >= len(rec) || scoreCol >= len(rec) {
			continue
		}
		name := strings.TrimSpace(rec[featureCol])
		if name == "" {
			continue
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(rec[scoreCol]), 64)
		if err != nil {
			return nil, dErrors.Newf(dErrors.CodeInternal, "feature %s has non-numeric score %q", name, rec[scoreCol])
		}
		rows = append(rows, Row{Feature: name, Score: score})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Score < rows[j].Score })
	return rows, nil
}
