// Command artifactgen writes development stand-ins for the scoring
// artifacts: a fitted scaler, a small tree ensemble, and a feature
// importance sheet. Production artifacts come from the offline training
// job; this exists so a local server has something to load.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"churnsight/internal/artifact"
	"churnsight/internal/churn"
	"churnsight/internal/importance"
)

func main() {
	dir := flag.String("dir", "artifacts", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("create %s: %v", *dir, err)
	}

	schema := churn.BankSchema()
	scaled := schema.ScaledNames()

	// Rough training-set bounds for the 14 scaled columns, schema order.
	bounds := map[string][2]float64{
		"vintage":                        {0, 240},
		"age":                            {18, 90},
		"dependents":                     {0, 10},
		"current_balance":                {-5000, 1e6},
		"previous_month_end_balance":     {-5000, 1e6},
		"average_monthly_balance_prevQ":  {-5000, 1e6},
		"average_monthly_balance_prevQ2": {-5000, 1e6},
		"current_month_credit":           {0, 5e5},
		"previous_month_credit":          {0, 5e5},
		"current_month_debit":            {0, 5e5},
		"previous_month_debit":           {0, 5e5},
		"current_month_balance":          {-5000, 1e6},
		"previous_month_balance":         {-5000, 1e6},
		"days_since_last_transaction":    {0, 365},
	}
	mins := make([]float64, len(scaled))
	maxs := make([]float64, len(scaled))
	for i, name := range scaled {
		b, ok := bounds[name]
		if !ok {
			log.Fatalf("no bounds for scaled feature %s", name)
		}
		mins[i], maxs[i] = b[0], b[1]
	}
	scaler, err := artifact.NewMinMaxScaler(mins, maxs)
	if err != nil {
		log.Fatalf("build scaler: %v", err)
	}

	// A toy ensemble: long-tenured, active customers trend toward retention.
	model, err := artifact.NewTreeEnsemble(-0.2, schema.Len(),
		stump(0, 0.25, 0.9, -0.5),   // scaled vintage
		stump(17, 0.15, -0.3, 0.8),  // scaled days_since_last_transaction
		stump(7, 0.05, 0.6, -0.4),   // scaled current_balance
	)
	if err != nil {
		log.Fatalf("build model: %v", err)
	}

	if err := artifact.Save(filepath.Join(*dir, "churn_model.bin"), artifact.FormatModel, model); err != nil {
		log.Fatalf("save model: %v", err)
	}
	if err := artifact.Save(filepath.Join(*dir, "scaler.bin"), artifact.FormatScaler, scaler); err != nil {
		log.Fatalf("save scaler: %v", err)
	}
	if err := writeImportanceSheet(filepath.Join(*dir, "feature_importance.xlsx"), schema); err != nil {
		log.Fatalf("save importance sheet: %v", err)
	}

	log.Printf("wrote development artifacts to %s", *dir)
}

func stump(feature int, threshold, lo, hi float64) artifact.Tree {
	return artifact.Tree{Nodes: []artifact.Node{
		{Feature: feature, Threshold: threshold, Left: 1, Right: 2},
		{Leaf: true, Value: lo},
		{Leaf: true, Value: hi},
	}}
}

func writeImportanceSheet(path string, schema *churn.Schema) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &[]any{importance.ColumnFeature, importance.ColumnScore}); err != nil {
		return err
	}
	// Arbitrary but stable dev scores, tapering across the schema.
	for i, feat := range schema.Features() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		score := float64(schema.Len()-i) / float64(schema.Len()*4)
		if err := f.SetSheetRow(sheet, cell, &[]any{feat.Name, score}); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
