package churn

// The bank customer schema the shipped artifacts were fitted with: 18
// features, 14 scaled, 4 categorical. The encoding tables and defaults are
// fixed by the training pipeline and must not drift from it.

var bankFeatures = []Feature{
	{Name: "vintage", Kind: KindScaled},
	{Name: "age", Kind: KindScaled},
	{Name: "gender", Kind: KindCategorical},
	{Name: "dependents", Kind: KindScaled},
	{Name: "occupation", Kind: KindCategorical},
	{Name: "city", Kind: KindCategorical},
	{Name: "customer_nw_category", Kind: KindCategorical},
	{Name: "current_balance", Kind: KindScaled},
	{Name: "previous_month_end_balance", Kind: KindScaled},
	{Name: "average_monthly_balance_prevQ", Kind: KindScaled},
	{Name: "average_monthly_balance_prevQ2", Kind: KindScaled},
	{Name: "current_month_credit", Kind: KindScaled},
	{Name: "previous_month_credit", Kind: KindScaled},
	{Name: "current_month_debit", Kind: KindScaled},
	{Name: "previous_month_debit", Kind: KindScaled},
	{Name: "current_month_balance", Kind: KindScaled},
	{Name: "previous_month_balance", Kind: KindScaled},
	{Name: "days_since_last_transaction", Kind: KindScaled},
}

var bankEncodings = Encodings{
	"gender": {"Male": 1, "Female": 0},
	"occupation": {
		"salaried":      1,
		"self-employed": 2,
		"unemployed":    3,
	},
	"customer_nw_category": {"1": 1, "2": 2, "3": 3},
	"city":                 {"1020": 1020, "1030": 1030},
}

var bankDefaults = map[string]any{
	"vintage":                        60.0,
	"age":                            35.0,
	"gender":                         "Male",
	"dependents":                     2.0,
	"occupation":                     "salaried",
	"city":                           "1020",
	"customer_nw_category":           "1",
	"current_balance":                50000.0,
	"previous_month_end_balance":     45000.0,
	"average_monthly_balance_prevQ":  42000.0,
	"average_monthly_balance_prevQ2": 40000.0,
	"current_month_credit":           15000.0,
	"previous_month_credit":          13000.0,
	"current_month_debit":            12000.0,
	"previous_month_debit":           11000.0,
	"current_month_balance":          40000.0,
	"previous_month_balance":         43000.0,
	"days_since_last_transaction":    30.0,
}

// BankSchema returns the fixed schema for the bank churn artifacts.
func BankSchema() *Schema {
	s, err := NewSchema(bankFeatures, bankEncodings, bankDefaults)
	if err != nil {
		// The tables above are compiled in; a failure here is a programming
		// error caught by the schema tests.
		panic(err)
	}
	return s
}
