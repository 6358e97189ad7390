package domain

// AccountGroup is one row of the account workbook: a vendor-side tenant
// identified by its account identifier. Loaded once, read-only for the run.
type AccountGroup struct {
	Name string
	AID  string
}
