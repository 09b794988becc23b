// Package model defines the core domain models used throughout the application.
package model

// ExpenseType indicates whether an expense recurs at a stable amount or varies.
type ExpenseType string

const (
	// ExpenseFixed represents recurring, roughly constant-amount obligations
	// (subscriptions, utilities, rent, insurance).
	ExpenseFixed ExpenseType = "FIXED"
	// ExpenseVariable represents discretionary or amount-varying purchases
	// (groceries, dining, fuel, retail).
	ExpenseVariable ExpenseType = "VARIABLE"
)

// Valid reports whether the expense type is one of the known values.
func (t ExpenseType) Valid() bool {
	return t == ExpenseFixed || t == ExpenseVariable
}
