// Package models defines the core domain records for FinFusion.
//
// # Records
//
// The following records are persisted by the storage layer:
//   - Expense: a single personal expense
//   - Group: a named set of people who share expenses
//   - GroupExpense: an expense paid by one member and split across members
//   - Budget: a monthly spending cap per category, user-entered or AI-recommended
//
// Derived values (balances, settlements, summaries, forecasts) are not records;
// they live next to the code that computes them in ledger, settlement and analytics.
//
// # Conventions
//
//  1. Members are identified by name strings; there are no user accounts.
//  2. Relationships use ID strings, never pointers.
//  3. Calendar days are time.Time values at UTC midnight, see [ParseDate].
//  4. CreatedAt is a Unix timestamp in seconds.
package models
