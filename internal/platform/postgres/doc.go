// Package postgres implements the store interfaces against the CRM's
// PostgreSQL schema. Most resources share one generic table mapping that
// builds whitelisted, parameterised SQL; resource-specific actions that
// touch several tables run inside store.RunInTransaction.
package postgres
