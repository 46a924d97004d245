// Package store defines the persistence contracts this API uses to reach
// the CRM's tables. Handlers depend on these interfaces only; the postgres
// package implements them and internal/mocks provides in-memory versions
// for tests.
package store
