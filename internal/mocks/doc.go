// Package mocks provides in-memory implementations of the store interfaces
// for handler and service tests.
//
// MemoryStore backs every plain CRUD resource. The specialised stores embed
// it and add their resource actions, so a test can seed records directly:
//
//	clients := mocks.NewMemoryStore[*domain.Client]()
//	leads := mocks.NewLeadStore(clients)
//	leads.Seed(&domain.Lead{Name: "Ada", Status: domain.LeadNew})
//
// Every store has an Err field. When set, each method returns it, which is
// how tests exercise the error paths of their callers.
package mocks
