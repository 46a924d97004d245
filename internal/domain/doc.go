// Package domain contains the CRM entities this API reads and writes, their
// enumerations, and the small amount of pure logic that belongs to them
// (estimate totals, state transitions, durations). The CRM core owns the
// records; these types mirror its tables.
package domain
