// Package request binds and validates inbound JSON for every write
// endpoint.
//
// Each endpoint has a request type carrying validate tags. Bind decodes the
// body, applies the struct rules, lets the request normalise itself through
// Prepare, and finally checks that referenced rows exist. Failures come back
// as a *ValidationError whose messages follow the CRM web app's wording.
package request
