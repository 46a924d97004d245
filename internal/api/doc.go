// Package api handles incoming HTTP requests for the mobile API. Each CRM
// resource has a handler that binds requests through package request,
// talks to its store, and answers with the transformers in package
// resource inside the shared JSON envelope.
package api
