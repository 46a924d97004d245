// Package main implements the entry point for the CRM mobile API server,
// the REST layer the field-sales app uses to reach the CRM database.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
