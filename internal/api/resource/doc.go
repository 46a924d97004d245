// Package resource shapes CRM records into the JSON the mobile app reads.
//
// Each entity has a XxxResource struct and a NewXxx transformer. Dates are
// rendered as YYYY-MM-DD, timestamps as RFC 3339 in UTC and money as a
// decimal string with two places. Secrets such as password hashes and
// mailbox passwords have no field in any resource.
package resource
