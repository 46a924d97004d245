// Package task runs background maintenance jobs on a small worker pool.
// Jobs are scheduled on fixed intervals and executed off the request path,
// so housekeeping such as pruning dead mobile tokens never blocks a handler.
package task
