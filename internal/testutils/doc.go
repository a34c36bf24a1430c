// Package testutils provides HTTP and filesystem helpers shared by tests
// across packages.
//
// Helpers register their own cleanup through t.Cleanup, so callers do not
// need to close servers or response bodies themselves.
package testutils
