// Package testutil provides common utility functions for testing.
package testutil

// Float64Ptr returns a pointer to the given float64, for populating optional
// numeric fields in test fixtures.
func Float64Ptr(v float64) *float64 {
	return &v
}

// IntPtr returns a pointer to the given int.
func IntPtr(v int) *int {
	return &v
}
