//go:build !mcs_debug

package mcs

// debugChecks enables slot ownership assertions. Build with -tags mcs_debug to
// turn them on.
const debugChecks = false
