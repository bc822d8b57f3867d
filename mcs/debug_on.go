//go:build mcs_debug

package mcs

const debugChecks = true
