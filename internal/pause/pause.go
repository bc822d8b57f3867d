// Package pause provides the busy-wait hint used by the spinning paths of the
// mcs package.
//
// Exactly one implementation of Pause is compiled in, selected by build tag:
//
//	(default)            hosted: give the timeslice back to the Go scheduler
//	-tags mcs_freestanding   emit a short burst of processor spin-wait hints
//
// Pause never blocks, never takes a lock and holds no state, so it may be
// called once per spin iteration for as long as a waiter needs to spin.
package pause
