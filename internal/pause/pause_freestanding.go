//go:build mcs_freestanding

package pause

import (
	_ "unsafe" // for linkname
)

// Hosted reports whether Pause yields to the scheduler.
const Hosted = false

// Pause signals the processor that the caller is in a spin-wait loop
// (PAUSE on amd64, YIELD on arm64). It does not enter the scheduler.
//
//go:nosplit
func Pause() { runtime_doSpin() }

// nolint:all
//
//go:linkname runtime_doSpin sync.runtime_doSpin
//goland:noinspection ALL
func runtime_doSpin()
