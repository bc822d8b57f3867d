//go:build !mcs_freestanding

package pause

import "runtime"

// Hosted reports whether Pause yields to the scheduler.
const Hosted = true

// Pause yields the processor, allowing other goroutines to run.
func Pause() { runtime.Gosched() }
