// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO. The only shared mutable state is the
// DebounceGate timestamp; everything else runs on the caller's goroutine.
package services
