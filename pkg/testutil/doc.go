// Package testutil provides utilities for testing wincross components.
//
// Key components:
//   - TestEnvironment: an in-memory project tree with helpers for writing
//     project and build configs
//   - RecordingRunner: a container.Runner that records argv instead of
//     starting processes
//
// Tests should define their fixtures inline and never touch the real
// filesystem or container runtime.
package testutil
