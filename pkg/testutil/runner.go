package testutil

import (
	"context"
)

// RecordingRunner records every argv passed to Run.
type RecordingRunner struct {
	Calls [][]string

	// RunFunc, when set, decides the result of each call.
	RunFunc func(argv []string) error
}

// Run records argv.
func (r *RecordingRunner) Run(_ context.Context, argv []string) error {
	r.Calls = append(r.Calls, append([]string{}, argv...))
	if r.RunFunc != nil {
		return r.RunFunc(argv)
	}
	return nil
}

// Commands returns the in-container command of each call: the words after
// the image argument that follows "-w <dir>".
func (r *RecordingRunner) Commands() [][]string {
	out := make([][]string, 0, len(r.Calls))
	for _, argv := range r.Calls {
		for i := 0; i+2 < len(argv); i++ {
			if argv[i] == "-w" {
				out = append(out, argv[i+3:])
				break
			}
		}
	}
	return out
}
