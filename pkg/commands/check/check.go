// Package check implements `wincross doctor`.
package check

import (
	"os/exec"

	"github.com/wincross/wincross/pkg/commands/internal"
	"github.com/wincross/wincross/pkg/doctor"
	"github.com/wincross/wincross/pkg/filesystem"
)

// DoctorOptions defines the options for the Doctor command.
type DoctorOptions struct {
	internal.Locations
	FileSystem filesystem.FS
	Runtime    string
	// LookPath finds the runtime binary; nil means exec.LookPath
	LookPath func(string) (string, error)
}

// Doctor loads both configs and runs every diagnostic. A missing or broken
// build config is an error; everything else is reported as a problem.
func Doctor(opts DoctorOptions) (*doctor.Report, error) {
	s, err := internal.Open(opts.FileSystem, opts.Locations)
	if err != nil {
		return nil, err
	}
	build, err := s.LoadBuild()
	if err != nil {
		return nil, err
	}

	lookPath := opts.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	report := doctor.Check(s.Project, build, s.Root, doctor.Environment{
		FileSystem: s.FS,
		LookPath:   lookPath,
		Runtime:    opts.Runtime,
	})
	return &report, nil
}
