// Package commands provides high-level command implementations for wincross.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the configuration, generation and container
// packages.
//
// Each command is implemented in its own subdirectory:
//   - initialize/ - Init command
//   - cmake/      - Configure, Build and Test commands
//   - shell/      - Shell command
//   - check/      - Doctor command
//   - show/       - Show command
//   - internal/   - Shared project loading and container execution
//
// This file re-exports the command functions so the CLI depends on one
// package.
package commands

import (
	"context"

	"github.com/wincross/wincross/pkg/commands/check"
	"github.com/wincross/wincross/pkg/commands/cmake"
	"github.com/wincross/wincross/pkg/commands/initialize"
	"github.com/wincross/wincross/pkg/commands/internal"
	"github.com/wincross/wincross/pkg/commands/shell"
	"github.com/wincross/wincross/pkg/commands/show"
	"github.com/wincross/wincross/pkg/doctor"
)

// Locations are the user-supplied overrides for finding the project.
type Locations = internal.Locations

// Invocation carries what every containerized command needs.
type Invocation = internal.Invocation

// Init records host settings in the build config and creates the state layout.
type InitOptions = initialize.InitOptions
type InitResult = initialize.InitResult

func Init(opts InitOptions) (*InitResult, error) {
	return initialize.Init(opts)
}

// Configure runs CMake's configure step in the container.
type ConfigureOptions = cmake.ConfigureOptions

func Configure(ctx context.Context, opts ConfigureOptions) error {
	return cmake.Configure(ctx, opts)
}

// Build runs `cmake --build` in the container.
type BuildOptions = cmake.BuildOptions

func Build(ctx context.Context, opts BuildOptions) error {
	return cmake.Build(ctx, opts)
}

// Test runs ctest in the container.
type TestOptions = cmake.TestOptions

func Test(ctx context.Context, opts TestOptions) error {
	return cmake.Test(ctx, opts)
}

// Shell opens an interactive container shell.
type ShellOptions = shell.ShellOptions

func Shell(ctx context.Context, opts ShellOptions) error {
	return shell.Shell(ctx, opts)
}

// Doctor runs every diagnostic and returns the report.
type DoctorOptions = check.DoctorOptions

func Doctor(opts DoctorOptions) (*doctor.Report, error) {
	return check.Doctor(opts)
}

// Show renders the effective configuration.
type ShowOptions = show.ShowOptions

func Show(opts ShowOptions) (string, error) {
	return show.Show(opts)
}
