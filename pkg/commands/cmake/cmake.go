// Package cmake implements the configure, build and test commands. Each one
// resolves the configuration, refreshes the generated scripts, provisions the
// container and then runs a cmake or ctest invocation inside it.
package cmake

import (
	"context"

	"github.com/wincross/wincross/pkg/commands/internal"
	"github.com/wincross/wincross/pkg/invoke"
	"github.com/wincross/wincross/pkg/logging"
)

// ConfigureOptions defines the options for the Configure command.
type ConfigureOptions struct {
	internal.Invocation
	// NoVcpkg skips the vcpkg bootstrap
	NoVcpkg bool
	// CMake are extra single arguments; CMakeArgs are shell-split
	CMake     []string
	CMakeArgs []string
}

// Configure runs `cmake -S -B` in the container.
func Configure(ctx context.Context, opts ConfigureOptions) error {
	log := logging.GetLogger("commands.configure")

	eff, ctr, err := opts.Start()
	if err != nil {
		return err
	}
	extra, err := combine(opts.CMake, opts.CMakeArgs)
	if err != nil {
		return err
	}

	steps := internal.Steps{MtWrapper: true, Generated: true, WineRuntime: true, Vcpkg: !opts.NoVcpkg}
	if err := ctr.Prepare(ctx, eff, steps); err != nil {
		return err
	}

	args := invoke.ConfigureArgs(eff, extra)
	log.Debug().Strs("args", args).Msg("Configuring")
	return ctr.Run(ctx, eff, args, false)
}

// BuildOptions defines the options for the Build command.
type BuildOptions struct {
	internal.Invocation
	// BuildDir overrides the build directory (host path or container path)
	BuildDir  string
	NoVcpkg   bool
	Build     []string
	BuildArgs []string
}

// Build runs `cmake --build` in the container.
func Build(ctx context.Context, opts BuildOptions) error {
	log := logging.GetLogger("commands.build")

	eff, ctr, err := opts.Start()
	if err != nil {
		return err
	}
	extra, err := combine(opts.Build, opts.BuildArgs)
	if err != nil {
		return err
	}
	args, err := invoke.BuildArgs(eff, extra, opts.BuildDir)
	if err != nil {
		return err
	}

	steps := internal.Steps{Generated: true, WineRuntime: true, Vcpkg: !opts.NoVcpkg}
	if err := ctr.Prepare(ctx, eff, steps); err != nil {
		return err
	}

	log.Debug().Strs("args", args).Msg("Building")
	return ctr.Run(ctx, eff, args, false)
}

// TestOptions defines the options for the Test command.
type TestOptions struct {
	internal.Invocation
	// TestDir overrides the directory ctest runs in
	TestDir   string
	CTest     []string
	CTestArgs []string
}

// Test runs ctest in the container.
func Test(ctx context.Context, opts TestOptions) error {
	log := logging.GetLogger("commands.test")

	eff, ctr, err := opts.Start()
	if err != nil {
		return err
	}
	extra, err := combine(opts.CTest, opts.CTestArgs)
	if err != nil {
		return err
	}
	args, err := invoke.TestArgs(eff, extra, opts.TestDir)
	if err != nil {
		return err
	}

	if err := ctr.Prepare(ctx, eff, internal.Steps{Generated: true, WineRuntime: true}); err != nil {
		return err
	}

	log.Debug().Strs("args", args).Msg("Testing")
	return ctr.Run(ctx, eff, args, false)
}

func combine(single, raw []string) ([]string, error) {
	split, err := invoke.SplitArgs(raw)
	if err != nil {
		return nil, err
	}
	return append(append([]string{}, single...), split...), nil
}
