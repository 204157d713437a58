package wincross

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wincross/wincross/internal/version"
	"github.com/wincross/wincross/pkg/commands"
	"github.com/wincross/wincross/pkg/style"
)

func newInitCmd(g *globalFlags) *cobra.Command {
	var opts commands.InitOptions

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		Args:    cobra.NoArgs,
		GroupID: "setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Locations = g.locations()

			log.Info().
				Str("root", opts.Root).
				Int("toolchains", len(opts.Toolchains)).
				Bool("vcpkg", opts.Vcpkg).
				Msg("Initializing build config")

			result, err := commands.Init(opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgWroteBuildConfig, style.CodeStyle.Render(result.BuildConfigPath))
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.Force, "force", false, MsgFlagForce)
	f.StringVar(&opts.Image, "image", "", MsgFlagImage)
	f.StringVar(&opts.BuildDir, "build-dir", "", MsgFlagInitBuildDir)
	f.StringVar(&opts.Generator, "generator", "", MsgFlagGenerator)
	f.StringVar(&opts.BuildType, "build-type", "", MsgFlagBuildType)
	f.StringVar(&opts.Profile, "profile", "", MsgFlagProfile)
	f.StringArrayVar(&opts.Toolchains, "toolchain", nil, MsgFlagToolchain)
	f.StringArrayVar(&opts.Mounts, "mount", nil, MsgFlagMount)
	f.StringArrayVar(&opts.Env, "env", nil, MsgFlagEnv)
	f.StringArrayVar(&opts.PathPrepend, "path-prepend", nil, MsgFlagPathPrepend)
	f.StringArrayVar(&opts.CMake, "cmake", nil, MsgFlagInitCMake)
	f.StringArrayVar(&opts.CMakeArgs, "cmake-args", nil, MsgFlagInitCMakeArgs)
	f.BoolVar(&opts.Vcpkg, "vcpkg", false, MsgFlagVcpkg)
	f.StringVar(&opts.VcpkgRoot, "vcpkg-root", "", MsgFlagVcpkgRoot)
	f.StringVar(&opts.VcpkgCache, "vcpkg-cache", "", MsgFlagVcpkgCache)
	f.StringVar(&opts.VcpkgTriplet, "vcpkg-triplet", "", MsgFlagVcpkgTriplet)
	f.StringArrayVar(&opts.VcpkgPackages, "vcpkg-packages", nil, MsgFlagVcpkgPackages)

	return cmd
}

func newConfigureCmd(g *globalFlags) *cobra.Command {
	var opts commands.ConfigureOptions

	cmd := &cobra.Command{
		Use:     "configure",
		Short:   MsgConfigureShort,
		Args:    cobra.NoArgs,
		GroupID: "build",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Invocation = g.invocation()
			return commands.Configure(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.NoVcpkg, "no-vcpkg", false, MsgFlagNoVcpkg)
	f.StringArrayVar(&opts.CMake, "cmake", nil, MsgFlagCMake)
	f.StringArrayVar(&opts.CMakeArgs, "cmake-args", nil, MsgFlagCMakeArgs)
	return cmd
}

func newBuildCmd(g *globalFlags) *cobra.Command {
	var opts commands.BuildOptions

	cmd := &cobra.Command{
		Use:     "build",
		Short:   MsgBuildShort,
		Args:    cobra.NoArgs,
		GroupID: "build",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Invocation = g.invocation()
			return commands.Build(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.BuildDir, "build-dir", "", MsgFlagBuildDir)
	f.BoolVar(&opts.NoVcpkg, "no-vcpkg", false, MsgFlagNoVcpkg)
	f.StringArrayVar(&opts.Build, "build", nil, MsgFlagBuild)
	f.StringArrayVar(&opts.BuildArgs, "build-args", nil, MsgFlagBuildArgs)
	return cmd
}

func newTestCmd(g *globalFlags) *cobra.Command {
	var opts commands.TestOptions

	cmd := &cobra.Command{
		Use:     "test",
		Short:   MsgTestShort,
		Args:    cobra.NoArgs,
		GroupID: "build",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Invocation = g.invocation()
			return commands.Test(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.TestDir, "test-dir", "", MsgFlagTestDir)
	f.StringArrayVar(&opts.CTest, "ctest", nil, MsgFlagCTest)
	f.StringArrayVar(&opts.CTestArgs, "ctest-args", nil, MsgFlagCTestArgs)
	return cmd
}

func newShellCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "shell",
		Short:   MsgShellShort,
		Args:    cobra.NoArgs,
		GroupID: "build",
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Shell(cmd.Context(), commands.ShellOptions{Invocation: g.invocation()})
		},
	}
}

func newDoctorCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "doctor",
		Short:   MsgDoctorShort,
		Args:    cobra.NoArgs,
		GroupID: "setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := commands.Doctor(commands.DoctorOptions{
				Locations: g.locations(),
				Runtime:   g.resolved.Runtime,
			})
			if err != nil {
				return err
			}
			report.Render(cmd.OutOrStdout())
			return report.Err()
		},
	}
}

func newShowCmd(g *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "show",
		Short:   MsgShowShort,
		Args:    cobra.NoArgs,
		GroupID: "setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := commands.Show(commands.ShowOptions{
				Locations: g.locations(),
				Format:    format,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", MsgFlagFormat)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
