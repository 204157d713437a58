package wincross

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Dockerized Windows builds via MSVC+Wine"
	MsgInitShort       = "Initialize .wincross configuration"
	MsgConfigureShort  = "Configure the build with CMake"
	MsgBuildShort      = "Build the project"
	MsgTestShort       = "Run tests"
	MsgShellShort      = "Open an interactive shell in the container"
	MsgDoctorShort     = "Validate configuration"
	MsgShowShort       = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgWroteBuildConfig = "Wrote build config: %s\n"
	MsgVersionFormat    = "wincross version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand = "no command specified"

	// Global flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot          = "Project root (defaults to nearest git/CMake root)"
	MsgFlagBuildConfig   = "Path to build config (defaults to .wincross/build_config.json)"
	MsgFlagProjectConfig = "Path to project config (default: wincross.toml)"
	MsgFlagRuntime       = "Container runtime binary (default: docker)"
	MsgFlagSettings      = "Path to user settings file (default: $XDG_CONFIG_HOME/wincross/config.toml)"

	// init flags
	MsgFlagForce         = "Overwrite existing config"
	MsgFlagImage         = "Docker image tag"
	MsgFlagInitBuildDir  = "Build directory (default: .wincross/build-windows)"
	MsgFlagGenerator     = "CMake generator"
	MsgFlagBuildType     = "CMake build type"
	MsgFlagProfile       = "Project profile name from project config"
	MsgFlagToolchain     = "Toolchain spec name=host[:container[:ro|rw]]"
	MsgFlagMount         = "Extra mount host:container[:ro|rw]"
	MsgFlagEnv           = "Environment variable KEY=VALUE"
	MsgFlagPathPrepend   = "Container PATH prefix"
	MsgFlagInitCMake     = "Default CMake arg"
	MsgFlagInitCMakeArgs = "Default CMake args (single string)"
	MsgFlagVcpkg         = "Enable vcpkg"
	MsgFlagVcpkgRoot     = "vcpkg root directory (default: .wincross/vcpkg)"
	MsgFlagVcpkgCache    = "vcpkg binary cache directory (default: <vcpkg>/bincache)"
	MsgFlagVcpkgTriplet  = "vcpkg triplet"
	MsgFlagVcpkgPackages = "vcpkg packages to install"

	// configure/build/test flags
	MsgFlagNoVcpkg   = "Skip vcpkg bootstrap/install"
	MsgFlagCMake     = "Extra CMake args"
	MsgFlagCMakeArgs = "Extra CMake args (single string)"
	MsgFlagBuildDir  = "Override build directory (host path or /work/project/...)"
	MsgFlagBuild     = "Extra build args"
	MsgFlagBuildArgs = "Extra build args (single string)"
	MsgFlagTestDir   = "Override build directory for ctest (host path or /work/project/...)"
	MsgFlagCTest     = "Extra ctest args"
	MsgFlagCTestArgs = "Extra ctest args (single string)"
	MsgFlagFormat    = "Output format: json, toml or yaml"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
