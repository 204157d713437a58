// Package invoke assembles CMake and CTest argument vectors from an effective
// configuration. Defaults are injected only when the user did not already
// pass an equivalent flag.
package invoke

import (
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/wincross/wincross/pkg/config"
	"github.com/wincross/wincross/pkg/errors"
	"github.com/wincross/wincross/pkg/paths"
)

// SplitArgs shell-splits each raw string and concatenates the words, so
// `--cmake-args "-DA=1 -DB=2"` yields two arguments.
func SplitArgs(raw []string) ([]string, error) {
	var out []string
	for _, r := range raw {
		words, err := shellquote.Split(r)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid argument string: %s", r)
		}
		out = append(out, words...)
	}
	return out, nil
}

// ConfigureArgs returns `cmake -S <root> -B <build> [-G gen]
// [-DCMAKE_BUILD_TYPE=..] defaults... extra...` in container paths.
func ConfigureArgs(eff *config.Effective, extra []string) []string {
	combined := append(append([]string{}, eff.CMakeDefaults...), extra...)

	args := []string{"cmake", "-S", eff.ContainerRoot, "-B", eff.ContainerBuildDir()}
	if eff.Generator != "" && !hasGenerator(combined) {
		args = append(args, "-G", eff.Generator)
	}
	if eff.BuildType != "" && !hasBuildType(combined) {
		args = append(args, "-DCMAKE_BUILD_TYPE="+eff.BuildType)
	}
	args = append(args, eff.CMakeDefaults...)
	return append(args, extra...)
}

// BuildArgs returns `cmake --build <dir> [--parallel] extra...`.
func BuildArgs(eff *config.Effective, extra []string, dirOverride string) ([]string, error) {
	dir, err := targetDir(eff, dirOverride)
	if err != nil {
		return nil, err
	}
	args := []string{"cmake", "--build", dir}
	if !hasParallel(extra) {
		args = append(args, "--parallel")
	}
	return append(args, extra...), nil
}

// TestArgs returns `ctest --test-dir <dir> [--output-on-failure] extra...`.
func TestArgs(eff *config.Effective, extra []string, dirOverride string) ([]string, error) {
	dir, err := targetDir(eff, dirOverride)
	if err != nil {
		return nil, err
	}
	args := []string{"ctest", "--test-dir", dir}
	if !contains(extra, "--output-on-failure") {
		args = append(args, "--output-on-failure")
	}
	return append(args, extra...), nil
}

// targetDir maps a --build-dir/--test-dir override to a container path. The
// override may already be a container path or a host path under the root.
func targetDir(eff *config.Effective, override string) (string, error) {
	if override == "" {
		return eff.ContainerBuildDir(), nil
	}
	if paths.IsContainerPath(override, eff.ContainerRoot) {
		return override, nil
	}
	return paths.ToContainerPath(paths.Absolute(override, eff.ProjectRoot), eff.ProjectRoot, eff.ContainerRoot)
}

func hasGenerator(args []string) bool {
	for _, a := range args {
		if a == "-G" || (strings.HasPrefix(a, "-G") && len(a) > 2) {
			return true
		}
	}
	return false
}

func hasBuildType(args []string) bool {
	for _, a := range args {
		if strings.HasPrefix(a, "-DCMAKE_BUILD_TYPE=") || strings.HasPrefix(a, "-DCMAKE_BUILD_TYPE:") {
			return true
		}
	}
	return false
}

func hasParallel(args []string) bool {
	for _, a := range args {
		if a == "--parallel" || strings.HasPrefix(a, "--parallel=") || strings.HasPrefix(a, "-j") {
			return true
		}
	}
	return false
}

func contains(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}
