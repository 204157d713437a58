// Package doctor diagnoses a project's build setup without running anything.
// Every problem is collected so one run reports them all.
package doctor

import (
	stderrors "errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/pterm/pterm"

	"github.com/wincross/wincross/pkg/config"
	"github.com/wincross/wincross/pkg/errors"
	"github.com/wincross/wincross/pkg/filesystem"
	"github.com/wincross/wincross/pkg/logging"
	"github.com/wincross/wincross/pkg/style"
)

// Problem is one failed check.
type Problem struct {
	Code    errors.ErrorCode
	Message string
}

// Report is the outcome of Check.
type Report struct {
	Problems []Problem
}

// OK reports whether every check passed.
func (r Report) OK() bool {
	return len(r.Problems) == 0
}

func (r *Report) add(code errors.ErrorCode, format string, args ...interface{}) {
	r.Problems = append(r.Problems, Problem{Code: code, Message: fmt.Sprintf(format, args...)})
}

// Environment supplies the host lookups Check needs.
type Environment struct {
	FileSystem filesystem.FS
	LookPath   func(string) (string, error)
	Runtime    string
}

// Check runs every diagnostic against the project and build configs.
func Check(project *config.ProjectConfig, build *config.BuildConfig, root string, env Environment) Report {
	var r Report
	if project == nil {
		project = &config.ProjectConfig{}
	}
	if build == nil {
		build = &config.BuildConfig{}
	}
	fsys := env.FileSystem

	runtime := env.Runtime
	if runtime == "" {
		runtime = "docker"
	}
	if env.LookPath != nil {
		if _, err := env.LookPath(runtime); err != nil {
			r.add(errors.ErrExternalToolMissing, "%s not found on PATH", runtime)
		}
	}

	recorded := build.ProjectRoot
	if !filesystem.Exists(fsys, recorded) {
		r.add(errors.ErrRootNotFound, "project_root missing: %s", recorded)
	}
	if filepath.Clean(recorded) != filepath.Clean(root) {
		r.add(errors.ErrProjectRootMismatch, "project_root does not match current repo: %s != %s", recorded, root)
	}

	profile := build.Profile
	if profile == "" {
		profile = project.DefaultProfile
	}
	selected := config.SelectProfile(project, profile)
	if err := config.ValidateProjectConfig(selected); err != nil {
		r.add(errors.ErrProjectConfigInvalid, "%s", messageOf(err))
	}

	toolchains := config.MergeToolchains(selected.Toolchains, build.Toolchains)
	names := make([]string, 0, len(toolchains))
	for name := range toolchains {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		tc := toolchains[name]
		if tc.HostPath == "" {
			r.add(errors.ErrToolchainPathMissing, "toolchain '%s' missing host_path in build config", name)
			continue
		}
		if tc.ContainerPath == "" {
			r.add(errors.ErrToolchainPathMissing, "toolchain '%s' missing container_path (project or build config)", name)
		}
		if !filesystem.Exists(fsys, tc.HostPath) {
			r.add(errors.ErrToolchainPathMissing, "toolchain '%s' path missing: %s", name, tc.HostPath)
		}
	}

	if vcpkgEnabled(selected.Vcpkg, build.Vcpkg) {
		v := build.Vcpkg
		switch {
		case v.HostRoot == "":
			r.add(errors.ErrVcpkgHostPathsMissing, "vcpkg enabled but host_root missing in build config")
		case !filesystem.Exists(fsys, v.HostRoot):
			r.add(errors.ErrVcpkgHostPathsMissing, "vcpkg root missing: %s", v.HostRoot)
		}
		switch {
		case v.HostBinaryCache == "":
			r.add(errors.ErrVcpkgHostPathsMissing, "vcpkg enabled but host_binary_cache missing in build config")
		case !filesystem.Exists(fsys, v.HostBinaryCache):
			r.add(errors.ErrVcpkgHostPathsMissing, "vcpkg binary cache missing: %s", v.HostBinaryCache)
		}
	}

	log := logging.GetLogger("doctor")
	log.Debug().Int("problems", len(r.Problems)).Msg("Doctor checks complete")
	return r
}

func vcpkgEnabled(project, build config.VcpkgConfig) bool {
	if build.Enabled != nil {
		return *build.Enabled
	}
	return project.Enabled != nil && *project.Enabled
}

func messageOf(err error) string {
	var wErr *errors.WincrossError
	if stderrors.As(err, &wErr) {
		return wErr.Message
	}
	return err.Error()
}

// Render writes a header and one line per problem, or a single success line
// for a clean report.
func (r Report) Render(w io.Writer) {
	if r.OK() {
		pterm.Success.WithWriter(w).Println("Doctor: OK")
		return
	}
	pterm.Fprintln(w, style.TitleStyle.Render(fmt.Sprintf("Doctor: %d problem(s)", len(r.Problems))))
	for _, p := range r.Problems {
		pterm.Fprintln(w, style.RenderStatusLine(style.StatusProblem, string(p.Code), p.Message))
	}
}

// Err returns a DOCTOR_FAILED error summarizing the report, or nil when it
// is clean.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	return errors.Newf(errors.ErrDoctorFailed, "doctor found %d problem(s)", len(r.Problems)).
		WithDetail("problems", len(r.Problems))
}
