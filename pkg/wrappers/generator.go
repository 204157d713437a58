package wrappers

import (
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/wincross/wincross/pkg/config"
	"github.com/wincross/wincross/pkg/errors"
	"github.com/wincross/wincross/pkg/filesystem"
	"github.com/wincross/wincross/pkg/logging"
	"github.com/wincross/wincross/pkg/paths"
)

var envKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Generator writes wrapper scripts through a filesystem.
type Generator struct {
	fs  filesystem.FS
	log zerolog.Logger
}

// NewGenerator creates a generator over fsys.
func NewGenerator(fsys filesystem.FS) *Generator {
	return &Generator{fs: fsys, log: logging.GetLogger("wrappers")}
}

// EnsureAll generates winexe wrappers, the cross emulator and bin aliases.
// It returns every path it wrote.
func (g *Generator) EnsureAll(eff *config.Effective) ([]string, error) {
	var written []string
	for _, step := range []func(*config.Effective) ([]string, error){
		g.EnsureWinexeWrappers,
		g.EnsureCrossEmulator,
		g.EnsureBinAliases,
	} {
		out, err := step(eff)
		if err != nil {
			return written, err
		}
		written = append(written, out...)
	}
	return written, nil
}

// EnsureWinexeWrappers writes <state>/bin/<name> for every winexe wrapper.
func (g *Generator) EnsureWinexeWrappers(eff *config.Effective) ([]string, error) {
	if len(eff.WinexeWrappers) == 0 {
		return nil, nil
	}
	dir := paths.NewLayout(eff.StateDir).BinDir()
	if err := g.mkdir(dir); err != nil {
		return nil, err
	}

	winepath := WinepathValue(eff.WinepathPrepend)
	vars := eff.Placeholders.Map()
	var written []string
	for _, w := range eff.WinexeWrappers {
		if !config.IsBasename(w.Name) {
			return written, errors.Newf(errors.ErrWrapperNameInvalid, "winexe wrapper name must be a basename: %s", w.Name).
				WithDetail("name", w.Name)
		}
		exe, err := config.ExpandTemplate(w.Exe, vars, "winexe wrapper exe")
		if err != nil {
			return written, err
		}
		content := withWinepath(RenderWinexeWrapper(exe, w.UsesMsvcEnv(), eff.Defaults.MsvcBinDir()), winepath)
		path := filepath.Join(dir, w.Name)
		changed, err := g.writeIfChanged(path, content)
		if err != nil {
			return written, err
		}
		if changed {
			written = append(written, path)
		}
	}
	return written, nil
}

// EnsureCrossEmulator writes <state>/bin/wincross-emulator.
func (g *Generator) EnsureCrossEmulator(eff *config.Effective) ([]string, error) {
	for key := range eff.EmulatorEnv {
		if !envKeyPattern.MatchString(key) {
			return nil, errors.Newf(errors.ErrInvalidInput, "emulator_env key is not a valid variable name: %q", key).
				WithDetail("key", key)
		}
	}
	dir := paths.NewLayout(eff.StateDir).BinDir()
	if err := g.mkdir(dir); err != nil {
		return nil, err
	}
	content := withWinepath(RenderCrossEmulator(eff.EmulatorEnv, eff.Defaults.MsvcBinDir()), WinepathValue(eff.WinepathPrepend))
	path := filepath.Join(dir, paths.CrossEmulatorName)
	changed, err := g.writeIfChanged(path, content)
	if err != nil || !changed {
		return nil, err
	}
	return []string{path}, nil
}

// EnsureBinAliases writes <build>/bin/<alias> redirects.
func (g *Generator) EnsureBinAliases(eff *config.Effective) ([]string, error) {
	if len(eff.BinAliases) == 0 {
		return nil, nil
	}
	dir := filepath.Join(eff.BuildDir, "bin")
	if err := g.mkdir(dir); err != nil {
		return nil, err
	}
	var written []string
	for _, name := range eff.BinAliases {
		if !config.IsBasename(name) {
			return written, errors.Newf(errors.ErrWrapperNameInvalid, "bin alias must be a basename: %q", name).
				WithDetail("name", name)
		}
		path := filepath.Join(dir, name)
		changed, err := g.writeIfChanged(path, RenderBinAlias(eff.ContainerStateDir(), name))
		if err != nil {
			return written, err
		}
		if changed {
			written = append(written, path)
		}
	}
	return written, nil
}

// EnsureMtWrapper writes the mt.exe shim at path unless a file already exists.
func (g *Generator) EnsureMtWrapper(path string, d config.Defaults) ([]string, error) {
	if info, err := g.fs.Stat(path); err == nil {
		if info.IsDir() {
			return nil, directoryError(path)
		}
		return nil, nil
	}
	if err := g.mkdir(filepath.Dir(path)); err != nil {
		return nil, err
	}
	if err := g.write(path, RenderMtWrapper(d.MsvcBinDir())); err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// writeIfChanged writes content unless path already holds exactly that
// content. It reports whether it wrote.
func (g *Generator) writeIfChanged(path, content string) (bool, error) {
	if info, err := g.fs.Stat(path); err == nil {
		if info.IsDir() {
			return false, directoryError(path)
		}
		if existing, err := g.fs.ReadFile(path); err == nil && string(existing) == content {
			g.log.Trace().Str("path", path).Msg("Script unchanged")
			return false, nil
		}
	}
	if err := g.write(path, content); err != nil {
		return false, err
	}
	return true, nil
}

func (g *Generator) write(path, content string) error {
	if err := g.fs.WriteFile(path, []byte(content), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	if err := g.fs.Chmod(path, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to make %s executable", path)
	}
	g.log.Info().Str("path", path).Msg("Wrote script")
	return nil
}

func (g *Generator) mkdir(dir string) error {
	if err := g.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir)
	}
	return nil
}

func directoryError(path string) error {
	return errors.Newf(errors.ErrWrapperPathIsDirectory, "wrapper path is a directory: %s", path).
		WithDetail("path", path)
}
