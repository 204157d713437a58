package provision

import (
	"path/filepath"

	"github.com/wincross/wincross/pkg/config"
	"github.com/wincross/wincross/pkg/errors"
	"github.com/wincross/wincross/pkg/filesystem"
	"github.com/wincross/wincross/pkg/logging"
)

// FixupZ3DLL copies installed/<triplet>/bin/libz3.dll next to the z3 tool
// binaries, where the z3 port's consumers expect it. It reports whether a
// copy happened; a missing source or an existing destination is a no-op.
func FixupZ3DLL(fsys filesystem.FS, v config.EffectiveVcpkg) (bool, error) {
	if v.Triplet == "" || v.HostRoot == "" {
		return false, nil
	}
	installed := filepath.Join(v.HostRoot, "installed", v.Triplet)
	src := filepath.Join(installed, "bin", "libz3.dll")
	dst := filepath.Join(installed, "tools", "z3", "libz3.dll")

	info, err := fsys.Stat(src)
	if err != nil || info.IsDir() || filesystem.Exists(fsys, dst) {
		return false, nil
	}

	data, err := fsys.ReadFile(src)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", src).
			WithDetail("path", src)
	}
	if err := fsys.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(dst)).
			WithDetail("path", filepath.Dir(dst))
	}
	if err := fsys.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dst).
			WithDetail("path", dst)
	}

	log := logging.GetLogger("provision")
	log.Info().Str("src", src).Str("dst", dst).Msg("Copied libz3.dll into tools/z3")
	return true, nil
}
