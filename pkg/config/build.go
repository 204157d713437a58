package config

import (
	"bytes"
	"encoding/json"
	"path/filepath"

	"github.com/wincross/wincross/pkg/errors"
	"github.com/wincross/wincross/pkg/filesystem"
	"github.com/wincross/wincross/pkg/logging"
)

// LoadBuildConfig reads the generated build config.
func LoadBuildConfig(fsys filesystem.FS, path string) (*BuildConfig, error) {
	if !filesystem.Exists(fsys, path) {
		return nil, errors.Newf(errors.ErrConfigMissing, "missing config: %s (run `wincross init`)", path).
			WithDetail("path", path)
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read build config %s", path)
	}
	var cfg BuildConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid config json in %s", path).
			WithDetail("path", path)
	}
	log := logging.GetLogger("config")
	log.Debug().Str("path", path).Int("version", cfg.Version).Msg("Loaded build config")
	return &cfg, nil
}

// MarshalBuildConfig renders cfg as two-space indented JSON with sorted keys
// and a trailing newline.
func MarshalBuildConfig(cfg *BuildConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode build config")
	}
	return buf.Bytes(), nil
}

// WriteBuildConfig writes cfg to path, creating parent directories. It
// refuses to replace an existing file unless force is set.
func WriteBuildConfig(fsys filesystem.FS, path string, cfg *BuildConfig, force bool) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
	}
	if filesystem.Exists(fsys, path) && !force {
		return errors.Newf(errors.ErrConfigExists, "config already exists: %s (use --force to overwrite)", path).
			WithDetail("path", path)
	}
	data, err := MarshalBuildConfig(cfg)
	if err != nil {
		return err
	}
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	log := logging.GetLogger("config")
	log.Info().Str("path", path).Bool("force", force).Msg("Wrote build config")
	return nil
}
