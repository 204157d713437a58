// Package settings resolves per-invocation settings (root, config locations,
// container runtime) from built-in defaults, an optional user settings file,
// WINCROSS_* environment variables and command-line flags, in increasing
// precedence.
package settings

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/wincross/wincross/pkg/errors"
	"github.com/wincross/wincross/pkg/logging"
)

const (
	// EnvPrefix is the prefix of every environment setting
	EnvPrefix = "WINCROSS_"

	// EnvConfigDir overrides the user settings directory
	EnvConfigDir = "WINCROSS_CONFIG_DIR"

	// SettingsFile is the user settings file name
	SettingsFile = "config.toml"

	// DefaultRuntime is the container runtime binary
	DefaultRuntime = "docker"

	delim = "::"
)

// Keys are the koanf keys of the supported settings.
const (
	KeyRoot          = "root"
	KeyProjectConfig = "project_config"
	KeyBuildConfig   = "build_config"
	KeyRuntime       = "runtime"
)

var knownKeys = map[string]bool{
	KeyRoot:          true,
	KeyProjectConfig: true,
	KeyBuildConfig:   true,
	KeyRuntime:       true,
}

// Settings are the resolved invocation settings.
type Settings struct {
	Root          string `koanf:"root"`
	ProjectConfig string `koanf:"project_config"`
	BuildConfig   string `koanf:"build_config"`
	Runtime       string `koanf:"runtime"`
}

// Options control where settings are read from.
type Options struct {
	// UserFile is the settings file; empty means the XDG default.
	UserFile string
	// Flags holds flag values by key; empty values are ignored.
	Flags map[string]string
}

// UserFilePath returns the default user settings file location.
func UserFilePath() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return filepath.Join(dir, SettingsFile)
	}
	return filepath.Join(xdg.ConfigHome, "wincross", SettingsFile)
}

// Load resolves settings from all layers.
func Load(opts Options) (*Settings, error) {
	log := logging.GetLogger("settings")
	k := koanf.New(delim)

	defaults := map[string]interface{}{KeyRuntime: DefaultRuntime}
	if err := k.Load(confmap.Provider(defaults, delim), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load default settings")
	}

	userFile := opts.UserFile
	if userFile == "" {
		userFile = UserFilePath()
	}
	if _, err := os.Stat(userFile); err == nil {
		if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load settings from %s", userFile)
		}
		log.Debug().Str("path", userFile).Msg("Loaded user settings")
	}

	err := k.Load(env.Provider(EnvPrefix, delim, func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if !knownKeys[key] {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load environment settings")
	}

	flags := make(map[string]interface{}, len(opts.Flags))
	for key, value := range opts.Flags {
		if value != "" {
			flags[key] = value
		}
	}
	if err := k.Load(confmap.Provider(flags, delim), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load flag settings")
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid settings")
	}
	if s.Runtime == "" {
		s.Runtime = DefaultRuntime
	}

	log.Debug().
		Str("root", s.Root).
		Str("project_config", s.ProjectConfig).
		Str("build_config", s.BuildConfig).
		Str("runtime", s.Runtime).
		Msg("Resolved settings")
	return &s, nil
}
