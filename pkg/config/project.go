package config

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/wincross/wincross/pkg/errors"
	"github.com/wincross/wincross/pkg/filesystem"
	"github.com/wincross/wincross/pkg/logging"
)

// keyDelim separates koanf key paths. Toolchain and profile names may
// contain dots, so "." cannot be used.
const keyDelim = "::"

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "raw bytes provider does not support Read")
}

// LoadProjectConfig reads wincross.toml. A missing file yields an empty
// configuration.
func LoadProjectConfig(fsys filesystem.FS, path string) (*ProjectConfig, error) {
	log := logging.GetLogger("config")
	if !filesystem.Exists(fsys, path) {
		log.Debug().Str("path", path).Msg("No project config, using empty configuration")
		return &ProjectConfig{}, nil
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read project config %s", path)
	}
	cfg, err := ParseProjectConfig(data)
	if err != nil {
		if wErr, ok := err.(*errors.WincrossError); ok {
			return nil, wErr.WithDetail("path", path)
		}
		return nil, err
	}
	log.Debug().Str("path", path).Int("profiles", len(cfg.Profiles)).Msg("Loaded project config")
	return cfg, nil
}

// ParseProjectConfig parses TOML project config text.
func ParseProjectConfig(data []byte) (*ProjectConfig, error) {
	k := koanf.New(keyDelim)
	if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid project config toml")
	}
	return DecodeProjectConfig(k.Raw())
}

// DecodeProjectConfig normalizes a raw project config map and decodes it.
// Type mismatches fail with PROJECT_CONFIG_INVALID.
func DecodeProjectConfig(raw map[string]interface{}) (*ProjectConfig, error) {
	normalized := NormalizeProjectConfig(raw)
	if err := checkRawProjectConfig(normalized); err != nil {
		return nil, err
	}

	k := koanf.New(keyDelim)
	if err := k.Load(confmap.Provider(normalized, keyDelim), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load normalized project config")
	}

	var cfg ProjectConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: false,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrProjectConfigInvalid, "invalid project config")
	}
	return &cfg, nil
}
