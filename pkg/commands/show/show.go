// Package show implements `wincross show`, which prints the effective
// configuration.
package show

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/wincross/wincross/pkg/commands/internal"
	"github.com/wincross/wincross/pkg/config"
	"github.com/wincross/wincross/pkg/errors"
	"github.com/wincross/wincross/pkg/filesystem"
)

// Formats accepted by Show.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// ShowOptions defines the options for the Show command.
type ShowOptions struct {
	internal.Locations
	FileSystem filesystem.FS
	Format     string
}

// Show resolves the effective configuration and renders it.
func Show(opts ShowOptions) (string, error) {
	s, err := internal.Open(opts.FileSystem, opts.Locations)
	if err != nil {
		return "", err
	}
	eff, err := s.Resolve()
	if err != nil {
		return "", err
	}
	return Render(eff, opts.Format)
}

// Render encodes eff in format. Keys keep their JSON names in every format.
func Render(eff *config.Effective, format string) (string, error) {
	switch strings.ToLower(format) {
	case "", FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(eff); err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
		}
		return buf.String(), nil
	case FormatTOML:
		doc, err := document(eff)
		if err != nil {
			return "", err
		}
		out, err := toml.Marshal(doc)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration as toml")
		}
		return string(out), nil
	case FormatYAML:
		doc, err := document(eff)
		if err != nil {
			return "", err
		}
		out, err := yaml.Marshal(doc)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration as yaml")
		}
		return string(out), nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown format: %s (expected json, toml or yaml)", format).
		WithDetail("format", format)
}

// document converts eff to a generic map through its JSON form so every
// encoder sees the same keys. TOML has no null, so nil values are dropped.
func document(eff *config.Effective) (map[string]interface{}, error) {
	data, err := json.Marshal(eff)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to decode configuration")
	}
	dropNil(doc)
	return doc, nil
}

func dropNil(m map[string]interface{}) {
	for k, v := range m {
		switch val := v.(type) {
		case nil:
			delete(m, k)
		case map[string]interface{}:
			dropNil(val)
		}
	}
}
