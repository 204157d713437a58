// Package specs parses the compact command-line forms used by `wincross init`:
// KEY=VALUE pairs, host:container[:ro|rw] mounts and
// name=host[:container[:ro|rw]] toolchains.
package specs

import (
	"strings"

	"github.com/wincross/wincross/pkg/config"
	"github.com/wincross/wincross/pkg/errors"
	"github.com/wincross/wincross/pkg/filesystem"
	"github.com/wincross/wincross/pkg/paths"
)

// ToolchainSpec is a parsed --toolchain value. ContainerPath and ReadOnly are
// left unset when omitted so project config can fill them in.
type ToolchainSpec struct {
	Name          string
	HostPath      string
	ContainerPath string
	ReadOnly      *bool
}

// ParseKeyValue splits KEY=VALUE on the first '='. The key is trimmed and
// must be non-empty; the value is kept verbatim.
func ParseKeyValue(text string) (string, string, error) {
	key, value, found := strings.Cut(text, "=")
	if !found {
		return "", "", errors.Newf(errors.ErrInvalidInput, "expected KEY=VALUE, got: %s", text)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", errors.Newf(errors.ErrInvalidInput, "invalid KEY in: %s", text)
	}
	return key, value, nil
}

// ParseEnv parses a list of KEY=VALUE values; later keys win.
func ParseEnv(values []string) (map[string]string, error) {
	env := make(map[string]string, len(values))
	for _, v := range values {
		key, value, err := ParseKeyValue(v)
		if err != nil {
			return nil, err
		}
		env[key] = value
	}
	return env, nil
}

// ParseMountSpec parses host:container[:ro|rw]. Relative host paths resolve
// against root and the host path must exist.
func ParseMountSpec(fsys filesystem.FS, text, root string) (config.Mount, error) {
	parts := strings.Split(text, ":")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return config.Mount{}, errors.Newf(errors.ErrMountSpecInvalid,
			"invalid mount spec: %s (expected host:container[:ro|rw])", text)
	}
	if len(parts) > 3 {
		return config.Mount{}, errors.Newf(errors.ErrMountSpecInvalid,
			"invalid mount spec: %s (too many ':' separated fields)", text)
	}
	mode := "rw"
	if len(parts) == 3 {
		mode = parts[2]
	}
	readOnly, err := parseMode(mode, text, "mount")
	if err != nil {
		return config.Mount{}, err
	}

	host := paths.Absolute(parts[0], root)
	if !filesystem.Exists(fsys, host) {
		return config.Mount{}, errors.Newf(errors.ErrMountHostMissing, "mount host path not found: %s", host).
			WithDetail("path", host)
	}
	return config.Mount{
		HostPath:      host,
		ContainerPath: parts[1],
		ReadOnly:      *readOnly,
	}, nil
}

// ParseToolchainSpec parses name=host[:container[:ro|rw]].
func ParseToolchainSpec(fsys filesystem.FS, text, root string) (ToolchainSpec, error) {
	name, rest, found := strings.Cut(text, "=")
	if !found {
		return ToolchainSpec{}, errors.Newf(errors.ErrMountSpecInvalid,
			"invalid toolchain spec: %s (expected name=host[:container[:ro|rw]])", text)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ToolchainSpec{}, errors.Newf(errors.ErrMountSpecInvalid, "invalid toolchain name in: %s", text)
	}
	parts := strings.Split(rest, ":")
	if parts[0] == "" || len(parts) > 3 {
		return ToolchainSpec{}, errors.Newf(errors.ErrMountSpecInvalid,
			"invalid toolchain spec: %s (expected name=host[:container[:ro|rw]])", text)
	}

	spec := ToolchainSpec{Name: name}
	if len(parts) > 1 {
		spec.ContainerPath = parts[1]
	}
	if len(parts) > 2 {
		readOnly, err := parseMode(parts[2], text, "toolchain")
		if err != nil {
			return ToolchainSpec{}, err
		}
		spec.ReadOnly = readOnly
	}

	spec.HostPath = paths.Absolute(parts[0], root)
	if !filesystem.Exists(fsys, spec.HostPath) {
		return ToolchainSpec{}, errors.Newf(errors.ErrToolchainPathMissing, "toolchain host path not found: %s", spec.HostPath).
			WithDetail("toolchain", name).
			WithDetail("path", spec.HostPath)
	}
	return spec, nil
}

func parseMode(mode, text, kind string) (*bool, error) {
	switch mode {
	case "ro":
		return config.Bool(true), nil
	case "rw":
		return config.Bool(false), nil
	}
	return nil, errors.Newf(errors.ErrMountSpecInvalid, "invalid %s mode in %s: %s", kind, text, mode).
		WithDetail("mode", mode)
}
