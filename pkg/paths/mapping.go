package paths

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/wincross/wincross/pkg/errors"
)

// IsUnderRoot reports whether p, made relative to root, stays inside root.
func IsUnderRoot(p, root string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(p))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// ToContainerPath maps a host path under root to its container equivalent.
func ToContainerPath(hostPath, root, containerRoot string) (string, error) {
	if !IsUnderRoot(hostPath, root) {
		return "", errors.Newf(errors.ErrPathOutsideRoot, "path must be under project root: %s", hostPath).
			WithDetail("path", hostPath).
			WithDetail("root", root)
	}
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(hostPath))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathOutsideRoot, "path must be under project root: %s", hostPath)
	}
	if rel == "." {
		return containerRoot, nil
	}
	return strings.TrimSuffix(containerRoot, "/") + "/" + filepath.ToSlash(rel), nil
}

// FromContainerPath maps a container path under containerRoot back to the host.
func FromContainerPath(containerPath, root, containerRoot string) (string, error) {
	cleaned := path.Clean(containerPath)
	base := path.Clean(containerRoot)
	if cleaned == base {
		return filepath.Clean(root), nil
	}
	prefix := strings.TrimSuffix(base, "/") + "/"
	if !strings.HasPrefix(cleaned, prefix) {
		return "", errors.Newf(errors.ErrPathOutsideRoot, "path must be under container root %s: %s", containerRoot, containerPath)
	}
	return filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(cleaned, prefix))), nil
}

// IsContainerPath reports whether p already lives under containerRoot.
func IsContainerPath(p, containerRoot string) bool {
	cleaned := path.Clean(p)
	base := path.Clean(containerRoot)
	return cleaned == base || strings.HasPrefix(cleaned, strings.TrimSuffix(base, "/")+"/")
}
