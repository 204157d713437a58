package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wincross/wincross/pkg/errors"
)

func TestIsUnderRoot(t *testing.T) {
	tests := []struct {
		name string
		path string
		root string
		want bool
	}{
		{"root itself", "/proj", "/proj", true},
		{"direct child", "/proj/src", "/proj", true},
		{"nested child", "/proj/.wincross/build-windows", "/proj", true},
		{"trailing slash root", "/proj/src", "/proj/", true},
		{"sibling with shared prefix", "/project/src", "/proj", false},
		{"parent", "/", "/proj", false},
		{"escape via dotdot", "/proj/../etc", "/proj", false},
		{"dotdot prefixed name stays inside", "/proj/..cache", "/proj", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUnderRoot(tt.path, tt.root))
		})
	}
}

func TestToContainerPath(t *testing.T) {
	tests := []struct {
		name          string
		host          string
		containerRoot string
		want          string
	}{
		{"root maps to container root", "/proj", "/work/project", "/work/project"},
		{"nested path", "/proj/.wincross/bin", "/work/project", "/work/project/.wincross/bin"},
		{"container root trailing slash", "/proj/src", "/work/project/", "/work/project/src"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToContainerPath(tt.host, "/proj", tt.containerRoot)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToContainerPath_OutsideRoot(t *testing.T) {
	_, err := ToContainerPath("/opt/msvc", "/proj", DefaultContainerRoot)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathOutsideRoot))
	assert.Equal(t, "/opt/msvc", errors.GetErrorDetails(err)["path"])
}

func TestContainerPathRoundTrip(t *testing.T) {
	root := "/home/dev/proj"
	for _, host := range []string{
		root,
		root + "/src",
		root + "/.wincross/vcpkg/bincache",
		root + "/a/b/../c",
	} {
		t.Run(host, func(t *testing.T) {
			container, err := ToContainerPath(host, root, DefaultContainerRoot)
			require.NoError(t, err)
			assert.True(t, IsContainerPath(container, DefaultContainerRoot))

			back, err := FromContainerPath(container, root, DefaultContainerRoot)
			require.NoError(t, err)
			assert.Equal(t, Absolute(host, "/"), back)
		})
	}
}

func TestFromContainerPath_OutsideContainerRoot(t *testing.T) {
	_, err := FromContainerPath("/opt/msvc/bin", "/proj", DefaultContainerRoot)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathOutsideRoot))

	_, err = FromContainerPath("/work/projectx", "/proj", DefaultContainerRoot)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathOutsideRoot))
}

func TestIsContainerPath(t *testing.T) {
	assert.True(t, IsContainerPath("/work/project", DefaultContainerRoot))
	assert.True(t, IsContainerPath("/work/project/build", DefaultContainerRoot))
	assert.False(t, IsContainerPath("/work/projects/build", DefaultContainerRoot))
	assert.False(t, IsContainerPath("build", DefaultContainerRoot))
}
