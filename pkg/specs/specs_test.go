package specs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wincross/wincross/pkg/config"
	"github.com/wincross/wincross/pkg/errors"
	"github.com/wincross/wincross/pkg/filesystem"
)

func testFS(t *testing.T) filesystem.FS {
	t.Helper()
	fsys := filesystem.NewMemory()
	for _, dir := range []string{"/proj/data", "/opt/msvc", "/srv/cache"} {
		require.NoError(t, fsys.MkdirAll(dir, 0755))
	}
	return fsys
}

func TestParseKeyValue(t *testing.T) {
	tests := []struct {
		input string
		key   string
		value string
	}{
		{"A=1", "A", "1"},
		{" A =x=y", "A", "x=y"},
		{"EMPTY=", "EMPTY", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, value, err := ParseKeyValue(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.value, value)
		})
	}

	for _, bad := range []string{"NOVALUE", "=1", "  =1"} {
		_, _, err := ParseKeyValue(bad)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), bad)
	}
}

func TestParseEnv(t *testing.T) {
	env, err := ParseEnv([]string{"A=1", "B=2", "A=3"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "3", "B": "2"}, env)

	_, err = ParseEnv([]string{"A=1", "broken"})
	assert.Error(t, err)
}

func TestParseMountSpec(t *testing.T) {
	fsys := testFS(t)

	tests := []struct {
		name string
		spec string
		want config.Mount
	}{
		{"absolute default rw", "/srv/cache:/cache", config.Mount{HostPath: "/srv/cache", ContainerPath: "/cache"}},
		{"relative read only", "data:/data:ro", config.Mount{HostPath: "/proj/data", ContainerPath: "/data", ReadOnly: true}},
		{"explicit rw", "/opt/msvc:/opt/msvc:rw", config.Mount{HostPath: "/opt/msvc", ContainerPath: "/opt/msvc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMountSpec(fsys, tt.spec, "/proj")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMountSpec_Errors(t *testing.T) {
	fsys := testFS(t)

	tests := []struct {
		spec string
		code errors.ErrorCode
	}{
		{"/srv/cache", errors.ErrMountSpecInvalid},
		{"/srv/cache:/c:rx", errors.ErrMountSpecInvalid},
		{":/c", errors.ErrMountSpecInvalid},
		{"/srv/cache:/c:ro:extra", errors.ErrMountSpecInvalid},
		{"/does/not/exist:/c", errors.ErrMountHostMissing},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := ParseMountSpec(fsys, tt.spec, "/proj")
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestParseToolchainSpec(t *testing.T) {
	fsys := testFS(t)

	tests := []struct {
		name string
		spec string
		want ToolchainSpec
	}{
		{"host only", "msvc=/opt/msvc", ToolchainSpec{Name: "msvc", HostPath: "/opt/msvc"}},
		{"host and container", "msvc=/opt/msvc:/opt/msvc", ToolchainSpec{Name: "msvc", HostPath: "/opt/msvc", ContainerPath: "/opt/msvc"}},
		{"empty container keeps unset", "msvc=/opt/msvc::ro", ToolchainSpec{Name: "msvc", HostPath: "/opt/msvc", ReadOnly: config.Bool(true)}},
		{"relative host", " data =data:/data:rw", ToolchainSpec{Name: "data", HostPath: "/proj/data", ContainerPath: "/data", ReadOnly: config.Bool(false)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseToolchainSpec(fsys, tt.spec, "/proj")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseToolchainSpec_Errors(t *testing.T) {
	fsys := testFS(t)

	tests := []struct {
		spec string
		code errors.ErrorCode
	}{
		{"/opt/msvc", errors.ErrMountSpecInvalid},
		{"=/opt/msvc", errors.ErrMountSpecInvalid},
		{"msvc=", errors.ErrMountSpecInvalid},
		{"msvc=/opt/msvc:/opt/msvc:readonly", errors.ErrMountSpecInvalid},
		{"msvc=/missing", errors.ErrToolchainPathMissing},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := ParseToolchainSpec(fsys, tt.spec, "/proj")
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}
