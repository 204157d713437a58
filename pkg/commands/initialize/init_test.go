package initialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wincross/wincross/pkg/commands/internal"
	"github.com/wincross/wincross/pkg/config"
	"github.com/wincross/wincross/pkg/errors"
	"github.com/wincross/wincross/pkg/filesystem"
	"github.com/wincross/wincross/pkg/testutil"
)

const msvcProject = `
[toolchains.msvc]
container_path = "/opt/msvc"
read_only = true
`

func newEnv(t *testing.T) *testutil.TestEnvironment {
	t.Helper()
	env := testutil.NewTestEnvironment(t)
	env.WriteProjectConfig(msvcProject)
	env.Mkdir("/opt/msvc")
	return env
}

func options(env *testutil.TestEnvironment) InitOptions {
	return InitOptions{
		Locations:  internal.Locations{Cwd: env.Root},
		FileSystem: env.FS,
		Toolchains: []string{"msvc=/opt/msvc"},
	}
}

func TestInitWritesBuildConfig(t *testing.T) {
	env := newEnv(t)

	result, err := Init(options(env))
	require.NoError(t, err)
	assert.Equal(t, env.BuildConfigPath(), result.BuildConfigPath)

	want := `{
  "build_dir": "/virtual/project/.wincross/build-windows",
  "cmake_defaults": [],
  "env": {},
  "image": "wincross-msvc:latest",
  "mounts": [],
  "path_prepend": [],
  "project_root": "/virtual/project",
  "state_dir": "/virtual/project/.wincross",
  "toolchains": {
    "msvc": {
      "container_path": "/opt/msvc",
      "host_path": "/opt/msvc",
      "read_only": true
    }
  },
  "vcpkg": {
    "enabled": false
  },
  "version": 2
}
`
	assert.Equal(t, want, env.ReadFile(env.BuildConfigPath()))

	for _, dir := range []string{"sccache", "wine", "home", "logs", "bin", "xdg-runtime", "build-windows"} {
		assert.True(t, filesystem.IsDir(env.FS, env.Path(".wincross/"+dir)), dir)
	}
	info, err := env.FS.Stat(env.Path(".wincross/xdg-runtime"))
	require.NoError(t, err)
	assert.Equal(t, "drwx------", info.Mode().String())

	assert.Contains(t, env.ReadFile(env.Path(".wincross/mt-wrapper.sh")), "MT=/opt/msvc/bin/x64/mt\n")
}

func TestInitFlags(t *testing.T) {
	env := newEnv(t)
	env.Mkdir("/data")

	opts := options(env)
	opts.Image = "custom:1"
	opts.BuildDir = "out/win"
	opts.Generator = "Ninja Multi-Config"
	opts.BuildType = "Debug"
	opts.Toolchains = []string{"msvc=/opt/msvc:/opt/msvc:rw"}
	opts.Mounts = []string{"/data:/data:ro"}
	opts.Env = []string{"A=1", "B=x=y"}
	opts.PathPrepend = []string{"/tools/bin"}
	opts.CMake = []string{"-DX=1"}
	opts.CMakeArgs = []string{`-DY=2 -DZ="a b"`}

	result, err := Init(opts)
	require.NoError(t, err)

	cfg, err := config.LoadBuildConfig(env.FS, result.BuildConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "custom:1", cfg.Image)
	assert.Equal(t, "/virtual/project/out/win", cfg.BuildDir)
	assert.Equal(t, "Ninja Multi-Config", cfg.Generator)
	assert.Equal(t, "Debug", cfg.BuildType)
	assert.False(t, cfg.Toolchains["msvc"].IsReadOnly())
	assert.Equal(t, []config.Mount{{HostPath: "/data", ContainerPath: "/data", ReadOnly: true}}, cfg.Mounts)
	assert.Equal(t, map[string]string{"A": "1", "B": "x=y"}, cfg.Env)
	assert.Equal(t, []string{"/tools/bin"}, cfg.PathPrepend)
	assert.Equal(t, []string{"-DX=1", "-DY=2", "-DZ=a b"}, cfg.CMakeDefaults)
	assert.True(t, filesystem.IsDir(env.FS, "/virtual/project/out/win"))
}

func TestInitVcpkg(t *testing.T) {
	env := newEnv(t)
	env.WriteProjectConfig(msvcProject + `
[vcpkg]
enabled = true
triplet = "x64-windows-static"
packages = ["zlib"]
`)

	result, err := Init(options(env))
	require.NoError(t, err)

	v := result.Config.Vcpkg
	require.NotNil(t, v.Enabled)
	assert.True(t, *v.Enabled)
	assert.Equal(t, "/virtual/project/.wincross/vcpkg", v.HostRoot)
	assert.Equal(t, "/virtual/project/.wincross/vcpkg/bincache", v.HostBinaryCache)
	assert.Equal(t, "x64-windows-static", v.Triplet)
	assert.Equal(t, []string{"zlib"}, v.Packages)
	assert.True(t, filesystem.IsDir(env.FS, v.HostBinaryCache))

	// The written config resolves cleanly.
	eff, err := config.Resolve(nil, result.Config, env.Root, env.Path("wincross.toml"), config.StandardDefaults())
	require.NoError(t, err)
	assert.Equal(t, "/work/project/.wincross/vcpkg", eff.Vcpkg.ContainerRoot)
}

func TestInitUndefinedProfile(t *testing.T) {
	env := newEnv(t)
	opts := options(env)
	opts.Profile = "missing"

	result, err := Init(opts)
	require.NoError(t, err)
	assert.Equal(t, "missing", result.Config.Profile)
	assert.Equal(t, "/opt/msvc", result.Config.Toolchains["msvc"].ContainerPath)
}

func TestInitErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(env *testutil.TestEnvironment, opts *InitOptions)
		code   errors.ErrorCode
	}{
		{
			name:   "project toolchain without spec",
			modify: func(_ *testutil.TestEnvironment, opts *InitOptions) { opts.Toolchains = nil },
			code:   errors.ErrToolchainPathMissing,
		},
		{
			name: "toolchain without container path",
			modify: func(env *testutil.TestEnvironment, opts *InitOptions) {
				env.Mkdir("/opt/llvm")
				opts.Toolchains = append(opts.Toolchains, "llvm=/opt/llvm")
			},
			code: errors.ErrToolchainPathMissing,
		},
		{
			name:   "toolchain host missing",
			modify: func(_ *testutil.TestEnvironment, opts *InitOptions) { opts.Toolchains = []string{"msvc=/nope"} },
			code:   errors.ErrToolchainPathMissing,
		},
		{
			name:   "build dir outside root",
			modify: func(_ *testutil.TestEnvironment, opts *InitOptions) { opts.BuildDir = "/tmp/build" },
			code:   errors.ErrPathOutsideRoot,
		},
		{
			name: "vcpkg root outside root",
			modify: func(_ *testutil.TestEnvironment, opts *InitOptions) {
				opts.Vcpkg = true
				opts.VcpkgRoot = "/srv/vcpkg"
			},
			code: errors.ErrPathOutsideRoot,
		},
		{
			name:   "bad mount",
			modify: func(_ *testutil.TestEnvironment, opts *InitOptions) { opts.Mounts = []string{"/data"} },
			code:   errors.ErrMountSpecInvalid,
		},
		{
			name:   "bad env",
			modify: func(_ *testutil.TestEnvironment, opts *InitOptions) { opts.Env = []string{"NOEQUALS"} },
			code:   errors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newEnv(t)
			opts := options(env)
			tt.modify(env, &opts)

			_, err := Init(opts)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err), err.Error())
			assert.False(t, filesystem.Exists(env.FS, env.BuildConfigPath()))
		})
	}
}

func TestInitExistingConfig(t *testing.T) {
	env := newEnv(t)
	_, err := Init(options(env))
	require.NoError(t, err)

	_, err = Init(options(env))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigExists))

	opts := options(env)
	opts.Force = true
	opts.Image = "second"
	result, err := Init(opts)
	require.NoError(t, err)
	assert.Equal(t, "second", result.Config.Image)
}
