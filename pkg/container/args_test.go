package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wincross/wincross/pkg/config"
	"github.com/wincross/wincross/pkg/errors"
)

func resolve(t *testing.T, project *config.ProjectConfig, build *config.BuildConfig) *config.Effective {
	t.Helper()
	if project == nil {
		project = &config.ProjectConfig{}
	}
	build.ProjectRoot = "/proj"
	build.StateDir = "/proj/.wincross"
	eff, err := config.Resolve(project, build, "/proj", "/proj/wincross.toml", config.StandardDefaults())
	require.NoError(t, err)
	return eff
}

func TestRunArgs(t *testing.T) {
	eff := resolve(t, nil, &config.BuildConfig{
		Image: "img:1",
		Toolchains: map[string]config.Toolchain{
			"msvc": {HostPath: "/opt/msvc-host", ContainerPath: "/opt/msvc", ReadOnly: config.Bool(true)},
			"llvm": {HostPath: "/opt/llvm", ContainerPath: "/opt/llvm", PathPrepend: []string{"/opt/llvm/bin"}},
		},
		Mounts: []config.Mount{{HostPath: "/data", ContainerPath: "/data", ReadOnly: true}},
	})

	got, err := RunArgs(eff, RunOptions{UID: 1000, GID: 1000}, []string{"cmake", "--version"})
	require.NoError(t, err)

	want := []string{
		"docker", "run", "--rm", "-u", "1000:1000",
		"-v", "/proj:/work/project",
		"-v", "/opt/llvm:/opt/llvm:rw",
		"-v", "/opt/msvc-host:/opt/msvc:ro",
		"-v", "/data:/data:ro",
		"-e", "HOME=/work/project/.wincross/home",
		"-e", "XDG_RUNTIME_DIR=/work/project/.wincross/xdg-runtime",
		"-e", "WINEPREFIX=/work/project/.wincross/wine",
		"-e", "WINEDEBUG=-all",
		"-e", "SCCACHE_DIR=/work/project/.wincross/sccache",
		"-e", "CMAKE_MT=/work/project/.wincross/mt-wrapper.sh",
		"-e", "WINCROSS_STATE_DIR=/work/project/.wincross",
		"-e", "WINCROSS_EMULATOR=/work/project/.wincross/bin/wincross-emulator",
		"-e", "PATH=/opt/msvc/bin/x64:/opt/msvc/bin:/opt/llvm/bin:/usr/local/bin:/usr/bin:/bin",
		"-w", "/work/project", "img:1",
		"cmake", "--version",
	}
	assert.Equal(t, want, got)
}

func TestRunArgsInteractiveRuntime(t *testing.T) {
	eff := resolve(t, nil, &config.BuildConfig{})

	got, err := RunArgs(eff, RunOptions{Runtime: "podman", Interactive: true}, ShellCommand)
	require.NoError(t, err)
	assert.Equal(t, []string{"podman", "run", "--rm", "-it", "-u", "0:0"}, got[:6])
	assert.Equal(t, []string{"bash", "--noprofile", "--norc"}, got[len(got)-3:])
}

func TestRunArgsToolchainMissingPath(t *testing.T) {
	eff := resolve(t, nil, &config.BuildConfig{})
	eff.Toolchains = map[string]config.Toolchain{"msvc": {ContainerPath: "/opt/msvc"}}

	_, err := RunArgs(eff, RunOptions{}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrToolchainPathMissing))
	assert.Equal(t, "msvc", errors.GetErrorDetails(err)["toolchain"])
}

func TestEnvOrdering(t *testing.T) {
	eff := resolve(t,
		&config.ProjectConfig{PathPrepend: []string{"/opt/msvc/bin", "/tools"}},
		&config.BuildConfig{
			Env: map[string]string{"ZED": "z", "WINEDEBUG": "+seh", "ALPHA": "a"},
		})

	var keys []string
	values := map[string]string{}
	for _, e := range Env(eff) {
		keys = append(keys, e.Key)
		values[e.Key] = e.Value
	}

	assert.Equal(t, []string{
		"HOME", "XDG_RUNTIME_DIR", "WINEPREFIX", "WINEDEBUG", "SCCACHE_DIR", "CMAKE_MT",
		"WINCROSS_STATE_DIR", "WINCROSS_EMULATOR", "PATH", "ALPHA", "ZED",
	}, keys)
	assert.Equal(t, "+seh", values["WINEDEBUG"])
	assert.Equal(t, "/opt/msvc/bin:/tools:/opt/msvc/bin/x64:/usr/local/bin:/usr/bin:/bin", values["PATH"])

	// Deterministic across calls.
	assert.Equal(t, Env(eff), Env(eff))
}

func TestEnvVcpkg(t *testing.T) {
	eff := resolve(t,
		&config.ProjectConfig{Vcpkg: config.VcpkgConfig{
			Enabled:         config.Bool(true),
			OverlayTriplets: []string{"{project_root}/triplets", "/extra"},
		}},
		&config.BuildConfig{Vcpkg: config.VcpkgConfig{
			HostRoot:        "/proj/.wincross/vcpkg",
			HostBinaryCache: "/proj/.wincross/vcpkg/bincache",
		}})

	values := map[string]string{}
	var keys []string
	for _, e := range Env(eff) {
		keys = append(keys, e.Key)
		values[e.Key] = e.Value
	}

	assert.Equal(t, []string{"VCPKG_ROOT", "VCPKG_TARGET_TRIPLET", "VCPKG_DEFAULT_BINARY_CACHE",
		"VCPKG_BINARY_SOURCES", "VCPKG_OVERLAY_TRIPLETS"}, keys[9:])
	assert.Equal(t, "/work/project/.wincross/vcpkg", values["VCPKG_ROOT"])
	assert.Equal(t, "x64-windows", values["VCPKG_TARGET_TRIPLET"])
	assert.Equal(t, "clear;files,/work/project/.wincross/vcpkg/bincache,readwrite", values["VCPKG_BINARY_SOURCES"])
	assert.Equal(t, "/work/project/triplets;/extra", values["VCPKG_OVERLAY_TRIPLETS"])
}
