package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wincross/wincross/pkg/errors"
)

func TestValidateProjectConfig(t *testing.T) {
	tests := []struct {
		name  string
		cfg   ProjectConfig
		code  errors.ErrorCode
		field string
	}{
		{
			name: "valid",
			cfg: ProjectConfig{
				Toolchains:      map[string]Toolchain{"msvc": {ContainerPath: "/opt/msvc"}},
				WinepathPrepend: []string{"/a"},
				BinAliases:      []string{"cl"},
				EmulatorEnv:     map[string]string{"K": "v"},
				WinexeWrappers:  []WinexeWrapper{{Name: "cl.exe", Exe: "x"}},
			},
		},
		{
			name:  "toolchain host path",
			cfg:   ProjectConfig{Toolchains: map[string]Toolchain{"msvc": {HostPath: "/opt/msvc"}}},
			code:  errors.ErrProjectConfigInvalid,
			field: "toolchains.msvc.host_path",
		},
		{
			name:  "empty winepath entry",
			cfg:   ProjectConfig{WinepathPrepend: []string{""}},
			code:  errors.ErrProjectConfigInvalid,
			field: "winepath_prepend",
		},
		{
			name:  "empty alias",
			cfg:   ProjectConfig{BinAliases: []string{"ok", ""}},
			code:  errors.ErrProjectConfigInvalid,
			field: "bin_aliases",
		},
		{
			name:  "empty emulator env value",
			cfg:   ProjectConfig{EmulatorEnv: map[string]string{"K": ""}},
			code:  errors.ErrProjectConfigInvalid,
			field: "emulator_env.K",
		},
		{
			name:  "vcpkg host root",
			cfg:   ProjectConfig{Vcpkg: VcpkgConfig{HostRoot: "/x"}},
			code:  errors.ErrProjectConfigInvalid,
			field: "vcpkg.host_root",
		},
		{
			name:  "vcpkg container cache",
			cfg:   ProjectConfig{Vcpkg: VcpkgConfig{ContainerBinaryCache: "/x"}},
			code:  errors.ErrProjectConfigInvalid,
			field: "vcpkg.container_binary_cache",
		},
		{
			name: "wrapper missing exe",
			cfg:  ProjectConfig{WinexeWrappers: []WinexeWrapper{{Name: "cl.exe"}}},
			code: errors.ErrProjectConfigInvalid,
		},
		{
			name: "wrapper name with directory",
			cfg:  ProjectConfig{WinexeWrappers: []WinexeWrapper{{Name: "../cl.exe", Exe: "x"}}},
			code: errors.ErrWrapperNameInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectConfig(&tt.cfg)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
			if tt.field != "" {
				assert.Equal(t, tt.field, errors.GetErrorDetails(err)["field"])
			}
		})
	}
}
