package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wincross/wincross/pkg/errors"
)

func TestNormalizeWinexeWrappers(t *testing.T) {
	got, err := NormalizeWinexeWrappers([]WinexeWrapper{
		{Name: "cl.exe", Exe: "{build_dir}/cl.exe"},
		{Name: "rc.exe", Exe: "/opt/rc.exe", MsvcEnv: Bool(true)},
	}, SourceProject)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].MsvcEnv, "msvc_env defaults are filled in")
	assert.False(t, got[0].UsesMsvcEnv())
	assert.True(t, got[1].UsesMsvcEnv())

	empty, err := NormalizeWinexeWrappers(nil, SourceProject)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestNormalizeWinexeWrappers_Errors(t *testing.T) {
	tests := []struct {
		name    string
		wrapper WinexeWrapper
		source  Source
		code    errors.ErrorCode
	}{
		{"missing name", WinexeWrapper{Exe: "x"}, SourceProject, errors.ErrProjectConfigInvalid},
		{"blank name", WinexeWrapper{Name: "  ", Exe: "x"}, SourceProject, errors.ErrProjectConfigInvalid},
		{"missing exe", WinexeWrapper{Name: "a"}, SourceBuild, errors.ErrConfigParse},
		{"path in name", WinexeWrapper{Name: "bin/cl.exe", Exe: "x"}, SourceProject, errors.ErrWrapperNameInvalid},
		{"parent name", WinexeWrapper{Name: "..", Exe: "x"}, SourceBuild, errors.ErrWrapperNameInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeWinexeWrappers([]WinexeWrapper{tt.wrapper}, tt.source)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestMergeWinexeWrappers(t *testing.T) {
	project := []WinexeWrapper{
		{Name: "cl.exe", Exe: "project-cl"},
		{Name: "link.exe", Exe: "project-link"},
	}
	build := []WinexeWrapper{
		{Name: "rc.exe", Exe: "build-rc"},
		{Name: "cl.exe", Exe: "build-cl"},
	}

	got := MergeWinexeWrappers(project, build)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"cl.exe", "link.exe", "rc.exe"}, []string{got[0].Name, got[1].Name, got[2].Name})
	assert.Equal(t, "build-cl", got[0].Exe)
}
