package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wincross/wincross/pkg/config"
	"github.com/wincross/wincross/pkg/filesystem"
)

func TestNewTestEnvironment(t *testing.T) {
	env := NewTestEnvironment(t).WithFileTree(FileTree{
		"CMakeLists.txt": "project(x)\n",
		"cmake/":         "",
	})

	assert.True(t, filesystem.IsDir(env.FS, "/virtual/project/.git"))
	assert.True(t, filesystem.IsDir(env.FS, "/virtual/project/cmake"))
	assert.Equal(t, "project(x)\n", env.ReadFile(env.Path("CMakeLists.txt")))

	env.WriteBuildConfig(&config.BuildConfig{Image: "img"})
	loaded, err := config.LoadBuildConfig(env.FS, env.BuildConfigPath())
	require.NoError(t, err)
	assert.Equal(t, "/virtual/project", loaded.ProjectRoot)
	assert.Equal(t, "/virtual/project/.wincross", loaded.StateDir)
	assert.Equal(t, "img", loaded.Image)
}

func TestRecordingRunner(t *testing.T) {
	r := &RecordingRunner{}
	require.NoError(t, r.Run(context.Background(),
		[]string{"docker", "run", "-e", "X=1", "-w", "/work/project", "img", "cmake", "--version"}))
	assert.Equal(t, [][]string{{"cmake", "--version"}}, r.Commands())

	r.RunFunc = func([]string) error { return fmt.Errorf("fail") }
	assert.Error(t, r.Run(context.Background(), []string{"docker"}))
	assert.Len(t, r.Calls, 2)
}
