package wincross

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wincross/wincross/pkg/errors"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("WINCROSS_CONFIG_DIR", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("WINCROSS_ROOT", "")
	t.Setenv("WINCROSS_RUNTIME", "")
	t.Setenv("NO_COLOR", "1")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Help(t *testing.T) {
	isolate(t)

	out, err := execute(t, "--help")
	require.NoError(t, err)
	for _, name := range []string{"init", "configure", "build", "test", "shell", "doctor", "show"} {
		assert.Contains(t, out, name)
	}
}

func TestRootCmd_NoCommand(t *testing.T) {
	isolate(t)

	_, err := execute(t)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestVersionCmd(t *testing.T) {
	isolate(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "wincross version")
}

func TestInitThenShow(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))

	out, err := execute(t, "init", "--root", root, "--image", "custom:1")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(root, ".wincross", "build_config.json"))

	out, err = execute(t, "show", "--root", root)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, root, doc["project_root"])
	assert.Equal(t, "custom:1", doc["image"])
	assert.Equal(t, filepath.Join(root, ".wincross", "build-windows"), doc["build_dir"])

	_, err = execute(t, "init", "--root", root)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigExists))
}

func TestShowCmd_MissingBuildConfig(t *testing.T) {
	isolate(t)
	root := t.TempDir()

	_, err := execute(t, "show", "--root", root)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigMissing))
}

func TestShowCmd_Format(t *testing.T) {
	isolate(t)
	root := t.TempDir()

	_, err := execute(t, "init", "--root", root)
	require.NoError(t, err)

	out, err := execute(t, "show", "--root", root, "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "project_root = ")

	_, err = execute(t, "show", "--root", root, "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
