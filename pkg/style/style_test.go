package style

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wincross/wincross/pkg/errors"
)

func init() {
	DisableColor()
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "plain error",
			err:      fmt.Errorf("boom"),
			contains: []string{"Error:", "boom"},
		},
		{
			name:     "coded error",
			err:      errors.New(errors.ErrConfigMissing, "build config not found"),
			contains: []string{"Error:", "build config not found", "[CONFIG_MISSING]"},
		},
		{
			name:     "wrapped coded error",
			err:      errors.Wrap(fmt.Errorf("denied"), errors.ErrFileWrite, "failed to write"),
			contains: []string{"failed to write: denied", "[FILE_WRITE]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderError(tt.err)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}

	assert.Empty(t, RenderError(nil))
}

func TestRenderStatusLine(t *testing.T) {
	ok := RenderStatusLine(StatusOK, "runtime", "docker found")
	assert.Contains(t, ok, "✓")
	assert.Contains(t, ok, "runtime")
	assert.Contains(t, ok, "docker found")

	bad := RenderStatusLine(StatusProblem, "TOOLCHAIN_PATH_MISSING", "toolchain 'msvc' path missing")
	assert.Contains(t, bad, "✗")
	assert.Contains(t, bad, "TOOLCHAIN_PATH_MISSING")
}

func TestPlainStyles(t *testing.T) {
	assert.Contains(t, TitleStyle.Render("Doctor: 2 problem(s)"), "Doctor: 2 problem(s)")
	assert.Contains(t, CodeStyle.Render("/proj/.wincross/build_config.json"), "/proj/.wincross/build_config.json")
}

func TestStatusStyle(t *testing.T) {
	assert.NotNil(t, StatusStyle(StatusOK))
	assert.NotNil(t, StatusStyle(StatusProblem))
	assert.NotNil(t, StatusStyle(Status("other")))
}
