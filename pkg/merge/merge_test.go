package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLists(t *testing.T) {
	tests := []struct {
		name     string
		base     []string
		override []string
		want     []string
	}{
		{"both empty", nil, nil, []string{}},
		{"base only", []string{"a"}, nil, []string{"a"}},
		{"override only", nil, []string{"b"}, []string{"b"}},
		{"concatenation keeps duplicates", []string{"a", "b"}, []string{"b", "c"}, []string{"a", "b", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lists(tt.base, tt.override))
		})
	}
}

func TestLists_DoesNotAlias(t *testing.T) {
	base := make([]string, 1, 4)
	base[0] = "a"
	out := Lists(base, []string{"b"})
	out[0] = "changed"
	assert.Equal(t, "a", base[0])
}

func TestEnv(t *testing.T) {
	base := map[string]string{"A": "1", "B": "2"}
	got := Env(base, map[string]string{"B": "3", "C": "4"})

	assert.Equal(t, map[string]string{"A": "1", "B": "3", "C": "4"}, got)
	assert.Equal(t, "2", base["B"], "base must not be modified")
	assert.Empty(t, Env(nil, nil))
}

func TestDedupePreserveOrder(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, DedupePreserveOrder([]string{"a", "b", "a", "c"}))
	assert.Equal(t, []string{}, DedupePreserveOrder([]string(nil)))
	assert.Equal(t, []int{3, 1, 2}, DedupePreserveOrder([]int{3, 1, 3, 2, 1}))
}

func TestMoveToFront(t *testing.T) {
	assert.Equal(t, []string{"w", "a", "b"}, MoveToFront([]string{"a", "b"}, "w"))
	assert.Equal(t, []string{"w", "a", "b"}, MoveToFront([]string{"a", "w", "b", "w"}, "w"))
}
