package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexOf(t *testing.T) {
	inv := []string{"freddy", "foxy", "freddy"}

	assert.Equal(t, 0, IndexOf(inv, "freddy"), "Should return first matching index")
	assert.Equal(t, 1, IndexOf(inv, "foxy"))
	assert.Equal(t, -1, IndexOf(inv, "springtrap"))
	assert.Equal(t, -1, IndexOf(nil, "freddy"), "Should handle nil inventory")
}

func TestRemoveFirst(t *testing.T) {
	t.Run("removes exactly one duplicate", func(t *testing.T) {
		inv := []string{"foxy", "freddy", "chica", "freddy"}

		out, ok := RemoveFirst(inv, "freddy")

		assert.True(t, ok)
		assert.Equal(t, []string{"foxy", "chica", "freddy"}, out)
		assert.Equal(t, []string{"foxy", "freddy", "chica", "freddy"}, inv, "Input must not be modified")
	})

	t.Run("missing item leaves inventory unchanged", func(t *testing.T) {
		inv := []string{"foxy"}

		out, ok := RemoveFirst(inv, "freddy")

		assert.False(t, ok)
		assert.Equal(t, inv, out)
	})

	t.Run("removes last remaining item", func(t *testing.T) {
		out, ok := RemoveFirst([]string{"endo"}, "endo")

		assert.True(t, ok)
		assert.Empty(t, out)
	})
}

func TestCountByID(t *testing.T) {
	counts := CountByID([]string{"a", "b", "a", "a"})

	assert.Equal(t, 3, counts["a"])
	assert.Equal(t, 1, counts["b"])
	assert.Equal(t, 0, counts["c"])
}
