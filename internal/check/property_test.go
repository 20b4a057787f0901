package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperties_Unique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Properties() {
		assert.False(t, seen[p.Name], p.Name)
		assert.NotEmpty(t, p.Description)
		assert.NotNil(t, p.Check)
		seen[p.Name] = true
	}
	assert.Len(t, seen, 11)
}

func TestSelect(t *testing.T) {
	all, err := Select(nil)
	require.NoError(t, err)
	assert.Len(t, all, len(Properties()))

	some, err := Select([]string{"lerp-endpoints", "euler-pole-clamp"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "euler-pole-clamp", some[0].Name)
	assert.Equal(t, "lerp-endpoints", some[1].Name)

	_, err = Select([]string{"lerp-endpoints", "slerp"})
	assert.ErrorIs(t, err, ErrUnknownProperty)
	assert.ErrorContains(t, err, "slerp")
}

func TestProperties_Hold(t *testing.T) {
	eps := DefaultConfig().Epsilon
	for _, p := range Properties() {
		t.Run(p.Name, func(t *testing.T) {
			s := NewSampler(2024, p.Name)
			for i := 0; i < 500; i++ {
				require.NoError(t, p.Check(s, eps), "sample %d", i)
			}
			assert.NotZero(t, s.Sum64())
		})
	}
}
