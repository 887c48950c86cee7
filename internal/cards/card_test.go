package cards

import (
	"math/rand/v2"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_CountsAndLabels(t *testing.T) {
	for n := 10; n <= 120; n += 10 {
		got := Generate(n, nil)
		require.Len(t, got, n)
		for i, c := range got {
			assert.Equal(t, i+1, c.Index)
		}
	}
}

func TestGenerate_ColorsFromPalette(t *testing.T) {
	p := &RandomPicker{Colors: Palette(), Rand: rand.New(rand.NewPCG(1, 2))}
	for _, c := range Generate(120, p) {
		assert.True(t, InPalette(c.Color), "unexpected color %s", c.Color)
		assert.NotEqual(t, Fallback, c.Color)
	}
}

func TestGenerate_FallbackGuard(t *testing.T) {
	empty := PickerFunc(func() (lipgloss.Color, bool) { return "", false })
	got := Generate(3, empty)
	require.Len(t, got, 3)
	for _, c := range got {
		assert.Equal(t, Fallback, c.Color)
	}

	got = Generate(2, &RandomPicker{})
	assert.Equal(t, Fallback, got[0].Color)
}

func TestGenerate_NonPositive(t *testing.T) {
	assert.Nil(t, Generate(0, nil))
	assert.Nil(t, Generate(-4, nil))
}

func TestPalette(t *testing.T) {
	assert.Len(t, Palette(), 6)
	assert.False(t, InPalette(Fallback))
}
