package itemtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveVisualDeterministic(t *testing.T) {
	first := ResolveVisual(CategoryDevices, 0)
	again := ResolveVisual(CategoryDevices, 0)
	assert.Equal(t, first, again)

	second := ResolveVisual(CategoryDevices, 1)
	assert.Equal(t, first.Icon, second.Icon)
	assert.NotEqual(t, first.Gradient, second.Gradient)
}

func TestResolveVisualWrapsAndFallsBack(t *testing.T) {
	// Index wraps around the gradient list instead of running out.
	wrapped := ResolveVisual(CategoryPapers, 2)
	assert.Equal(t, ResolveVisual(CategoryPapers, 0), wrapped)

	// Unknown category uses the "other" visuals.
	unknown := ResolveVisual("furniture", 0)
	assert.Equal(t, ResolveVisual(CategoryOther, 0), unknown)

	// Negative index is clamped.
	negative := ResolveVisual(CategorySim, -3)
	assert.Equal(t, ResolveVisual(CategorySim, 0), negative)
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(CategoryDevices))
	assert.True(t, ValidCategory(CategoryOther))
	assert.False(t, ValidCategory("furniture"))
	assert.False(t, ValidCategory(""))
}
