package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegacyFieldsFor(t *testing.T) {
	fields, ok := LegacyFieldsFor("n950")
	assert.True(t, ok)
	assert.Equal(t, "n950_boxes", fields.BoxesColumn)
	assert.Equal(t, "n950_units", fields.UnitsColumn)

	// Item types added after the legacy schema froze have no mapping.
	_, ok = LegacyFieldsFor("n910")
	assert.False(t, ok)
	_, ok = LegacyFieldsFor("charger")
	assert.False(t, ok)
	_, ok = LegacyFieldsFor("")
	assert.False(t, ok)
}
