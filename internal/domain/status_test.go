package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"pending", "accepted", "preparing", "completed", "cancelled"} {
		s, err := ParseStatus(raw)
		assert.NoError(t, err)
		assert.Equal(t, Status(raw), s)
	}
}

func TestParseStatus_LegacyVocabulary(t *testing.T) {
	s, err := ParseStatus("confirmed")
	assert.NoError(t, err)
	assert.Equal(t, StatusAccepted, s)

	s, err = ParseStatus("ready")
	assert.NoError(t, err)
	assert.Equal(t, StatusPreparing, s)
}

func TestParseStatus_Unknown(t *testing.T) {
	_, err := ParseStatus("shipped")
	assert.Error(t, err)
}

func TestStatusUnmarshal_NormalizesOnTheWire(t *testing.T) {
	var o Order
	err := json.Unmarshal([]byte(`{"id":1,"status":"ready"}`), &o)
	assert.NoError(t, err)
	assert.Equal(t, StatusPreparing, o.Status)
}

func TestTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusPreparing.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestDisplayAttributes(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.Label())
	assert.Equal(t, "#ffc107", StatusPending.Color())
	// actionable statuses sort before terminal ones
	assert.Less(t, StatusPending.Priority(), StatusCompleted.Priority())
	assert.Less(t, StatusPreparing.Priority(), StatusCancelled.Priority())
}
