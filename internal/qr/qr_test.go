package qr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestPickupCode(t *testing.T) {
	png, err := PickupCode("http://localhost:8000", 42)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:4])
}

func TestEntryCode(t *testing.T) {
	png, err := EntryCode("http://localhost:8000")
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:4])
}
