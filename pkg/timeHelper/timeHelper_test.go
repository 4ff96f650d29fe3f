package timehelper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateDateKey(t *testing.T) {
	assert.NoError(t, ValidateDateKey("2025-03-09"))
	assert.Error(t, ValidateDateKey("09-03-2025"))
	assert.Error(t, ValidateDateKey("2025-13-40"))
	assert.Error(t, ValidateDateKey("today"))
}

func TestHasKickedOff(t *testing.T) {
	now := time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC)

	assert.True(t, HasKickedOff(now.Add(-time.Minute).Unix(), now))
	assert.True(t, HasKickedOff(now.Unix(), now))
	assert.False(t, HasKickedOff(now.Add(time.Minute).Unix(), now))

	// Unknown kickoff never blocks.
	assert.False(t, HasKickedOff(0, now))
}
