package apifootball

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFinished(t *testing.T) {
	assert.True(t, IsFinished(StatusFullTime))
	assert.True(t, IsFinished(StatusExtraTime))
	assert.True(t, IsFinished(StatusPenalties))

	assert.False(t, IsFinished(StatusNotStarted))
	assert.False(t, IsFinished(StatusPostponed))
	assert.False(t, IsFinished(StatusCancelled))
	assert.False(t, IsFinished("1H"))
	assert.False(t, IsFinished("HT"))
	assert.False(t, IsFinished(""))
}

func TestIsSettled(t *testing.T) {
	assert.True(t, IsSettled(StatusFullTime))
	assert.True(t, IsSettled(StatusPostponed))
	assert.True(t, IsSettled(StatusCancelled))

	assert.False(t, IsSettled(StatusNotStarted))
	assert.False(t, IsSettled("2H"))
}
