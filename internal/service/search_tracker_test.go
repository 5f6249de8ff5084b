package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchTrackerRacingMode(t *testing.T) {
	tracker := newSearchTracker(false)

	firstCtx, firstDone := tracker.begin(context.Background())
	secondCtx, secondDone := tracker.begin(context.Background())

	assert.Equal(t, 2, tracker.count())
	assert.NoError(t, firstCtx.Err())
	assert.NoError(t, secondCtx.Err())

	firstDone()
	secondDone()

	assert.Equal(t, 0, tracker.count())
	assert.Error(t, firstCtx.Err())
}

func TestSearchTrackerCancelPreviousMode(t *testing.T) {
	tracker := newSearchTracker(true)

	firstCtx, firstDone := tracker.begin(context.Background())
	defer firstDone()

	secondCtx, secondDone := tracker.begin(context.Background())
	defer secondDone()

	assert.ErrorIs(t, firstCtx.Err(), context.Canceled)
	assert.NoError(t, secondCtx.Err())
	assert.Equal(t, 1, tracker.count())
}

func TestSearchTrackerShutdown(t *testing.T) {
	tracker := newSearchTracker(false)

	ctx, done := tracker.begin(context.Background())
	defer done()

	tracker.shutdown()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.Equal(t, 0, tracker.count())
}
