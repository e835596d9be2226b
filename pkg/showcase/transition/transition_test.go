package transition

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/showcase/pkg/showcase/routes"
	"github.com/stretchr/testify/assert"
)

func TestAt_Slide(t *testing.T) {
	t.Parallel()

	start := At(routes.AnimationDefault, 0, 1000)
	assert.Equal(t, int32(1000), start.OffsetX)
	assert.Equal(t, 1.0, start.Alpha)
	assert.False(t, start.Done)

	mid := At(routes.AnimationDefault, SlideDuration/2, 1000)
	assert.Less(t, mid.OffsetX, int32(500), "ease-out covers more than half the distance by mid-time")
	assert.Greater(t, mid.OffsetX, int32(0))

	assert.Equal(t, Settled, At(routes.AnimationDefault, SlideDuration, 1000))
}

func TestAt_Fade(t *testing.T) {
	t.Parallel()

	start := At(routes.AnimationFade, 0, 1000)
	assert.Equal(t, int32(0), start.OffsetX, "fade never moves the screen")
	assert.Equal(t, 0.0, start.Alpha)

	mid := At(routes.AnimationFade, FadeDuration/2, 1000)
	assert.InDelta(t, 0.5, mid.Alpha, 0.01)
	assert.Equal(t, int32(0), mid.OffsetX)

	assert.Equal(t, Settled, At(routes.AnimationFade, time.Second, 1000))
}
