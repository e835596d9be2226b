package startup

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGate_ProductionStartsReady(t *testing.T) {
	t.Parallel()

	g := NewGate(false)
	assert.Equal(t, Ready, g.State())
	assert.False(t, g.Complete(nil))

	select {
	case <-g.Done():
	default:
		t.Fatal("Done should be closed for a production gate")
	}
	assert.Nil(t, g.InitialState())
}

func TestGate_CompletesOnce(t *testing.T) {
	t.Parallel()

	g := NewGate(true)
	require.Equal(t, Initializing, g.State())

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.Complete(nil) {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.True(t, g.IsReady())
	<-g.Done()
}

func TestGate_KeepsRestoredState(t *testing.T) {
	t.Parallel()

	g := NewGate(true)
	state := &NavigationState{Routes: []string{"Home", "Fade"}}
	require.True(t, g.Complete(state))
	assert.Same(t, state, g.InitialState())
	assert.Equal(t, "ready", g.State().String())
}
