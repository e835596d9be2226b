package showcase

import (
	"testing"

	"github.com/BrandonKowalski/showcase/pkg/showcase/routes"
	"github.com/stretchr/testify/assert"
)

func TestHeader_ShowsBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		h    header
		want bool
	}{
		{"home", header{back: routes.BackDefault, home: true}, false},
		{"home on web", header{back: routes.BackHidden, home: true}, false},
		{"example", header{back: routes.BackDefault}, true},
		{"web example", header{back: routes.BackToHome}, true},
		{"hidden", header{back: routes.BackHidden}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.h.showsBack())
		})
	}
}

func TestHeader_HitsBack(t *testing.T) {
	t.Parallel()

	assert.True(t, header{back: routes.BackToHome}.hitsBack(20, 30))
	assert.False(t, header{back: routes.BackToHome}.hitsBack(400, 30))
	assert.False(t, header{back: routes.BackHidden}.hitsBack(20, 30))
}
