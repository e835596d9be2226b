package linking

import (
	"testing"

	"github.com/BrandonKowalski/showcase/pkg/showcase/catalog"
	"github.com/BrandonKowalski/showcase/pkg/showcase/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoPaths() routes.PathTable {
	return routes.PathTable{"Home": "", "Colors": "Colors", "Motion": "Motion"}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	r, err := New(demoPaths(), "showcase://", "https://example.test")
	require.NoError(t, err)

	cases := map[string]catalog.Name{
		"":                            "Home",
		"/":                           "Home",
		"showcase://":                 "Home",
		"Motion":                      "Motion",
		"/Motion":                     "Motion",
		"/Motion/":                    "Motion",
		"showcase://Colors":           "Colors",
		"showcase:///Colors?x=1#frag": "Colors",
		"https://example.test/Motion": "Motion",
	}

	for link, want := range cases {
		got, err := r.Resolve(link)
		require.NoError(t, err, link)
		assert.Equal(t, want, got, link)
	}
}

func TestResolve_Unknown(t *testing.T) {
	t.Parallel()

	r, err := New(demoPaths())
	require.NoError(t, err)

	_, err = r.Resolve("/motion")
	require.ErrorIs(t, err, ErrUnknownLink)

	_, err = r.Resolve("/Motion/extra")
	require.ErrorIs(t, err, ErrUnknownLink)

	_, err = r.Resolve("other://Motion")
	require.ErrorIs(t, err, ErrBadLink)
}

func TestNew_RejectsCollidingPaths(t *testing.T) {
	t.Parallel()

	_, err := New(routes.PathTable{"Home": "", "Start": ""})
	require.Error(t, err)
}

func TestLink(t *testing.T) {
	t.Parallel()

	r, err := New(demoPaths())
	require.NoError(t, err)

	link, ok := r.Link("Home")
	require.True(t, ok)
	assert.Equal(t, "/", link)

	link, ok = r.Link("Motion")
	require.True(t, ok)
	assert.Equal(t, "/Motion", link)

	_, ok = r.Link("Nope")
	assert.False(t, ok)
}
