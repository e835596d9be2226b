package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapabilities(t *testing.T) {
	t.Parallel()

	cases := []struct {
		info   Info
		focus  bool
		noBack bool
	}{
		{Info{OS: OSTVOS, TV: true}, true, false},
		{Info{OS: OSMacOS}, true, false},
		{Info{OS: OSLinux}, false, false},
		{Info{OS: OSLinux, TV: true}, true, false},
		{Info{OS: OSWeb}, false, true},
		{Info{OS: OSIOS}, false, false},
	}

	for _, tc := range cases {
		caps := tc.info.Capabilities()
		assert.Equal(t, tc.focus, caps.FocusNavigation, tc.info.String())
		assert.Equal(t, tc.noBack, caps.SuppressDefaultBack, tc.info.String())
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Info{OS: OSLinux, TV: true}, Parse(" Linux+TV "))
	assert.Equal(t, Info{OS: OSTVOS, TV: true}, Parse("tvos"))
	assert.Equal(t, Info{OS: OSWeb}, Parse("web"))
}

func TestDetect_OverrideWins(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Info{OS: OSWeb}, Detect("web", true))
	assert.True(t, Detect("", true).TV)
}

func TestResolveMotion(t *testing.T) {
	t.Parallel()

	env := func(v string) func(string) string {
		return func(string) string { return v }
	}

	pref, err := ResolveMotion("", env("1"))
	require.NoError(t, err)
	assert.True(t, pref.ReduceMotion())

	pref, err = ResolveMotion("false", env("1"))
	require.NoError(t, err)
	assert.False(t, pref.ReduceMotion(), "override should win over the environment")

	pref, err = ResolveMotion("", env("maybe"))
	require.NoError(t, err)
	assert.False(t, pref.ReduceMotion())

	_, err = ResolveMotion("sometimes", env(""))
	require.Error(t, err)
}
