package app

import (
	"testing"

	"github.com/BrandonKowalski/showcase/pkg/showcase/canvas"
	"github.com/BrandonKowalski/showcase/pkg/showcase/catalog"
	"github.com/BrandonKowalski/showcase/pkg/showcase/config"
	"github.com/BrandonKowalski/showcase/pkg/showcase/examples"
	"github.com/BrandonKowalski/showcase/pkg/showcase/linking"
	"github.com/BrandonKowalski/showcase/pkg/showcase/menu"
	"github.com/BrandonKowalski/showcase/pkg/showcase/platform"
	"github.com/BrandonKowalski/showcase/pkg/showcase/router"
	"github.com/BrandonKowalski/showcase/pkg/showcase/routes"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoRegistry() *catalog.Registry {
	screen := func(canvas.Canvas) {}
	return catalog.MustNew(
		catalog.Descriptor{Name: "Colors", Title: "Color Demo", Screen: screen},
		catalog.Descriptor{Name: "Motion", Title: "Motion Demo", Icon: "🎬", Screen: screen},
	)
}

func env(vars map[string]string, remotePath string) Environment {
	return Environment{
		Getenv: func(k string) string { return vars[k] },
		FindRemote: func() (string, bool) {
			return remotePath, remotePath != ""
		},
	}
}

func TestPrepare_Defaults(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Platform = "web"

	plan, err := Prepare(cfg, demoRegistry(), "", env(nil, ""))
	require.NoError(t, err)

	assert.Equal(t, routes.Home, plan.Start)
	assert.Equal(t, routes.HomeInput{}, plan.StartInput())
	assert.False(t, plan.ReduceMotion)
	assert.Equal(t, platform.OSWeb, plan.Platform.OS)

	home, ok := plan.Table.Entry(routes.Home)
	require.True(t, ok)
	assert.Equal(t, routes.BackHidden, home.Options.HeaderLeft)
}

func TestPrepare_DeepLink(t *testing.T) {
	t.Parallel()

	plan, err := Prepare(config.Default(), demoRegistry(), "showcase://Motion", env(nil, ""))
	require.NoError(t, err)

	assert.Equal(t, catalog.Name("Motion"), plan.Start)
	assert.Nil(t, plan.StartInput())
}

func TestPrepare_UnknownLink(t *testing.T) {
	t.Parallel()

	_, err := Prepare(config.Default(), demoRegistry(), "showcase://Nope", env(nil, ""))
	assert.ErrorIs(t, err, linking.ErrUnknownLink)
}

func TestPrepare_ReduceMotion(t *testing.T) {
	t.Parallel()

	plan, err := Prepare(config.Default(), demoRegistry(), "", env(map[string]string{"REDUCE_MOTION": "1"}, ""))
	require.NoError(t, err)
	assert.True(t, plan.ReduceMotion)

	cfg := config.Default()
	cfg.ReduceMotion = "false"
	plan, err = Prepare(cfg, demoRegistry(), "", env(map[string]string{"REDUCE_MOTION": "1"}, ""))
	require.NoError(t, err)
	assert.False(t, plan.ReduceMotion, "config overrides the environment")

	for _, e := range plan.Table.Examples() {
		assert.Equal(t, routes.AnimationDefault, e.Options.Animation)
	}
}

func TestHomeAnimation_FollowsLeavingScreen(t *testing.T) {
	t.Parallel()

	plan, err := Prepare(config.Default(), demoRegistry(), "", env(map[string]string{"REDUCE_MOTION": "1"}, ""))
	require.NoError(t, err)
	home, ok := plan.Table.Entry(routes.Home)
	require.True(t, ok)

	assert.Equal(t, routes.AnimationDefault, homeAnimation(routes.HomeInput{}, home))

	stack := router.NewStack()
	transition := plan.Table.Transition()
	transition(home.Route(), routes.HomeResult{Action: routes.HomeSelected, Selected: "Colors"}, stack)
	_, input := transition("Colors", routes.ExampleResult{Back: routes.BackDefault}, stack)

	in, ok := input.(routes.HomeInput)
	require.True(t, ok)
	assert.Equal(t, routes.AnimationFade, homeAnimation(in, home))
}

func TestPrepare_RemoteMeansTV(t *testing.T) {
	t.Parallel()

	plan, err := Prepare(config.Default(), demoRegistry(), "", env(nil, "/dev/input/event3"))
	require.NoError(t, err)

	assert.Equal(t, "/dev/input/event3", plan.RemotePath)
	assert.True(t, plan.Platform.TV)
	assert.True(t, plan.Platform.Capabilities().FocusNavigation)
}

func TestPrepare_ConfiguredRemoteSkipsScan(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.RemoteDevice = "/dev/input/event9"

	plan, err := Prepare(cfg, demoRegistry(), "", Environment{
		Getenv:     func(string) string { return "" },
		FindRemote: func() (string, bool) { t.Fatal("scanned for a remote"); return "", false },
	})
	require.NoError(t, err)
	assert.Equal(t, "/dev/input/event9", plan.RemotePath)
}

func TestHomeRows(t *testing.T) {
	t.Parallel()

	plan, err := Prepare(config.Default(), demoRegistry(), "", env(nil, ""))
	require.NoError(t, err)

	want := []menu.Row{
		{Title: "Color Demo", Name: "Colors"},
		{Icon: "🎬", Title: "Motion Demo", Name: "Motion"},
	}
	if diff := cmp.Diff(want, HomeRows(plan.Table)); diff != "" {
		t.Errorf("HomeRows() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRouter_RegistersEveryRoute(t *testing.T) {
	t.Parallel()

	plan, err := Prepare(config.Default(), examples.Registry(), "", env(nil, ""))
	require.NoError(t, err)

	r := NewRouter(plan, nil, nil)
	for _, name := range plan.Table.Names() {
		assert.True(t, r.Registered(router.Route(name)), name)
	}
}
