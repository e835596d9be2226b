package routes

import (
	"reflect"
	"testing"

	"github.com/BrandonKowalski/showcase/pkg/showcase/canvas"
	"github.com/BrandonKowalski/showcase/pkg/showcase/catalog"
	"github.com/BrandonKowalski/showcase/pkg/showcase/platform"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colorScreen(canvas.Canvas)  {}
func motionScreen(canvas.Canvas) {}

func demoRegistry() *catalog.Registry {
	return catalog.MustNew(
		catalog.Descriptor{Name: "Colors", Title: "Color Demo", Screen: colorScreen},
		catalog.Descriptor{Name: "Motion", Title: "Motion Demo", Icon: "🎬", Screen: motionScreen},
	)
}

func sameFunc(a, b catalog.ScreenFunc) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

func TestBuildParamSchema(t *testing.T) {
	t.Parallel()

	schema := BuildParamSchema(demoRegistry())

	want := ParamSchema{"Home": {}, "Colors": {}, "Motion": {}}
	assert.Equal(t, want, schema)
}

func TestBuildPathTable(t *testing.T) {
	t.Parallel()

	paths := BuildPathTable(demoRegistry())

	if diff := cmp.Diff(PathTable{"Home": "", "Colors": "Colors", "Motion": "Motion"}, paths); diff != "" {
		t.Errorf("path table mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildScreenStack_Scenario(t *testing.T) {
	t.Parallel()

	stack := BuildScreenStack(demoRegistry(), Options{Platform: platform.Info{OS: platform.OSTVOS, TV: true}})

	require.Len(t, stack, 3)
	assert.Equal(t, Home, stack[0].Name)
	assert.Equal(t, HomeTitle, stack[0].Options.Title)
	assert.Equal(t, HomeHeaderTitle, stack[0].Options.HeaderTitle)
	assert.Nil(t, stack[0].Screen)

	assert.Equal(t, catalog.Name("Colors"), stack[1].Name)
	assert.Equal(t, "Color Demo", stack[1].Options.Title)
	assert.Equal(t, "Color Demo", stack[1].Options.HeaderTitle)
	assert.True(t, sameFunc(colorScreen, stack[1].Screen))

	assert.Equal(t, catalog.Name("Motion"), stack[2].Name)
	assert.Equal(t, "Motion Demo", stack[2].Options.Title)
	assert.Equal(t, "🎬", stack[2].Options.Icon)
	assert.True(t, sameFunc(motionScreen, stack[2].Screen))
}

func TestBuildScreenStack_ReduceMotion(t *testing.T) {
	t.Parallel()

	for _, reduce := range []bool{true, false} {
		stack := BuildScreenStack(demoRegistry(), Options{ReduceMotion: reduce})

		assert.Equal(t, AnimationDefault, stack[0].Options.Animation, "Home is unaffected")

		want := AnimationDefault
		if reduce {
			want = AnimationFade
		}
		for _, e := range stack[1:] {
			assert.Equal(t, want, e.Options.Animation, e.Name)
		}
	}
}

func TestBuildScreenStack_BackControl(t *testing.T) {
	t.Parallel()

	web := BuildScreenStack(demoRegistry(), Options{Platform: platform.Info{OS: platform.OSWeb}})
	assert.Equal(t, BackHidden, web[0].Options.HeaderLeft)
	for _, e := range web[1:] {
		assert.Equal(t, BackToHome, e.Options.HeaderLeft)
	}

	tv := BuildScreenStack(demoRegistry(), Options{Platform: platform.Info{OS: platform.OSTVOS, TV: true}})
	for _, e := range tv {
		assert.Equal(t, BackDefault, e.Options.HeaderLeft)
	}
}

func TestBuildScreenStack_HomeFirstForEmptyRegistry(t *testing.T) {
	t.Parallel()

	stack := BuildScreenStack(catalog.MustNew(), Options{})
	require.Len(t, stack, 1)
	assert.Equal(t, Home, stack[0].Name)
}

func TestBuildScreenStack_PreservesRegistryOrder(t *testing.T) {
	t.Parallel()

	reg := catalog.MustNew(
		catalog.Descriptor{Name: "Motion", Title: "Motion Demo", Screen: motionScreen},
		catalog.Descriptor{Name: "Colors", Title: "Color Demo", Screen: colorScreen},
	)

	stack := BuildScreenStack(reg, Options{})
	for i, d := range reg.Descriptors() {
		assert.Equal(t, d.Name, stack[i+1].Name)
		assert.True(t, sameFunc(d.Screen, stack[i+1].Screen))
	}
}

func TestTable_Lookup(t *testing.T) {
	t.Parallel()

	table := Build(demoRegistry(), Options{})

	assert.Equal(t, []catalog.Name{"Home", "Colors", "Motion"}, table.Names())
	assert.Len(t, table.Examples(), 2)

	e, ok := table.Entry("Motion")
	require.True(t, ok)
	assert.Equal(t, "Motion Demo", e.Options.Title)

	_, ok = table.Entry("Nope")
	assert.False(t, ok)
}
