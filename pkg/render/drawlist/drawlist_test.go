package drawlist

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/citydrive/pkg/engine"
)

func assertVecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d: want %v, got %v", i, want, got)
	}
}

func labelsOf(items []Item) []string {
	var out []string
	for _, it := range items {
		out = append(out, it.Label)
	}
	return out
}

func scene(cam *engine.Camera) *engine.WorldList {
	world := engine.NewWorldList()

	wp := engine.NewWayPoint(engine.WayPointParameters{Visible: true}, 3)
	wp.SetPosition(mgl32.Vec3{50, 0, 3})
	world.Append(wp)

	light := engine.NewLight()
	light.SetLabel("Light")
	light.SetDirectional(true)
	light.SetDisplayMatrix(mgl32.HomogRotate3DY(mgl32.DegToRad(90)))
	world.Append(light)

	city := engine.NewWO("city.3ds", mgl32.Vec3{1, 1, 1})
	city.SetLabel("City")
	city.SetRenderOrder(engine.RenderOrderLight)
	world.Append(city)

	rock := engine.NewWO("rock.wrl", mgl32.Vec3{1, 1, 1})
	rock.SetLabel("Rock")
	world.Append(rock)

	hidden := engine.NewWO("hidden.wrl", mgl32.Vec3{1, 1, 1})
	hidden.SetLabel("Hidden")
	hidden.SetVisible(false)
	world.Append(hidden)

	sky := engine.NewSkyBox("sky_water+6.jpg", cam)
	sky.SetLabel("Sky Box")
	world.Append(sky)

	return world
}

func TestBuildOrdersPasses(t *testing.T) {
	cam := engine.NewCamera(mgl32.Vec3{1, 2, 3})
	items := Build(scene(cam), 1000)

	assert.Equal(t, []string{"Sky Box", "Rock", "Light", "City", "WayPoint"}, labelsOf(items))
	assert.Nil(t, Build(nil, 1000))
}

func TestSkyBoxCenteredOnCamera(t *testing.T) {
	cam := engine.NewCamera(mgl32.Vec3{1, 2, 3})
	items := Build(scene(cam), 1000)
	require.NotEmpty(t, items)

	sky := items[0]
	assert.Equal(t, engine.KindSkyBox, sky.Kind)
	assert.True(t, sky.Unlit)

	centre := sky.Model.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assertVecNear(t, mgl32.Vec3{1, 2, 3}, centre)

	corner := sky.Model.Mul4x1(mgl32.Vec4{0.5, 0.5, 0.5, 1}).Vec3()
	assert.Less(t, corner.Sub(centre).Len(), float32(1000))
}

func TestWayPointIsTransparent(t *testing.T) {
	items := Build(scene(nil), 1000)
	wp := items[len(items)-1]

	assert.True(t, wp.Transparent())
	edge := wp.Model.Mul4x1(mgl32.Vec4{0.5, 0, 0, 1}).Vec3()
	assert.InDelta(t, 53, edge.X(), 1e-4)
}

func TestTintIsStable(t *testing.T) {
	a := tint("sky_water+6.jpg", 0.35, 0.55)
	assert.Equal(t, a, tint("sky_water+6.jpg", 0.35, 0.55))
	assert.NotEqual(t, a, tint("sky_dust+6.jpg", 0.35, 0.55))

	for i := 0; i < 3; i++ {
		assert.GreaterOrEqual(t, a[i], float32(0.35))
		assert.Less(t, a[i], float32(0.9))
	}
	assert.Equal(t, float32(1), a.W())
}

func TestAxes(t *testing.T) {
	axes := Axes(10)
	require.Len(t, axes, 3)

	tip := axes[0].Model.Mul4x1(mgl32.Vec4{0.5, 0, 0, 1}).Vec3()
	assertVecNear(t, mgl32.Vec3{10, 0, 0}, tip)
	tip = axes[2].Model.Mul4x1(mgl32.Vec4{0, 0, 0.5, 1}).Vec3()
	assertVecNear(t, mgl32.Vec3{0, 0, 10}, tip)
}

func TestSceneLighting(t *testing.T) {
	l := SceneLighting(scene(nil), mgl32.Vec4{0.1, 0.1, 0.1, 1})
	assertVecNear(t, mgl32.Vec3{0, 0, -1}, l.Direction)
	assert.Equal(t, mgl32.Vec3{0.1, 0.1, 0.1}, l.Ambient)

	empty := SceneLighting(engine.NewWorldList(), mgl32.Vec4{})
	assert.Equal(t, DefaultLightDirection, empty.Direction)
}
