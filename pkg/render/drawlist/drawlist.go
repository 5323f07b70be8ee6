// Package drawlist turns a world list into the flat list of boxes the
// renderer draws each frame. It has no GL dependency so the scene rules can
// be checked without a context.
package drawlist

import (
	"hash/fnv"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/citydrive/pkg/engine"
)

// Item is one box to draw
type Item struct {
	Label string
	Kind  engine.Kind
	Order engine.RenderOrder
	Model mgl32.Mat4
	Color mgl32.Vec4
	// Unlit items ignore the scene lights
	Unlit bool
}

// Transparent reports whether the item needs blending
func (it Item) Transparent() bool {
	return it.Color.W() < 1
}

const (
	wayPointAlpha = 0.35
	axisThickness = 0.1
)

type modeled interface {
	ModelMatrix() mgl32.Mat4
}

// Build returns the visible objects of world in draw order. Skyboxes come
// first, then the opaque, light and transparent passes, each in world order.
// far sizes the skybox so it stays inside the far clip plane.
func Build(world *engine.WorldList, far float32) []Item {
	if world == nil {
		return nil
	}

	items := make([]Item, 0, world.Len())
	for _, obj := range world.Objects() {
		if !obj.IsVisible() {
			continue
		}
		if it, ok := itemFor(obj, far); ok {
			items = append(items, it)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return pass(items[i]) < pass(items[j])
	})
	return items
}

func pass(it Item) int {
	if it.Kind == engine.KindSkyBox {
		return -1
	}
	return int(it.Order)
}

func itemFor(obj engine.Object, far float32) (Item, bool) {
	it := Item{
		Label: obj.Label(),
		Kind:  obj.Kind(),
		Order: obj.RenderOrder(),
	}

	switch o := obj.(type) {
	case *engine.SkyBox:
		// A cube of side far has its corners at 0.87*far from the centre
		p := o.Position()
		it.Model = mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(mgl32.Scale3D(far, far, far))
		it.Color = tint(o.TexturePath(), 0.35, 0.55)
		it.Unlit = true
	case *engine.Light:
		it.Model = o.ModelMatrix()
		it.Color = o.Color()
		it.Unlit = true
	case *engine.WayPoint:
		// Boxes are unit sized, the trigger is a sphere of radius r
		it.Model = o.ModelMatrix().Mul4(mgl32.Scale3D(2, 2, 2))
		it.Color = mgl32.Vec4{0.2, 0.9, 0.9, wayPointAlpha}
	case *engine.WO:
		it.Model = o.ModelMatrix()
		it.Color = tint(o.ModelPath(), 0.4, 0.5)
	default:
		m, ok := obj.(modeled)
		if !ok {
			return Item{}, false
		}
		it.Model = m.ModelMatrix()
		it.Color = mgl32.Vec4{0.7, 0.7, 0.7, 1}
	}
	return it, true
}

// tint derives a stable color from a resource name so different models and
// skyboxes are told apart. Channels land in [base, base+spread).
func tint(name string, base, spread float32) mgl32.Vec4 {
	h := fnv.New32a()
	h.Write([]byte(name))
	sum := h.Sum32()

	channel := func(shift uint) float32 {
		return base + spread*float32((sum>>shift)&0xff)/256
	}
	return mgl32.Vec4{channel(0), channel(8), channel(16), 1}
}

// Axes returns the three world axes as thin boxes starting at the origin,
// colored red, green and blue for X, Y and Z.
func Axes(length float32) []Item {
	half := length / 2
	axis := func(label string, offset, scale mgl32.Vec3, color mgl32.Vec4) Item {
		return Item{
			Label: label,
			Kind:  engine.KindModel,
			Order: engine.RenderOrderOpaque,
			Model: mgl32.Translate3D(offset.X(), offset.Y(), offset.Z()).
				Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())),
			Color: color,
			Unlit: true,
		}
	}
	return []Item{
		axis("X", mgl32.Vec3{half, 0, 0}, mgl32.Vec3{length, axisThickness, axisThickness}, mgl32.Vec4{1, 0, 0, 1}),
		axis("Y", mgl32.Vec3{0, half, 0}, mgl32.Vec3{axisThickness, length, axisThickness}, mgl32.Vec4{0, 1, 0, 1}),
		axis("Z", mgl32.Vec3{0, 0, half}, mgl32.Vec3{axisThickness, axisThickness, length}, mgl32.Vec4{0, 0, 1, 1}),
	}
}

// Lighting is the light state the shader needs
type Lighting struct {
	// Direction light travels in
	Direction mgl32.Vec3
	Color     mgl32.Vec3
	Ambient   mgl32.Vec3
}

// DefaultLightDirection is used when the scene has no directional light
var DefaultLightDirection = mgl32.Vec3{0, 0, -1}

// SceneLighting picks the first directional light in world and combines it
// with the global ambient color.
func SceneLighting(world *engine.WorldList, ambient mgl32.Vec4) Lighting {
	l := Lighting{
		Direction: DefaultLightDirection,
		Color:     mgl32.Vec3{1, 1, 1},
		Ambient:   ambient.Vec3(),
	}
	if world == nil {
		return l
	}
	for _, obj := range world.Objects() {
		light, ok := obj.(*engine.Light)
		if !ok || !light.IsDirectional() || !light.IsVisible() {
			continue
		}
		l.Direction = light.Direction()
		l.Color = light.Color().Vec3()
		break
	}
	return l
}
