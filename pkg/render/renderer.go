// Package render draws a host's world in a GLFW window and feeds window
// input back to the host.
package render

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/leterax/citydrive/internal/openglhelper"
	"github.com/leterax/citydrive/pkg/engine"
	"github.com/leterax/citydrive/pkg/render/drawlist"
)

var (
	//go:embed shaders/scene.vert
	vertexShaderSource string
	//go:embed shaders/scene.frag
	fragmentShaderSource string
)

const axesLength = 50

// clearColor is only visible when the skybox is missing
var clearColor = mgl32.Vec4{0.05, 0.05, 0.1, 1}

// Renderer owns the window and drives the host once per frame
type Renderer struct {
	log    zerolog.Logger
	window *openglhelper.Window
	host   *engine.Host

	shader *openglhelper.Shader
	cube   *openglhelper.Mesh

	frames    int
	lastStats time.Time
}

// WindowOptions configures the window the renderer opens
type WindowOptions struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// NewRenderer opens a window and wires its input to host
func NewRenderer(host *engine.Host, opts WindowOptions, log zerolog.Logger) (*Renderer, error) {
	log = log.With().Str("component", "render").Logger()

	window, err := openglhelper.NewWindow(opts.Width, opts.Height, opts.Title, opts.VSync, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	shader, err := openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}

	r := &Renderer{
		log:    log,
		window: window,
		host:   host,
		shader: shader,
		cube:   openglhelper.NewCube(),
	}

	glfwWindow := window.GLFWWindow()
	glfwWindow.SetKeyCallback(r.keyCallback)
	glfwWindow.SetCursorPosCallback(r.cursorPosCallback)
	glfwWindow.SetScrollCallback(r.scrollCallback)
	glfwWindow.SetFramebufferSizeCallback(r.framebufferSizeCallback)

	width, height := window.Size()
	host.Resize(width, height)

	return r, nil
}

// Run renders until the window or the host asks to close, then releases
// the window.
func (r *Renderer) Run() {
	defer r.Cleanup()

	r.lastStats = time.Now()
	for !r.window.ShouldClose() && !r.host.ShouldClose() {
		r.window.PollEvents()
		r.window.SetMouseCaptured(r.host.MouseCaptured())

		now := time.Now()
		r.host.Frame(now)
		r.render()
		r.window.SwapBuffers()

		r.frames++
		if elapsed := now.Sub(r.lastStats); elapsed >= 5*time.Second {
			r.log.Debug().
				Float64("fps", float64(r.frames)/elapsed.Seconds()).
				Uint64("frame", r.host.FrameCount()).
				Msg("Render stats")
			r.frames = 0
			r.lastStats = now
		}
	}
}

func (r *Renderer) render() {
	r.window.Clear(clearColor)

	cam := r.host.Camera()
	opts := r.host.RenderOptions()
	world := r.host.World()

	r.shader.Use()
	r.shader.SetMat4("view", cam.ViewMatrix())
	r.shader.SetMat4("projection", cam.ProjectionMatrix())

	light := drawlist.SceneLighting(world, r.host.GlobalAmbientLight())
	r.shader.SetVec3("lightDir", light.Direction)
	r.shader.SetVec3("lightColor", light.Color)
	r.shader.SetVec3("ambient", light.Ambient)

	items := drawlist.Build(world, opts.FarPlane)
	if opts.AxesVisible {
		items = append(items, drawlist.Axes(axesLength)...)
	}

	for _, it := range items {
		r.draw(it)
	}
}

func (r *Renderer) draw(it drawlist.Item) {
	// The skybox is drawn first without depth so everything lands in front of it
	if it.Kind == engine.KindSkyBox {
		gl.DepthMask(false)
		defer gl.DepthMask(true)
	}
	if it.Transparent() {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		gl.DepthMask(false)
		defer func() {
			gl.DepthMask(true)
			gl.Disable(gl.BLEND)
		}()
	}

	r.shader.SetMat4("model", it.Model)
	r.shader.SetVec4("color", it.Color)
	r.shader.SetBool("unlit", it.Unlit)
	r.cube.Draw()
}

// Cleanup frees GPU resources and closes the window
func (r *Renderer) Cleanup() {
	if r.cube != nil {
		r.cube.Delete()
		r.cube = nil
	}
	if r.shader != nil {
		r.shader.Delete()
		r.shader = nil
	}
	if r.window != nil {
		r.window.Close()
		r.window = nil
	}
}

// Callback functions

func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	switch action {
	case glfw.Press, glfw.Repeat:
		r.host.KeyDown(engine.Key(key))
	case glfw.Release:
		r.host.KeyUp(engine.Key(key))
	}
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	r.host.MouseMove(xpos, ypos)
}

func (r *Renderer) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	r.host.MouseScroll(yoffset)
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	if width == 0 || height == 0 {
		return
	}
	r.window.OnResize(width, height)
	r.host.Resize(width, height)
}
