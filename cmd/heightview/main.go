package main

import (
	"fmt"
	"image"
	"image/draw"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"heightfield/internal/config"
	"heightfield/internal/export"
	"heightfield/internal/graphics"
	"heightfield/internal/input"
	"heightfield/internal/profiling"
	"heightfield/internal/render"
	"heightfield/internal/terrain"
)

const (
	windowWidth     = 900
	windowHeight    = 900
	maxPreviewOrder = 10
)

const vertexSrc = `#version 410 core
layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
uniform mat4 proj;
out vec2 uv;
void main() {
	uv = aUV;
	gl_Position = proj * vec4(aPos, 0.0, 1.0);
}`

const fragmentSrc = `#version 410 core
in vec2 uv;
uniform sampler2D heightmap;
out vec4 fragColor;
void main() {
	fragColor = texture(heightmap, uv);
}`

func init() {
	runtime.LockOSThread()
}

// viewer holds the interactive state; all of it lives on the main thread.
type viewer struct {
	settings config.Settings
	seed     int64
	relief   bool
	dirty    bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("heightview: ")

	settings, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}
	// The preview always renders 8-bit grids; above 1025 cells the window downsamples anyway.
	settings.Depth = 8
	if settings.Order > maxPreviewOrder {
		settings.SetOrder(maxPreviewOrder)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	shader, err := graphics.NewShaderFromSource(vertexSrc, fragmentSrc)
	if err != nil {
		panic(err)
	}
	defer shader.Delete()

	quad := graphics.NewQuad()
	defer quad.Delete()

	v := &viewer{
		settings: settings,
		seed:     settings.ResolveSeed(time.Now()),
		relief:   true,
	}

	img, err := v.build()
	if err != nil {
		log.Fatalln(err)
	}
	texture, err := graphics.UploadTexture(img)
	if err != nil {
		log.Fatalln(err)
	}
	defer gl.DeleteTextures(1, &texture)

	keys := input.NewManager()
	keys.SetKeyCallback(window)
	log.Printf("R reseed, Up/Down roughness, =/- order, Space relief/grey, Esc quit")

	gl.ClearColor(0.08, 0.08, 0.1, 1.0)
	shader.Use()
	shader.SetInt("heightmap", 0)

	for !window.ShouldClose() {
		for _, a := range keys.Drain() {
			v.apply(window, a)
		}
		if v.dirty && !window.ShouldClose() {
			v.dirty = false
			img, err := v.build()
			if err != nil {
				log.Printf("regenerate: %v", err)
			} else {
				graphics.ReplaceTexture(texture, img)
			}
		}

		fbw, fbh := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbw), int32(fbh))
		proj := projection(fbw, fbh)

		gl.Clear(gl.COLOR_BUFFER_BIT)
		shader.Use()
		shader.SetMatrix4("proj", &proj[0])
		quad.Draw(texture)

		window.SwapBuffers()
		glfw.WaitEventsTimeout(0.25)
	}
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "heightview", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return nil, err
	}
	return window, nil
}

// projection maps the unit quad onto the largest centred square that fits.
func projection(width, height int) mgl32.Mat4 {
	aspect := float32(width) / float32(max(height, 1))
	halfW, halfH := float32(0.5), float32(0.5)
	if aspect > 1 {
		halfW *= aspect
	} else {
		halfH /= aspect
	}
	return mgl32.Ortho2D(-halfW, halfW, -halfH, halfH)
}

// apply updates the viewer state for one queued action.
func (v *viewer) apply(w *glfw.Window, a input.Action) {
	switch a {
	case input.ActionQuit:
		w.SetShouldClose(true)
		return
	case input.ActionReseed:
		v.seed = time.Now().UnixNano()
	case input.ActionRougher:
		v.settings.SetRoughness(v.settings.Roughness + 0.1)
	case input.ActionSmoother:
		v.settings.SetRoughness(v.settings.Roughness - 0.1)
	case input.ActionGrow:
		v.settings.SetOrder(min(v.settings.Order+1, maxPreviewOrder))
	case input.ActionShrink:
		v.settings.SetOrder(v.settings.Order - 1)
	case input.ActionToggleRelief:
		v.relief = !v.relief
	}
	v.dirty = true
}

// build generates an 8-bit grid for the current state and renders it.
func (v *viewer) build() (*image.RGBA, error) {
	profiling.Reset()
	gen, err := terrain.NewGenerator(v.settings.Params(v.seed))
	if err != nil {
		return nil, err
	}
	grid, err := terrain.Generate[uint8](gen)
	if err != nil {
		return nil, err
	}

	var img *image.RGBA
	if v.relief {
		img = render.Relief(grid, render.DefaultLight, 96)
	} else {
		grey := export.Image(grid)
		img = image.NewRGBA(grey.Bounds())
		draw.Draw(img, img.Bounds(), grey, image.Point{}, draw.Src)
	}
	render.Caption(img, describe(gen.Params()))
	log.Printf("order=%d roughness=%.1f seed=%d (%s)", v.settings.Order, v.settings.Roughness, v.seed, profiling.TopN(1))
	return img, nil
}

func describe(p terrain.Params) string {
	return fmt.Sprintf("%dx%d seed=%d roughness=%.1f", p.Size, p.Size, p.Seed, p.Roughness)
}
