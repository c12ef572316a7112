// Package viewer implements the interactive landscape viewer loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/landscape/internal/config"
	"github.com/Faultbox/landscape/internal/engine/camera"
	"github.com/Faultbox/landscape/internal/engine/capture"
	"github.com/Faultbox/landscape/internal/engine/input"
	"github.com/Faultbox/landscape/internal/engine/lighting"
	"github.com/Faultbox/landscape/internal/engine/renderer"
	"github.com/Faultbox/landscape/internal/engine/scene"
	"github.com/Faultbox/landscape/internal/engine/window"
	"github.com/Faultbox/landscape/internal/landscape"
	"github.com/Faultbox/landscape/internal/logger"
)

// maxFrameTime caps dt so a stall does not teleport the camera.
const maxFrameTime = 0.1

// Viewer is the main viewer instance.
type Viewer struct {
	config  *config.Config
	running bool

	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	scene       *scene.Scene
	screenshots *capture.ScreenshotCapture

	world  *landscape.World
	state  *landscape.State
	camera *camera.FirstPerson

	mouseCaptured  bool
	pendingCapture bool
	fps            int
}

// New generates the terrain and opens the viewer window.
// Invalid terrain settings fail before any window is created.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	world, err := landscape.Generate(cfg.Terrain)
	if err != nil {
		return nil, fmt.Errorf("failed to generate terrain: %w", err)
	}
	lo, hi := world.Heightfield.Range()
	logger.Info("terrain generated",
		zap.Int("grid_width", cfg.Terrain.Width),
		zap.Int("grid_depth", cfg.Terrain.Depth),
		zap.Int64("seed", cfg.Terrain.Seed),
		zap.String("noise", string(world.Kind)),
		zap.Int("vertices", len(world.Mesh.Vertices)),
		zap.Int("indices", len(world.Mesh.Indices)),
		zap.Float32("min_height", lo),
		zap.Float32("max_height", hi),
		zap.Duration("elapsed", world.Elapsed),
	)

	v := &Viewer{
		config:      cfg,
		world:       world,
		screenshots: capture.NewScreenshotCapture(cfg.Capture.Dir, cfg.Capture.Prefix),
	}

	// Window also creates the OpenGL context
	v.window, err = window.New(window.Config{
		Title:        cfg.Window.Title,
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		Fullscreen:   cfg.Window.Fullscreen,
		VSync:        cfg.Window.VSync,
		CaptureMouse: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	v.mouseCaptured = true

	width, height := v.window.GetSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:     width,
		Height:    height,
		Wireframe: cfg.Window.Wireframe,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.scene, err = scene.New(scene.Config{
		SunRadius: cfg.Sky.SunRadius,
		FogFar:    cfg.Camera.Far * 0.9,
	})
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	if err := v.scene.LoadTerrain(world.Mesh); err != nil {
		v.Close()
		return nil, err
	}

	v.input = input.New()
	v.camera = newCamera(cfg.Camera, world)

	cycle := lighting.NewDayCycle(cfg.Sky.DayLength, cfg.Sky.StartTime)
	cycle.Paused = cfg.Sky.Paused
	v.state = landscape.NewState(cycle, mgl32.Vec3(world.Center()), cfg.Sky.SunDistance)
	v.state.CameraPos = v.camera.Position

	logger.Info("viewer initialized successfully")
	return v, nil
}

func newCamera(cc config.CameraConfig, world *landscape.World) *camera.FirstPerson {
	cam := camera.NewFirstPerson(mgl32.Vec3(cc.Position))
	cam.Speed = cc.Speed
	cam.Sensitivity = cc.Sensitivity
	cam.Zoom = cc.FOV
	cam.Near = cc.Near
	cam.Far = cc.Far
	if cc.ClampToGround {
		cam.Ground = world.GroundHeight
		cam.EyeHeight = cc.EyeHeight
	}
	if cc.LookAtCenter {
		cam.LookAt(mgl32.Vec3(world.Center()))
	}
	return cam
}

// Run starts the main loop and returns when the window closes.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := min(now.Sub(lastTime).Seconds(), maxFrameTime)
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()

		v.update(float32(dt))
		v.render()
		if v.pendingCapture {
			// Read back before the swap leaves the back buffer undefined
			v.screenshot()
			v.pendingCapture = false
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.fps = frameCount
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("time_of_day", v.state.TimeOfDay()),
				zap.Float32("light_intensity", v.state.LightIntensity),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// FPS returns the frame count of the last full second.
func (v *Viewer) FPS() int {
	return v.fps
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.scene != nil {
		v.scene.Destroy()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			v.renderer.Resize(v.window.GetSize())
		case input.EventKeyDown:
			if event.Repeat {
				continue
			}
			v.handleKey(event.Key)
		}
	}
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	cycle := v.state.Cycle

	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false
	case sdl.SCANCODE_P:
		cycle.TogglePause()
		logger.Info("time of day", zap.Bool("paused", cycle.Paused))
	case sdl.SCANCODE_LEFTBRACKET:
		cycle.Slower()
		logger.Info("time scale", zap.Float32("scale", cycle.TimeScale))
	case sdl.SCANCODE_RIGHTBRACKET:
		cycle.Faster()
		logger.Info("time scale", zap.Float32("scale", cycle.TimeScale))
	case sdl.SCANCODE_N:
		v.state.SetTime(lighting.Noon)
	case sdl.SCANCODE_M:
		v.state.SetTime(lighting.Midnight)
	case sdl.SCANCODE_TAB:
		v.mouseCaptured = !v.mouseCaptured
		v.window.SetMouseCaptured(v.mouseCaptured)
	case sdl.SCANCODE_F:
		v.renderer.SetWireframe(!v.renderer.Wireframe())
	case sdl.SCANCODE_F12:
		v.pendingCapture = true
	}
}

// update advances camera and sky state.
func (v *Viewer) update(dt float32) {
	moves := []struct {
		key sdl.Scancode
		dir camera.Direction
	}{
		{sdl.SCANCODE_W, camera.Forward},
		{sdl.SCANCODE_S, camera.Backward},
		{sdl.SCANCODE_A, camera.Left},
		{sdl.SCANCODE_D, camera.Right},
		{sdl.SCANCODE_SPACE, camera.Up},
		{sdl.SCANCODE_LSHIFT, camera.Down},
	}
	for _, m := range moves {
		if v.input.IsKeyHeld(m.key) {
			v.camera.ProcessKeyboard(m.dir, dt)
		}
	}

	if v.mouseCaptured {
		dx, dy := v.input.MouseDelta()
		if dx != 0 || dy != 0 {
			// SDL reports y growing downward
			v.camera.ProcessMouseMovement(dx, -dy)
		}
	}
	if wheel := v.input.Wheel(); wheel != 0 {
		v.camera.ProcessMouseScroll(wheel)
	}

	v.state.Advance(dt)
	v.state.CameraPos = v.camera.Position
}

// render draws the current frame.
func (v *Viewer) render() {
	s := v.state
	frame := &scene.Frame{
		View:           v.camera.ViewMatrix(),
		Projection:     v.camera.ProjectionMatrix(v.renderer.Aspect()),
		ViewPos:        s.CameraPos,
		LightPos:       s.LightPos,
		LightColor:     s.SunColor,
		LightIntensity: s.LightIntensity,
		SunColor:       s.SunColor,
		SkyColor:       s.SkyColor,
	}

	v.renderer.Begin(s.SkyColor)
	v.scene.Render(frame)
}

func (v *Viewer) screenshot() {
	pixels, width, height := v.renderer.ReadPixels()
	path, err := v.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
