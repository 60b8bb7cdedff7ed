package game

import (
	"errors"
	"fmt"
	"io/fs"

	"room3d/internal/camera"
	"room3d/internal/config"
	"room3d/internal/drag"
	"room3d/internal/input"
	"room3d/internal/physics"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// hudBounds is the screen area of the message and settings panel.
var hudBounds = rl.Rectangle{X: 10, Y: 10, Width: 330, Height: 100}

type Game struct {
	cfg      config.Config
	log      *zap.Logger
	Room     *Room
	Camera   *camera.Camera
	Surface  *input.MemorySurface
	Controls *drag.Controller
	poller   *Poller
	cursor   input.Cursor
	History  History
	Mood     Mood
	Message  string
}

// New builds the room, camera and drag controls. It does not touch the
// window, so it is safe to call before Run.
func New(cfg config.Config, log *zap.Logger) *Game {
	g := &Game{
		cfg:  cfg,
		log:  log,
		Mood: NewMood(),
	}

	b := cfg.Drag.Boundary
	g.Room = RoomFromLayout(g.loadLayout(), max(-b.MinX, b.MaxX, -b.MinZ, b.MaxZ))

	g.Camera = camera.New(cfg.Camera.Position.Raylib())
	g.Camera.Yaw = cfg.Camera.Yaw
	g.Camera.Pitch = cfg.Camera.Pitch
	g.Camera.Fovy = cfg.Camera.Fovy
	g.Camera.Near = cfg.Camera.Near
	g.Camera.Far = cfg.Camera.Far
	g.Camera.MoveSpeed = 300
	g.Camera.Aspect = float32(cfg.Window.Width) / float32(cfg.Window.Height)

	g.Surface = input.NewMemorySurface(input.Rect{
		Width:  float32(cfg.Window.Width),
		Height: float32(cfg.Window.Height),
	})
	g.poller = NewPoller(g.Surface)

	g.Controls = drag.New(g.Room.Movable, g.Camera, g.Surface,
		drag.WithConstraints(cfg.Constraints()),
		drag.WithRecursive(cfg.Drag.Recursive),
		drag.WithLogger(log.Named("drag")),
	)
	g.Controls.Enabled = cfg.Drag.Enabled

	g.Controls.AddEventListener(drag.DragStart, g.onDragStart)
	g.Controls.AddEventListener(drag.DragEnd, g.onDragEnd)
	return g
}

// loadLayout reads the configured layout, falling back to the default
// furniture when none is configured or the file does not exist yet.
func (g *Game) loadLayout() LayoutFile {
	if g.cfg.Layout == "" {
		return DefaultLayout()
	}
	lf, err := LoadLayout(g.cfg.Layout)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			g.log.Warn("layout unreadable, using default", zap.String("path", g.cfg.Layout), zap.Error(err))
		}
		return DefaultLayout()
	}
	g.log.Info("layout loaded", zap.String("path", g.cfg.Layout), zap.Int("objects", len(lf.Objects)))
	return lf
}

func (g *Game) layoutPath() string {
	if g.cfg.Layout == "" {
		return config.DefaultLayoutFile
	}
	return g.cfg.Layout
}

// SaveLayout writes the room's current placements to the layout path.
func (g *Game) SaveLayout() error {
	path := g.layoutPath()
	if err := g.Room.SaveLayout(path); err != nil {
		g.log.Error("save layout", zap.String("path", path), zap.Error(err))
		return err
	}
	g.Message = fmt.Sprintf("Saved %s.", path)
	g.log.Info("layout saved", zap.String("path", path))
	return nil
}

// Undo moves the most recently dragged object back to where it was picked up.
func (g *Game) Undo() {
	if g.Controls.State() == drag.Dragging {
		return
	}
	if obj := g.History.Undo(); obj != nil {
		g.Message = fmt.Sprintf("Restored %s.", obj.Name)
		g.log.Info("undo", zap.String("object", obj.Name))
	}
}

// SetEnabled switches the drag controls on or off.
func (g *Game) SetEnabled(enabled bool) {
	if g.Controls.Enabled == enabled {
		return
	}
	g.Controls.Enabled = enabled
	g.log.Info("drag controls toggled", zap.Bool("enabled", enabled))
}

// SetRecursive chooses whether hit tests descend into child objects.
func (g *Game) SetRecursive(recursive bool) {
	if g.Controls.Recursive == recursive {
		return
	}
	g.Controls.Recursive = recursive
	g.log.Info("recursive picking toggled", zap.Bool("recursive", recursive))
}

// routeMouse hides the pointer from the drag controls while it is over the
// HUD, so clicking a checkbox does not pick up furniture behind it. A drag
// already in progress keeps receiving the pointer.
func (g *Game) routeMouse(m MouseState) MouseState {
	if !m.Inside || g.Controls.State() == drag.Dragging {
		return m
	}
	if m.X >= hudBounds.X && m.X < hudBounds.X+hudBounds.Width &&
		m.Y >= hudBounds.Y && m.Y < hudBounds.Y+hudBounds.Height {
		m.Inside = false
	}
	return m
}

func (g *Game) onDragStart(e drag.Event) {
	g.History.Push(e.Object)
	g.Message = fmt.Sprintf("Selected %s.", e.Object.Name)
	g.Mood.React(e.Object.Name)
	g.log.Info("selected",
		zap.String("object", e.Object.Name),
		zap.Float32("light", g.Mood.Intensity),
	)
}

func (g *Game) onDragEnd(e drag.Event) {
	g.History.Settle(e.Object)
	p := e.Object.Transform.Position
	g.log.Info("placed",
		zap.String("object", e.Object.Name),
		zap.Float32("x", p.X),
		zap.Float32("y", p.Y),
		zap.Float32("z", p.Z),
	)
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(g.cfg.Window.Width, g.cfg.Window.Height, g.cfg.Window.Title)
	defer rl.CloseWindow()
	defer g.Controls.Dispose()

	rl.SetTargetFPS(120)
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 16)
	g.log.Info("room ready", zap.Int("movable", len(g.Room.Movable)))

	for !rl.WindowShouldClose() {
		g.Update(rl.GetFrameTime())
		g.Draw()
	}
}

func (g *Game) Update(deltaTime float32) {
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	g.Surface.SetBounds(input.Rect{Width: w, Height: h})
	if h > 0 {
		g.Camera.Aspect = w / h
	}

	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	if ctrl && rl.IsKeyPressed(rl.KeyZ) {
		g.Undo()
	}
	if ctrl && rl.IsKeyPressed(rl.KeyS) {
		// Failures are logged; the user keeps working with the unsaved room.
		_ = g.SaveLayout()
	}

	if rl.IsKeyPressed(rl.KeyT) {
		g.SetEnabled(!g.Controls.Enabled)
	}

	// Right mouse looks around; with shift held it pans instead.
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
			g.Camera.Pan(delta.X, delta.Y)
		} else {
			g.Camera.Look(delta.X, delta.Y)
		}
	}
	if rl.IsKeyDown(rl.KeyQ) {
		g.Camera.Rotate(1, deltaTime)
	}
	if rl.IsKeyDown(rl.KeyE) {
		g.Camera.Rotate(-1, deltaTime)
	}
	if !ctrl {
		g.fly(deltaTime)
	}

	g.poller.Poll(g.routeMouse(ReadMouse()))
	g.applyCursor()
}

// fly moves the camera with WASD and the up/down arrows, refusing moves
// that would pass into furniture.
func (g *Game) fly(deltaTime float32) {
	step := g.Camera.MoveSpeed * deltaTime
	forward := g.Camera.Forward()
	forward.Y = 0
	forward = rl.Vector3Normalize(forward)
	right := g.Camera.Right()

	var move rl.Vector3
	if rl.IsKeyDown(rl.KeyW) {
		move = rl.Vector3Add(move, forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = rl.Vector3Subtract(move, forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = rl.Vector3Add(move, right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = rl.Vector3Subtract(move, right)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		move.Y++
	}
	if rl.IsKeyDown(rl.KeyDown) {
		move.Y--
	}
	if move == (rl.Vector3{}) {
		return
	}
	g.Camera.MoveIfClear(rl.Vector3Scale(rl.Vector3Normalize(move), step), g.Controls.Raycaster(), g.Room.Scene.Roots())
}

func (g *Game) applyCursor() {
	c := g.Surface.Cursor()
	if c == g.cursor {
		return
	}
	g.cursor = c
	switch c {
	case input.CursorPointer:
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	case input.CursorMove:
		rl.SetMouseCursor(rl.MouseCursorResizeAll)
	default:
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.BeginMode3D(g.Camera.GetRaylibCamera())
	b := g.cfg.Drag.Boundary
	rl.DrawGrid(int32((b.MaxX-b.MinX)/max(g.cfg.Drag.GridSize, 1)), max(g.cfg.Drag.GridSize, 1))

	for _, obj := range g.Room.Scene.GameObjects {
		bounds, ok := obj.WorldBounds()
		if !ok {
			continue
		}
		box := physics.FromBoundingBox(bounds)
		center, size := box.Center(), box.Size()
		rl.DrawCubeV(center, size, g.Mood.Shade(g.Room.Colors[obj]))

		switch obj {
		case g.Controls.Selected():
			rl.DrawCubeWiresV(center, size, rl.Orange)
		case g.Controls.Hovered():
			rl.DrawCubeWiresV(center, size, rl.Yellow)
		}
	}
	rl.EndMode3D()

	g.drawHUD()
	help := fmt.Sprintf("%s | WASD fly, RMB look, shift+RMB pan, Q/E roll, ctrl+S save, ctrl+Z undo", g.Controls.State())
	rl.DrawText(help, 10, int32(rl.GetScreenHeight())-30, 18, rl.LightGray)
	rl.DrawFPS(int32(rl.GetScreenWidth())-100, 10)

	rl.EndDrawing()
}

func (g *Game) drawHUD() {
	gui.Panel(hudBounds, "room3d")

	msg := g.Message
	if msg == "" {
		msg = "Drag the furniture to arrange the room."
	}
	gui.Label(rl.Rectangle{X: hudBounds.X + 10, Y: hudBounds.Y + 34, Width: hudBounds.Width - 20, Height: 20}, msg)

	box := rl.Rectangle{X: hudBounds.X + 10, Y: hudBounds.Y + 68, Width: 18, Height: 18}
	g.SetEnabled(gui.CheckBox(box, "Drag enabled (T)", g.Controls.Enabled))

	box.X += 170
	g.SetRecursive(gui.CheckBox(box, "Pick children", g.Controls.Recursive))
}
