// Package drag turns pointer input into hover feedback and constrained
// dragging of scene objects.
package drag

import (
	"room3d/internal/engine"
	"room3d/internal/input"
	"room3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Camera projects pointer samples into the world.
type Camera interface {
	ScreenRay(s input.Sample) rl.Ray
	Forward() rl.Vector3
}

type State int

const (
	Idle State = iota
	Hovering
	Dragging
)

func (s State) String() string {
	switch s {
	case Hovering:
		return "hovering"
	case Dragging:
		return "dragging"
	}
	return "idle"
}

type Option func(*Controller)

func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

func WithConstraints(cons Constraints) Option {
	return func(c *Controller) { c.Constraints = cons }
}

func WithRecursive(recursive bool) Option {
	return func(c *Controller) { c.Recursive = recursive }
}

// Controller owns the hover/drag state machine for one input surface.
// All methods must be called from the goroutine that delivers pointer events.
type Controller struct {
	// Enabled gates every handler. Disabling freezes the current state.
	Enabled bool
	// Recursive makes hit tests descend into children of candidates.
	Recursive   bool
	Constraints Constraints

	objects   []*engine.GameObject
	camera    Camera
	surface   input.Surface
	raycaster *physics.Raycaster
	listeners Listeners
	log       *zap.Logger

	active   bool
	handlers [4]input.HandlerID

	hovered  *engine.GameObject
	selected *engine.GameObject

	// Valid from drag start to drag end.
	plane   physics.Plane
	offset  rl.Vector3
	inverse rl.Matrix

	// Per-event scratch, overwritten before each use.
	pointer       input.Sample
	intersection  rl.Vector3
	worldPosition rl.Vector3
}

// New creates a controller over objects and activates it on surface.
func New(objects []*engine.GameObject, cam Camera, surface input.Surface, opts ...Option) *Controller {
	c := &Controller{
		Enabled:     true,
		Recursive:   true,
		Constraints: DefaultConstraints(),
		objects:     objects,
		camera:      cam,
		surface:     surface,
		raycaster:   physics.NewRaycaster(),
		log:         zap.NewNop(),
		inverse:     rl.MatrixIdentity(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Activate()
	return c
}

// Activate attaches the pointer handlers. Calling it twice is a no-op.
func (c *Controller) Activate() {
	if c.active {
		return
	}
	c.handlers[0] = c.surface.On(input.PointerMove, c.onPointerMove)
	c.handlers[1] = c.surface.On(input.PointerDown, c.onPointerDown)
	c.handlers[2] = c.surface.On(input.PointerUp, c.onPointerCancel)
	c.handlers[3] = c.surface.On(input.PointerLeave, c.onPointerCancel)
	c.surface.SetGestures(false)
	c.active = true
	c.log.Debug("drag controller activated")
}

// Deactivate detaches the pointer handlers and resets the cursor.
// Calling it twice is a no-op.
func (c *Controller) Deactivate() {
	if !c.active {
		return
	}
	c.surface.Off(input.PointerMove, c.handlers[0])
	c.surface.Off(input.PointerDown, c.handlers[1])
	c.surface.Off(input.PointerUp, c.handlers[2])
	c.surface.Off(input.PointerLeave, c.handlers[3])
	c.surface.SetGestures(true)
	c.surface.SetCursor(input.CursorAuto)
	c.active = false
	c.log.Debug("drag controller deactivated")
}

func (c *Controller) Dispose() {
	c.Deactivate()
}

func (c *Controller) Active() bool { return c.active }

func (c *Controller) Objects() []*engine.GameObject { return c.objects }

// SetObjects replaces the candidate set. The current hover and drag are kept.
func (c *Controller) SetObjects(objects []*engine.GameObject) { c.objects = objects }

func (c *Controller) Raycaster() *physics.Raycaster { return c.raycaster }

func (c *Controller) AddEventListener(t EventType, fn func(Event)) engine.ListenerID {
	return c.listeners.Add(t, fn)
}

func (c *Controller) RemoveEventListener(t EventType, id engine.ListenerID) bool {
	return c.listeners.Remove(t, id)
}

func (c *Controller) Hovered() *engine.GameObject { return c.hovered }

func (c *Controller) Selected() *engine.GameObject { return c.selected }

func (c *Controller) State() State {
	switch {
	case c.selected != nil:
		return Dragging
	case c.hovered != nil:
		return Hovering
	}
	return Idle
}

// Affordance derives the cursor to show from the current state.
func (c *Controller) Affordance() input.Cursor {
	switch c.State() {
	case Dragging:
		return input.CursorMove
	case Hovering:
		return input.CursorPointer
	}
	return input.CursorAuto
}

func (c *Controller) onPointerMove(ev input.PointerEvent) {
	if !c.Enabled {
		return
	}
	ray := c.ray(ev)

	if c.selected != nil {
		c.drag(ray)
		return
	}
	if ev.Pointer.CanHover() {
		c.hover(ray)
	}
}

func (c *Controller) onPointerDown(ev input.PointerEvent) {
	if !c.Enabled {
		return
	}
	ray := c.ray(ev)

	hit, ok := c.hitTest(ray)
	if !ok || hit.GameObject == c.selected {
		return
	}
	obj := hit.GameObject

	if c.selected != nil {
		c.endDrag()
	}
	if c.hovered != nil && c.hovered != obj {
		c.setHovered(nil)
	}

	c.selected = obj
	c.worldPosition = obj.WorldPosition()
	c.plane = physics.NewPlane(c.camera.Forward(), c.worldPosition)
	c.inverse = obj.ParentInverse()
	c.offset = rl.Vector3{}

	var grabbed bool
	if c.intersection, grabbed = c.plane.IntersectRay(ray); grabbed {
		c.offset = rl.Vector3Subtract(c.intersection, c.worldPosition)
	}

	c.log.Debug("drag start",
		zap.String("object", obj.Name),
		zap.Uint64("uid", obj.UID),
		zap.Bool("grabbed", grabbed),
	)
	c.listeners.emit(DragStart, obj)
	c.surface.SetCursor(c.Affordance())
}

func (c *Controller) onPointerCancel(ev input.PointerEvent) {
	if !c.Enabled {
		return
	}
	if c.selected != nil {
		c.endDrag()
	}
	c.surface.SetCursor(c.Affordance())
}

func (c *Controller) ray(ev input.PointerEvent) rl.Ray {
	c.pointer = input.Normalize(ev.X, ev.Y, c.surface.Bounds())
	return c.camera.ScreenRay(c.pointer)
}

func (c *Controller) hitTest(ray rl.Ray) (physics.RaycastHit, bool) {
	c.raycaster.Recursive = c.Recursive
	return c.raycaster.Closest(ray, c.objects)
}

func (c *Controller) hover(ray rl.Ray) {
	hit, ok := c.hitTest(ray)
	if !ok {
		c.setHovered(nil)
		return
	}
	c.setHovered(hit.GameObject)
}

// setHovered moves the hover to obj, emitting hover-off for the old object
// before hover-on for the new one. Nothing is emitted if obj is already hovered.
func (c *Controller) setHovered(obj *engine.GameObject) {
	if c.hovered == obj {
		return
	}
	if prev := c.hovered; prev != nil {
		c.hovered = nil
		c.log.Debug("hover off", zap.String("object", prev.Name))
		c.listeners.emit(HoverOff, prev)
	}
	if obj != nil {
		c.hovered = obj
		c.log.Debug("hover on", zap.String("object", obj.Name))
		c.listeners.emit(HoverOn, obj)
	}
	c.surface.SetCursor(c.Affordance())
}

func (c *Controller) drag(ray rl.Ray) {
	var ok bool
	if c.intersection, ok = c.plane.IntersectRay(ray); !ok {
		return
	}
	local := rl.Vector3Transform(rl.Vector3Subtract(c.intersection, c.offset), c.inverse)
	halfX, halfZ := HalfExtents(c.selected)
	c.selected.Transform.Position = c.Constraints.Resolve(local, halfX, halfZ)
}

func (c *Controller) endDrag() {
	obj := c.selected
	c.selected = nil
	c.log.Debug("drag end",
		zap.String("object", obj.Name),
		zap.Float32("x", obj.Transform.Position.X),
		zap.Float32("z", obj.Transform.Position.Z),
	)
	c.listeners.emit(DragEnd, obj)
}
