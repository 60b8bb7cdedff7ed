// Package config loads room3d settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"room3d/internal/drag"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// DefaultLayoutFile is where the room layout is saved when none is configured.
const DefaultLayoutFile = "room.json"

var (
	ErrInvalidGrid     = errors.New("grid size must not be negative")
	ErrInvalidBoundary = errors.New("boundary min must not exceed max")
	ErrInvalidCamera   = errors.New("camera fov and clip planes must be positive")
)

type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

func (v Vec3) Raylib() rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

type Boundary struct {
	MinX float32 `yaml:"min_x"`
	MaxX float32 `yaml:"max_x"`
	MinZ float32 `yaml:"min_z"`
	MaxZ float32 `yaml:"max_z"`
}

type Drag struct {
	Enabled   bool     `yaml:"enabled"`
	Recursive bool     `yaml:"recursive"`
	GridSize  float32  `yaml:"grid_size"`
	FixedY    float32  `yaml:"fixed_y"`
	Boundary  Boundary `yaml:"boundary"`
}

type Camera struct {
	Position Vec3    `yaml:"position"`
	Yaw      float32 `yaml:"yaw"`
	Pitch    float32 `yaml:"pitch"`
	Fovy     float32 `yaml:"fovy"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
}

type Window struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
}

// Config is the top-level settings document. Layout names the JSON room
// layout to load and save; when empty the built-in furniture is used and
// saves go to room.json.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Layout   string `yaml:"layout"`
	Drag     Drag   `yaml:"drag"`
	Camera   Camera `yaml:"camera"`
	Window   Window `yaml:"window"`
}

// Default mirrors the room layout the controller was tuned for.
func Default() Config {
	return Config{
		LogLevel: "info",
		Drag: Drag{
			Enabled:   true,
			Recursive: true,
			GridSize:  50,
			FixedY:    25,
			Boundary:  Boundary{MinX: -400, MaxX: 400, MinZ: -400, MaxZ: 400},
		},
		Camera: Camera{
			Position: Vec3{X: 0, Y: 600, Z: 700},
			Yaw:      -90,
			Pitch:    -40,
			Fovy:     45,
			Near:     1,
			Far:      5000,
		},
		Window: Window{Width: 1280, Height: 720, Title: "room3d"},
	}
}

// Decode reads YAML from r on top of Default(), so omitted keys keep their
// default values, then validates the result.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads the YAML file at path. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ResolvePaths makes Layout absolute against the current working directory,
// defaulting it to DefaultLayoutFile. Call it before changing directory.
func (c *Config) ResolvePaths() error {
	layout := c.Layout
	if layout == "" {
		layout = DefaultLayoutFile
	}
	abs, err := filepath.Abs(layout)
	if err != nil {
		return fmt.Errorf("resolve layout path %q: %w", layout, err)
	}
	c.Layout = abs
	return nil
}

func (c Config) Validate() error {
	if c.Drag.GridSize < 0 {
		return fmt.Errorf("drag.grid_size %v: %w", c.Drag.GridSize, ErrInvalidGrid)
	}
	b := c.Drag.Boundary
	if b.MinX > b.MaxX || b.MinZ > b.MaxZ {
		return fmt.Errorf("drag.boundary x[%v,%v] z[%v,%v]: %w", b.MinX, b.MaxX, b.MinZ, b.MaxZ, ErrInvalidBoundary)
	}
	if c.Camera.Fovy <= 0 || c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera fovy=%v near=%v far=%v: %w", c.Camera.Fovy, c.Camera.Near, c.Camera.Far, ErrInvalidCamera)
	}
	return nil
}

func (c Config) Constraints() drag.Constraints {
	b := c.Drag.Boundary
	return drag.Constraints{
		GridSize: c.Drag.GridSize,
		FixedY:   c.Drag.FixedY,
		Boundary: drag.Boundary{MinX: b.MinX, MaxX: b.MaxX, MinZ: b.MinZ, MaxZ: b.MaxZ},
	}
}
