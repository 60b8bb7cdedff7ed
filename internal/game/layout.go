package game

import (
	"encoding/json"
	"fmt"
	"os"

	"room3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type LayoutFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name     string     `json:"name"`
	Tags     []string   `json:"tags,omitempty"`
	Position [3]float32 `json:"position"`
	Rotation [3]float32 `json:"rotation"`
	Scale    [3]float32 `json:"scale"`
	Size     [3]float32 `json:"size"`
	Color    string     `json:"color"`
}

func vec(v rl.Vector3) [3]float32 { return [3]float32{v.X, v.Y, v.Z} }

func unvec(a [3]float32) rl.Vector3 { return rl.Vector3{X: a[0], Y: a[1], Z: a[2]} }

func (def ObjectDef) build() *engine.GameObject {
	g := engine.NewBox(def.Name, unvec(def.Size))
	g.Tags = def.Tags
	g.Transform.Position = unvec(def.Position)
	g.Transform.Rotation = unvec(def.Rotation)

	// Default scale to 1 if zero
	if def.Scale != [3]float32{} {
		g.Transform.Scale = unvec(def.Scale)
	}
	return g
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	var r, g, b, a uint8
	if n, _ := fmt.Sscanf(name, "#%2x%2x%2x%2x", &r, &g, &b, &a); n == 4 {
		return rl.NewColor(r, g, b, a)
	}
	return rl.White
}

func lookupColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// --- Loading ---

func LoadLayout(path string) (LayoutFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LayoutFile{}, fmt.Errorf("read layout: %w", err)
	}

	var lf LayoutFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return LayoutFile{}, fmt.Errorf("parse layout: %w", err)
	}
	return lf, nil
}

// --- Saving ---

// Layout captures every object except the floor, with current transforms.
func (r *Room) Layout() LayoutFile {
	var lf LayoutFile
	for _, g := range r.Scene.GameObjects {
		if g == r.Floor || g.Bounds == nil {
			continue
		}
		size := rl.Vector3Subtract(g.Bounds.Max, g.Bounds.Min)
		lf.Objects = append(lf.Objects, ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: vec(g.Transform.Position),
			Rotation: vec(g.Transform.Rotation),
			Scale:    vec(g.Transform.Scale),
			Size:     vec(size),
			Color:    lookupColorName(r.Colors[g]),
		})
	}
	return lf
}

func (r *Room) SaveLayout(path string) error {
	data, err := json.MarshalIndent(r.Layout(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}

	return nil
}
