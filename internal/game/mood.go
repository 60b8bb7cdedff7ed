package game

import rl "github.com/gen2brain/raylib-go/raylib"

const fullIntensity float32 = 300

// Mood is the room's spotlight, nudged by which object the user picks up.
type Mood struct {
	Intensity float32
	Tint      rl.Color
}

func NewMood() Mood {
	return Mood{Intensity: fullIntensity, Tint: rl.NewColor(255, 215, 0, 255)}
}

// React adjusts the light for a picked object. The sphere restores full
// intensity; the cup and trophy dim it and turn it blue.
func (m *Mood) React(id string) {
	switch id {
	case "weirdSphere":
		m.Intensity = fullIntensity
	case "cup", "trophy":
		m.Intensity = max(m.Intensity-50, 0)
		m.Tint = rl.NewColor(0, 0, 255, 255)
	}
}

// Shade lights c with the current tint and intensity.
func (m Mood) Shade(c rl.Color) rl.Color {
	k := min(m.Intensity/fullIntensity, 1)
	ch := func(v, t uint8) uint8 {
		// Keep a floor of ambient light so nothing goes fully black.
		lit := float32(v) * (0.25 + 0.75*k*float32(t)/255)
		return uint8(min(lit, 255))
	}
	return rl.NewColor(ch(c.R, m.Tint.R), ch(c.G, m.Tint.G), ch(c.B, m.Tint.B), c.A)
}
