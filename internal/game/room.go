package game

import (
	"room3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const movableTag = "movable"

type furniture struct {
	id       string
	size     rl.Vector3
	position rl.Vector3
	color    rl.Color
}

var roomFurniture = []furniture{
	{"weirdSphere", rl.Vector3{X: 60, Y: 60, Z: 60}, rl.Vector3{X: -150, Y: 25, Z: 100}, rl.Purple},
	{"cup", rl.Vector3{X: 30, Y: 40, Z: 30}, rl.Vector3{X: 50, Y: 25, Z: -50}, rl.SkyBlue},
	{"trophy", rl.Vector3{X: 40, Y: 80, Z: 40}, rl.Vector3{X: 200, Y: 25, Z: 150}, rl.Gold},
	{"table", rl.Vector3{X: 160, Y: 50, Z: 90}, rl.Vector3{X: 0, Y: 25, Z: 250}, rl.Brown},
}

// Room is the scene plus the subset of its objects the user may drag.
type Room struct {
	Scene   *engine.Scene
	Floor   *engine.GameObject
	Movable []*engine.GameObject
	Colors  map[*engine.GameObject]rl.Color
}

// BuildRoom lays out a floor matching the drag boundary and the default
// furniture on top of it.
func BuildRoom(halfWidth float32) *Room {
	return RoomFromLayout(DefaultLayout(), halfWidth)
}

// RoomFromLayout builds the floor and one box per layout object. Objects
// tagged "movable" become drag candidates.
func RoomFromLayout(layout LayoutFile, halfWidth float32) *Room {
	r := &Room{
		Scene:  engine.NewScene("room"),
		Colors: make(map[*engine.GameObject]rl.Color),
	}

	r.Floor = engine.NewBox("floor", rl.Vector3{X: halfWidth * 2, Y: 2, Z: halfWidth * 2})
	r.Floor.Transform.Position = rl.Vector3{Y: -1}
	r.Scene.AddGameObject(r.Floor)
	r.Colors[r.Floor] = rl.DarkGray

	for _, def := range layout.Objects {
		obj := def.build()
		r.Scene.AddGameObject(obj)
		r.Colors[obj] = lookupColor(def.Color)
	}
	r.Movable = r.Scene.FindByTag(movableTag)
	return r
}

func DefaultLayout() LayoutFile {
	var lf LayoutFile
	for _, f := range roomFurniture {
		lf.Objects = append(lf.Objects, ObjectDef{
			Name:     f.id,
			Tags:     []string{movableTag},
			Position: vec(f.position),
			Scale:    [3]float32{1, 1, 1},
			Size:     vec(f.size),
			Color:    lookupColorName(f.color),
		})
	}
	return lf
}
