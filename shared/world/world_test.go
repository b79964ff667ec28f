package world

import (
	"testing"

	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/shared/leveldata"
	"github.com/automoto/tilebound/shared/movement"
	"github.com/automoto/tilebound/shared/shape"
)

const cell = 16

func box(w, h int) geom.Rect { return geom.Rect{W: w, H: h} }

// testLevel has a wall at x=64 and a pond at x=128 on layer "ground", an
// empty layer "upper", one trigger and one occluder.
func testLevel() *leveldata.Level {
	tiles := shape.NewTileIndex()
	wall := tiles.Define(shape.TileKey{Tileset: "t", Coord: geom.Point{X: 0}}, shape.Impassable, true, box(32, 32))
	pond := tiles.Define(shape.TileKey{Tileset: "t", Coord: geom.Point{X: 1}}, shape.Water, true, box(32, 32))
	return &leveldata.Level{
		Name:      "test",
		MapWidth:  256,
		MapHeight: 256,
		Tiles:     tiles,
		Layers: []leveldata.LayerData{
			{Name: "ground", Placements: []shape.PlacedTile{
				wall.Place(geom.Point{X: 64, Y: 0}),
				pond.Place(geom.Point{X: 128, Y: 0}),
			}},
			{Name: "upper"},
		},
		Triggers: []leveldata.TriggerSpawn{
			{Event: "door", Rect: geom.Rect{X: 0, Y: 64, W: 32, H: 32}},
		},
		Occluders: []leveldata.OccluderSpawn{
			{RulesName: "opaque", At: geom.Point{X: 200, Y: 200}, Rects: []geom.Rect{box(16, 16)}},
		},
		SpawnPoints: []leveldata.SpawnPoint{{X: 8, Y: 8, Index: 0}, {X: 40, Y: 8, Index: 1}},
	}
}

func TestNewPlacesLevel(t *testing.T) {
	w := New(testLevel(), cell, cell)
	if len(w.Layers) != 2 {
		t.Fatalf("got %d layers, want 2", len(w.Layers))
	}
	ground := w.Layer("ground")
	if len(ground.Tiles()) != 2 {
		t.Errorf("ground has %d tiles, want 2", len(ground.Tiles()))
	}
	if len(ground.AllTriggers()) != 1 || len(ground.AllOccluders()) != 1 {
		t.Error("triggers and occluders belong to the first layer")
	}
	if upper := w.Layer("upper"); len(upper.Tiles()) != 0 || len(upper.AllTriggers()) != 0 {
		t.Error("upper layer should be empty")
	}
	if w.Layer("missing") != ground {
		t.Error("unknown layer name should fall back to the first layer")
	}
}

func TestNewEmptyLevel(t *testing.T) {
	w := New(&leveldata.Level{MapWidth: 64, MapHeight: 64}, cell, cell)
	if len(w.Layers) != 1 || w.Layers[0].Name != MainLayer {
		t.Fatalf("layers = %v, want a single %q layer", w.Layers, MainLayer)
	}
	if w.Tiles == nil {
		t.Error("tile index should never be nil")
	}
	if sp := w.SpawnAt(3); sp != (leveldata.SpawnPoint{}) {
		t.Errorf("SpawnAt without spawns = %+v, want origin", sp)
	}
}

func TestSpawnAt(t *testing.T) {
	w := New(testLevel(), cell, cell)
	if sp := w.SpawnAt(1); sp.X != 40 {
		t.Errorf("SpawnAt(1).X = %d, want 40", sp.X)
	}
	if sp := w.SpawnAt(9); sp.X != 8 {
		t.Errorf("SpawnAt(9).X = %d, want first spawn", sp.X)
	}
}

func TestMoveStopsAtWall(t *testing.T) {
	w := New(testLevel(), cell, cell)
	ground := w.Layer("ground")
	e := shape.NewEntityShape(geom.Point{}, box(32, 32))
	ground.AddEntity(e)

	if got := movement.AttemptMove(ground, e, geom.Right, 40, false); got != 32 {
		t.Fatalf("moved %d, want 32", got)
	}
	if got := movement.AttemptMove(ground, e, geom.Right, 10, false); got != 0 {
		t.Errorf("flush against wall moved %d, want 0", got)
	}
	if e.Anchor() != (geom.Point{X: 32}) {
		t.Errorf("anchor = %v, want (32,0)", e.Anchor())
	}
}

func TestLayersAreIndependent(t *testing.T) {
	w := New(testLevel(), cell, cell)
	upper := w.Layer("upper")
	e := shape.NewEntityShape(geom.Point{}, box(32, 32))
	upper.AddEntity(e)

	if got := movement.AttemptMove(upper, e, geom.Right, 40, false); got != 40 {
		t.Errorf("moved %d on upper layer, want 40", got)
	}
}

func TestBlockedByMovementClass(t *testing.T) {
	ground := New(testLevel(), cell, cell).Layer("ground")

	walker := shape.NewEntityShape(geom.Point{X: 96}, box(32, 32))
	swimmer := shape.NewEntityShape(geom.Point{X: 96}, box(32, 32))
	swimmer.Traverses = shape.MaskOf(shape.Land, shape.Water)
	ghost := shape.NewEntityShape(geom.Point{X: 96}, box(32, 32))
	ghost.NoClip = true

	tests := []struct {
		name string
		e    *shape.EntityShape
		want bool
	}{
		{"walker stops at water", walker, true},
		{"swimmer enters water", swimmer, false},
		{"noclip ignores tiles", ghost, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ground.Blocked(tt.e, geom.Point{X: 120}); got != tt.want {
				t.Errorf("Blocked = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntitiesBlockEachOther(t *testing.T) {
	upper := New(testLevel(), cell, cell).Layer("upper")
	a := shape.NewEntityShape(geom.Point{}, box(16, 16))
	b := shape.NewEntityShape(geom.Point{X: 48}, box(16, 16))
	upper.AddEntity(a)
	upper.AddEntity(b)

	if got := movement.AttemptMove(upper, a, geom.Right, 40, false); got != 32 {
		t.Fatalf("moved %d, want 32", got)
	}
	if upper.Blocked(a, a.Anchor()) {
		t.Error("an entity must not block itself")
	}

	// b moves away; the grid has to follow it
	movement.AttemptMove(upper, b, geom.Down, 32, false)
	if got := movement.AttemptMove(upper, a, geom.Right, 40, false); got != 40 {
		t.Errorf("moved %d after b left, want 40", got)
	}

	upper.RemoveEntity(b)
	if len(upper.Entities()) != 1 {
		t.Errorf("got %d entities, want 1", len(upper.Entities()))
	}
	if upper.Blocked(a, geom.Point{X: 48, Y: 32}) {
		t.Error("removed entity still blocks")
	}
}

func TestTriggersAndTracker(t *testing.T) {
	ground := New(testLevel(), cell, cell).Layer("ground")
	door := ground.AllTriggers()[0]
	e := shape.NewEntityShape(geom.Point{X: 0, Y: 32}, box(16, 16))
	ground.AddEntity(e)
	tracker := NewTriggerTracker()

	step := func(dy int) ([]*shape.TriggerShape, []*shape.TriggerShape) {
		movement.AttemptMove(ground, e, geom.Down, dy, false)
		return tracker.Update(e, ground.Triggers(e))
	}

	if entered, exited := tracker.Update(e, ground.Triggers(e)); len(entered)+len(exited) != 0 {
		t.Fatalf("outside trigger: entered=%v exited=%v", entered, exited)
	}
	// bottom edge at y=64 only touches the trigger
	if entered, _ := step(16); len(entered) != 0 {
		t.Fatal("touching edges must not fire")
	}
	if entered, _ := step(8); len(entered) != 1 || entered[0] != door || door.Event != "door" {
		t.Fatalf("entered = %v, want door", entered)
	}
	if entered, exited := step(8); len(entered)+len(exited) != 0 {
		t.Error("staying inside must not fire again")
	}
	if _, exited := step(64); len(exited) != 1 || exited[0] != door {
		t.Errorf("exited = %v, want door", exited)
	}
	if entered, _ := tracker.Update(e, []*shape.TriggerShape{door}); len(entered) != 1 {
		t.Error("re-entering should fire again")
	}
	tracker.Forget(e)
	if entered, _ := tracker.Update(e, []*shape.TriggerShape{door}); len(entered) != 1 {
		t.Error("forgotten entity should start fresh")
	}
}

func TestOccludersAround(t *testing.T) {
	ground := New(testLevel(), cell, cell).Layer("ground")
	extra := shape.NewLightShape(shape.TransparentRules(), geom.Point{X: 16, Y: 16}, box(16, 16))
	ground.AddOccluder(extra)

	tests := []struct {
		name   string
		around geom.Rect
		want   int
	}{
		{"whole map", geom.Rect{W: 256, H: 256}, 2},
		{"near origin", geom.Rect{W: 64, H: 64}, 1},
		{"empty corner", geom.Rect{X: 100, Y: 100, W: 40, H: 40}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ground.Occluders(tt.around); len(got) != tt.want {
				t.Errorf("got %d occluders, want %d", len(got), tt.want)
			}
		})
	}

	all := ground.Occluders(geom.Rect{W: 256, H: 256})
	if all[1] != extra {
		t.Error("occluders should come back in insertion order")
	}
}

func TestDebugDrawCoversLayer(t *testing.T) {
	ground := New(testLevel(), cell, cell).Layer("ground")
	ground.AddEntity(shape.NewEntityShape(geom.Point{}, box(8, 8)))
	// two tiles, one trigger, one occluder, one entity
	if got := len(ground.DebugDraw()); got != 5 {
		t.Errorf("got %d draw commands, want 5", got)
	}
}

func TestLightSegmentsWithinReach(t *testing.T) {
	ground := New(testLevel(), cell, cell).Layer("ground")

	// the level's opaque occluder sits at (200,200) 16x16
	near := ground.LightSegments(geom.Point{X: 180, Y: 208}, 32)
	if len(near) != 4 {
		t.Fatalf("got %d segments, want 4 for an opaque box", len(near))
	}
	if near[0] != (geom.Segment{A: geom.Point{X: 200, Y: 200}, B: geom.Point{X: 216, Y: 200}}) {
		t.Errorf("first segment = %v, want top edge", near[0])
	}
	if far := ground.LightSegments(geom.Point{X: 20, Y: 20}, 32); len(far) != 0 {
		t.Errorf("got %d segments out of reach, want 0", len(far))
	}
}
