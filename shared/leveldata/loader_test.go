package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/shared/shape"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="8" nextobjectid="10">
 <tileset firstgid="1" name="terrain" tilewidth="16" tileheight="16" tilecount="4" columns="2">
  <image source="terrain.png" width="32" height="32"/>
  <tile id="0">
   <properties>
    <property name="movement" value="impassable"/>
   </properties>
  </tile>
  <tile id="1">
   <properties>
    <property name="movement" value="water"/>
   </properties>
   <objectgroup draworder="index" id="2">
    <object id="1" x="0" y="8" width="16" height="8"/>
   </objectgroup>
  </tile>
  <tile id="3">
   <properties>
    <property name="movement" value="impassable"/>
    <property name="affects_entities" type="bool" value="false"/>
    <property name="occluder" value="window"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="ground" width="4" height="3">
  <data encoding="csv">
1,0,0,1,
0,2,2,0,
3,0,0,4
</data>
 </layer>
 <layer id="2" name="decor" width="4" height="3">
  <properties>
   <property name="collision" type="bool" value="false"/>
  </properties>
  <data encoding="csv">
1,1,1,1,
0,0,0,0,
0,0,0,0
</data>
 </layer>
 <objectgroup id="3" name="Triggers">
  <object id="2" name="exit" x="48" y="16" width="16" height="16">
   <properties>
    <property name="event" value="level_exit"/>
   </properties>
  </object>
  <object id="3" name="secret" x="0" y="0" width="8" height="8"/>
 </objectgroup>
 <objectgroup id="4" name="Occluders">
  <object id="4" x="16" y="0" width="32" height="16">
   <properties>
    <property name="rules" value="window"/>
   </properties>
  </object>
  <object id="5" x="0" y="32" width="16" height="16"/>
 </objectgroup>
 <objectgroup id="5" name="Lights">
  <object id="6" x="32" y="40">
   <properties>
    <property name="radius" type="int" value="96"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="7" name="Movers">
  <object id="9" x="16" y="32" width="16" height="8">
   <properties>
    <property name="dy" type="int" value="-32"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="6" name="PlayerSpawn">
  <object id="7" x="40" y="20">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
   <point/>
  </object>
  <object id="8" x="8" y="20">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

const testRules = `
window:
  left:
    in: [left]
    out: [right]
  right:
    in: [right]
    out: [left]
grate:
  all:
    out: [top, right, bottom, left]
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/test.tmx":       {Data: []byte(testTMX)},
		"levels/occluders.yaml": {Data: []byte(testRules)},
	}
}

func loadTest(t *testing.T) *Level {
	t.Helper()
	fsys := testFS()
	presets, err := LoadRules(fsys, "levels/occluders.yaml")
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	lvl, err := Load(fsys, "levels/test.tmx", presets)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return lvl
}

func TestLoadDimensions(t *testing.T) {
	lvl := loadTest(t)
	if lvl.Name != "test" {
		t.Errorf("Name = %q, want test", lvl.Name)
	}
	if lvl.MapWidth != 64 || lvl.MapHeight != 48 {
		t.Errorf("map size = %dx%d, want 64x48", lvl.MapWidth, lvl.MapHeight)
	}
	if lvl.TileWidth != 16 || lvl.TileHeight != 16 {
		t.Errorf("tile size = %dx%d, want 16x16", lvl.TileWidth, lvl.TileHeight)
	}
}

func TestLoadTilePrototypesShared(t *testing.T) {
	lvl := loadTest(t)

	if len(lvl.Layers) != 1 {
		t.Fatalf("got %d collision layers, want 1 (decor opts out)", len(lvl.Layers))
	}
	layer := lvl.Layers[0]
	if layer.Name != "ground" {
		t.Errorf("layer name = %q, want ground", layer.Name)
	}
	// gid 3 has no tileset entry and no collision
	if len(layer.Placements) != 5 {
		t.Fatalf("got %d placements, want 5", len(layer.Placements))
	}
	if lvl.Tiles.Len() != 3 {
		t.Errorf("got %d prototypes, want 3", lvl.Tiles.Len())
	}

	byPos := make(map[geom.Point]shape.PlacedTile)
	for _, p := range layer.Placements {
		byPos[p.At] = p
	}
	wallA, wallB := byPos[geom.Point{X: 0, Y: 0}], byPos[geom.Point{X: 48, Y: 0}]
	if wallA.Proto == nil || wallA.Proto != wallB.Proto {
		t.Fatal("identical tiles should share one prototype")
	}
	if wallA.Proto.Class != shape.Impassable {
		t.Errorf("wall class = %v, want impassable", wallA.Proto.Class)
	}
	if got := wallB.Geometry().AbsoluteRects(); len(got) != 1 || got[0] != (geom.Rect{X: 48, Y: 0, W: 16, H: 16}) {
		t.Errorf("wall rects = %v, want full tile at (48,0)", got)
	}

	water := byPos[geom.Point{X: 16, Y: 16}]
	if water.Proto == nil || water.Proto.Class != shape.Water {
		t.Fatalf("tile at (16,16) = %+v, want water", water.Proto)
	}
	if water.Proto.Key != (shape.TileKey{Tileset: "terrain", Coord: geom.Point{X: 1, Y: 0}}) {
		t.Errorf("water key = %+v", water.Proto.Key)
	}
	if got := water.Geometry().AbsoluteRects(); len(got) != 1 || got[0] != (geom.Rect{X: 16, Y: 24, W: 16, H: 8}) {
		t.Errorf("water rects = %v, want lower half of the tile", got)
	}

	ghost := byPos[geom.Point{X: 48, Y: 32}]
	if ghost.Proto == nil {
		t.Fatal("missing tile at (48,32)")
	}
	if ghost.Proto.AffectsEntities {
		t.Error("affects_entities=false should be honored")
	}
	if got := ghost.Geometry().AbsoluteRects(); len(got) != 1 || got[0] != (geom.Rect{X: 48, Y: 32, W: 16, H: 16}) {
		t.Errorf("ghost rects = %v, want full tile", got)
	}
}

func TestLoadTriggers(t *testing.T) {
	lvl := loadTest(t)
	want := []TriggerSpawn{
		{Event: "level_exit", Rect: geom.Rect{X: 48, Y: 16, W: 16, H: 16}},
		{Event: "secret", Rect: geom.Rect{X: 0, Y: 0, W: 8, H: 8}},
	}
	if len(lvl.Triggers) != len(want) {
		t.Fatalf("got %d triggers, want %d", len(lvl.Triggers), len(want))
	}
	for i := range want {
		if lvl.Triggers[i] != want[i] {
			t.Errorf("trigger %d = %+v, want %+v", i, lvl.Triggers[i], want[i])
		}
	}
}

func TestLoadOccluders(t *testing.T) {
	lvl := loadTest(t)
	if len(lvl.Occluders) != 3 {
		t.Fatalf("got %d occluders, want 3", len(lvl.Occluders))
	}

	// tile occluders come first, in layer order
	tile := lvl.Occluders[0]
	if tile.RulesName != "window" || tile.At != (geom.Point{X: 48, Y: 32}) {
		t.Errorf("tile occluder = %+v", tile)
	}

	window := lvl.Occluders[1]
	if window.RulesName != "window" {
		t.Errorf("rules name = %q, want window", window.RulesName)
	}
	if window.At != (geom.Point{X: 16, Y: 0}) || len(window.Rects) != 1 || window.Rects[0] != (geom.Rect{W: 32, H: 16}) {
		t.Errorf("window placement = %+v", window)
	}
	if !window.Rules.LeftOf().In[shape.EdgeLeft] || !window.Rules.LeftOf().Out[shape.EdgeRight] {
		t.Error("window should pass light in from the left and out to the right")
	}
	if window.Rules.Above().In[shape.EdgeTop] {
		t.Error("window should block light from above")
	}

	wall := lvl.Occluders[2]
	if wall.RulesName != RulesOpaque || wall.Rules != shape.OpaqueRules() {
		t.Errorf("default occluder = %+v, want opaque", wall)
	}
}

func TestLoadLightsAndSpawns(t *testing.T) {
	lvl := loadTest(t)
	if len(lvl.Lights) != 1 || lvl.Lights[0] != (LightSpawn{At: geom.Point{X: 32, Y: 40}, Radius: 96}) {
		t.Errorf("lights = %+v", lvl.Lights)
	}
	if len(lvl.SpawnPoints) != 2 {
		t.Fatalf("got %d spawns, want 2", len(lvl.SpawnPoints))
	}
	if lvl.SpawnPoints[0].X != 8 || lvl.SpawnPoints[0].Index != 0 {
		t.Errorf("first spawn = %+v, want leftmost", lvl.SpawnPoints[0])
	}
	if lvl.SpawnPoints[1].X != 40 || lvl.SpawnPoints[1].Index != 1 {
		t.Errorf("second spawn = %+v", lvl.SpawnPoints[1])
	}
}

func TestLoadMovers(t *testing.T) {
	lvl := loadTest(t)
	want := MoverSpawn{Rect: geom.Rect{X: 16, Y: 32, W: 16, H: 8}, Travel: geom.Point{Y: -32}}
	if len(lvl.Movers) != 1 || lvl.Movers[0] != want {
		t.Errorf("movers = %+v, want [%+v]", lvl.Movers, want)
	}
}

func TestLoadUnknownRules(t *testing.T) {
	fsys := testFS()
	if _, err := Load(fsys, "levels/test.tmx", nil); err == nil {
		t.Fatal("expected error for unknown rules preset")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "levels/none.tmx", nil); err == nil {
		t.Fatal("expected error for missing TMX")
	}
}

func TestLoadAll(t *testing.T) {
	levels, names, err := LoadAll(testFS(), "levels")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(names) != 1 || names[0] != "test" {
		t.Fatalf("names = %v, want [test]", names)
	}
	if levels["test"] == nil {
		t.Fatal("level test not loaded")
	}

	if _, _, err := LoadAll(fstest.MapFS{}, "levels"); err == nil {
		t.Error("expected error for empty directory")
	}
}

func TestParseRules(t *testing.T) {
	presets, err := ParseRules([]byte(testRules))
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	for _, name := range []string{RulesOpaque, RulesTransparent, "window", "grate"} {
		if _, ok := presets[name]; !ok {
			t.Errorf("missing preset %q", name)
		}
	}

	grate := presets["grate"]
	for _, e := range shape.Edges {
		for _, out := range shape.Edges {
			if !grate[e].Out[out] {
				t.Errorf("grate side %v should pass out through %v", e, out)
			}
		}
		if grate[e].In != ([4]bool{}) {
			t.Errorf("grate side %v In = %v, want closed", e, grate[e].In)
		}
	}
}

func TestParseRulesErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "window: [unterminated"},
		{"bad edge", "window:\n  above:\n    in: [sideways]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRules([]byte(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	presets, err := LoadRules(fstest.MapFS{}, "levels/occluders.yaml")
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	if len(presets) != 2 {
		t.Errorf("got %d presets, want the 2 built-ins", len(presets))
	}
}
