package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/shared/shape"
	"github.com/lafriks/go-tiled"
)

// Object group names recognized in a TMX file.
const (
	GroupTriggers    = "Triggers"
	GroupOccluders   = "Occluders"
	GroupLights      = "Lights"
	GroupMovers      = "Movers"
	GroupPlayerSpawn = "PlayerSpawn"
)

// DefaultLightRadius is used for lights without a radius property.
const DefaultLightRadius = 128

// Load parses a TMX file into a Level. presets resolves occluder rule
// names; nil means BuiltinRules. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string, presets map[string]shape.Rules) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if presets == nil {
		presets = BuiltinRules()
	}

	lvl := &Level{
		Name:       strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		Tiles:      shape.NewTileIndex(),
	}

	tl := &tileLoader{
		lvl:     lvl,
		presets: presets,
		skip:    make(map[shape.TileKey]bool),
	}
	for _, layer := range levelMap.Layers {
		if !propBool(layer.Properties.GetString, "collision", true) {
			continue
		}
		data := LayerData{Name: layer.Name}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				i := y*levelMap.Width + x
				if i >= len(layer.Tiles) {
					continue
				}
				tile := layer.Tiles[i]
				if tile.IsNil() {
					continue
				}
				at := geom.Point{X: x * levelMap.TileWidth, Y: y * levelMap.TileHeight}
				proto, err := tl.prototype(tile)
				if err != nil {
					return nil, fmt.Errorf("%s: layer %q tile (%d,%d): %w", tmxPath, layer.Name, x, y, err)
				}
				if proto == nil {
					continue
				}
				data.Placements = append(data.Placements, proto.Place(at))
				if occ, ok := tl.occluders[proto.Key]; ok {
					occ.At = at
					lvl.Occluders = append(lvl.Occluders, occ)
				}
			}
		}
		lvl.Layers = append(lvl.Layers, data)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupTriggers:
			for _, o := range og.Objects {
				event := o.Properties.GetString("event")
				if event == "" {
					event = o.Name
				}
				lvl.Triggers = append(lvl.Triggers, TriggerSpawn{Event: event, Rect: objectRect(o)})
			}
		case GroupOccluders:
			for _, o := range og.Objects {
				name := o.Properties.GetString("rules")
				if name == "" {
					name = RulesOpaque
				}
				rules, ok := presets[name]
				if !ok {
					return nil, fmt.Errorf("%s: occluder %d: unknown rules %q", tmxPath, o.ID, name)
				}
				r := objectRect(o)
				lvl.Occluders = append(lvl.Occluders, OccluderSpawn{
					RulesName: name,
					Rules:     rules,
					At:        geom.Point{X: r.X, Y: r.Y},
					Rects:     []geom.Rect{{W: r.W, H: r.H}},
				})
			}
		case GroupLights:
			for _, o := range og.Objects {
				radius := o.Properties.GetInt("radius")
				if radius <= 0 {
					radius = DefaultLightRadius
				}
				lvl.Lights = append(lvl.Lights, LightSpawn{
					At:     geom.Point{X: round(o.X), Y: round(o.Y)},
					Radius: radius,
				})
			}
		case GroupMovers:
			for _, o := range og.Objects {
				lvl.Movers = append(lvl.Movers, MoverSpawn{
					Rect:   objectRect(o),
					Travel: geom.Point{X: o.Properties.GetInt("dx"), Y: o.Properties.GetInt("dy")},
					Layer:  o.Properties.GetString("layer"),
				})
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				lvl.SpawnPoints = append(lvl.SpawnPoints, SpawnPoint{
					X:     round(o.X),
					Y:     round(o.Y),
					Index: o.Properties.GetInt("spawnIndex"),
					Layer: o.Properties.GetString("layer"),
				})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.SliceStable(lvl.SpawnPoints, func(i, j int) bool {
		return lvl.SpawnPoints[i].X < lvl.SpawnPoints[j].X
	})

	return lvl, nil
}

// tileLoader builds each tile prototype once and remembers tiles that
// have no collision.
type tileLoader struct {
	lvl       *Level
	presets   map[string]shape.Rules
	skip      map[shape.TileKey]bool
	occluders map[shape.TileKey]OccluderSpawn
}

func (tl *tileLoader) prototype(tile *tiled.LayerTile) (*shape.TileShape, error) {
	ts := tile.Tileset
	key := shape.TileKey{Tileset: ts.Name, Coord: tileCoord(ts, tile.ID)}
	if tl.skip[key] {
		return nil, nil
	}
	if proto, ok := tl.lvl.Tiles.Lookup(key); ok {
		return proto, nil
	}

	tilesetTile, err := ts.GetTilesetTile(tile.ID)
	if err != nil {
		// no properties, no collision
		tl.skip[key] = true
		return nil, nil
	}

	var rects []geom.Rect
	for _, og := range tilesetTile.ObjectGroups {
		for _, o := range og.Objects {
			if r := objectRect(o); !r.Empty() {
				rects = append(rects, r)
			}
		}
	}
	movement := tilesetTile.Properties.GetString("movement")
	if movement == "" && len(rects) == 0 {
		tl.skip[key] = true
		return nil, nil
	}

	class := shape.Impassable
	if movement != "" {
		if class, err = shape.ParseMovementClass(movement); err != nil {
			return nil, err
		}
	}
	if len(rects) == 0 {
		rects = []geom.Rect{{W: ts.TileWidth, H: ts.TileHeight}}
	}
	affects := propBool(tilesetTile.Properties.GetString, "affects_entities", true)
	proto := tl.lvl.Tiles.Define(key, class, affects, rects...)

	if name := tilesetTile.Properties.GetString("occluder"); name != "" {
		rules, ok := tl.presets[name]
		if !ok {
			return nil, fmt.Errorf("unknown occluder rules %q", name)
		}
		if tl.occluders == nil {
			tl.occluders = make(map[shape.TileKey]OccluderSpawn)
		}
		tl.occluders[key] = OccluderSpawn{RulesName: name, Rules: rules, Rects: rects}
	}
	return proto, nil
}

func tileCoord(ts *tiled.Tileset, id uint32) geom.Point {
	if ts.Columns <= 0 {
		return geom.Point{X: int(id)}
	}
	cols := uint32(ts.Columns)
	return geom.Point{X: int(id % cols), Y: int(id / cols)}
}

func objectRect(o *tiled.Object) geom.Rect {
	return geom.Rect{X: round(o.X), Y: round(o.Y), W: round(o.Width), H: round(o.Height)}
}

func round(f float64) int { return int(math.Round(f)) }

// propBool reads a bool property through get, returning def when it is
// absent or malformed.
func propBool(get func(string) string, name string, def bool) bool {
	v := get(name)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// LoadAll discovers all .tmx files in levelsDir within fsys and loads
// each with the presets from RulesFile in the same directory. Returns a
// map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	presets, err := LoadRules(fsys, path.Join(levelsDir, RulesFile))
	if err != nil {
		return nil, nil, err
	}

	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		lvl, err := Load(fsys, p, presets)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels[lvl.Name] = lvl
		names = append(names, lvl.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
