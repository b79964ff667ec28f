// Command levelcheck loads levels headlessly and reports their collision
// and occlusion content.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/shared/leveldata"
	"github.com/automoto/tilebound/shared/occlusion"
	"github.com/automoto/tilebound/shared/world"
)

func main() {
	assets := flag.String("assets", config.Paths.Assets, "Asset directory")
	level := flag.String("level", "", "Level to check (empty = all)")
	light := flag.String("light", "", "Light position as x,y; prints the occluding segments")
	radius := flag.Int("radius", config.Lighting.PlayerRadius, "Light radius in pixels")
	layerName := flag.String("layer", "", "Layer the light is on (empty = first)")
	flag.Parse()

	levels, names, err := leveldata.LoadAll(os.DirFS(*assets), config.Paths.Levels)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	var lightAt *geom.Point
	if *light != "" {
		p, err := parsePoint(*light)
		if err != nil {
			log.Fatalf("Invalid -light: %v", err)
		}
		lightAt = &p
	}

	found := false
	for _, name := range names {
		if *level != "" && name != *level {
			continue
		}
		found = true
		w := world.New(levels[name], config.World.CellWidth, config.World.CellHeight)
		report(w)
		if lightAt != nil {
			reportLight(w.Layer(*layerName), *lightAt, *radius)
		}
	}
	if !found {
		log.Fatalf("Unknown level %q (have %s)", *level, strings.Join(names, ", "))
	}
}

func report(w *world.World) {
	fmt.Printf("%s: %dx%d px, %d tile prototypes, %d lights, %d movers, %d spawns\n",
		w.Name, w.Width, w.Height, w.Tiles.Len(), len(w.Lights), len(w.Movers), len(w.SpawnPoints))
	for _, l := range w.Layers {
		fmt.Printf("  layer %-12s %4d tiles %3d triggers %3d occluders\n",
			l.Name, len(l.Tiles()), len(l.AllTriggers()), len(l.AllOccluders()))
		for _, t := range l.AllTriggers() {
			b, _ := t.Geometry().Bounds()
			fmt.Printf("    trigger %q at (%d,%d) %dx%d\n", t.Event, b.X, b.Y, b.W, b.H)
		}
	}
}

func reportLight(layer *world.Layer, p geom.Point, radius int) {
	segments := layer.LightSegments(p, radius)
	fmt.Printf("  light (%d,%d) r=%d on %s: %d segments\n", p.X, p.Y, radius, layer.Name, len(segments))
	for _, s := range segments {
		fmt.Printf("    (%d,%d)-(%d,%d)\n", s.A.X, s.A.Y, s.B.X, s.B.Y)
	}
	for _, o := range layer.Occluders(geom.Rect{X: p.X - radius, Y: p.Y - radius, W: 2 * radius, H: 2 * radius}) {
		for _, r := range o.Geometry().AbsoluteRects() {
			fmt.Printf("    occluder (%d,%d) %dx%d seen from %s\n", r.X, r.Y, r.W, r.H, occlusion.Classify(p, r))
		}
	}
}

func parsePoint(s string) (geom.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geom.Point{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return geom.Point{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return geom.Point{}, fmt.Errorf("y: %w", err)
	}
	return geom.Point{X: x, Y: y}, nil
}
