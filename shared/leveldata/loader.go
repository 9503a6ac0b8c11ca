package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadLevel parses a TMX world file. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS. Map pixels are world meters, the map
// origin maps to the corner at (-WorldSize/2, -WorldSize/2).
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	worldMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	width := float64(worldMap.Width * worldMap.TileWidth)
	height := float64(worldMap.Height * worldMap.TileHeight)
	if width != height {
		return nil, fmt.Errorf("world map %s must be square, got %.0fx%.0f", tmxPath, width, height)
	}

	lvl := &Level{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		WorldSize: width,
	}
	half := width / 2

	spawnSeen := false
	for _, og := range worldMap.ObjectGroups {
		switch og.Name {
		case "islands":
			for _, o := range og.Objects {
				radius := o.Width / 2
				if radius <= 0 {
					return nil, fmt.Errorf("island %q in %s has no size", o.Name, tmxPath)
				}
				lvl.Islands = append(lvl.Islands, Island{
					Name: o.Name,
					// Object x/y is the top-left of the bounding box
					X:      o.X + radius - half,
					Z:      o.Y + radius - half,
					Radius: radius,
					Height: floatProperty(o, "height", 0),
				})
			}
		case "spawn":
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			lvl.Spawn = Spawn{
				X:        o.X - half,
				Z:        o.Y - half,
				Altitude: floatProperty(o, "altitude", DefaultSpawnAltitude),
				Heading:  floatProperty(o, "heading", 0),
				Speed:    floatProperty(o, "speed", DefaultSpawnSpeed),
			}
			spawnSeen = true
		}
	}

	if !spawnSeen {
		return nil, fmt.Errorf("world map %s has no spawn object group", tmxPath)
	}

	// Sort islands by name for a stable world build order
	sort.Slice(lvl.Islands, func(i, j int) bool {
		return lvl.Islands[i].Name < lvl.Islands[j].Name
	})

	return lvl, nil
}

// floatProperty reads a float object property, falling back to def when
// the property is absent. GetFloat alone cannot tell a missing property
// from an explicit zero.
func floatProperty(o *tiled.Object, name string, def float64) float64 {
	if o.Properties.GetString(name) == "" {
		return def
	}
	return o.Properties.GetFloat(name)
}
