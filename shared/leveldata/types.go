// Package leveldata provides TMX world map parsing for the flight scene.
// It has no dependencies on ebitengine, donburi, or resolv — pure data only.
package leveldata

// Level holds everything parsed from a TMX world file.
type Level struct {
	Name      string
	WorldSize float64 // side length of the square play area in meters
	Islands   []Island
	Spawn     Spawn
}

// Island is a circular obstacle. Coordinates are world X/Z with the
// origin at the center of the play area.
type Island struct {
	Name   string
	X, Z   float64
	Radius float64
	Height float64 // peak altitude a plane must clear
}

// Spawn is the initial plane placement.
type Spawn struct {
	X, Z     float64
	Altitude float64
	Heading  float64 // radians, zero faces positive Z
	Speed    float64
}

// Defaults applied when a spawn point omits the matching property.
const (
	DefaultSpawnAltitude = 20.0
	DefaultSpawnSpeed    = 25.0
)
