package assets

import (
	"embed"
	"fmt"

	"github.com/tidegap/floatplane/shared/leveldata"
)

var (
	//go:embed all:maps
	mapFS embed.FS
)

// WorldMap is the path of the default flight world inside the embedded FS.
const WorldMap = "maps/archipelago.tmx"

// MustLoadWorld parses an embedded TMX world file, panicking on failure.
// World maps ship inside the binary, a parse error is a build defect.
func MustLoadWorld(path string) *leveldata.Level {
	lvl, err := leveldata.LoadLevel(mapFS, path)
	if err != nil {
		panic(fmt.Sprintf("Failed to load world map %s: %v", path, err))
	}
	return lvl
}
