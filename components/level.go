package components

import (
	"github.com/tidegap/floatplane/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *leveldata.Level
}

var Level = donburi.NewComponentType[LevelData]()
