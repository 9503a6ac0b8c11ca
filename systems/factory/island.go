package factory

import (
	"github.com/solarlune/resolv"
	"github.com/tidegap/floatplane/archetypes"
	"github.com/tidegap/floatplane/components"
	"github.com/tidegap/floatplane/shared/gamemath"
	"github.com/tidegap/floatplane/shared/leveldata"
	"github.com/tidegap/floatplane/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateIsland builds a circular island obstacle. The resolv box is the
// broad phase only, half-extent 1.6x the radius; the exact circle test
// runs in the dynamics system.
func CreateIsland(ecs *ecs.ECS, isl leveldata.Island, worldSize float64) *donburi.Entry {
	island := archetypes.Island.Spawn(ecs)

	half := worldSize / 2
	side := isl.Radius * 3.2
	obj := resolv.NewObject(
		isl.X+half-side/2,
		isl.Z+half-side/2,
		side, side,
		tags.ResolvIsland,
	)
	obj.SetShape(resolv.NewRectangle(0, 0, side, side))
	obj.Data = island
	components.Object.SetValue(island, components.ObjectData{Object: obj})

	components.Island.SetValue(island, components.IslandData{
		Center: gamemath.Vec3{X: isl.X, Z: isl.Z},
		Radius: isl.Radius,
		Height: isl.Height,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return island
}
