package systems

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/tidegap/floatplane/components"
	cfg "github.com/tidegap/floatplane/config"
	"github.com/tidegap/floatplane/shared/gamemath"
	"github.com/tidegap/floatplane/systems/factory"
	"github.com/tidegap/floatplane/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDynamics syncs each plane's collision object with its pose, then
// resolves island strikes and the outer flight bounds. Runs after
// UpdateWater so this tick's pose is final before any overlap test.
func UpdateDynamics(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	worldSize := components.Level.Get(levelEntry).Level.WorldSize
	half := worldSize / 2

	components.Plane.Each(ecs.World, func(e *donburi.Entry) {
		plane := components.Plane.Get(e)
		pose := components.Pose.Get(e)
		body := components.Body.Get(e)
		obj := components.Object.Get(e).Object

		syncObject(obj, pose, half)

		if resolveIslandStrike(ecs, plane, pose, body, obj) {
			syncObject(obj, pose, half)
		}
		resolveBounds(ecs, plane, pose, body, worldSize)
	})
}

// syncObject keeps the collision box centered under the pose. Space
// coordinates put the origin at the north-west corner of the water sheet.
func syncObject(obj *resolv.Object, pose *components.PoseData, half float64) {
	obj.X = pose.Position.X + half - factory.PlaneFootprint/2
	obj.Y = pose.Position.Z + half - factory.PlaneFootprint/2
	obj.Update()
}

// resolveIslandStrike pushes the plane back to the shoreline of any island
// it has flown into. The resolv boxes are only a broad phase; the
// authoritative test is the island circle while the plane is below the
// island top.
func resolveIslandStrike(ecs *ecs.ECS, plane *components.PlaneData, pose *components.PoseData, body *components.BodyData, obj *resolv.Object) bool {
	check := obj.Check(0, 0, tags.ResolvIsland)
	if check == nil {
		return false
	}

	for _, islandObj := range check.Objects {
		entry, ok := islandObj.Data.(*donburi.Entry)
		if !ok {
			continue
		}
		island := components.Island.Get(entry)

		offset := gamemath.Vec3{
			X: pose.Position.X - island.Center.X,
			Z: pose.Position.Z - island.Center.Z,
		}
		dist := offset.Length()
		if dist >= island.Radius || pose.Position.Y >= island.Height+0.5 {
			continue
		}

		dir := offset.Normalize()
		if dist < 1e-6 {
			// Dead-center hit, back out the way we came in.
			dir = pose.HorizontalForward().Scale(-1)
		}
		pose.Position.X = island.Center.X + dir.X*(island.Radius+0.5)
		pose.Position.Z = island.Center.Z + dir.Z*(island.Radius+0.5)

		// Drop the velocity component pointing into the island.
		if into := plane.Momentum.Dot(dir); into < 0 {
			plane.Momentum = plane.Momentum.Sub(dir.Scale(into))
		}
		if into := body.Velocity.Dot(dir); into < 0 {
			body.Velocity = body.Velocity.Sub(dir.Scale(into))
		}
		plane.Speed *= 0.3

		TriggerScreenShake(ecs, cfg.ScreenShake.TerrainIntensity, cfg.ScreenShake.TerrainDuration)
		TriggerMessage(ecs, "TERRAIN")
		return true
	}
	return false
}

// resolveBounds turns a plane that strayed past the edge of the play area
// around and points it back at the origin with a clean cruise state.
func resolveBounds(ecs *ecs.ECS, plane *components.PlaneData, pose *components.PoseData, body *components.BodyData, worldSize float64) {
	limit := worldSize * cfg.World.BoundsFraction
	if pose.Position.HorizontalLength() <= limit {
		return
	}

	pose.Yaw = math.Atan2(-pose.Position.X, -pose.Position.Z)
	pose.Pitch = 0
	pose.Roll = 0
	plane.BankAngle = 0
	plane.TurnMomentum = gamemath.Vec3{}
	plane.Speed = cfg.Flight.SensitivityRefSpeed
	plane.Throttle = plane.Speed / cfg.Flight.MaxSpeed

	forward := pose.Forward()
	plane.Momentum = forward.Scale(plane.Speed)
	body.Velocity = forward.Scale(plane.Speed)

	TriggerMessage(ecs, "RETURNING TO PLAY AREA")
}
