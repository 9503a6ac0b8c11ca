package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tidegap/floatplane/components"
	cfg "github.com/tidegap/floatplane/config"
	"github.com/tidegap/floatplane/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	drawOp      = &ebiten.DrawImageOptions{}
	planeSprite *ebiten.Image
)

// worldToScreen maps a world X/Z point to screen pixels. The view is
// centered on the camera's horizontal position and north (+Z) points up.
func worldToScreen(camera *components.CameraData, x, z float64, width, height int) dmath.Vec2 {
	ppm := cfg.Render.PixelsPerMeter
	return dmath.Vec2{
		X: (x-camera.Position.X)*ppm + float64(width)/2,
		Y: (camera.Position.Z-z)*ppm + float64(height)/2,
	}
}

func getCamera(ecs *ecs.ECS) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}

func offscreenCircle(pos dmath.Vec2, radius float64, width, height int) bool {
	return pos.X+radius < 0 || pos.X-radius > float64(width) ||
		pos.Y+radius < 0 || pos.Y-radius > float64(height)
}

// fadeColor scales a premultiplied color toward transparent.
func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// DrawWater fills the background and lays down the surface texture:
// deep water everywhere, a shallow halo around every island, then
// world-anchored wave marks so the surface visibly scrolls in flight.
func DrawWater(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	screen.Fill(cfg.DeepWater)

	components.Island.Each(ecs.World, func(e *donburi.Entry) {
		island := components.Island.Get(e)
		pos := worldToScreen(camera, island.Center.X, island.Center.Z, width, height)
		r := island.Radius * 1.5 * cfg.Render.PixelsPerMeter
		if offscreenCircle(pos, r, width, height) {
			return
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(r), cfg.ShallowWater, true)
	})

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	half := components.Level.Get(levelEntry).Level.WorldSize / 2
	drawWaveMarks(screen, camera, half, width, height)
}

// drawWaveMarks strokes short dashes on a grid fixed in world space.
// Alternate rows are staggered by half the spacing, marks stop at the
// edge of the water sheet.
func drawWaveMarks(screen *ebiten.Image, camera *components.CameraData, half float64, width, height int) {
	ppm := cfg.Render.PixelsPerMeter
	spacing := cfg.Render.WaveSpacing
	length := float32(cfg.Render.WaveLength * ppm)

	viewW := float64(width) / ppm
	viewH := float64(height) / ppm
	minX := math.Floor((camera.Position.X-viewW/2)/spacing) * spacing
	maxX := camera.Position.X + viewW/2 + spacing
	minZ := math.Floor((camera.Position.Z-viewH/2)/spacing) * spacing
	maxZ := camera.Position.Z + viewH/2 + spacing

	for wz := minZ; wz <= maxZ; wz += spacing {
		offset := 0.0
		if int(math.Round(wz/spacing))%2 != 0 {
			offset = spacing / 2
		}
		for wx := minX + offset; wx <= maxX; wx += spacing {
			if wx < -half || wx > half || wz < -half || wz > half {
				continue
			}
			pos := worldToScreen(camera, wx, wz, width, height)
			vector.FillRect(screen, float32(pos.X), float32(pos.Y), length, 1, cfg.WaveWhite, false)
		}
	}
}

// DrawIslands renders each island as concentric discs: shore ring,
// beach, vegetation, and a rocky cap on the tall ones.
func DrawIslands(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	ppm := cfg.Render.PixelsPerMeter

	components.Island.Each(ecs.World, func(e *donburi.Entry) {
		island := components.Island.Get(e)
		pos := worldToScreen(camera, island.Center.X, island.Center.Z, width, height)
		r := island.Radius * ppm
		if offscreenCircle(pos, r+2, width, height) {
			return
		}
		cx, cy := float32(pos.X), float32(pos.Y)

		vector.StrokeCircle(screen, cx, cy, float32(r)+2, 2, cfg.ShallowWater, true)
		vector.DrawFilledCircle(screen, cx, cy, float32(r), cfg.Sand, true)
		vector.DrawFilledCircle(screen, cx, cy, float32(r*0.72), cfg.IslandGreen, true)

		if island.Height >= 20 {
			vector.DrawFilledCircle(screen, cx, cy, float32(r*0.3), cfg.IslandRock, true)
		}
	})
}

// DrawRipples strokes the expanding splash and wake circles, fading
// with the alpha the effects system keeps up to date.
func DrawRipples(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	ppm := cfg.Render.PixelsPerMeter

	components.Ripple.Each(ecs.World, func(e *donburi.Entry) {
		ripple := components.Ripple.Get(e)
		if ripple.Radius <= 0 || ripple.Alpha <= 0 {
			return
		}
		pos := worldToScreen(camera, ripple.Center.X, ripple.Center.Z, width, height)
		r := ripple.Radius * ppm
		if offscreenCircle(pos, r, width, height) {
			return
		}
		clr := fadeColor(cfg.Ripple.Color, ripple.Alpha)
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(r), 1.5, clr, true)
	})
}

// DrawPlane draws the shadow on the water, then the plane sprite
// rotated to its heading, sheared by bank and grown with altitude.
func DrawPlane(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	planeEntry, ok := tags.Plane.First(ecs.World)
	if !ok {
		return
	}
	pose := components.Pose.Get(planeEntry)

	drawPlaneShadow(screen, camera, pose, width, height)

	if planeSprite == nil {
		planeSprite = buildPlaneSprite()
	}

	pos := worldToScreen(camera, pose.Position.X, pose.Position.Z, width, height)
	scale := 1 + pose.Position.Y*cfg.Render.SpriteAltScale
	if scale > cfg.Render.MaxSpriteScale {
		scale = cfg.Render.MaxSpriteScale
	}

	bounds := planeSprite.Bounds()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	// Shear before rotating so the bank reads in the plane's own frame
	drawOp.GeoM.Skew(-pose.Roll*cfg.Render.BankSkewFactor, 0)
	drawOp.GeoM.Rotate(pose.Yaw)
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(planeSprite, drawOp)
}

// drawPlaneShadow puts a soft disc on the water, pushed south-east
// and faded out as the plane climbs.
func drawPlaneShadow(screen *ebiten.Image, camera *components.CameraData, pose *components.PoseData, width, height int) {
	alt := pose.Position.Y
	if alt >= cfg.Render.ShadowMaxHeight {
		return
	}
	fade := 1 - alt/cfg.Render.ShadowMaxHeight

	sx := pose.Position.X + alt*cfg.Render.ShadowOffset
	sz := pose.Position.Z - alt*cfg.Render.ShadowOffset
	pos := worldToScreen(camera, sx, sz, width, height)

	r := cfg.Render.PlaneSpan / 2 * cfg.Render.PixelsPerMeter * (1 - 0.4*alt/cfg.Render.ShadowMaxHeight)
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(r), fadeColor(cfg.WaterShadow, fade), true)
}

// buildPlaneSprite composes the top-down plane once, nose pointing up.
// Pontoons go down first so the fuselage and wings overlap them.
func buildPlaneSprite() *ebiten.Image {
	ppm := cfg.Render.PixelsPerMeter
	side := int(math.Max(cfg.Render.PlaneSpan, cfg.Render.PlaneLength)*ppm) + 4
	img := ebiten.NewImage(side, side)

	cx := float32(side) / 2
	cy := float32(side) / 2
	length := float32(cfg.Render.PlaneLength * ppm)
	span := float32(cfg.Render.PlaneSpan * ppm)
	tail := float32(cfg.Render.TailSpan * ppm)
	pontoon := float32(cfg.Render.PontoonLength * ppm)

	vector.DrawFilledRect(img, cx-span*0.22-1.5, cy-pontoon/2, 3, pontoon, cfg.PlanePontoon, true)
	vector.DrawFilledRect(img, cx+span*0.22-1.5, cy-pontoon/2, 3, pontoon, cfg.PlanePontoon, true)

	vector.DrawFilledRect(img, cx-2, cy-length/2, 4, length, cfg.PlaneBody, true)
	vector.DrawFilledCircle(img, cx, cy-length/2+1, 2.5, cfg.PlaneBody, true)

	vector.DrawFilledRect(img, cx-span/2, cy-length*0.12, span, 4, cfg.PlaneWing, true)
	vector.DrawFilledRect(img, cx-tail/2, cy+length/2-3, tail, 3, cfg.PlaneWing, true)

	return img
}

// DrawClouds renders the cloud layer above everything in the world.
// Each cloud is three overlapping translucent discs, pushed away from
// the view center with altitude for a cheap parallax cue.
func DrawClouds(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	ppm := cfg.Render.PixelsPerMeter

	components.Cloud.Each(ecs.World, func(e *donburi.Entry) {
		cloud := components.Cloud.Get(e)
		pos := worldToScreen(camera, cloud.Position.X, cloud.Position.Z, width, height)

		f := 1 + cloud.Position.Y*cfg.Clouds.Parallax
		pos.X = float64(width)/2 + (pos.X-float64(width)/2)*f
		pos.Y = float64(height)/2 + (pos.Y-float64(height)/2)*f

		r := cloud.Size * ppm
		if offscreenCircle(pos, r*1.8, width, height) {
			return
		}

		cx, cy := float32(pos.X), float32(pos.Y)
		vector.DrawFilledCircle(screen, cx, cy, float32(r), cfg.Clouds.Color, true)
		vector.DrawFilledCircle(screen, cx-float32(r)*0.8, cy+float32(r)*0.2, float32(r)*0.7, cfg.Clouds.Color, true)
		vector.DrawFilledCircle(screen, cx+float32(r)*0.8, cy+float32(r)*0.15, float32(r)*0.65, cfg.Clouds.Color, true)
	})
}
