package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/scenelabel/ecs/component"
	"github.com/milk9111/scenelabel/projection"
)

// Face is one visible, lit cube face in screen space (y grows downward).
type Face struct {
	Points [4]mgl64.Vec2
	Color  color.RGBA
	Depth  float64
}

// Light is a point light resolved to world space.
type Light struct {
	Position mgl64.Vec3
	component.PointLight
}

var cubeFaces = [6][4]mgl64.Vec3{
	{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},     // +z
	{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}, // -z
	{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},     // +x
	{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}, // -x
	{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},     // +y
	{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, // -y
}

// CubeFaces returns the camera-facing faces of mesh, farthest first. A face
// with any corner off-screen is dropped.
func CubeFaces(mesh component.Mesh, model component.Transform, cam component.Camera3D, camT component.Transform, light Light, size projection.Size) []Face {
	world := model.Matrix()
	camWorld := camT.Matrix()
	half := mesh.Size / 2

	faces := make([]Face, 0, 3)
	for _, quad := range cubeFaces {
		var corners [4]mgl64.Vec3
		for i, c := range quad {
			corners[i] = world.Mul4x1(c.Mul(half).Vec4(1)).Vec3()
		}

		normal := corners[1].Sub(corners[0]).Cross(corners[2].Sub(corners[1])).Normalize()
		center := corners[0].Add(corners[2]).Mul(0.5)
		toEye := camT.Translation.Sub(center)
		if normal.Dot(toEye) <= 0 {
			continue
		}

		face := Face{Depth: toEye.Len()}
		visible := true
		for i, c := range corners {
			p, ok := projection.Project(c, cam.Projection, camWorld, size)
			if !ok {
				visible = false
				break
			}
			face.Points[i] = mgl64.Vec2{p.X(), size.Height - p.Y()}
		}
		if !visible {
			continue
		}

		face.Color = shade(mesh.Color, normal, center, light)
		faces = append(faces, face)
	}

	sort.SliceStable(faces, func(i, j int) bool { return faces[i].Depth > faces[j].Depth })
	return faces
}

// shade applies ambient plus Lambertian diffuse from a point light.
func shade(base color.RGBA, normal, point mgl64.Vec3, light Light) color.RGBA {
	toLight := light.Position.Sub(point).Normalize()
	diffuse := math.Max(0, normal.Dot(toLight)) * light.Intensity
	k := light.Ambient + (1-light.Ambient)*diffuse

	channel := func(c, l uint8) uint8 {
		v := float64(c) * float64(l) / 255 * k
		return uint8(mgl64.Clamp(math.Round(v), 0, 255))
	}
	return color.RGBA{
		R: channel(base.R, light.Color.R),
		G: channel(base.G, light.Color.G),
		B: channel(base.B, light.Color.B),
		A: base.A,
	}
}
