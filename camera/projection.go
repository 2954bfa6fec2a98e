package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/spacefolio/parameter"
	"github.com/lixenwraith/spacefolio/vmath"
)

// Projector maps world points to viewport cells for a given camera pose
type Projector struct {
	viewProj mgl64.Mat4
	width    float64
	height   float64
}

// NewProjector builds the combined view-projection for a viewport
// cellAspect is the cell height/width ratio (terminal cells are roughly 2:1)
func NewProjector(pose Pose, width, height int, cellAspect float64) Projector {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if cellAspect <= 0 {
		cellAspect = 1
	}
	aspect := float64(width) / (float64(height) * cellAspect)
	proj := mgl64.Perspective(mgl64.DegToRad(parameter.CameraFieldOfView), aspect, parameter.CameraNearPlane, parameter.CameraFarPlane)

	return Projector{
		viewProj: proj.Mul4(pose.View()),
		width:    float64(width),
		height:   float64(height),
	}
}

// Project returns the viewport cell for p and its clip depth
// ok is false for points behind the camera or outside the viewport
func (p Projector) Project(v vmath.Vec3F) (x, y int, depth float64, ok bool) {
	clip := p.viewProj.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 1})
	w := clip.W()
	// Negated compare also rejects NaN from a degenerate pose
	if !(w > parameter.CameraNearPlane) {
		return 0, 0, 0, false
	}

	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	if !(ndcX >= -1 && ndcX <= 1 && ndcY >= -1 && ndcY <= 1) {
		return 0, 0, 0, false
	}

	x = int(math.Round((ndcX + 1) / 2 * (p.width - 1)))
	y = int(math.Round((1 - ndcY) / 2 * (p.height - 1)))
	return x, y, w, true
}
