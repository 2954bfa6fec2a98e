package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/spacefolio/parameter"
	"github.com/lixenwraith/spacefolio/vmath"
)

// Settings holds the rig tunables
type Settings struct {
	Offset      vmath.Vec3F // chase offset from the craft, world space
	FollowLerp  float64
	OrbitLerp   float64
	Sensitivity float64
	MinDistance float64
	MaxDistance float64
	ZoomStep    float64
	VerticalMax float64
}

// DefaultSettings is the stock camera feel
var DefaultSettings = Settings{
	Offset:      vmath.V3F(0, parameter.CameraBaseHeight, parameter.CameraBaseDistance),
	FollowLerp:  parameter.CameraFollowLerp,
	OrbitLerp:   parameter.CameraOrbitLerp,
	Sensitivity: parameter.CameraSensitivity,
	MinDistance: parameter.CameraMinDistance,
	MaxDistance: parameter.CameraMaxDistance,
	ZoomStep:    parameter.CameraZoomStep,
	VerticalMax: parameter.CameraVerticalLimit,
}

// State is the orbit bookkeeping mutated by pointer events
// Horizontal is unbounded, Vertical stays within ±VerticalMax
type State struct {
	Distance    float64
	MinDistance float64
	MaxDistance float64
	Horizontal  float64
	Vertical    float64
	Sensitivity float64
	Dragging    bool
	LastPointer vmath.Vec2F
}

// Rig follows the craft in chase mode and orbits it while paused
type Rig struct {
	settings Settings
	state    State

	position vmath.Vec3F
	lookAt   vmath.Vec3F
	orbiting bool
}

// NewRig creates a rig already in chase position behind the craft
func NewRig(settings Settings, craft vmath.Vec3F) *Rig {
	r := &Rig{
		settings: settings,
		state: State{
			MinDistance: settings.MinDistance,
			MaxDistance: settings.MaxDistance,
			Sensitivity: settings.Sensitivity,
		},
	}
	r.Snap(craft)
	return r
}

// Snap places the camera on the chase target with no smoothing
func (r *Rig) Snap(craft vmath.Vec3F) {
	r.position = vmath.V3FAdd(craft, r.settings.Offset)
	r.lookAt = craft
	r.orbiting = false
	r.state.Dragging = false
}

// Step advances the camera one frame toward the chase or orbit target
func (r *Rig) Step(craft vmath.Vec3F, paused bool) {
	if !paused {
		r.orbiting = false
		r.state.Dragging = false
		target := vmath.V3FAdd(craft, r.settings.Offset)
		r.position = vmath.V3FLerp(r.position, target, r.settings.FollowLerp)
		r.lookAt = craft
		return
	}

	if !r.orbiting {
		r.seedOrbit(craft)
		r.orbiting = true
	}

	target := vmath.V3FAdd(craft, r.orbitOffset())
	r.position = vmath.V3FLerp(r.position, target, r.settings.OrbitLerp)
	r.lookAt = craft
}

// seedOrbit derives spherical coordinates from the current camera offset
// so entering orbit does not jump
func (r *Rig) seedOrbit(craft vmath.Vec3F) {
	offset := vmath.V3FSub(r.position, craft)
	dist := vmath.V3FMag(offset)
	if dist == 0 || !vmath.IsFinite(dist) {
		offset = r.settings.Offset
		dist = vmath.V3FMag(offset)
	}

	r.state.Horizontal = math.Atan2(offset.X, offset.Z)
	r.state.Vertical = vmath.Clamp(math.Asin(vmath.Clamp(offset.Y/dist, -1, 1)), -r.settings.VerticalMax, r.settings.VerticalMax)
	r.state.Distance = vmath.Clamp(dist, r.state.MinDistance, r.state.MaxDistance)
}

func (r *Rig) orbitOffset() vmath.Vec3F {
	s := r.state
	cosV := math.Cos(s.Vertical)
	return vmath.Vec3F{
		X: s.Distance * cosV * math.Sin(s.Horizontal),
		Y: s.Distance * math.Sin(s.Vertical),
		Z: s.Distance * cosV * math.Cos(s.Horizontal),
	}
}

// PointerDown starts a drag
func (r *Rig) PointerDown(x, y float64) {
	r.state.Dragging = true
	r.state.LastPointer = vmath.Vec2F{X: x, Y: y}
}

// PointerMove rotates the orbit by the drag delta, ignored outside orbit mode
func (r *Rig) PointerMove(x, y float64) {
	if !r.state.Dragging {
		return
	}
	dx := x - r.state.LastPointer.X
	dy := y - r.state.LastPointer.Y
	r.state.LastPointer = vmath.Vec2F{X: x, Y: y}

	if !r.orbiting || !vmath.IsFinite(dx) || !vmath.IsFinite(dy) {
		return
	}
	r.state.Horizontal -= dx * r.state.Sensitivity
	r.state.Vertical = vmath.Clamp(r.state.Vertical+dy*r.state.Sensitivity, -r.settings.VerticalMax, r.settings.VerticalMax)
}

// PointerUp ends a drag
func (r *Rig) PointerUp() {
	r.state.Dragging = false
}

// Zoom changes orbit distance by delta notches, positive moves away
func (r *Rig) Zoom(delta float64) {
	if !vmath.IsFinite(delta) {
		return
	}
	d := r.state.Distance
	if d == 0 {
		d = vmath.V3FMag(r.settings.Offset)
	}
	r.state.Distance = vmath.Clamp(d+delta*r.settings.ZoomStep, r.state.MinDistance, r.state.MaxDistance)
}

// Position returns the camera eye
func (r *Rig) Position() vmath.Vec3F {
	return r.position
}

// LookAt returns the point the camera faces, always the craft
func (r *Rig) LookAt() vmath.Vec3F {
	return r.lookAt
}

func (r *Rig) Orbiting() bool {
	return r.orbiting
}

// State returns a copy of the orbit bookkeeping
func (r *Rig) State() State {
	return r.state
}

// Pose is the camera eye and target handed to the rendering boundary
type Pose struct {
	Position vmath.Vec3F
	LookAt   vmath.Vec3F
}

// View returns the right-handed view matrix, Y up
func (p Pose) View() mgl64.Mat4 {
	return mgl64.LookAtV(toMgl(p.Position), toMgl(p.LookAt), mgl64.Vec3{0, 1, 0})
}

func (r *Rig) Pose() Pose {
	return Pose{Position: r.position, LookAt: r.lookAt}
}

// View returns the view matrix for the current pose
func (r *Rig) View() mgl64.Mat4 {
	return r.Pose().View()
}

func toMgl(v vmath.Vec3F) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
