package telemetry

import (
	"time"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// NumJoints is the number of actuated degrees of freedom on the robot.
const NumJoints = 10

// Sample is one timestamped telemetry message from the control loop.
// The variant set is closed: only the types in this package implement it,
// so dispatch over kinds is exhaustive by construction.
type Sample interface {
	// Time returns the sample timestamp in seconds (same clock as Now).
	Time() float64

	sample()
}

// Frequency reports one measured control-loop inference rate.
type Frequency struct {
	T  float64
	Hz float64
}

// JointState reports actual and commanded joint positions in radians,
// ordered per the joint catalog.
type JointState struct {
	T       float64
	Actual  [NumJoints]float64
	Desired [NumJoints]float64
}

// JointRate reports joint angular velocities in radians per second.
type JointRate struct {
	T     float64
	Rates [NumJoints]float64
}

func (s Frequency) Time() float64  { return s.T }
func (s JointState) Time() float64 { return s.T }
func (s JointRate) Time() float64  { return s.T }

func (Frequency) sample()  {}
func (JointState) sample() {}
func (JointRate) sample()  {}

// Joint describes one catalog entry: a stable name and chart color.
type Joint struct {
	Name  string
	Color drawing.Color
}

var jointCatalog = [NumJoints]Joint{
	{"left_hip_pitch", drawing.Color{R: 0x1f, G: 0x77, B: 0xb4, A: 255}},
	{"left_hip_yaw", drawing.Color{R: 0xff, G: 0x7f, B: 0x0e, A: 255}},
	{"left_hip_roll", drawing.Color{R: 0x2c, G: 0xa0, B: 0x2c, A: 255}},
	{"left_knee_pitch", drawing.Color{R: 0xd6, G: 0x27, B: 0x28, A: 255}},
	{"left_ankle_pitch", drawing.Color{R: 0x94, G: 0x67, B: 0xbd, A: 255}},
	{"right_hip_pitch", drawing.Color{R: 0x8c, G: 0x56, B: 0x4b, A: 255}},
	{"right_hip_yaw", drawing.Color{R: 0xe3, G: 0x77, B: 0xc2, A: 255}},
	{"right_hip_roll", drawing.Color{R: 0x7f, G: 0x7f, B: 0x7f, A: 255}},
	{"right_knee_pitch", drawing.Color{R: 0xbc, G: 0xbd, B: 0x22, A: 255}},
	{"right_ankle_pitch", drawing.Color{R: 0x17, G: 0xbe, B: 0xcf, A: 255}},
}

// Joints returns the fixed joint catalog. The order matches the payload
// ordering in JointState and JointRate.
func Joints() [NumJoints]Joint { return jointCatalog }

// Now returns the shared sample clock: Unix time in fractional seconds.
func Now() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}
