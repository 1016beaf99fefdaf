// Package motion computes the tracked object's position from elapsed time.
// Drivers are stateless: the same elapsed time always gives the same point.
package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Driver yields a world-space position for an elapsed time in seconds.
type Driver interface {
	Position(elapsed float64) (mgl64.Vec3, error)
}

// Lissajous drives each axis with an independent sine:
// p[i] = sin(elapsed*Frequency[i] + Phase[i]) * Amplitude[i].
type Lissajous struct {
	Amplitude mgl64.Vec3
	Frequency mgl64.Vec3
	Phase     mgl64.Vec3
}

// DefaultLissajous uses incommensurate per-axis frequencies so the path looks
// aperiodic over short windows.
func DefaultLissajous() Lissajous {
	return Lissajous{
		Amplitude: mgl64.Vec3{3, 1, 5},
		Frequency: mgl64.Vec3{3.7, 12, 2.2},
		Phase:     mgl64.Vec3{0, math.Pi / 2, 0},
	}
}

func (l Lissajous) At(elapsed float64) mgl64.Vec3 {
	return mgl64.Vec3{
		math.Sin(elapsed*l.Frequency[0]+l.Phase[0]) * l.Amplitude[0],
		math.Sin(elapsed*l.Frequency[1]+l.Phase[1]) * l.Amplitude[1],
		math.Sin(elapsed*l.Frequency[2]+l.Phase[2]) * l.Amplitude[2],
	}
}

func (l Lissajous) Position(elapsed float64) (mgl64.Vec3, error) {
	return l.At(elapsed), nil
}

// ComputePosition is the default path of the tracked object.
func ComputePosition(elapsed float64) mgl64.Vec3 {
	return DefaultLissajous().At(elapsed)
}
