package component

// Input is the per-frame control intent gathered by the host for a fly camera.
// Move is in camera space: X right, Y up, Z forward.
type Input struct {
	MoveX  float64
	MoveY  float64
	MoveZ  float64
	LookDX float64
	LookDY float64
	Boost  bool
}

var InputComponent = NewComponent[Input]()
