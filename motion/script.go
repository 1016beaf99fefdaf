package motion

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"
)

var ErrScriptOutput = errors.New("motion: script must set numeric x, y and z")

var outputs = [...]string{"x", "y", "z"}

// Script is a Driver backed by a tengo program. The program reads the global
// t (elapsed seconds) and assigns the globals x, y and z.
type Script struct {
	name     string
	compiled *tengo.Compiled
}

func NewScript(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	for _, g := range []string{"t", "x", "y", "z"} {
		if err := script.Add(g, 0.0); err != nil {
			return nil, fmt.Errorf("motion: script %s: declare %s: %w", name, g, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("motion: compile %s: %w", name, err)
	}
	return &Script{name: name, compiled: compiled}, nil
}

func (s *Script) Position(elapsed float64) (mgl64.Vec3, error) {
	if err := s.compiled.Set("t", elapsed); err != nil {
		return mgl64.Vec3{}, fmt.Errorf("motion: script %s: %w", s.name, err)
	}
	// outputs start at zero every run so a point depends only on t
	for _, g := range outputs {
		if err := s.compiled.Set(g, 0.0); err != nil {
			return mgl64.Vec3{}, fmt.Errorf("motion: script %s: reset %s: %w", s.name, g, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return mgl64.Vec3{}, fmt.Errorf("motion: run %s: %w", s.name, err)
	}

	var out mgl64.Vec3
	for i, g := range outputs {
		v := s.compiled.Get(g)
		switch v.ValueType() {
		case "float", "int":
			out[i] = v.Float()
		default:
			return mgl64.Vec3{}, fmt.Errorf("%w: %s is %s", ErrScriptOutput, g, v.ValueType())
		}
	}
	return out, nil
}
