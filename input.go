package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/scenelabel/common"
	"github.com/milk9111/scenelabel/ecs"
	"github.com/milk9111/scenelabel/ecs/component"
)

const (
	stickDeadzone  = 0.2
	stickLookSpeed = 12.0 // pixels of equivalent mouse motion per frame at full tilt
)

// InputSystem samples keyboard, mouse and the first gamepad into the Input
// component of every enabled fly camera. Mouse look is active while the right
// button is held.
type InputSystem struct {
	lastX, lastY int
	dragging     bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var in component.Input
	in.MoveX = axis(ebiten.KeyD, ebiten.KeyA)
	in.MoveZ = axis(ebiten.KeyW, ebiten.KeyS)
	in.MoveY = axis(ebiten.KeySpace, ebiten.KeyShiftLeft)
	in.Boost = ebiten.IsKeyPressed(ebiten.KeyControlLeft)

	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if i.dragging {
			in.LookDX = float64(x - i.lastX)
			in.LookDY = float64(y - i.lastY)
		}
		i.dragging = true
	} else {
		i.dragging = false
	}
	i.lastX, i.lastY = x, y

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			in.MoveX = lx
			in.MoveZ = -ly
		}
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			in.LookDX = rx * stickLookSpeed
			in.LookDY = ry * stickLookSpeed
		}
		in.Boost = in.Boost || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
	}

	ecs.ForEach2(w, component.InputComponent.Kind(), component.FlyCameraComponent.Kind(), func(_ ecs.Entity, input *component.Input, fly *component.FlyCamera) {
		if !fly.Enabled {
			*input = component.Input{}
			return
		}
		*input = in
	})
}

func axis(positive, negative ebiten.Key) float64 {
	v := 0.0
	if ebiten.IsKeyPressed(positive) {
		v++
	}
	if ebiten.IsKeyPressed(negative) {
		v--
	}
	return common.Sign(v)
}
