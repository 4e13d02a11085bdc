package system

import (
	"math"

	"github.com/milk9111/actionmap/common"
	"github.com/milk9111/actionmap/ecs"
	"github.com/milk9111/actionmap/ecs/component"
)

const (
	minAimRadius  = 40.0
	maxAimRadius  = 320.0
	zoomStep      = 12.0
	mouseLookGain = 1.0
)

// AimSystem moves the aim cursor. A deflected right stick places the cursor
// directly; otherwise mouse look deltas nudge it. The wheel scales the
// radius.
type AimSystem struct{}

func NewAimSystem() *AimSystem {
	return &AimSystem{}
}

func (a *AimSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.InputComponent, component.AimTargetComponent, func(_ ecs.Entity, in *component.Input, aim *component.AimTarget) {
		if in.Zoom != 0 && !math.IsNaN(in.Zoom) {
			aim.Radius = common.Clamp(aim.Radius+in.Zoom*zoomStep, minAimRadius, maxAimRadius)
		}

		stick := in.AimX != 0 || in.AimY != 0
		switch {
		case stick:
			aim.OffsetX = in.AimX * aim.Radius
			aim.OffsetY = in.AimY * aim.Radius
		case in.AimHeld:
			aim.OffsetX += finite(in.LookX) * mouseLookGain
			aim.OffsetY += finite(in.LookY) * mouseLookGain
		}
		aim.OffsetX, aim.OffsetY = clampLength(aim.OffsetX, aim.OffsetY, aim.Radius)
		aim.Active = stick || in.AimHeld
	})
}

func clampLength(x, y, limit float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l <= limit || l == 0 {
		return x, y
	}
	scale := limit / l
	return x * scale, y * scale
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
