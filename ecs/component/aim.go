package component

// AimTarget is a cursor held at an offset from its entity, clamped to
// Radius.
type AimTarget struct {
	OffsetX float64
	OffsetY float64
	Radius  float64
	Active  bool
}

var AimTargetComponent = NewComponent[AimTarget]()
