package component

// Input is the per-frame view of the action table for one controllable
// entity. The input system rewrites it every frame.
type Input struct {
	MoveX       float64
	JumpPressed bool
	JumpHeld    bool
	DashPressed bool
	AimHeld     bool
	AimX        float64
	AimY        float64
	LookX       float64
	LookY       float64
	Fire        float64
	FirePressed bool
	Zoom        float64
}

var InputComponent = NewComponent[Input]()
