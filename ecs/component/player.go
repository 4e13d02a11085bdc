package component

type Player struct {
	MoveSpeed float64
	JumpSpeed float64
	DashSpeed float64
	AimRadius float64

	Grounded bool
	Facing   float64
	Jumps    int
	Dashes   int
}

var PlayerComponent = NewComponent[Player]()
