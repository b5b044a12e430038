package obj

// Input holds the per-frame control state for the player. It is filled by
// the window layer and read by the simulation, so it carries no key codes.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float64
	// JumpPressed is true on the frame the jump key is pressed.
	JumpPressed bool
	// DownHeld is true while the down key is held.
	DownHeld bool
	// AttackPressed is true on the frame the attack key is pressed.
	AttackPressed bool
}

// Reset clears one-frame edges.
func (i *Input) Reset() {
	i.JumpPressed = false
	i.AttackPressed = false
}
