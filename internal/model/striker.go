package model

// Striker gear set tuning.
const (
	StrikerMaxStacks      = 100
	StrikerChestMaxStacks = 200
	StrikerStackTWD       = 0.65 // % TWD per stack
	StrikerBackpackTWD    = 0.9  // % TWD per stack with the backpack
)

// StrikerState is the Striker set bonus: a stack counter whose cap depends on
// the chest piece and whose per-stack TWD depends on the backpack.
type StrikerState struct {
	stacks   int
	chest    bool
	backpack bool
}

func (s *StrikerState) Stacks() int { return s.stacks }
func (s *StrikerState) HasChest() bool { return s.chest }
func (s *StrikerState) HasBackpack() bool { return s.backpack }

// MaxStacks returns the current stack cap.
func (s *StrikerState) MaxStacks() int {
	if s.chest {
		return StrikerChestMaxStacks
	}
	return StrikerMaxStacks
}

// StackRate returns TWD percent per stack.
func (s *StrikerState) StackRate() float64 {
	if s.backpack {
		return StrikerBackpackTWD
	}
	return StrikerStackTWD
}

// SetStacks stores n clamped to [0, MaxStacks].
func (s *StrikerState) SetStacks(n int) {
	s.stacks = min(max(n, 0), s.MaxStacks())
}

// SetChest equips or removes the chest piece. Removing it clamps stacks above
// the lower cap down to that cap.
func (s *StrikerState) SetChest(equipped bool) {
	s.chest = equipped
	s.SetStacks(s.stacks)
}

// SetBackpack equips or removes the backpack piece.
func (s *StrikerState) SetBackpack(equipped bool) {
	s.backpack = equipped
}

// StackDecayPerSecond returns how many stacks the set loses per second at the
// given count: 1 below 50, 2 from 50 to 100, 3 above 100. Informational only,
// nothing in the calculator advances time.
func StackDecayPerSecond(stacks int) int {
	switch {
	case stacks <= 0:
		return 0
	case stacks < 50:
		return 1
	case stacks <= 100:
		return 2
	default:
		return 3
	}
}
