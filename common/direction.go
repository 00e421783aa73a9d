package common

// Direction is the horizontal facing of an entity.
type Direction int

const (
	Right Direction = iota
	Left
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Sign returns -1 for Left and +1 for Right.
func (d Direction) Sign() float32 {
	if d == Left {
		return -1
	}
	return 1
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Left {
		return Right
	}
	return Left
}

// ParseDirection maps "left"/"right" to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "left":
		return Left, true
	case "right":
		return Right, true
	}
	return Right, false
}
