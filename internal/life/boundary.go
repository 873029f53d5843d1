package life

// Boundary selects how neighbor lookups behave at the edges of the board.
type Boundary int

const (
	// Wrap treats the board as a torus: coordinates wrap modulo the
	// board dimensions.
	Wrap Boundary = iota
	// Fixed treats the edges as hard walls: offsets landing outside the
	// board are skipped entirely.
	Fixed
)

func (b Boundary) String() string {
	switch b {
	case Fixed:
		return "fixed"
	default:
		return "wrap"
	}
}

// BoundaryFromString maps a config/flag value to a Boundary. Unrecognized
// values fall back to Wrap, matching the default everywhere else.
func BoundaryFromString(s string) Boundary {
	if s == "fixed" {
		return Fixed
	}
	return Wrap
}
