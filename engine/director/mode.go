package director

// Mode identifies a viewing mode. Exactly one mode is active at any time;
// the active mode determines which follow controller advances each frame and
// which camera is authoritative.
type Mode int

const (
	// ModeOrbit is the free-orbit mode: a user-rotatable spherical offset
	// around the subject, with no pointer capture.
	ModeOrbit Mode = iota

	// ModeShoulder is the over-the-shoulder third-person follow mode.
	// Requires exclusive pointer capture and dramatic lighting.
	ModeShoulder

	// ModeTactical is the raised tactical third-person follow mode.
	// Requires exclusive pointer capture and dramatic lighting.
	ModeTactical
)

// String returns the mode's name for logs.
//
// Returns:
//   - string: the mode name
func (m Mode) String() string {
	switch m {
	case ModeOrbit:
		return "orbit"
	case ModeShoulder:
		return "shoulder"
	case ModeTactical:
		return "tactical"
	default:
		return "unknown"
	}
}

// thirdPerson reports whether the mode is one of the named third-person
// follow variants.
func (m Mode) thirdPerson() bool {
	return m == ModeShoulder || m == ModeTactical
}
