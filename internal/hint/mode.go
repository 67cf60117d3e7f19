package hint

// Mode is the kind of hinting applied to a glyph.
type Mode int

const (
	// ModeNone leaves the outline untouched.
	ModeNone Mode = iota

	// ModeNative runs the font's own hint programs.
	ModeNative

	// ModeAuto runs the built-in autohinter.
	ModeAuto
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "None"
	case ModeNative:
		return "Native"
	case ModeAuto:
		return "Auto"
	default:
		return "Unknown"
	}
}

// Policy holds the inputs of the hinting mode decision.
type Policy struct {
	// Strength is the hinting strength, 0 (unhinted) to 100 (full).
	Strength int

	// ForceAuto selects the autohinter even if the font has hints.
	ForceAuto bool

	// ForbidAuto never selects the autohinter; fonts without native
	// hints are left unhinted.
	ForbidAuto bool
}

// Select returns the hinting mode for a font.
//
//   - Strength 0 always selects ModeNone.
//   - ForceAuto selects ModeAuto.
//   - ForbidAuto selects ModeNative if the font has hints, else ModeNone.
//   - Otherwise native hints are preferred, with ModeAuto as fallback.
func (p Policy) Select(hasNative bool) Mode {
	switch {
	case p.Strength <= 0:
		return ModeNone
	case p.ForceAuto:
		return ModeAuto
	case hasNative:
		return ModeNative
	case p.ForbidAuto:
		return ModeNone
	default:
		return ModeAuto
	}
}
