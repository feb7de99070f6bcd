package vec

// Unit is implemented by the zero sized marker types that tag the
// physical unit of a Vector or Point. The tag exists only in the type
// system; it occupies no space in a value.
type Unit interface {
	Symbol() string
}

// Micrometre tags lengths in µm, the unit scan paths are laid out in.
type Micrometre struct{}

// Millimetre tags lengths in mm.
type Millimetre struct{}

// Metre tags lengths in m.
type Metre struct{}

// Volt tags electrical potentials, as used to drive galvanometer or
// piezo stages directly.
type Volt struct{}

func (Micrometre) Symbol() string { return "um" }
func (Millimetre) Symbol() string { return "mm" }
func (Metre) Symbol() string      { return "m" }
func (Volt) Symbol() string       { return "V" }

// symbol returns the printable symbol of the unit U.
func symbol[U Unit]() string {
	var u U
	return u.Symbol()
}
