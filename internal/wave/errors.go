package wave

import "errors"

// ErrInvalidParameter indicates a non-positive amplitude, wavelength,
// water depth, or gravity. It is the only validated precondition in the
// system; once parameters exist, every evaluation is total.
var ErrInvalidParameter = errors.New("wave: invalid parameter (must be > 0)")
