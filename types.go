package splitfft

import "github.com/cwbudde/splitfft/internal/fftypes"

// Float is a type constraint for the floating-point sample types supported
// by the transforms. The canonical definition is in internal/fftypes.
type Float = fftypes.Float
