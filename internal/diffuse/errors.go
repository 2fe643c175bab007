package diffuse

import "errors"

// ErrInvalidKernel is returned by [Run] and [Kernel.Validate] for kernels
// that cannot be applied in scan order.
var ErrInvalidKernel = errors.New("diffuse: invalid kernel")
