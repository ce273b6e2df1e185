package errors

import "fmt"

// errno values the repo itself runs into. Magnitudes match
// uapi/asm-generic/errno-base.h; no further decoding happens here.
const (
	ENOENT = 2
	EBADF  = 9
	EFAULT = 14
	EINVAL = 22
)

// KernelError carries the errno magnitude from a negative raw syscall
// result. The code is reported, never decoded into a message.
type KernelError struct {
	Code int64
}

func (e *KernelError) Error() string {
	return fmt.Sprintf("errno %d", e.Code)
}

// New creates a new KernelError from a positive errno magnitude
func New(code int64) error {
	return &KernelError{Code: code}
}

// IsCode checks if an error has a specific errno magnitude
func IsCode(err error, code int64) bool {
	if kErr, ok := err.(*KernelError); ok {
		return kErr.Code == code
	}
	return false
}

// FromResult maps a raw signed syscall result onto the binding return
// convention: the raw result unchanged, plus a KernelError when negative.
func FromResult(res int64) (int64, error) {
	if res < 0 {
		return res, &KernelError{Code: -res}
	}
	return res, nil
}
