//go:build linux && amd64

package linuxcall

import (
	"runtime"
	"unsafe"

	"github.com/carved4/go-linuxcall/pkg/errors"
	"github.com/carved4/go-linuxcall/pkg/syscall"
	"github.com/carved4/go-linuxcall/pkg/utils"
)

// Iovec mirrors struct iovec from uapi/linux/uio.h: pointer field then
// length field, 16 bytes on amd64. The kernel reads this layout from
// memory, so field order and widths are a wire contract, not a
// convenience.
type Iovec struct {
	Base *byte
	Len  uint64
}

// Writev writes the concatenation of the regions described by iov to
// fd in a single kernel call. Returns total bytes written.
func Writev(fd uintptr, iov []Iovec) (int64, error) {
	var base uintptr
	if len(iov) > 0 {
		base = uintptr(unsafe.Pointer(&iov[0]))
	}
	res := syscall.Syscall3(SYS_WRITEV, fd, base, uintptr(len(iov)))
	runtime.KeepAlive(iov)
	return errors.FromResult(res)
}

// WritevStrings writes msgs to fd in order with one writev call and no
// intermediate concatenation. Each segment's length includes its NUL
// terminator, so the terminators land in the stream; callers that want
// them stripped should pass unterminated regions through Writev
// directly. The iovec array is allocated with exactly len(msgs)
// entries and never resized, so the count handed to the kernel always
// matches the array.
func WritevStrings(fd uintptr, msgs []utils.CString) (int64, error) {
	iov := make([]Iovec, len(msgs))
	for i, m := range msgs {
		iov[i].Base = m.Ptr()
		iov[i].Len = m.Len()
	}
	res, err := Writev(fd, iov)
	runtime.KeepAlive(msgs)
	return res, err
}
