//go:build linux && amd64

package utils

import "unsafe"

// CString is a byte slice whose last byte is the NUL terminator. The
// kernel reads path and string arguments until that byte, so every
// pointer handed across the syscall boundary must come from one of
// these (or from a buffer the caller terminated by hand).
type CString []byte

// NewCString copies s and appends the terminator. An interior NUL
// truncates the string there, which is what the kernel would do with
// the resulting pointer anyway.
func NewCString(s string) CString {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			s = s[:i]
			break
		}
	}
	c := make(CString, len(s)+1)
	copy(c, s)
	return c
}

// Ptr returns the address of the first byte. The CString must stay
// live for the duration of any call this pointer is passed to.
func (c CString) Ptr() *byte {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// Len is the byte length including the terminator.
func (c CString) Len() uint64 {
	return uint64(len(c))
}

// String drops the terminator.
func (c CString) String() string {
	if n := len(c); n > 0 && c[n-1] == 0 {
		return string(c[:n-1])
	}
	return string(c)
}

// ReadCString walks memory at addr until a NUL byte. addr must point
// at a terminated string in this process's address space.
func ReadCString(addr uintptr) string {
	if addr == 0 {
		return ""
	}
	length := 0
	for tmp := addr; *(*byte)(unsafe.Pointer(tmp)) != 0; tmp++ {
		length++
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(addr)), length))
}
