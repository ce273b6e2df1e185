//go:build linux && amd64

package utils

import (
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

func TestNewCString(t *testing.T) {
	for _, tc := range []struct {
		desc string
		in   string
		want []byte
	}{
		{
			desc: "plain",
			in:   "foo.txt",
			want: []byte("foo.txt\x00"),
		},
		{
			desc: "empty",
			in:   "",
			want: []byte{0},
		},
		{
			desc: "interior NUL truncates",
			in:   "foo\x00bar",
			want: []byte("foo\x00"),
		},
		{
			desc: "trailing newline kept",
			in:   "\n",
			want: []byte("\n\x00"),
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			got := NewCString(tc.in)
			if diff := cmp.Diff(tc.want, []byte(got)); diff != "" {
				t.Errorf("NewCString(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestCStringLenIncludesTerminator(t *testing.T) {
	c := NewCString("Hello ")
	if got, want := c.Len(), uint64(7); got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if c[len(c)-1] != 0 {
		t.Fatalf("last byte = %#x, want NUL", c[len(c)-1])
	}
}

func TestCStringRoundtrip(t *testing.T) {
	c := NewCString("./foo.txt")
	if got := c.String(); got != "./foo.txt" {
		t.Fatalf("String() = %q, want %q", got, "./foo.txt")
	}
	if got := ReadCString(uintptr(unsafe.Pointer(c.Ptr()))); got != "./foo.txt" {
		t.Fatalf("ReadCString = %q, want %q", got, "./foo.txt")
	}
}

func TestReadCStringNil(t *testing.T) {
	if got := ReadCString(0); got != "" {
		t.Fatalf("ReadCString(0) = %q, want empty", got)
	}
}
