package bytestr

import "bytes"

// inlineCap is the largest byte length stored without allocating.
const inlineCap = 23

// String is a byte-string value. Values of up to inlineCap bytes are
// held in the struct itself; longer values point to a heap buffer.
// The zero value is the empty string. Copying a String is cheap and
// safe either way, since heap buffers are never mutated after
// construction.
type String struct {
	buf  [inlineCap]byte
	n    uint8
	heap []byte
}

// New builds a String from s, choosing inline or heap representation
// by byte length.
func New(s string) String {
	if len(s) <= inlineCap {
		var v String
		v.n = uint8(copy(v.buf[:], s))
		return v
	}
	return String{heap: []byte(s)}
}

// Len reports the length in bytes, not runes.
func (s String) Len() int {
	if s.heap != nil {
		return len(s.heap)
	}
	return int(s.n)
}

// Inline reports whether the value is stored without a heap buffer.
func (s String) Inline() bool {
	return s.heap == nil
}

// Bytes returns the content. The returned slice must not be modified.
func (s String) Bytes() []byte {
	if s.heap != nil {
		return s.heap
	}
	return s.buf[:s.n]
}

// String returns the content as a Go string.
func (s String) String() string {
	return string(s.Bytes())
}

// Concat returns the concatenation of s and t. The result is inline
// exactly when the combined byte length fits.
func Concat(s, t String) String {
	sb, tb := s.Bytes(), t.Bytes()
	total := len(sb) + len(tb)
	if total <= inlineCap {
		var v String
		n := copy(v.buf[:], sb)
		n += copy(v.buf[n:], tb)
		v.n = uint8(n)
		return v
	}
	h := make([]byte, 0, total)
	h = append(h, sb...)
	h = append(h, tb...)
	return String{heap: h}
}

// Repeat returns s repeated count times. A count of zero or less
// yields the empty string.
func Repeat(s String, count int) String {
	if count <= 0 || s.Len() == 0 {
		return String{}
	}
	b := s.Bytes()
	total := len(b) * count
	if total <= inlineCap {
		var v String
		n := 0
		for i := 0; i < count; i++ {
			n += copy(v.buf[n:], b)
		}
		v.n = uint8(n)
		return v
	}
	return String{heap: bytes.Repeat(b, count)}
}

// Equal reports byte-exact equality regardless of representation.
func Equal(s, t String) bool {
	return bytes.Equal(s.Bytes(), t.Bytes())
}
