package bytestr

import (
	"strings"
	"testing"
)

func TestInlineThreshold(t *testing.T) {
	tests := []struct {
		n      int
		inline bool
	}{
		{0, true},
		{1, true},
		{22, true},
		{23, true},
		{24, false},
		{25, false},
		{100, false},
	}
	for _, tt := range tests {
		s := New(strings.Repeat("a", tt.n))
		if s.Len() != tt.n {
			t.Errorf("len %d: Len() = %d", tt.n, s.Len())
		}
		if s.Inline() != tt.inline {
			t.Errorf("len %d: Inline() = %v, want %v", tt.n, s.Inline(), tt.inline)
		}
		if s.String() != strings.Repeat("a", tt.n) {
			t.Errorf("len %d: content mismatch", tt.n)
		}
	}
}

func TestZeroValue(t *testing.T) {
	var s String
	if s.Len() != 0 || !s.Inline() || s.String() != "" {
		t.Errorf("zero value: Len=%d Inline=%v String=%q", s.Len(), s.Inline(), s.String())
	}
	if !Equal(s, New("")) {
		t.Error("zero value should equal New(\"\")")
	}
}

func TestLenIsBytes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"hello", 5},
		{"héllo", 6},
		{"日本語", 9},
		{"🎉", 4},
		{"👨‍👩‍👧", 18},
	}
	for _, tt := range tests {
		if got := New(tt.in).Len(); got != tt.want {
			t.Errorf("Len(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestConcat(t *testing.T) {
	a := New("hello, ")
	b := New("world")
	c := Concat(a, b)
	if c.String() != "hello, world" {
		t.Errorf("Concat = %q", c.String())
	}
	if !c.Inline() {
		t.Error("12-byte concat should be inline")
	}

	// 11 + 12 = 23 stays inline, 12 + 12 = 24 spills.
	at := Concat(New(strings.Repeat("x", 11)), New(strings.Repeat("y", 12)))
	if !at.Inline() || at.Len() != 23 {
		t.Errorf("23-byte concat: Inline=%v Len=%d", at.Inline(), at.Len())
	}
	over := Concat(New(strings.Repeat("x", 12)), New(strings.Repeat("y", 12)))
	if over.Inline() || over.Len() != 24 {
		t.Errorf("24-byte concat: Inline=%v Len=%d", over.Inline(), over.Len())
	}

	// Heap operands round-trip too.
	long := New(strings.Repeat("z", 30))
	both := Concat(long, a)
	if both.String() != strings.Repeat("z", 30)+"hello, " {
		t.Error("heap concat content mismatch")
	}

	if Concat(New(""), b).String() != "world" {
		t.Error("empty left operand")
	}
	if Concat(a, New("")).String() != "hello, " {
		t.Error("empty right operand")
	}
}

func TestRepeat(t *testing.T) {
	s := New("ab")
	tests := []struct {
		count  int
		want   string
		inline bool
	}{
		{0, "", true},
		{1, "ab", true},
		{3, "ababab", true},
		{11, strings.Repeat("ab", 11), false},
	}
	for _, tt := range tests {
		got := Repeat(s, tt.count)
		if got.String() != tt.want {
			t.Errorf("Repeat(ab, %d) = %q", tt.count, got.String())
		}
		if got.Inline() != tt.inline {
			t.Errorf("Repeat(ab, %d): Inline = %v, want %v", tt.count, got.Inline(), tt.inline)
		}
	}

	// 8 bytes times 3 is exactly one past the inline capacity.
	wide := Repeat(New("12345678"), 3)
	if wide.Inline() || wide.Len() != 24 {
		t.Errorf("8x3 repeat: Inline=%v Len=%d", wide.Inline(), wide.Len())
	}
	if Repeat(s, -1).Len() != 0 {
		t.Error("negative count should yield empty")
	}
}

func TestEqual(t *testing.T) {
	if !Equal(New("hello"), New("hello")) {
		t.Error("identical inline strings should be equal")
	}
	if Equal(New("hello"), New("hellO")) {
		t.Error("case-different strings should differ")
	}
	if Equal(New(strings.Repeat("a", 23)), New(strings.Repeat("a", 24))) {
		t.Error("23 vs 24 a's should differ")
	}

	// Equality crosses representations: build the same 24-byte content
	// once directly (heap) and once via concat of heap and empty.
	long := strings.Repeat("q", 24)
	if !Equal(New(long), Concat(New(long), New(""))) {
		t.Error("heap strings with equal content should be equal")
	}

	// Distinct UTF-8 encodings that render alike are still distinct bytes.
	if Equal(New("café"), New("café")) {
		t.Error("NFC and NFD forms have different bytes")
	}
}

func TestOpaqueBytes(t *testing.T) {
	emoji := New("🎉🎊")
	if emoji.Len() != 8 {
		t.Fatalf("two-emoji Len = %d", emoji.Len())
	}
	tripled := Repeat(emoji, 3)
	if tripled.Len() != 24 || tripled.Inline() {
		t.Errorf("tripled emoji: Len=%d Inline=%v", tripled.Len(), tripled.Inline())
	}
	if tripled.String() != "🎉🎊🎉🎊🎉🎊" {
		t.Error("emoji repeat corrupted content")
	}
}
