package scale

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestNewLinearErrors(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		r0, r1   float64
	}{
		{"NaN min", math.NaN(), 1, 0, 1},
		{"Inf max", 0, math.Inf(1), 0, 1},
		{"inverted", 5, 1, 0, 1},
		{"NaN range", 0, 1, math.NaN(), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLinear(tt.min, tt.max, tt.r0, tt.r1, 0)
			var ide *InvalidDomainError
			if !errors.As(err, &ide) {
				t.Fatalf("NewLinear() error = %v, want *InvalidDomainError", err)
			}
			if ide.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestLinearMap(t *testing.T) {
	l, err := NewLinear(0, 10, 300, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct{ in, want float64 }{
		{0, 300},
		{10, 0},
		{5, 150},
		{20, -300}, // extrapolated
	}
	for _, tt := range tests {
		if got := l.Map(tt.in); !approx(got, tt.want) {
			t.Errorf("Map(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got := l.Invert(tt.want); !approx(got, tt.in) {
			t.Errorf("Invert(%v) = %v, want %v", tt.want, got, tt.in)
		}
	}
}

func TestLinearDegenerate(t *testing.T) {
	l, err := NewLinear(0, 0, 300, 0, DefaultTicks)
	if err != nil {
		t.Fatal(err)
	}
	if !l.Degenerate() {
		t.Fatal("Degenerate() = false")
	}
	if got := l.Map(0); got != 150 {
		t.Errorf("Map() = %v, want range midpoint 150", got)
	}
	if got := l.Map(42); got != 150 {
		t.Errorf("Map(42) = %v, want 150", got)
	}
	ticks := l.Ticks(DefaultTicks)
	if len(ticks) != 1 || ticks[0] != 0 {
		t.Errorf("Ticks() = %v, want [0]", ticks)
	}
}

func TestLinearNice(t *testing.T) {
	tests := []struct {
		max, want float64
	}{
		{5, 5},
		{4.2, 4.5},
		{12, 15},
		{110, 150},
	}
	for _, tt := range tests {
		l, err := NewLinear(0, tt.max, 0, 1, DefaultTicks)
		if err != nil {
			t.Fatal(err)
		}
		lo, hi := l.Domain()
		if lo != 0 || !approx(hi, tt.want) {
			t.Errorf("nice [0,%v] = [%v,%v], want [0,%v]", tt.max, lo, hi, tt.want)
		}
	}

	// nice = 0 keeps the exact domain.
	l, _ := NewLinear(0, 47, 0, 1, 0)
	if _, hi := l.Domain(); hi != 47 {
		t.Errorf("un-niced max = %v, want 47", hi)
	}
}

func TestLinearTicks(t *testing.T) {
	l, err := NewLinear(0, 100, 0, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	ticks := l.Ticks(DefaultTicks)
	if len(ticks) == 0 || len(ticks) > DefaultTicks+1 {
		t.Fatalf("Ticks() = %v", ticks)
	}
	for i, v := range ticks {
		if v < 0 || v > 100 {
			t.Errorf("tick %v outside domain", v)
		}
		if i > 0 && v <= ticks[i-1] {
			t.Errorf("ticks not increasing: %v", ticks)
		}
	}
}

func TestBand(t *testing.T) {
	b := NewBand([]string{"aaa", "bbb", "ccc", "aaa"}, 0, 540, 0.2)
	if got := len(b.Domain()); got != 3 {
		t.Fatalf("len(Domain()) = %d, want 3", got)
	}
	if !approx(b.Step(), 180) || !approx(b.Bandwidth(), 144) {
		t.Errorf("Step() = %v, Bandwidth() = %v, want 180, 144", b.Step(), b.Bandwidth())
	}
	tests := []struct {
		cat  string
		want float64
	}{
		{"aaa", 18},
		{"bbb", 198},
		{"ccc", 378},
	}
	for _, tt := range tests {
		got, ok := b.Map(tt.cat)
		if !ok || !approx(got, tt.want) {
			t.Errorf("Map(%q) = %v, %v, want %v", tt.cat, got, ok, tt.want)
		}
	}
	if c, _ := b.Center("aaa"); !approx(c, 90) {
		t.Errorf("Center(aaa) = %v, want 90", c)
	}
	if _, ok := b.Map("zzz"); ok {
		t.Error("Map(unknown) reported ok")
	}
}

func TestBandEmpty(t *testing.T) {
	b := NewBand(nil, 0, 100, 0.2)
	if b.Bandwidth() != 0 || b.Step() != 0 {
		t.Errorf("empty band: Step() = %v, Bandwidth() = %v", b.Step(), b.Bandwidth())
	}
}

func TestPalette(t *testing.T) {
	if Pastel1.Len() != 9 {
		t.Fatalf("Pastel1.Len() = %d, want 9", Pastel1.Len())
	}
	if got := Pastel1.Hex(0); got != "#fbb4ae" {
		t.Errorf("Hex(0) = %q, want #fbb4ae", got)
	}
	if Pastel1.Hex(9) != Pastel1.Hex(0) || Pastel1.Hex(-1) != Pastel1.Hex(8) {
		t.Error("palette indices should wrap")
	}
	if got := Azure.Hex(3); got != "#0080ff" {
		t.Errorf("Azure.Hex(3) = %q, want #0080ff", got)
	}
	if got := (Palette{}).Hex(0); got != "#000000" {
		t.Errorf("empty Hex() = %q, want #000000", got)
	}
	if _, err := ParsePalette("#zzz"); err == nil {
		t.Error("ParsePalette(#zzz) succeeded")
	}
}
