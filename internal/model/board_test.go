package model

import (
	"strings"
	"testing"
)

func TestToNumeric_AllSquares(t *testing.T) {
	seen := make(map[Square]string)
	for _, file := range "abcdefgh" {
		for rank := '1'; rank <= '8'; rank++ {
			name := string(file) + string(rank)
			sq, ok := ToNumeric(name)
			if !ok {
				t.Fatalf("ToNumeric(%q) failed", name)
			}
			if !sq.Valid() {
				t.Errorf("ToNumeric(%q) = %v, out of bounds", name, sq)
			}
			if got := sq.String(); got != name {
				t.Errorf("ToNumeric(%q).String() = %q", name, got)
			}
			upper, ok := ToNumeric(strings.ToUpper(name))
			if !ok || upper != sq {
				t.Errorf("ToNumeric(%q) = %v, %v; want %v", strings.ToUpper(name), upper, ok, sq)
			}
			if prev, dup := seen[sq]; dup {
				t.Errorf("%q and %q both map to %v", prev, name, sq)
			}
			seen[sq] = name
		}
	}
	if len(seen) != 64 {
		t.Errorf("got %d distinct squares, want 64", len(seen))
	}

	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			sq := Square{X: x, Y: y}
			back, ok := ToNumeric(sq.String())
			if !ok || back != sq {
				t.Errorf("ToNumeric(%q) = %v, %v; want %v", sq.String(), back, ok, sq)
			}
		}
	}
}

func TestToNumeric_Known(t *testing.T) {
	tests := []struct {
		in   string
		want Square
	}{
		{"a1", Square{0, 0}},
		{"h8", Square{7, 7}},
		{"e4", Square{4, 3}},
		{"C7", Square{2, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ToNumeric(tt.in)
			if !ok || got != tt.want {
				t.Errorf("ToNumeric(%q) = %v, %v; want %v", tt.in, got, ok, tt.want)
			}
		})
	}
}

func TestToNumeric_Invalid(t *testing.T) {
	for _, in := range []string{"", "a", "a0", "a9", "i1", "z1", "1a", "aa", "a10", "e44", " e4", "é4", "a-"} {
		t.Run(in, func(t *testing.T) {
			got, ok := ToNumeric(in)
			if ok {
				t.Errorf("ToNumeric(%q) = %v, want no value", in, got)
			}
			if got != (Square{}) {
				t.Errorf("ToNumeric(%q) returned partial square %v", in, got)
			}
			if ValidSquare(in) {
				t.Errorf("ValidSquare(%q) = true", in)
			}
		})
	}
}

func TestSquare_Valid(t *testing.T) {
	tests := []struct {
		sq   Square
		want bool
	}{
		{Square{0, 0}, true},
		{Square{7, 7}, true},
		{Square{-1, 0}, false},
		{Square{0, 8}, false},
		{Square{8, 3}, false},
	}
	for _, tt := range tests {
		if got := tt.sq.Valid(); got != tt.want {
			t.Errorf("%v.Valid() = %v, want %v", tt.sq, got, tt.want)
		}
	}
	if got := (Square{X: 9, Y: 1}).String(); got != "(9,1)" {
		t.Errorf("String() of off-board square = %q", got)
	}
}

func TestPieceType_Prefix(t *testing.T) {
	tests := []struct {
		kind PieceType
		want string
	}{
		{Base, ""},
		{Rook, "R"},
		{Bishop, "B"},
		{King, "K"},
		{Queen, "Q"},
		{PieceType("knight"), ""},
	}
	for _, tt := range tests {
		if got := tt.kind.Prefix(); got != tt.want {
			t.Errorf("%s.Prefix() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestParsePieceType(t *testing.T) {
	tests := []struct {
		in     string
		want   PieceType
		wantOK bool
	}{
		{"rook", Rook, true},
		{"Queen", Queen, true},
		{"base", Base, true},
		{"R", Rook, true},
		{"b", Bishop, true},
		{"K", King, true},
		{"q", Queen, true},
		{"", "", false},
		{"N", "", false},
		{"knight", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePieceType(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParsePieceType(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
