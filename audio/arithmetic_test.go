// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestParseArithmetic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Arithmetic
		wantErr bool
	}{
		{input: "signed", want: Signed},
		{input: "SIGNED", want: Signed},
		{input: " unsigned ", want: Unsigned},
		{input: "", want: Signed},
		{input: "float", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseArithmetic(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownArithmetic) {
					t.Fatalf("ParseArithmetic(%q) error = %v, want ErrUnknownArithmetic", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseArithmetic(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseArithmetic(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestArithmetic_String(t *testing.T) {
	t.Parallel()

	if Signed.String() != "signed" {
		t.Errorf("Signed.String() = %q", Signed.String())
	}
	if Unsigned.String() != "unsigned" {
		t.Errorf("Unsigned.String() = %q", Unsigned.String())
	}
	if got := Arithmetic(7).String(); got != "arithmetic(7)" {
		t.Errorf("Arithmetic(7).String() = %q", got)
	}
}

func TestArithmetic_SetAndType(t *testing.T) {
	t.Parallel()

	var a Arithmetic
	if err := a.Set("unsigned"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if a != Unsigned {
		t.Errorf("after Set(unsigned) = %v", a)
	}

	if err := a.Set("bogus"); !errors.Is(err, ErrUnknownArithmetic) {
		t.Errorf("Set(bogus) error = %v, want ErrUnknownArithmetic", err)
	}
	if a != Unsigned {
		t.Errorf("failed Set() changed value to %v", a)
	}

	if a.Type() != "arithmetic" {
		t.Errorf("Type() = %q", a.Type())
	}
}

func TestArithmetic_Average(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		x, y     byte
		signed   byte
		unsigned byte
	}{
		{name: "small positives", x: 0x10, y: 0x20, signed: 0x18, unsigned: 0x18},
		{name: "truncates odd sum", x: 0x01, y: 0x02, signed: 0x01, unsigned: 0x01},
		{name: "minus one plus one", x: 0xFF, y: 0x01, signed: 0x00, unsigned: 0x80},
		{name: "negative odd sum truncates toward zero", x: 0xFE, y: 0xFF, signed: 0xFF, unsigned: 0xFE},
		{name: "both minimum", x: 0x80, y: 0x80, signed: 0x80, unsigned: 0x80},
		{name: "max and min", x: 0x7F, y: 0x80, signed: 0x00, unsigned: 0x7F},
		{name: "both max unsigned", x: 0xFF, y: 0xFF, signed: 0xFF, unsigned: 0xFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Signed.average(tt.x, tt.y); got != tt.signed {
				t.Errorf("Signed.average(%#x, %#x) = %#x, want %#x", tt.x, tt.y, got, tt.signed)
			}
			if got := Unsigned.average(tt.x, tt.y); got != tt.unsigned {
				t.Errorf("Unsigned.average(%#x, %#x) = %#x, want %#x", tt.x, tt.y, got, tt.unsigned)
			}
		})
	}
}

func TestArithmetic_Amplitude(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		low, high byte
		signed    int
		unsigned  int
	}{
		{name: "8208", low: 0x10, high: 0x20, signed: 8208, unsigned: 8208},
		{name: "max positive", low: 0xFF, high: 0x7F, signed: -1, unsigned: 32767},
		{name: "positive high, no sign bits", low: 0x7F, high: 0x7F, signed: 32639, unsigned: 32639},
		{name: "minimum", low: 0x00, high: 0x80, signed: -32768, unsigned: -32768},
		{name: "low byte sign extends", low: 0xFF, high: 0x00, signed: -1, unsigned: 255},
		{name: "all ones", low: 0xFF, high: 0xFF, signed: -1, unsigned: -1},
		{name: "negative high", low: 0x00, high: 0xC0, signed: -16384, unsigned: -16384},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Signed.amplitude(tt.low, tt.high); got != tt.signed {
				t.Errorf("Signed.amplitude(%#x, %#x) = %d, want %d", tt.low, tt.high, got, tt.signed)
			}
			if got := Unsigned.amplitude(tt.low, tt.high); got != tt.unsigned {
				t.Errorf("Unsigned.amplitude(%#x, %#x) = %d, want %d", tt.low, tt.high, got, tt.unsigned)
			}
		})
	}
}

func TestArithmetic_AmplitudeRange(t *testing.T) {
	t.Parallel()

	for _, a := range []Arithmetic{Signed, Unsigned} {
		for low := range 256 {
			for high := range 256 {
				got := a.amplitude(byte(low), byte(high))
				if got < -32768 || got > 32767 {
					t.Fatalf("%v.amplitude(%#x, %#x) = %d, out of int16 range", a, low, high, got)
				}
			}
		}
	}
}
