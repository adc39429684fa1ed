package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeParams(t *testing.T) {
	cases := []struct {
		in   string
		want Params
	}{
		{"7x7cross", Params{7, 7, TypeCross}},
		{"5x5random", Params{5, 5, TypeRandom}},
		// type falls back to the default when omitted
		{"9x9", Params{9, 9, TypeCross}},
		// height defaults to the width when omitted
		{"6octagon", Params{6, 6, TypeOctagon}},
		{"11x4random", Params{11, 4, TypeRandom}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := DecodeParams(tc.in, DefaultParams())
			if err != nil {
				t.Fatalf("DecodeParams(%q) failed: %v", tc.in, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("DecodeParams(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestDecodeParamsErrors(t *testing.T) {
	for _, in := range []string{"", "xcross", "7x", "7x7hexagon"} {
		if _, err := DecodeParams(in, DefaultParams()); !errors.Is(err, ErrInvalidParams) {
			t.Errorf("DecodeParams(%q) = %v, want ErrInvalidParams", in, err)
		}
	}
}

func TestEncodeParams(t *testing.T) {
	p := Params{7, 7, TypeOctagon}
	if got := p.Encode(true); got != "7x7octagon" {
		t.Errorf("Encode(true) = %q, want %q", got, "7x7octagon")
	}
	if got := p.Encode(false); got != "7x7" {
		t.Errorf("Encode(false) = %q, want %q", got, "7x7")
	}
}

func TestValidateParams(t *testing.T) {
	cases := []struct {
		name string
		p    Params
		ok   bool
	}{
		{"default", DefaultParams(), true},
		{"random 4x4", Params{4, 4, TypeRandom}, true},
		{"too narrow", Params{3, 7, TypeRandom}, false},
		{"too short", Params{7, 3, TypeRandom}, false},
		{"cross off-size", Params{9, 9, TypeCross}, false},
		{"octagon off-size", Params{5, 5, TypeOctagon}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() failed: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Validate() = %v, want ErrInvalidParams", err)
			}
		})
	}
}

func TestPresetNames(t *testing.T) {
	want := []string{"Cross", "Octagon", "Random 5x5", "Random 7x7", "Random 9x9"}
	var got []string
	for _, p := range Presets {
		if err := p.Validate(); err != nil {
			t.Errorf("preset %v fails validation: %v", p, err)
		}
		got = append(got, p.Name())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("preset names mismatch (-want +got):\n%s", diff)
	}
}
