package version

import (
	"errors"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input    string
		major    uint32
		minor    uint32
		hasPatch bool
		patch    uint32
	}{
		{"1.20", 1, 20, false, 0},
		{"1.20.1", 1, 20, true, 1},
		{"0.0", 0, 0, false, 0},
		{"1.21.0", 1, 21, true, 0},
		{"10.200.3000", 10, 200, true, 3000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if v.Major != tt.major || v.Minor != tt.minor {
				t.Errorf("Parse(%q) = %d.%d, want %d.%d", tt.input, v.Major, v.Minor, tt.major, tt.minor)
			}
			if (v.Patch != nil) != tt.hasPatch {
				t.Fatalf("Parse(%q) patch presence = %v, want %v", tt.input, v.Patch != nil, tt.hasPatch)
			}
			if tt.hasPatch && *v.Patch != tt.patch {
				t.Errorf("Parse(%q) patch = %d, want %d", tt.input, *v.Patch, tt.patch)
			}
			if v.String() != tt.input {
				t.Errorf("String() = %q, want %q", v.String(), tt.input)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"1",
		"1.2.3.4",
		"1.x",
		"a.b",
		"1.2.x",
		"1..2",
		"-1.2",
		"+1.2",
		"1.20-pre1",
		"24w14a",
		"1.2.",
		"99999999999.1",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", in)
			}
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidFormat", in, err)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.20", "1.20.1", -1},
		{"1.20.1", "1.21.0", -1},
		{"1.20", "1.20", 0},
		{"1.20.1", "1.20.1", 0},
		{"1.20.0", "1.20", 1},
		{"1.9", "1.10", -1},
		{"2.0", "1.99.99", 1},
		{"1.21.4", "1.21.10", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			got, err := CompareStrings(tt.a, tt.b)
			if err != nil {
				t.Fatalf("CompareStrings(%q, %q) unexpected error: %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("CompareStrings(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}

			// antisymmetry
			rev, _ := CompareStrings(tt.b, tt.a)
			if rev != -tt.want {
				t.Errorf("CompareStrings(%q, %q) = %d, want %d", tt.b, tt.a, rev, -tt.want)
			}
		})
	}
}

func TestLessEqual(t *testing.T) {
	a := MustParse("1.20")
	b := MustParse("1.20.1")

	if !a.Less(b) {
		t.Error("expected 1.20 < 1.20.1")
	}
	if b.Less(a) {
		t.Error("expected !(1.20.1 < 1.20)")
	}
	if !a.Equal(MustParse("1.20")) {
		t.Error("expected 1.20 == 1.20")
	}
	if a.Equal(MustParse("1.20.0")) {
		t.Error("expected 1.20 != 1.20.0")
	}
}

func TestCompareStrings_InvalidOperand(t *testing.T) {
	if _, err := CompareStrings("1.20", "snapshot"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat for right operand, got %v", err)
	}
	if _, err := CompareStrings("x", "1.20"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat for left operand, got %v", err)
	}
}
