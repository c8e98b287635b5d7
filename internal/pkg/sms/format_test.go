package sms

import (
	"errors"
	"testing"
)

func TestFormatterNigeria(t *testing.T) {
	f := NewFormatter(FormatterConfig{CountryCode: "+234"})

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"national format", "08012345678", "+2348012345678"},
		{"already international", "+2348012345678", "+2348012345678"},
		{"with spaces and dashes", "0801 234-5678", "+2348012345678"},
		{"country code without plus", "2348012345678", "+2348012345678"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.Format(tc.in)
			if err != nil {
				t.Fatalf("Format(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("Format(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatterRejectsInvalid(t *testing.T) {
	f := NewFormatter(FormatterConfig{CountryCode: "+234"})

	for _, in := range []string{"123", "", "abc", "0801", "+23480"} {
		if _, err := f.Format(in); !errors.Is(err, ErrInvalidPhoneNumber) {
			t.Fatalf("Format(%q) err = %v, want ErrInvalidPhoneNumber", in, err)
		}
	}
}

func TestFormatterUSA(t *testing.T) {
	f := NewFormatter(FormatterConfig{CountryCode: "+1"})

	got, err := f.Format("4155552671")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "+14155552671" {
		t.Fatalf("got %q", got)
	}
	if f.CountryName() != "USA/Canada" {
		t.Fatalf("country name = %q", f.CountryName())
	}
}

func TestFormatterDefaultsToNigeria(t *testing.T) {
	f := NewFormatter(FormatterConfig{})
	if f.CountryName() != "Nigeria" {
		t.Fatalf("country name = %q", f.CountryName())
	}
}
