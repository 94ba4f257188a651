package serde

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "json", want: JSONFormat},
		{in: "j", want: JSONFormat},
		{in: "YAML", want: YAMLFormat},
		{in: "yml", want: YAMLFormat},
		{in: " toml ", want: TOMLFormat},
		{in: "tony", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrBadFormat) {
					t.Fatalf("ParseFormat(%q) error = %v, want ErrBadFormat", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d) failed: %v", f, err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", d, err)
		}
		if back != f {
			t.Errorf("got %v after text round trip, want %v", back, f)
		}
	}
	if _, err := Format(42).MarshalText(); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFormats(t *testing.T) {
	s := FormatsOf(TOMLFormat, JSONFormat)
	if !s.Has(JSONFormat) || !s.Has(TOMLFormat) || s.Has(YAMLFormat) {
		t.Fatalf("unexpected membership in %v", s)
	}
	if got := s.String(); got != "json+toml" {
		t.Errorf("String() = %q, want %q", got, "json+toml")
	}
	if got := All().String(); got != "json+yaml+toml" {
		t.Errorf("All() = %q", got)
	}
	var empty Formats
	if !empty.IsEmpty() || empty.String() != "" {
		t.Errorf("zero Formats should be empty, got %q", empty.String())
	}
}

func TestParseFormats(t *testing.T) {
	got, err := ParseFormats("yaml+json")
	if err != nil {
		t.Fatalf("ParseFormats failed: %v", err)
	}
	if got != FormatsOf(JSONFormat, YAMLFormat) {
		t.Errorf("ParseFormats = %v", got)
	}
	got, err = ParseFormats("toml,json")
	if err != nil {
		t.Fatalf("ParseFormats failed: %v", err)
	}
	if got != FormatsOf(JSONFormat, TOMLFormat) {
		t.Errorf("ParseFormats = %v", got)
	}
	got, err = ParseFormats("")
	if err != nil || !got.IsEmpty() {
		t.Errorf("ParseFormats(\"\") = %v, %v", got, err)
	}
	if _, err := ParseFormats("json+xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}
