package entity

import (
	"errors"
	"strings"
	"testing"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantReason string
	}{
		{name: "valid", raw: "user@example.com"},
		{name: "valid with subdomain", raw: "user@mail.example.com"},
		{name: "valid with plus tag", raw: "user+tag@example.com"},
		{name: "empty", raw: "", wantReason: ReasonRequired},
		{name: "missing at", raw: "userexample.com", wantReason: ReasonFormat},
		{name: "missing domain dot", raw: "user@example", wantReason: ReasonFormat},
		{name: "contains space", raw: "us er@example.com", wantReason: ReasonFormat},
		{name: "missing local part", raw: "@example.com", wantReason: ReasonFormat},
		{name: "too long", raw: strings.Repeat("a", 250) + "@example.com", wantReason: ReasonTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.raw)
			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("NewEmail(%q) returned error: %v", tt.raw, err)
				}
				if email.Value() != tt.raw {
					t.Errorf("Value() = %q, want %q", email.Value(), tt.raw)
				}
				return
			}
			var invalid *InvalidEmailError
			if !errors.As(err, &invalid) {
				t.Fatalf("NewEmail(%q) error = %v, want *InvalidEmailError", tt.raw, err)
			}
			if invalid.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", invalid.Reason, tt.wantReason)
			}
		})
	}
}

func TestEmailEquals(t *testing.T) {
	a, err := NewEmail("user@example.com")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewEmail("user@example.com")
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewEmail("other@example.com")
	if err != nil {
		t.Fatal(err)
	}

	if !a.Equals(b) {
		t.Error("identical emails should be equal")
	}
	if a.Equals(c) {
		t.Error("different emails should not be equal")
	}
}
