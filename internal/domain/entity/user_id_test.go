package entity

import (
	"errors"
	"testing"
)

func TestNewUserID(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantReason string
	}{
		{name: "valid", raw: "507f1f77bcf86cd799439011"},
		{name: "empty", raw: "", wantReason: ReasonRequired},
		{name: "too short", raw: "507f1f77bcf86cd7994390", wantReason: ReasonBadFormat},
		{name: "too long", raw: "507f1f77bcf86cd79943901122", wantReason: ReasonBadFormat},
		{name: "non hex", raw: "507f1f77bcf86cd79943901z", wantReason: ReasonBadFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewUserID(tt.raw)
			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("NewUserID(%q) returned error: %v", tt.raw, err)
				}
				if id.Value() != tt.raw {
					t.Errorf("Value() = %q, want %q", id.Value(), tt.raw)
				}
				return
			}
			var invalid *InvalidUserIDError
			if !errors.As(err, &invalid) {
				t.Fatalf("NewUserID(%q) error = %v, want *InvalidUserIDError", tt.raw, err)
			}
			if invalid.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", invalid.Reason, tt.wantReason)
			}
		})
	}
}

func TestGenerateUserID(t *testing.T) {
	a := GenerateUserID()
	b := GenerateUserID()
	if a.Value() == b.Value() {
		t.Error("generated ids should be unique")
	}
	if _, err := NewUserID(a.Value()); err != nil {
		t.Errorf("generated id %q should be valid: %v", a.Value(), err)
	}
}

func TestUserIDEquals(t *testing.T) {
	a, err := NewUserID("507f1f77bcf86cd799439011")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewUserID("507f1f77bcf86cd799439011")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equals(b) {
		t.Error("identical ids should be equal")
	}
}
