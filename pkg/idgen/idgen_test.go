package idgen

import (
	"regexp"
	"testing"
)

func TestGenerate_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{24}$`)

	id := Generate()
	if !pattern.MatchString(id) {
		t.Errorf("Generate() = %v, want format [0-9a-f]{24}", id)
	}
	if len(id) != IDLength {
		t.Errorf("Generate() length = %d, want %d", len(id), IDLength)
	}
}

func TestGenerate_Unique(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := Generate()
		if ids[id] {
			t.Errorf("Generate() returned duplicate ID: %v", id)
		}
		ids[id] = true
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{Generate(), true},
		{"507f1f77bcf86cd799439011", true},
		{"507f1f77bcf86cd79943901", false},
		{"zzzf1f77bcf86cd799439011", false},
		{"", false},
		{"ar-1a2b", false},
	}

	for _, tt := range tests {
		if got := Valid(tt.id); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
