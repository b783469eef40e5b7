package crypto

import "testing"

func TestCheckStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		score    int
	}{
		{"empty", "", 0},
		{"short lowercase", "abc", 1},
		{"long lowercase", "abcdefgh", 2},
		{"mixed case", "Abcdefgh", 3},
		{"mixed case with digit", "Abcdefg1", 4},
		{"all classes", "Abcdef1!", 5},
		{"digits only", "12345678", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckStrength(tt.password)
			if got.Score != tt.score {
				t.Errorf("CheckStrength(%q).Score = %d, want %d", tt.password, got.Score, tt.score)
			}
		})
	}
}

func TestCheckStrengthFeedback(t *testing.T) {
	s := CheckStrength("abc")
	if len(s.Feedback) != 4 {
		t.Fatalf("expected 4 feedback hints, got %d: %v", len(s.Feedback), s.Feedback)
	}

	s = CheckStrength("Abcdef1!")
	if len(s.Feedback) != 0 {
		t.Errorf("expected no feedback for a strong password, got %v", s.Feedback)
	}
}
