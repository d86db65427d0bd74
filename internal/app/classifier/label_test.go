package classifier

import "testing"

func TestCleanLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		label    string
		fallback string
		want     string
	}{
		{"already clean", "work and study", "x y", "work and study"},
		{"brackets stripped", "foods (formal) you eat", "x y", "foods you eat"},
		{"fullwidth brackets", "foods【注】 you eat", "x y", "foods you eat"},
		{"whitespace collapsed", "  Work   and\tStudy ", "x y", "work and study"},
		{"things you substitution", "things you drink", "x y", "what you drink"},
		{"various substitution", "various activities", "x y", "everyday activities"},
		{"denylisted word dropped", "common sports events", "x y", "sports events"},
		{"capped at eight words", "one two three four five six seven eight nine ten", "x y", "one two three four five six seven eight"},
		{"too short uses fallback", "stuff", "what you drink", "what you drink"},
		{"empty uses fallback", "", "what you eat", "what you eat"},
		{"fallback cleaned too", "misc", "things you see", "what you see"},
		{"nothing survives", "things", "stuff", DefaultLabel},
		{"frame words only uses fallback", "what is", "what you drink", "what you drink"},
		{"fallback of frame words only", "stuff", "what is common", DefaultLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CleanLabel(tt.label, tt.fallback); got != tt.want {
				t.Errorf("CleanLabel(%q, %q) = %q, want %q", tt.label, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestFallbackLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		gloss string
		want  string
	}{
		{"to drink", "what you drink"},
		{"to do; to make", "what you do"},
		{"to see, to look at", "what you see"},
		{"To Read (aloud)", "what you read"},
		{"big", "what is big"},
		{"tall; expensive", "what is tall"},
		{"", DefaultLabel},
		{"common", DefaultLabel},
		{"to do various", "what you do"},
		{"common; usual", DefaultLabel},
	}

	for _, tt := range tests {
		t.Run(tt.gloss, func(t *testing.T) {
			t.Parallel()
			if got := FallbackLabel(tt.gloss); got != tt.want {
				t.Errorf("FallbackLabel(%q) = %q, want %q", tt.gloss, got, tt.want)
			}
		})
	}
}

func TestIsDenylisted(t *testing.T) {
	t.Parallel()

	for _, w := range []string{"things", "Various", "stuff,", "misc."} {
		if !IsDenylisted(w) {
			t.Errorf("IsDenylisted(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"thinking", "drinks", "everyday"} {
		if IsDenylisted(w) {
			t.Errorf("IsDenylisted(%q) = true, want false", w)
		}
	}
}
