package content

import (
	"errors"
	"testing"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		in   string
		want Source
	}{
		{"YouTube", SourceYouTube},
		{"youtube", SourceYouTube},
		{"REDDIT", SourceReddit},
		{" instagram ", SourceInstagram},
		{"TikTok", SourceTikTok},
		{"article", SourceArticle},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSource(tt.in)
			if err != nil {
				t.Fatalf("ParseSource(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSource(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseSource("myspace"); !errors.Is(err, ErrValidation) {
		t.Errorf("ParseSource(myspace) error = %v, want ErrValidation", err)
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"video", TypeVideo},
		{"Post", TypePost},
		{"IMAGE", TypeImage},
		{"article", TypeArticle},
	}
	for _, tt := range tests {
		got, err := ParseType(tt.in)
		if err != nil {
			t.Fatalf("ParseType(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseType("podcast"); !errors.Is(err, ErrValidation) {
		t.Errorf("ParseType(podcast) error = %v, want ErrValidation", err)
	}
}

func TestParseDifficultyNormalizesCase(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"beginner", DifficultyBeginner},
		{"Beginner", DifficultyBeginner},
		{"INTERMEDIATE", DifficultyIntermediate},
		{"advanced", DifficultyAdvanced},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if err != nil {
			t.Fatalf("ParseDifficulty(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDifficulty("expert"); !errors.Is(err, ErrValidation) {
		t.Errorf("ParseDifficulty(expert) error = %v, want ErrValidation", err)
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultSearchLimit},
		{-3, DefaultSearchLimit},
		{1, 1},
		{50, 50},
		{100, 100},
		{500, MaxSearchLimit},
	}
	for _, tt := range tests {
		if got := ClampLimit(tt.in); got != tt.want {
			t.Errorf("ClampLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
