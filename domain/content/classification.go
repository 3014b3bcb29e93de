package content

import (
	"fmt"
	"strings"
)

// Source identifies the platform a piece of content came from.
type Source string

// Source values.
const (
	SourceYouTube   Source = "YouTube"
	SourceReddit    Source = "Reddit"
	SourceInstagram Source = "Instagram"
	SourceTikTok    Source = "TikTok"
	SourceArticle   Source = "Article"
)

// ParseSource converts a string to a Source, case-insensitively.
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "youtube":
		return SourceYouTube, nil
	case "reddit":
		return SourceReddit, nil
	case "instagram":
		return SourceInstagram, nil
	case "tiktok":
		return SourceTikTok, nil
	case "article":
		return SourceArticle, nil
	default:
		return "", fmt.Errorf("%w: unknown source %q", ErrValidation, s)
	}
}

// String returns the canonical source name.
func (s Source) String() string { return string(s) }

// Valid reports whether the source is one of the known platforms.
func (s Source) Valid() bool {
	switch s {
	case SourceYouTube, SourceReddit, SourceInstagram, SourceTikTok, SourceArticle:
		return true
	default:
		return false
	}
}

// Type classifies the kind of content an item represents.
type Type string

// Type values.
const (
	TypeVideo   Type = "Video"
	TypePost    Type = "Post"
	TypeArticle Type = "Article"
	TypeImage   Type = "Image"
)

// ParseType converts a string to a Type, case-insensitively.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "video":
		return TypeVideo, nil
	case "post":
		return TypePost, nil
	case "article":
		return TypeArticle, nil
	case "image":
		return TypeImage, nil
	default:
		return "", fmt.Errorf("%w: unknown content type %q", ErrValidation, s)
	}
}

// String returns the canonical type name.
func (t Type) String() string { return string(t) }

// Valid reports whether the type is known.
func (t Type) Valid() bool {
	switch t {
	case TypeVideo, TypePost, TypeArticle, TypeImage:
		return true
	default:
		return false
	}
}

// Difficulty is the coaching difficulty level of a drill.
type Difficulty string

// Difficulty values.
const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// ParseDifficulty converts a string to a canonical Difficulty regardless of
// casing. Old databases store lowercase values; reads normalize through here.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return DifficultyBeginner, nil
	case "intermediate":
		return DifficultyIntermediate, nil
	case "advanced":
		return DifficultyAdvanced, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrValidation, s)
	}
}

// String returns the canonical difficulty name.
func (d Difficulty) String() string { return string(d) }
