// Package content provides the unified content entity and its store contract.
//
// One flat entity with optional source-specific fields was chosen over a
// per-platform hierarchy: it serializes to a single table, queries uniformly
// across sources, and keeps platform quirks in an opaque metadata map.
package content

import (
	"fmt"
	"maps"
	"time"
)

// Item is one piece of external content plus the coach's annotations.
// Identity is the (source, id) pair; id is the platform's native identifier
// (YouTube video ID, Reddit submission ID, Instagram shortcode).
type Item struct {
	id             string
	source         Source
	contentType    Type
	title          string
	url            string
	description    string
	author         string
	thumbnailURL   string
	publishedAt    time.Time
	fetchedAt      time.Time
	viewCount      *int64
	likeCount      *int64
	commentCount   *int64
	sourceMetadata map[string]any

	tags         []string
	notes        string
	savedAt      time.Time
	collectionID string

	drillTags        []string
	drillDescription string
	difficulty       Difficulty
	equipment        string
	ageGroup         string
}

// NewItem creates an Item from the fields every source provides.
// fetchedAt is set to the current time.
func NewItem(source Source, id string, contentType Type, title, url string) (Item, error) {
	if id == "" {
		return Item{}, fmt.Errorf("%w: id is required", ErrValidation)
	}
	if !source.Valid() {
		return Item{}, fmt.Errorf("%w: invalid source %q", ErrValidation, source)
	}
	if !contentType.Valid() {
		return Item{}, fmt.Errorf("%w: invalid content type %q", ErrValidation, contentType)
	}
	if title == "" {
		return Item{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if url == "" {
		return Item{}, fmt.Errorf("%w: url is required", ErrValidation)
	}
	return Item{
		id:             id,
		source:         source,
		contentType:    contentType,
		title:          title,
		url:            url,
		fetchedAt:      time.Now().UTC(),
		sourceMetadata: map[string]any{},
	}, nil
}

// ItemData carries every field of an Item for rehydration from storage.
type ItemData struct {
	ID             string
	Source         Source
	Type           Type
	Title          string
	URL            string
	Description    string
	Author         string
	ThumbnailURL   string
	PublishedAt    time.Time
	FetchedAt      time.Time
	ViewCount      *int64
	LikeCount      *int64
	CommentCount   *int64
	SourceMetadata map[string]any

	Tags         []string
	Notes        string
	SavedAt      time.Time
	CollectionID string

	DrillTags        []string
	DrillDescription string
	Difficulty       Difficulty
	Equipment        string
	AgeGroup         string
}

// ReconstructItem builds an Item from stored data without validation.
// Used by the persistence layer.
func ReconstructItem(d ItemData) Item {
	meta := d.SourceMetadata
	if meta == nil {
		meta = map[string]any{}
	}
	return Item{
		id:               d.ID,
		source:           d.Source,
		contentType:      d.Type,
		title:            d.Title,
		url:              d.URL,
		description:      d.Description,
		author:           d.Author,
		thumbnailURL:     d.ThumbnailURL,
		publishedAt:      d.PublishedAt,
		fetchedAt:        d.FetchedAt,
		viewCount:        d.ViewCount,
		likeCount:        d.LikeCount,
		commentCount:     d.CommentCount,
		sourceMetadata:   maps.Clone(meta),
		tags:             copyStrings(d.Tags),
		notes:            d.Notes,
		savedAt:          d.SavedAt,
		collectionID:     d.CollectionID,
		drillTags:        copyStrings(d.DrillTags),
		drillDescription: d.DrillDescription,
		difficulty:       d.Difficulty,
		equipment:        d.Equipment,
		ageGroup:         d.AgeGroup,
	}
}

// Data returns a copy of every field, for persistence mapping.
func (i Item) Data() ItemData {
	return ItemData{
		ID:               i.id,
		Source:           i.source,
		Type:             i.contentType,
		Title:            i.title,
		URL:              i.url,
		Description:      i.description,
		Author:           i.author,
		ThumbnailURL:     i.thumbnailURL,
		PublishedAt:      i.publishedAt,
		FetchedAt:        i.fetchedAt,
		ViewCount:        i.viewCount,
		LikeCount:        i.likeCount,
		CommentCount:     i.commentCount,
		SourceMetadata:   maps.Clone(i.sourceMetadata),
		Tags:             copyStrings(i.tags),
		Notes:            i.notes,
		SavedAt:          i.savedAt,
		CollectionID:     i.collectionID,
		DrillTags:        copyStrings(i.drillTags),
		DrillDescription: i.drillDescription,
		Difficulty:       i.difficulty,
		Equipment:        i.equipment,
		AgeGroup:         i.ageGroup,
	}
}

// ID returns the platform-native identifier.
func (i Item) ID() string { return i.id }

// Source returns the originating platform.
func (i Item) Source() Source { return i.source }

// Type returns the content classification.
func (i Item) Type() Type { return i.contentType }

// Title returns the title.
func (i Item) Title() string { return i.title }

// URL returns the canonical content URL.
func (i Item) URL() string { return i.url }

// Description returns the platform-sourced description.
func (i Item) Description() string { return i.description }

// Author returns the creator name, if known.
func (i Item) Author() string { return i.author }

// ThumbnailURL returns the thumbnail URL, if any.
func (i Item) ThumbnailURL() string { return i.thumbnailURL }

// PublishedAt returns when the platform published the content (zero if unknown).
func (i Item) PublishedAt() time.Time { return i.publishedAt }

// FetchedAt returns when the item was ingested.
func (i Item) FetchedAt() time.Time { return i.fetchedAt }

// ViewCount returns the view count, or nil when the source does not report one.
func (i Item) ViewCount() *int64 { return copyCount(i.viewCount) }

// LikeCount returns the like count (Reddit: score), or nil.
func (i Item) LikeCount() *int64 { return copyCount(i.likeCount) }

// CommentCount returns the comment count, or nil.
func (i Item) CommentCount() *int64 { return copyCount(i.commentCount) }

// SourceMetadata returns a copy of the platform-specific metadata map.
func (i Item) SourceMetadata() map[string]any {
	if i.sourceMetadata == nil {
		return map[string]any{}
	}
	return maps.Clone(i.sourceMetadata)
}

// Tags returns a copy of the user tags, insertion order preserved.
func (i Item) Tags() []string { return copyStrings(i.tags) }

// Notes returns the user notes.
func (i Item) Notes() string { return i.notes }

// SavedAt returns when the item was first persisted (zero before first save).
func (i Item) SavedAt() time.Time { return i.savedAt }

// CollectionID returns the collection the item belongs to, if any.
func (i Item) CollectionID() string { return i.collectionID }

// DrillTags returns a copy of the coaching drill tags.
func (i Item) DrillTags() []string { return copyStrings(i.drillTags) }

// DrillDescription returns the coach-written drill description.
func (i Item) DrillDescription() string { return i.drillDescription }

// Difficulty returns the drill difficulty (empty when unset).
func (i Item) Difficulty() Difficulty { return i.difficulty }

// Equipment returns the free-text equipment list.
func (i Item) Equipment() string { return i.equipment }

// AgeGroup returns the free-text target age group.
func (i Item) AgeGroup() string { return i.ageGroup }

// WithDescription returns a copy with the description set.
func (i Item) WithDescription(description string) Item {
	i.description = description
	return i
}

// WithTitle returns a copy with the title replaced. Empty titles are ignored
// so a caller override can never strip the required field.
func (i Item) WithTitle(title string) Item {
	if title != "" {
		i.title = title
	}
	return i
}

// WithAuthor returns a copy with the author set.
func (i Item) WithAuthor(author string) Item {
	i.author = author
	return i
}

// WithThumbnailURL returns a copy with the thumbnail URL set.
func (i Item) WithThumbnailURL(url string) Item {
	i.thumbnailURL = url
	return i
}

// WithPublishedAt returns a copy with the publish time set.
func (i Item) WithPublishedAt(t time.Time) Item {
	i.publishedAt = t
	return i
}

// WithEngagement returns a copy with the engagement counters set.
// Nil means the source does not report that counter.
func (i Item) WithEngagement(views, likes, comments *int64) Item {
	i.viewCount = copyCount(views)
	i.likeCount = copyCount(likes)
	i.commentCount = copyCount(comments)
	return i
}

// WithSourceMetadata returns a copy with the metadata map replaced.
func (i Item) WithSourceMetadata(meta map[string]any) Item {
	if meta == nil {
		meta = map[string]any{}
	}
	i.sourceMetadata = maps.Clone(meta)
	return i
}

// WithTags returns a copy with the user tags replaced.
func (i Item) WithTags(tags []string) Item {
	i.tags = copyStrings(tags)
	return i
}

// WithNotes returns a copy with the notes set.
func (i Item) WithNotes(notes string) Item {
	i.notes = notes
	return i
}

// WithCollectionID returns a copy assigned to a collection.
func (i Item) WithCollectionID(id string) Item {
	i.collectionID = id
	return i
}

// WithSavedAt returns a copy with the first-persist timestamp set.
// The store calls this once, on first insert.
func (i Item) WithSavedAt(t time.Time) Item {
	i.savedAt = t
	return i
}

// WithDrillTags returns a copy with the drill tags replaced.
func (i Item) WithDrillTags(tags []string) Item {
	i.drillTags = copyStrings(tags)
	return i
}

// WithDrillDescription returns a copy with the drill description set.
func (i Item) WithDrillDescription(desc string) Item {
	i.drillDescription = desc
	return i
}

// WithDifficulty returns a copy with the difficulty set.
func (i Item) WithDifficulty(d Difficulty) Item {
	i.difficulty = d
	return i
}

// WithEquipment returns a copy with the equipment text set.
func (i Item) WithEquipment(equipment string) Item {
	i.equipment = equipment
	return i
}

// WithAgeGroup returns a copy with the age group set.
func (i Item) WithAgeGroup(ageGroup string) Item {
	i.ageGroup = ageGroup
	return i
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func copyCount(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
