// Package persistence provides database storage implementations.
package persistence

import (
	"encoding/json"
	"log/slog"

	"github.com/creaselab/crease/domain/content"
)

// ContentMapper maps between the domain Item and the persistence ContentModel.
type ContentMapper struct{}

// ToDomain converts a ContentModel to a domain Item. Malformed JSON columns
// are replaced with empty collections and logged; a single bad field never
// fails the read.
func (m ContentMapper) ToDomain(e ContentModel) content.Item {
	d := content.ItemData{
		ID:           e.ID,
		Source:       content.Source(e.Source),
		Type:         content.Type(e.ContentType),
		Title:        e.Title,
		URL:          e.URL,
		Description:  stringValue(e.Description),
		Author:       stringValue(e.Author),
		ThumbnailURL: stringValue(e.ThumbnailURL),
		FetchedAt:    e.FetchedAt,
		ViewCount:    e.ViewCount,
		LikeCount:    e.LikeCount,
		CommentCount: e.CommentCount,
		Notes:        stringValue(e.Notes),
		CollectionID: stringValue(e.CollectionID),

		SourceMetadata:   parseJSONMap(e.SourceMetadata, e.Source, e.ID, "source_metadata"),
		Tags:             parseJSONList(e.Tags, e.Source, e.ID, "tags"),
		DrillTags:        parseJSONList(e.DrillTags, e.Source, e.ID, "drill_tags"),
		DrillDescription: stringValue(e.DrillDescription),
		Equipment:        stringValue(e.Equipment),
		AgeGroup:         stringValue(e.AgeGroup),
	}

	if e.PublishedAt != nil {
		d.PublishedAt = *e.PublishedAt
	}
	if e.SavedAt != nil {
		d.SavedAt = *e.SavedAt
	}

	// Canonicalize regardless of stored casing; old rows hold lowercase values.
	if raw := stringValue(e.Difficulty); raw != "" {
		difficulty, err := content.ParseDifficulty(raw)
		if err != nil {
			slog.Warn("unknown stored difficulty",
				"source", e.Source, "id", e.ID, "difficulty", raw)
		} else {
			d.Difficulty = difficulty
		}
	}

	return content.ReconstructItem(d)
}

// ToModel converts a domain Item to a ContentModel.
func (m ContentMapper) ToModel(item content.Item) ContentModel {
	d := item.Data()

	model := ContentModel{
		Source:       d.Source.String(),
		ID:           d.ID,
		ContentType:  d.Type.String(),
		Title:        d.Title,
		URL:          d.URL,
		Description:  stringPtr(d.Description),
		Author:       stringPtr(d.Author),
		ThumbnailURL: stringPtr(d.ThumbnailURL),
		FetchedAt:    d.FetchedAt,
		ViewCount:    d.ViewCount,
		LikeCount:    d.LikeCount,
		CommentCount: d.CommentCount,
		Notes:        stringPtr(d.Notes),
		CollectionID: stringPtr(d.CollectionID),

		SourceMetadata:   marshalJSONMap(d.SourceMetadata),
		Tags:             marshalJSONList(d.Tags),
		DrillTags:        marshalJSONList(d.DrillTags),
		DrillDescription: stringPtr(d.DrillDescription),
		Equipment:        stringPtr(d.Equipment),
		AgeGroup:         stringPtr(d.AgeGroup),
	}

	if !d.PublishedAt.IsZero() {
		t := d.PublishedAt
		model.PublishedAt = &t
	}
	if !d.SavedAt.IsZero() {
		t := d.SavedAt
		model.SavedAt = &t
	}
	if d.Difficulty != "" {
		s := d.Difficulty.String()
		model.Difficulty = &s
	}

	return model
}

func parseJSONMap(raw *string, source, id, column string) map[string]any {
	if raw == nil || *raw == "" {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(*raw), &out); err != nil {
		slog.Warn("malformed stored JSON, substituting empty map",
			"source", source, "id", id, "column", column, "error", err)
		return map[string]any{}
	}
	if out == nil {
		return map[string]any{}
	}
	return out
}

func parseJSONList(raw *string, source, id, column string) []string {
	if raw == nil || *raw == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(*raw), &out); err != nil {
		slog.Warn("malformed stored JSON, substituting empty list",
			"source", source, "id", id, "column", column, "error", err)
		return nil
	}
	return out
}

func marshalJSONMap(m map[string]any) *string {
	if m == nil {
		m = map[string]any{}
	}
	raw, err := json.Marshal(m)
	if err != nil {
		slog.Warn("unserializable source metadata, storing empty map", "error", err)
		s := "{}"
		return &s
	}
	s := string(raw)
	return &s
}

func marshalJSONList(l []string) *string {
	if l == nil {
		l = []string{}
	}
	raw, err := json.Marshal(l)
	if err != nil {
		s := "[]"
		return &s
	}
	s := string(raw)
	return &s
}

func stringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
