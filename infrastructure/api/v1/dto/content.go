// Package dto defines the v1 API request and response bodies.
package dto

import (
	"time"

	"github.com/creaselab/crease/domain/content"
)

// SaveContentRequest is the body for POST /content. Optional fields
// override what the source adapter fetched; pointer fields distinguish
// "absent" from "set to empty".
type SaveContentRequest struct {
	URL    string `json:"url"`
	Source string `json:"source"`

	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Author      *string `json:"author,omitempty"`

	DrillTags        []string `json:"drill_tags,omitempty"`
	DrillDescription *string  `json:"drill_description,omitempty"`
	Difficulty       *string  `json:"difficulty,omitempty"`
	Equipment        *string  `json:"equipment,omitempty"`
	AgeGroup         *string  `json:"age_group,omitempty"`
}

// UpdateMetadataRequest is the body for PUT /content/{id}/metadata.
// Nil fields are left untouched.
type UpdateMetadataRequest struct {
	DrillTags        []string `json:"drill_tags,omitempty"`
	DrillDescription *string  `json:"drill_description,omitempty"`
	Difficulty       *string  `json:"difficulty,omitempty"`
	Equipment        *string  `json:"equipment,omitempty"`
	AgeGroup         *string  `json:"age_group,omitempty"`
}

// ContentItemResponse is one content item in API responses.
type ContentItemResponse struct {
	ID           string         `json:"id"`
	Source       string         `json:"source"`
	ContentType  string         `json:"content_type"`
	Title        string         `json:"title"`
	URL          string         `json:"url"`
	Description  string         `json:"description,omitempty"`
	Author       string         `json:"author,omitempty"`
	ThumbnailURL string         `json:"thumbnail_url,omitempty"`
	PublishedAt  *time.Time     `json:"published_at,omitempty"`
	FetchedAt    time.Time      `json:"fetched_at"`
	ViewCount    *int64         `json:"view_count,omitempty"`
	LikeCount    *int64         `json:"like_count,omitempty"`
	CommentCount *int64         `json:"comment_count,omitempty"`
	Metadata     map[string]any `json:"source_metadata,omitempty"`

	Tags         []string   `json:"tags,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	SavedAt      *time.Time `json:"saved_at,omitempty"`
	CollectionID string     `json:"collection_id,omitempty"`

	DrillTags        []string `json:"drill_tags,omitempty"`
	DrillDescription string   `json:"drill_description,omitempty"`
	Difficulty       string   `json:"difficulty,omitempty"`
	Equipment        string   `json:"equipment,omitempty"`
	AgeGroup         string   `json:"age_group,omitempty"`
}

// ContentListResponse is the body for list and search responses.
type ContentListResponse struct {
	Items []ContentItemResponse `json:"items"`
	Total int                   `json:"total"`
}

// FromItem converts a domain item to its response form.
func FromItem(item content.Item) ContentItemResponse {
	resp := ContentItemResponse{
		ID:               item.ID(),
		Source:           item.Source().String(),
		ContentType:      item.Type().String(),
		Title:            item.Title(),
		URL:              item.URL(),
		Description:      item.Description(),
		Author:           item.Author(),
		ThumbnailURL:     item.ThumbnailURL(),
		FetchedAt:        item.FetchedAt(),
		ViewCount:        item.ViewCount(),
		LikeCount:        item.LikeCount(),
		CommentCount:     item.CommentCount(),
		Metadata:         item.SourceMetadata(),
		Tags:             item.Tags(),
		Notes:            item.Notes(),
		CollectionID:     item.CollectionID(),
		DrillTags:        item.DrillTags(),
		DrillDescription: item.DrillDescription(),
		Difficulty:       item.Difficulty().String(),
		Equipment:        item.Equipment(),
		AgeGroup:         item.AgeGroup(),
	}
	if t := item.PublishedAt(); !t.IsZero() {
		resp.PublishedAt = &t
	}
	if t := item.SavedAt(); !t.IsZero() {
		resp.SavedAt = &t
	}
	return resp
}

// FromItems converts a slice of domain items.
func FromItems(items []content.Item) []ContentItemResponse {
	out := make([]ContentItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromItem(item))
	}
	return out
}
