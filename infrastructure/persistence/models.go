package persistence

import "time"

// ContentModel represents a content item row. The composite primary key is
// (source, id); list and map fields are stored as JSON text columns.
type ContentModel struct {
	Source         string     `gorm:"column:source;primaryKey;size:32"`
	ID             string     `gorm:"column:id;primaryKey;size:255"`
	ContentType    string     `gorm:"column:content_type;size:32;not null"`
	Title          string     `gorm:"column:title;type:text;not null"`
	URL            string     `gorm:"column:url;type:text;not null"`
	Description    *string    `gorm:"column:description;type:text"`
	Author         *string    `gorm:"column:author;size:255"`
	PublishedAt    *time.Time `gorm:"column:published_at"`
	FetchedAt      time.Time  `gorm:"column:fetched_at;not null"`
	ThumbnailURL   *string    `gorm:"column:thumbnail_url;type:text"`
	ViewCount      *int64     `gorm:"column:view_count"`
	LikeCount      *int64     `gorm:"column:like_count"`
	CommentCount   *int64     `gorm:"column:comment_count"`
	SourceMetadata *string    `gorm:"column:source_metadata;type:text"`
	Tags           *string    `gorm:"column:tags;type:text"`
	Notes          *string    `gorm:"column:notes;type:text"`
	SavedAt        *time.Time `gorm:"column:saved_at;index"`
	CollectionID   *string    `gorm:"column:collection_id;index;size:255"`

	DrillTags        *string `gorm:"column:drill_tags;type:text"`
	DrillDescription *string `gorm:"column:drill_description;type:text"`
	Difficulty       *string `gorm:"column:difficulty;size:32"`
	Equipment        *string `gorm:"column:equipment;type:text"`
	AgeGroup         *string `gorm:"column:age_group;size:64"`

	// Deprecated columns from early schema versions. Kept so opening an old
	// database never drops data; nothing writes them.
	SkillFocus *string `gorm:"column:skill_focus;type:text"`
	DrillType  *string `gorm:"column:drill_type;size:64"`
}

// TableName returns the table name.
func (ContentModel) TableName() string {
	return "content"
}
