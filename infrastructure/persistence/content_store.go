package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/creaselab/crease/domain/content"
	"github.com/creaselab/crease/internal/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContentStore implements content.Store using GORM.
type ContentStore struct {
	database.Repository[content.Item, ContentModel]
}

var _ content.Store = ContentStore{}

// NewContentStore creates a new ContentStore.
func NewContentStore(db database.Database) ContentStore {
	return ContentStore{
		Repository: database.NewRepository[content.Item, ContentModel](db, ContentMapper{}, "content"),
	}
}

// Save upserts an item by its (source, id) composite key. The whole row is
// written in one statement; callers needing a partial update read the item,
// mutate it, and re-save. savedAt is stamped on first persist only; a
// re-save carries the value read back from the store.
func (s ContentStore) Save(ctx context.Context, item content.Item) (content.Item, error) {
	if item.SavedAt().IsZero() {
		item = item.WithSavedAt(time.Now().UTC())
	}

	model := s.Mapper().ToModel(item)
	result := s.DB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "source"}, {Name: "id"}},
		UpdateAll: true,
	}).Create(&model)
	if result.Error != nil {
		return content.Item{}, fmt.Errorf("save content: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}

// GetByKey returns the item with the given composite key.
func (s ContentStore) GetByKey(ctx context.Context, source content.Source, id string) (content.Item, error) {
	return s.FindOne(ctx, content.WithSource(source), content.WithID(id))
}

// Get returns the first item with the given id, ignoring source. When the
// same native id exists under two sources the row returned is the storage
// engine's first match, matching the historical lenient contract.
func (s ContentStore) Get(ctx context.Context, id string) (content.Item, error) {
	return s.FindOne(ctx, content.WithID(id))
}

// Delete removes the item and reports whether a row existed.
func (s ContentStore) Delete(ctx context.Context, source content.Source, id string) (bool, error) {
	rows, err := s.DeleteWhere(ctx, content.WithSource(source), content.WithID(id))
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// SearchSaved returns saved items matching the filter, newest saved first.
func (s ContentStore) SearchSaved(ctx context.Context, filter content.SavedFilter) ([]content.Item, error) {
	db := s.DB(ctx)

	if filter.Query != "" {
		db = applyTextQuery(db, filter.Query)
	}
	if filter.Source != "" {
		db = db.Where("source = ?", filter.Source.String())
	}
	if filter.CollectionID != "" {
		db = db.Where("collection_id = ?", filter.CollectionID)
	}
	if len(filter.Tags) > 0 {
		db = s.applyTagFilter(db, "tags", filter.Tags)
	}

	return s.collect(db.Order(savedAtNewestFirst))
}

// Search returns up to limit items matching the text query and criteria,
// newest saved first.
func (s ContentStore) Search(ctx context.Context, query string, criteria content.Criteria, limit int) ([]content.Item, error) {
	db := s.DB(ctx)

	if query != "" {
		db = applyTextQuery(db, query)
	}
	if criteria.Source != "" {
		db = db.Where("source = ?", criteria.Source.String())
	}
	if criteria.Type != "" {
		db = db.Where("content_type = ?", criteria.Type.String())
	}
	if criteria.Difficulty != "" {
		db = db.Where("LOWER(difficulty) = LOWER(?)", criteria.Difficulty)
	}
	if criteria.Equipment != "" {
		db = db.Where("equipment LIKE ?", "%"+criteria.Equipment+"%")
	}
	if criteria.AgeGroup != "" {
		db = db.Where("age_group = ?", criteria.AgeGroup)
	}

	return s.collect(db.Order(savedAtNewestFirst).Limit(content.ClampLimit(limit)))
}

// savedAtNewestFirst orders by saved_at descending with NULLs last. The
// boolean expression sorts rows with a saved_at (false/0) before rows
// without one (true/1) on both SQLite and PostgreSQL.
const savedAtNewestFirst = "saved_at IS NULL, saved_at DESC"

// applyTextQuery matches q as a case-insensitive substring of title or
// description.
func applyTextQuery(db *gorm.DB, q string) *gorm.DB {
	pattern := "%" + strings.ToLower(q) + "%"
	return db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
}

// applyTagFilter matches rows whose JSON tag column contains at least one of
// the requested tags. SQLite expands the column with json_each; PostgreSQL
// casts to jsonb and expands with jsonb_array_elements_text.
func (s ContentStore) applyTagFilter(db *gorm.DB, column string, tags []string) *gorm.DB {
	if s.Database().IsPostgres() {
		return db.Where(
			fmt.Sprintf(`EXISTS (SELECT 1 FROM jsonb_array_elements_text(content.%s::jsonb) AS tag WHERE tag.value IN ?)`, column),
			tags,
		)
	}
	return db.Where(
		fmt.Sprintf(`EXISTS (SELECT 1 FROM json_each(content.%s) WHERE json_each.value IN ?)`, column),
		tags,
	)
}

func (s ContentStore) collect(db *gorm.DB) ([]content.Item, error) {
	var models []ContentModel
	if err := db.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("search content: %w", err)
	}
	items := make([]content.Item, len(models))
	for i, m := range models {
		items[i] = s.Mapper().ToDomain(m)
	}
	return items, nil
}
