package content

// WithSource filters by the "source" column.
func WithSource(source Source) Option {
	return WithCondition("source", source.String())
}

// WithID filters by the "id" column.
func WithID(id string) Option {
	return WithCondition("id", id)
}

// WithType filters by the "content_type" column.
func WithType(t Type) Option {
	return WithCondition("content_type", t.String())
}

// WithCollection filters by the "collection_id" column.
func WithCollection(id string) Option {
	return WithCondition("collection_id", id)
}

// WithNewestSaved orders by saved_at, newest first.
func WithNewestSaved() Option {
	return WithOrderDesc("saved_at")
}
