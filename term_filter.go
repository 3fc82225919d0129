package searchwire

import "github.com/searchwire/searchwire/xcontent"

// TermFilter matches documents containing an exact term in a field.
type TermFilter struct {
	field string
	value any

	name     string
	cache    *bool
	cacheKey string
}

// NewTermFilter creates a filter matching documents whose field holds the
// exact value.
func NewTermFilter(field string, value any) *TermFilter {
	return &TermFilter{field: field, value: value}
}

// FilterName names the filter for matched-filter introspection per hit.
func (f *TermFilter) FilterName(name string) *TermFilter {
	f.name = name
	return f
}

// Cache hints whether the filter should be cached.
func (f *TermFilter) Cache(cache bool) *TermFilter {
	f.cache = &cache
	return f
}

// CacheKey overrides the cache identity of the filter.
func (f *TermFilter) CacheKey(cacheKey string) *TermFilter {
	f.cacheKey = cacheKey
	return f
}

// Source renders the filter as a "term" object.
func (f *TermFilter) Source(b *xcontent.Builder, params Params) error {
	b.StartObject()
	b.StartObjectField("term")
	b.Field(f.field, f.value)
	if f.name != "" {
		b.Field("_name", f.name)
	}
	if f.cache != nil {
		b.Field("_cache", *f.cache)
	}
	if f.cacheKey != "" {
		b.Field("_cache_key", f.cacheKey)
	}
	b.EndObject()
	b.EndObject()
	return b.Err()
}

// MatchAllFilter matches every document.
type MatchAllFilter struct{}

// NewMatchAllFilter creates a filter matching all documents.
func NewMatchAllFilter() *MatchAllFilter {
	return &MatchAllFilter{}
}

// Source renders the filter as an empty "match_all" object.
func (f *MatchAllFilter) Source(b *xcontent.Builder, params Params) error {
	b.StartObject()
	b.StartObjectField("match_all")
	b.EndObject()
	b.EndObject()
	return b.Err()
}
