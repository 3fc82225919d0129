package searchwire

import "github.com/searchwire/searchwire/xcontent"

// BoolFilter matches documents matching boolean combinations of other
// filters.
//
// Clauses render in insertion order, not grouped by occurrence: the
// emitted "bool" object repeats the "must"/"must_not"/"should" key once
// per clause. The same filter instance may be added more than once and
// renders once per addition.
//
// Like every request object in this package, a BoolFilter is built by a
// single owner; share it only after the last mutating call.
type BoolFilter struct {
	clauses []boolClause

	name     string
	cache    *bool
	cacheKey string
}

type boolClause struct {
	filter Filter
	occur  Occur
}

// NewBoolFilter creates a boolean filter with no clauses.
func NewBoolFilter() *BoolFilter {
	return &BoolFilter{}
}

// Must adds filters that must appear in the matching documents.
func (f *BoolFilter) Must(filters ...Filter) *BoolFilter {
	return f.add(OccurMust, filters)
}

// MustNot adds filters that must not appear in the matching documents.
func (f *BoolFilter) MustNot(filters ...Filter) *BoolFilter {
	return f.add(OccurMustNot, filters)
}

// Should adds filters that should appear in the matching documents. With
// no must clauses, at least one should clause has to match.
func (f *BoolFilter) Should(filters ...Filter) *BoolFilter {
	return f.add(OccurShould, filters)
}

func (f *BoolFilter) add(occur Occur, filters []Filter) *BoolFilter {
	for _, flt := range filters {
		f.clauses = append(f.clauses, boolClause{filter: flt, occur: occur})
	}
	return f
}

// FilterName names the filter for matched-filter introspection per hit.
// Last call wins.
func (f *BoolFilter) FilterName(name string) *BoolFilter {
	f.name = name
	return f
}

// Cache hints whether the composed filter should be cached.
func (f *BoolFilter) Cache(cache bool) *BoolFilter {
	f.cache = &cache
	return f
}

// CacheKey overrides the cache identity of the filter.
func (f *BoolFilter) CacheKey(cacheKey string) *BoolFilter {
	f.cacheKey = cacheKey
	return f
}

// Source renders the filter as a "bool" object: every clause in insertion
// order under its occurrence key, then _name, _cache and _cache_key, each
// omitted when unset.
func (f *BoolFilter) Source(b *xcontent.Builder, params Params) error {
	b.StartObject()
	b.StartObjectField("bool")
	for _, c := range f.clauses {
		b.FieldName(c.occur.Label())
		if err := c.filter.Source(b, params); err != nil {
			return err
		}
	}
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
