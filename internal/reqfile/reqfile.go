// Package reqfile defines the YAML file representations of analyze
// requests and filter trees used by the searchwire CLI, and converts them
// to and from the domain objects.
package reqfile

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/searchwire/searchwire"
)

// AnalyzeFile is the YAML-serializable form of an analyze request.
type AnalyzeFile struct {
	Index        string   `yaml:"index,omitempty"`
	Text         string   `yaml:"text"`
	Analyzer     string   `yaml:"analyzer,omitempty"`
	Tokenizer    string   `yaml:"tokenizer,omitempty"`
	TokenFilters []string `yaml:"token_filters,omitempty"`
	Field        string   `yaml:"field,omitempty"`
	Timeout      string   `yaml:"timeout,omitempty"`      // Go duration, e.g. "30s"
	PreferLocal  *bool    `yaml:"prefer_local,omitempty"` // defaults to true
}

// ParseAnalyze decodes an AnalyzeFile from YAML bytes.
func ParseAnalyze(data []byte) (AnalyzeFile, error) {
	var f AnalyzeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return AnalyzeFile{}, fmt.Errorf("parse analyze request file: %w", err)
	}
	return f, nil
}

// Request hydrates the domain request from the file form.
func (f AnalyzeFile) Request() (*searchwire.AnalyzeRequest, error) {
	req := searchwire.NewIndexAnalyzeRequest(f.Index, f.Text).
		SetAnalyzer(f.Analyzer).
		SetTokenizer(f.Tokenizer).
		SetField(f.Field)
	if len(f.TokenFilters) > 0 {
		req.SetTokenFilters(f.TokenFilters...)
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", f.Timeout, err)
		}
		req.SetTimeout(d)
	}
	if f.PreferLocal != nil {
		req.SetPreferLocal(*f.PreferLocal)
	}
	return req, nil
}

// FromRequest converts a domain request back to its file form, used to
// print decoded requests.
func FromRequest(req *searchwire.AnalyzeRequest) AnalyzeFile {
	f := AnalyzeFile{
		Index:        req.Index(),
		Text:         req.Text(),
		Analyzer:     req.Analyzer(),
		Tokenizer:    req.Tokenizer(),
		TokenFilters: req.TokenFilters(),
		Field:        req.Field(),
	}
	if req.Timeout() != 0 {
		f.Timeout = req.Timeout().String()
	}
	if !req.PreferLocal() {
		preferLocal := false
		f.PreferLocal = &preferLocal
	}
	return f
}

// FilterFile is one node of a YAML filter tree. Exactly one of the clause
// kinds must be set.
type FilterFile struct {
	Bool     *BoolNode      `yaml:"bool,omitempty"`
	Term     map[string]any `yaml:"term,omitempty"`
	MatchAll *struct{}      `yaml:"match_all,omitempty"`
}

// BoolNode is the YAML form of a boolean filter. The file form groups
// clauses by occurrence, so interleavings across groups are not
// representable; within a group, order is preserved.
type BoolNode struct {
	Must     []FilterFile `yaml:"must,omitempty"`
	Should   []FilterFile `yaml:"should,omitempty"`
	MustNot  []FilterFile `yaml:"must_not,omitempty"`
	Name     string       `yaml:"name,omitempty"`
	Cache    *bool        `yaml:"cache,omitempty"`
	CacheKey string       `yaml:"cache_key,omitempty"`
}

// ParseFilter decodes a FilterFile from YAML bytes.
func ParseFilter(data []byte) (FilterFile, error) {
	var f FilterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return FilterFile{}, fmt.Errorf("parse filter file: %w", err)
	}
	return f, nil
}

// Filter hydrates the domain filter from the file form.
func (f FilterFile) Filter() (searchwire.Filter, error) {
	kinds := 0
	if f.Bool != nil {
		kinds++
	}
	if f.Term != nil {
		kinds++
	}
	if f.MatchAll != nil {
		kinds++
	}
	if kinds != 1 {
		return nil, fmt.Errorf("filter node must have exactly one of bool, term, match_all")
	}

	switch {
	case f.Bool != nil:
		return f.Bool.filter()
	case f.Term != nil:
		if len(f.Term) != 1 {
			return nil, fmt.Errorf("term filter must have exactly one field, got %d", len(f.Term))
		}
		for field, value := range f.Term {
			return searchwire.NewTermFilter(field, value), nil
		}
	}
	return searchwire.NewMatchAllFilter(), nil
}

func (n *BoolNode) filter() (searchwire.Filter, error) {
	b := searchwire.NewBoolFilter()
	if err := addClauses(n.Must, b.Must); err != nil {
		return nil, err
	}
	if err := addClauses(n.Should, b.Should); err != nil {
		return nil, err
	}
	if err := addClauses(n.MustNot, b.MustNot); err != nil {
		return nil, err
	}
	if n.Name != "" {
		b.FilterName(n.Name)
	}
	if n.Cache != nil {
		b.Cache(*n.Cache)
	}
	if n.CacheKey != "" {
		b.CacheKey(n.CacheKey)
	}
	return b, nil
}

func addClauses(nodes []FilterFile, add func(...searchwire.Filter) *searchwire.BoolFilter) error {
	for _, node := range nodes {
		flt, err := node.Filter()
		if err != nil {
			return err
		}
		add(flt)
	}
	return nil
}
