package searchwire

import "github.com/searchwire/searchwire/xcontent"

// Params carries render-time parameters, passed unchanged to every nested
// fragment of a query document.
type Params map[string]string

// Filter is implemented by every query fragment that can render itself
// into a structured query document. Source writes exactly one complete
// value into the builder, so filters compose recursively: a clause of a
// boolean filter may itself be a boolean filter.
//
// Rendering must be idempotent given unchanged state and must propagate
// builder and nested-filter failures without recovery.
type Filter interface {
	Source(b *xcontent.Builder, params Params) error
}

// Occur is the logical role a clause plays inside a boolean filter.
type Occur uint8

const (
	// OccurMust requires the clause to match.
	OccurMust Occur = iota
	// OccurMustNot forbids the clause from matching.
	OccurMustNot
	// OccurShould marks the clause as preferred rather than required.
	OccurShould
)

// Label returns the document key the occurrence renders under.
func (o Occur) Label() string {
	switch o {
	case OccurMust:
		return "must"
	case OccurMustNot:
		return "must_not"
	case OccurShould:
		return "should"
	default:
		return "unknown"
	}
}
