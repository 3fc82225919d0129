// Package searchwire models the administrative requests and composable
// query fragments of a distributed search system: value objects that are
// built fluently, validated before dispatch, and serialized either to the
// compact binary wire format (requests) or to a structured query document
// (filters).
//
// # Analyze requests
//
//	req := searchwire.NewIndexAnalyzeRequest("articles", "the quick brown fox").
//	    SetAnalyzer("standard").
//	    SetTokenFilters("lowercase", "stop")
//	if ve := req.Validate(); ve != nil {
//	    return ve
//	}
//	out := streamio.NewOutput(&buf)
//	_ = req.WriteTo(out)
//
// # Composing filters
//
//	f := searchwire.NewBoolFilter().
//	    Must(searchwire.NewTermFilter("state", "published")).
//	    MustNot(searchwire.NewTermFilter("hidden", true)).
//	    FilterName("visible")
//	b := xcontent.NewBuilder()
//	_ = f.Source(b, nil)
//	doc, _ := b.Bytes()
//
// Request and filter objects carry no synchronization: they are meant to
// be built and consumed by a single owner. Sharing a fully built object
// for rendering or encoding is safe; concurrent mutation is not.
package searchwire
