package searchwire

import (
	"fmt"
	"time"

	"github.com/searchwire/searchwire/streamio"
)

// AnalyzeRequest asks a search node to run an analysis chain over a piece
// of text and report the produced tokens. The analyzer can be named
// directly, assembled from a tokenizer and token filters, or derived from
// the mapping of a field.
//
// Optional string fields use "" as the absent value; they encode as absent
// and decode back to "".
type AnalyzeRequest struct {
	BaseRequest

	index        string
	text         string
	analyzer     string
	tokenizer    string
	tokenFilters []string
	field        string
}

// NewAnalyzeRequest creates a request to analyze text without a target
// index.
func NewAnalyzeRequest(text string) *AnalyzeRequest {
	return &AnalyzeRequest{BaseRequest: newBaseRequest(), text: text}
}

// NewIndexAnalyzeRequest creates a request to analyze text in the context
// of the given index.
func NewIndexAnalyzeRequest(index, text string) *AnalyzeRequest {
	return &AnalyzeRequest{BaseRequest: newBaseRequest(), index: index, text: text}
}

// SetIndex targets the request at an index. Empty means all indices.
func (r *AnalyzeRequest) SetIndex(index string) *AnalyzeRequest {
	r.index = index
	return r
}

// Index returns the target index name.
func (r *AnalyzeRequest) Index() string { return r.index }

// Text returns the text to analyze.
func (r *AnalyzeRequest) Text() string { return r.text }

// SetAnalyzer names the analyzer to run the text through.
func (r *AnalyzeRequest) SetAnalyzer(analyzer string) *AnalyzeRequest {
	r.analyzer = analyzer
	return r
}

// Analyzer returns the named analyzer.
func (r *AnalyzeRequest) Analyzer() string { return r.analyzer }

// SetTokenizer names the tokenizer to build the analysis chain from.
func (r *AnalyzeRequest) SetTokenizer(tokenizer string) *AnalyzeRequest {
	r.tokenizer = tokenizer
	return r
}

// Tokenizer returns the named tokenizer.
func (r *AnalyzeRequest) Tokenizer() string { return r.tokenizer }

// SetTokenFilters names the token filters applied after the tokenizer, in
// order.
func (r *AnalyzeRequest) SetTokenFilters(tokenFilters ...string) *AnalyzeRequest {
	r.tokenFilters = tokenFilters
	return r
}

// TokenFilters returns the named token filters. After a decode an unset
// list comes back with length zero; callers must not distinguish nil from
// empty.
func (r *AnalyzeRequest) TokenFilters() []string { return r.tokenFilters }

// SetField derives the analyzer from the mapping of the given field.
func (r *AnalyzeRequest) SetField(field string) *AnalyzeRequest {
	r.field = field
	return r
}

// Field returns the mapping field the analyzer is derived from.
func (r *AnalyzeRequest) Field() string { return r.field }

// SetTimeout sets the operation timeout on the embedded base request.
func (r *AnalyzeRequest) SetTimeout(timeout time.Duration) *AnalyzeRequest {
	r.timeout = timeout
	return r
}

// SetPreferLocal controls whether execution should prefer a local data
// copy.
func (r *AnalyzeRequest) SetPreferLocal(preferLocal bool) *AnalyzeRequest {
	r.preferLocal = preferLocal
	return r
}

// Validate reports every problem with the request, merged with the base
// request's own failures. A nil result means the request can be
// dispatched.
func (r *AnalyzeRequest) Validate() *ValidationError {
	ve := r.BaseRequest.Validate()
	if r.text == "" {
		ve = AddValidationError(missingField("text"), ve)
	}
	return ve
}

// ReadFrom decodes the request from its wire form: the base request
// fields, then optional index, text, optional analyzer, optional
// tokenizer, a vint-counted list of token filters, and optional field, in
// exactly that order.
func (r *AnalyzeRequest) ReadFrom(in *streamio.Input) error {
	if err := r.BaseRequest.ReadFrom(in); err != nil {
		return fmt.Errorf("read analyze request: %w", err)
	}
	var err error
	if r.index, err = in.ReadOptionalString(); err != nil {
		return fmt.Errorf("read analyze request index: %w", err)
	}
	if r.text, err = in.ReadString(); err != nil {
		return fmt.Errorf("read analyze request text: %w", err)
	}
	if r.analyzer, err = in.ReadOptionalString(); err != nil {
		return fmt.Errorf("read analyze request analyzer: %w", err)
	}
	if r.tokenizer, err = in.ReadOptionalString(); err != nil {
		return fmt.Errorf("read analyze request tokenizer: %w", err)
	}
	size, err := in.ReadVInt()
	if err != nil {
		return fmt.Errorf("read analyze request token filters: %w", err)
	}
	r.tokenFilters = nil
	if size > 0 {
		r.tokenFilters = make([]string, size)
		for i := range r.tokenFilters {
			if r.tokenFilters[i], err = in.ReadString(); err != nil {
				return fmt.Errorf("read analyze request token filter %d: %w", i, err)
			}
		}
	}
	if r.field, err = in.ReadOptionalString(); err != nil {
		return fmt.Errorf("read analyze request field: %w", err)
	}
	return nil
}

// WriteTo encodes the request as the exact inverse of ReadFrom. A nil
// token filter list is written as a zero count, so it round-trips as an
// empty list rather than nil.
func (r *AnalyzeRequest) WriteTo(out *streamio.Output) error {
	if err := r.BaseRequest.WriteTo(out); err != nil {
		return fmt.Errorf("write analyze request: %w", err)
	}
	if err := out.WriteOptionalString(r.index); err != nil {
		return fmt.Errorf("write analyze request index: %w", err)
	}
	if err := out.WriteString(r.text); err != nil {
		return fmt.Errorf("write analyze request text: %w", err)
	}
	if err := out.WriteOptionalString(r.analyzer); err != nil {
		return fmt.Errorf("write analyze request analyzer: %w", err)
	}
	if err := out.WriteOptionalString(r.tokenizer); err != nil {
		return fmt.Errorf("write analyze request tokenizer: %w", err)
	}
	if err := out.WriteVInt(len(r.tokenFilters)); err != nil {
		return fmt.Errorf("write analyze request token filters: %w", err)
	}
	for i, tf := range r.tokenFilters {
		if err := out.WriteString(tf); err != nil {
			return fmt.Errorf("write analyze request token filter %d: %w", i, err)
		}
	}
	if err := out.WriteOptionalString(r.field); err != nil {
		return fmt.Errorf("write analyze request field: %w", err)
	}
	return nil
}
