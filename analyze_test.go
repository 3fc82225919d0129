package searchwire

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/searchwire/searchwire/streamio"
)

func encodeRequest(t *testing.T, r *AnalyzeRequest) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := r.WriteTo(streamio.NewOutput(&buf)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func decodeRequest(t *testing.T, raw []byte) *AnalyzeRequest {
	t.Helper()
	var r AnalyzeRequest
	if err := r.ReadFrom(streamio.NewInput(bytes.NewReader(raw))); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return &r
}

func requireEqualRequests(t *testing.T, want, got *AnalyzeRequest) {
	t.Helper()
	if got.Index() != want.Index() {
		t.Errorf("index = %q, want %q", got.Index(), want.Index())
	}
	if got.Text() != want.Text() {
		t.Errorf("text = %q, want %q", got.Text(), want.Text())
	}
	if got.Analyzer() != want.Analyzer() {
		t.Errorf("analyzer = %q, want %q", got.Analyzer(), want.Analyzer())
	}
	if got.Tokenizer() != want.Tokenizer() {
		t.Errorf("tokenizer = %q, want %q", got.Tokenizer(), want.Tokenizer())
	}
	if len(got.TokenFilters()) != len(want.TokenFilters()) {
		t.Fatalf("token filters = %v, want %v", got.TokenFilters(), want.TokenFilters())
	}
	for i, tf := range want.TokenFilters() {
		if got.TokenFilters()[i] != tf {
			t.Errorf("token filter %d = %q, want %q", i, got.TokenFilters()[i], tf)
		}
	}
	if got.Field() != want.Field() {
		t.Errorf("field = %q, want %q", got.Field(), want.Field())
	}
	if got.Timeout() != want.Timeout() {
		t.Errorf("timeout = %v, want %v", got.Timeout(), want.Timeout())
	}
	if got.PreferLocal() != want.PreferLocal() {
		t.Errorf("prefer local = %v, want %v", got.PreferLocal(), want.PreferLocal())
	}
}

func TestAnalyzeRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		req      *AnalyzeRequest
		failures int
	}{
		{"text present", NewAnalyzeRequest("the quick brown fox"), 0},
		{"text with index", NewIndexAnalyzeRequest("articles", "fox"), 0},
		{"text missing", NewAnalyzeRequest(""), 1},
		{"other fields do not matter", NewAnalyzeRequest("fox").SetAnalyzer("").SetField(""), 0},
		{"text missing and bad timeout", NewAnalyzeRequest("").SetTimeout(-time.Second), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := tt.req.Validate()
			if tt.failures == 0 {
				if ve != nil {
					t.Fatalf("unexpected validation error: %v", ve)
				}
				return
			}
			if ve == nil {
				t.Fatal("expected validation error")
			}
			if len(ve.Failures) != tt.failures {
				t.Fatalf("failures = %d, want %d: %v", len(ve.Failures), tt.failures, ve)
			}
		})
	}
}

func TestAnalyzeRequest_ValidateMissingText(t *testing.T) {
	ve := NewAnalyzeRequest("").Validate()
	if ve == nil {
		t.Fatal("expected validation error")
	}
	if len(ve.Failures) != 1 {
		t.Fatalf("failures = %d, want 1", len(ve.Failures))
	}
	if !errors.Is(ve, ErrFieldMissing) {
		t.Errorf("error %v does not wrap ErrFieldMissing", ve)
	}
	if !strings.Contains(ve.Error(), "text") {
		t.Errorf("error = %q, want mention of text", ve.Error())
	}
}

func TestAnalyzeRequest_FluentChain(t *testing.T) {
	req := NewAnalyzeRequest("fox").
		SetIndex("articles").
		SetAnalyzer("standard").
		SetTokenizer("whitespace").
		SetTokenFilters("lowercase", "stop").
		SetField("title").
		SetTimeout(5 * time.Second).
		SetPreferLocal(false)

	if req.Index() != "articles" || req.Analyzer() != "standard" ||
		req.Tokenizer() != "whitespace" || req.Field() != "title" {
		t.Errorf("setters did not stick: %+v", req)
	}
	if req.Timeout() != 5*time.Second || req.PreferLocal() {
		t.Errorf("base setters did not stick")
	}

	// last write wins
	req.SetAnalyzer("keyword")
	if req.Analyzer() != "keyword" {
		t.Errorf("analyzer = %q, want keyword", req.Analyzer())
	}
}

func TestAnalyzeRequest_RoundTrip(t *testing.T) {
	req := NewIndexAnalyzeRequest("articles", "the quick brown fox").
		SetAnalyzer("standard").
		SetTokenizer("whitespace").
		SetTokenFilters("lowercase", "stop", "porter_stem").
		SetField("title").
		SetTimeout(30 * time.Second).
		SetPreferLocal(false)

	got := decodeRequest(t, encodeRequest(t, req))
	requireEqualRequests(t, req, got)
}

func TestAnalyzeRequest_RoundTripNilTokenFilters(t *testing.T) {
	req := NewAnalyzeRequest("fox")

	got := decodeRequest(t, encodeRequest(t, req))
	if len(got.TokenFilters()) != 0 {
		t.Errorf("token filters = %v, want empty", got.TokenFilters())
	}
	requireEqualRequests(t, req, got)
}

func TestAnalyzeRequest_RoundTripMinimal(t *testing.T) {
	got := decodeRequest(t, encodeRequest(t, NewAnalyzeRequest("fox").SetAnalyzer("standard")))

	if got.Index() != "" {
		t.Errorf("index = %q, want unset", got.Index())
	}
	if got.Text() != "fox" {
		t.Errorf("text = %q, want fox", got.Text())
	}
	if got.Analyzer() != "standard" {
		t.Errorf("analyzer = %q, want standard", got.Analyzer())
	}
	if got.Tokenizer() != "" {
		t.Errorf("tokenizer = %q, want unset", got.Tokenizer())
	}
	if len(got.TokenFilters()) != 0 {
		t.Errorf("token filters = %v, want empty", got.TokenFilters())
	}
	if got.Field() != "" {
		t.Errorf("field = %q, want unset", got.Field())
	}
}

func TestAnalyzeRequest_ReadFromTruncated(t *testing.T) {
	raw := encodeRequest(t, NewIndexAnalyzeRequest("articles", "fox").
		SetTokenFilters("lowercase", "stop"))

	for cut := 0; cut < len(raw); cut++ {
		var r AnalyzeRequest
		err := r.ReadFrom(streamio.NewInput(bytes.NewReader(raw[:cut])))
		if err == nil {
			t.Fatalf("decode of %d/%d bytes succeeded", cut, len(raw))
		}
		if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Fatalf("decode of %d bytes: unexpected error %v", cut, err)
		}
	}
}

func TestAnalyzeRequest_ReadFromCorrupt(t *testing.T) {
	// 0x07 is not a valid prefer-local flag byte.
	var r AnalyzeRequest
	err := r.ReadFrom(streamio.NewInput(bytes.NewReader([]byte{0x07, 0x00})))
	if !errors.Is(err, streamio.ErrCorrupt) {
		t.Fatalf("err = %v, want ErrCorrupt", err)
	}
}

func TestAnalyzeRequest_RoundTripCompressed(t *testing.T) {
	req := NewIndexAnalyzeRequest("articles", strings.Repeat("fox jumps ", 200)).
		SetTokenFilters("lowercase")

	var buf bytes.Buffer
	out, err := streamio.NewCompressedOutput(&buf)
	if err != nil {
		t.Fatalf("compressed output: %v", err)
	}
	if err := req.WriteTo(out.Output); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	in, err := streamio.NewCompressedInput(&buf)
	if err != nil {
		t.Fatalf("compressed input: %v", err)
	}
	defer in.Close()

	var got AnalyzeRequest
	if err := got.ReadFrom(in.Input); err != nil {
		t.Fatalf("decode: %v", err)
	}
	requireEqualRequests(t, req, &got)
}
