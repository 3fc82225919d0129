// Package xcontent builds structured query documents as JSON bytes.
//
// The builder writes output directly instead of going through a map, so a
// single object may carry the same key several times in insertion order —
// boolean query documents rely on repeated "must"/"should"/"must_not" keys.
package xcontent

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Builder emits a JSON document through startObject/field/endObject calls.
//
// Methods return the builder for chaining and record the first failure
// instead of returning it; the failure surfaces from Err or Bytes. A Builder
// is single-use: render once, read the bytes, discard.
type Builder struct {
	buf     bytes.Buffer
	counts  []int // values written per open object
	pending bool  // a field name awaits its value
	started bool  // the top-level value has begun
	err     error
}

// NewBuilder creates an empty document builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// StartObject opens an object in value position: at the top level, or
// directly after FieldName.
func (b *Builder) StartObject() *Builder {
	if !b.beginValue() {
		return b
	}
	b.buf.WriteByte('{')
	b.counts = append(b.counts, 0)
	return b
}

// StartObjectField writes a field name and opens its object value.
func (b *Builder) StartObjectField(name string) *Builder {
	return b.FieldName(name).StartObject()
}

// EndObject closes the innermost open object.
func (b *Builder) EndObject() *Builder {
	if b.err != nil {
		return b
	}
	if len(b.counts) == 0 || b.pending {
		b.fail("endObject without matching startObject")
		return b
	}
	b.counts = b.counts[:len(b.counts)-1]
	b.buf.WriteByte('}')
	return b
}

// FieldName writes a bare field key. The caller supplies the value next,
// typically by letting a nested fragment render itself.
func (b *Builder) FieldName(name string) *Builder {
	if b.err != nil {
		return b
	}
	if len(b.counts) == 0 {
		b.fail("field %q outside of an object", name)
		return b
	}
	if b.pending {
		b.fail("field %q while field value is pending", name)
		return b
	}
	if b.counts[len(b.counts)-1] > 0 {
		b.buf.WriteByte(',')
	}
	b.counts[len(b.counts)-1]++
	b.writeScalar(name)
	b.buf.WriteByte(':')
	b.pending = true
	return b
}

// Field writes a field with a scalar value (string, bool, number, or a
// slice of those).
func (b *Builder) Field(name string, value any) *Builder {
	b.FieldName(name)
	if b.err != nil {
		return b
	}
	b.pending = false
	b.writeScalar(value)
	return b
}

// Err returns the first failure recorded by the builder, if any.
func (b *Builder) Err() error {
	return b.err
}

// Bytes returns the rendered document. It fails if any builder call failed
// or if objects are left unbalanced.
func (b *Builder) Bytes() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.counts) > 0 || b.pending {
		return nil, fmt.Errorf("xcontent: document is incomplete")
	}
	return b.buf.Bytes(), nil
}

// String returns the rendered document as a string.
func (b *Builder) String() (string, error) {
	raw, err := b.Bytes()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// beginValue validates value position and tracks top-level completion.
func (b *Builder) beginValue() bool {
	if b.err != nil {
		return false
	}
	if b.pending {
		b.pending = false
		return true
	}
	if len(b.counts) > 0 {
		b.fail("value without a field name")
		return false
	}
	if b.started {
		b.fail("second top-level value")
		return false
	}
	b.started = true
	return true
}

func (b *Builder) writeScalar(v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		b.fail("unsupported value %T: %v", v, err)
		return
	}
	b.buf.Write(raw)
}

func (b *Builder) fail(format string, args ...any) {
	if b.err == nil {
		b.err = fmt.Errorf("xcontent: "+format, args...)
	}
}
