package streamio

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// CompressedOutput is an Output whose bytes pass through a zstd stream.
// Close must be called to flush the compressor; the underlying writer is
// not closed.
type CompressedOutput struct {
	*Output
	enc *zstd.Encoder
}

// NewCompressedOutput wraps w in a zstd-compressed Output.
func NewCompressedOutput(w io.Writer) (*CompressedOutput, error) {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return nil, fmt.Errorf("create zstd writer: %w", err)
	}
	return &CompressedOutput{Output: NewOutput(enc), enc: enc}, nil
}

// Close flushes and finalizes the compressed stream.
func (c *CompressedOutput) Close() error {
	return c.enc.Close()
}

// CompressedInput is an Input reading from a zstd stream.
type CompressedInput struct {
	*Input
	dec *zstd.Decoder
}

// NewCompressedInput wraps r in a zstd-decompressing Input.
func NewCompressedInput(r io.Reader) (*CompressedInput, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create zstd reader: %w", err)
	}
	return &CompressedInput{Input: NewInput(dec), dec: dec}, nil
}

// Close releases the decompressor.
func (c *CompressedInput) Close() {
	c.dec.Close()
}
