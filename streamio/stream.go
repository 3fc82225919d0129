// Package streamio implements the compact binary wire format used for
// request transport between search nodes: variable-width integers,
// length-prefixed UTF-8 strings, and presence-flagged optional strings.
package streamio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrCorrupt signals a stream that cannot be decoded: a bad presence flag,
// a variable-width integer out of range, or a nonsensical length prefix.
var ErrCorrupt = errors.New("corrupt stream")

// Input reads wire-format values from an underlying byte stream.
// A short read surfaces as io.ErrUnexpectedEOF.
type Input struct {
	r *bufio.Reader
}

// NewInput wraps r in an Input. The reader is buffered internally;
// after decoding, r may have been read past the last consumed value.
func NewInput(r io.Reader) *Input {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Input{r: br}
}

// ReadVInt reads an unsigned base-128 variable-width integer.
func (in *Input) ReadVInt() (int, error) {
	v, err := binary.ReadUvarint(in.r)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: vint %d out of range", ErrCorrupt, v)
	}
	return int(v), nil
}

// ReadVLong reads an unsigned base-128 variable-width long.
func (in *Input) ReadVLong() (int64, error) {
	v, err := binary.ReadUvarint(in.r)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("%w: vlong %d out of range", ErrCorrupt, v)
	}
	return int64(v), nil
}

// ReadBool reads a single presence/flag byte. Anything other than 0 or 1
// fails with ErrCorrupt.
func (in *Input) ReadBool() (bool, error) {
	b, err := in.r.ReadByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: invalid bool byte 0x%02x", ErrCorrupt, b)
	}
}

// ReadString reads a vint byte length followed by that many UTF-8 bytes.
func (in *Input) ReadString() (string, error) {
	n, err := in.ReadVInt()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(in.r, buf); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return "", err
	}
	return string(buf), nil
}

// ReadOptionalString reads a presence flag followed by a string when the
// flag is set. An absent string decodes as "".
func (in *Input) ReadOptionalString() (string, error) {
	present, err := in.ReadBool()
	if err != nil {
		return "", err
	}
	if !present {
		return "", nil
	}
	return in.ReadString()
}

// Output writes wire-format values to an underlying byte stream.
type Output struct {
	w   io.Writer
	buf [binary.MaxVarintLen64]byte
}

// NewOutput wraps w in an Output.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// WriteVInt writes an unsigned base-128 variable-width integer.
func (out *Output) WriteVInt(v int) error {
	if v < 0 || v > math.MaxInt32 {
		return fmt.Errorf("vint %d out of range", v)
	}
	n := binary.PutUvarint(out.buf[:], uint64(v))
	_, err := out.w.Write(out.buf[:n])
	return err
}

// WriteVLong writes an unsigned base-128 variable-width long.
func (out *Output) WriteVLong(v int64) error {
	if v < 0 {
		return fmt.Errorf("vlong %d out of range", v)
	}
	n := binary.PutUvarint(out.buf[:], uint64(v))
	_, err := out.w.Write(out.buf[:n])
	return err
}

// WriteBool writes a single flag byte.
func (out *Output) WriteBool(b bool) error {
	out.buf[0] = 0
	if b {
		out.buf[0] = 1
	}
	_, err := out.w.Write(out.buf[:1])
	return err
}

// WriteString writes a vint byte length followed by the UTF-8 bytes of s.
func (out *Output) WriteString(s string) error {
	if err := out.WriteVInt(len(s)); err != nil {
		return err
	}
	_, err := io.WriteString(out.w, s)
	return err
}

// WriteOptionalString writes a presence flag, then s when it is non-empty.
// The empty string is the absent value and writes only the flag.
func (out *Output) WriteOptionalString(s string) error {
	if err := out.WriteBool(s != ""); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	return out.WriteString(s)
}
