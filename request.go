package searchwire

import (
	"fmt"
	"time"

	"github.com/searchwire/searchwire/streamio"
)

// BaseRequest carries the transport-level fields shared by every request:
// the operation timeout and whether execution should prefer a locally held
// copy of the data. Concrete requests embed it and merge its validation and
// codec steps into their own; its fields travel on the wire immediately
// before the embedding request's fields.
type BaseRequest struct {
	timeout     time.Duration
	preferLocal bool
}

func newBaseRequest() BaseRequest {
	return BaseRequest{preferLocal: true}
}

// Timeout returns the operation timeout. Zero means no explicit timeout.
func (r *BaseRequest) Timeout() time.Duration {
	return r.timeout
}

// PreferLocal reports whether execution should prefer a local data copy.
// Defaults to true.
func (r *BaseRequest) PreferLocal() bool {
	return r.preferLocal
}

// Validate reports problems with the common fields. Embedding requests
// merge the result with their own checks via AddValidationError.
func (r *BaseRequest) Validate() *ValidationError {
	var ve *ValidationError
	if r.timeout < 0 {
		ve = AddValidationError(fmt.Errorf("timeout must not be negative: %v", r.timeout), ve)
	}
	return ve
}

// ReadFrom decodes the common fields: prefer-local flag, then the timeout
// in milliseconds as a vlong.
func (r *BaseRequest) ReadFrom(in *streamio.Input) error {
	var err error
	if r.preferLocal, err = in.ReadBool(); err != nil {
		return err
	}
	millis, err := in.ReadVLong()
	if err != nil {
		return err
	}
	r.timeout = time.Duration(millis) * time.Millisecond
	return nil
}

// WriteTo encodes the common fields in the same order ReadFrom consumes
// them.
func (r *BaseRequest) WriteTo(out *streamio.Output) error {
	if err := out.WriteBool(r.preferLocal); err != nil {
		return err
	}
	return out.WriteVLong(r.timeout.Milliseconds())
}
