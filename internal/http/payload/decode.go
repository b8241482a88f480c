package payload

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jellydator/validation"
)

const maxBodyBytes = 1 << 16

type DecodeValidator struct{}

// DecodeJSONPayload decodes the request body into object and runs its
// validation rules when it has any.
func (dv DecodeValidator) DecodeJSONPayload(r *http.Request, object any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	defer r.Body.Close()
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}
	return dv.validatePayload(object)
}

func (dv DecodeValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
