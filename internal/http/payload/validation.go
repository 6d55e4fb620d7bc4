package payload

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/jellydator/validation"
)

// FormBinder is implemented by form payloads that can populate themselves from url-encoded values.
type FormBinder interface {
	BindForm(values url.Values)
}

type DecodeValidator struct{}

func (dv DecodeValidator) DecodeAndValidateForm(r *http.Request, object FormBinder) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("decoding form payload: %w", err)
	}

	object.BindForm(r.PostForm)
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
