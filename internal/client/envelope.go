package client

import (
	"encoding/json"
	"fmt"

	"github.com/tensix-io/acled-client/pkg/acled"
)

// envelope is the outer JSON object wrapping one page. The API uses the
// same wrapper for data and for errors with no discriminant field, so the
// two shapes are told apart structurally: a page is a success if and only
// if it carries a "data" array.
type envelope struct {
	Success *bool           `json:"success"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

type errorBody struct {
	Message string `json:"message"`
}

// decodePage interprets one page body: raw records on the success shape, an
// *acled.APIError on the failure shape, and an acled.ErrEnvelope-wrapped
// error when the body matches neither shape or the count/success integrity
// checks fail. The success shape is attempted first.
func decodePage[R any](body []byte) ([]R, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", acled.ErrEnvelope, err)
	}

	if env.Data != nil {
		return decodeDataShape[R](&env)
	}

	if env.Error != nil {
		return nil, decodeErrorShape(&env)
	}

	return nil, fmt.Errorf("%w: neither data nor error present", acled.ErrEnvelope)
}

func decodeDataShape[R any](env *envelope) ([]R, error) {
	var records []R
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, fmt.Errorf("%w: data is not a record array: %v", acled.ErrEnvelope, err)
	}

	if env.Success == nil || !*env.Success {
		return nil, fmt.Errorf("%w: data present but success flag is not true", acled.ErrEnvelope)
	}

	// The count duplicates information we already have; it exists purely
	// as an integrity check against the upstream contract.
	if env.Count == nil || *env.Count != len(records) {
		return nil, fmt.Errorf("%w: count %s does not match %d records",
			acled.ErrEnvelope, formatCount(env.Count), len(records))
	}

	return records, nil
}

func decodeErrorShape(env *envelope) error {
	var body errorBody
	if err := json.Unmarshal(env.Error, &body); err != nil || body.Message == "" {
		return fmt.Errorf("%w: error present without a message", acled.ErrEnvelope)
	}

	if env.Success != nil && *env.Success {
		return fmt.Errorf("%w: error present but success flag is true", acled.ErrEnvelope)
	}

	if env.Count != nil && *env.Count != 0 {
		return fmt.Errorf("%w: error page carries count %d", acled.ErrEnvelope, *env.Count)
	}

	return &acled.APIError{Message: body.Message}
}

func formatCount(count *int) string {
	if count == nil {
		return "(missing)"
	}

	return fmt.Sprintf("%d", *count)
}
