package acled_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensix-io/acled-client/pkg/acled"
)

func TestAPIError(t *testing.T) {
	t.Parallel()

	err := &acled.APIError{Message: "Incorrect key"}
	assert.Equal(t, "API returned an error: Incorrect key", err.Error())

	wrapped := fmt.Errorf("acled page 1: %w", err)
	assert.True(t, acled.IsAPIError(wrapped))
	assert.False(t, acled.IsAPIError(errors.New("plain")))
	assert.False(t, acled.IsAPIError(nil))

	target := &acled.APIError{}
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "Incorrect key", target.Message)
}

func TestParseError(t *testing.T) {
	t.Parallel()

	_, numErr := strconv.ParseUint("abc", 10, 64)
	require.Error(t, numErr)

	err := &acled.ParseError{Field: "timestamp", Err: numErr}
	assert.Contains(t, err.Error(), `"timestamp"`)
	assert.ErrorIs(t, err, numErr)

	wrapped := fmt.Errorf("acled page 2: %w", err)
	assert.True(t, acled.IsParseError(wrapped))
	assert.False(t, acled.IsParseError(numErr))

	target := &acled.ParseError{}
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "timestamp", target.Field)
}

func TestIsEnvelopeViolation(t *testing.T) {
	t.Parallel()

	violation := fmt.Errorf("%w: count is 3 but data holds 2 records", acled.ErrEnvelope)
	assert.True(t, acled.IsEnvelopeViolation(violation))
	assert.True(t, acled.IsEnvelopeViolation(fmt.Errorf("fetching acled page 1: %w", violation)))
	assert.False(t, acled.IsEnvelopeViolation(&acled.APIError{Message: "nope"}))
	assert.False(t, acled.IsEnvelopeViolation(nil))
}
