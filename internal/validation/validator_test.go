package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Team string `json:"team" validate:"required,max=5"`
	Date string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(sample{Team: "ABC", Date: "2026-10-18"}))
	require.NoError(t, v.Validate(sample{Team: "ABC"}))

	err := v.Validate(sample{Date: "18/10/2026"})
	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "è obbligatorio", verr.Fields["team"])
	assert.Equal(t, "deve avere il formato 2006-01-02", verr.Fields["date"])
	assert.Contains(t, err.Error(), "team è obbligatorio")

	err = v.Validate(sample{Team: "TOO LONG"})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "supera 5 caratteri", verr.Fields["team"])
}
