package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalBoolUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		set   bool
		value bool
	}{
		{"true", `true`, true, true},
		{"false", `false`, true, false},
		{"string true", `"true"`, true, true},
		{"string false", `"false"`, true, false},
		{"empty string", `""`, false, false},
		{"null", `null`, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b OptionalBool
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &b))
			assert.Equal(t, tt.set, b.Set)
			assert.Equal(t, tt.value, b.Value)
		})
	}
}

func TestOptionalBoolAbsentField(t *testing.T) {
	var payload struct {
		Status OptionalBool `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &payload))
	assert.False(t, payload.Status.Set)
}

func TestOptionalBoolMarshal(t *testing.T) {
	data, err := json.Marshal(OptionalBool{Set: true, Value: true})
	require.NoError(t, err)
	assert.Equal(t, `true`, string(data))

	data, err = json.Marshal(OptionalBool{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}
