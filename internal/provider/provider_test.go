package provider

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCoordinate(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{in: 40.0, expected: "40"},
		{in: -75.0, expected: "-75"},
		{in: 35.681236, expected: "35.681236"},
		{in: -0.5, expected: "-0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCoordinate(tt.in))
		})
	}
}

func TestStatusError(t *testing.T) {
	err := StatusError(503)
	assert.True(t, errors.Is(err, ErrUpstreamStatus))
	assert.Contains(t, err.Error(), "503")
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess(200))
	assert.True(t, IsSuccess(204))
	assert.False(t, IsSuccess(199))
	assert.False(t, IsSuccess(301))
	assert.False(t, IsSuccess(404))
	assert.False(t, IsSuccess(500))
}

func TestNewHTTPClient(t *testing.T) {
	client := NewHTTPClient(3 * time.Second)
	assert.Equal(t, 3*time.Second, client.Timeout)
	assert.NotNil(t, client.Transport)
}
