package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_JSON(t *testing.T) {
	data, err := json.Marshal(Location{Lat: 40.0, Lng: -75.0, Address: "123 Main St"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"address":"123 Main St","lat":40,"lng":-75}`, string(data))
}

func TestPlace_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		place    Place
		expected string
	}{
		{
			name: "all components",
			place: Place{
				Prefecture:   "東京都",
				Municipality: "千代田区",
				Address1:     "丸の内",
				Address2:     "一丁目",
				BlockLot:     "9",
			},
			expected: "東京都千代田区丸の内一丁目9",
		},
		{
			name: "missing components are skipped",
			place: Place{
				Prefecture:   "東京都",
				Municipality: "港区",
				Address1:     "赤坂",
			},
			expected: "東京都港区赤坂",
		},
		{
			name:     "empty place",
			place:    Place{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.place.DisplayName())
		})
	}
}
