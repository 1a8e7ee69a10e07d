package sales

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCarModelString(t *testing.T) {
	require.Equal(t, "Sedan", Sedan.String())
	require.Equal(t, "Sport", Sport.String())
	require.Equal(t, "Unknown", CarModel(9).String())
}

func TestCarModelJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(SUV)
	require.NoError(t, err)
	require.Equal(t, `"SUV"`, string(data))

	var model CarModel
	require.NoError(t, json.Unmarshal(data, &model))
	require.Equal(t, SUV, model)

	require.NoError(t, json.Unmarshal([]byte(`2`), &model))
	require.Equal(t, Offroad, model)

	require.Error(t, json.Unmarshal([]byte(`"Truck"`), &model))
	require.Error(t, json.Unmarshal([]byte(`7`), &model))
}
