package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeDataStripsSensitiveFields(t *testing.T) {
	data := map[string]interface{}{
		"name":     "Jane",
		"password": "hunter2",
		"apiKey":   "abc",
		"nested": map[string]interface{}{
			"secret": "x",
			"kept":   "y",
		},
	}

	out, ok := SanitizeData(data).(map[string]interface{})
	require.True(t, ok)

	assert.NotContains(t, out, "password")
	assert.NotContains(t, out, "apiKey")
	assert.Equal(t, "Jane", out["name"])

	nested := out["nested"].(map[string]interface{})
	assert.NotContains(t, nested, "secret")
	assert.Equal(t, "y", nested["kept"])
}

func TestSanitizeDataHandlesSlicesAndStructs(t *testing.T) {
	type item struct {
		Name  string `json:"name"`
		Token string `json:"token"`
	}

	out, ok := SanitizeData([]item{{Name: "a", Token: "t1"}, {Name: "b", Token: "t2"}}).([]interface{})
	require.True(t, ok)
	require.Len(t, out, 2)

	first := out[0].(map[string]interface{})
	assert.Equal(t, "a", first["name"])
	assert.NotContains(t, first, "token")
}

func TestSanitizeDataNil(t *testing.T) {
	assert.Nil(t, SanitizeData(nil))
}
