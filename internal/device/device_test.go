package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActionRequest(t *testing.T) {
	request, err := ParseActionRequest([]byte(`{"type":"remote","action":"volume_up","parameters":{"repeat":true}}`))
	require.NoError(t, err)
	assert.Equal(t, ActionRemote, request.Type)
	assert.Equal(t, "volume_up", request.Action)
	assert.Equal(t, true, request.Parameters["repeat"])
}

func TestParseActionRequestRejectsIncomplete(t *testing.T) {
	for name, payload := range map[string]string{
		"malformed":      `{`,
		"missing type":   `{"action":"volume_up"}`,
		"missing action": `{"type":"remote"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseActionRequest([]byte(payload))
			assert.Error(t, err)
		})
	}
}
