package middleware

import (
	"testing"

	"was/internal/http/response"
	"was/internal/version"
	"was/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerFingerprint_HandleResponse(t *testing.T) {
	tests := []struct {
		name     string
		server   string
		version  string
		existing string
		expected string
	}{
		{name: "name and version", server: "was", version: "1.2.0", expected: "was/1.2.0"},
		{name: "name only", server: "was", expected: "was"},
		{name: "replaces existing", server: "was", version: "dev", existing: "other", expected: "was/dev"},
		{name: "build version", server: version.Name, version: version.GetShortVersion(), expected: version.Name + "/" + version.Version},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := response.New(types.StatusOK)
			if tt.existing != "" {
				resp.Set(types.HeaderServer, tt.existing)
			}

			err := NewServerFingerprint(tt.server, tt.version).HandleResponse(resp)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.expected}, resp.Values(types.HeaderServer))
		})
	}
}

func TestConnectionClose_HandleResponse(t *testing.T) {
	resp := response.New(types.StatusNotFound)
	resp.Set(types.HeaderConnection, "keep-alive")

	err := NewConnectionClose().HandleResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "close", resp.Value(types.HeaderConnection))

	raw, err := resp.Finalize()
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Connection: close\r\n")
}
