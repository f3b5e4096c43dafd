package middleware

import (
	"was/internal/http/response"
	"was/types"
)

type ServerFingerprint struct {
	value string
}

func NewServerFingerprint(name, version string) *ServerFingerprint {
	if version == "" {
		return &ServerFingerprint{value: name}
	}
	return &ServerFingerprint{value: name + "/" + version}
}

func (h *ServerFingerprint) HandleResponse(resp *response.Response) error {
	resp.Set(types.HeaderServer, h.value)
	return nil
}
