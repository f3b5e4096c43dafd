package middleware

import (
	"was/internal/http/response"
	"was/types"
)

// ConnectionClose announces that the server closes the connection after every
// response.
type ConnectionClose struct{}

func NewConnectionClose() *ConnectionClose {
	return &ConnectionClose{}
}

func (c *ConnectionClose) HandleResponse(resp *response.Response) error {
	resp.Set(types.HeaderConnection, "close")
	return nil
}
