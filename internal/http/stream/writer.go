package stream

import (
	"was/internal/http/response"
)

// WriteResponse runs the response middlewares, then emits resp in one write.
func (hs *http) WriteResponse(resp *response.Response) error {
	if err := hs.applyResponseMiddlewares(resp); err != nil {
		return err
	}
	_, err := resp.WriteTo(hs.writer)
	return err
}
