package stream

import (
	"was/internal/http/header"
	"was/internal/http/request"
)

// ReadRequest parses exactly one request. Bytes after the declared body stay
// unread. A connection closed before its first byte yields a bare io.EOF.
func (hs *http) ReadRequest() (request.Request, error) {
	msg, err := header.NewMessage(hs.reader, hs.maxBody)
	if err != nil {
		return nil, err
	}

	req, err := request.New(msg)
	if err != nil {
		return nil, err
	}

	if err = hs.applyRequestMiddlewares(req); err != nil {
		return nil, err
	}
	return req, nil
}
