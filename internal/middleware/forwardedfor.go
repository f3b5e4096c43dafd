package middleware

import (
	"net"

	"was/internal/http/request"
	"was/types"
)

type ForwardedFor struct {
	addr net.Addr
}

func NewForwardedFor(addr net.Addr) *ForwardedFor {
	return &ForwardedFor{addr: addr}
}

func (ff *ForwardedFor) HandleRequest(req request.Request) error {
	host, _, err := net.SplitHostPort(ff.addr.String())
	if err != nil {
		return err
	}
	req.SetHeader(string(types.HeaderForwardedFor), host)
	return nil
}
