package transport

import (
	"net"

	"was/internal/controller"
	"was/internal/http/request"
	"was/internal/http/response"
)

type Transport interface {
	Listen() (net.Listener, error)
	Serve(listener net.Listener) error
}

// Selector picks the handler for a request.
type Selector interface {
	Select(req request.Request) controller.Handler
}

// Builder turns an outcome into a wire-ready response.
type Builder interface {
	Build(out *response.Outcome) (*response.Response, error)
}
