package controller

import (
	"was/internal/http/request"
	"was/internal/http/response"
	"was/types"
)

// Handler owns no framing knowledge: it only decides the logical outcome.
type Handler interface {
	Handle(req request.Request) *response.Outcome
}

type HandlerFunc func(req request.Request) *response.Outcome

func (f HandlerFunc) Handle(req request.Request) *response.Outcome {
	return f(req)
}

// Methods restricts a route to the methods it maps. Anything else is answered
// with 405.
type Methods map[types.Method]HandlerFunc

func (m Methods) Handle(req request.Request) *response.Outcome {
	h, ok := m[req.Method()]
	if !ok {
		return response.Error(types.StatusMethodNotAllowed)
	}
	return h(req)
}

func NewNotFound() Handler {
	return HandlerFunc(func(req request.Request) *response.Outcome {
		return response.Error(types.StatusNotFound)
	})
}

// NewResource serves the request path itself as the view; the view provider
// decides between template and static file and 404s on a miss.
func NewResource() Handler {
	return Methods{
		types.MethodGET: func(req request.Request) *response.Outcome {
			return response.Render(req.Path())
		},
	}
}
