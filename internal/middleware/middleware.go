package middleware

import (
	"was/internal/http/request"
	"was/internal/http/response"
)

type RequestMiddleware interface {
	HandleRequest(req request.Request) error
}

type ResponseMiddleware interface {
	HandleResponse(resp *response.Response) error
}
