package transport

import (
	"errors"
	"io"
	"net"
	"os"
	"time"

	"was/internal/config"
	"was/internal/http/header"
	"was/internal/http/request"
	"was/internal/http/response"
	"was/internal/http/stream"
	"was/internal/middleware"
	"was/internal/version"
	"was/types"

	"go.uber.org/zap"
)

type httpHandler struct {
	selector     Selector
	builder      Builder
	readTimeout  time.Duration
	writeTimeout time.Duration
	maxBody      int64
	serverName   string
}

func newHTTPHandler(conf config.Config, selector Selector, builder Builder) *httpHandler {
	return &httpHandler{
		selector:     selector,
		builder:      builder,
		readTimeout:  conf.ReadTimeout(),
		writeTimeout: conf.WriteTimeout(),
		maxBody:      conf.MaxBodySize(),
		serverName:   conf.ServerName(),
	}
}

// handler serves exactly one request and closes the connection.
func (hh *httpHandler) handler(conn net.Conn) {
	hw := stream.New(conn, conn, conn.RemoteAddr(), hh.maxBody)
	defer hh.closeConnection(hw)

	if hh.readTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(hh.readTimeout)); err != nil {
			zap.S().Warnf("Failed to set read deadline: %v", err)
			return
		}
	}

	hh.setupMiddlewares(hw)

	req, err := hw.ReadRequest()
	if err != nil {
		hh.handleReadError(conn, hw, err)
		return
	}

	resp := hh.respond(req)
	if !hh.write(conn, hw, resp) {
		return
	}

	zap.L().Debug("Request served",
		zap.String("method", string(req.Method())),
		zap.String("path", req.Path()),
		zap.Int("status", int(resp.Status())),
		zap.Stringer("remote", hw.RemoteAddr()),
		zap.String("forwarded_for", req.Header(string(types.HeaderForwardedFor))),
	)
}

func (hh *httpHandler) closeConnection(hw stream.HTTP) {
	err := hw.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		zap.S().Warnf("Error closing connection: %v", err)
	}
}

func (hh *httpHandler) setupMiddlewares(hw stream.HTTP) {
	hw.UseRequestMiddleware(middleware.NewForwardedFor(hw.RemoteAddr()))
	hw.UseResponseMiddleware(middleware.NewServerFingerprint(hh.serverName, version.GetShortVersion()))
	hw.UseResponseMiddleware(middleware.NewConnectionClose())
}

func (hh *httpHandler) handleReadError(conn net.Conn, hw stream.HTTP, err error) {
	switch {
	case err == io.EOF:
		return
	case errors.Is(err, os.ErrDeadlineExceeded):
		zap.S().Debugf("Read deadline exceeded for %s", hw.RemoteAddr())
	case errors.Is(err, header.ErrTruncatedBody):
		zap.S().Debugf("Aborting connection from %s: %v", hw.RemoteAddr(), err)
	case errors.Is(err, header.ErrMalformedRequest), errors.Is(err, header.ErrBodyTooLarge):
		zap.S().Debugf("Bad request from %s: %v", hw.RemoteAddr(), err)
		hh.write(conn, hw, hh.errorResponse(types.StatusBadRequest))
	default:
		zap.S().Errorf("Failed to read request from %s: %v", hw.RemoteAddr(), err)
		hh.write(conn, hw, hh.errorResponse(types.StatusInternalServerError))
	}
}

func (hh *httpHandler) respond(req request.Request) *response.Response {
	out := hh.dispatch(req)

	resp, err := hh.builder.Build(out)
	if err != nil {
		zap.S().Errorf("Failed to build response for %s %s: %v", req.Method(), req.Path(), err)
		return hh.errorResponse(types.StatusInternalServerError)
	}
	return resp
}

func (hh *httpHandler) dispatch(req request.Request) (out *response.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			zap.S().Errorf("Handler panicked on %s %s: %v", req.Method(), req.Path(), r)
			out = response.Error(types.StatusInternalServerError)
		}
	}()

	out = hh.selector.Select(req).Handle(req)
	if out == nil {
		zap.S().Errorf("Handler returned no outcome for %s %s", req.Method(), req.Path())
		return response.Error(types.StatusInternalServerError)
	}
	return out
}

// errorResponse goes through the builder so configured error pages apply, and
// falls back to a bare status line.
func (hh *httpHandler) errorResponse(status types.StatusCode) *response.Response {
	resp, err := hh.builder.Build(response.Error(status))
	if err != nil {
		zap.S().Errorf("Failed to build %d response: %v", status, err)
		return response.New(status)
	}
	return resp
}

func (hh *httpHandler) write(conn net.Conn, hw stream.HTTP, resp *response.Response) bool {
	if hh.writeTimeout > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(hh.writeTimeout)); err != nil {
			zap.S().Warnf("Failed to set write deadline: %v", err)
			return false
		}
	}

	err := hw.WriteResponse(resp)
	if err == nil {
		return true
	}

	if errors.Is(err, types.ErrUnknownStatus) || errors.Is(err, response.ErrInvalidFraming) {
		zap.S().Errorf("Refusing to write invalid response: %v", err)
		if werr := hw.WriteResponse(response.New(types.StatusInternalServerError)); werr != nil {
			zap.S().Warnf("Failed to write response to %s: %v", hw.RemoteAddr(), werr)
		}
		return false
	}

	zap.S().Warnf("Failed to write response to %s: %v", hw.RemoteAddr(), err)
	return false
}
