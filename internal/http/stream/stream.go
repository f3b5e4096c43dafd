package stream

import (
	"bufio"
	"io"
	"net"

	"was/internal/http/request"
	"was/internal/http/response"
	"was/internal/middleware"

	"go.uber.org/zap"
)

const readBufferSize = 8192

// HTTP reads one request off a connection and writes one response back,
// running the registered middlewares on each side.
type HTTP interface {
	ReadRequest() (request.Request, error)
	WriteResponse(resp *response.Response) error
	Close() error
	RemoteAddr() net.Addr
	UseResponseMiddleware(mw middleware.ResponseMiddleware)
	UseRequestMiddleware(mw middleware.RequestMiddleware)
}

type http struct {
	remoteAddr net.Addr
	writer     io.Writer
	reader     *bufio.Reader
	maxBody    int64
	respMW     []middleware.ResponseMiddleware
	reqMW      []middleware.RequestMiddleware
}

func New(writer io.Writer, reader io.Reader, remoteAddr net.Addr, maxBody int64) HTTP {
	return &http{
		remoteAddr: remoteAddr,
		writer:     writer,
		reader:     bufio.NewReaderSize(reader, readBufferSize),
		maxBody:    maxBody,
	}
}

func (hs *http) RemoteAddr() net.Addr {
	return hs.remoteAddr
}

func (hs *http) UseResponseMiddleware(mw middleware.ResponseMiddleware) {
	hs.respMW = append(hs.respMW, mw)
}

func (hs *http) UseRequestMiddleware(mw middleware.RequestMiddleware) {
	hs.reqMW = append(hs.reqMW, mw)
}

func (hs *http) Close() error {
	if closer, ok := hs.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (hs *http) applyRequestMiddlewares(req request.Request) error {
	for _, m := range hs.reqMW {
		if err := m.HandleRequest(req); err != nil {
			zap.S().Warnf("Error when applying request middleware: %v", err)
			return err
		}
	}
	return nil
}

func (hs *http) applyResponseMiddlewares(resp *response.Response) error {
	for _, m := range hs.respMW {
		if err := m.HandleResponse(resp); err != nil {
			zap.S().Warnf("Cannot apply response middleware: %v", err)
			return err
		}
	}
	return nil
}
