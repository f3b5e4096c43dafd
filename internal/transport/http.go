package transport

import (
	"errors"
	"net"

	"was/internal/config"

	"go.uber.org/zap"
)

type httpServer struct {
	handler *httpHandler
	addr    string
}

func NewHTTPServer(conf config.Config, selector Selector, builder Builder) Transport {
	return &httpServer{
		handler: newHTTPHandler(conf, selector, builder),
		addr:    net.JoinHostPort(conf.Host(), conf.HTTPPort()),
	}
}

func (ht *httpServer) Listen() (net.Listener, error) {
	return net.Listen("tcp", ht.addr)
}

func (ht *httpServer) Serve(listener net.Listener) error {
	zap.S().Infof("HTTP server is listening on %s", listener.Addr())
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			zap.S().Warnf("Error accepting connection: %v", err)
			continue
		}

		go ht.handler.handler(conn)
	}
}
