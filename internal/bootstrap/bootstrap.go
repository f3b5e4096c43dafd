package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"was/internal/config"
	"was/internal/controller"
	"was/internal/http/response"
	"was/internal/router"
	"was/internal/session"
	"was/internal/transport"
	"was/internal/user"
	"was/internal/view"

	"go.uber.org/zap"
)

type Bootstrap struct {
	Config     config.Config
	Sessions   session.Store
	Users      user.Store
	Router     *router.Router
	Builder    *response.Builder
	ErrChan    chan error
	SignalChan chan os.Signal
}

// New wires the stores, views and routes. resources must contain the
// templates/ and static/ trees.
func New(config config.Config, resources fs.FS) (*Bootstrap, error) {
	sessions := session.NewStore()
	users := user.NewStore(config.BcryptCost())

	if path := config.UsersFile(); path != "" {
		n, err := user.LoadSeedFile(users, path)
		if err != nil {
			return nil, fmt.Errorf("load users: %w", err)
		}
		zap.S().Infof("Loaded %d users from %s", n, path)
	}

	views, err := view.New(resources)
	if err != nil {
		return nil, fmt.Errorf("load views: %w", err)
	}

	r, err := newRouter(users, sessions)
	if err != nil {
		return nil, err
	}

	errChan := make(chan error, 5)
	signalChan := make(chan os.Signal, 1)

	return &Bootstrap{
		Config:     config,
		Sessions:   sessions,
		Users:      users,
		Router:     r,
		Builder:    response.NewBuilder(views, nil),
		ErrChan:    errChan,
		SignalChan: signalChan,
	}, nil
}

func newRouter(users user.Store, sessions session.Store) (*router.Router, error) {
	return router.New(controller.NewResource(), controller.NewNotFound(),
		router.Route{Prefix: "/user/create", Handler: controller.NewUserCreate(users)},
		router.Route{Prefix: "/user/login", Handler: controller.NewUserLogin(users, sessions)},
		router.Route{Prefix: "/user/logout", Handler: controller.NewUserLogout(sessions)},
		router.Route{Prefix: "/user/list", Handler: controller.NewUserList(users, sessions)},
		router.Route{Prefix: "/user/profile", Handler: controller.NewUserProfile(users, sessions)},
	)
}

func startHTTPServer(ctx context.Context, srv transport.Transport, errChan chan<- error) {
	ln, err := srv.Listen()
	if err != nil {
		errChan <- fmt.Errorf("failed to start http server: %w", err)
		return
	}

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	if err = srv.Serve(ln); err != nil && !errors.Is(err, net.ErrClosed) {
		errChan <- fmt.Errorf("error when serving http server: %w", err)
	}
}

func startPprof(pprofPort string, errChan chan<- error) {
	pprofAddr := fmt.Sprintf("localhost:%s", pprofPort)
	zap.S().Infof("Starting pprof server on http://%s/debug/pprof/", pprofAddr)
	if err := http.ListenAndServe(pprofAddr, nil); err != nil {
		errChan <- fmt.Errorf("pprof server error: %v", err)
	}
}

func (b *Bootstrap) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(b.SignalChan)

	go startHTTPServer(ctx, transport.NewHTTPServer(b.Config, b.Router, b.Builder), b.ErrChan)

	if b.Config.PprofEnabled() {
		go startPprof(b.Config.PprofPort(), b.ErrChan)
	}

	zap.S().Info("All services started successfully")

	select {
	case err := <-b.ErrChan:
		return fmt.Errorf("service error: %w", err)
	case sig := <-b.SignalChan:
		zap.S().Infof("Received signal %s, initiating graceful shutdown", sig)
		return nil
	}
}
