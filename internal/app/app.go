// Package app wires configuration, storage, the report service and both
// transports into a runnable server.
package app

import (
	"context"
	"errors"
	"net"
	"net/http"

	"go.uber.org/zap"

	"shotdiff/internal/config"
	"shotdiff/internal/httpapi"
	"shotdiff/internal/rpc"
	"shotdiff/internal/server"
	"shotdiff/internal/service"
	"shotdiff/internal/watch"
)

type App struct {
	log     *zap.Logger
	server  *server.Server
	handler http.Handler
	broker  *watch.Broker
	close   closer
}

func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	st, closeStore, err := initStore(cfg, log)
	if err != nil {
		return nil, err
	}

	broker := watch.NewBroker(0)
	svc := service.New(st, broker, log.Named("service"))

	rpcPath, rpcHandler := rpc.NewReportServiceHandler(rpc.NewReportHandler(svc, log.Named("rpc")))
	api := httpapi.New(svc, log.Named("http"))
	handler := httpapi.NewRouter(api, rpcPath, rpcHandler)

	return &App{
		log:     log,
		server:  server.New(cfg.Port, handler, log),
		handler: handler,
		broker:  broker,
		close:   closeStore,
	}, nil
}

// Handler exposes the routed handler without the listener.
func (a *App) Handler() http.Handler {
	return a.handler
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Serve(ln net.Listener) error {
	return a.server.Serve(ln)
}

// Shutdown stops accepting requests, ends watch streams and releases the
// store.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	a.broker.Close()
	if a.close != nil {
		err = errors.Join(err, a.close())
	}
	return err
}
