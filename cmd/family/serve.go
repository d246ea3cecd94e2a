package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sufield/family/internal/adapters/inbound/httpapi"
)

func serveCommand(c *Command, out io.Writer) func(args []string) error {
	return func(args []string) error {
		fs := c.NewFlagSet(out)
		configPath := fs.String("config", "", "Path to config file (default $FAMILY_CONFIG, then built-in defaults)")
		addr := fs.String("addr", "", "Listen address (overrides server.listen_addr)")

		if ok, err := parseFlags(fs, args); !ok {
			return err
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			return err
		}
		if *addr != "" {
			cfg.Server.ListenAddr = *addr
		}

		application, err := bootstrap(cfg)
		if err != nil {
			return err
		}
		defer application.Close()

		validated := application.Config()
		server, err := httpapi.NewServer(httpapi.ServerConfig{
			Address:           validated.ListenAddr,
			ReadHeaderTimeout: validated.ReadHeaderTimeout,
			ShutdownTimeout:   validated.ShutdownTimeout,
		}, application.Service(), application.Provider(), application.Logger())
		if err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Serve(ctx)
	}
}
