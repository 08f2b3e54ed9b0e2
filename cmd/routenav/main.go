// Command routenav generates a synthetic road network and either prints one
// narrated route or serves the JSON API.
//
// Usage:
//
//	routenav [-config routenav.yaml] [-seed N] -start 0 -end 7 [-algorithm astar]
//	routenav [-config routenav.yaml] -serve [-addr :8080]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/routenav/config"
	"github.com/katalvlaran/routenav/core"
	"github.com/katalvlaran/routenav/navigator"
	"github.com/katalvlaran/routenav/server"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "routenav:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("routenav", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "YAML configuration file")
		addr       = fs.String("addr", "", "HTTP listen address (overrides config)")
		seed       = fs.Int64("seed", 0, "generation seed (overrides config; 0 keeps config)")
		algorithm  = fs.String("algorithm", "", "dijkstra or astar (overrides config)")
		start      = fs.Int("start", -1, "start node id")
		end        = fs.Int("end", -1, "end node id")
		serve      = fs.Bool("serve", false, "serve the HTTP API instead of printing one route")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *seed != 0 {
		cfg.Graph.Seed = *seed
	}
	if *algorithm != "" {
		cfg.Route.Algorithm = *algorithm
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg)
	nav, err := navigator.New(cfg, navigator.WithLogger(logger))
	if err != nil {
		return err
	}

	if *serve {
		return serveHTTP(cfg, nav, logger)
	}
	return printRoute(nav, core.NodeID(*start), core.NodeID(*end), stdout)
}

func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Log.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

// printRoute lists the network, then the narrated route between start and end.
func printRoute(nav *navigator.Navigator, start, end core.NodeID, w io.Writer) error {
	snap, err := nav.Snapshot()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Road network %s: %d nodes, %d roads, %d component(s)\n",
		snap.Generation, snap.Stats.NodeCount, snap.Stats.EdgeCount, snap.Stats.ComponentCount)
	for _, n := range snap.Nodes {
		fmt.Fprintf(w, "  %3d  %-22s (%6.1f, %6.1f)  %.4f, %.4f\n", n.ID, n.Name, n.X, n.Y, n.Lat, n.Lon)
	}

	route, err := nav.FindRoute(context.Background(), navigator.NewRouteRequest(start, end, ""))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s from %d to %d\n", route.AlgorithmName, route.Start, route.End)
	if !route.Found {
		fmt.Fprintln(w, "No route found.")
	} else {
		for i, ins := range route.Instructions {
			fmt.Fprintf(w, "  %2d. %-40s %6.0f\n", i+1, ins.Text, ins.Distance)
		}
	}
	fmt.Fprintf(w, "Distance: %.0f  Nodes visited: %d  Time: %s\n",
		route.TotalDistance, route.NodesVisited, route.Elapsed)

	return nil
}

// serveHTTP runs the API until SIGINT/SIGTERM, then shuts down gracefully.
func serveHTTP(cfg config.Config, nav *navigator.Navigator, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.NewHandler(nav, logger).Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server exited")

	return nil
}
