package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/emberd/pkg/emberd/server"
)

// Version is overridden at build time.
var Version = "dev"

func main() {
	port := flag.Int("port", 8080, "TCP port to accept HTTP/1.1 connections on")
	threads := flag.Int("threads", 4, "worker pool goroutine count")
	metricsPort := flag.Int("metrics-port", 9090, "TCP port serving /metrics (0 disables it)")
	verbose := flag.Bool("verbose", false, "enable debug-level logging")
	showVer := flag.Bool("version", false, "print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "emberd %s\n\nUsage: %s [options]\n\nOptions:\n", Version, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVer {
		fmt.Printf("emberd %s\n", Version)
		os.Exit(0)
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Logger.Level(level).With().Str("version", Version).Logger()

	if *metricsPort > 0 {
		go serveMetrics(*metricsPort)
	}

	srv := server.New(server.Config{NumThreads: *threads})
	registerDemoHandlers(srv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info().Msg("emberd: shutdown signal received")
	}()

	if err := srv.Start(*port); err != nil {
		log.Fatal().Err(err).Msg("emberd: fatal")
	}
}

func serveMetrics(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf(":%d", port)
	log.Info().Int("port", port).Msg("emberd: serving /metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error().Err(err).Msg("emberd: metrics server failed")
	}
}

// registerDemoHandlers wires a couple of minimal routes so a freshly
// started binary is immediately useful for smoke-testing, matching
// spec.md §8's worked scenarios.
func registerDemoHandlers(srv *server.Server) {
	srv.AttachHandler("/ping", func(ctx *server.Context) int {
		return ctx.Text(200, "pong")
	})

	srv.AttachHandler("/echo", func(ctx *server.Context) int {
		ctx.AddHeaderString("Content-Type", "text/plain")
		ctx.SetContent(ctx.Request.Body)
		return 200
	})
}
