package main

import (
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ssoma/internal/logging"
	"ssoma/internal/stub"
)

func main() {
	addr := flag.String("addr", ":8083", "listen address")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	log, err := logging.New(os.Stderr, *level)
	if err != nil {
		slog.Error("invalid flags", "error", err)
		os.Exit(2)
	}

	server := http.Server{Addr: *addr, Handler: stub.New(log).Routes()}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	log.Info("stub listening", "addr", *addr, "base", stub.BasePath)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server closed", "error", err)
		os.Exit(1)
	}
}
