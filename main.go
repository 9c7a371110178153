package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var sigint chan os.Signal

func waitShutdown(e *echo.Echo, idleConnsClosed chan<- interface{}) {
	defer close(idleConnsClosed)

	sigint = make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	defer signal.Stop(sigint)

	<-sigint
	log.Info("received shutdown signal")

	logError("HTTP server shutdown:", e.Shutdown(context.Background()))
}

func listenAndServe(addr string, games store, idleConnsClosed chan<- interface{}) {
	e := apiHandler(games)
	go waitShutdown(e, idleConnsClosed)

	e.Use(middleware.Logger())

	logError("HTTP server end:", e.Start(addr))
}

// Open serves the API on addr until interrupted.
func Open(addr string, games store) {
	idleConnsClosed := make(chan interface{})
	go listenAndServe(addr, games, idleConnsClosed)
	<-idleConnsClosed
}

func idle(games store) {
	logError("agent idle complete:", agentIdle(games))
	time.Sleep(agentIdleDelay)
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	memory := flag.Bool("memory", false, "keep games in memory instead of postgres")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error, fatal)")
	flag.Parse()

	lvl, err := log.ParseLevel(*level)
	if err != nil {
		log.WithError(err).Fatal("bad log level")
	}
	log.SetLevel(lvl)

	games, err := openStore(*memory)
	if err != nil {
		os.Exit(1)
	}
	defer func() {
		logError("close server:", games.close())
	}()
	go func() {
		for {
			idle(games)
		}
	}()
	Open(*addr, games)
}
