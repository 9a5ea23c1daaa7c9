package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/nextsteps/nextsteps-cli/api"
	"github.com/nextsteps/nextsteps-cli/internal/config"
	"github.com/nextsteps/nextsteps-cli/sessions"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error running client: %s\n", err)
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	_ = godotenv.Load()
	c := config.New()
	logger := newLogger(c)
	displayAppname(c.GetAppName())

	client := api.NewClient(
		c.GetAPIBaseURL(),
		api.WithHTTPClient(&http.Client{Timeout: c.GetHTTPTimeout()}),
		api.WithLogger(logger),
	)
	store := sessions.NewFileStore(c.GetDataFolder(), logger)

	application, err := newApp(client, store, logger)
	if err != nil {
		return err
	}
	return application.run(context.Background())
}

func newLogger(c config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
