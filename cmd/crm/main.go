package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/supuni9622/crm-application/internal/cli"
	"github.com/supuni9622/crm-application/internal/config"
	"github.com/supuni9622/crm-application/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	c, err := config.New()
	if err != nil {
		return err
	}

	closer, err := logging.Setup(logging.Options{
		Level: c.GetLogLevel(),
		File:  c.GetLogFile(),
		Env:   c.GetEnv(),
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	return cli.NewRootCommand(c).ExecuteContext(context.Background())
}
