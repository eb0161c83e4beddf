package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/foldkit/foldkit/internal/cli"
	"github.com/foldkit/foldkit/logs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	command := &cli.Command{
		Out: os.Stdout,
		NewLoggers: func(verbose bool) (logs.Loggers, error) {
			return logs.NewCLIZapLogger("foldkit", verbose)
		},
	}
	err := command.Run(ctx, os.Args[1:])
	stop()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, cli.Usage())
		os.Exit(1)
	}
}
