package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/yieldx-network/yieldx-deploy/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, cli.NewRootCmd(), os.Stderr)
	stop()
	os.Exit(code)
}
