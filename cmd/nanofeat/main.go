// cmd/nanofeat/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"nanofeat/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.Main(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
