package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/RyanBlaney/sonido-ir/cmd/irlearn/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := commands.Execute(ctx, commands.NewRootCommand())
	stop()
	os.Exit(code)
}
