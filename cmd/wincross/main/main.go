package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/wincross/wincross/cmd/wincross"
	"github.com/wincross/wincross/pkg/errors"
	"github.com/wincross/wincross/pkg/style"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := wincross.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		style.PrintError(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
