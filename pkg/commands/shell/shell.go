// Package shell implements `wincross shell`.
package shell

import (
	"context"

	"github.com/wincross/wincross/pkg/commands/internal"
	"github.com/wincross/wincross/pkg/container"
)

// ShellOptions defines the options for the Shell command.
type ShellOptions struct {
	internal.Invocation
}

// Shell opens an interactive shell in the container with the winexe
// wrappers in place.
func Shell(ctx context.Context, opts ShellOptions) error {
	eff, ctr, err := opts.Start()
	if err != nil {
		return err
	}
	if err := ctr.Prepare(ctx, eff, internal.Steps{WinexeOnly: true}); err != nil {
		return err
	}
	return ctr.Run(ctx, eff, container.ShellCommand, true)
}
