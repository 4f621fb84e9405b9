package main

// Must be first import - settles TERM before lipgloss/termenv detect colours
import _ "github.com/wahlandcase/attuned.releaseprs/internal/termfix"

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wahlandcase/attuned.releaseprs/internal/command"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := command.Execute(ctx, version); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
