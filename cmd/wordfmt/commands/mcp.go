package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/wordfmt/internal/cliutil"
	"github.com/erraggy/wordfmt/internal/mcpserver"
)

// MCPFlags contains flags for the mcp command
type MCPFlags struct {
	Debug bool
}

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() (*flag.FlagSet, *MCPFlags) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	flags := &MCPFlags{}

	fs.BoolVar(&flags.Debug, "debug", false, "log debug messages to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: wordfmt mcp [flags]\n\n")
		cliutil.Writef(fs.Output(), "Run an MCP (Model Context Protocol) server over stdio exposing the\n")
		cliutil.Writef(fs.Output(), "convert, convert_batch and list_formats tools.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nEnvironment:\n")
		cliutil.Writef(fs.Output(), "  WORDFMT_DEFAULT_SOURCE   source format when a call omits \"from\" (default UPPER_UNDERSCORE)\n")
		cliutil.Writef(fs.Output(), "  WORDFMT_OVERRIDES_FILE   override table consulted by every conversion\n")
		cliutil.Writef(fs.Output(), "  WORDFMT_MAX_BATCH        maximum texts per convert_batch call (default 1000)\n")
		cliutil.Writef(fs.Output(), "  WORDFMT_MAX_INPUT_SIZE   maximum bytes per text (default 65536)\n")
	}

	return fs, flags
}

// HandleMCP executes the mcp command. It blocks until the client disconnects
// or the process receives an interrupt.
func HandleMCP(args []string) error {
	fs, flags := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	level := slog.LevelInfo
	if flags.Debug {
		level = slog.LevelDebug
	}
	// stdout carries the protocol, so logs go to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
