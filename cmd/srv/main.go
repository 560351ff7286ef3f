// srv serves a directory, or a piece of text, over HTTP.
//
// Usage:
//
//	srv [flags] [dir]
//
// Flags:
//
//	-p, --port PORT    Port to listen on (default 8000, or $SRV_PORT)
//	-r, --raw[=TEXT]   Serve TEXT for every request instead of a directory;
//	                   without a value the text is read from standard input
//	                   (or taken from the positional argument)
//	    --debug        Enable debug logging to stderr (or $SRV_DEBUG)
//	    --version      Show version and exit
//
// A .env file in the working directory is loaded before flags are parsed.
//
// Example:
//
//	srv ~/Videos -p 9000
//	echo hello | srv -r
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jackfish212/srv"
	"github.com/jackfish212/srv/resource"
)

const (
	defaultPort = 8000

	// rawFromInput is what --raw holds when given without a value.
	rawFromInput = "\x00stdin"
)

type serveCommand struct {
	port        int
	raw         string
	debug       bool
	showVersion bool

	stdin  io.Reader
	stdout io.Writer
}

func newServeCommand(stdin io.Reader, stdout io.Writer) *serveCommand {
	return &serveCommand{stdin: stdin, stdout: stdout}
}

func (c *serveCommand) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "srv [dir]",
		Short:         "Serve a directory or a piece of text over HTTP",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.run,
	}

	flags := cmd.Flags()
	flags.IntVarP(&c.port, "port", "p", envInt("SRV_PORT", defaultPort), "the port to listen on")
	flags.StringVarP(&c.raw, "raw", "r", "", "serve this text instead of a directory (read from stdin when empty)")
	flags.Lookup("raw").NoOptDefVal = rawFromInput
	flags.BoolVar(&c.debug, "debug", envBool("SRV_DEBUG"), "enable debug logging")
	flags.BoolVar(&c.showVersion, "version", false, "show version and exit")

	cmd.SetIn(c.stdin)
	cmd.SetOut(c.stdout)
	return cmd
}

// mode turns the parsed flags and arguments into a server mode.
func (c *serveCommand) mode(cmd *cobra.Command, args []string) (srv.Mode, error) {
	if !cmd.Flags().Changed("raw") {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		return srv.DirMode{Root: dir}, nil
	}

	if c.raw != rawFromInput {
		return srv.RawMode{Text: c.raw}, nil
	}
	if len(args) > 0 {
		return srv.RawMode{Text: args[0]}, nil
	}
	text, err := resource.ReadPayload(c.stdin)
	if err != nil {
		return nil, err
	}
	return srv.RawMode{Text: text}, nil
}

func (c *serveCommand) run(cmd *cobra.Command, args []string) error {
	if c.showVersion {
		fmt.Fprintln(c.stdout, srv.GetVersionInfo())
		return nil
	}

	level := slog.LevelInfo
	if c.debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	mode, err := c.mode(cmd, args)
	if err != nil {
		return err
	}
	s, err := srv.New(mode)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	addr := fmt.Sprintf(":%d", c.port)
	ip, err := srv.ResolveIP(ctx)
	if err != nil {
		slog.Warn("could not resolve host address", "error", err)
		ip = "0.0.0.0"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	slog.Debug("listening", "addr", ln.Addr().String())

	color.New(color.FgGreen, color.Bold).Fprintln(c.stdout, srv.StatusLine(mode, ip, c.port))
	return s.Serve(ctx, ln)
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring invalid environment value", "key", key, "value", v)
		return def
	}
	return n
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}
	gin.SetMode(gin.ReleaseMode)

	cmd := newServeCommand(os.Stdin, os.Stdout).command()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("srv failed", "error", err)
		os.Exit(1)
	}
}
