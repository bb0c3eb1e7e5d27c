package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmorgan81/imageupload/internal/config"
	"github.com/dmorgan81/imageupload/internal/handler"
	"github.com/dmorgan81/imageupload/internal/inject"
	"github.com/dmorgan81/imageupload/internal/log"
	"github.com/samber/do"
)

const usage = "usage: imageupload <file> <token> <parentId>"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run returns the process exit code: 0 on success, 1 when the upload fails
// and 2 on bad usage.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 3 {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.New(stderr, "error").Error("loading config", "error", err)
		return 1
	}

	logger := log.New(stderr, cfg.LogLevel)
	ctx = log.NewContext(ctx, logger)
	injector := inject.Setup(ctx, cfg)
	defer func() {
		_ = injector.Shutdown()
	}()

	h, err := do.Invoke[*handler.Handler](injector)
	if err != nil {
		logger.Error("setting up", "error", err)
		return 1
	}

	out, err := h.Handle(ctx, handler.Input{Path: args[0], Token: args[1], ParentID: args[2]})
	if err != nil {
		logger.Error("upload failed", "error", err)
		return 1
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, out.Response); err != nil {
		logger.Error("formatting response", "error", err)
		return 1
	}
	buf.WriteByte('\n')
	if _, err := buf.WriteTo(stdout); err != nil {
		logger.Error("writing response", "error", err)
		return 1
	}
	return 0
}
