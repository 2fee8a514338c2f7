// Package app wires the prettylog pipeline: read a line from stdin, parse,
// classify, render, write to stdout, repeat. One line at a time, no state
// carried between lines.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"prettylog/internal/config"
	"prettylog/internal/logging"
	"prettylog/internal/record"
	"prettylog/internal/render"
	"prettylog/internal/style"
)

const (
	outBufSize = 32 * 1024
	// Initial read buffer. The reader grows it as needed, so an arbitrarily
	// long line slows the stream down but never aborts it.
	lineBufSize = 64 * 1024
)

// Options configure one prettylog run.
type Options struct {
	ConfigPath string
	Flags      config.Flags
}

// Run processes stdin until end of input or context cancellation.
// Configuration errors and I/O errors are fatal; malformed input lines
// never are.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath, opts.Flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New()
	defer func() { _ = logger.Sync() }()

	renderer := render.New(render.Options{
		Lists:           cfg.Lists,
		TimestampFormat: cfg.TimestampFormat,
	})
	policy := style.NewPolicy(cfg.Color)

	out := bufio.NewWriterSize(os.Stdout, outBufSize)
	return transform(ctx, os.Stdin, out, renderer, policy, logger)
}

// transform runs the pipeline over in. Each line is fully rendered and
// flushed before the next one is read, so a downstream consumer sees whole
// lines even if the process dies mid-stream.
func transform(ctx context.Context, in io.Reader, out *bufio.Writer, renderer *render.Renderer, policy *style.Policy, logger *zap.Logger) error {
	reader := bufio.NewReaderSize(in, lineBufSize)

	for {
		if ctx.Err() != nil {
			return out.Flush()
		}

		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("read input: %w", err)
		}
		atEOF := err == io.EOF
		if atEOF && line == "" {
			return out.Flush()
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		rec := record.Parse(line)
		if rec.Kind == record.LineMalformed && strings.TrimSpace(line) != "" {
			logger.Debug("line is not valid JSON, passing through", zap.String("line", line))
		}

		if _, err := out.WriteString(policy.Sprint(renderer.Render(rec))); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if err := out.WriteByte('\n'); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if err := out.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
		if atEOF {
			return out.Flush()
		}
	}
}
