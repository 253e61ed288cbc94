package driver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Responses on the control writer. The host receives exactly one of these
// per request; a failed conversion is acknowledged, never silently
// dropped.
const (
	respOK = "OK"
	respKO = "KO"
)

// ConvertFunc converts one input file into a serialized outline document.
type ConvertFunc func(ctx context.Context, inputPath string) ([]byte, error)

// Session runs the request/response loop for one host connection. It is
// single-threaded: each request is processed fully before the next frame
// is read, and responses are emitted in request order.
type Session struct {
	in      *bufio.Reader
	out     io.Writer
	convert ConvertFunc
	logger  *slog.Logger
}

// NewSession wires a session over the given control channel. A nil logger
// discards.
func NewSession(in io.Reader, out io.Writer, convert ConvertFunc, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		in:      bufio.NewReader(in),
		out:     out,
		convert: convert,
		logger:  logger,
	}
}

// WriteReadyFlag signals the host that the session is initialized by
// creating the agreed flag file.
func WriteReadyFlag(path string) error {
	if err := os.WriteFile(path, []byte("READY\n"), 0o644); err != nil {
		return fmt.Errorf("write ready flag: %w", err)
	}
	return nil
}

// Run processes requests until the end sentinel, EOF, or context
// cancellation. Per-request failures are answered with KO and do not end
// the session; only a broken control channel does.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		req, err := ReadRequest(s.in)
		if errors.Is(err, ErrSessionEnd) || errors.Is(err, io.EOF) {
			s.logger.Info("session ended")
			return nil
		}
		if errors.Is(err, ErrMalformedRequest) {
			// The frame was consumed in full, so the stream is still
			// aligned. Acknowledge the failure and keep serving.
			s.logger.Error("rejected request", "error", err)
			fmt.Fprintln(s.out, respKO)
			continue
		}
		if err != nil {
			return fmt.Errorf("read request: %w", err)
		}

		s.handle(ctx, req)
	}
}

// handle converts one request and acknowledges it. The input and output
// files are only held open for the duration of this call, success or not.
func (s *Session) handle(ctx context.Context, req Request) {
	logger := s.logger.With(
		"request", uuid.NewString(),
		"input", req.InputPath,
		"output", req.OutputPath,
	)

	doc, err := s.convert(ctx, req.InputPath)
	if err == nil {
		err = os.WriteFile(req.OutputPath, doc, 0o644)
	}
	if err != nil {
		logger.Error("conversion failed", "error", err)
		fmt.Fprintln(s.out, respKO)
		return
	}

	logger.Debug("conversion complete", "bytes", len(doc))
	fmt.Fprintln(s.out, respOK)
}
