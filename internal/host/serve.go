package host

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// maxLineSize is the buffer size for request lines (1 MB).
const maxLineSize = 1 << 20

// Serve reads one JSON request per line from r and writes one JSON response
// per line to w. It returns nil on EOF and ctx.Err() on cancellation.
func (h *Handler) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	lines := make(chan []byte)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), maxLineSize)
		for scanner.Scan() {
			line := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	enc := json.NewEncoder(w)
	served := 0

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("host stopped", "served", served, "reason", ctx.Err())
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				h.logger.Info("host finished", "served", served)
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("reading requests: %w", err)
					}
				default:
				}
				return nil
			}
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}

			var resp Response
			var req Request
			if err := json.Unmarshal(line, &req); err != nil {
				h.logger.Warn("invalid request", "error", err)
				resp = Response{Error: &ErrorPayload{
					Kind:    KindInvalidRequest,
					Message: fmt.Sprintf("decoding request: %v", err),
				}}
			} else {
				resp = h.Handle(req)
			}

			if err := enc.Encode(resp); err != nil {
				return fmt.Errorf("writing response: %w", err)
			}
			served++
		}
	}
}
