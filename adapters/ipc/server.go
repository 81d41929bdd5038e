/*
Package ipc serves translations over a pair of streams with msgpack framing, so
an editor or another host program can keep one process running.

Requests and responses are msgpack maps:

	{"id": "r1", "cmd": "translate", "text": "There are no similar trends."}
	{"id": "r1", "output": "There exist negative isomorphic trendlines. 🤓", "t": 87}

	{"id": "r2", "cmd": "lookup", "prefix": "tre", "limit": 5}
	{"id": "r2", "patterns": [{"source": "trends", "replacement": "trendlines", "affixes": ["s"]}], "t": 12}

Timings are in microseconds. A "ready" status is sent before the first request
is read, and the loop ends when the input is closed.
*/
package ipc

import (
	"context"
	"errors"
	"fmt"
	"github.com/charmbracelet/log"
	"github.com/gissleh/nerdify"
	"github.com/gissleh/nerdify/service"
	"github.com/vmihailenco/msgpack/v5"
	"io"
	"time"
)

type Request struct {
	ID     string `msgpack:"id"`
	Cmd    string `msgpack:"cmd"`
	Text   string `msgpack:"text,omitempty"`
	Prefix string `msgpack:"prefix,omitempty"`
	Limit  int    `msgpack:"limit,omitempty"`
}

type Response struct {
	ID        string         `msgpack:"id"`
	Status    string         `msgpack:"status,omitempty"`
	Output    string         `msgpack:"output,omitempty"`
	Patterns  []PatternEntry `msgpack:"patterns,omitempty"`
	Error     string         `msgpack:"error,omitempty"`
	TimeTaken int64          `msgpack:"t,omitempty"`
}

type PatternEntry struct {
	Source      string   `msgpack:"source"`
	Replacement string   `msgpack:"replacement"`
	Affixes     []string `msgpack:"affixes"`
}

type Server struct {
	svc    *service.Service
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
	logger *log.Logger
}

func NewServer(svc *service.Service, r io.Reader, w io.Writer, logger *log.Logger) *Server {
	return &Server{
		svc:    svc,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
		logger: logger,
	}
}

// Serve handles requests until the input ends or ctx is canceled. Malformed
// frames end the loop, since the stream can't be resynchronized.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Debug("Starting IPC server")

	if err := s.enc.Encode(Response{Status: "ready"}); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("IPC input closed")
				return nil
			}

			s.logger.Error("Decoding request", "err", err)
			return err
		}

		if err := s.enc.Encode(s.handle(ctx, request)); err != nil {
			return err
		}
	}
}

func (s *Server) handle(ctx context.Context, request Request) Response {
	start := time.Now()
	res := Response{ID: request.ID}

	switch request.Cmd {
	case "translate":
		if request.Text == "" {
			res.Error = nerdify.ErrEmptyText.Error()
			break
		}

		translation, err := s.svc.Translate(ctx, request.Text)
		if err != nil {
			res.Error = err.Error()
			break
		}

		res.Output = translation.Output
	case "lookup":
		if request.Prefix == "" {
			res.Error = "missing prefix"
			break
		}

		patterns, err := s.svc.Lookup(ctx, request.Prefix, request.Limit)
		if err != nil {
			res.Error = err.Error()
			break
		}

		res.Patterns = patternEntries(patterns)
	case "health":
		res.Status = "ok"
	default:
		res.Error = fmt.Sprintf("unknown command: %s", request.Cmd)
	}

	res.TimeTaken = time.Since(start).Microseconds()
	return res
}

func patternEntries(patterns []nerdify.Pattern) []PatternEntry {
	res := make([]PatternEntry, 0, len(patterns))
	for _, pattern := range patterns {
		res = append(res, PatternEntry{
			Source:      pattern.Source.Form(),
			Replacement: pattern.Replacement.Form(),
			Affixes:     pattern.Source.AffixNames(),
		})
	}

	return res
}
