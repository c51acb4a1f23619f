// Package server implements the MessagePack IPC interface to the spell
// checker. Requests come in on stdin, responses go out on stdout, one
// msgpack value each.
package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/spellserve/spellserve/pkg/config"
	"github.com/spellserve/spellserve/pkg/spell"
)

// Request represents an incoming request from the client
type Request struct {
	ID    string `msgpack:"id"`
	Op    string `msgpack:"op"`
	Text  string `msgpack:"t"`
	Limit int    `msgpack:"l,omitempty"`
}

// CheckResponse answers a "check" request.
type CheckResponse struct {
	ID     string `msgpack:"id"`
	Exists bool   `msgpack:"e"`
}

// SuggestResponse answers a "suggest" request with ranked suggestions.
type SuggestResponse struct {
	ID          string   `msgpack:"id"`
	Suggestions []string `msgpack:"s"`
	Count       int      `msgpack:"c"`
	TimeTaken   int64    `msgpack:"us"`
}

// AnalyzeResponse answers an "analyze" request: unrecognized token to
// ranked suggestions.
type AnalyzeResponse struct {
	ID        string              `msgpack:"id"`
	Report    map[string][]string `msgpack:"r"`
	Count     int                 `msgpack:"c"`
	TimeTaken int64               `msgpack:"us"`
}

// StatusResponse reports server state ("ready", "ok").
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse represents a request-level error
type ErrorResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Error  string `msgpack:"error"`
	Status int    `msgpack:"code"`
}

// Server handles the IPC for spell checking
type Server struct {
	checker *spell.Checker
	cfg     *config.Config
	dec     *msgpack.Decoder
	enc     *msgpack.Encoder
}

// NewServer creates a spell checking server using stdin/stdout for IPC
func NewServer(checker *spell.Checker, cfg *config.Config) *Server {
	return NewServerWithIO(checker, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over explicit streams.
func NewServerWithIO(checker *spell.Checker, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		checker: checker,
		cfg:     cfg,
		dec:     msgpack.NewDecoder(r),
		enc:     msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. Returns nil on EOF.
func (s *Server) Start() error {
	log.Debug("Starting server.")

	// Signal that the server is ready
	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches an incoming request by op
func (s *Server) handleRequest(request Request) {
	switch request.Op {
	case "check":
		s.handleCheck(request)
	case "suggest":
		s.handleSuggest(request)
	case "analyze":
		s.handleAnalyze(request)
	case "health":
		s.sendResponse(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown op: %s", request.Op), 400)
	}
}

func (s *Server) sendResponse(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{
		ID:     id,
		Error:  message,
		Status: code,
	})
}

// validateText applies the shared request text limits.
func (s *Server) validateText(request Request) bool {
	if request.Text == "" {
		s.sendError(request.ID, "Missing 't' parameter", 400)
		log.Debug("Text is empty in request")
		return false
	}
	if len(request.Text) > s.cfg.Server.MaxTextLen {
		s.sendError(request.ID, fmt.Sprintf("Text exceeds maximum length of %d", s.cfg.Server.MaxTextLen), 400)
		log.Debug("Text is too long in request")
		return false
	}
	return true
}

// clampLimit resolves a request limit against configured bounds.
func (s *Server) clampLimit(limit int) int {
	if limit < 1 {
		limit = s.cfg.CLI.DefaultLimit
	}
	if limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}
	return limit
}

func (s *Server) handleCheck(request Request) {
	if !s.validateText(request) {
		return
	}
	s.sendResponse(CheckResponse{
		ID:     request.ID,
		Exists: s.checker.Exists(request.Text),
	})
}

func (s *Server) handleSuggest(request Request) {
	if !s.validateText(request) {
		return
	}
	limit := s.clampLimit(request.Limit)

	start := time.Now()
	suggestions := s.checker.Suggest(request.Text)
	elapsed := time.Since(start)

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	s.sendResponse(SuggestResponse{
		ID:          request.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleAnalyze(request Request) {
	if !s.validateText(request) {
		return
	}
	limit := s.clampLimit(request.Limit)

	start := time.Now()
	report := s.checker.Analyze(request.Text)
	elapsed := time.Since(start)

	for token, suggestions := range report {
		if len(suggestions) > limit {
			report[token] = suggestions[:limit]
		}
	}

	s.sendResponse(AnalyzeResponse{
		ID:        request.ID,
		Report:    report,
		Count:     len(report),
		TimeTaken: elapsed.Microseconds(),
	})
}
