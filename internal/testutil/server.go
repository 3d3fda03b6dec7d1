// Package testutil provides test doubles for the tabular-data server.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// RecordedRequest is what the fake server saw for one request.
type RecordedRequest struct {
	Method    string
	Path      string
	Action    string // last path segment, e.g. "selectRows.api"
	Query     map[string][]string
	Body      map[string]any
	RequestID string
}

// Reply is a canned answer for one action.
type Reply struct {
	Status int    // defaults to 200
	Body   string // raw JSON
}

// Server is a fake tabular-data server. Replies are keyed by action; an
// action without a reply gets 404 with an exception body.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	replies  map[string]Reply
	requests []RecordedRequest
}

// NewServer starts a fake server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{replies: make(map[string]Reply)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Reply sets the answer for action.
func (s *Server) Reply(action string, status int, body string) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[action] = Reply{Status: status, Body: body}
	return s
}

// Requests returns a copy of the requests received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// Last returns the most recent request. It fails the test when there is none.
func (s *Server) Last(t testing.TB) RecordedRequest {
	t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatal("no requests received")
	}
	return reqs[len(reqs)-1]
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	rec := RecordedRequest{
		Method:    r.Method,
		Path:      r.URL.Path,
		Action:    r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:],
		Query:     r.URL.Query(),
		RequestID: r.Header.Get("X-Request-Id"),
	}
	if data, err := io.ReadAll(r.Body); err == nil && len(data) > 0 {
		_ = json.Unmarshal(data, &rec.Body)
	}

	s.mu.Lock()
	s.requests = append(s.requests, rec)
	reply, ok := s.replies[rec.Action]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"exception":      "No action '" + rec.Action + "' on this server",
			"exceptionClass": "NotFoundException",
		})
		return
	}
	if reply.Status != 0 {
		w.WriteHeader(reply.Status)
	}
	_, _ = io.WriteString(w, reply.Body)
}
