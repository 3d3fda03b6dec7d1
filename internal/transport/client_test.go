package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedID() string { return "req-1" }

func TestClient_DoSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get(RequestIDHeader))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"rowCount":2}`)
	}))
	defer srv.Close()

	c := New(WithRequestIDFunc(fixedID), WithHeader("Authorization", "secret"))
	resp, err := c.Do(context.Background(), Request{URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "req-1", resp.RequestID)

	var out struct {
		RowCount int `json:"rowCount"`
	}
	require.NoError(t, resp.DecodeJSON(&out))
	assert.Equal(t, 2, out.RowCount)
}

func TestClient_DoPostsJSONPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "SELECT 1", body["sql"])
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	c := New()
	_, err := c.Do(context.Background(), Request{
		Method:  http.MethodPost,
		URL:     srv.URL,
		Payload: map[string]string{"sql": "SELECT 1"},
	})
	require.NoError(t, err)
}

func TestClient_DoServerException(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"exception":"Query 'Nope' not found","exceptionClass":"NotFoundException"}`)
	}))
	defer srv.Close()

	c := New(WithRequestIDFunc(fixedID))
	_, err := c.Do(context.Background(), Request{URL: srv.URL})
	require.Error(t, err)

	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusBadRequest, re.Status)
	assert.Equal(t, "Query 'Nope' not found", re.Exception)
	assert.Equal(t, "NotFoundException", re.ExceptionClass)
	assert.Equal(t, "req-1", re.RequestID)
	assert.Contains(t, err.Error(), "status 400")
	assert.Equal(t, http.StatusBadRequest, StatusOf(err))
}

func TestClient_DoNonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New().Do(context.Background(), Request{URL: srv.URL})
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, StatusOf(err))

	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Empty(t, re.Exception)
}

func TestClient_DoTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New().Do(context.Background(), Request{URL: url})
	require.Error(t, err)
	assert.Equal(t, 0, StatusOf(err))

	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.NotNil(t, re.Err)
}

func TestWithTimeout_LeavesSharedClientUntouched(t *testing.T) {
	shared := &http.Client{Timeout: time.Minute}

	c := New(WithTimeout(5*time.Second), WithHTTPClient(shared))

	assert.Equal(t, time.Minute, shared.Timeout)
	assert.Equal(t, 5*time.Second, c.httpClient.Timeout)
	assert.NotSame(t, shared, c.httpClient)
}

func TestWithHTTPClient_UsedAsIsWithoutTimeout(t *testing.T) {
	shared := &http.Client{}

	c := New(WithHTTPClient(shared))

	assert.Same(t, shared, c.httpClient)
}

func TestClient_DoCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Do(ctx, Request{URL: srv.URL})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_GoInvokesExactlyOneCallback(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantSuccess int32
		wantFailure int32
	}{
		{"success", http.StatusOK, 1, 0},
		{"failure", http.StatusNotFound, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, `{}`)
			}))
			defer srv.Close()

			var successes, failures atomic.Int32
			done := New().Go(context.Background(), Request{URL: srv.URL}, Callbacks{
				Success: func(*Response) { successes.Add(1) },
				Failure: func(error) { failures.Add(1) },
			})
			<-done

			assert.Equal(t, tt.wantSuccess, successes.Load())
			assert.Equal(t, tt.wantFailure, failures.Load())
		})
	}
}

func TestClient_GoNilCallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	done := New().Go(context.Background(), Request{URL: srv.URL}, Callbacks{})
	<-done
}

func TestMetrics_RecordsRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	c := New(WithMetrics(NewMetrics(reg)))

	_, err := c.Do(context.Background(), Request{URL: srv.URL + "/ok"})
	require.NoError(t, err)
	_, err = c.Do(context.Background(), Request{URL: srv.URL + "/missing"})
	require.Error(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	var observations uint64
	for _, mf := range families {
		switch mf.GetName() {
		case "tabquery_client_requests_total":
			for _, m := range mf.GetMetric() {
				for _, lp := range m.GetLabel() {
					if lp.GetName() == "status" {
						counts[lp.GetValue()] += m.GetCounter().GetValue()
					}
				}
			}
		case "tabquery_client_request_duration_seconds":
			for _, m := range mf.GetMetric() {
				observations += m.GetHistogram().GetSampleCount()
			}
		}
	}

	assert.Equal(t, map[string]float64{"200": 1, "404": 1}, counts)
	assert.Equal(t, uint64(2), observations)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.observe("GET", 200, 0) })
}
