// Package transport sends requests to the tabular-data server over HTTP.
//
// Client.Do performs one request and returns the response body, or a
// *RequestError carrying the HTTP status and the server's exception message.
// Client.Go runs the same request on its own goroutine and invokes exactly
// one of the Success or Failure callbacks.
//
// Every request is tagged with an X-Request-Id header so log lines on both
// sides can be correlated. Metrics are optional; see NewMetrics.
package transport
