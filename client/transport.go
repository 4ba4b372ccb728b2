package client

import (
	"io"
	"net/http"
	"time"
)

// Doer is the transport contract consumed by the client: execute one HTTP
// request and return the response, following redirects transparently so that
// the final destination's response is the one returned. *http.Client
// satisfies this, including resolution of relative redirect targets against
// the original host. Network-level failures are surfaced by the client as
// *TransportError.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

const defaultTimeout = 30 * time.Second

func defaultHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultTimeout}
}

// response is the transport adapter output the parser operates on: the body
// is fully read so each call owns its response data exclusively.
type response struct {
	statusCode  int
	contentType string
	body        []byte
}

func readResponse(resp *http.Response) (*response, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	return &response{
		statusCode:  resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		body:        body,
	}, nil
}
