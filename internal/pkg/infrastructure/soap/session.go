package soap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	sderrors "github.com/magenta-aps/sd-connector/pkg/sd/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Credentials identify one remote account. They key the shared session
// cache, so two clients constructed with the same pair reuse one session.
type Credentials struct {
	Username string
	Password string
}

// callTimeout applies uniformly to every request made through a session,
// descriptor fetches and operation calls alike. Exceeding it surfaces as a
// retryable call failure.
const callTimeout = 60 * time.Second

// Session is an authenticated HTTP session against the remote service.
// Basic auth is applied identically to every request.
type Session struct {
	httpClient *http.Client

	// set by the cache for shared sessions, nil for dedicated ones
	release func() error
}

func NewSession(creds Credentials) *Session {
	return &Session{
		httpClient: &http.Client{
			Timeout: callTimeout,
			Transport: otelhttp.NewTransport(&authTransport{
				base:  http.DefaultTransport,
				creds: creds,
			}),
		},
	}
}

// Fetch retrieves an auxiliary document (a service descriptor) with the
// session's credentials.
func (s *Session) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %s (%w)", err.Error(), sderrors.ErrRequest)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %s (%w)", err.Error(), sderrors.ErrRequest)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %s (%w)", err.Error(), sderrors.ErrBadResponse)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response code %d from %s (%w)", resp.StatusCode, url, sderrors.ErrBadResponse)
	}

	return body, nil
}

// Call posts a request envelope to a bound operation's endpoint and returns
// the raw response envelope. Faults returned with an error status are
// decoded here so the caller sees them as fault errors rather than opaque
// status codes.
func (s *Session) Call(ctx context.Context, op BoundOperation, requestEnvelope []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, op.Endpoint, bytes.NewReader(requestEnvelope))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %s (%w)", err.Error(), sderrors.ErrRequest)
	}

	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", fmt.Sprintf("%q", op.Action))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %s (%w)", err.Error(), sderrors.ErrRequest)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %s (%w)", err.Error(), sderrors.ErrBadResponse)
	}

	if resp.StatusCode != http.StatusOK {
		if _, faultErr := DecodeResponse(body); errors.Is(faultErr, sderrors.ErrFault) {
			return nil, faultErr
		}
		return nil, fmt.Errorf("unexpected response code %d from %s (%w)", resp.StatusCode, op.Endpoint, sderrors.ErrBadResponse)
	}

	return body, nil
}

// Close releases the session. For a shared session this drops one cache
// reference and only tears the transport down when the last reference goes;
// a failed release is reported, it means the connection leaked.
func (s *Session) Close() error {
	if s.release != nil {
		return s.release()
	}

	s.httpClient.CloseIdleConnections()
	return nil
}

type authTransport struct {
	base  http.RoundTripper
	creds Credentials
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.SetBasicAuth(t.creds.Username, t.creds.Password)
	return t.base.RoundTrip(req)
}
