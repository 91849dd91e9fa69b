package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	// Packages
	clinic "github.com/mutablelogic/go-clinic"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// failure records the status and body of a non-success response
type failure struct {
	status int
	body   []byte
}

// captureTransport copies the body of non-success responses into the
// failure attached to the request context
type captureTransport struct {
	next http.RoundTripper
}

type failureKey struct{}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Largest error body retained
const maxFailureBody = 64 * 1024

///////////////////////////////////////////////////////////////////////////////
// TRANSPORT

func withFailure(ctx context.Context, f *failure) context.Context {
	return context.WithValue(ctx, failureKey{}, f)
}

func (t *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return resp, err
	}
	f, ok := req.Context().Value(failureKey{}).(*failure)
	if !ok {
		return resp, nil
	}

	// Each redirect hop replaces the status of the previous one
	f.status = resp.StatusCode
	f.body = nil
	if isSuccess(resp.StatusCode) || isRedirect(resp) {
		return resp, nil
	}

	// Read the body and replace it for the caller
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFailureBody))
	resp.Body.Close()
	if err != nil {
		data = nil
	}
	f.body = data
	resp.Body = io.NopCloser(bytes.NewReader(data))
	return resp, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// mapError translates an error from the transport into a *clinic.Error
func mapError(err error, f *failure) error {
	// Status of the last response received, or from the error itself when
	// the request did not pass through the transport
	status := 0
	if f != nil {
		status = f.status
	} else {
		var httpErr httpresponse.Err
		if errors.As(err, &httpErr) {
			status = int(httpErr)
		}
	}

	switch {
	case (status == 0 || isSuccess(status)) && isConnectionError(err):
		// No response was received, or the body could not be read
		return clinic.NewError(clinic.ErrConnection, status, err.Error(), err)
	case status == 0 || isSuccess(status):
		// The request failed before sending, or a success body could not be decoded
		return clinic.NewError(clinic.ErrUnexpectedResponse, status, err.Error(), err)
	}

	// Recover the error envelope, from the body or the error text
	var body []byte
	if f != nil && len(f.body) > 0 {
		body = f.body
	}
	envelope, raw := decodeEnvelope(body)
	if raw == nil {
		envelope, raw = scanEnvelope(err.Error())
	}

	message := envelope.Error
	if message == "" {
		message = http.StatusText(status)
	}
	result := clinic.NewError(clinic.KindForStatus(status), status, message, err)
	result.Details = envelope.Details
	result.Body = raw
	return result
}

// decodeEnvelope returns the error envelope and the raw object, or nil if
// data is not a JSON object
func decodeEnvelope(data []byte) (schema.ErrorResponse, map[string]any) {
	var envelope schema.ErrorResponse
	var raw map[string]any
	if len(bytes.TrimSpace(data)) == 0 {
		return envelope, nil
	}
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return envelope, nil
	}
	if message, ok := raw["error"].(string); ok {
		envelope.Error = message
	}
	if details, ok := raw["details"].(map[string]any); ok {
		envelope.Details = details
	}
	return envelope, raw
}

// scanEnvelope looks for a JSON object embedded in the text of an error
func scanEnvelope(text string) (schema.ErrorResponse, map[string]any) {
	for i := strings.IndexByte(text, '{'); i >= 0; {
		var raw json.RawMessage
		if err := json.NewDecoder(strings.NewReader(text[i:])).Decode(&raw); err == nil {
			if envelope, obj := decodeEnvelope(raw); obj != nil {
				return envelope, obj
			}
		}
		next := strings.IndexByte(text[i+1:], '{')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return schema.ErrorResponse{}, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status <= 299
}

// isRedirect returns true for a response which the client follows
func isRedirect(resp *http.Response) bool {
	return resp.StatusCode >= 300 && resp.StatusCode <= 399 && resp.Header.Get("Location") != ""
}

// isConnectionError returns true when the round trip or the body read failed
func isConnectionError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
