package graphql

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/tradewire/protocol/pkg/errs"
)

// ServerError is a structurally valid response in which the server rejected
// the operation. It is distinct from a decoding failure: the transport and
// the protocol framing worked, the server said no.
type ServerError struct {
	Messages []string
}

// Error implements the error interface, joining all server messages.
func (e *ServerError) Error() string {
	return "server error: " + strings.Join(e.Messages, "; ")
}

// Result is the two-outcome result of parsing a wire response: either a
// well-formed typed response or a server-reported error. Exactly one of the
// two is set.
type Result[R any] struct {
	response  *R
	serverErr *ServerError
}

// OK wraps a successful typed response.
func OK[R any](response *R) Result[R] {
	return Result[R]{response: response}
}

// Rejected wraps a server-reported error.
func Rejected[R any](serverErr *ServerError) Result[R] {
	return Result[R]{serverErr: serverErr}
}

// Response returns the typed response, or an error when the server rejected
// the operation. Use ServerError to branch on the rejection itself.
func (r Result[R]) Response() (*R, error) {
	if r.serverErr != nil {
		return nil, r.serverErr
	}
	return r.response, nil
}

// ServerError returns the server-reported error and whether one is present.
func (r Result[R]) ServerError() (*ServerError, bool) {
	return r.serverErr, r.serverErr != nil
}

// envelope is the standard GraphQL response framing.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Decode parses raw response bytes into a Result. Input that is neither a
// data payload nor a server error payload is a decoding failure, returned as
// the second value; malformed input never panics.
func Decode[R any](raw json.RawMessage) (Result[R], error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Result[R]{}, errs.Wrap(err, "malformed graphql response")
	}

	if len(env.Errors) > 0 {
		serverErr := &ServerError{Messages: make([]string, len(env.Errors))}
		for i, e := range env.Errors {
			serverErr.Messages[i] = e.Message
		}
		return Rejected[R](serverErr), nil
	}

	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return Result[R]{}, errs.New("graphql response carries neither data nor errors")
	}

	var response R
	if err := json.Unmarshal(env.Data, &response); err != nil {
		return Result[R]{}, errs.Wrap(err, "could not decode graphql response data")
	}
	return OK(&response), nil
}
