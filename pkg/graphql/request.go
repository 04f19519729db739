package graphql

import (
	"encoding/json"

	"github.com/tradewire/protocol/pkg/errs"
)

// Request is an outgoing GraphQL operation. It marshals to the standard
// {"operationName", "query", "variables"} JSON document the transport sends.
type Request struct {
	OperationName string         `json:"operationName,omitempty"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// NewRequest builds a Request from a query document and a JSON-serializable
// variables value (typically a struct with json tags).
func NewRequest(operationName, query string, variables any) (Request, error) {
	req := Request{
		OperationName: operationName,
		Query:         query,
	}
	if variables == nil {
		return req, nil
	}

	data, err := json.Marshal(variables)
	if err != nil {
		return Request{}, errs.Wrap(err, "could not marshal query variables")
	}
	if err := json.Unmarshal(data, &req.Variables); err != nil {
		return Request{}, errs.Wrap(err, "query variables are not an object")
	}
	return req, nil
}

// JSON returns the serialized wire document.
func (r Request) JSON() (json.RawMessage, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, errs.Wrap(err, "could not serialize graphql request")
	}
	return data, nil
}
