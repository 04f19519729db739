package graphql

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingData struct {
	Pong string `json:"pong"`
}

func TestDecode(t *testing.T) {
	t.Run("well-formed data yields a typed response", func(t *testing.T) {
		result, err := Decode[pingData]([]byte(`{"data":{"pong":"ok"}}`))
		require.NoError(t, err)

		response, err := result.Response()
		require.NoError(t, err)
		assert.Equal(t, "ok", response.Pong)

		_, rejected := result.ServerError()
		assert.False(t, rejected)
	})

	t.Run("server errors yield a ServerError, not a decode failure", func(t *testing.T) {
		raw := []byte(`{"data":null,"errors":[{"message":"insufficient balance"},{"message":"market closed"}]}`)
		result, err := Decode[pingData](raw)
		require.NoError(t, err, "a server rejection is not a decoding failure")

		serverErr, rejected := result.ServerError()
		require.True(t, rejected)
		assert.Equal(t, []string{"insufficient balance", "market closed"}, serverErr.Messages)

		_, err = result.Response()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insufficient balance")
	})

	t.Run("garbage is a decode failure", func(t *testing.T) {
		_, err := Decode[pingData]([]byte(`not json at all`))
		assert.Error(t, err)
	})

	t.Run("neither data nor errors is a decode failure", func(t *testing.T) {
		_, err := Decode[pingData]([]byte(`{"data":null}`))
		assert.Error(t, err)

		_, err = Decode[pingData]([]byte(`{}`))
		assert.Error(t, err)
	})

	t.Run("data of the wrong shape is a decode failure", func(t *testing.T) {
		_, err := Decode[pingData]([]byte(`{"data":{"pong":42}}`))
		assert.Error(t, err)
	})
}

func TestNewRequest(t *testing.T) {
	t.Run("struct variables become an object", func(t *testing.T) {
		vars := struct {
			Market string `json:"market"`
			Limit  int    `json:"limit"`
		}{Market: "eth_usdc", Limit: 10}

		req, err := NewRequest("ListTrades", "query ListTrades { ... }", vars)
		require.NoError(t, err)
		assert.Equal(t, "ListTrades", req.OperationName)
		require.Contains(t, req.Variables, "market")

		data, err := req.JSON()
		require.NoError(t, err)

		var decoded map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Contains(t, decoded, "query")
		assert.Contains(t, decoded, "variables")
	})

	t.Run("nil variables are omitted", func(t *testing.T) {
		req, err := NewRequest("Ping", "query Ping { pong }", nil)
		require.NoError(t, err)

		data, err := req.JSON()
		require.NoError(t, err)
		assert.NotContains(t, string(data), "variables")
	})

	t.Run("non-object variables are rejected", func(t *testing.T) {
		_, err := NewRequest("Bad", "query Bad { x }", 42)
		assert.Error(t, err)
	})
}
