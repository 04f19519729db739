package protocol

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradewire/protocol/pkg/graphql"
)

const listAccountTradesQuery = `query ListAccountTrades($payload: ListAccountTradesParams!) {
  listAccountTrades(payload: $payload) {
    next
    trades {
      id
      marketName
      direction
      amount
      limitPrice
      makerFee
      takerFee
      executedAt
    }
  }
}`

// Market names a trading pair by its asset symbols, e.g. eth/usdc.
type Market struct {
	Base  string
	Quote string
}

// Name returns the wire name of the market.
func (m Market) Name() string { return m.Base + "_" + m.Quote }

// TradeRange bounds a trade listing by execution time.
type TradeRange struct {
	Start time.Time
	Stop  time.Time
}

// ListAccountTradesRequest pages through the account's trade history for one
// market. It is a read-only operation: processing its response mutates no
// session state.
type ListAccountTradesRequest struct {
	Market Market
	// Limit caps the page size; zero lets the server choose.
	Limit int
	// Before is the pagination cursor from a previous response.
	Before string
	// Range optionally bounds the listing by execution time.
	Range *TradeRange
}

var _ Operation[ListAccountTradesResponse] = (*ListAccountTradesRequest)(nil)

type listAccountTradesParams struct {
	Before     *string `json:"before,omitempty"`
	Limit      *int    `json:"limit,omitempty"`
	MarketName string  `json:"marketName"`
	RangeStart *string `json:"rangeStart,omitempty"`
	RangeStop  *string `json:"rangeStop,omitempty"`
}

type listAccountTradesVariables struct {
	Payload listAccountTradesParams `json:"payload"`
}

// GraphQL builds the trade-listing query. It reads nothing from session
// state and never suspends.
func (r *ListAccountTradesRequest) GraphQL(_ context.Context, _ *State) (graphql.Request, error) {
	params := listAccountTradesParams{MarketName: r.Market.Name()}
	if r.Before != "" {
		params.Before = &r.Before
	}
	if r.Limit > 0 {
		params.Limit = &r.Limit
	}
	if r.Range != nil {
		start := r.Range.Start.UTC().Format(time.RFC3339)
		stop := r.Range.Stop.UTC().Format(time.RFC3339)
		params.RangeStart = &start
		params.RangeStop = &stop
	}
	return graphql.NewRequest("ListAccountTrades", listAccountTradesQuery, listAccountTradesVariables{Payload: params})
}

// ResponseFromJSON parses the raw wire response.
func (r *ListAccountTradesRequest) ResponseFromJSON(raw json.RawMessage) (graphql.Result[ListAccountTradesResponse], error) {
	return graphql.Decode[ListAccountTradesResponse](raw)
}

// ProcessResponse is a no-op: listing trades reads nothing from and writes
// nothing to session state.
func (r *ListAccountTradesRequest) ProcessResponse(_ context.Context, _ *ListAccountTradesResponse, _ *State) error {
	return nil
}

// AccountTrade is one executed trade in the account's history.
type AccountTrade struct {
	ID         string          `json:"id"`
	MarketName string          `json:"marketName"`
	Direction  string          `json:"direction"`
	Amount     decimal.Decimal `json:"amount"`
	LimitPrice decimal.Decimal `json:"limitPrice"`
	MakerFee   decimal.Decimal `json:"makerFee"`
	TakerFee   decimal.Decimal `json:"takerFee"`
	ExecutedAt time.Time       `json:"executedAt"`
}

// ListAccountTradesResponse is one page of the account's trade history.
type ListAccountTradesResponse struct {
	Page struct {
		Next   string         `json:"next"`
		Trades []AccountTrade `json:"trades"`
	} `json:"listAccountTrades"`
}
