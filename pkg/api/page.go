package api

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/rickgao/playmoney/pkg/model"
)

// Page is one page of a cursor-paginated listing.
type Page[T any] struct {
	Items    []T            `json:"data"`
	PageInfo model.PageInfo `json:"pageInfo"`
}

// HasNextPage reports whether another page follows. It is the only stop
// signal: a false value ends iteration even if a cursor is present.
func (p *Page[T]) HasNextPage() bool {
	return p.PageInfo.HasNextPage
}

// EndCursor returns the cursor to pass back to fetch the next page.
func (p *Page[T]) EndCursor() string {
	return p.PageInfo.EndCursor
}

// SortDirection orders paginated results.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// PageOptions are the cursor parameters shared by paginated endpoints.
type PageOptions struct {
	Limit         int
	Cursor        string
	SortField     string
	SortDirection SortDirection
}

func (o PageOptions) apply(q url.Values) {
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Cursor != "" {
		q.Set("cursor", o.Cursor)
	}
	if o.SortField != "" {
		q.Set("sortField", o.SortField)
	}
	if o.SortDirection != "" {
		q.Set("sortDirection", string(o.SortDirection))
	}
}

// ListMarketsOptions filters the market listing.
type ListMarketsOptions struct {
	PageOptions
	Status    model.MarketStatus
	CreatedBy string
	Tags      []string
}

func (o ListMarketsOptions) query() url.Values {
	q := url.Values{}
	o.PageOptions.apply(q)
	if o.Status != "" {
		q.Set("status", string(o.Status))
	}
	if o.CreatedBy != "" {
		q.Set("createdBy", o.CreatedBy)
	}
	if len(o.Tags) > 0 {
		q.Set("tags", strings.Join(o.Tags, ","))
	}
	return q
}

// PositionStatus filters positions by whether they are still held.
type PositionStatus string

const (
	PositionsActive PositionStatus = "active"
	PositionsClosed PositionStatus = "closed"
	PositionsAll    PositionStatus = "all"
)

// PositionsOptions filters market and user positions.
type PositionsOptions struct {
	PageOptions
	Status PositionStatus
}

func (o PositionsOptions) query() url.Values {
	q := url.Values{}
	o.PageOptions.apply(q)
	if o.Status != "" {
		q.Set("status", string(o.Status))
	}
	return q
}

// TransactionsOptions filters a user's transactions.
type TransactionsOptions struct {
	PageOptions
	MarketID string
	Types    []model.TransactionType
}

func (o TransactionsOptions) query() url.Values {
	q := url.Values{}
	o.PageOptions.apply(q)
	if o.MarketID != "" {
		q.Set("marketId", o.MarketID)
	}
	if len(o.Types) > 0 {
		types := make([]string, len(o.Types))
		for i, t := range o.Types {
			types[i] = string(t)
		}
		q.Set("transactionType", strings.Join(types, ","))
	}
	return q
}
