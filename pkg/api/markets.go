package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rickgao/playmoney/pkg/model"
	"github.com/rickgao/playmoney/pkg/normalize"
)

// Market is a fetched market bound to the client that fetched it.
type Market struct {
	model.FullMarket
	client *Client
}

func (c *Client) newMarket(m model.FullMarket) *Market {
	return &Market{FullMarket: m, client: c}
}

// MarketsResource groups market lookups.
type MarketsResource struct {
	client *Client
}

// Get fetches a single market by id.
func (r *MarketsResource) Get(ctx context.Context, id string) (*Market, error) {
	if err := requireID("Market", id); err != nil {
		return nil, err
	}
	m, err := getOne[model.FullMarket](ctx, r.client, normalize.MarketGet, "/markets/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("get market %s: %w", id, err)
	}
	return r.client.newMarket(*m), nil
}

// List fetches a page of markets.
func (r *MarketsResource) List(ctx context.Context, opts ListMarketsOptions) (*Page[*Market], error) {
	page, err := getPage[model.FullMarket](ctx, r.client, normalize.MarketList, "/markets", opts.query())
	if err != nil {
		return nil, fmt.Errorf("list markets: %w", err)
	}
	out := &Page[*Market]{
		Items:    make([]*Market, len(page.Items)),
		PageInfo: page.PageInfo,
	}
	for i, m := range page.Items {
		out.Items[i] = r.client.newMarket(m)
	}
	return out, nil
}

func (m *Market) path(sub string) string {
	return "/markets/" + url.PathEscape(m.ID) + "/" + sub
}

// Activity fetches the market's activity feed.
func (m *Market) Activity(ctx context.Context) ([]model.Activity, error) {
	items, err := getList[model.Activity](ctx, m.client, normalize.MarketActivity, m.path("activity"), nil)
	if err != nil {
		return nil, fmt.Errorf("get market %s activity: %w", m.ID, err)
	}
	return items, nil
}

// Balance fetches the market's own balance and, when authenticated, the
// caller's balance in it.
func (m *Market) Balance(ctx context.Context) (*model.MarketBalance, error) {
	b, err := getOne[model.MarketBalance](ctx, m.client, normalize.MarketBalance, m.path("balance"), nil)
	if err != nil {
		return nil, fmt.Errorf("get market %s balance: %w", m.ID, err)
	}
	return b, nil
}

// Balances fetches every holder's balance in the market.
func (m *Market) Balances(ctx context.Context) ([]model.Balance, error) {
	items, err := getList[model.Balance](ctx, m.client, normalize.MarketBalances, m.path("balances"), nil)
	if err != nil {
		return nil, fmt.Errorf("get market %s balances: %w", m.ID, err)
	}
	return items, nil
}

// Comments fetches the market's comments.
func (m *Market) Comments(ctx context.Context) ([]model.Comment, error) {
	items, err := getList[model.Comment](ctx, m.client, normalize.MarketComments, m.path("comments"), nil)
	if err != nil {
		return nil, fmt.Errorf("get market %s comments: %w", m.ID, err)
	}
	return items, nil
}

// Graph fetches the market's probability history.
func (m *Market) Graph(ctx context.Context) ([]model.MarketGraphTick, error) {
	items, err := getList[model.MarketGraphTick](ctx, m.client, normalize.MarketGraph, m.path("graph"), nil)
	if err != nil {
		return nil, fmt.Errorf("get market %s graph: %w", m.ID, err)
	}
	return items, nil
}

// Positions fetches a page of positions held in the market.
func (m *Market) Positions(ctx context.Context, opts PositionsOptions) (*Page[model.Position], error) {
	page, err := getPage[model.Position](ctx, m.client, normalize.MarketPositions, m.path("positions"), opts.query())
	if err != nil {
		return nil, fmt.Errorf("get market %s positions: %w", m.ID, err)
	}
	return page, nil
}

// Related fetches markets similar to this one.
func (m *Market) Related(ctx context.Context) ([]*Market, error) {
	items, err := getList[model.FullMarket](ctx, m.client, normalize.MarketRelated, m.path("related"), nil)
	if err != nil {
		return nil, fmt.Errorf("get market %s related: %w", m.ID, err)
	}
	out := make([]*Market, len(items))
	for i, r := range items {
		out[i] = m.client.newMarket(r)
	}
	return out, nil
}
