package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rickgao/playmoney/pkg/model"
	"github.com/rickgao/playmoney/pkg/normalize"
)

// List is a fetched market list bound to the client that fetched it.
type List struct {
	model.MarketList
	client *Client
}

// ListsResource groups market list lookups.
type ListsResource struct {
	client *Client
}

// Get fetches a market list by id.
func (r *ListsResource) Get(ctx context.Context, id string) (*List, error) {
	if err := requireID("MarketList", id); err != nil {
		return nil, err
	}
	l, err := getOne[model.MarketList](ctx, r.client, normalize.ListGet, "/lists/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("get list %s: %w", id, err)
	}
	return &List{MarketList: *l, client: r.client}, nil
}

func (l *List) path(sub string) string {
	return "/lists/" + url.PathEscape(l.ID) + "/" + sub
}

// Balance fetches the balances of every holder across the list's markets.
// Upstream returns an empty body for some lists; that yields no balances.
func (l *List) Balance(ctx context.Context) ([]model.Balance, error) {
	items, err := getList[model.Balance](ctx, l.client, normalize.ListBalance, l.path("balance"), nil)
	if err != nil {
		return nil, fmt.Errorf("get list %s balance: %w", l.ID, err)
	}
	return items, nil
}

// Comments fetches the list's comments.
func (l *List) Comments(ctx context.Context) ([]model.Comment, error) {
	items, err := getList[model.Comment](ctx, l.client, normalize.ListComments, l.path("comments"), nil)
	if err != nil {
		return nil, fmt.Errorf("get list %s comments: %w", l.ID, err)
	}
	return items, nil
}
