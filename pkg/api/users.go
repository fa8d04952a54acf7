package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rickgao/playmoney/pkg/model"
	"github.com/rickgao/playmoney/pkg/normalize"
)

// User is a fetched user bound to the client that fetched it.
type User struct {
	model.User
	client *Client
}

// UsersResource groups user lookups.
type UsersResource struct {
	client *Client
}

func (r *UsersResource) fetch(ctx context.Context, path string) (*User, error) {
	u, err := getOne[model.User](ctx, r.client, normalize.UserGet, path, nil)
	if err != nil {
		return nil, err
	}
	return &User{User: *u, client: r.client}, nil
}

// Get fetches a user by id.
func (r *UsersResource) Get(ctx context.Context, id string) (*User, error) {
	if err := requireID("User", id); err != nil {
		return nil, err
	}
	u, err := r.fetch(ctx, "/users/"+id)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return u, nil
}

// ByUsername fetches a user by username.
func (r *UsersResource) ByUsername(ctx context.Context, username string) (*User, error) {
	if username == "" {
		return nil, &model.ValidationError{Model: "User", Field: "username", Reason: "is required"}
	}
	u, err := r.fetch(ctx, "/users/username/"+url.PathEscape(username))
	if err != nil {
		return nil, fmt.Errorf("get user by username %s: %w", username, err)
	}
	return u, nil
}

// ByReferral fetches the user who owns a referral code.
func (r *UsersResource) ByReferral(ctx context.Context, code string) (*User, error) {
	if code == "" {
		return nil, &model.ValidationError{Model: "User", Field: "referralCode", Reason: "is required"}
	}
	u, err := r.fetch(ctx, "/users/referral/"+url.PathEscape(code))
	if err != nil {
		return nil, fmt.Errorf("get user by referral %s: %w", code, err)
	}
	return u, nil
}

// Me fetches the user the API key belongs to.
func (r *UsersResource) Me(ctx context.Context) (*User, error) {
	if !r.client.Authenticated() {
		return nil, ErrMissingAPIKey
	}
	u, err := r.fetch(ctx, "/users/me")
	if err != nil {
		return nil, fmt.Errorf("get current user: %w", err)
	}
	return u, nil
}

// CheckUsername reports whether a username is free to register.
func (r *UsersResource) CheckUsername(ctx context.Context, username string) (*model.UsernameCheck, error) {
	q := url.Values{}
	q.Set("username", username)
	check, err := getOne[model.UsernameCheck](ctx, r.client, normalize.UsernameCheck, "/users/check-username", q)
	if err != nil {
		return nil, fmt.Errorf("check username %s: %w", username, err)
	}
	return check, nil
}

func (u *User) path(sub string) string {
	return "/users/" + url.PathEscape(u.ID) + "/" + sub
}

// Balance fetches the user's balances, one per asset.
func (u *User) Balance(ctx context.Context) ([]model.Balance, error) {
	items, err := getList[model.Balance](ctx, u.client, normalize.UserBalance, u.path("balance"), nil)
	if err != nil {
		return nil, fmt.Errorf("get user %s balance: %w", u.ID, err)
	}
	return items, nil
}

// Graph fetches the user's net worth history.
func (u *User) Graph(ctx context.Context) ([]model.UserGraphTick, error) {
	items, err := getList[model.UserGraphTick](ctx, u.client, normalize.UserGraph, u.path("graph"), nil)
	if err != nil {
		return nil, fmt.Errorf("get user %s graph: %w", u.ID, err)
	}
	return items, nil
}

// Positions fetches a page of the user's positions.
func (u *User) Positions(ctx context.Context, opts PositionsOptions) (*Page[model.Position], error) {
	page, err := getPage[model.Position](ctx, u.client, normalize.UserPositions, u.path("positions"), opts.query())
	if err != nil {
		return nil, fmt.Errorf("get user %s positions: %w", u.ID, err)
	}
	return page, nil
}

// Stats fetches the user's summary statistics.
func (u *User) Stats(ctx context.Context) (*model.UserStats, error) {
	stats, err := getOne[model.UserStats](ctx, u.client, normalize.UserStats, u.path("stats"), nil)
	if err != nil {
		return nil, fmt.Errorf("get user %s stats: %w", u.ID, err)
	}
	return stats, nil
}

// Transactions fetches a page of the user's transactions.
func (u *User) Transactions(ctx context.Context, opts TransactionsOptions) (*Page[model.Transaction], error) {
	page, err := getPage[model.Transaction](ctx, u.client, normalize.UserTransactions, u.path("transactions"), opts.query())
	if err != nil {
		return nil, fmt.Errorf("get user %s transactions: %w", u.ID, err)
	}
	return page, nil
}
