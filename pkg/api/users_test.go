package api

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickgao/playmoney/pkg/model"
)

const userPath = "/users/" + testUserID

func TestUsersLookup(t *testing.T) {
	s := newAPIServer(t, map[string]route{
		userPath:                   data(userJSON),
		"/users/username/jgyou":    data(userJSON),
		"/users/username/john doe": data(userJSON),
		"/users/referral/J2P2":     data(userJSON),
		"/users/me":                data(userJSON),
		"/users/check-username":    data(`{"available": false, "message": "Username is already taken"}`),
	})
	ctx := context.Background()

	tests := []struct {
		name     string
		fetch    func(c *Client) (*User, error)
		wantPath string
	}{
		{"by id", func(c *Client) (*User, error) { return c.Users.Get(ctx, testUserID) }, userPath},
		{"by username", func(c *Client) (*User, error) { return c.Users.ByUsername(ctx, "jgyou") }, "/users/username/jgyou"},
		{"by username escaped", func(c *Client) (*User, error) { return c.Users.ByUsername(ctx, "john doe") }, "/users/username/john doe"},
		{"by referral", func(c *Client) (*User, error) { return c.Users.ByReferral(ctx, "J2P2") }, "/users/referral/J2P2"},
		{"me", func(c *Client) (*User, error) { return c.Users.Me(ctx) }, "/users/me"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := tt.fetch(NewClient(s.URL, "secret"))
			require.NoError(t, err)

			assert.Equal(t, testUserID, u.ID)
			assert.Equal(t, "jgyou", u.Username)
			assert.Equal(t, "c66cc328ef6c13d1767417889", u.PrimaryAccountID)
			assert.Equal(t, "America/New_York", u.Timezone)
			assert.Equal(t, tt.wantPath, s.LastRequest(t).Path)
		})
	}

	t.Run("check username", func(t *testing.T) {
		check, err := NewClient(s.URL, "").Users.CheckUsername(ctx, "jgyou")
		require.NoError(t, err)

		assert.False(t, check.Available)
		require.NotNil(t, check.Message)
		assert.Equal(t, "jgyou", s.LastRequest(t).Query.Get("username"))
	})
}

func TestUsersInputErrors(t *testing.T) {
	s := newAPIServer(t, nil)
	c := NewClient(s.URL, "")
	ctx := context.Background()

	_, err := c.Users.Me(ctx)
	assert.True(t, errors.Is(err, ErrMissingAPIKey))

	var ve *model.ValidationError
	_, err = c.Users.ByUsername(ctx, "")
	assert.ErrorAs(t, err, &ve)
	_, err = c.Users.ByReferral(ctx, "")
	assert.ErrorAs(t, err, &ve)

	assert.Empty(t, s.Requests())
}

func TestUsersMeUnauthorized(t *testing.T) {
	s := newAPIServer(t, map[string]route{"/users/me": {status: 401, body: `{"error": "Invalid API key"}`}})

	_, err := NewClient(s.URL, "wrong").Users.Me(context.Background())

	assert.True(t, IsUnauthorized(err))
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestUserAccessors(t *testing.T) {
	s := newAPIServer(t, map[string]route{
		userPath: data(userJSON),
		userPath + "/balance": data(`{"balances": [
			{"accountId": "c66cc328ef6c13d1767417889", "assetType": "CURRENCY", "assetId": "PRIMARY", "amount": 1500, "subtotals": {"HOUSE_SIGNUP_BONUS": 1000, "TRADE_WIN": 600}}
		]}`),
		userPath + "/graph":        data(`[{"startAt": "2025-01-01T00:00:00Z", "endAt": "2025-01-02T00:00:00Z", "balance": 1500, "liquidity": 0, "markets": 20.25}]`),
		userPath + "/positions":    {body: `{"data": [{"id": "cpos0000000001", "accountId": "c66cc328ef6c13d1767417889", "marketId": "cm5ifmwfo001g24d2r7fzu34u", "optionId": "cm5ifmwfo001j24d2opt00001", "cost": 10, "quantity": 15, "value": 12, "createdAt": "2025-01-02T00:00:00Z", "updatedAt": "2025-01-02T00:00:00Z", "account": ` + accountJSON("user") + `}], "pageInfo": {"hasNextPage": true, "endCursor": "cpos0000000001", "total": 4}}`},
		userPath + "/stats":        data(`{"netWorth": 1520.5, "tradingVolume": 300, "totalMarketsCreated": 2, "lastTradeAt": "2025-01-02T00:00:00Z", "activeDayCount": 5, "otherStats": {}}`),
		userPath + "/transactions": {body: `{"data": [{"id": "ctx00000000001", "type": "TRADE_BUY", "initiatorId": "clzrooq660000a2uznm33y25b", "marketId": "cm5ifmwfo001g24d2r7fzu34u", "createdAt": "2025-01-02T00:00:00Z", "updatedAt": "2025-01-02T00:00:00Z", "entries": []}], "pageInfo": {"hasNextPage": false, "total": 1}}`},
	})
	c := NewClient(s.URL, "")
	ctx := context.Background()
	u, err := c.Users.Get(ctx, testUserID)
	require.NoError(t, err)

	t.Run("balance", func(t *testing.T) {
		balances, err := u.Balance(ctx)
		require.NoError(t, err)
		require.Len(t, balances, 1)

		b := balances[0]
		assert.Equal(t, "1500", b.Amount.String())
		assert.Equal(t, "1600", b.Subtotals.Sum().String())
		assert.True(t, b.Subtotals.Get(model.TradeBuy).IsZero())
	})

	t.Run("graph", func(t *testing.T) {
		ticks, err := u.Graph(ctx)
		require.NoError(t, err)
		require.Len(t, ticks, 1)
		assert.Equal(t, "20.25", ticks[0].Markets.String())
	})

	t.Run("positions", func(t *testing.T) {
		page, err := u.Positions(ctx, PositionsOptions{PageOptions: PageOptions{Cursor: "cpos0000000000"}})
		require.NoError(t, err)

		assert.Equal(t, "cpos0000000000", s.LastRequest(t).Query.Get("cursor"))
		require.Len(t, page.Items, 1)
		require.NotNil(t, page.Items[0].Account.UserPrimary)
		assert.Equal(t, testUserID, page.Items[0].Account.UserPrimary.ID)
		assert.True(t, page.HasNextPage())
		assert.Equal(t, "cpos0000000001", page.EndCursor())
	})

	t.Run("stats", func(t *testing.T) {
		stats, err := u.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, "1520.5", stats.NetWorth.String())
		require.NotNil(t, stats.LastTradeAt)
	})

	t.Run("transactions", func(t *testing.T) {
		page, err := u.Transactions(ctx, TransactionsOptions{
			MarketID: testMarketID,
			Types:    []model.TransactionType{model.TradeBuy, model.TradeSell},
		})
		require.NoError(t, err)

		q := s.LastRequest(t).Query
		assert.Equal(t, testMarketID, q.Get("marketId"))
		assert.Equal(t, "TRADE_BUY,TRADE_SELL", q.Get("transactionType"))
		require.Len(t, page.Items, 1)
		assert.Equal(t, model.TradeBuy, page.Items[0].Type)
		assert.Empty(t, page.Items[0].Entries)
	})
}
