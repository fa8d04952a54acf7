package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceSubtotalsDefaults(t *testing.T) {
	tests := []struct {
		name      string
		subtotals string
	}{
		{"absent", ``},
		{"null", `, "subtotals": null`},
		{"empty", `, "subtotals": {}`},
		{"partial", `, "subtotals": {"TRADE_BUY": -40, "HOUSE_SIGNUP_BONUS": 1000}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"accountId": "c66cc328ef6c13d1767417889", "assetType": "CURRENCY", "assetId": "PRIMARY", "amount": 960` + tt.subtotals + `}`

			var b Balance
			require.NoError(t, Decode(mustJSON(t, body), &b))

			for _, typ := range TransactionTypes() {
				assert.Contains(t, b.Subtotals, typ)
			}
			assert.True(t, b.Amount.Equal(decimal.NewFromInt(960)))
		})
	}
}

func TestBalanceSubtotalsValues(t *testing.T) {
	var b Balance
	err := Decode(mustJSON(t, `{
		"accountId": "c66cc328ef6c13d1767417889",
		"assetType": "CURRENCY",
		"assetId": "PRIMARY",
		"amount": 1000,
		"subtotals": {"TRADE_BUY": -40.5, "HOUSE_SIGNUP_BONUS": 1000, "QUEST_BONUS": 25}
	}`), &b)
	require.NoError(t, err)

	assert.Equal(t, "-40.5", b.Subtotals.Get(TradeBuy).String())
	assert.True(t, b.Subtotals.Get(TradeWin).IsZero())
	assert.Equal(t, "25", b.Subtotals.Get("QUEST_BONUS").String(), "unknown categories are kept")
	assert.Len(t, b.Subtotals, len(TransactionTypes())+1)

	// Subtotals are not reconciled with the reported amount.
	assert.Equal(t, "984.5", b.Subtotals.Sum().String())
	assert.False(t, b.Subtotals.Sum().Equal(b.Amount))
}

func TestBalanceValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"option asset", `{"accountId": "c66cc328ef6c13d1767417889", "assetType": "MARKET_OPTION", "assetId": "cm5ifmwfo001j24d2opt00001"}`, ""},
		{"bad asset", `{"accountId": "c66cc328ef6c13d1767417889", "assetId": "GOLD"}`, "assetId"},
		{"bad account", `{"accountId": "acc"}`, "accountId"},
		{"bad nested account", `{"account": {"id": "nope"}}`, "account.id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Balance
			err := Decode(mustJSON(t, tt.body), &b)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantErr, ve.Field)
		})
	}
}

func TestMarketBalance(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		var mb MarketBalance
		err := Decode(mustJSON(t, `{
			"accountId": "cm5ifmwfo001h24d2amm00001",
			"assetType": "CURRENCY",
			"assetId": "PRIMARY",
			"amount": 250,
			"user": {"accountId": "c66cc328ef6c13d1767417889", "assetType": "CURRENCY", "assetId": "PRIMARY", "amount": 12, "subtotals": {"TRADE_WIN": 12}}
		}`), &mb)
		require.NoError(t, err)

		assert.Equal(t, "cm5ifmwfo001h24d2amm00001", mb.Balance.AccountID)
		assert.Equal(t, "250", mb.Balance.Amount.String())
		require.NotNil(t, mb.User)
		assert.Equal(t, "c66cc328ef6c13d1767417889", mb.User.AccountID)
		assert.Equal(t, "12", mb.User.Subtotals.Get(TradeWin).String())
		assert.Len(t, mb.Balance.Subtotals, len(TransactionTypes()))
	})

	t.Run("unauthenticated", func(t *testing.T) {
		var mb MarketBalance
		err := Decode(mustJSON(t, `{"accountId": "cm5ifmwfo001h24d2amm00001", "amount": 250, "user": {}}`), &mb)
		require.NoError(t, err)

		assert.Nil(t, mb.User)
		assert.Equal(t, "250", mb.Balance.Amount.String())
	})

	t.Run("invalid user balance", func(t *testing.T) {
		var mb MarketBalance
		err := Decode(mustJSON(t, `{"user": {"accountId": "x"}}`), &mb)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "user.accountId", ve.Field)
	})

	t.Run("marshal", func(t *testing.T) {
		mb := MarketBalance{Balance: Balance{AccountID: "cm5ifmwfo001h24d2amm00001", Amount: decimal.NewFromInt(3)}}

		b, err := json.Marshal(mb)
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.Unmarshal(b, &out))
		assert.Contains(t, out, "balance")
		assert.Nil(t, out["user"])
	})
}

func TestPositionValidate(t *testing.T) {
	base := map[string]any{
		"id":        "cpos0000000001",
		"accountId": "c66cc328ef6c13d1767417889",
		"marketId":  testMarketID,
		"optionId":  "cm5ifmwfo001j24d2opt00001",
		"cost":      "10.5",
		"quantity":  20,
		"value":     12.25,
		"createdAt": "2025-01-02T10:00:00Z",
		"updatedAt": "2025-01-03T10:00:00Z",
		"account": map[string]any{
			"id":          "c66cc328ef6c13d1767417889",
			"type":        "USER",
			"userId":      testUserID,
			"createdAt":   "2024-08-13T12:00:00Z",
			"userPrimary": mustJSON(t, userJSON),
		},
	}

	var p Position
	require.NoError(t, Decode(base, &p))
	assert.Equal(t, "10.5", p.Cost.String())
	assert.Equal(t, "12.25", p.Value.String())
	require.NotNil(t, p.Account)
	require.NotNil(t, p.Account.UserPrimary)
	assert.Equal(t, "jgyou", p.Account.UserPrimary.Username)

	base["value"] = -1
	err := Decode(base, &p)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "value", ve.Field)
}

func TestTransactionDecode(t *testing.T) {
	var tx Transaction
	err := Decode(mustJSON(t, `{
		"id": "ctx00000000001",
		"type": "TRADE_BUY",
		"initiatorId": "clzrooq660000a2uznm33y25b",
		"isReverse": null,
		"reverseOfId": null,
		"batchId": null,
		"marketId": "cm5ifmwfo001g24d2r7fzu34u",
		"createdAt": "2025-01-02T10:00:00Z",
		"updatedAt": "2025-01-02T10:00:00Z",
		"entries": [
			{"id": "cent0000000001", "amount": 10, "assetType": "CURRENCY", "assetId": "PRIMARY", "fromAccountId": "c66cc328ef6c13d1767417889", "toAccountId": "cm5ifmwfo001h24d2amm00001", "transactionId": "ctx00000000001", "createdAt": "2025-01-02T10:00:00Z"},
			{"id": "bad", "amount": 10}
		]
	}`), &tx)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "TransactionEntry", ve.Model)
	assert.Equal(t, "entries[1].id", ve.Field)
	assert.Equal(t, TradeBuy, tx.Type)
	assert.Equal(t, "10", tx.Entries[0].Amount.String())
}

func TestTransactionTypesCopy(t *testing.T) {
	types := TransactionTypes()
	require.Len(t, types, 17)
	types[0] = "MUTATED"
	assert.Equal(t, TradeBuy, TransactionTypes()[0])
}
