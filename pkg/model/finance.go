package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AssetType is the kind of asset an account holds.
type AssetType string

const (
	AssetCurrency     AssetType = "CURRENCY"
	AssetMarketOption AssetType = "MARKET_OPTION"
)

// PrimaryAsset is the asset id of the site currency.
const PrimaryAsset = "PRIMARY"

// TransactionType categorizes transactions and balance subtotals.
type TransactionType string

const (
	TradeBuy             TransactionType = "TRADE_BUY"
	TradeSell            TransactionType = "TRADE_SELL"
	TradeWin             TransactionType = "TRADE_WIN"
	CreatorTraderBonus   TransactionType = "CREATOR_TRADER_BONUS"
	LiquidityInitialize  TransactionType = "LIQUIDITY_INITIALIZE"
	LiquidityDeposit     TransactionType = "LIQUIDITY_DEPOSIT"
	LiquidityWithdrawal  TransactionType = "LIQUIDITY_WITHDRAWAL"
	LiquidityReturned    TransactionType = "LIQUIDITY_RETURNED"
	LiquidityVolumeBonus TransactionType = "LIQUIDITY_VOLUME_BONUS"
	DailyTradeBonus      TransactionType = "DAILY_TRADE_BONUS"
	DailyMarketBonus     TransactionType = "DAILY_MARKET_BONUS"
	DailyCommentBonus    TransactionType = "DAILY_COMMENT_BONUS"
	DailyLiquidityBonus  TransactionType = "DAILY_LIQUIDITY_BONUS"
	HouseGift            TransactionType = "HOUSE_GIFT"
	HouseSignupBonus     TransactionType = "HOUSE_SIGNUP_BONUS"
	ReferrerBonus        TransactionType = "REFERRER_BONUS"
	RefereeBonus         TransactionType = "REFERREE_BONUS"
)

var transactionTypes = []TransactionType{
	TradeBuy, TradeSell, TradeWin, CreatorTraderBonus,
	LiquidityInitialize, LiquidityDeposit, LiquidityWithdrawal, LiquidityReturned, LiquidityVolumeBonus,
	DailyTradeBonus, DailyMarketBonus, DailyCommentBonus, DailyLiquidityBonus,
	HouseGift, HouseSignupBonus, ReferrerBonus, RefereeBonus,
}

// TransactionTypes returns every known transaction type.
func TransactionTypes() []TransactionType {
	out := make([]TransactionType, len(transactionTypes))
	copy(out, transactionTypes)
	return out
}

// -----------------------------------------------------------------------------
// Balances
// -----------------------------------------------------------------------------

// Subtotals breaks a balance down by transaction type.
//
// Every known type is present once a Balance is decoded. Categories the
// server reports but this package does not know are kept. The subtotals are
// not guaranteed to add up to the balance amount.
type Subtotals map[TransactionType]decimal.Decimal

// Get returns the subtotal for t, zero when absent.
func (s Subtotals) Get(t TransactionType) decimal.Decimal {
	return s[t]
}

// Sum adds up every category.
func (s Subtotals) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, v := range s {
		total = total.Add(v)
	}
	return total
}

func (s Subtotals) withDefaults() Subtotals {
	out := make(Subtotals, len(transactionTypes))
	for _, t := range transactionTypes {
		out[t] = decimal.Zero
	}
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Balance is an account's holding of one asset.
type Balance struct {
	ID        string          `json:"id,omitempty"`
	AccountID string          `json:"accountId"`
	AssetType AssetType       `json:"assetType"`
	AssetID   string          `json:"assetId"`
	Amount    decimal.Decimal `json:"amount"`
	Subtotals Subtotals       `json:"subtotals"`
	CreatedAt *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty"`
	Account   *Account        `json:"account,omitempty"`
}

func (b *Balance) UnmarshalJSON(data []byte) error {
	type balance Balance
	var raw balance
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = Balance(raw)
	b.Subtotals = b.Subtotals.withDefaults()
	return nil
}

func (b Balance) Validate() error {
	const name = "Balance"
	if err := firstErr(
		checkOptionalID(name, "id", &b.ID),
		checkOptionalID(name, "accountId", &b.AccountID),
	); err != nil {
		return err
	}
	if b.AssetID != "" && b.AssetID != PrimaryAsset && !IsCUID(b.AssetID) {
		return &ValidationError{Model: name, Field: "assetId", Reason: fmt.Sprintf("%q is neither %s nor an id", b.AssetID, PrimaryAsset)}
	}
	if b.Account != nil {
		return nested("account", b.Account.Validate())
	}
	return nil
}

// MarketBalance is a market's own balance together with the caller's
// balance in that market. User is nil for unauthenticated requests.
type MarketBalance struct {
	Balance Balance  `json:"balance"`
	User    *Balance `json:"user"`
}

// UnmarshalJSON decodes the canonical shape: the market balance fields at
// the top level with the caller's balance under "user".
func (mb *MarketBalance) UnmarshalJSON(data []byte) error {
	var own Balance
	if err := json.Unmarshal(data, &own); err != nil {
		return err
	}
	var rest struct {
		User json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(data, &rest); err != nil {
		return err
	}
	mb.Balance = own
	mb.User = nil
	if isEmptyObject(rest.User) {
		return nil
	}
	var user Balance
	if err := json.Unmarshal(rest.User, &user); err != nil {
		return err
	}
	mb.User = &user
	return nil
}

func (mb MarketBalance) Validate() error {
	if err := mb.Balance.Validate(); err != nil {
		return err
	}
	if mb.User != nil {
		return nested("user", mb.User.Validate())
	}
	return nil
}

func isEmptyObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return false
	}
	return len(m) == 0
}

// -----------------------------------------------------------------------------
// Positions and transactions
// -----------------------------------------------------------------------------

// Position is an account's holding of one market option.
type Position struct {
	ID        string          `json:"id"`
	AccountID string          `json:"accountId"`
	MarketID  string          `json:"marketId"`
	OptionID  string          `json:"optionId"`
	Cost      decimal.Decimal `json:"cost"`
	Quantity  decimal.Decimal `json:"quantity"`
	Value     decimal.Decimal `json:"value"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Account   *Account        `json:"account,omitempty"`
	Market    *Market         `json:"market,omitempty"`
	Option    *Option         `json:"option,omitempty"`
}

func (p Position) Validate() error {
	const name = "Position"
	if err := checkID(name, "id", p.ID); err != nil {
		return err
	}
	if err := firstErr(
		checkOptionalID(name, "accountId", &p.AccountID),
		checkOptionalID(name, "marketId", &p.MarketID),
		checkOptionalID(name, "optionId", &p.OptionID),
	); err != nil {
		return err
	}
	if p.Value.IsNegative() {
		return &ValidationError{Model: name, Field: "value", Reason: fmt.Sprintf("must be >= 0, got %s", p.Value)}
	}
	if p.Account != nil {
		if err := nested("account", p.Account.Validate()); err != nil {
			return err
		}
	}
	if p.Market != nil {
		if err := nested("market", p.Market.Validate()); err != nil {
			return err
		}
	}
	if p.Option != nil {
		return nested("option", p.Option.Validate())
	}
	return nil
}

// TransactionEntry is one ledger movement within a transaction.
type TransactionEntry struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	AssetType     AssetType       `json:"assetType"`
	AssetID       string          `json:"assetId"`
	FromAccountID string          `json:"fromAccountId"`
	ToAccountID   string          `json:"toAccountId"`
	TransactionID string          `json:"transactionId"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (e TransactionEntry) Validate() error {
	const name = "TransactionEntry"
	if err := checkID(name, "id", e.ID); err != nil {
		return err
	}
	return firstErr(
		checkOptionalID(name, "fromAccountId", &e.FromAccountID),
		checkOptionalID(name, "toAccountId", &e.ToAccountID),
		checkOptionalID(name, "transactionId", &e.TransactionID),
	)
}

// Transaction groups ledger entries created by one action.
type Transaction struct {
	ID          string             `json:"id"`
	Type        TransactionType    `json:"type"`
	InitiatorID *string            `json:"initiatorId"`
	IsReverse   *bool              `json:"isReverse"`
	ReverseOfID *string            `json:"reverseOfId"`
	BatchID     *string            `json:"batchId"`
	MarketID    *string            `json:"marketId"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Entries     []TransactionEntry `json:"entries"`
	Initiator   *User              `json:"initiator,omitempty"`
}

func (t Transaction) Validate() error {
	const name = "Transaction"
	if err := checkID(name, "id", t.ID); err != nil {
		return err
	}
	if err := firstErr(
		checkOptionalID(name, "initiatorId", t.InitiatorID),
		checkOptionalID(name, "reverseOfId", t.ReverseOfID),
		checkOptionalID(name, "batchId", t.BatchID),
		checkOptionalID(name, "marketId", t.MarketID),
	); err != nil {
		return err
	}
	for i, e := range t.Entries {
		if err := nested(fmt.Sprintf("entries[%d]", i), e.Validate()); err != nil {
			return err
		}
	}
	if t.Initiator != nil {
		return nested("initiator", t.Initiator.Validate())
	}
	return nil
}
