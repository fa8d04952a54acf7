package model

import (
	"fmt"
	"time"
)

// ActivityType is the kind of event in a market's activity feed.
type ActivityType string

const (
	ActivityComment              ActivityType = "COMMENT"
	ActivityTradeTransaction     ActivityType = "TRADE_TRANSACTION"
	ActivityLiquidityTransaction ActivityType = "LIQUIDITY_TRANSACTION"
	ActivityMarketCreated        ActivityType = "MARKET_CREATED"
	ActivityMarketResolved       ActivityType = "MARKET_RESOLVED"
)

// Activity is one entry of a market's activity feed. Which of the optional
// fields are set depends on Type.
type Activity struct {
	Type             ActivityType      `json:"type"`
	TimestampAt      time.Time         `json:"timestampAt"`
	Comment          *Comment          `json:"comment,omitempty"`
	Transactions     []Transaction     `json:"transactions,omitempty"`
	Option           *Option           `json:"option,omitempty"`
	Market           *FullMarket       `json:"market,omitempty"`
	MarketResolution *MarketResolution `json:"marketResolution,omitempty"`
}

func (a Activity) Validate() error {
	if a.Type == "" {
		return &ValidationError{Model: "Activity", Field: "type", Reason: "is required"}
	}
	if a.Comment != nil {
		if err := nested("comment", a.Comment.Validate()); err != nil {
			return err
		}
	}
	for i, t := range a.Transactions {
		if err := nested(fmt.Sprintf("transactions[%d]", i), t.Validate()); err != nil {
			return err
		}
	}
	if a.Option != nil {
		if err := nested("option", a.Option.Validate()); err != nil {
			return err
		}
	}
	if a.Market != nil {
		if err := nested("market", a.Market.Validate()); err != nil {
			return err
		}
	}
	if a.MarketResolution != nil {
		return nested("marketResolution", a.MarketResolution.Validate())
	}
	return nil
}
