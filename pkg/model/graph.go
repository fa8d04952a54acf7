package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// GraphTickOption is an option's probability during one tick.
type GraphTickOption struct {
	ID          string  `json:"id"`
	Probability float64 `json:"probability"`
}

// MarketGraphTick is one bucket of a market's probability history.
type MarketGraphTick struct {
	StartAt time.Time         `json:"startAt"`
	EndAt   time.Time         `json:"endAt"`
	Options []GraphTickOption `json:"options"`
}

func (t MarketGraphTick) Validate() error {
	for i, o := range t.Options {
		if err := checkID("MarketGraphTick", fmt.Sprintf("options[%d].id", i), o.ID); err != nil {
			return err
		}
	}
	return nil
}

// UserGraphTick is one bucket of a user's net worth history.
type UserGraphTick struct {
	StartAt   time.Time       `json:"startAt"`
	EndAt     time.Time       `json:"endAt"`
	Balance   decimal.Decimal `json:"balance"`
	Liquidity decimal.Decimal `json:"liquidity"`
	Markets   decimal.Decimal `json:"markets"`
}

func (UserGraphTick) Validate() error { return nil }

// UserStats summarizes a user's activity.
type UserStats struct {
	NetWorth            decimal.Decimal `json:"netWorth"`
	TradingVolume       decimal.Decimal `json:"tradingVolume"`
	TotalMarketsCreated int             `json:"totalMarketsCreated"`
	LastTradeAt         *time.Time      `json:"lastTradeAt"`
	ActiveDayCount      int             `json:"activeDayCount"`
	OtherStats          map[string]any  `json:"otherStats,omitempty"`
}

func (s UserStats) Validate() error {
	return firstErr(
		checkNonNegative("UserStats", "totalMarketsCreated", s.TotalMarketsCreated),
		checkNonNegative("UserStats", "activeDayCount", s.ActiveDayCount),
	)
}
