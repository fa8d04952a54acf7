package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// SiteURL is the public web front end.
const SiteURL = "https://playmoney.dev"

// MarketStatus is the lifecycle state used to filter market listings.
type MarketStatus string

const (
	MarketActive   MarketStatus = "active"
	MarketClosed   MarketStatus = "closed"
	MarketResolved MarketStatus = "resolved"
	MarketCanceled MarketStatus = "canceled"
	MarketAll      MarketStatus = "all"
)

// -----------------------------------------------------------------------------
// Markets
// -----------------------------------------------------------------------------

// Market is a prediction market as returned by listing endpoints.
type Market struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Description string   `json:"description"`
	Slug        string   `json:"slug"`
	Tags        []string `json:"tags"`

	CreatedAt  time.Time  `json:"createdAt"`
	CloseDate  time.Time  `json:"closeDate"`
	ResolvedAt *time.Time `json:"resolvedAt"`
	CanceledAt *time.Time `json:"canceledAt"`
	UpdatedAt  *time.Time `json:"updatedAt"`

	CreatedBy         string  `json:"createdBy"`
	AmmAccountID      string  `json:"ammAccountId"`
	ClearingAccountID string  `json:"clearingAccountId"`
	CanceledByID      *string `json:"canceledById"`

	CommentCount         int     `json:"commentCount"`
	UniqueTradersCount   int     `json:"uniqueTradersCount"`
	UniquePromotersCount int     `json:"uniquePromotersCount"`
	LiquidityCount       *int    `json:"liquidityCount"`
	ParentListID         *string `json:"parentListId"`
}

// URL returns the market's page on the web front end.
func (m Market) URL() string {
	return fmt.Sprintf("%s/questions/%s/%s", SiteURL, m.ID, m.Slug)
}

// Status derives the lifecycle state at now. Cancellation wins over
// resolution, which wins over the close date.
func (m Market) Status(now time.Time) MarketStatus {
	switch {
	case m.CanceledAt != nil:
		return MarketCanceled
	case m.ResolvedAt != nil:
		return MarketResolved
	case !m.CloseDate.IsZero() && !now.Before(m.CloseDate):
		return MarketClosed
	default:
		return MarketActive
	}
}

func (m Market) Validate() error {
	const name = "Market"
	if err := checkID(name, "id", m.ID); err != nil {
		return err
	}
	return firstErr(
		checkOptionalID(name, "createdBy", &m.CreatedBy),
		checkOptionalID(name, "ammAccountId", &m.AmmAccountID),
		checkOptionalID(name, "clearingAccountId", &m.ClearingAccountID),
		checkOptionalID(name, "canceledById", m.CanceledByID),
		checkOptionalID(name, "parentListId", m.ParentListID),
		checkNonNegative(name, "commentCount", m.CommentCount),
		checkNonNegative(name, "uniqueTradersCount", m.UniqueTradersCount),
		checkNonNegative(name, "uniquePromotersCount", m.UniquePromotersCount),
	)
}

// FullMarket is a market with its creator, options and resolution, as
// returned by the single-market endpoint.
type FullMarket struct {
	Market
	User             *User             `json:"user,omitempty"`
	Options          []Option          `json:"options,omitempty"`
	MarketResolution *MarketResolution `json:"marketResolution,omitempty"`
	ResolvedBy       *User             `json:"resolvedBy,omitempty"`
	ParentList       json.RawMessage   `json:"parentList,omitempty"`
	SharedTagsCount  *int              `json:"sharedTagsCount,omitempty"`
}

// Option returns the option with the given id.
func (m FullMarket) Option(id string) (Option, bool) {
	for _, o := range m.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

func (m FullMarket) Validate() error {
	if err := m.Market.Validate(); err != nil {
		return err
	}
	if m.User != nil {
		if err := nested("user", m.User.Validate()); err != nil {
			return err
		}
	}
	for i, o := range m.Options {
		if err := nested(fmt.Sprintf("options[%d]", i), o.Validate()); err != nil {
			return err
		}
	}
	if m.MarketResolution != nil {
		if err := nested("marketResolution", m.MarketResolution.Validate()); err != nil {
			return err
		}
	}
	if m.ResolvedBy != nil {
		return nested("resolvedBy", m.ResolvedBy.Validate())
	}
	return nil
}

// Option is one possible outcome of a market.
type Option struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	MarketID             string    `json:"marketId"`
	Color                string    `json:"color"`
	Probability          *float64  `json:"probability"` // percent, 0-100
	LiquidityProbability float64   `json:"liquidityProbability"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func (o Option) Validate() error {
	const name = "Option"
	if err := checkID(name, "id", o.ID); err != nil {
		return err
	}
	if err := checkOptionalID(name, "marketId", &o.MarketID); err != nil {
		return err
	}
	if o.Probability != nil && (*o.Probability < 0 || *o.Probability > 100) {
		return &ValidationError{Model: name, Field: "probability", Reason: fmt.Sprintf("must be within 0-100, got %v", *o.Probability)}
	}
	if o.LiquidityProbability < 0 || o.LiquidityProbability > 1 {
		return &ValidationError{Model: name, Field: "liquidityProbability", Reason: fmt.Sprintf("must be within 0-1, got %v", o.LiquidityProbability)}
	}
	return nil
}

// MarketResolution records which option a market resolved to.
type MarketResolution struct {
	ID             string    `json:"id"`
	MarketID       string    `json:"marketId"`
	ResolvedByID   string    `json:"resolvedById"`
	ResolutionID   string    `json:"resolutionId"`
	SupportingLink *string   `json:"supportingLink"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Resolution     Option    `json:"resolution"`
	ResolvedBy     *User     `json:"resolvedBy,omitempty"`
	Market         *Market   `json:"market,omitempty"`
}

func (r MarketResolution) Validate() error {
	const name = "MarketResolution"
	if err := checkID(name, "id", r.ID); err != nil {
		return err
	}
	err := firstErr(
		checkOptionalID(name, "marketId", &r.MarketID),
		checkOptionalID(name, "resolvedById", &r.ResolvedByID),
		checkOptionalID(name, "resolutionId", &r.ResolutionID),
	)
	if err != nil {
		return err
	}
	if r.Resolution.ID != "" {
		if err := nested("resolution", r.Resolution.Validate()); err != nil {
			return err
		}
	}
	if r.ResolvedBy != nil {
		if err := nested("resolvedBy", r.ResolvedBy.Validate()); err != nil {
			return err
		}
	}
	if r.Market != nil {
		return nested("market", r.Market.Validate())
	}
	return nil
}
