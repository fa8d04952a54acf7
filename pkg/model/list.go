package model

import (
	"fmt"
	"time"
)

// ContributionPolicy controls who may add markets to a list.
type ContributionPolicy string

const (
	ContributionPublic      ContributionPolicy = "PUBLIC"
	ContributionDisabled    ContributionPolicy = "DISABLED"
	ContributionOwnersOnly  ContributionPolicy = "OWNERS_ONLY"
	ContributionFriendsOnly ContributionPolicy = "FRIENDS_ONLY"
)

// MarketList is a curated group of markets.
type MarketList struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title"`
	Slug               string             `json:"slug"`
	Description        string             `json:"description"`
	OwnerID            string             `json:"ownerId"`
	ContributionPolicy ContributionPolicy `json:"contributionPolicy"`
	ContributionReview bool               `json:"contributionReview"`
	Tags               []string           `json:"tags"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
	Owner              *User              `json:"owner,omitempty"`
	Markets            []ListMarket       `json:"markets,omitempty"`
}

// URL returns the list's page on the web front end.
func (l MarketList) URL() string {
	return fmt.Sprintf("%s/lists/%s/%s", SiteURL, l.ID, l.Slug)
}

func (l MarketList) Validate() error {
	const name = "MarketList"
	if err := checkID(name, "id", l.ID); err != nil {
		return err
	}
	if err := checkOptionalID(name, "ownerId", &l.OwnerID); err != nil {
		return err
	}
	if l.Owner != nil {
		if err := nested("owner", l.Owner.Validate()); err != nil {
			return err
		}
	}
	for i, m := range l.Markets {
		if err := nested(fmt.Sprintf("markets[%d]", i), m.Validate()); err != nil {
			return err
		}
	}
	return nil
}

// ListMarket is the membership row linking a market to a list. Its id and
// createdAt belong to the row, not to the market.
type ListMarket struct {
	ID        string      `json:"id"`
	ListID    string      `json:"listId"`
	MarketID  string      `json:"marketId"`
	CreatedAt time.Time   `json:"createdAt"`
	Market    *FullMarket `json:"market,omitempty"`
}

func (lm ListMarket) Validate() error {
	const name = "ListMarket"
	if err := checkID(name, "id", lm.ID); err != nil {
		return err
	}
	if err := firstErr(
		checkOptionalID(name, "listId", &lm.ListID),
		checkOptionalID(name, "marketId", &lm.MarketID),
	); err != nil {
		return err
	}
	if lm.Market != nil {
		return nested("market", lm.Market.Validate())
	}
	return nil
}
