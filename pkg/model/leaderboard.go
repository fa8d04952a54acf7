package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LeaderboardEntry is one ranked user.
type LeaderboardEntry struct {
	UserID      string          `json:"userId"`
	DisplayName string          `json:"displayName"`
	Username    string          `json:"username"`
	AvatarURL   *string         `json:"avatarUrl"`
	Total       decimal.Decimal `json:"total"`
	Rank        int             `json:"rank"`
}

func (e LeaderboardEntry) Validate() error {
	return firstErr(
		checkID("LeaderboardEntry", "userId", e.UserID),
		checkNonNegative("LeaderboardEntry", "rank", e.Rank),
	)
}

// UserRankings holds the caller's own rank in each category.
type UserRankings struct {
	Trader   *LeaderboardEntry `json:"trader,omitempty"`
	Creator  *LeaderboardEntry `json:"creator,omitempty"`
	Promoter *LeaderboardEntry `json:"promoter,omitempty"`
	Quester  *LeaderboardEntry `json:"quester,omitempty"`
	Referrer *LeaderboardEntry `json:"referrer,omitempty"`
}

// Leaderboard is the monthly ranking.
type Leaderboard struct {
	TopTraders   []LeaderboardEntry `json:"topTraders"`
	TopCreators  []LeaderboardEntry `json:"topCreators"`
	TopPromoters []LeaderboardEntry `json:"topPromoters"`
	TopQuesters  []LeaderboardEntry `json:"topQuesters"`
	TopReferrers []LeaderboardEntry `json:"topReferrers"`
	UserRankings *UserRankings      `json:"userRankings,omitempty"`
}

func (l Leaderboard) Validate() error {
	boards := []struct {
		field   string
		entries []LeaderboardEntry
	}{
		{"topTraders", l.TopTraders},
		{"topCreators", l.TopCreators},
		{"topPromoters", l.TopPromoters},
		{"topQuesters", l.TopQuesters},
		{"topReferrers", l.TopReferrers},
	}
	for _, b := range boards {
		for i, e := range b.entries {
			if err := nested(fmt.Sprintf("%s[%d]", b.field, i), e.Validate()); err != nil {
				return err
			}
		}
	}
	return nil
}
