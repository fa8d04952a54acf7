package model

import (
	"fmt"
	"time"
)

// Role is a user's permission level.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// AccountType distinguishes user wallets from market-owned accounts.
type AccountType string

const (
	AccountUser           AccountType = "USER"
	AccountMarketAMM      AccountType = "MARKET_AMM"
	AccountMarketClearing AccountType = "MARKET_CLEARING"
	AccountHouse          AccountType = "HOUSE"
)

// User is a public profile.
type User struct {
	ID               string     `json:"id"`
	Username         string     `json:"username"`
	DisplayName      string     `json:"displayName"`
	AvatarURL        *string    `json:"avatarUrl"`
	TwitterHandle    *string    `json:"twitterHandle"`
	DiscordHandle    *string    `json:"discordHandle"`
	Website          *string    `json:"website"`
	Bio              *string    `json:"bio"`
	Timezone         string     `json:"timezone"`
	PrimaryAccountID string     `json:"primaryAccountId"`
	Role             Role       `json:"role"`
	ReferralCode     *string    `json:"referralCode"`
	ReferredBy       *string    `json:"referredBy"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt"`
}

// URL returns the user's profile page.
func (u User) URL() string {
	return fmt.Sprintf("%s/%s", SiteURL, u.Username)
}

func (u User) Validate() error {
	const name = "User"
	if err := checkID(name, "id", u.ID); err != nil {
		return err
	}
	if u.Role != "" && u.Role != RoleUser && u.Role != RoleAdmin {
		return &ValidationError{Model: name, Field: "role", Reason: fmt.Sprintf("unknown role %q", u.Role)}
	}
	return firstErr(
		checkOptionalID(name, "primaryAccountId", &u.PrimaryAccountID),
		checkOptionalID(name, "referredBy", u.ReferredBy),
	)
}

// Account holds assets for a user, a market or the house.
type Account struct {
	ID           string      `json:"id"`
	Type         AccountType `json:"type"`
	InternalType *string     `json:"internalType"`
	UserID       *string     `json:"userId"`
	MarketID     *string     `json:"marketId"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    *time.Time  `json:"updatedAt"`
	UserPrimary  *User       `json:"userPrimary,omitempty"` // account holder
}

func (a Account) Validate() error {
	const name = "Account"
	if err := checkID(name, "id", a.ID); err != nil {
		return err
	}
	if err := firstErr(
		checkOptionalID(name, "userId", a.UserID),
		checkOptionalID(name, "marketId", a.MarketID),
	); err != nil {
		return err
	}
	if a.UserPrimary != nil {
		return nested("userPrimary", a.UserPrimary.Validate())
	}
	return nil
}

// UsernameCheck is the result of a username availability lookup.
type UsernameCheck struct {
	Available bool    `json:"available"`
	Message   *string `json:"message,omitempty"`
}

func (UsernameCheck) Validate() error { return nil }
