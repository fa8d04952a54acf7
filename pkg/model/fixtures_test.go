package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testMarketID = "cm5ifmwfo001g24d2r7fzu34u"
	testUserID   = "clzrooq660000a2uznm33y25b"
)

const userJSON = `{
	"id": "clzrooq660000a2uznm33y25b",
	"username": "jgyou",
	"displayName": "JGY",
	"avatarUrl": null,
	"twitterHandle": null,
	"discordHandle": null,
	"website": null,
	"bio": "Building things",
	"timezone": "America/New_York",
	"primaryAccountId": "c66cc328ef6c13d1767417889",
	"role": "USER",
	"referralCode": "J2P2",
	"referredBy": null,
	"createdAt": "2024-08-13T12:00:00.000Z",
	"updatedAt": "2024-12-01T08:30:00.000Z"
}`

const marketJSON = `{
	"id": "cm5ifmwfo001g24d2r7fzu34u",
	"question": "Will it snow in Montreal on Christmas?",
	"description": "Resolves YES if snow is recorded.",
	"slug": "will-it-snow-in-montreal-on-christmas",
	"tags": ["weather", "canada"],
	"createdAt": "2025-01-02T10:00:00.000Z",
	"closeDate": "2025-12-25T23:59:00.000Z",
	"resolvedAt": null,
	"canceledAt": null,
	"updatedAt": "2025-01-02T10:00:00.000Z",
	"createdBy": "clzrooq660000a2uznm33y25b",
	"ammAccountId": "cm5ifmwfo001h24d2amm00001",
	"clearingAccountId": "cm5ifmwfo001i24d2clr00001",
	"canceledById": null,
	"commentCount": 3,
	"uniqueTradersCount": 12,
	"uniquePromotersCount": 1,
	"liquidityCount": null,
	"parentListId": null,
	"user": ` + userJSON + `,
	"options": [
		{"id": "cm5ifmwfo001j24d2opt00001", "name": "Yes", "marketId": "cm5ifmwfo001g24d2r7fzu34u", "color": "#03a9f4", "probability": 64, "liquidityProbability": 0.5, "createdAt": "2025-01-02T10:00:00.000Z", "updatedAt": "2025-01-03T10:00:00.000Z"},
		{"id": "cm5ifmwfo001k24d2opt00002", "name": "No", "marketId": "cm5ifmwfo001g24d2r7fzu34u", "color": "#e91e63", "probability": 36, "liquidityProbability": 0.5, "createdAt": "2025-01-02T10:00:00.000Z", "updatedAt": "2025-01-03T10:00:00.000Z"}
	]
}`

func mustJSON(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}
