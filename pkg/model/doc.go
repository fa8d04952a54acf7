// Package model defines the typed PlayMoney entities returned by the API.
//
// Values are built from canonical (normalized) response data with Decode or
// DecodeList, which validate ids on the way in. Entities are snapshots and
// are never mutated after construction.
//
// Conventions:
//   - IDs: CUID strings ("c" followed by at least 8 non-space, non-dash characters)
//   - Amounts: decimal.Decimal
//   - Timestamps: time.Time; nullable timestamps are pointers
package model
