// Package normalize reconciles the inconsistent response shapes of the PlayMoney API.
//
// Upstream endpoints disagree on envelope depth and on key names for the same
// concept. Every known quirk is listed once, in the rule table in rules.go,
// keyed by endpoint:
//
//	positions         data[].account.user  -> data[].account.userPrimary
//	market balance    data.balance         -> data
//	                  missing data.user    -> data.user = {}
//	user balance      data.balances        -> data
//	list balance      data.users           -> data
//
// Normalization never fails. Missing nodes make a rule a no-op, or are replaced
// by the rule's declared empty container, and unknown fields pass through.
package normalize
