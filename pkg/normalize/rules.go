package normalize

import "fmt"

// Endpoint identifies an upstream endpoint for rule lookup.
type Endpoint string

// Known endpoints.
const (
	MarketGet        Endpoint = "markets.get"
	MarketList       Endpoint = "markets.list"
	MarketActivity   Endpoint = "markets.activity"
	MarketBalance    Endpoint = "markets.balance"
	MarketBalances   Endpoint = "markets.balances"
	MarketComments   Endpoint = "markets.comments"
	MarketGraph      Endpoint = "markets.graph"
	MarketPositions  Endpoint = "markets.positions"
	MarketRelated    Endpoint = "markets.related"
	UserGet          Endpoint = "users.get"
	UsernameCheck    Endpoint = "users.check_username"
	UserBalance      Endpoint = "users.balance"
	UserGraph        Endpoint = "users.graph"
	UserPositions    Endpoint = "users.positions"
	UserStats        Endpoint = "users.stats"
	UserTransactions Endpoint = "users.transactions"
	ListGet          Endpoint = "lists.get"
	ListBalance      Endpoint = "lists.balance"
	ListComments     Endpoint = "lists.comments"
	Leaderboard      Endpoint = "leaderboard"
)

// Endpoints returns every known endpoint.
func Endpoints() []Endpoint {
	return []Endpoint{
		MarketGet, MarketList, MarketActivity, MarketBalance, MarketBalances,
		MarketComments, MarketGraph, MarketPositions, MarketRelated,
		UserGet, UsernameCheck, UserBalance, UserGraph, UserPositions, UserStats, UserTransactions,
		ListGet, ListBalance, ListComments, Leaderboard,
	}
}

// Container is the kind of empty value a rule substitutes for a missing node.
type Container int

const (
	Object Container = iota
	Array
)

func (c Container) empty() any {
	if c == Array {
		return []any{}
	}
	return map[string]any{}
}

func (c Container) String() string {
	if c == Array {
		return "[]"
	}
	return "{}"
}

// Rule is a single shape correction.
type Rule interface {
	Apply(doc map[string]any)
	String() string
}

// Rename moves key From to key To in every object at Path.
// An existing To key is never overwritten; the alias is dropped either way.
type Rename struct {
	Path string
	From string
	To   string
}

func (r Rename) Apply(doc map[string]any) {
	walk(doc, splitPath(r.Path), func(m map[string]any) {
		v, ok := m[r.From]
		if !ok {
			return
		}
		if _, exists := m[r.To]; !exists {
			m[r.To] = v
		}
		delete(m, r.From)
	})
}

func (r Rename) String() string {
	return fmt.Sprintf("rename %s.%s -> %s.%s", r.Path, r.From, r.Path, r.To)
}

// Hoist replaces the node at Path with its Inner child.
//
// If the inner value is an object, the node's other keys are carried over
// unless they collide. If the node or its inner key is missing, Empty is
// substituted.
type Hoist struct {
	Path  string
	Inner string
	Empty Container
}

func (h Hoist) Apply(doc map[string]any) {
	parent, field := splitLast(h.Path)
	walk(doc, parent, func(m map[string]any) {
		cur, ok := m[field]
		if !ok || cur == nil {
			m[field] = h.Empty.empty()
			return
		}
		node, ok := cur.(map[string]any)
		if !ok {
			// Already at canonical depth.
			return
		}
		inner, ok := node[h.Inner]
		if !ok || inner == nil {
			if h.Empty == Array {
				m[field] = h.Empty.empty()
			} else {
				delete(node, h.Inner)
			}
			return
		}
		obj, ok := inner.(map[string]any)
		if !ok {
			m[field] = inner
			return
		}
		for k, v := range node {
			if k == h.Inner {
				continue
			}
			if _, exists := obj[k]; !exists {
				obj[k] = v
			}
		}
		m[field] = obj
	})
}

func (h Hoist) String() string {
	return fmt.Sprintf("hoist %s.%s -> %s (empty %s)", h.Path, h.Inner, h.Path, h.Empty)
}

// Default sets Key to an empty Value in every object at Path where Key is
// absent or null.
type Default struct {
	Path  string
	Key   string
	Value Container
}

func (d Default) Apply(doc map[string]any) {
	walk(doc, splitPath(d.Path), func(m map[string]any) {
		if v, ok := m[d.Key]; !ok || v == nil {
			m[d.Key] = d.Value.empty()
		}
	})
}

func (d Default) String() string {
	return fmt.Sprintf("default %s.%s = %s", d.Path, d.Key, d.Value)
}

// rules is the full set of known upstream inconsistencies.
var rules = map[Endpoint][]Rule{
	MarketPositions: {
		Rename{Path: "data[].account", From: "user", To: "userPrimary"},
	},
	UserPositions: {
		Rename{Path: "data[].account", From: "user", To: "userPrimary"},
	},
	MarketBalance: {
		Hoist{Path: "data", Inner: "balance", Empty: Object},
		Default{Path: "data", Key: "user", Value: Object},
	},
	UserBalance: {
		Hoist{Path: "data", Inner: "balances", Empty: Array},
	},
	ListBalance: {
		Hoist{Path: "data", Inner: "users", Empty: Array},
	},
}

// Rules returns the corrections registered for an endpoint.
func Rules(e Endpoint) []Rule {
	rs := rules[e]
	out := make([]Rule, len(rs))
	copy(out, rs)
	return out
}

// Apply returns the canonical shape of raw for endpoint e. raw is not modified.
func Apply(e Endpoint, raw map[string]any) map[string]any {
	doc, _ := clone(raw).(map[string]any)
	if doc == nil {
		doc = map[string]any{}
	}
	for _, r := range rules[e] {
		r.Apply(doc)
	}
	return doc
}
