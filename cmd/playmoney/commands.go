package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rickgao/playmoney/pkg/api"
	"github.com/rickgao/playmoney/pkg/model"
)

var errUsage = errors.New("usage")

// run executes one command and writes its result to out as indented JSON.
func run(ctx context.Context, c *api.Client, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "market":
		return runMarket(ctx, c, rest, out)
	case "markets":
		return runMarkets(ctx, c, rest, out)
	case "user":
		return runUser(ctx, c, rest, out)
	case "username":
		name, err := oneArg(cmd, rest)
		if err != nil {
			return err
		}
		u, err := c.Users.ByUsername(ctx, name)
		if err != nil {
			return err
		}
		return writeJSON(out, u)
	case "referral":
		code, err := oneArg(cmd, rest)
		if err != nil {
			return err
		}
		u, err := c.Users.ByReferral(ctx, code)
		if err != nil {
			return err
		}
		return writeJSON(out, u)
	case "me":
		u, err := c.Users.Me(ctx)
		if err != nil {
			return err
		}
		return writeJSON(out, u)
	case "check-username":
		name, err := oneArg(cmd, rest)
		if err != nil {
			return err
		}
		res, err := c.Users.CheckUsername(ctx, name)
		if err != nil {
			return err
		}
		return writeJSON(out, res)
	case "list":
		return runList(ctx, c, rest, out)
	case "leaderboard":
		return runLeaderboard(ctx, c, rest, out)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func runMarket(ctx context.Context, c *api.Client, args []string, out io.Writer) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: market <id> [subresource]", errUsage)
	}

	m, err := c.Markets.Get(ctx, args[0])
	if err != nil {
		return err
	}
	if len(args) == 1 {
		return writeJSON(out, m)
	}

	var v any
	switch args[1] {
	case "activity":
		v, err = m.Activity(ctx)
	case "balance":
		v, err = m.Balance(ctx)
	case "balances":
		v, err = m.Balances(ctx)
	case "comments":
		v, err = m.Comments(ctx)
	case "graph":
		v, err = m.Graph(ctx)
	case "positions":
		v, err = m.Positions(ctx, api.PositionsOptions{})
	case "related":
		v, err = m.Related(ctx)
	default:
		return fmt.Errorf("%w: unknown market subresource %q", errUsage, args[1])
	}
	if err != nil {
		return err
	}
	return writeJSON(out, v)
}

// runMarkets walks the market listing one page at a time, stopping when the
// server reports no further page or the page limit is reached.
func runMarkets(ctx context.Context, c *api.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("markets", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	status := fs.String("status", "", "active, closed, resolved, canceled or all")
	limit := fs.Int("limit", 0, "page size")
	cursor := fs.String("cursor", "", "cursor to start from")
	pages := fs.Int("pages", 1, "maximum number of pages to fetch")
	tags := fs.String("tags", "", "comma-separated tags")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *pages < 1 {
		return fmt.Errorf("%w: -pages must be >= 1", errUsage)
	}

	opts := api.ListMarketsOptions{
		PageOptions: api.PageOptions{Limit: *limit, Cursor: *cursor},
		Status:      model.MarketStatus(*status),
	}
	if *tags != "" {
		opts.Tags = strings.Split(*tags, ",")
	}

	markets := []*api.Market{}
	for i := 0; i < *pages; i++ {
		page, err := c.Markets.List(ctx, opts)
		if err != nil {
			return err
		}
		markets = append(markets, page.Items...)
		if !page.HasNextPage() {
			break
		}
		opts.Cursor = page.EndCursor()
	}
	return writeJSON(out, markets)
}

func runUser(ctx context.Context, c *api.Client, args []string, out io.Writer) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: user <id> [subresource]", errUsage)
	}

	u, err := c.Users.Get(ctx, args[0])
	if err != nil {
		return err
	}
	if len(args) == 1 {
		return writeJSON(out, u)
	}

	var v any
	switch args[1] {
	case "balance":
		v, err = u.Balance(ctx)
	case "graph":
		v, err = u.Graph(ctx)
	case "positions":
		v, err = u.Positions(ctx, api.PositionsOptions{})
	case "stats":
		v, err = u.Stats(ctx)
	case "transactions":
		v, err = u.Transactions(ctx, api.TransactionsOptions{})
	default:
		return fmt.Errorf("%w: unknown user subresource %q", errUsage, args[1])
	}
	if err != nil {
		return err
	}
	return writeJSON(out, v)
}

func runList(ctx context.Context, c *api.Client, args []string, out io.Writer) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: list <id> [subresource]", errUsage)
	}

	l, err := c.Lists.Get(ctx, args[0])
	if err != nil {
		return err
	}
	if len(args) == 1 {
		return writeJSON(out, l)
	}

	var v any
	switch args[1] {
	case "balance":
		v, err = l.Balance(ctx)
	case "comments":
		v, err = l.Comments(ctx)
	default:
		return fmt.Errorf("%w: unknown list subresource %q", errUsage, args[1])
	}
	if err != nil {
		return err
	}
	return writeJSON(out, v)
}

func runLeaderboard(ctx context.Context, c *api.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("leaderboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	year := fs.Int("year", 0, "year, defaults to the current one")
	month := fs.Int("month", 0, "month 1-12, defaults to the current one")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	lb, err := c.Leaderboard(ctx, api.LeaderboardOptions{Year: *year, Month: *month})
	if err != nil {
		return err
	}
	return writeJSON(out, lb)
}

func oneArg(cmd string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: %s takes exactly one argument", errUsage, cmd)
	}
	return args[0], nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
