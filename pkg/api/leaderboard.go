package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rickgao/playmoney/pkg/model"
	"github.com/rickgao/playmoney/pkg/normalize"
)

// LeaderboardOptions selects a month. Zero values mean the current month.
type LeaderboardOptions struct {
	Year  int
	Month int
}

// Leaderboard fetches the monthly rankings. When authenticated the result
// includes the caller's own rankings.
func (c *Client) Leaderboard(ctx context.Context, opts LeaderboardOptions) (*model.Leaderboard, error) {
	if opts.Month < 0 || opts.Month > 12 {
		return nil, fmt.Errorf("leaderboard: month %d out of range", opts.Month)
	}
	q := url.Values{}
	if opts.Year > 0 {
		q.Set("year", strconv.Itoa(opts.Year))
	}
	if opts.Month > 0 {
		q.Set("month", strconv.Itoa(opts.Month))
	}

	lb, err := getOne[model.Leaderboard](ctx, c, normalize.Leaderboard, "/leaderboard", q)
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}
	return lb, nil
}
