package model

// PageInfo is the cursor metadata of a paginated response.
type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor,omitempty"`
	Total       int    `json:"total"`
}

func (p PageInfo) Validate() error {
	return checkNonNegative("PageInfo", "total", p.Total)
}
