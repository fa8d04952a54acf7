// Package api provides a client for the PlayMoney REST API.
//
// Endpoint:
//   - Production: https://api.playmoney.dev/v1
//
// Every response passes through the normalize package before it is decoded
// into the model package, so callers see one shape per resource regardless
// of which endpoint produced it or whether the request was authenticated.
//
// Single resources come back as handles (Market, User, List) that embed the
// decoded model and fetch sub-resources on demand. Nothing is cached: every
// accessor call issues exactly one GET.
//
// Listing endpoints return a Page. The caller drives pagination by passing
// Page.EndCursor back as the Cursor option while Page.HasNextPage is true.
package api
