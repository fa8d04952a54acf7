package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

const (
	testMarketID = "cm5ifmwfo001g24d2r7fzu34u"
	testUserID   = "clzrooq660000a2uznm33y25b"
	testListID   = "clist0000000001"
)

const userJSON = `{
	"id": "clzrooq660000a2uznm33y25b",
	"username": "jgyou",
	"displayName": "JGY",
	"avatarUrl": null,
	"bio": null,
	"timezone": "America/New_York",
	"primaryAccountId": "c66cc328ef6c13d1767417889",
	"role": "USER",
	"referralCode": "J2P2",
	"referredBy": null,
	"createdAt": "2024-08-13T12:00:00.000Z",
	"updatedAt": null
}`

const marketJSON = `{
	"id": "cm5ifmwfo001g24d2r7fzu34u",
	"question": "Will it snow in Montreal on Christmas?",
	"description": "",
	"slug": "will-it-snow",
	"tags": ["weather"],
	"createdAt": "2025-01-02T10:00:00.000Z",
	"closeDate": "2025-12-25T23:59:00.000Z",
	"createdBy": "clzrooq660000a2uznm33y25b",
	"ammAccountId": "cm5ifmwfo001h24d2amm00001",
	"clearingAccountId": "cm5ifmwfo001i24d2clr00001",
	"commentCount": 0,
	"uniqueTradersCount": 2,
	"uniquePromotersCount": 0,
	"user": ` + userJSON + `,
	"options": [
		{"id": "cm5ifmwfo001j24d2opt00001", "name": "Yes", "marketId": "cm5ifmwfo001g24d2r7fzu34u", "color": "#03a9f4", "probability": 64, "liquidityProbability": 0.5, "createdAt": "2025-01-02T10:00:00.000Z", "updatedAt": "2025-01-02T10:00:00.000Z"}
	]
}`

// accountJSON is an account whose holder appears under holderKey.
func accountJSON(holderKey string) string {
	return `{"id": "c66cc328ef6c13d1767417889", "type": "USER", "userId": "clzrooq660000a2uznm33y25b", "createdAt": "2024-08-13T12:00:00.000Z", "` + holderKey + `": ` + userJSON + `}`
}

type route struct {
	status int
	body   string
}

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
}

// apiServer serves canned responses keyed by URL path.
type apiServer struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]route
	requests []recordedRequest
	handler  http.HandlerFunc
}

func newAPIServer(t *testing.T, routes map[string]route) *apiServer {
	t.Helper()
	s := &apiServer{routes: routes}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *apiServer) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
	})
	handler := s.handler
	rt, ok := s.routes[r.URL.Path]
	s.mu.Unlock()

	if handler != nil {
		handler(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "Not found"}`))
		return
	}
	status := rt.status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	w.Write([]byte(rt.body))
}

func (s *apiServer) Requests() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]recordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *apiServer) LastRequest(t *testing.T) recordedRequest {
	t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatal("no requests recorded")
	}
	return reqs[len(reqs)-1]
}

func data(body string) route {
	return route{body: `{"data": ` + body + `}`}
}
