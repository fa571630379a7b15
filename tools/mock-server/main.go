// Package main implements a mock eBay API server for local development.
// It serves canned graded card listings and simulates the OAuth token,
// consent, Identity and Analytics endpoints so the relay can run end to end
// without real eBay credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// Codes and refresh tokens that the token endpoint rejects with invalid_grant.
const (
	rejectedCode         = "expired-code"
	rejectedRefreshToken = "revoked-refresh-token"
)

type browseAPIResponse struct {
	ItemSummaries []json.RawMessage `json:"itemSummaries"`
	Total         int               `json:"total"`
	Offset        int               `json:"offset"`
	Limit         int               `json:"limit"`
	Next          string            `json:"next"`
}

type itemSummary struct {
	Title         string   `json:"title"`
	BuyingOptions []string `json:"buyingOptions"`
	Price         struct {
		Value string `json:"value"`
	} `json:"price"`
}

// indexedItem is a fixture item with the fields the search filters inspect.
type indexedItem struct {
	raw     json.RawMessage
	title   string
	words   []string
	buying  []string
	price   float64
	hasCost bool
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/search_response.json", "path to search response fixture")
	callback := flag.String("callback", "http://localhost:8080/api/ebay/auth/callback", "relay callback URL used by the consent page")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "items", len(fixture.ItemSummaries))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock eBay server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, fixture, *callback)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, fixture *browseAPIResponse, callback string) *http.ServeMux {
	var calls atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("POST /identity/v1/oauth2/token", tokenHandler(logger))
	mux.HandleFunc("GET /oauth2/authorize", authorizeHandler(logger, callback))
	mux.HandleFunc("GET /buy/browse/v1/item_summary/search", countCalls(&calls, searchHandler(logger, fixture)))
	mux.HandleFunc("GET /commerce/identity/v1/user/", identityHandler(logger))
	mux.HandleFunc("GET /developer/analytics/v1_beta/rate_limit/", rateLimitHandler(&calls))
	return mux
}

func loadFixture(path string) (*browseAPIResponse, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var resp browseAPIResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &resp, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func countCalls(n *atomic.Int64, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n.Add(1)
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func oauthError(w http.ResponseWriter, status int, code, desc string) {
	writeJSON(w, status, map[string]string{
		"error":             code,
		"error_description": desc,
	})
}

func mockToken(prefix string) string {
	return prefix + "-v1-" + strconv.FormatInt(time.Now().UnixNano(), 16)
}

func tokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Basic Auth must be present; the credentials themselves are not checked.
		if _, _, ok := r.BasicAuth(); !ok {
			logger.Warn("token request missing Basic Auth header")
			oauthError(w, http.StatusUnauthorized, "invalid_client", "client authentication failed")
			return
		}
		if err := r.ParseForm(); err != nil {
			oauthError(w, http.StatusBadRequest, "invalid_request", "malformed form body")
			return
		}

		grant := r.PostForm.Get("grant_type")
		switch grant {
		case "client_credentials":
			writeJSON(w, http.StatusOK, map[string]any{
				"access_token": mockToken("mock-app-token"),
				"expires_in":   7200,
				"token_type":   "Application Access Token",
			})

		case "authorization_code":
			code := r.PostForm.Get("code")
			if code == "" || code == rejectedCode {
				oauthError(w, http.StatusBadRequest, "invalid_grant",
					"the provided authorization grant code is invalid or was issued to another client")
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"access_token":             mockToken("mock-user-token"),
				"expires_in":               7200,
				"refresh_token":            mockToken("mock-refresh-token"),
				"refresh_token_expires_in": 47304000,
				"token_type":               "User Access Token",
			})

		case "refresh_token":
			rt := r.PostForm.Get("refresh_token")
			if rt == "" || rt == rejectedRefreshToken {
				oauthError(w, http.StatusBadRequest, "invalid_grant",
					"the provided authorization refresh token is invalid or was issued to another client")
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"access_token": mockToken("mock-user-token"),
				"expires_in":   7200,
				"token_type":   "User Access Token",
			})

		default:
			oauthError(w, http.StatusBadRequest, "unsupported_grant_type",
				"grant type "+strconv.Quote(grant)+" is not supported")
			return
		}

		logger.Info("issued mock token", "grant_type", grant)
	}
}

// authorizeHandler stands in for the consent page: it approves immediately
// and redirects back to the relay callback with a fresh code.
func authorizeHandler(logger *slog.Logger, callback string) http.HandlerFunc {
	var seq atomic.Int64
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("client_id") == "" || q.Get("response_type") != "code" {
			http.Error(w, "client_id and response_type=code are required", http.StatusBadRequest)
			return
		}

		target, err := url.Parse(callback)
		if err != nil {
			http.Error(w, "invalid callback URL", http.StatusInternalServerError)
			return
		}
		params := url.Values{}
		params.Set("code", "mock-code-"+strconv.FormatInt(seq.Add(1), 10))
		if state := q.Get("state"); state != "" {
			params.Set("state", state)
		}
		target.RawQuery = params.Encode()

		logger.Info("consent approved", "scope", q.Get("scope"))
		http.Redirect(w, r, target.String(), http.StatusFound)
	}
}

func identityHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"errors": []map[string]any{{"errorId": 1001, "message": "Invalid access token"}},
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"userId":                    "mock-ebay-user",
			"username":                  "mock_collector",
			"accountType":               "INDIVIDUAL",
			"registrationMarketplaceId": "EBAY_US",
			"individualAccount": map[string]string{
				"firstName": "Mock",
				"lastName":  "Collector",
				"email":     "collector@example.com",
			},
		})
		logger.Info("served identity")
	}
}

// rateLimitHandler reports a 5000 call daily Browse quota, consumed by the
// searches this server has answered.
func rateLimitHandler(calls *atomic.Int64) http.HandlerFunc {
	const limit = 5000
	return func(w http.ResponseWriter, _ *http.Request) {
		now := time.Now().UTC()
		reset := time.Date(now.Year(), now.Month(), now.Day()+1, 7, 0, 0, 0, time.UTC)
		count := calls.Load()

		writeJSON(w, http.StatusOK, map[string]any{
			"rateLimits": []map[string]any{{
				"apiContext": "buy",
				"apiName":    "Browse",
				"apiVersion": "v1",
				"resources": []map[string]any{{
					"name": "buy.browse",
					"rates": []map[string]any{{
						"count":      count,
						"limit":      limit,
						"remaining":  max(limit-count, 0),
						"reset":      reset.Format(time.RFC3339),
						"timeWindow": 86400,
					}},
				}},
			}},
		})
	}
}

func indexItems(fixture *browseAPIResponse) []indexedItem {
	items := make([]indexedItem, 0, len(fixture.ItemSummaries))
	for _, raw := range fixture.ItemSummaries {
		var s itemSummary
		//nolint:errcheck,gosec // fixture data is trusted; field extraction is best-effort
		json.Unmarshal(raw, &s)
		title := strings.ToLower(s.Title)
		price, err := strconv.ParseFloat(s.Price.Value, 64)
		items = append(items, indexedItem{
			raw:     raw,
			title:   title,
			words:   strings.Fields(title),
			buying:  s.BuyingOptions,
			price:   price,
			hasCost: err == nil,
		})
	}
	return items
}

func searchHandler(logger *slog.Logger, fixture *browseAPIResponse) http.HandlerFunc {
	items := indexItems(fixture)

	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		q := strings.ToLower(query.Get("q"))
		aspects := parseAspectFilter(query.Get("aspect_filter"))
		std := parseStandardFilter(query.Get("filter"))

		limit := 50
		if v, err := strconv.Atoi(query.Get("limit")); err == nil && v > 0 {
			limit = v
		}
		offset := 0
		if v, err := strconv.Atoi(query.Get("offset")); err == nil && v >= 0 {
			offset = v
		}

		var matched []json.RawMessage
		for i := range items {
			if matchesQuery(&items[i], q) && matchesAspects(&items[i], aspects) && std.matches(&items[i]) {
				matched = append(matched, items[i].raw)
			}
		}

		total := len(matched)

		if offset >= len(matched) {
			matched = nil
		} else {
			end := min(offset+limit, len(matched))
			matched = matched[offset:end]
		}

		next := ""
		if offset+limit < total {
			nq := url.Values{}
			for k, v := range query {
				nq[k] = v
			}
			nq.Set("offset", strconv.Itoa(offset+limit))
			nq.Set("limit", strconv.Itoa(limit))
			next = "/buy/browse/v1/item_summary/search?" + nq.Encode()
		}

		resp := browseAPIResponse{
			ItemSummaries: matched,
			Total:         total,
			Offset:        offset,
			Limit:         limit,
			Next:          next,
		}
		if resp.ItemSummaries == nil {
			resp.ItemSummaries = []json.RawMessage{}
		}

		writeJSON(w, http.StatusOK, resp)
		logger.Info("search", "query", q, "matched", total, "returned", len(resp.ItemSummaries), "offset", offset, "limit", limit)
	}
}

// matchesQuery requires every query word to appear in the title.
func matchesQuery(item *indexedItem, q string) bool {
	for _, word := range strings.Fields(q) {
		if !strings.Contains(item.title, word) {
			return false
		}
	}
	return true
}

// matchesAspects checks the grader, grade and speciality clauses against the
// title. Fixture titles carry the grader followed by the grade, so an item
// matches a grade when that exact word appears. The category, card type and
// graded clauses hold for every fixture item and are ignored.
func matchesAspects(item *indexedItem, aspects map[string][]string) bool {
	if graders, ok := aspects["Professional Grader"]; ok && !anyWord(item.words, graders) {
		return false
	}
	if grades, ok := aspects["Grade"]; ok && !anyWord(item.words, grades) {
		return false
	}
	if tags, ok := aspects["Speciality"]; ok {
		found := false
		for _, tag := range tags {
			if strings.Contains(item.title, strings.ToLower(tag)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func anyWord(words, values []string) bool {
	for _, v := range values {
		v = strings.ToLower(v)
		for _, w := range words {
			if w == v {
				return true
			}
		}
	}
	return false
}

// parseAspectFilter reads "categoryId:<id>,<name>:{v1|v2},..." into a map of
// aspect name to values. Escaped pipes ("\|") stay inside their value.
func parseAspectFilter(s string) map[string][]string {
	out := make(map[string][]string)
	for _, clause := range splitClauses(s) {
		name, rest, ok := strings.Cut(clause, ":")
		if !ok || !strings.HasPrefix(rest, "{") || !strings.HasSuffix(rest, "}") {
			continue
		}
		out[name] = splitValues(rest[1 : len(rest)-1])
	}
	return out
}

// splitClauses splits on commas that are not inside braces.
func splitClauses(s string) []string {
	var (
		clauses []string
		depth   int
		start   int
	)
	for i := range len(s) {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				clauses = append(clauses, s[start:i])
				start = i + 1
			}
		}
	}
	if start < len(s) {
		clauses = append(clauses, s[start:])
	}
	return clauses
}

func splitValues(s string) []string {
	var (
		values []string
		cur    strings.Builder
	)
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '|':
			cur.WriteByte('|')
			i++
		case s[i] == '|':
			values = append(values, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(s[i])
		}
	}
	return append(values, cur.String())
}

// standardFilter is the subset of the Browse filter parameter the mock honors.
type standardFilter struct {
	min, max *float64
	buying   []string
}

// parseStandardFilter reads "price:[lo..hi],priceCurrency:USD,buyingOptions:{A|B}".
func parseStandardFilter(s string) standardFilter {
	var f standardFilter
	for _, clause := range splitClauses(s) {
		name, rest, ok := strings.Cut(clause, ":")
		if !ok {
			continue
		}
		switch name {
		case "price":
			lo, hi, found := strings.Cut(strings.Trim(rest, "[]"), "..")
			if !found {
				continue
			}
			if v, err := strconv.ParseFloat(lo, 64); err == nil {
				f.min = &v
			}
			if v, err := strconv.ParseFloat(hi, 64); err == nil {
				f.max = &v
			}
		case "buyingOptions":
			f.buying = splitValues(strings.Trim(rest, "{}"))
		}
	}
	return f
}

func (f standardFilter) matches(item *indexedItem) bool {
	if f.min != nil || f.max != nil {
		if !item.hasCost {
			return false
		}
		if f.min != nil && item.price < *f.min {
			return false
		}
		if f.max != nil && item.price > *f.max {
			return false
		}
	}
	if len(f.buying) > 0 {
		for _, want := range f.buying {
			for _, have := range item.buying {
				if want == have {
					return true
				}
			}
		}
		return false
	}
	return true
}
