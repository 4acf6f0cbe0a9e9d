package cms

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		ProjectID: "proj",
		Dataset:   "production",
		Token:     token,
		APIHost:   srv.URL,
	}, srv.Client())
}

func TestQueryDecodesResultAndEncodesParams(t *testing.T) {
	var gotPath, gotQuery, gotSlug string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("query")
		gotSlug = r.URL.Query().Get("$slug")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"ms":3,"result":{"cityName":"Coppell","slug":"coppell"}}`)
	}, "")

	var city struct {
		CityName string `json:"cityName"`
		Slug     string `json:"slug"`
	}
	err := client.Query(context.Background(), Queries[QueryCityPageBySlug], map[string]any{"slug": "coppell"}, &city)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if city.CityName != "Coppell" {
		t.Fatalf("unexpected decode: %#v", city)
	}
	if gotPath != "/v2024-01-01/data/query/production" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if !strings.Contains(gotQuery, `_type == "cityPage"`) {
		t.Fatalf("expected groq query to be forwarded, got %q", gotQuery)
	}
	if gotSlug != `"coppell"` {
		t.Fatalf("expected JSON encoded param, got %q", gotSlug)
	}
}

func TestQueryNullResultIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"result":null}`)
	}, "")

	var dst map[string]any
	if err := client.Query(context.Background(), "*[0]", nil, &dst); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQueryAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"description":"expected '}' following object body","type":"queryParseError"}}`)
	}, "")

	var dst map[string]any
	err := client.Query(context.Background(), "*[", nil, &dst)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || !strings.Contains(apiErr.Description, "following object body") {
		t.Fatalf("unexpected api error %#v", apiErr)
	}
}

func TestDisabledClient(t *testing.T) {
	client := NewClient(Config{}, nil)
	if client.Enabled() {
		t.Fatal("client without project id should be disabled")
	}
	var dst any
	if err := client.Query(context.Background(), "*", nil, &dst); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := client.Mutate(context.Background(), Patch("x", nil)); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured from Mutate, got %v", err)
	}
}

func TestMutateSendsPatchWithToken(t *testing.T) {
	var auth string
	var body map[string][]map[string]map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v2024-01-01/data/mutate/production" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&body)
		io.WriteString(w, `{"transactionId":"tx1","results":[{"id":"companyInfo","operation":"update"}]}`)
	}, "tok")

	result, err := client.Mutate(context.Background(), Patch(CompanyInfoDocumentID, map[string]any{"googleRating": 4.9}))
	if err != nil {
		t.Fatalf("Mutate returned error: %v", err)
	}
	if result.TransactionID != "tx1" {
		t.Fatalf("unexpected result %#v", result)
	}
	if auth != "Bearer tok" {
		t.Fatalf("expected bearer token, got %q", auth)
	}
	patch := body["mutations"][0]["patch"]
	if patch["id"] != CompanyInfoDocumentID {
		t.Fatalf("unexpected patch body %#v", body)
	}
}

func TestMutateRequiresToken(t *testing.T) {
	client := NewClient(Config{ProjectID: "proj"}, nil)
	if _, err := client.Mutate(context.Background(), Patch("x", nil)); !errors.Is(err, ErrTokenRequired) {
		t.Fatalf("expected ErrTokenRequired, got %v", err)
	}
}

func TestBaseURLUsesCDNOnlyForAnonymousReads(t *testing.T) {
	anon := NewClient(Config{ProjectID: "abc", UseCDN: true}, nil)
	if got := anon.baseURL(anon.cfg.UseCDN && anon.cfg.Token == ""); got != "https://abc.apicdn.sanity.io/v2024-01-01" {
		t.Fatalf("unexpected cdn url %q", got)
	}
	authed := NewClient(Config{ProjectID: "abc", UseCDN: true, Token: "t"}, nil)
	if got := authed.baseURL(authed.cfg.UseCDN && authed.cfg.Token == ""); got != "https://abc.api.sanity.io/v2024-01-01" {
		t.Fatalf("unexpected api url %q", got)
	}
}
