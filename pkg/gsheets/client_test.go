package gsheets_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"classroom-occupancy/pkg/gsheets"
)

func TestSheetsClientInit(t *testing.T) {
	// Constructing fake credentials for local parsing flows
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Initialize with broken JWT/OAuth config", func(t *testing.T) {
		_, err := gsheets.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		// Native oauth load requires token.json
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := gsheets.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from installed app config bad token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"broken": true`), 0644)
		defer os.Remove("token.json")

		_, err := gsheets.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp("", "creds.json")
		defer os.Remove(tmpFile.Name())
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		_, err := gsheets.NewClientFromCredentialsFile(context.Background(), tmpFile.Name())
		if err == nil {
			t.Fatalf("expected broken file credentials to fail")
		}
	})

	t.Run("Initialize from missing File", func(t *testing.T) {
		_, err := gsheets.NewClientFromCredentialsFile(context.Background(), "/nonexistent/creds.json")
		if err == nil {
			t.Fatalf("expected missing file to fail")
		}
	})
}

func TestFetchTable(t *testing.T) {
	newServer := func(t *testing.T, values [][]interface{}) *httptest.Server {
		t.Helper()
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.URL.Path, "/values/") {
				http.NotFound(w, r)
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"range":  "Sheet1!A1:D",
				"values": values,
			})
		}))
	}

	newClient := func(t *testing.T, srv *httptest.Server) *gsheets.Client {
		t.Helper()
		httpClient := &http.Client{Transport: &rewriteTransport{base: http.DefaultTransport, host: strings.TrimPrefix(srv.URL, "http://")}}
		client, err := gsheets.NewClientFromHTTP(context.Background(), httpClient)
		if err != nil {
			t.Fatalf("failed to build client: %v", err)
		}
		return client
	}

	t.Run("Header and rows mapped", func(t *testing.T) {
		srv := newServer(t, [][]interface{}{
			{"Days", "Class_Times", "Hall"},
			{"MWF", "9:00-10:30", "A-101"},
			{"TT", "ONLINE"},
		})
		defer srv.Close()

		table, err := newClient(t, srv).FetchTable(context.Background(), "sheet-id", "Sheet1!A1:D")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantCols := []string{"Days", "Class_Times", "Hall"}
		for i, c := range wantCols {
			if table.Columns[i] != c {
				t.Errorf("column %d: expected %q, got %q", i, c, table.Columns[i])
			}
		}
		if len(table.Rows) != 2 {
			t.Fatalf("expected 2 data rows, got %d", len(table.Rows))
		}
		// Short row padded to header width
		if got := table.Rows[1][2]; got != "" {
			t.Errorf("expected short row padding, got %q", got)
		}
	})

	t.Run("Numeric cells formatted", func(t *testing.T) {
		srv := newServer(t, [][]interface{}{
			{"Days", "Class_Times", "Hall"},
			{"MWF", "9:00-10:30", 101},
		})
		defer srv.Close()

		table, err := newClient(t, srv).FetchTable(context.Background(), "sheet-id", "Sheet1!A1:D")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := table.Rows[0][2]; got != "101" {
			t.Errorf("expected formatted numeric cell, got %q", got)
		}
	})

	t.Run("Empty range", func(t *testing.T) {
		srv := newServer(t, nil)
		defer srv.Close()

		_, err := newClient(t, srv).FetchTable(context.Background(), "sheet-id", "Sheet1!A1:D")
		if err == nil {
			t.Fatalf("expected empty range error")
		}
	})
}

type rewriteTransport struct {
	base http.RoundTripper
	host string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.host
	return t.base.RoundTrip(req)
}
