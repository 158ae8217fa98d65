package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/protodiagram/pkg/errors"
	"github.com/matzehuels/protodiagram/pkg/pipeline"
	"github.com/matzehuels/protodiagram/pkg/store"
)

const tcpJSON = `{
  "config": {"bit": 16, "style": "ascii", "header": "none"},
  "fields": [
    {"name": "Source Port", "bits": 16},
    {"name": "Checksum", "bits": 8},
    {"name": "Flags", "bits": 8}
  ]
}`

const tcpText = `+-------------------------------+
|          Source Port          |
+---------------+---------------+
|   Checksum    |     Flags     |
+---------------+---------------+`

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var e errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&e); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return e
}

func TestHealth(t *testing.T) {
	rec := do(t, New(nil, nil, nil).Handler(), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRenderText(t *testing.T) {
	rec := do(t, New(nil, nil, nil).Handler(), http.MethodPost, "/render", tcpJSON)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/plain") {
		t.Errorf("Content-Type = %q", got)
	}
	if got := rec.Body.String(); got != tcpText {
		t.Errorf("body =\n%s\nwant\n%s", got, tcpText)
	}
}

func TestRenderSVG(t *testing.T) {
	rec := do(t, New(nil, nil, nil).Handler(), http.MethodPost, "/render?format=svg", tcpJSON)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/svg+xml" {
		t.Errorf("Content-Type = %q", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "<svg") {
		t.Errorf("body does not start with <svg: %.40s", rec.Body.String())
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		code   errors.Code
	}{
		{"bad format", "/render?format=png", tcpJSON, errors.ErrCodeInvalidFormat},
		{"malformed json", "/render", `{"fields": [`, errors.ErrCodeInvalidInput},
		{"unknown key", "/render", `{"colour": "red"}`, errors.ErrCodeInvalidInput},
		{"bad style", "/render", `{"config": {"style": "fancy"}}`, errors.ErrCodeInvalidStyle},
		{"negative width", "/render", `{"fields": [{"name": "x", "bits": -1}]}`, errors.ErrCodeInvalidField},
		{"too many rows", "/render", `{"config": {"bit": 1}, "fields": [{"name": "x", "bits": 65536}]}`, errors.ErrCodeInvalidInput},
	}
	h := New(nil, nil, nil).Handler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.target, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if e := decodeError(t, rec); e.Code != tt.code {
				t.Errorf("code = %s, want %s (%s)", e.Code, tt.code, e.Message)
			}
		})
	}
}

func TestRenderCacheHeader(t *testing.T) {
	runner := pipeline.NewRunner(newTestCache(), nil, nil)
	h := New(runner, nil, nil).Handler()

	first := do(t, h, http.MethodPost, "/render", tcpJSON)
	second := do(t, h, http.MethodPost, "/render", tcpJSON)
	if first.Header().Get("X-Cache") != "MISS" || second.Header().Get("X-Cache") != "HIT" {
		t.Errorf("X-Cache = %q, %q; want MISS, HIT", first.Header().Get("X-Cache"), second.Header().Get("X-Cache"))
	}
	if first.Header().Get("ETag") == "" || first.Header().Get("ETag") != second.Header().Get("ETag") {
		t.Error("ETag should be set and stable")
	}
}

func TestDiagramLifecycle(t *testing.T) {
	st := store.NewMemoryStore()
	h := New(nil, st, nil).Handler()

	if rec := do(t, h, http.MethodGet, "/diagrams/tcp", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("GET missing: status = %d, want 404", rec.Code)
	} else if e := decodeError(t, rec); e.Code != errors.ErrCodeNotFound {
		t.Errorf("GET missing: code = %s", e.Code)
	}

	rec := do(t, h, http.MethodPut, "/diagrams/tcp", tcpJSON)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT: status = %d, body %s", rec.Code, rec.Body)
	}

	rec = do(t, h, http.MethodGet, "/diagrams/tcp", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET: status = %d", rec.Code)
	}
	var got store.Record
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.ID != "tcp" || len(got.Document.Fields) != 3 || got.Document.Config.Bit != 16 {
		t.Errorf("GET record = %+v", got)
	}

	rec = do(t, h, http.MethodGet, "/diagrams/tcp/render", "")
	if rec.Code != http.StatusOK || rec.Body.String() != tcpText {
		t.Errorf("render stored: status = %d, body =\n%s", rec.Code, rec.Body)
	}

	rec = do(t, h, http.MethodGet, "/diagrams", "")
	var list listResponse
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if len(list.IDs) != 1 || list.IDs[0] != "tcp" {
		t.Errorf("list = %v, want [tcp]", list.IDs)
	}

	if rec := do(t, h, http.MethodDelete, "/diagrams/tcp", ""); rec.Code != http.StatusNoContent {
		t.Errorf("DELETE: status = %d, want 204", rec.Code)
	}
	if rec := do(t, h, http.MethodDelete, "/diagrams/tcp", ""); rec.Code != http.StatusNotFound {
		t.Errorf("DELETE missing: status = %d, want 404", rec.Code)
	}
}

func TestPutRejectsBadInput(t *testing.T) {
	h := New(nil, nil, nil).Handler()

	rec := do(t, h, http.MethodPut, "/diagrams/a..b", tcpJSON)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if e := decodeError(t, rec); e.Code != errors.ErrCodeInvalidID {
		t.Errorf("code = %s, want INVALID_ID", e.Code)
	}

	if rec := do(t, h, http.MethodPut, "/diagrams/ok", `not json`); rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d, want 400", rec.Code)
	}
}

func TestStoreFailureIsInternal(t *testing.T) {
	h := New(nil, failingStore{store.NewMemoryStore()}, nil).Handler()
	rec := do(t, h, http.MethodGet, "/diagrams", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	e := decodeError(t, rec)
	if e.Code != errors.ErrCodeInternal || e.Message != "internal error" {
		t.Errorf("error = %+v", e)
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(nil, nil, nil).ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

type failingStore struct{ store.Store }

func (failingStore) List(context.Context) ([]string, error) {
	return nil, context.DeadlineExceeded
}

type testCache struct{ data map[string][]byte }

func newTestCache() *testCache { return &testCache{data: map[string][]byte{}} }

func (c *testCache) Get(_ context.Context, k string) ([]byte, bool, error) {
	v, ok := c.data[k]
	return v, ok, nil
}
func (c *testCache) Set(_ context.Context, k string, v []byte, _ time.Duration) error {
	c.data[k] = v
	return nil
}
func (c *testCache) Delete(_ context.Context, k string) error { delete(c.data, k); return nil }
func (c *testCache) Close() error                             { return nil }
