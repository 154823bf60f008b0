package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	recordsclient "pet-adoption/internal/adapters/records"
	mem "pet-adoption/internal/adapters/storage/memory"
	"pet-adoption/internal/domain/animals"
	"pet-adoption/internal/router"
)

type stack struct {
	catalog *httptest.Server
	records *httptest.Server
}

// newStack levanta records + catálogo (sembrado) conectados por HTTP.
func newStack(t *testing.T) stack {
	t.Helper()

	records := httptest.NewServer(router.NewRecordsRouter(router.RecordsOptions{}))
	t.Cleanup(records.Close)

	catalog := newCatalog(t, records.URL)
	return stack{catalog: catalog, records: records}
}

func newCatalog(t *testing.T, recordsURL string) *httptest.Server {
	t.Helper()

	repo := mem.NewAnimalRepo()
	if _, err := animals.SeedIfEmpty(context.Background(), repo, animals.DefaultCatalog()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rc, err := recordsclient.NewClient(recordsclient.Config{BaseURL: recordsURL})
	if err != nil {
		t.Fatalf("records client: %v", err)
	}

	ts := httptest.NewServer(router.NewCatalogRouter(router.CatalogOptions{
		Animals:  repo,
		Recorder: rc,
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_AdoptMusti(t *testing.T) {
	s := newStack(t)

	// 1) Musti aparece disponible
	{
		st, body := doReq(t, s.catalog.URL, "GET", "/animals", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list animals, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 6 {
			t.Fatalf("expected 6 available animals, got %d", len(items))
		}
		if items[0]["name"] != "Musti" || items[0]["status"] != "available" {
			t.Fatalf("unexpected first animal: %v", items[0])
		}
	}

	// 2) Ada adopta a Musti
	{
		st, body := doReq(t, s.catalog.URL, "POST", "/animals/1/adopt", map[string]any{
			"adopterName":  "Ada",
			"adopterEmail": "ada@example.com",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 adopt, got %d body=%s", st, string(body))
		}
		var resp struct {
			Success    bool   `json:"success"`
			Animal     string `json:"animal"`
			AdoptionID int64  `json:"adoptionId"`
		}
		_ = json.Unmarshal(body, &resp)
		if !resp.Success || resp.Animal != "Musti" || resp.AdoptionID != 1 {
			t.Fatalf("unexpected adopt response: %s", string(body))
		}
	}

	// 3) Musti queda adoptado y fuera del listado
	{
		st, body := doReq(t, s.catalog.URL, "GET", "/animals/1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get animal, got %d", st)
		}
		if !strings.Contains(string(body), `"status":"adopted"`) {
			t.Fatalf("expected adopted status, body=%s", string(body))
		}

		_, body = doReq(t, s.catalog.URL, "GET", "/animals", nil)
		if strings.Contains(string(body), `"Musti"`) {
			t.Fatalf("adopted animal still listed: %s", string(body))
		}
	}

	// 4) El registro existe en records
	{
		st, body := doReq(t, s.records.URL, "GET", "/adoptions", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list adoptions, got %d", st)
		}
		var recs []map[string]any
		_ = json.Unmarshal(body, &recs)
		if len(recs) != 1 || recs[0]["animal_name"] != "Musti" || recs[0]["status"] != "confirmed" {
			t.Fatalf("unexpected adoptions: %s", string(body))
		}
		if recs[0]["adopter_phone"] != nil {
			t.Fatalf("expected null phone, got %v", recs[0]["adopter_phone"])
		}
	}

	// 5) Segundo intento => 400 local, sin nuevo registro
	{
		st, body := doReq(t, s.catalog.URL, "POST", "/animals/1/adopt", map[string]any{
			"adopterName":  "Grace",
			"adopterEmail": "grace@example.com",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 second adopt, got %d body=%s", st, string(body))
		}
		_, body = doReq(t, s.records.URL, "GET", "/adoptions", nil)
		var recs []map[string]any
		_ = json.Unmarshal(body, &recs)
		if len(recs) != 1 {
			t.Fatalf("expected still 1 adoption, got %d", len(recs))
		}
	}
}

func TestHTTP_Catalog_NotFound(t *testing.T) {
	s := newStack(t)

	for _, path := range []string{"/animals/999", "/animals/abc"} {
		st, body := doReq(t, s.catalog.URL, "GET", path, nil)
		if st != http.StatusNotFound {
			t.Fatalf("GET %s: expected 404, got %d body=%s", path, st, string(body))
		}
	}

	st, _ := doReq(t, s.catalog.URL, "POST", "/animals/999/adopt", map[string]any{
		"adopterName":  "Ada",
		"adopterEmail": "ada@example.com",
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 adopting unknown animal, got %d", st)
	}
}

func TestHTTP_Catalog_AdoptValidation(t *testing.T) {
	s := newStack(t)

	st, _ := doReq(t, s.catalog.URL, "POST", "/animals/2/adopt", map[string]any{
		"adopterName": "Ada",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 without email, got %d", st)
	}

	req, _ := http.NewRequest("POST", s.catalog.URL+"/animals/2/adopt", strings.NewReader("{not json"))
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	_ = res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid json, got %d", res.StatusCode)
	}
}

func TestHTTP_Catalog_RecordsDown(t *testing.T) {
	down := httptest.NewServer(http.NotFoundHandler())
	url := down.URL
	down.Close()

	catalog := newCatalog(t, url)

	st, body := doReq(t, catalog.URL, "POST", "/animals/1/adopt", map[string]any{
		"adopterName":  "Ada",
		"adopterEmail": "ada@example.com",
	})
	if st != http.StatusInternalServerError {
		t.Fatalf("expected 500 with records down, got %d body=%s", st, string(body))
	}
	var resp struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Error == "" || resp.Details == "" {
		t.Fatalf("expected error and details, body=%s", string(body))
	}

	// el animal sigue disponible
	_, body = doReq(t, catalog.URL, "GET", "/animals/1", nil)
	if !strings.Contains(string(body), `"status":"available"`) {
		t.Fatalf("status changed after failure: %s", string(body))
	}
}

// Records ya tiene una adopción confirmada que el catálogo no conoce.
func TestHTTP_Catalog_RecordsRejects(t *testing.T) {
	s := newStack(t)

	st, body := doReq(t, s.records.URL, "POST", "/adoptions", map[string]any{
		"animalId":     3,
		"animalName":   "Rex",
		"adopterName":  "Linus",
		"adopterEmail": "linus@example.com",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 direct create, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, s.catalog.URL, "POST", "/animals/3/adopt", map[string]any{
		"adopterName":  "Ada",
		"adopterEmail": "ada@example.com",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 when records rejects, got %d body=%s", st, string(body))
	}

	_, body = doReq(t, s.catalog.URL, "GET", "/animals/3", nil)
	if !strings.Contains(string(body), `"status":"available"`) {
		t.Fatalf("status changed after rejection: %s", string(body))
	}
}

func TestHTTP_Records_MissingFields(t *testing.T) {
	s := newStack(t)

	st, body := doReq(t, s.records.URL, "POST", "/adoptions", map[string]any{
		"animalId":   1,
		"animalName": "Musti",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 missing fields, got %d body=%s", st, string(body))
	}
	if !strings.Contains(string(body), `"success":false`) {
		t.Fatalf("expected success=false, body=%s", string(body))
	}
}

func TestHTTP_Ambient(t *testing.T) {
	s := newStack(t)

	for _, base := range []string{s.catalog.URL, s.records.URL} {
		st, body := doReq(t, base, "GET", "/health", nil)
		if st != http.StatusOK || string(body) != "ok" {
			t.Fatalf("health: got %d %q", st, string(body))
		}

		st, _ = doReq(t, base, "GET", "/metrics", nil)
		if st != http.StatusOK {
			t.Fatalf("metrics: got %d", st)
		}

		st, body = doReq(t, base, "GET", "/swagger/doc.json", nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"swagger": "2.0"`) {
			t.Fatalf("swagger doc: got %d body=%s", st, string(body))
		}
	}

	// CORS para el frontend
	req, _ := http.NewRequest("OPTIONS", s.catalog.URL+"/animals/1/adopt", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	req.Header.Set("Access-Control-Request-Method", "POST")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	_ = res.Body.Close()
	if res.StatusCode != http.StatusNoContent || res.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("unexpected preflight: %d %v", res.StatusCode, res.Header)
	}
}

func doReq(t *testing.T, baseURL, method, path string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b
}
