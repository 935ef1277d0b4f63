package storefront_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"Lebaba/internal/account"
	"Lebaba/internal/cart"
	"Lebaba/internal/catalog"
	"Lebaba/internal/storefront"
)

func newStorefrontTS(t *testing.T) *httptest.Server {
	t.Helper()

	store := catalog.NewMemStore()
	if err := catalog.SeedDefaults(context.Background(), store); err != nil {
		t.Fatalf("seed: %v", err)
	}

	deps := storefront.Deps{
		Catalog: &catalog.Server{Store: store, Log: zap.NewNop()},
		Account: &account.Server{Store: account.NewMemStore(), Log: zap.NewNop()},
		Cart: &cart.Server{
			Sessions: cart.NewSessions(),
			Catalog:  store,
			Log:      zap.NewNop(),
		},
	}

	h := storefront.NewHandler(deps, storefront.HTTPDeps{
		Log:     zap.NewNop(),
		Service: "storefront",
		// Registry: nil
	})

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, c *http.Client, method, url string, body any, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func TestStorefront_PublicAPI_HappyPath(t *testing.T) {
	ts := newStorefrontTS(t)
	c := &http.Client{}

	{
		resp, _ := doJSON(t, c, http.MethodGet, ts.URL+"/healthz", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("healthz status=%d", resp.StatusCode)
		}

		resp, _ = doJSON(t, c, http.MethodGet, ts.URL+"/readyz", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("readyz status=%d", resp.StatusCode)
		}
	}

	{
		resp, raw := doJSON(t, c, http.MethodGet, ts.URL+"/api/products/1", nil, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("get product status=%d body=%s", resp.StatusCode, string(raw))
		}

		var p catalog.Product
		if err := json.Unmarshal(raw, &p); err != nil {
			t.Fatalf("decode product: %v", err)
		}
		if p.Name != "Wireless Earbuds" || p.Price != 79.99 || p.Discount != 99.99 {
			t.Fatalf("unexpected seed product: %+v", p)
		}
	}

	{
		resp, raw := doJSON(t, c, http.MethodPost, ts.URL+"/api/users", map[string]any{
			"username": "alice",
			"password": "secret123",
			"email":    "alice@example.com",
		}, nil)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("signup status=%d body=%s", resp.StatusCode, string(raw))
		}
	}

	var session string
	{
		resp, _ := doJSON(t, c, http.MethodPost, ts.URL+"/api/cart/items", map[string]any{
			"productId": 1,
			"quantity":  1,
		}, nil)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("cart add status=%d", resp.StatusCode)
		}

		session = resp.Header.Get(cart.SessionHeader)
		if session == "" {
			t.Fatalf("no cart session header")
		}

		resp, raw := doJSON(t, c, http.MethodPost, ts.URL+"/api/cart/items", map[string]any{
			"productId": 1,
			"quantity":  1,
		}, map[string]string{cart.SessionHeader: session})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("cart add status=%d", resp.StatusCode)
		}

		var view cart.View
		if err := json.Unmarshal(raw, &view); err != nil {
			t.Fatalf("decode cart: %v body=%s", err, string(raw))
		}
		if view.TotalItems != 2 || view.TotalPrice != 159.98 {
			t.Fatalf("cart totals: items=%d price=%v", view.TotalItems, view.TotalPrice)
		}
	}

	{
		resp, raw := doJSON(t, c, http.MethodPost, ts.URL+"/api/checkout", map[string]any{
			"firstName":  "Alice",
			"lastName":   "Liddell",
			"email":      "alice@example.com",
			"address":    "4 Rabbit Hole",
			"city":       "Oxford",
			"postalCode": "OX1",
			"country":    "UK",
		}, map[string]string{cart.SessionHeader: session})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("checkout status=%d body=%s", resp.StatusCode, string(raw))
		}

		resp, raw = doJSON(t, c, http.MethodGet, ts.URL+"/api/cart", nil,
			map[string]string{cart.SessionHeader: session})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("cart view status=%d", resp.StatusCode)
		}

		var view cart.View
		if err := json.Unmarshal(raw, &view); err != nil {
			t.Fatalf("decode cart: %v", err)
		}
		if view.TotalItems != 0 {
			t.Fatalf("cart not empty after checkout: %+v", view)
		}
	}
}

func TestStorefront_SearchAndErrors(t *testing.T) {
	ts := newStorefrontTS(t)
	c := &http.Client{}

	resp, raw := doJSON(t, c, http.MethodGet, ts.URL+"/api/products/search?q=camera", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search status=%d", resp.StatusCode)
	}
	var products []catalog.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("search results=%d want=1", len(products))
	}

	resp, _ = doJSON(t, c, http.MethodGet, ts.URL+"/api/products/search?q=x", nil, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("short query status=%d want=400", resp.StatusCode)
	}

	resp, _ = doJSON(t, c, http.MethodGet, ts.URL+"/api/products/nope", nil, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad id status=%d want=400", resp.StatusCode)
	}

	resp, _ = doJSON(t, c, http.MethodGet, ts.URL+"/api/products/12345", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing id status=%d want=404", resp.StatusCode)
	}
}

func TestStorefront_CORSHeaders(t *testing.T) {
	store := catalog.NewMemStore()
	if err := catalog.SeedDefaults(context.Background(), store); err != nil {
		t.Fatalf("seed: %v", err)
	}

	deps := storefront.Deps{
		Catalog: &catalog.Server{Store: store, Log: zap.NewNop()},
		Account: &account.Server{Store: account.NewMemStore(), Log: zap.NewNop()},
		Cart:    &cart.Server{Sessions: cart.NewSessions(), Catalog: store, Log: zap.NewNop()},
	}

	h := storefront.NewHandler(deps, storefront.HTTPDeps{
		Log:           zap.NewNop(),
		Service:       "storefront",
		AllowedOrigin: "https://shop.example.com",
	})

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/products", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Origin", "https://shop.example.com")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://shop.example.com" {
		t.Fatalf("allow-origin=%q", got)
	}
}
