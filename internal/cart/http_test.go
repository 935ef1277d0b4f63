package cart_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Lebaba/internal/cart"
	"Lebaba/internal/catalog"
)

func newCartTS(t *testing.T) *httptest.Server {
	t.Helper()

	store := catalog.NewMemStore()
	if err := catalog.SeedDefaults(context.Background(), store); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := &cart.Server{
		Sessions: cart.NewSessions(),
		Catalog:  store,
		Log:      zap.NewNop(),
	}

	r := chi.NewRouter()
	s.Register(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func doCart(t *testing.T, method, url, session string, body any) (*http.Response, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.Header.Set(cart.SessionHeader, session)
	}

	resp, err := http.DefaultClient.Do(req)
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

func decodeView(t *testing.T, raw []byte) cart.View {
	t.Helper()

	var v cart.View
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode view: %v body=%s", err, string(raw))
	}
	return v
}

func TestCartFlow(t *testing.T) {
	ts := newCartTS(t)

	resp, raw := doCart(t, http.MethodPost, ts.URL+"/cart/items", "", map[string]any{
		"productId": 1,
		"quantity":  1,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add status=%d body=%s", resp.StatusCode, string(raw))
	}

	session := resp.Header.Get(cart.SessionHeader)
	if session == "" {
		t.Fatalf("no session header on first mutation")
	}

	resp, raw = doCart(t, http.MethodPost, ts.URL+"/cart/items", session, map[string]any{
		"productId": 1,
		"quantity":  1,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("second add status=%d", resp.StatusCode)
	}

	view := decodeView(t, raw)
	if len(view.Items) != 1 {
		t.Fatalf("items=%d want=1", len(view.Items))
	}
	if view.TotalItems != 2 {
		t.Fatalf("totalItems=%d want=2", view.TotalItems)
	}
	if view.TotalPrice != 159.98 {
		t.Fatalf("totalPrice=%v want=159.98", view.TotalPrice)
	}

	resp, raw = doCart(t, http.MethodPut, ts.URL+"/cart/items/1", session, map[string]any{
		"quantity": 0,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("set quantity status=%d", resp.StatusCode)
	}
	if view := decodeView(t, raw); len(view.Items) != 0 {
		t.Fatalf("items=%d want=0 after quantity 0", len(view.Items))
	}

	// Updating the removed line must not bring it back.
	_, raw = doCart(t, http.MethodPut, ts.URL+"/cart/items/1", session, map[string]any{
		"quantity": 3,
	})
	if view := decodeView(t, raw); view.TotalItems != 0 {
		t.Fatalf("totalItems=%d want=0 after update of absent line", view.TotalItems)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	ts := newCartTS(t)

	resp, raw := doCart(t, http.MethodPost, ts.URL+"/cart/items", "", map[string]any{
		"productId": 999,
		"quantity":  1,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d want=404 body=%s", resp.StatusCode, string(raw))
	}
}

func TestCartRemove(t *testing.T) {
	ts := newCartTS(t)

	resp, _ := doCart(t, http.MethodPost, ts.URL+"/cart/items", "", map[string]any{
		"productId": 2,
		"quantity":  1,
	})
	session := resp.Header.Get(cart.SessionHeader)

	resp, raw := doCart(t, http.MethodDelete, ts.URL+"/cart/items/2", session, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("remove status=%d", resp.StatusCode)
	}
	if view := decodeView(t, raw); len(view.Items) != 0 {
		t.Fatalf("items=%d want=0", len(view.Items))
	}

	// Removing again is a no-op.
	resp, _ = doCart(t, http.MethodDelete, ts.URL+"/cart/items/2", session, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("repeat remove status=%d", resp.StatusCode)
	}
}

func TestCartViewIsReadOnly(t *testing.T) {
	store := catalog.NewMemStore()
	if err := catalog.SeedDefaults(context.Background(), store); err != nil {
		t.Fatalf("seed: %v", err)
	}

	sessions := cart.NewSessions()
	s := &cart.Server{Sessions: sessions, Catalog: store, Log: zap.NewNop()}

	r := chi.NewRouter()
	s.Register(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	// Anonymous views must not mint sessions, however many arrive.
	for i := 0; i < 50; i++ {
		resp, raw := doCart(t, http.MethodGet, ts.URL+"/cart", "", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("view status=%d", resp.StatusCode)
		}
		if view := decodeView(t, raw); view.TotalItems != 0 {
			t.Fatalf("anonymous view not empty: %+v", view)
		}
	}
	if n := sessions.Len(); n != 0 {
		t.Fatalf("sessions after anonymous views: %d want=0", n)
	}

	// An unknown session id reads as empty without being stored either.
	resp, _ := doCart(t, http.MethodGet, ts.URL+"/cart", "no-such-session", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unknown session view status=%d", resp.StatusCode)
	}
	if n := sessions.Len(); n != 0 {
		t.Fatalf("sessions after unknown-session view: %d want=0", n)
	}

	// A mutation mints exactly one.
	resp, _ = doCart(t, http.MethodPost, ts.URL+"/cart/items", "", map[string]any{
		"productId": 1, "quantity": 1,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add status=%d", resp.StatusCode)
	}
	if n := sessions.Len(); n != 1 {
		t.Fatalf("sessions after one mutation: %d want=1", n)
	}
}

func TestCartSessionsAreIsolated(t *testing.T) {
	ts := newCartTS(t)

	respA, _ := doCart(t, http.MethodPost, ts.URL+"/cart/items", "", map[string]any{
		"productId": 1, "quantity": 1,
	})
	respB, _ := doCart(t, http.MethodPost, ts.URL+"/cart/items", "", map[string]any{
		"productId": 2, "quantity": 2,
	})

	a := respA.Header.Get(cart.SessionHeader)
	b := respB.Header.Get(cart.SessionHeader)
	if a == b {
		t.Fatalf("expected distinct sessions, both=%q", a)
	}

	_, raw := doCart(t, http.MethodGet, ts.URL+"/cart", a, nil)
	if view := decodeView(t, raw); view.TotalItems != 1 {
		t.Fatalf("session A totalItems=%d want=1", view.TotalItems)
	}

	_, raw = doCart(t, http.MethodGet, ts.URL+"/cart", b, nil)
	if view := decodeView(t, raw); view.TotalItems != 2 {
		t.Fatalf("session B totalItems=%d want=2", view.TotalItems)
	}
}

func TestCheckout(t *testing.T) {
	ts := newCartTS(t)

	resp, _ := doCart(t, http.MethodPost, ts.URL+"/cart/items", "", map[string]any{
		"productId": 1, "quantity": 2,
	})
	session := resp.Header.Get(cart.SessionHeader)

	form := map[string]any{
		"firstName":  "Ada",
		"lastName":   "Lovelace",
		"email":      "ada@example.com",
		"address":    "1 Analytical Way",
		"city":       "London",
		"postalCode": "EC1",
		"country":    "UK",
	}

	// Invalid form leaves the cart intact.
	bad := map[string]any{"firstName": "Ada"}
	resp, _ = doCart(t, http.MethodPost, ts.URL+"/checkout", session, bad)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid form status=%d", resp.StatusCode)
	}
	_, raw := doCart(t, http.MethodGet, ts.URL+"/cart", session, nil)
	if view := decodeView(t, raw); view.TotalItems != 2 {
		t.Fatalf("cart changed by failed checkout: totalItems=%d", view.TotalItems)
	}

	resp, raw = doCart(t, http.MethodPost, ts.URL+"/checkout", session, form)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("checkout status=%d body=%s", resp.StatusCode, string(raw))
	}

	var conf struct {
		Reference  string  `json:"reference"`
		TotalItems int     `json:"totalItems"`
		TotalPrice float64 `json:"totalPrice"`
	}
	if err := json.Unmarshal(raw, &conf); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if conf.Reference == "" || conf.TotalItems != 2 || conf.TotalPrice != 159.98 {
		t.Fatalf("unexpected confirmation: %+v", conf)
	}

	_, raw = doCart(t, http.MethodGet, ts.URL+"/cart", session, nil)
	if view := decodeView(t, raw); view.TotalItems != 0 || len(view.Items) != 0 {
		t.Fatalf("cart not cleared after checkout: %+v", view)
	}

	// Checking out an empty cart is rejected.
	resp, _ = doCart(t, http.MethodPost, ts.URL+"/checkout", session, form)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty checkout status=%d want=400", resp.StatusCode)
	}
}
