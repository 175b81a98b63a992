package client

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arta-api/internal/config"
)

func TestMidtransClient_GetTransactionStatus(t *testing.T) {
	t.Parallel()

	t.Run("decodes a settlement response and keeps the raw body", func(t *testing.T) {
		var gotPath, gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"transaction_status":"settlement","status_code":"200","gross_amount":"100.00","payment_type":"qris"}`))
		}))
		defer srv.Close()

		c := NewMidtransClient(&config.Midtrans{BaseAPIURL: srv.URL, ServerKey: "sk-test"})

		status, err := c.GetTransactionStatus(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if gotPath != "/v2/order-1/status" {
			t.Fatalf("expected status path, got %s", gotPath)
		}

		wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("sk-test:"))
		if gotAuth != wantAuth {
			t.Fatalf("expected basic auth from the server key, got %q", gotAuth)
		}

		if status.TransactionStatus != "settlement" || status.PaymentType != "qris" {
			t.Fatalf("decoded fields wrong: %+v", status)
		}
		if !strings.Contains(string(status.Raw), `"transaction_status":"settlement"`) {
			t.Fatalf("raw body not preserved: %s", status.Raw)
		}
	})

	t.Run("non-2xx becomes an error carrying the body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status_message":"Transaction doesn't exist"}`))
		}))
		defer srv.Close()

		c := NewMidtransClient(&config.Midtrans{BaseAPIURL: srv.URL, ServerKey: "sk-test"})

		_, err := c.GetTransactionStatus(context.Background(), "order-404")
		if err == nil {
			t.Fatalf("expected an error")
		}
		if !strings.Contains(err.Error(), "404") || !strings.Contains(err.Error(), "Transaction doesn't exist") {
			t.Fatalf("error must carry status and body, got %v", err)
		}
	})

	t.Run("unreachable gateway", func(t *testing.T) {
		c := NewMidtransClient(&config.Midtrans{BaseAPIURL: "http://127.0.0.1:1", ServerKey: "sk-test"})

		if _, err := c.GetTransactionStatus(context.Background(), "order-1"); err == nil {
			t.Fatalf("expected a transport error")
		}
	})
}
