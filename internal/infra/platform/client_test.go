//go:build unit

package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"washbay/internal/domain/billing"
	"washbay/internal/domain/booking"
	"washbay/internal/infra"
	"washbay/internal/pkg/config"
	"washbay/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(srv *httptest.Server) *Client {
	return NewClient(config.PlatformConfig{
		BaseURL:           srv.URL,
		AccessToken:       "test-token",
		LocationID:        "LTEST",
		Timeout:           5 * time.Second,
		RequestsPerSecond: 1000,
		RequestBurst:      1000,
	})
}

func TestScanBookings_FollowsPagination(t *testing.T) {
	var gotQueries []map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/bookings", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		q := r.URL.Query()
		gotQueries = append(gotQueries, map[string]string{
			"location_id":  q.Get("location_id"),
			"start_at_min": q.Get("start_at_min"),
			"cursor":       q.Get("cursor"),
		})

		w.Header().Set("Content-Type", "application/json")
		if q.Get("cursor") == "" {
			_, _ = w.Write([]byte(`{
				"bookings": [
					{"id": "B1", "status": "no_show", "version": 2,
					 "start_at": "2024-06-01T10:00:00Z",
					 "customer_id": "cust_1",
					 "seller_note": "Card ID: card_abc",
					 "appointment_segments": [{"service_variation_id": "var_wash", "duration_minutes": 60}]}
				],
				"cursor": "page2"
			}`))
			return
		}
		_, _ = w.Write([]byte(`{
			"bookings": [
				{"id": "B2", "status": "ACCEPTED", "version": 1,
				 "start_at": "2024-06-01T12:00:00Z",
				 "creator_details": {"customer_id": "cust_2"}}
			]
		}`))
	}))
	defer srv.Close()

	startMin := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)
	startMax := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)

	var seen []booking.Booking
	err := testClient(srv).ScanBookings(context.Background(), "LTEST", startMin, startMax,
		func(b booking.Booking) error {
			seen = append(seen, b)
			return nil
		})
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, "B1", seen[0].ID)
	assert.Equal(t, booking.StatusNoShow, seen[0].Status, "status must be normalized to upper case")
	assert.Equal(t, "cust_1", seen[0].CustomerID)
	require.Len(t, seen[0].LineItems, 1)
	assert.Equal(t, "var_wash", seen[0].LineItems[0].ServiceVariationID)
	assert.Equal(t, time.Hour, seen[0].LineItems[0].Duration)

	assert.Equal(t, "B2", seen[1].ID)
	assert.Equal(t, "cust_2", seen[1].CustomerID, "customer id must fall back to creator_details")

	require.Len(t, gotQueries, 2)
	assert.Equal(t, "LTEST", gotQueries[0]["location_id"])
	assert.Equal(t, "2024-05-03T10:00:00Z", gotQueries[0]["start_at_min"])
	assert.Equal(t, "", gotQueries[0]["cursor"])
	assert.Equal(t, "page2", gotQueries[1]["cursor"])
}

func TestScanBookings_CallbackErrorAbortsScan(t *testing.T) {
	pages := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		pages++
		_, _ = w.Write([]byte(`{"bookings": [{"id": "B1"}], "cursor": "more"}`))
	}))
	defer srv.Close()

	wantErr := assert.AnError
	err := testClient(srv).ScanBookings(context.Background(), "LTEST", time.Now(), time.Now(),
		func(booking.Booking) error { return wantErr })

	require.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, pages)
}

func TestUpdateSellerNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/v2/bookings/B1", r.URL.Path)

		var body struct {
			Booking struct {
				SellerNote string `json:"seller_note"`
				Version    int64  `json:"version"`
			} `json:"booking"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Card ID: card_abc", body.Booking.SellerNote)
		assert.Equal(t, int64(3), body.Booking.Version)

		_, _ = w.Write([]byte(`{"booking": {"id": "B1", "version": 4}}`))
	}))
	defer srv.Close()

	err := testClient(srv).UpdateSellerNote(context.Background(), "B1", 3, "Card ID: card_abc")
	require.NoError(t, err)
}

func TestUpdateSellerNote_StaleVersionIsConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"errors": [{"category": "INVALID_REQUEST_ERROR", "code": "VERSION_MISMATCH", "detail": "stale version"}]}`))
	}))
	defer srv.Close()

	err := testClient(srv).UpdateSellerNote(context.Background(), "B1", 3, "note")
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindConflict))
	assert.Contains(t, err.Error(), "stale version")
}

func TestCreatePayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/payments", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "key-123", body["idempotency_key"])
		assert.Equal(t, "card_abc", body["source_id"])
		amount := body["amount_money"].(map[string]any)
		assert.Equal(t, float64(6000), amount["amount"])
		assert.Equal(t, "USD", amount["currency"])

		_, _ = w.Write([]byte(`{"payment": {"id": "pay_123", "status": "COMPLETED"}}`))
	}))
	defer srv.Close()

	paymentID, err := testClient(srv).CreatePayment(context.Background(), commands.ChargeRequest{
		IdempotencyKey: "key-123",
		SourceID:       "card_abc",
		CustomerID:     "cust_1",
		ReferenceID:    "B1",
		Amount:         billing.NewMoney(6000, "USD"),
	})
	require.NoError(t, err)
	assert.Equal(t, "pay_123", paymentID)
}

func TestCreatePayment_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors": [{"category": "AUTHENTICATION_ERROR", "code": "UNAUTHORIZED"}]}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).CreatePayment(context.Background(), commands.ChargeRequest{})
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindUnauthorized))
}

func TestCreatePayment_MissingIDIsBadResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"payment": {}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).CreatePayment(context.Background(), commands.ChargeRequest{})
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindBadResponse))
}

func TestGetVariationPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/catalog/object/var_wash", r.URL.Path)
		_, _ = w.Write([]byte(`{"object": {"id": "var_wash", "type": "ITEM_VARIATION",
			"item_variation_data": {"name": "Deluxe Wash", "price_money": {"amount": 20000, "currency": "USD"}}}}`))
	}))
	defer srv.Close()

	price, err := testClient(srv).GetVariationPrice(context.Background(), "var_wash")
	require.NoError(t, err)
	assert.Equal(t, billing.NewMoney(20000, "USD"), price)
}

func TestGetVariationPrice_UnpricedVariation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"object": {"id": "var_wash", "type": "ITEM_VARIATION",
			"item_variation_data": {"name": "Deluxe Wash"}}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).GetVariationPrice(context.Background(), "var_wash")
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindBadResponse))
	assert.Contains(t, err.Error(), "has no price")
}
