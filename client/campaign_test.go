package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// campaignServer serves a fixed campaign product list and records the order
// updates it receives, keyed by product id.
type campaignServer struct {
	mu      sync.Mutex
	orders  map[string]int
	failFor string // product id whose order update returns 500
}

func (s *campaignServer) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet:
			w.Write([]byte(`[
				{"id":10,"campaign_id":1,"product_id":100,"order":0},
				{"id":11,"campaign_id":1,"product_id":101,"order":1},
				{"id":12,"campaign_id":1,"product_id":102,"order":2}
			]`))
		case r.Method == http.MethodPut:
			var body struct {
				Order *int `json:"order"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.NotNil(t, body.Order)

			// path: /api/admin/campaigns/1/products/{pid}/order
			parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
			pid := parts[len(parts)-2]

			s.mu.Lock()
			defer s.mu.Unlock()
			if pid == s.failFor {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"db down"}`))
				return
			}
			s.orders[pid] = *body.Order
			w.Write([]byte(`{"message":"order updated"}`))
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}
}

func TestMoveCampaignProductUpSwapsOrders(t *testing.T) {
	state := &campaignServer{orders: map[string]int{}}
	srv := httptest.NewServer(state.handler(t))
	defer srv.Close()

	client := New(NewSession(srv.URL, "tok"))
	require.NoError(t, client.MoveCampaignProductUp(context.Background(), 1, 101))

	state.mu.Lock()
	defer state.mu.Unlock()
	assert.Equal(t, 0, state.orders["101"], "target takes predecessor's order")
	assert.Equal(t, 1, state.orders["100"], "predecessor takes target's order")
}

func TestMoveCampaignProductDownSwapsOrders(t *testing.T) {
	state := &campaignServer{orders: map[string]int{}}
	srv := httptest.NewServer(state.handler(t))
	defer srv.Close()

	client := New(NewSession(srv.URL, "tok"))
	require.NoError(t, client.MoveCampaignProductDown(context.Background(), 1, 101))

	state.mu.Lock()
	defer state.mu.Unlock()
	assert.Equal(t, 2, state.orders["101"])
	assert.Equal(t, 1, state.orders["102"])
}

func TestMoveCampaignProductAtEdge(t *testing.T) {
	state := &campaignServer{orders: map[string]int{}}
	srv := httptest.NewServer(state.handler(t))
	defer srv.Close()

	client := New(NewSession(srv.URL, "tok"))

	err := client.MoveCampaignProductUp(context.Background(), 1, 100)
	assert.ErrorIs(t, err, ErrEdgeOfList)

	err = client.MoveCampaignProductDown(context.Background(), 1, 102)
	assert.ErrorIs(t, err, ErrEdgeOfList)

	state.mu.Lock()
	defer state.mu.Unlock()
	assert.Empty(t, state.orders, "no updates issued for edge moves")
}

// A failed half of the swap is reported but not rolled back, so the side
// that succeeded keeps its new order.
func TestMoveCampaignProductPartialFailureLeavesAppliedHalf(t *testing.T) {
	state := &campaignServer{orders: map[string]int{}, failFor: "100"}
	srv := httptest.NewServer(state.handler(t))
	defer srv.Close()

	client := New(NewSession(srv.URL, "tok"))
	err := client.MoveCampaignProductUp(context.Background(), 1, 101)

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)

	state.mu.Lock()
	defer state.mu.Unlock()
	assert.Equal(t, 0, state.orders["101"], "successful half applied")
	_, updated := state.orders["100"]
	assert.False(t, updated, "failed half not applied and not retried")
}
