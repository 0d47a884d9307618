package squareclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iurnickita/salesreport/internal/model"
	"github.com/iurnickita/salesreport/internal/squareclient/config"
)

func TestSearchOrdersPagination(t *testing.T) {
	const (
		locationID = "LOC1"
		date       = "2025-10-13"
	)

	var requests []searchRequest
	var auths []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		json.NewDecoder(r.Body).Decode(&req)
		requests = append(requests, req)
		auths = append(auths, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		if req.Cursor == "" {
			// Первая страница с курсором на продолжение
			json.NewEncoder(w).Encode(searchResponse{
				Orders: []model.Order{{ID: "1"}, {ID: "2"}},
				Cursor: "page2",
			})
		} else {
			// Последняя страница без курсора
			json.NewEncoder(w).Encode(searchResponse{
				Orders: []model.Order{{ID: "3"}},
			})
		}
	}))
	defer srv.Close()

	client := NewSquareClient(config.Config{
		Addr:       srv.URL,
		Token:      "test-token",
		LocationID: locationID,
	}, zap.NewNop())

	orders, err := client.SearchOrders(locationID, date)
	require.NoError(t, err)

	// Все страницы собраны в порядке прихода
	require.Len(t, orders, 3)
	require.Equal(t, "1", orders[0].ID)
	require.Equal(t, "2", orders[1].ID)
	require.Equal(t, "3", orders[2].ID)

	require.Len(t, requests, 2)
	require.Equal(t, []string{locationID}, requests[0].LocationIDs)
	require.Equal(t, date+"T00:00:00-05:00", requests[0].Query.Filter.DateTimeFilter.CreatedAt.StartAt)
	require.Equal(t, date+"T23:59:59-05:00", requests[0].Query.Filter.DateTimeFilter.CreatedAt.EndAt)
	require.Equal(t, "page2", requests[1].Cursor)
	require.Equal(t, "Bearer test-token", auths[0])
	require.Equal(t, "Bearer test-token", auths[1])
}

func TestSearchOrdersStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewSquareClient(config.Config{Addr: srv.URL, Token: "test-token"}, zap.NewNop())

	_, err := client.SearchOrders("LOC1", "2025-10-13")
	require.Error(t, err)
	require.Contains(t, err.Error(), "orders search status: 500")
}

func TestSearchOrdersTransportError(t *testing.T) {
	// Сервер закрыт до запроса
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewSquareClient(config.Config{Addr: srv.URL, Token: "test-token"}, zap.NewNop())

	_, err := client.SearchOrders("LOC1", "2025-10-13")
	require.Error(t, err)
}
