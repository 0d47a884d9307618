package squareclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/iurnickita/salesreport/internal/model"
	"github.com/iurnickita/salesreport/internal/squareclient/config"
)

// JSON запрос orders search
type searchRequest struct {
	LocationIDs []string    `json:"location_ids"`
	Query       searchQuery `json:"query"`
	Cursor      string      `json:"cursor,omitempty"`
}

type searchQuery struct {
	Filter searchFilter `json:"filter"`
}

type searchFilter struct {
	DateTimeFilter dateTimeFilter `json:"date_time_filter"`
}

type dateTimeFilter struct {
	CreatedAt timeRange `json:"created_at"`
}

type timeRange struct {
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
}

// JSON ответ orders search
type searchResponse struct {
	Orders []model.Order `json:"orders"`
	Cursor string        `json:"cursor"`
}

type SquareClient interface {
	SearchOrders(locationID string, date string) ([]model.Order, error)
}

type squareClient struct {
	addr   string
	token  string
	zaplog *zap.Logger
}

func NewSquareClient(cfg config.Config, zaplog *zap.Logger) SquareClient {
	return squareClient{addr: cfg.Addr, token: cfg.Token, zaplog: zaplog}
}

// Границы суток фиксированы в поясе UTC-5
const (
	dayStartSuffix = "T00:00:00-05:00"
	dayEndSuffix   = "T23:59:59-05:00"
)

// SearchOrders возвращает все заказы локации за календарные сутки date,
// проходя по страницам через cursor до последней
func (client squareClient) SearchOrders(locationID string, date string) ([]model.Order, error) {
	const path = "/v2/orders/search"

	body := searchRequest{
		LocationIDs: []string{locationID},
		Query: searchQuery{
			Filter: searchFilter{
				DateTimeFilter: dateTimeFilter{
					CreatedAt: timeRange{
						StartAt: date + dayStartSuffix,
						EndAt:   date + dayEndSuffix,
					},
				},
			},
		},
	}

	var orders []model.Order
	for page := 1; ; page++ {
		setreq := resty.New().R()
		setreq.Method = http.MethodPost
		setreq.URL = client.addr + path
		setreq.SetAuthToken(client.token)
		setreq.SetBody(body)
		setresp, err := setreq.Send()
		if err != nil {
			return nil, err
		}

		if setresp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("orders search status: %d", setresp.StatusCode())
		}

		var searchResp searchResponse
		if err := json.Unmarshal(setresp.Body(), &searchResp); err != nil {
			return nil, err
		}
		orders = append(orders, searchResp.Orders...)

		client.zaplog.Debug("orders search page",
			zap.Int("page", page),
			zap.Int("orders", len(searchResp.Orders)),
			zap.Bool("more", searchResp.Cursor != ""),
		)

		if searchResp.Cursor == "" {
			break
		}
		body.Cursor = searchResp.Cursor
	}

	return orders, nil
}
