package model

// Заказы Square (orders search API)

type Order struct {
	ID           string        `json:"id"`
	State        string        `json:"state"`
	CreatedAt    string        `json:"created_at,omitempty"`
	Tenders      []Tender      `json:"tenders,omitempty"`
	LineItems    []LineItem    `json:"line_items,omitempty"`
	TotalMoney   *Money        `json:"total_money,omitempty"`
	Fulfillments []Fulfillment `json:"fulfillments,omitempty"`
}

const (
	OrderStateOpen      = "OPEN"
	OrderStateCompleted = "COMPLETED"
	OrderStateCanceled  = "CANCELED"
	OrderStateDraft     = "DRAFT"
)

// Платежи

type Tender struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	CardDetails *CardDetails `json:"card_details,omitempty"`
}

type CardDetails struct {
	Status string `json:"status"`
}

const (
	TenderTypeCard = "CARD"
	TenderTypeCash = "CASH"

	CardStatusAuthorized = "AUTHORIZED"
	CardStatusCaptured   = "CAPTURED"
	CardStatusVoided     = "VOIDED"
	CardStatusFailed     = "FAILED"
)

// Позиции заказа

type LineItem struct {
	CatalogObjectID string `json:"catalog_object_id,omitempty"`
	Quantity        string `json:"quantity"`
	TotalMoney      *Money `json:"total_money,omitempty"`
}

// Сумма в минимальных единицах валюты (центах)
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency,omitempty"`
}

// Получатель заказа

type Fulfillment struct {
	Type          string         `json:"type,omitempty"`
	PickupDetails *PickupDetails `json:"pickup_details,omitempty"`
}

type PickupDetails struct {
	Recipient *Recipient `json:"recipient,omitempty"`
}

type Recipient struct {
	DisplayName  string `json:"display_name,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
}
