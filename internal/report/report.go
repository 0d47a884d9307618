package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/iurnickita/salesreport/internal/model"
	"github.com/iurnickita/salesreport/internal/report/config"
)

// Причины пропуска заказа
var (
	ErrDraftOrder  = errors.New("draft order")
	ErrNoTenders   = errors.New("no tenders")
	ErrNotCaptured = errors.New("no captured card payment")
	ErrNoCreatedAt = errors.New("no creation timestamp")
	ErrNothingSold = errors.New("no product or donation items")
)

var skipErrors = []error{ErrDraftOrder, ErrNoTenders, ErrNotCaptured, ErrNoCreatedAt, ErrNothingSold}

// Строка отчета. Денежные суммы хранятся в центах
type Row struct {
	Timestamp     time.Time
	Customer      string
	Email         string
	Phone         string
	Products      int
	DonationCents int64
	TotalCents    int64
}

// Итоги по выведенным строкам
type Summary struct {
	OrderCount         int
	TotalProducts      int
	TotalDonationCents int64
	TotalSalesCents    int64
}

type Report struct {
	cfg    config.Config
	out    io.Writer
	zaplog *zap.Logger
	loc    *time.Location
}

const localZone = "America/Chicago"

func NewReport(cfg config.Config, out io.Writer, zaplog *zap.Logger) (*Report, error) {
	loc, err := time.LoadLocation(localZone)
	if err != nil {
		return nil, err
	}
	return &Report{cfg: cfg, out: out, zaplog: zaplog, loc: loc}, nil
}

// classifyOrder решает судьбу одного заказа: строка отчета либо причина пропуска.
// Подсчет и логирование пропусков - забота вызывающего
func classifyOrder(order model.Order, cfg config.Config, loc *time.Location) (Row, error) {
	// Черновики не оплачены
	if order.State == model.OrderStateDraft {
		return Row{}, ErrDraftOrder
	}

	if len(order.Tenders) == 0 {
		return Row{}, ErrNoTenders
	}

	// Платеж должен быть фактически списан, а не только авторизован
	captured := false
	for _, tender := range order.Tenders {
		if tender.Type == model.TenderTypeCard &&
			tender.CardDetails != nil &&
			tender.CardDetails.Status == model.CardStatusCaptured {
			captured = true
			break
		}
	}
	if !captured {
		return Row{}, ErrNotCaptured
	}

	if order.CreatedAt == "" {
		return Row{}, ErrNoCreatedAt
	}
	timestamp, err := convertTimeToLocal(order.CreatedAt, loc)
	if err != nil {
		return Row{}, fmt.Errorf("parse created_at: %w", err)
	}

	row := Row{
		Timestamp: timestamp,
		Customer:  "N/A",
		Email:     "N/A",
		Phone:     "N/A",
	}

	// Получатель из первого fulfillment; при отсутствии остаются N/A
	if len(order.Fulfillments) > 0 &&
		order.Fulfillments[0].PickupDetails != nil &&
		order.Fulfillments[0].PickupDetails.Recipient != nil {
		recipient := order.Fulfillments[0].PickupDetails.Recipient
		row.Customer = recipient.DisplayName
		row.Email = recipient.EmailAddress
		row.Phone = recipient.PhoneNumber
	}

	// Товары и пожертвования по позициям.
	// При повторе позиции побеждает последняя, суммы не складываются
	for _, item := range order.LineItems {
		switch item.CatalogObjectID {
		case cfg.ProductVariationID:
			quantity, err := strconv.Atoi(item.Quantity)
			if err != nil {
				return Row{}, fmt.Errorf("parse quantity: %w", err)
			}
			row.Products = quantity
		case cfg.DonationID:
			if item.TotalMoney == nil {
				return Row{}, fmt.Errorf("donation item %s: no total_money", item.CatalogObjectID)
			}
			row.DonationCents = item.TotalMoney.Amount
		}
	}

	// Итог заказа берется из total_money, не из суммы позиций
	if order.TotalMoney != nil {
		row.TotalCents = order.TotalMoney.Amount
	}

	if row.Products == 0 && row.DonationCents == 0 {
		return Row{}, ErrNothingSold
	}

	return row, nil
}

func isSkip(err error) bool {
	for _, skip := range skipErrors {
		if errors.Is(err, skip) {
			return true
		}
	}
	return false
}

var separator = strings.Repeat("=", 160)

const (
	headerFormat = "%-28s %-30s %-35s %-16s %8s %12s %10s\n"
	rowFormat    = "%-28s %-30s %-35s %-16s %8d %12.2f %10.2f\n"
)

// Render печатает отчет по заказам за date и возвращает итоги.
// Пустой список заказов - ровно строка "No Sales" без шапки и итогов
func (r *Report) Render(date string, orders []model.Order) Summary {
	var summary Summary

	if len(orders) == 0 {
		fmt.Fprintln(r.out, "No Sales")
		return summary
	}

	fmt.Fprintln(r.out, separator)
	fmt.Fprintf(r.out, "PRODUCT SALES & DONATIONS REPORT - %s\n", date)
	fmt.Fprintln(r.out, separator)
	fmt.Fprintf(r.out, headerFormat, "Date/Time", "Customer", "Email", "Phone", "Products", "Donations", "Total")
	fmt.Fprintln(r.out, separator)

	for _, order := range orders {
		row, err := classifyOrder(order, r.cfg, r.loc)
		if err != nil {
			if isSkip(err) {
				r.zaplog.Debug("skipping order",
					zap.String("order", order.ID),
					zap.String("reason", err.Error()),
				)
			} else {
				// Битая запись не прерывает отчет
				r.zaplog.Warn("error processing order",
					zap.String("order", order.ID),
					zap.Error(err),
				)
			}
			continue
		}

		fmt.Fprintf(r.out, rowFormat,
			row.Timestamp.Format("2006-01-02 15:04:05-07:00"),
			truncate(row.Customer, 30),
			truncate(row.Email, 35),
			row.Phone,
			row.Products,
			float64(row.DonationCents)/100,
			float64(row.TotalCents)/100,
		)

		summary.OrderCount++
		summary.TotalProducts += row.Products
		summary.TotalDonationCents += row.DonationCents
		summary.TotalSalesCents += row.TotalCents
	}

	fmt.Fprintln(r.out, separator)
	fmt.Fprintln(r.out, "SUMMARY:")
	fmt.Fprintf(r.out, "  Total Orders:     %d\n", summary.OrderCount)
	fmt.Fprintf(r.out, "  Total Products:   %d\n", summary.TotalProducts)
	fmt.Fprintf(r.out, "  Total Donations:  $%.2f\n", float64(summary.TotalDonationCents)/100)
	fmt.Fprintf(r.out, "  Total Sales:      $%.2f\n", float64(summary.TotalSalesCents)/100)
	fmt.Fprintln(r.out, separator)
	fmt.Fprintln(r.out)

	return summary
}

// Время источника - UTC с долями секунды, отображается в US Central
func convertTimeToLocal(created string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
