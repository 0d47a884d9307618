package main

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/iurnickita/salesreport/internal/config"
	"github.com/iurnickita/salesreport/internal/logger"
	"github.com/iurnickita/salesreport/internal/report"
	"github.com/iurnickita/salesreport/internal/squareclient"
)

const defaultConfigPath = "init.ini"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "\n\tUSAGE: %-5s <query_date ie. 2025-10-13>\n\n", os.Args[0])
		os.Exit(1)
	}

	if err := run(os.Args[1]); err != nil {
		log.Fatal(err)
	}
}

func run(date string) error {
	configPath := os.Getenv("SALESREPORT_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}
	cfg, err := config.GetConfig(configPath)
	if err != nil {
		return err
	}

	zaplog, err := logger.NewZapLog(cfg.Logger)
	if err != nil {
		return err
	}
	defer zaplog.Sync()

	client := squareclient.NewSquareClient(cfg.Square, zaplog)
	orders, err := client.SearchOrders(cfg.Square.LocationID, date)
	if err != nil {
		return fmt.Errorf("searching orders: %w", err)
	}
	zaplog.Debug("orders fetched", zap.Int("count", len(orders)))

	rep, err := report.NewReport(cfg.Report, os.Stdout, zaplog)
	if err != nil {
		return err
	}
	rep.Render(date, orders)

	return nil
}
