package config

import (
	"fmt"

	"gopkg.in/ini.v1"

	loggerConfig "github.com/iurnickita/salesreport/internal/logger/config"
	reportConfig "github.com/iurnickita/salesreport/internal/report/config"
	squareConfig "github.com/iurnickita/salesreport/internal/squareclient/config"
)

type Config struct {
	Square squareConfig.Config
	Report reportConfig.Config
	Logger loggerConfig.Config
}

const defaultSquareAddr = "https://connect.squareup.com"

// Обязательные ключи секции [square]
var requiredKeys = []string{"token", "location_id", "pasty", "donation"}

func GetConfig(path string) (Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("configuration file %s: %w", path, err)
	}

	square := file.Section("square")
	for _, key := range requiredKeys {
		if !square.HasKey(key) {
			return Config{}, fmt.Errorf("missing required configuration key %q in [square] section", key)
		}
	}

	var cfg Config
	cfg.Square.Addr = square.Key("addr").MustString(defaultSquareAddr)
	cfg.Square.Token = square.Key("token").String()
	cfg.Square.LocationID = square.Key("location_id").String()
	// pasty - идентификатор товара (историческое имя ключа)
	cfg.Report.ProductVariationID = square.Key("pasty").String()
	cfg.Report.DonationID = square.Key("donation").String()
	cfg.Logger.LogLevel = file.Section("logger").Key("log_level").MustString("info")

	return cfg, nil
}
