package config

type Config struct {
	ProductVariationID string
	DonationID         string
}
