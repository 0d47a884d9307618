package config

type Config struct {
	Addr       string
	Token      string
	LocationID string
}
