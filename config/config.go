package config

import (
	"os"

	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/network"
)

// DefaultPort is used when the PORT environment variable is not set.
const DefaultPort = "3002"

// Config holds the immutable application configuration, built once at
// startup. The service targets the public Stellar network; the Horizon
// client and network passphrase are fixed for the process lifetime.
type Config struct {
	Horizon           horizonclient.ClientInterface
	NetworkPassphrase string
	Port              string
}

// Load builds the configuration from the environment.
func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}

	return Config{
		Horizon:           horizonclient.DefaultPublicNetClient,
		NetworkPassphrase: network.PublicNetworkPassphrase,
		Port:              port,
	}
}
