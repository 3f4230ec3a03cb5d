package types

import "errors"

// Config holds backend selection and parameters for Store.Attach.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// ExchangeRate is the fixed number of target-asset units credited per
	// funding-asset unit at settlement. Zero means "use the default".
	// The rate is an external constant; nothing in the engine discovers
	// or renegotiates it.
	ExchangeRate uint64 `json:"exchange_rate" yaml:"exchange_rate"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// DefaultExchangeRate is used when Config.ExchangeRate is unset.
const DefaultExchangeRate = 100

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}

// Rate returns the effective exchange rate, applying the default when the
// config leaves it unset.
func (c Config) Rate() uint64 {
	if c.ExchangeRate == 0 {
		return DefaultExchangeRate
	}
	return c.ExchangeRate
}
