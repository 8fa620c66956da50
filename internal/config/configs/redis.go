package configs

// Redis configures the client used for the scheduling pass lock. With
// Enabled false the service runs with a no-op lock and relies on the
// database unique constraint alone.
type Redis struct {
	Enabled  bool   `env:"ENABLED" envDefault:"true"`
	Address  string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}
