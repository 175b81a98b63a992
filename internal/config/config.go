package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:"arta.db"`

	Midtrans Midtrans `envPrefix:"MIDTRANS_"`
	Tasks    Tasks    `envPrefix:"TASKS_"`
	Auth     Auth     `envPrefix:"AUTH_"`
	Orders   Orders   `envPrefix:"ORDERS_"`
}

type Midtrans struct {
	BaseAPIURL string `env:"BASE_API_URL" envDefault:"https://api.midtrans.com"`
	ServerKey  string `env:"SERVER_KEY"`
}

type Tasks struct {
	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	QueuePrefix string `env:"QUEUE_PREFIX" envDefault:"arta:tasks"`
}

type Auth struct {
	Enabled   bool   `env:"ENABLED" envDefault:"false"`
	JWTSecret string `env:"JWT_SECRET"`
}

type Orders struct {
	// InProgressStatuses is the allow-list behind the in-progress listing.
	// Kept configurable because the definition has shifted between releases.
	InProgressStatuses []string `env:"IN_PROGRESS_STATUSES" envSeparator:"," envDefault:"CREATED,PAID,ESIM_ORDERED,ESIM_FULFILLED"`
	PageSize           int      `env:"PAGE_SIZE" envDefault:"200"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
