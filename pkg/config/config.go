package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/spotplatform/seedgen/pkg/types"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Seed     SeedConfig
	Password PasswordConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate applies struct tags plus the range checks validator cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	ranges := map[string]types.Range{
		"menus per store":   c.Seed.MenusPerStore,
		"options per menu":  c.Seed.OptionsPerMenu,
		"origins per menu":  c.Seed.OriginsPerMenu,
		"items per order":   c.Seed.ItemsPerOrder,
		"reviews per store": c.Seed.ReviewsPerStore,
	}
	for name, r := range ranges {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("invalid config: %s: %w", name, err)
		}
	}
	if c.Seed.ItemsPerOrder.Min < 1 {
		return fmt.Errorf("invalid config: items per order min must be at least 1")
	}
	return nil
}

type AppConfig struct {
	LogLevel     string `envconfig:"SEEDGEN_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SEEDGEN_LOG_WARN_STACK" default:"false"`
}

type DBConfig struct {
	DSN string `envconfig:"SEEDGEN_DB_DSN"`

	Host     string `envconfig:"SEEDGEN_DB_HOST" default:"localhost"`
	Port     int    `envconfig:"SEEDGEN_DB_PORT" default:"5432"`
	User     string `envconfig:"SEEDGEN_DB_USER" default:"admin"`
	Password string `envconfig:"SEEDGEN_DB_PASSWORD" default:"secret"`
	Name     string `envconfig:"SEEDGEN_DB_NAME" default:"myapp_db"`
	SSLMode  string `envconfig:"SEEDGEN_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SEEDGEN_DB_MAX_OPEN_CONNS" default:"4"`
	MaxIdleConns    int           `envconfig:"SEEDGEN_DB_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"SEEDGEN_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SEEDGEN_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// EnsureDSN assembles the DSN from the discrete fields when one was not given.
// Called only when the run actually needs a database.
func (db *DBConfig) EnsureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.Host == "" || db.User == "" || db.Name == "" {
		return fmt.Errorf("either %s or %s, %s and %s are required",
			EnvDBDSN, EnvDBHost, EnvDBUser, EnvDBName)
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}

// SeedConfig carries the entity counts and per-parent ranges. Defaults match
// the platform's historical tuning values and are deliberately not re-derived.
type SeedConfig struct {
	Users      int     `envconfig:"SEEDGEN_NUM_USERS" default:"500" validate:"gte=4"`
	Categories int     `envconfig:"SEEDGEN_NUM_CATEGORIES" default:"20" validate:"gte=0"`
	Stores     int     `envconfig:"SEEDGEN_NUM_STORES" default:"1000" validate:"gte=0"`
	OwnerRatio float64 `envconfig:"SEEDGEN_OWNER_RATIO" default:"0.1" validate:"gte=0,lte=1"`

	MenusPerStore   types.Range `envconfig:"SEEDGEN_MENUS_PER_STORE" default:"5-15"`
	OptionsPerMenu  types.Range `envconfig:"SEEDGEN_OPTIONS_PER_MENU" default:"0-5"`
	OriginsPerMenu  types.Range `envconfig:"SEEDGEN_ORIGINS_PER_MENU" default:"0-3"`
	ItemsPerOrder   types.Range `envconfig:"SEEDGEN_ITEMS_PER_ORDER" default:"1-5"`
	ReviewsPerStore types.Range `envconfig:"SEEDGEN_REVIEWS_PER_STORE" default:"0-20"`

	// Seed 0 means derive one from the wall clock.
	Seed      int64 `envconfig:"SEEDGEN_SEED" default:"0"`
	BatchSize int   `envconfig:"SEEDGEN_BATCH_SIZE" default:"1000" validate:"gte=1"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"SEEDGEN_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"SEEDGEN_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"SEEDGEN_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"SEEDGEN_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"SEEDGEN_ARGON_KEY_LEN" default:"32"`

	// Placeholder skips real hashing and emits a clearly marked fake hash.
	Placeholder bool `envconfig:"SEEDGEN_PLACEHOLDER_HASH" default:"false"`
}

// Redacted returns the DSN with the password blanked for logging.
func (db DBConfig) Redacted() string {
	u, err := url.Parse(db.DSN)
	if err != nil || u.User == nil {
		return db.DSN
	}
	if _, has := u.User.Password(); has {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return strings.ReplaceAll(u.String(), "xxxxx", "***")
}
