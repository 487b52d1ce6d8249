package config

// EnvPrefix is empty because every field names its variable in full.
const EnvPrefix = ""

// Environment variable names, kept in one place so tests and docs agree.
const (
	EnvLogLevel     = "SEEDGEN_LOG_LEVEL"
	EnvLogWarnStack = "SEEDGEN_LOG_WARN_STACK"

	EnvDBDSN      = "SEEDGEN_DB_DSN"
	EnvDBHost     = "SEEDGEN_DB_HOST"
	EnvDBPort     = "SEEDGEN_DB_PORT"
	EnvDBUser     = "SEEDGEN_DB_USER"
	EnvDBPassword = "SEEDGEN_DB_PASSWORD"
	EnvDBName     = "SEEDGEN_DB_NAME"
	EnvDBSSLMode  = "SEEDGEN_DB_SSLMODE"

	EnvNumUsers        = "SEEDGEN_NUM_USERS"
	EnvNumCategories   = "SEEDGEN_NUM_CATEGORIES"
	EnvNumStores       = "SEEDGEN_NUM_STORES"
	EnvOwnerRatio      = "SEEDGEN_OWNER_RATIO"
	EnvMenusPerStore   = "SEEDGEN_MENUS_PER_STORE"
	EnvOptionsPerMenu  = "SEEDGEN_OPTIONS_PER_MENU"
	EnvOriginsPerMenu  = "SEEDGEN_ORIGINS_PER_MENU"
	EnvItemsPerOrder   = "SEEDGEN_ITEMS_PER_ORDER"
	EnvReviewsPerStore = "SEEDGEN_REVIEWS_PER_STORE"
	EnvSeed            = "SEEDGEN_SEED"
	EnvBatchSize       = "SEEDGEN_BATCH_SIZE"

	EnvPlaceholderHash = "SEEDGEN_PLACEHOLDER_HASH"
)
