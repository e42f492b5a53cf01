package config

// Supported values for DB.GormEngine.
const (
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
	EngineSQLite   = "sqlite"
)

// DB holds the database configuration settings.
type DB struct {
	Extras     string // driver specific DSN options, replaces the engine defaults when set
	Host       string
	Port       int
	User       string
	Password   string
	Name       string // database name, or the database file for sqlite
	GormEngine string // mysql, postgres or sqlite
}
