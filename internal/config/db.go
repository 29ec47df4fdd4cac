package config

// Supported values of Data.Driver.
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Data selects where the site documents are persisted.
type Data struct {
	Driver string // file, sqlite, mysql or postgres
	Dir    string // directory of the JSON documents for the file driver
}

// DB holds the database configuration settings for the SQL drivers.
type DB struct {
	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	Path     string // database file for the sqlite driver
}
