package config

// Storage drivers
const (
	StorageDriverFile     = "file"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
)

// ExpectedEnvSchemaVersion is the .env schema version this build reads.
const ExpectedEnvSchemaVersion = "1.0"

// Insecure example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
)
