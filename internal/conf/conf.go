package conf

// Lib version
const VERSION = "v1.0.0"

// Default values
const (
	DEFAULT_PROJECT_FILE = "lutece-sql.yaml"
	DEFAULT_SOURCE_DIR   = "src"
)

// Extension of the files handed to the classifier.
const SQL_EXTENSION = ".sql"
