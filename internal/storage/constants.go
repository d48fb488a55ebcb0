package storage

const (
	FILE_EXTENTION = ".sqlite"

	SQLITE_TIME_FORMAT = "2006-01-02 15:04:05.000"

	// go-sqlite3 runs PRAGMA foreign_keys = ON for every new connection.
	FOREIGN_KEYS_DSN_OPTION = "?_foreign_keys=on"
)
