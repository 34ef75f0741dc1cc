package config

const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./signbook.db"

	// DefaultBackupDir is where scheduled favourites backups are written
	DefaultBackupDir = "./backups"
)
