// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup, migrations, key/value port
//	└── settings/        # Raw access to the settings table
//
// Everything the application persists (the favourites set, text size and
// colour scheme) lives in the settings table, one row per slot. Database
// implements kvstore.Store so the favourites and settings stores never see
// GORM directly:
//
//	db, err := database.NewDatabase("./signbook.db")
//	favs := favourites.NewStore(db, log)
//	prefs := settingsstore.New(db, log)
package database
