package database

import (
	"sync"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type DatabaseInst struct {
	db     *sqlx.DB
	dbLock sync.Mutex
}

func InitDatabase(filePath string, migrationDir string) (*DatabaseInst, error) {
	db, err := sqlx.Open("sqlite3", filePath)

	if err != nil {
		return nil, err
	}

	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	if err != nil {
		return nil, err
	}

	migrator, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationDir,
		"fiqlb",
		driver,
	)

	if err != nil {
		return nil, err
	}

	err = migrator.Up()
	if err != nil && err != migrate.ErrNoChange {
		return nil, err
	}

	return &DatabaseInst{
		db:     db,
		dbLock: sync.Mutex{},
	}, nil
}

func (d *DatabaseInst) Close() error {
	return d.db.Close()
}
