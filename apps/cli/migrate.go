package main

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Ayushpund/Acharya/storage/database"
)

var migrateFunc = database.RunMigrations // mockable

func (cli *commandLine) migrate(args []string) error {
	if cli.db == nil {
		return errors.New("migrate requires the sqlite3 store")
	}
	return migrateFunc(context.Background(), cli.db, args[0], args[1:]...)
}
