package testutils

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/linskybing/form-console/internal/config/db"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// SetupPostgres returns a migrated database. TEST_DB_DSN points at an
// existing server; otherwise a throwaway postgres container is started.
func SetupPostgres(ctx context.Context) (*gorm.DB, func(), error) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		gdb, err := openAndMigrate(dsn)
		if err != nil {
			return nil, nil, err
		}
		return gdb, func() { closeDB(gdb) }, nil
	}

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "forms",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("start postgres container: %w", err)
	}
	terminate := func() { _ = pg.Terminate(context.Background()) }

	host, err := pg.Host(ctx)
	if err != nil {
		terminate()
		return nil, nil, err
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		terminate()
		return nil, nil, err
	}

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=forms sslmode=disable", host, port.Port())

	// The server may still be restarting after init scripts.
	var gdb *gorm.DB
	for i := 0; i < 10; i++ {
		if gdb, err = openAndMigrate(dsn); err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		terminate()
		return nil, nil, err
	}

	return gdb, func() {
		closeDB(gdb)
		terminate()
	}, nil
}

func openAndMigrate(dsn string) (*gorm.DB, error) {
	gdb, err := db.Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(gdb); err != nil {
		closeDB(gdb)
		return nil, err
	}
	return gdb, nil
}

func closeDB(gdb *gorm.DB) {
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Truncate empties every table owned by the service.
func Truncate(gdb *gorm.DB) error {
	return gdb.Exec("TRUNCATE questions, forms, admins, accounts, audit_logs CASCADE").Error
}
