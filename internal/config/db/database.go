package db

import (
	"fmt"

	"github.com/linskybing/form-console/internal/config"
	"github.com/linskybing/form-console/internal/domain/account"
	"github.com/linskybing/form-console/internal/domain/audit"
	"github.com/linskybing/form-console/internal/domain/form"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// Models lists every table owned by the service, in creation order.
var Models = []any{
	&account.Account{},
	&account.Admin{},
	&form.Form{},
	&form.Question{},
	&audit.AuditLog{},
}

func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)
}

// Init opens the connection described by the loaded configuration.
func Init(log *zap.Logger) error {
	gdb, err := Open(DSN())
	if err != nil {
		return err
	}
	DB = gdb
	log.Info("database connected", zap.String("host", config.DbHost), zap.String("name", config.DbName))
	return nil
}

func Open(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	return gdb, nil
}

func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
