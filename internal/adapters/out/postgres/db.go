package postgres

import (
	"database/sql"
	"fmt"
	"strings"

	"forwarding/internal/adapters/out/postgres/carrierrepo"
	"forwarding/internal/adapters/out/postgres/consolidationrepo"
	"forwarding/internal/adapters/out/postgres/storagepolicyrepo"

	"github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// driverName is the database/sql driver registered by lib/pq.
const driverName = "postgres"

// MakeDSN builds a key/value connection string understood by lib/pq.
func MakeDSN(host, port, user, password, dbName, sslMode string) string {
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, quoteValue(password), dbName, sslMode,
	)
}

// Open connects to PostgreSQL through lib/pq and wraps the pool with gorm.
// lib/pq owns the wire protocol so constraint violations surface as *pq.Error.
func Open(dsn string) (*gorm.DB, error) {
	connector, err := pq.NewConnector(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	sqlDB := sql.OpenDB(connector)
	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", driverName, err)
	}

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DriverName: driverName,
		Conn:       sqlDB,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates every table of the pricing service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&carrierrepo.CarrierDTO{},
		&carrierrepo.ServiceDTO{},
		&carrierrepo.ZoneDTO{},
		&storagepolicyrepo.StoragePolicyDTO{},
		&consolidationrepo.ConsolidationDTO{},
	)
}

// quoteValue quotes a connection-string value when it contains characters
// lib/pq would otherwise split on.
func quoteValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	return "'" + dsnEscaper.Replace(v) + "'"
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)
