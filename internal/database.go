package internal

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"CT-MUSICAL/internal/config"
)

var DB *gorm.DB

// InitDB connects to MySQL and makes sure the contract_records table exists.
func InitDB(cfg *config.Config, log *zap.Logger) error {
	dsn := cfg.Database.DSN()

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(DB, log); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info("database connected and migrated", zap.String("database", cfg.Database.DBName))
	return nil
}

func migrate(db *gorm.DB, log *zap.Logger) error {
	// Existing rows are preserved; only missing tables and columns are added.
	log.Debug("ensuring contract_records table exists")
	result := db.Exec(`
        CREATE TABLE IF NOT EXISTS contract_records (
            id varchar(36) PRIMARY KEY,
            base_name varchar(255) NOT NULL,
            version bigint NOT NULL,
            artist varchar(255),
            event_date varchar(32),
            document_path text NOT NULL,
            snapshot_path text NOT NULL,
            pdf_path text,
            archive_objects json,
            snapshot json,
            status varchar(32) DEFAULT 'generated',
            created_at datetime(3) NULL,
            updated_at datetime(3) NULL,
            deleted_at datetime(3) NULL,
            INDEX idx_contract_records_base_name (base_name),
            INDEX idx_contract_records_artist (artist),
            INDEX idx_contract_records_deleted_at (deleted_at)
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create contract_records table: %w", result.Error)
	}

	ensureColumns := map[string]string{
		"pdf_path":        "ALTER TABLE contract_records ADD COLUMN pdf_path text",
		"archive_objects": "ALTER TABLE contract_records ADD COLUMN archive_objects json",
		"snapshot":        "ALTER TABLE contract_records ADD COLUMN snapshot json",
		"status":          "ALTER TABLE contract_records ADD COLUMN status varchar(32) DEFAULT 'generated'",
	}

	for column, stmt := range ensureColumns {
		if err := ensureColumn(db, log, "contract_records", column, stmt); err != nil {
			return err
		}
	}

	return nil
}

func ensureColumn(db *gorm.DB, log *zap.Logger, table, column, statement string) error {
	if db.Migrator().HasColumn(table, column) {
		return nil
	}

	log.Info("adding missing column", zap.String("table", table), zap.String("column", column))
	if err := db.Exec(statement).Error; err != nil {
		return fmt.Errorf("failed to add column %s.%s: %w", table, column, err)
	}

	return nil
}

func CloseDB() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
