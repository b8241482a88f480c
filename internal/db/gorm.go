package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicateKey = errors.New("duplicate key")

const sqliteScheme = "sqlite://"

type GormDB struct {
	db *gorm.DB
}

// Open connects to the database described by dsn. A "sqlite://" prefix selects
// an embedded SQLite database at the given path; anything else is handed to postgres.
func Open(dsn string) (*GormDB, error) {
	if path, ok := strings.CutPrefix(dsn, sqliteScheme); ok {
		return NewSQLiteDB(path)
	}
	return NewPostgresDB(dsn)
}

func NewPostgresDB(dsn string) (*GormDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		db: db,
	}, nil
}

// NewSQLiteDB opens a SQLite database. SQLite has no SELECT ... FOR UPDATE, so
// the pool is capped at one connection and transactions run one at a time.
func NewSQLiteDB(path string) (*GormDB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db conn: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return &GormDB{
		db: db,
	}, nil
}

// NewFromGorm wraps an already opened gorm connection.
func NewFromGorm(db *gorm.DB) *GormDB {
	return &GormDB{
		db: db,
	}
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.db.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *GormDB) GetAllBy(ctx context.Context, column string, value any, orderBy string, entity any) error {
	tx := f.db.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value)
	if orderBy != "" {
		tx = tx.Order(orderBy)
	}
	if err := tx.Find(entity).Error; err != nil {
		return fmt.Errorf("getting records by %q: %w", column, err)
	}
	return nil
}

// Transaction runs fn inside a database transaction, committing when fn returns
// nil and rolling back otherwise. Driver errors are translated to ErrNotFound and
// ErrDuplicateKey; errors produced by fn itself are returned as they are.
func (f *GormDB) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	err := f.db.WithContext(ctx).Transaction(fn)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}

func (f *GormDB) Ping(ctx context.Context) error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (f *GormDB) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
