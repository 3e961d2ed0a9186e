// Package gormstore implements the repositories on a relational database
// through gorm, using the sqlite3 or postgres dialect.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" // postgres driver
	_ "github.com/jinzhu/gorm/dialects/sqlite"   // sqlite3 driver

	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
)

// Supported driver names, as used in configuration.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ErrUnsupportedDriver is returned by Open for unknown driver names.
var ErrUnsupportedDriver = errors.New("unsupported storage driver")

type feedbackRow struct {
	ID         uint64    `gorm:"primary_key;AUTO_INCREMENT"`
	Text       string    `gorm:"type:text;not null"`
	Category   string    `gorm:"not null"`
	Sentiment  string    `gorm:"size:16;not null;index"`
	UserName   string    `gorm:"column:user_name;not null"`
	Screenshot string    `gorm:"column:screenshot"`
	CreatedAt  time.Time `gorm:"column:timestamp;not null"`
}

func (feedbackRow) TableName() string { return "feedback" }

func (r feedbackRow) toDomain() domain.Feedback {
	return domain.Feedback{
		ID:            domain.FeedbackID(r.ID),
		Text:          r.Text,
		Category:      r.Category,
		Sentiment:     domain.Sentiment(r.Sentiment),
		Author:        r.UserName,
		CreatedAt:     r.CreatedAt.UTC(),
		AttachmentRef: r.Screenshot,
	}
}

type userRow struct {
	ID           uint64 `gorm:"primary_key;AUTO_INCREMENT"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"not null;unique_index"`
	PasswordHash string `gorm:"column:password_hash;not null"`
}

func (userRow) TableName() string { return "users" }

func (r userRow) toDomain() domain.User {
	return domain.User{ID: r.ID, Name: r.Name, Email: r.Email, PasswordHash: r.PasswordHash}
}

// Store owns the database handle and hands out the repositories built on it.
type Store struct {
	db     *gorm.DB
	driver string
}

// Open connects with the given driver and DSN and migrates the schema.
func Open(driver, dsn string, logQueries bool) (*Store, error) {
	dialect, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", driver, err)
	}

	db.LogMode(logQueries)

	if dialect == "sqlite3" {
		// sqlite serializes writers; one connection avoids "database is locked".
		db.DB().SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&feedbackRow{}, &userRow{}).Error; err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	slog.Debug("storage opened", slog.String("driver", driver))

	return &Store{db: db, driver: driver}, nil
}

func dialectFor(driver string) (string, error) {
	switch strings.ToLower(driver) {
	case DriverSQLite, "sqlite3":
		return "sqlite3", nil
	case DriverPostgres, "postgresql":
		return "postgres", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// Feedback returns the feedback repository.
func (s *Store) Feedback() *FeedbackRepository {
	return &FeedbackRepository{db: s.db}
}

// Users returns the account repository.
func (s *Store) Users() *UserRepository {
	return &UserRepository{db: s.db}
}

// Name identifies the store in readiness checks.
func (s *Store) Name() string {
	return "storage"
}

// Check pings the database.
func (s *Store) Check(ctx context.Context) error {
	if err := s.db.DB().PingContext(ctx); err != nil {
		return domain.NewUnavailableError(s.driver, err.Error())
	}

	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// FeedbackRepository stores feedback rows.
type FeedbackRepository struct {
	db *gorm.DB
}

// Insert creates a row and returns the stored record.
func (r *FeedbackRepository) Insert(ctx context.Context, f domain.NewFeedback) (domain.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return domain.Feedback{}, err
	}

	row := feedbackRow{
		Text:       f.Text,
		Category:   f.Category,
		Sentiment:  string(f.Sentiment),
		UserName:   f.Author,
		Screenshot: f.AttachmentRef,
		CreatedAt:  f.CreatedAt.UTC(),
	}

	if err := r.db.Create(&row).Error; err != nil {
		return domain.Feedback{}, fmt.Errorf("inserting feedback: %w", err)
	}

	return row.toDomain(), nil
}

// All returns every row in ID order.
func (r *FeedbackRepository) All(ctx context.Context) ([]domain.Feedback, error) {
	return r.List(ctx, 0, 0)
}

// List returns up to limit rows after the given ID.
func (r *FeedbackRepository) List(ctx context.Context, after domain.FeedbackID, limit int) ([]domain.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := r.db.Where("id > ?", uint64(after)).Order("id asc")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []feedbackRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}

	out := make([]domain.Feedback, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

// Get returns one row.
func (r *FeedbackRepository) Get(ctx context.Context, id domain.FeedbackID) (domain.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return domain.Feedback{}, err
	}

	var row feedbackRow
	if err := r.db.Where("id = ?", uint64(id)).First(&row).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return domain.Feedback{}, domain.NewNotFoundError("feedback", id.String())
		}

		return domain.Feedback{}, fmt.Errorf("loading feedback %s: %w", id, err)
	}

	return row.toDomain(), nil
}

// Delete removes one row inside a transaction and returns it.
func (r *FeedbackRepository) Delete(ctx context.Context, id domain.FeedbackID) (domain.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return domain.Feedback{}, err
	}

	tx := r.db.Begin()
	if tx.Error != nil {
		return domain.Feedback{}, fmt.Errorf("beginning delete: %w", tx.Error)
	}

	var row feedbackRow
	if err := tx.Where("id = ?", uint64(id)).First(&row).Error; err != nil {
		tx.Rollback()

		if gorm.IsRecordNotFoundError(err) {
			return domain.Feedback{}, domain.NewNotFoundError("feedback", id.String())
		}

		return domain.Feedback{}, fmt.Errorf("loading feedback %s: %w", id, err)
	}

	if err := tx.Delete(&feedbackRow{}, "id = ?", row.ID).Error; err != nil {
		tx.Rollback()
		return domain.Feedback{}, fmt.Errorf("deleting feedback %s: %w", id, err)
	}

	if err := tx.Commit().Error; err != nil {
		return domain.Feedback{}, fmt.Errorf("committing delete: %w", err)
	}

	return row.toDomain(), nil
}

// UserRepository stores accounts.
type UserRepository struct {
	db *gorm.DB
}

// Create stores a new account. Emails are stored lower-cased.
func (r *UserRepository) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}

	row := userRow{
		Name:         u.Name,
		Email:        normalizeEmail(u.Email),
		PasswordHash: u.PasswordHash,
	}

	tx := r.db.Begin()
	if tx.Error != nil {
		return domain.User{}, fmt.Errorf("beginning signup: %w", tx.Error)
	}

	var existing userRow
	err := tx.Where("email = ?", row.Email).First(&existing).Error

	switch {
	case err == nil:
		tx.Rollback()
		return domain.User{}, domain.NewConflictError("user", "email already registered")
	case !gorm.IsRecordNotFoundError(err):
		tx.Rollback()
		return domain.User{}, fmt.Errorf("checking email: %w", err)
	}

	if err := tx.Create(&row).Error; err != nil {
		tx.Rollback()

		if isUniqueViolation(err) {
			return domain.User{}, domain.NewConflictError("user", "email already registered")
		}

		return domain.User{}, fmt.Errorf("creating user: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return domain.User{}, fmt.Errorf("committing signup: %w", err)
	}

	return row.toDomain(), nil
}

// GetByEmail looks an account up by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}

	var row userRow
	if err := r.db.Where("email = ?", normalizeEmail(email)).First(&row).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return domain.User{}, domain.NewNotFoundError("user", email)
		}

		return domain.User{}, fmt.Errorf("loading user: %w", err)
	}

	return row.toDomain(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate key")
}
