package eos

import (
	"context"
	"database/sql"
	"time"

	"ksa-hris/internal/shared/txdb"
	"ksa-hris/internal/tenant"

	"gorm.io/gorm"
)

// StatusChange is applied only while the row still holds From.
type StatusChange struct {
	From       string
	To         string
	ActorID    *string
	OccurredAt time.Time
}

//go:generate mockgen -source=eos_repo.go -destination=mock/eos_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateWithBreakdown(ctx context.Context, calc *Calculation) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Calculation, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Calculation, error)
	// UpdateStatus reports false when no row matched the expected status.
	UpdateStatus(ctx context.Context, companyID string, id string, change StatusChange) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) CreateWithBreakdown(ctx context.Context, calc *Calculation) error {
	return txdb.Conn(ctx, r.db, r.tx).Create(calc).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Calculation, error) {
	var calcs []Calculation
	err := txdb.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at DESC").
		Find(&calcs).Error
	return calcs, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Calculation, error) {
	var calc Calculation
	err := txdb.Conn(ctx, r.db, r.tx).
		Scopes(tenant.TableScope("eos_calculations", companyID)).
		Preload("Breakdown", func(db *gorm.DB) *gorm.DB {
			return db.Order("year ASC")
		}).
		First(&calc, "eos_calculations.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &calc, nil
}

func (r *repository) UpdateStatus(ctx context.Context, companyID string, id string, change StatusChange) (bool, error) {
	updates := map[string]any{
		"status":     change.To,
		"updated_at": change.OccurredAt,
	}
	switch change.To {
	case StatusApproved:
		updates["approved_at"] = change.OccurredAt
		if change.ActorID != nil {
			updates["approved_by"] = *change.ActorID
		}
	case StatusPaid:
		updates["paid_at"] = change.OccurredAt
	}

	res := txdb.Conn(ctx, r.db, r.tx).
		Model(&Calculation{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ? AND status = ?", id, change.From).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
