package nitaqat

import (
	"context"
	"database/sql"

	"ksa-hris/internal/shared/txdb"
	"ksa-hris/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=nitaqat_repo.go -destination=mock/nitaqat_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, snapshot *Snapshot) error
	FindLatest(ctx context.Context, companyID string) (*Snapshot, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]Snapshot, error)
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

// Snapshots are never updated or deleted, so there is no Update/Delete here.
func (r *repository) Create(ctx context.Context, snapshot *Snapshot) error {
	return txdb.Conn(ctx, r.db, r.tx).Create(snapshot).Error
}

func (r *repository) FindLatest(ctx context.Context, companyID string) (*Snapshot, error) {
	var s Snapshot
	err := txdb.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Order("calculation_date DESC, created_at DESC").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Snapshot, error) {
	var snapshots []Snapshot
	err := txdb.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Order("calculation_date DESC, created_at DESC").
		Find(&snapshots).Error
	return snapshots, err
}
