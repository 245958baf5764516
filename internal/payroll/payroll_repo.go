package payroll

import (
	"context"
	"database/sql"
	"time"

	"ksa-hris/internal/shared/txdb"
	"ksa-hris/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BatchFilter struct {
	Status string
	Year   string
}

// StatusChange is applied only while the batch still holds From.
type StatusChange struct {
	From       string
	To         string
	ActorID    *string
	OccurredAt time.Time
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// CreateWithItems inserts the header and every item in one statement
	// group; callers run it inside a transaction.
	CreateWithItems(ctx context.Context, batch *Batch) error
	ExistsForMonth(ctx context.Context, companyID string, month string) (bool, error)
	FindAllByCompany(ctx context.Context, companyID string, filter BatchFilter) ([]Batch, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string, withItems bool) (*Batch, error)
	UpdateStatus(ctx context.Context, companyID string, id string, change StatusChange) (bool, error)
	FindPayslipsByBatch(ctx context.Context, companyID string, batchID string) ([]Payslip, error)
	// CreatePayslips skips items that already have a payslip.
	CreatePayslips(ctx context.Context, payslips []Payslip) error
	UpdatePayslipFile(ctx context.Context, id string, fileURL string, generatedAt time.Time) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) CreateWithItems(ctx context.Context, batch *Batch) error {
	return txdb.Conn(ctx, r.db, r.tx).Create(batch).Error
}

func (r *repository) ExistsForMonth(ctx context.Context, companyID string, month string) (bool, error) {
	var count int64
	err := txdb.Conn(ctx, r.db, r.tx).
		Model(&Batch{}).
		Scopes(tenant.Scope(companyID)).
		Where("month = ?", month).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter BatchFilter) ([]Batch, error) {
	var batches []Batch
	q := txdb.Conn(ctx, r.db, r.tx).Scopes(tenant.Scope(companyID))
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Year != "" {
		q = q.Where("month LIKE ?", filter.Year+"-%")
	}
	err := q.Order("month DESC").Find(&batches).Error
	return batches, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string, withItems bool) (*Batch, error) {
	var batch Batch
	q := txdb.Conn(ctx, r.db, r.tx).Scopes(tenant.TableScope("payroll_batches", companyID))
	if withItems {
		q = q.Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("employee_name ASC, employee_id ASC")
		})
	}
	if err := q.First(&batch, "payroll_batches.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *repository) UpdateStatus(ctx context.Context, companyID string, id string, change StatusChange) (bool, error) {
	updates := map[string]any{
		"status":     change.To,
		"updated_at": change.OccurredAt,
	}
	switch change.To {
	case StatusPendingApproval:
		updates["submitted_at"] = change.OccurredAt
	case StatusApproved:
		updates["approved_at"] = change.OccurredAt
		if change.ActorID != nil {
			updates["approved_by"] = *change.ActorID
		}
	case StatusProcessed:
		updates["processed_at"] = change.OccurredAt
	case StatusPaid:
		updates["paid_at"] = change.OccurredAt
	}

	res := txdb.Conn(ctx, r.db, r.tx).
		Model(&Batch{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ? AND status = ?", id, change.From).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) FindPayslipsByBatch(ctx context.Context, companyID string, batchID string) ([]Payslip, error) {
	var payslips []Payslip
	err := txdb.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("batch_id = ?", batchID).
		Order("payslip_number ASC").
		Find(&payslips).Error
	return payslips, err
}

func (r *repository) CreatePayslips(ctx context.Context, payslips []Payslip) error {
	if len(payslips) == 0 {
		return nil
	}
	return txdb.Conn(ctx, r.db, r.tx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_id"}},
			DoNothing: true,
		}).
		Create(&payslips).Error
}

func (r *repository) UpdatePayslipFile(ctx context.Context, id string, fileURL string, generatedAt time.Time) error {
	return txdb.Conn(ctx, r.db, r.tx).
		Model(&Payslip{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"file_url":     fileURL,
			"generated_at": generatedAt,
		}).Error
}
