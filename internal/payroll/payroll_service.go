package payroll

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"ksa-hris/internal/debt"
	"ksa-hris/internal/employee"
	"ksa-hris/internal/employeesalary"
	"ksa-hris/internal/events"
	"ksa-hris/internal/messaging/kafka"
	payrollerrors "ksa-hris/internal/payroll/errors"
	"ksa-hris/internal/shared/contextutil"
	"ksa-hris/internal/shared/counter"
	"ksa-hris/internal/storage"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	BatchLockKeyPrefix = "payroll:batch:lock:"
	batchLockTTL       = 60 * time.Second
)

// GetBatchLockKey is held while a batch for the company and month is built.
func GetBatchLockKey(companyID, month string) string {
	return BatchLockKeyPrefix + companyID + ":" + month
}

// RosterReader is satisfied by employee.Repository.
type RosterReader interface {
	FindActiveByCompany(ctx context.Context, companyID string) ([]employee.Employee, error)
}

// SalaryReader is satisfied by employeesalary.Repository.
type SalaryReader interface {
	FindLatestByCompany(ctx context.Context, companyID string, asOf time.Time) ([]employeesalary.SalaryComponents, error)
}

// Sources are the read models a batch is aggregated from.
type Sources struct {
	Roster   RosterReader
	Salaries SalaryReader
	Debts    debt.Repository
}

// PayslipDeps numbers and stores payslips. Storage may be nil, in which
// case payslip rows are created but no document is rendered.
type PayslipDeps struct {
	Counter counter.Repository
	Storage storage.FileStorage
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	CreateBatch(ctx context.Context, companyID, actorID string, req CreateBatchRequest) (BatchResponse, error)
	GetAll(ctx context.Context, companyID string, req ListBatchesRequest) ([]BatchResponse, error)
	GetByID(ctx context.Context, companyID, id string) (BatchResponse, error)
	Submit(ctx context.Context, companyID, actorID, id string) (BatchResponse, error)
	Approve(ctx context.Context, companyID, actorID, id string) (BatchResponse, error)
	Process(ctx context.Context, companyID, actorID, id string) (BatchResponse, error)
	MarkPaid(ctx context.Context, companyID, actorID, id string) (BatchResponse, error)
	GetPayslips(ctx context.Context, companyID, batchID string) ([]PayslipResponse, error)
	// GeneratePayslips creates any missing payslip rows and renders every
	// payslip that has no document yet. It returns how many were rendered.
	GeneratePayslips(ctx context.Context, companyID, batchID string) (int, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	sources  Sources
	payslips PayslipDeps
	outbox   kafka.OutboxRepository
	rdb      *redis.Client
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	sources Sources,
	payslips PayslipDeps,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, sources, payslips, nil, rdb, logger...)
}

// NewServiceWithOutbox publishes a processed event instead of creating
// payslips inline; a consumer then calls GeneratePayslips.
func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	sources Sources,
	payslips PayslipDeps,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		sources:  sources,
		payslips: payslips,
		outbox:   outboxRepo,
		rdb:      rdb,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) acquireBatchLock(ctx context.Context, companyID, month string) (func(), error) {
	noop := func() {}
	if s.rdb == nil {
		return noop, nil
	}

	key := GetBatchLockKey(companyID, month)
	ok, err := s.rdb.SetNX(ctx, key, "locked", batchLockTTL).Result()
	if err != nil {
		// The unique constraint still rejects a second batch.
		s.logger.Warn("payroll batch lock unavailable", zap.String("key", key), zap.Error(err))
		return noop, nil
	}
	if !ok {
		return nil, payrollerrors.ErrBatchCreationInProgress
	}

	return func() {
		if err := s.rdb.Del(context.WithoutCancel(ctx), key).Err(); err != nil {
			s.logger.Warn("payroll batch lock release failed", zap.String("key", key), zap.Error(err))
		}
	}, nil
}

func (s *service) loadSnapshot(ctx context.Context, company uuid.UUID, month string, asOf time.Time) (Snapshot, error) {
	companyID := company.String()

	var (
		employees []employee.Employee
		salaries  []employeesalary.SalaryComponents
		loans     []debt.Loan
		advances  []debt.Advance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.sources.Roster.FindActiveByCompany(gctx, companyID)
		return err
	})
	g.Go(func() error {
		var err error
		salaries, err = s.sources.Salaries.FindLatestByCompany(gctx, companyID, asOf)
		return err
	})
	g.Go(func() error {
		var err error
		loans, err = s.sources.Debts.FindActiveLoans(gctx, companyID, nil)
		return err
	})
	g.Go(func() error {
		var err error
		advances, err = s.sources.Debts.FindActiveAdvances(gctx, companyID, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		CompanyID: company,
		Month:     month,
		Employees: employees,
		Salaries:  make(map[uuid.UUID]employeesalary.SalaryComponents, len(salaries)),
		Debts: debt.Snapshot{
			Loans:    make([]debt.Outstanding, 0, len(loans)),
			Advances: make([]debt.Outstanding, 0, len(advances)),
		},
	}
	for _, sc := range salaries {
		snap.Salaries[sc.EmployeeID] = sc
	}
	for _, l := range loans {
		snap.Debts.Loans = append(snap.Debts.Loans, l.Outstanding())
	}
	for _, a := range advances {
		snap.Debts.Advances = append(snap.Debts.Advances, a.Outstanding())
	}
	return snap, nil
}

func (s *service) CreateBatch(ctx context.Context, companyID, actorID string, req CreateBatchRequest) (BatchResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	_, periodEnd, err := ParseMonth(req.Month)
	if err != nil {
		return BatchResponse{}, err
	}
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return BatchResponse{}, payrollerrors.ErrInvalidCompanyID
	}

	release, err := s.acquireBatchLock(ctx, companyID, req.Month)
	if err != nil {
		log.Warn("payroll batch creation already running", zap.String("company_id", companyID), zap.String("month", req.Month))
		return BatchResponse{}, err
	}
	defer release()

	exists, err := s.repo.ExistsForMonth(ctx, companyID, req.Month)
	if err != nil {
		log.Error("payroll check existing batch failed", zap.Error(err))
		return BatchResponse{}, err
	}
	if exists {
		return BatchResponse{}, payrollerrors.ErrBatchAlreadyExists
	}

	snap, err := s.loadSnapshot(ctx, companyUUID, req.Month, periodEnd)
	if err != nil {
		log.Error("payroll load sources failed", zap.String("company_id", companyID), zap.Error(err))
		return BatchResponse{}, err
	}

	batch, err := Aggregate(snap)
	if err != nil {
		return BatchResponse{}, err
	}

	now := s.now().UTC()
	batch.CreatedAt = now
	batch.UpdatedAt = now
	if actor, err := uuid.Parse(actorID); err == nil {
		batch.CreatedBy = &actor
	}
	for i := range batch.Items {
		batch.Items[i].CreatedAt = now
		if batch.Items[i].NetSalary.IsNegative() {
			log.Warn("payroll item has negative net salary",
				zap.String("employee_id", batch.Items[i].EmployeeID.String()),
				zap.String("net_salary", batch.Items[i].NetSalary.StringFixed(2)),
			)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("payroll begin tx failed", zap.Error(err))
		return BatchResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreateWithItems(ctx, batch); err != nil {
		log.Error("payroll persist batch failed", zap.String("month", req.Month), zap.Error(err))
		return BatchResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("payroll commit failed", zap.Error(err))
		return BatchResponse{}, mapRepositoryError(err)
	}

	log.Info("payroll batch created",
		zap.String("batch_id", batch.ID.String()),
		zap.String("month", batch.Month),
		zap.Int("employees", batch.TotalEmployees),
		zap.String("total_net", batch.TotalNet.StringFixed(2)),
	)

	return mapToResponse(*batch), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, req ListBatchesRequest) ([]BatchResponse, error) {
	batches, err := s.repo.FindAllByCompany(ctx, companyID, BatchFilter{Status: req.Status, Year: req.Year})
	if err != nil {
		s.logger.Error("list payroll batches failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(batches), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (BatchResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return BatchResponse{}, payrollerrors.ErrBatchNotFound
	}

	batch, err := s.repo.FindByIDAndCompany(ctx, companyID, id, true)
	if err != nil {
		return BatchResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*batch), nil
}

func (s *service) Submit(ctx context.Context, companyID, actorID, id string) (BatchResponse, error) {
	return s.transition(ctx, companyID, actorID, id, StatusPendingApproval)
}

func (s *service) Approve(ctx context.Context, companyID, actorID, id string) (BatchResponse, error) {
	return s.transition(ctx, companyID, actorID, id, StatusApproved)
}

func (s *service) Process(ctx context.Context, companyID, actorID, id string) (BatchResponse, error) {
	return s.transition(ctx, companyID, actorID, id, StatusProcessed)
}

func (s *service) MarkPaid(ctx context.Context, companyID, actorID, id string) (BatchResponse, error) {
	return s.transition(ctx, companyID, actorID, id, StatusPaid)
}

func (s *service) transition(ctx context.Context, companyID, actorID, id, to string) (BatchResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return BatchResponse{}, payrollerrors.ErrBatchNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("payroll begin tx failed", zap.Error(err))
		return BatchResponse{}, err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)
	batch, err := repo.FindByIDAndCompany(ctx, companyID, id, to == StatusProcessed)
	if err != nil {
		return BatchResponse{}, mapRepositoryError(err)
	}

	if !CanTransition(batch.Status, to) {
		return BatchResponse{}, payrollerrors.ErrInvalidStatusTransition
	}

	now := s.now().UTC()
	change := StatusChange{From: batch.Status, To: to, OccurredAt: now}
	if actorID != "" {
		change.ActorID = &actorID
	}

	updated, err := repo.UpdateStatus(ctx, companyID, id, change)
	if err != nil {
		log.Error("payroll update status failed", zap.String("batch_id", id), zap.Error(err))
		return BatchResponse{}, err
	}
	if !updated {
		return BatchResponse{}, payrollerrors.ErrInvalidStatusTransition
	}

	if to == StatusProcessed {
		if err := s.afterProcessed(ctx, tx, batch, actorID, now); err != nil {
			return BatchResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("payroll commit failed", zap.Error(err))
		return BatchResponse{}, err
	}

	batch.Status = to
	batch.UpdatedAt = now
	switch to {
	case StatusPendingApproval:
		batch.SubmittedAt = &now
	case StatusApproved:
		batch.ApprovedAt = &now
		if actor, err := uuid.Parse(actorID); err == nil {
			batch.ApprovedBy = &actor
		}
	case StatusProcessed:
		batch.ProcessedAt = &now
	case StatusPaid:
		batch.PaidAt = &now
	}

	log.Info("payroll batch status changed",
		zap.String("batch_id", id),
		zap.String("from", change.From),
		zap.String("to", to),
	)

	return mapToResponse(*batch), nil
}

// afterProcessed runs inside the status transaction. With an outbox the
// payslips are left to the consumer; otherwise rows are created inline.
func (s *service) afterProcessed(ctx context.Context, tx *sql.Tx, batch *Batch, actorID string, now time.Time) error {
	log := contextutil.GetLogger(ctx, s.logger)

	if s.outbox == nil {
		_, err := s.ensurePayslips(ctx, tx, batch)
		return err
	}

	event, err := kafka.NewOutboxEvent(
		"payroll_batch",
		batch.ID.String(),
		events.PayrollBatchProcessedEventType,
		events.PayrollBatchProcessedTopic,
		contextutil.GetRequestID(ctx),
		events.PayrollBatchProcessedEvent{
			EventType:   events.PayrollBatchProcessedEventType,
			BatchID:     batch.ID.String(),
			CompanyID:   batch.CompanyID.String(),
			Month:       batch.Month,
			ItemCount:   len(batch.Items),
			ProcessedBy: actorID,
			RequestID:   contextutil.GetRequestID(ctx),
			OccurredAt:  now,
		},
	)
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		log.Error("payroll outbox persist failed", zap.String("batch_id", batch.ID.String()), zap.Error(err))
		return err
	}
	return nil
}

func payslipNumber(month string, seq int64) string {
	return fmt.Sprintf("PS-%s-%06d", strings.ReplaceAll(month, "-", ""), seq)
}

// ensurePayslips creates a payslip row for every item that lacks one.
// batch must be loaded with items.
func (s *service) ensurePayslips(ctx context.Context, tx *sql.Tx, batch *Batch) (int, error) {
	repo := s.repo.WithTx(tx)
	existing, err := repo.FindPayslipsByBatch(ctx, batch.CompanyID.String(), batch.ID.String())
	if err != nil {
		return 0, err
	}

	covered := make(map[uuid.UUID]struct{}, len(existing))
	for _, p := range existing {
		covered[p.ItemID] = struct{}{}
	}

	counters := s.payslips.Counter.WithTx(tx)
	now := s.now().UTC()
	missing := make([]Payslip, 0, len(batch.Items))
	for _, item := range batch.Items {
		if _, ok := covered[item.ID]; ok {
			continue
		}
		seq, err := counters.GetNextValue(ctx, batch.CompanyID.String(), counter.TypePayslipNumber)
		if err != nil {
			return 0, err
		}
		missing = append(missing, Payslip{
			ID:            uuid.New(),
			CompanyID:     batch.CompanyID,
			BatchID:       batch.ID,
			ItemID:        item.ID,
			EmployeeID:    item.EmployeeID,
			PayslipNumber: payslipNumber(batch.Month, seq),
			CreatedAt:     now,
		})
	}

	if err := repo.CreatePayslips(ctx, missing); err != nil {
		return 0, err
	}
	return len(missing), nil
}

func (s *service) GetPayslips(ctx context.Context, companyID, batchID string) ([]PayslipResponse, error) {
	if _, err := uuid.Parse(batchID); err != nil {
		return nil, payrollerrors.ErrBatchNotFound
	}
	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, batchID, false); err != nil {
		return nil, mapRepositoryError(err)
	}

	payslips, err := s.repo.FindPayslipsByBatch(ctx, companyID, batchID)
	if err != nil {
		return nil, err
	}

	resp := make([]PayslipResponse, len(payslips))
	for i, p := range payslips {
		resp[i] = mapPayslipToResponse(p)
	}
	return resp, nil
}

func (s *service) GeneratePayslips(ctx context.Context, companyID, batchID string) (int, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("batch_id", batchID))

	if _, err := uuid.Parse(batchID); err != nil {
		return 0, payrollerrors.ErrBatchNotFound
	}

	batch, err := s.repo.FindByIDAndCompany(ctx, companyID, batchID, true)
	if err != nil {
		return 0, mapRepositoryError(err)
	}
	if batch.Status != StatusProcessed && batch.Status != StatusPaid {
		return 0, payrollerrors.ErrBatchNotProcessed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("payroll begin tx failed", zap.Error(err))
		return 0, err
	}
	defer tx.Rollback()

	created, err := s.ensurePayslips(ctx, tx, batch)
	if err != nil {
		log.Error("payroll create payslips failed", zap.Error(err))
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("payroll commit failed", zap.Error(err))
		return 0, err
	}
	if created > 0 {
		log.Info("payslips created", zap.Int("count", created))
	}

	if s.payslips.Storage == nil {
		return 0, nil
	}

	payslips, err := s.repo.FindPayslipsByBatch(ctx, companyID, batchID)
	if err != nil {
		return 0, err
	}

	items := make(map[uuid.UUID]Item, len(batch.Items))
	for _, item := range batch.Items {
		items[item.ID] = item
	}

	rendered := 0
	for _, p := range payslips {
		if p.FileURL != nil && *p.FileURL != "" {
			continue
		}
		item, ok := items[p.ItemID]
		if !ok {
			log.Warn("payslip has no matching item", zap.String("payslip_id", p.ID.String()))
			continue
		}

		body, err := renderPayslipPDF(payslipDocument{
			Number:   p.PayslipNumber,
			Month:    batch.Month,
			Employee: item.EmployeeName,
			Item:     item,
		})
		if err != nil {
			return rendered, err
		}

		key := fmt.Sprintf("%s/%s/%s.pdf", companyID, batch.Month, p.PayslipNumber)
		info, err := s.payslips.Storage.Save(ctx, key, bytes.NewReader(body), "application/pdf")
		if err != nil {
			log.Error("payslip upload failed", zap.String("key", key), zap.Error(err))
			return rendered, err
		}

		if err := s.repo.UpdatePayslipFile(ctx, p.ID.String(), info.URL, s.now().UTC()); err != nil {
			return rendered, err
		}
		rendered++
	}

	log.Info("payslips rendered", zap.Int("count", rendered))
	return rendered, nil
}
