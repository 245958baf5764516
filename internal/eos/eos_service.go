package eos

import (
	"context"
	"database/sql"
	"time"

	"ksa-hris/internal/debt"
	"ksa-hris/internal/employee"
	employeeerrors "ksa-hris/internal/employee/errors"
	eoserrors "ksa-hris/internal/eos/errors"
	"ksa-hris/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// EmployeeReader is satisfied by employee.Repository.
type EmployeeReader interface {
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*employee.Employee, error)
}

//go:generate mockgen -source=eos_service.go -destination=mock/eos_service_mock.go -package=mock
type Service interface {
	Preview(ctx context.Context, companyID string, req CalculationRequest) (CalculationResponse, error)
	Create(ctx context.Context, companyID, actorID string, req CalculationRequest) (CalculationResponse, error)
	GetAll(ctx context.Context, companyID string) ([]CalculationResponse, error)
	GetByID(ctx context.Context, companyID, id string) (CalculationResponse, error)
	Approve(ctx context.Context, companyID, actorID, id string) (CalculationResponse, error)
	MarkPaid(ctx context.Context, companyID, actorID, id string) (CalculationResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeReader
	debts     debt.Repository
	policy    AccrualPolicy
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeReader,
	debts debt.Repository,
	policy AccrualPolicy,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("eos.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("eos.service")
	}
	if policy == "" {
		policy = AccrualTiered
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		debts:     debts,
		policy:    policy,
		now:       time.Now,
		logger:    l,
	}
}

func remaining(items []debt.Outstanding) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(items))
	for _, o := range items {
		out = append(out, o.RemainingAmount)
	}
	return out
}

// compute resolves defaults from the employee record and runs the calculator.
// The returned Calculation has no status yet.
func (s *service) compute(ctx context.Context, companyID string, req CalculationRequest) (*Calculation, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	terminationDate, err := time.Parse("2006-01-02", req.TerminationDate)
	if err != nil {
		return nil, eoserrors.ErrInvalidDate
	}

	emp, err := s.employees.FindByIDAndCompany(ctx, companyID, employeeID.String())
	if err != nil {
		return nil, employee.MapRepositoryError(err)
	}

	hireDate := emp.HireDate
	if req.HireDate != "" {
		if hireDate, err = time.Parse("2006-01-02", req.HireDate); err != nil {
			return nil, eoserrors.ErrInvalidDate
		}
	}
	salary := emp.BasicSalary
	if req.BasicSalary != nil {
		salary = *req.BasicSalary
	}
	contractType := emp.ContractType
	if req.ContractType != "" {
		contractType = req.ContractType
	}

	snap, err := debt.LoadSnapshot(ctx, s.debts, companyID, []string{employeeID.String()})
	if err != nil {
		return nil, err
	}

	res, err := Calculate(Input{
		HireDate:          hireDate,
		TerminationDate:   terminationDate,
		BasicSalary:       salary,
		ContractType:      contractType,
		TerminationReason: Reason(req.TerminationReason),
		Loans:             remaining(snap.Loans),
		Advances:          remaining(snap.Advances),
		Policy:            s.policy,
	})
	if err != nil {
		return nil, err
	}

	calc := &Calculation{
		ID:                uuid.New(),
		CompanyID:         emp.CompanyID,
		EmployeeID:        employeeID,
		HireDate:          hireDate,
		TerminationDate:   terminationDate,
		ContractType:      contractType,
		TerminationReason: req.TerminationReason,
		BasicSalary:       salary,
		ServiceYears:      res.Service.Years,
		ServiceMonths:     res.Service.Months,
		ServiceDays:       res.Service.Days,
		AccrualPolicy:     string(s.policy),
		GrossBenefit:      res.GrossBenefit,
		LoansDeduction:    res.LoansDeduction,
		AdvancesDeduction: res.AdvancesDeduction,
		NetBenefit:        res.NetBenefit,
		Breakdown:         make([]BreakdownEntry, 0, len(res.Breakdown)),
	}
	for _, row := range res.Breakdown {
		calc.Breakdown = append(calc.Breakdown, BreakdownEntry{
			ID:            uuid.New(),
			CalculationID: calc.ID,
			Year:          row.Year,
			Months:        row.Months,
			Rate:          row.Rate,
			Amount:        row.Amount,
		})
	}
	return calc, nil
}

func (s *service) Preview(ctx context.Context, companyID string, req CalculationRequest) (CalculationResponse, error) {
	calc, err := s.compute(ctx, companyID, req)
	if err != nil {
		return CalculationResponse{}, err
	}

	resp := mapToResponse(*calc)
	resp.ID = ""
	return resp, nil
}

func (s *service) Create(ctx context.Context, companyID, actorID string, req CalculationRequest) (CalculationResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	calc, err := s.compute(ctx, companyID, req)
	if err != nil {
		return CalculationResponse{}, err
	}

	now := s.now().UTC()
	calc.Status = StatusDraft
	calc.CreatedAt = now
	calc.UpdatedAt = now
	if actor, err := uuid.Parse(actorID); err == nil {
		calc.CreatedBy = &actor
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("eos begin tx failed", zap.Error(err))
		return CalculationResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreateWithBreakdown(ctx, calc); err != nil {
		log.Error("eos persist calculation failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return CalculationResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("eos commit failed", zap.Error(err))
		return CalculationResponse{}, err
	}

	log.Info("eos calculation created",
		zap.String("calculation_id", calc.ID.String()),
		zap.String("employee_id", calc.EmployeeID.String()),
		zap.String("net_benefit", calc.NetBenefit.StringFixed(2)),
	)

	return mapToResponse(*calc), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]CalculationResponse, error) {
	calcs, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("list eos calculations failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(calcs), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (CalculationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CalculationResponse{}, eoserrors.ErrCalculationNotFound
	}

	calc, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return CalculationResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*calc), nil
}

func (s *service) Approve(ctx context.Context, companyID, actorID, id string) (CalculationResponse, error) {
	return s.transition(ctx, companyID, actorID, id, StatusApproved)
}

func (s *service) MarkPaid(ctx context.Context, companyID, actorID, id string) (CalculationResponse, error) {
	return s.transition(ctx, companyID, actorID, id, StatusPaid)
}

func (s *service) transition(ctx context.Context, companyID, actorID, id, to string) (CalculationResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return CalculationResponse{}, eoserrors.ErrCalculationNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("eos begin tx failed", zap.Error(err))
		return CalculationResponse{}, err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)
	calc, err := repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return CalculationResponse{}, mapRepositoryError(err)
	}

	if !canTransition(calc.Status, to) {
		return CalculationResponse{}, eoserrors.ErrInvalidStatusTransition
	}

	now := s.now().UTC()
	change := StatusChange{From: calc.Status, To: to, OccurredAt: now}
	if actorID != "" {
		change.ActorID = &actorID
	}

	updated, err := repo.UpdateStatus(ctx, companyID, id, change)
	if err != nil {
		log.Error("eos update status failed", zap.String("calculation_id", id), zap.Error(err))
		return CalculationResponse{}, err
	}
	if !updated {
		return CalculationResponse{}, eoserrors.ErrInvalidStatusTransition
	}

	if err := tx.Commit(); err != nil {
		log.Error("eos commit failed", zap.Error(err))
		return CalculationResponse{}, err
	}

	calc.Status = to
	calc.UpdatedAt = now
	switch to {
	case StatusApproved:
		calc.ApprovedAt = &now
		if actor, err := uuid.Parse(actorID); err == nil {
			calc.ApprovedBy = &actor
		}
	case StatusPaid:
		calc.PaidAt = &now
	}

	log.Info("eos calculation status changed",
		zap.String("calculation_id", id),
		zap.String("from", change.From),
		zap.String("to", to),
	)

	return mapToResponse(*calc), nil
}
