package payroll_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"ksa-hris/internal/debt"
	debtMock "ksa-hris/internal/debt/mock"
	"ksa-hris/internal/employee"
	"ksa-hris/internal/employeesalary"
	"ksa-hris/internal/events"
	"ksa-hris/internal/messaging/kafka"
	kafkaMock "ksa-hris/internal/messaging/kafka/mock"
	"ksa-hris/internal/payroll"
	payrollerrors "ksa-hris/internal/payroll/errors"
	payrollMock "ksa-hris/internal/payroll/mock"
	"ksa-hris/internal/shared/counter"
	counterMock "ksa-hris/internal/shared/counter/mock"
	"ksa-hris/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const batchLockTTL = 60 * time.Second

type memoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	err     error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: map[string][]byte{}}
}

func (m *memoryStorage) Save(ctx context.Context, key string, body io.Reader, contentType string) (*storage.FileInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return &storage.FileInfo{Key: key, URL: m.URL(key), FileSize: int64(len(data)), FileType: contentType}, nil
}

func (m *memoryStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memoryStorage) URL(key string) string {
	return "https://files.test/" + key
}

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	redismock redismock.ClientMock
	service   payroll.Service
	repo      *payrollMock.MockRepository
	roster    *payrollMock.MockRosterReader
	salaries  *payrollMock.MockSalaryReader
	debts     *debtMock.MockRepository
	counter   *counterMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	files     *memoryStorage
}

func setupServiceTest(t *testing.T, withOutbox bool) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	rdb, redisMock := redismock.NewClientMock()

	deps := &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		redismock: redisMock,
		repo:      payrollMock.NewMockRepository(ctrl),
		roster:    payrollMock.NewMockRosterReader(ctrl),
		salaries:  payrollMock.NewMockSalaryReader(ctrl),
		debts:     debtMock.NewMockRepository(ctrl),
		counter:   counterMock.NewMockRepository(ctrl),
		outbox:    kafkaMock.NewMockOutboxRepository(ctrl),
		files:     newMemoryStorage(),
	}

	sources := payroll.Sources{Roster: deps.roster, Salaries: deps.salaries, Debts: deps.debts}
	payslips := payroll.PayslipDeps{Counter: deps.counter, Storage: deps.files}
	if withOutbox {
		deps.service = payroll.NewServiceWithOutbox(db, deps.repo, sources, payslips, deps.outbox, rdb, zap.NewNop())
	} else {
		deps.service = payroll.NewService(db, deps.repo, sources, payslips, rdb, zap.NewNop())
	}
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func expectSources(deps *serviceDeps, companyID string, employees []employee.Employee, salaries []employeesalary.SalaryComponents) {
	deps.roster.EXPECT().FindActiveByCompany(gomock.Any(), companyID).Return(employees, nil)
	deps.salaries.EXPECT().FindLatestByCompany(gomock.Any(), companyID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, companyID string, asOf time.Time) ([]employeesalary.SalaryComponents, error) {
			return salaries, nil
		})
	deps.debts.EXPECT().FindActiveLoans(gomock.Any(), companyID, gomock.Any()).Return([]debt.Loan{}, nil)
	deps.debts.EXPECT().FindActiveAdvances(gomock.Any(), companyID, gomock.Any()).Return([]debt.Advance{}, nil)
}

func TestPayrollService_CreateBatch(t *testing.T) {
	ctx := context.Background()
	companyUUID := uuid.New()
	companyID := companyUUID.String()
	actorID := uuid.New().String()
	lockKey := payroll.GetBatchLockKey(companyID, "2025-01")

	saudi := employee.Employee{ID: uuid.New(), CompanyID: companyUUID, FullName: "Saad", IsSaudi: true}
	expat := employee.Employee{ID: uuid.New(), CompanyID: companyUUID, FullName: "Ravi"}

	t.Run("success persists header and items together", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		deps.redismock.ExpectSetNX(lockKey, "locked", batchLockTTL).SetVal(true)
		deps.repo.EXPECT().ExistsForMonth(gomock.Any(), companyID, "2025-01").Return(false, nil)
		deps.roster.EXPECT().FindActiveByCompany(gomock.Any(), companyID).Return([]employee.Employee{saudi, expat}, nil)
		deps.salaries.EXPECT().FindLatestByCompany(gomock.Any(), companyID, gomock.Any()).
			DoAndReturn(func(ctx context.Context, companyID string, asOf time.Time) ([]employeesalary.SalaryComponents, error) {
				assert.Equal(t, "2025-01-31", asOf.Format("2006-01-02"))
				return []employeesalary.SalaryComponents{
					salaryFor(saudi.ID, "5000", "2000", "0", "0"),
					salaryFor(expat.ID, "6000", "1000", "0", "0"),
				}, nil
			})
		deps.debts.EXPECT().FindActiveLoans(gomock.Any(), companyID, gomock.Any()).
			Return([]debt.Loan{{ID: uuid.New(), EmployeeID: expat.ID, RemainingAmount: d("2000"), MonthlyInstallment: d("400")}}, nil)
		deps.debts.EXPECT().FindActiveAdvances(gomock.Any(), companyID, gomock.Any()).Return(nil, nil)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CreateWithItems(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, b *payroll.Batch) error {
			assert.Equal(t, payroll.StatusDraft, b.Status)
			assert.Len(t, b.Items, 2)
			assert.NotNil(t, b.CreatedBy)
			return nil
		})
		deps.redismock.ExpectDel(lockKey).SetVal(1)

		resp, err := deps.service.CreateBatch(ctx, companyID, actorID, payroll.CreateBatchRequest{Month: "2025-01"})

		require.NoError(t, err)
		assert.Equal(t, "draft", resp.Status)
		assert.Equal(t, "2025-01-01", resp.PeriodStart)
		assert.Equal(t, "2025-01-31", resp.PeriodEnd)
		assert.Equal(t, 2, resp.TotalEmployees)
		assertDecimal(t, "14000", resp.TotalGross)
		assertDecimal(t, "1100", resp.TotalDeductions)
		assertDecimal(t, "12900", resp.TotalNet)
		assertDecimal(t, "400", resp.Items[1].LoanDeduction)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("existing batch for month is a conflict", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		deps.redismock.ExpectSetNX(lockKey, "locked", batchLockTTL).SetVal(true)
		deps.repo.EXPECT().ExistsForMonth(gomock.Any(), companyID, "2025-01").Return(true, nil)
		deps.redismock.ExpectDel(lockKey).SetVal(1)

		_, err := deps.service.CreateBatch(ctx, companyID, actorID, payroll.CreateBatchRequest{Month: "2025-01"})

		assert.ErrorIs(t, err, payrollerrors.ErrBatchAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("unique violation on insert is a conflict and rolls back", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		deps.redismock.ExpectSetNX(lockKey, "locked", batchLockTTL).SetVal(true)
		deps.repo.EXPECT().ExistsForMonth(gomock.Any(), companyID, "2025-01").Return(false, nil)
		expectSources(deps, companyID, []employee.Employee{saudi}, nil)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CreateWithItems(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: payroll.BatchUniqueConstraint})
		deps.redismock.ExpectDel(lockKey).SetVal(1)

		_, err := deps.service.CreateBatch(ctx, companyID, actorID, payroll.CreateBatchRequest{Month: "2025-01"})

		assert.ErrorIs(t, err, payrollerrors.ErrBatchAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("concurrent creation is refused while lock is held", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		deps.redismock.ExpectSetNX(lockKey, "locked", batchLockTTL).SetVal(false)

		_, err := deps.service.CreateBatch(ctx, companyID, actorID, payroll.CreateBatchRequest{Month: "2025-01"})

		assert.ErrorIs(t, err, payrollerrors.ErrBatchCreationInProgress)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("redis outage falls back to the database check", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		deps.redismock.ExpectSetNX(lockKey, "locked", batchLockTTL).SetErr(errors.New("connection refused"))
		deps.repo.EXPECT().ExistsForMonth(gomock.Any(), companyID, "2025-01").Return(true, nil)

		_, err := deps.service.CreateBatch(ctx, companyID, actorID, payroll.CreateBatchRequest{Month: "2025-01"})

		assert.ErrorIs(t, err, payrollerrors.ErrBatchAlreadyExists)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("source read failure writes nothing", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		readErr := errors.New("roster unavailable")
		deps.redismock.ExpectSetNX(lockKey, "locked", batchLockTTL).SetVal(true)
		deps.repo.EXPECT().ExistsForMonth(gomock.Any(), companyID, "2025-01").Return(false, nil)
		deps.roster.EXPECT().FindActiveByCompany(gomock.Any(), companyID).Return(nil, readErr)
		deps.salaries.EXPECT().FindLatestByCompany(gomock.Any(), companyID, gomock.Any()).Return(nil, nil).AnyTimes()
		deps.debts.EXPECT().FindActiveLoans(gomock.Any(), companyID, gomock.Any()).Return(nil, nil).AnyTimes()
		deps.debts.EXPECT().FindActiveAdvances(gomock.Any(), companyID, gomock.Any()).Return(nil, nil).AnyTimes()
		deps.redismock.ExpectDel(lockKey).SetVal(1)

		_, err := deps.service.CreateBatch(ctx, companyID, actorID, payroll.CreateBatchRequest{Month: "2025-01"})

		assert.ErrorIs(t, err, readErr)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("validation", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		_, err := deps.service.CreateBatch(ctx, companyID, actorID, payroll.CreateBatchRequest{})
		assert.ErrorIs(t, err, payrollerrors.ErrMonthRequired)

		_, err = deps.service.CreateBatch(ctx, companyID, actorID, payroll.CreateBatchRequest{Month: "2025-13"})
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidMonth)

		_, err = deps.service.CreateBatch(ctx, "not-a-uuid", actorID, payroll.CreateBatchRequest{Month: "2025-01"})
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidCompanyID)
	})
}

func sampleBatch(companyID uuid.UUID, status string, items int) *payroll.Batch {
	b := &payroll.Batch{
		ID:          uuid.New(),
		CompanyID:   companyID,
		Month:       "2025-01",
		PeriodStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		Status:      status,
	}
	for i := 0; i < items; i++ {
		b.Items = append(b.Items, payroll.Item{
			ID:            uuid.New(),
			BatchID:       b.ID,
			CompanyID:     companyID,
			EmployeeID:    uuid.New(),
			EmployeeName:  "Employee",
			BasicSalary:   d("5000"),
			TotalEarnings: d("5000"),
			NetSalary:     d("5000"),
		})
	}
	b.TotalEmployees = items
	return b
}

func TestPayrollService_Transitions(t *testing.T) {
	ctx := context.Background()
	companyUUID := uuid.New()
	companyID := companyUUID.String()
	actorID := uuid.New().String()

	t.Run("submit moves draft to pending approval", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		batch := sampleBatch(companyUUID, payroll.StatusDraft, 0)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, batch.ID.String(), false).Return(batch, nil)
		deps.repo.EXPECT().UpdateStatus(gomock.Any(), companyID, batch.ID.String(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, companyID, id string, change payroll.StatusChange) (bool, error) {
				assert.Equal(t, payroll.StatusDraft, change.From)
				assert.Equal(t, payroll.StatusPendingApproval, change.To)
				require.NotNil(t, change.ActorID)
				assert.Equal(t, actorID, *change.ActorID)
				return true, nil
			})

		resp, err := deps.service.Submit(ctx, companyID, actorID, batch.ID.String())

		require.NoError(t, err)
		assert.Equal(t, "pending_approval", resp.Status)
		assert.NotNil(t, resp.SubmittedAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("approve records approver", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		batch := sampleBatch(companyUUID, payroll.StatusPendingApproval, 0)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, batch.ID.String(), false).Return(batch, nil)
		deps.repo.EXPECT().UpdateStatus(gomock.Any(), companyID, batch.ID.String(), gomock.Any()).Return(true, nil)

		resp, err := deps.service.Approve(ctx, companyID, actorID, batch.ID.String())

		require.NoError(t, err)
		assert.Equal(t, "approved", resp.Status)
		require.NotNil(t, resp.ApprovedBy)
		assert.Equal(t, actorID, *resp.ApprovedBy)
	})

	t.Run("skipping a step is rejected", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		batch := sampleBatch(companyUUID, payroll.StatusDraft, 0)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, batch.ID.String(), false).Return(batch, nil)

		_, err := deps.service.Approve(ctx, companyID, actorID, batch.ID.String())

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidStatusTransition)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("lost race on status update is rejected", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		batch := sampleBatch(companyUUID, payroll.StatusProcessed, 0)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, batch.ID.String(), false).Return(batch, nil)
		deps.repo.EXPECT().UpdateStatus(gomock.Any(), companyID, batch.ID.String(), gomock.Any()).Return(false, nil)

		_, err := deps.service.MarkPaid(ctx, companyID, actorID, batch.ID.String())

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidStatusTransition)
	})

	t.Run("unknown batch", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		_, err := deps.service.Submit(ctx, companyID, actorID, "bad-id")
		assert.ErrorIs(t, err, payrollerrors.ErrBatchNotFound)
	})

	t.Run("process without outbox creates one payslip per item", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		defer deps.db.Close()

		batch := sampleBatch(companyUUID, payroll.StatusApproved, 2)
		existing := []payroll.Payslip{{ID: uuid.New(), ItemID: batch.Items[0].ID, PayslipNumber: "PS-202501-000006"}}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).AnyTimes()
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, batch.ID.String(), true).Return(batch, nil)
		deps.repo.EXPECT().UpdateStatus(gomock.Any(), companyID, batch.ID.String(), gomock.Any()).Return(true, nil)
		deps.repo.EXPECT().FindPayslipsByBatch(gomock.Any(), companyID, batch.ID.String()).Return(existing, nil)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(gomock.Any(), companyID, counter.TypePayslipNumber).Return(int64(7), nil)
		deps.repo.EXPECT().CreatePayslips(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, payslips []payroll.Payslip) error {
			require.Len(t, payslips, 1)
			assert.Equal(t, batch.Items[1].ID, payslips[0].ItemID)
			assert.Equal(t, batch.Items[1].EmployeeID, payslips[0].EmployeeID)
			assert.Equal(t, "PS-202501-000007", payslips[0].PayslipNumber)
			return nil
		})

		resp, err := deps.service.Process(ctx, companyID, actorID, batch.ID.String())

		require.NoError(t, err)
		assert.Equal(t, "processed", resp.Status)
		assert.NotNil(t, resp.ProcessedAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("process with outbox queues event in the same transaction", func(t *testing.T) {
		deps := setupServiceTest(t, true)
		defer deps.db.Close()

		batch := sampleBatch(companyUUID, payroll.StatusApproved, 3)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, batch.ID.String(), true).Return(batch, nil)
		deps.repo.EXPECT().UpdateStatus(gomock.Any(), companyID, batch.ID.String(), gomock.Any()).Return(true, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, events.PayrollBatchProcessedTopic, e.Topic)
			assert.Equal(t, events.PayrollBatchProcessedEventType, e.EventType)
			assert.Equal(t, batch.ID.String(), e.AggregateID)

			var payload events.PayrollBatchProcessedEvent
			require.NoError(t, json.Unmarshal(e.Payload, &payload))
			assert.Equal(t, companyID, payload.CompanyID)
			assert.Equal(t, 3, payload.ItemCount)
			assert.Equal(t, actorID, payload.ProcessedBy)
			return nil
		})

		_, err := deps.service.Process(ctx, companyID, actorID, batch.ID.String())

		require.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls back the transition", func(t *testing.T) {
		deps := setupServiceTest(t, true)
		defer deps.db.Close()

		batch := sampleBatch(companyUUID, payroll.StatusApproved, 1)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, batch.ID.String(), true).Return(batch, nil)
		deps.repo.EXPECT().UpdateStatus(gomock.Any(), companyID, batch.ID.String(), gomock.Any()).Return(true, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		_, err := deps.service.Process(ctx, companyID, actorID, batch.ID.String())

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollService_GeneratePayslips(t *testing.T) {
	ctx := context.Background()
	companyUUID := uuid.New()
	companyID := companyUUID.String()

	t.Run("renders only payslips without a document", func(t *testing.T) {
		deps := setupServiceTest(t, true)
		defer deps.db.Close()

		batch := sampleBatch(companyUUID, payroll.StatusProcessed, 2)
		done := "https://files.test/old.pdf"
		payslips := []payroll.Payslip{
			{ID: uuid.New(), BatchID: batch.ID, ItemID: batch.Items[0].ID, PayslipNumber: "PS-202501-000001", FileURL: &done},
			{ID: uuid.New(), BatchID: batch.ID, ItemID: batch.Items[1].ID, PayslipNumber: "PS-202501-000002"},
		}

		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, batch.ID.String(), true).Return(batch, nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindPayslipsByBatch(gomock.Any(), companyID, batch.ID.String()).Return(payslips, nil).Times(2)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.repo.EXPECT().CreatePayslips(gomock.Any(), gomock.Len(0)).Return(nil)
		deps.repo.EXPECT().UpdatePayslipFile(gomock.Any(), payslips[1].ID.String(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id, url string, at time.Time) error {
				assert.Equal(t, "https://files.test/"+companyID+"/2025-01/PS-202501-000002.pdf", url)
				return nil
			})

		rendered, err := deps.service.GeneratePayslips(ctx, companyID, batch.ID.String())

		require.NoError(t, err)
		assert.Equal(t, 1, rendered)
		body, ok := deps.files.objects[companyID+"/2025-01/PS-202501-000002.pdf"]
		require.True(t, ok)
		assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("batch not yet processed", func(t *testing.T) {
		deps := setupServiceTest(t, true)
		defer deps.db.Close()

		batch := sampleBatch(companyUUID, payroll.StatusApproved, 1)
		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, batch.ID.String(), true).Return(batch, nil)

		_, err := deps.service.GeneratePayslips(ctx, companyID, batch.ID.String())

		assert.ErrorIs(t, err, payrollerrors.ErrBatchNotProcessed)
	})

	t.Run("storage failure is returned", func(t *testing.T) {
		deps := setupServiceTest(t, true)
		defer deps.db.Close()
		deps.files.err = errors.New("bucket unavailable")

		batch := sampleBatch(companyUUID, payroll.StatusPaid, 1)
		payslips := []payroll.Payslip{{ID: uuid.New(), BatchID: batch.ID, ItemID: batch.Items[0].ID, PayslipNumber: "PS-202501-000001"}}

		deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, batch.ID.String(), true).Return(batch, nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindPayslipsByBatch(gomock.Any(), companyID, batch.ID.String()).Return(payslips, nil).Times(2)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.repo.EXPECT().CreatePayslips(gomock.Any(), gomock.Len(0)).Return(nil)

		rendered, err := deps.service.GeneratePayslips(ctx, companyID, batch.ID.String())

		assert.Error(t, err)
		assert.Equal(t, 0, rendered)
	})
}

func TestPayrollService_GetPayslips(t *testing.T) {
	ctx := context.Background()
	companyUUID := uuid.New()
	companyID := companyUUID.String()

	deps := setupServiceTest(t, false)
	defer deps.db.Close()

	batch := sampleBatch(companyUUID, payroll.StatusProcessed, 1)
	deps.repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, batch.ID.String(), false).Return(batch, nil)
	deps.repo.EXPECT().FindPayslipsByBatch(gomock.Any(), companyID, batch.ID.String()).
		Return([]payroll.Payslip{{ID: uuid.New(), BatchID: batch.ID, ItemID: batch.Items[0].ID, PayslipNumber: "PS-202501-000001"}}, nil)

	resp, err := deps.service.GetPayslips(ctx, companyID, batch.ID.String())

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "PS-202501-000001", resp[0].PayslipNumber)
	assert.Nil(t, resp[0].FileURL)
}
