package app

import (
	"database/sql"

	"ksa-hris/internal/config"
	"ksa-hris/internal/debt"
	"ksa-hris/internal/employee"
	"ksa-hris/internal/employeesalary"
	"ksa-hris/internal/eos"
	"ksa-hris/internal/gosi"
	"ksa-hris/internal/messaging/kafka"
	"ksa-hris/internal/nitaqat"
	"ksa-hris/internal/payroll"
	"ksa-hris/internal/rbac"
	"ksa-hris/internal/rbac/infra"
	"ksa-hris/internal/shared/counter"
	"ksa-hris/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// payrollService builds the payroll service shared by the API and the consumer.
// With an outbox repo, processing a batch queues an event instead of creating
// payslips inline.
func payrollService(
	sqlDB *sql.DB,
	gormDB *gorm.DB,
	files storage.FileStorage,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger *zap.Logger,
) payroll.Service {
	sources := payroll.Sources{
		Roster:   employee.NewRepository(gormDB),
		Salaries: employeesalary.NewRepository(gormDB),
		Debts:    debt.NewRepository(gormDB),
	}
	payslips := payroll.PayslipDeps{
		Counter: counter.NewRepository(gormDB),
		Storage: files,
	}
	repo := payroll.NewRepository(gormDB)
	if outboxRepo != nil {
		return payroll.NewServiceWithOutbox(sqlDB, repo, sources, payslips, outboxRepo, rdb, logger)
	}
	return payroll.NewService(sqlDB, repo, sources, payslips, rdb, logger)
}

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	employeeSalaryRepo := employeesalary.NewRepository(gormDB)
	debtRepo := debt.NewRepository(gormDB)
	eosRepo := eos.NewRepository(gormDB)
	nitaqatRepo := nitaqat.NewRepository(gormDB)

	var outboxRepo kafka.OutboxRepository
	if cfg.Kafka.Broker != "" {
		outboxRepo = kafka.NewOutboxRepository(db)
	}

	files, err := storage.New(cfg)
	if err != nil {
		return err
	}

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	employeeSalaryService := employeesalary.NewService(db, employeeSalaryRepo, employeeRepo, logger)
	eosService := eos.NewService(db, eosRepo, employeeRepo, debtRepo, eos.ParseAccrualPolicy(cfg.EOS.AccrualPolicy), logger)
	nitaqatService := nitaqat.NewServiceWithOutbox(db, nitaqatRepo, employeeRepo, outboxRepo, rdb, logger)
	payrollSvc := payrollService(db, gormDB, files, outboxRepo, rdb, logger)

	// --- Handlers ---
	gosiHandler := gosi.NewHandler()
	nitaqatHandler := nitaqat.NewHandler(nitaqatService)
	eosHandler := eos.NewHandler(eosService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollSvc, rdb)
	employeeSalaryHandler := employeesalary.NewHandler(employeeSalaryService)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		gosi.RegisterRoutes(api, gosiHandler, rbacService)
		nitaqat.RegisterRoutes(api, nitaqatHandler, rbacService)
		eos.RegisterRoutes(api, eosHandler, rbacService)
		employeesalary.RegisterRoutes(api, employeeSalaryHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler)
		if rdb != nil {
			payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		} else {
			payroll.RegisterRoutes(api, payrollHandler, rbacService)
		}
	}

	return nil
}
