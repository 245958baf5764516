package nitaqat

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"ksa-hris/internal/employee"
	"ksa-hris/internal/events"
	"ksa-hris/internal/messaging/kafka"
	nitaqaterrors "ksa-hris/internal/nitaqat/errors"
	"ksa-hris/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	LatestSnapshotKeyPrefix = "nitaqat:latest:"
	latestSnapshotTTL       = 10 * time.Minute
)

func GetLatestSnapshotKey(companyID string) string {
	return LatestSnapshotKeyPrefix + companyID
}

// RosterReader is satisfied by employee.Repository.
type RosterReader interface {
	FindActiveByCompany(ctx context.Context, companyID string) ([]employee.Employee, error)
}

//go:generate mockgen -source=nitaqat_service.go -destination=mock/nitaqat_service_mock.go -package=mock
type Service interface {
	Calculate(ctx context.Context, companyID, actorID string, req CalculateRequest) (SnapshotResponse, error)
	GetLatest(ctx context.Context, companyID string) (SnapshotResponse, error)
	GetHistory(ctx context.Context, companyID string) ([]SnapshotResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	roster RosterReader
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, roster RosterReader, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, roster, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	roster RosterReader,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("nitaqat.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("nitaqat.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		roster: roster,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		now:    time.Now,
		logger: l,
	}
}

func toRoster(employees []employee.Employee) []RosterEntry {
	roster := make([]RosterEntry, 0, len(employees))
	for _, e := range employees {
		roster = append(roster, RosterEntry{
			EmployeeID:    e.ID,
			IsSaudi:       e.IsSaudi,
			HasDisability: e.HasDisability,
			BasicSalary:   e.BasicSalary,
		})
	}
	return roster
}

func (s *service) Calculate(ctx context.Context, companyID, actorID string, req CalculateRequest) (SnapshotResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SnapshotResponse{}, nitaqaterrors.ErrInvalidCompanyID
	}

	calcDate := s.now().UTC().Truncate(24 * time.Hour)
	if req.CalculationDate != "" {
		d, err := time.Parse("2006-01-02", req.CalculationDate)
		if err != nil {
			return SnapshotResponse{}, nitaqaterrors.ErrInvalidCalculationDate
		}
		calcDate = d
	}

	employees, err := s.roster.FindActiveByCompany(ctx, companyID)
	if err != nil {
		log.Error("nitaqat load roster failed", zap.String("company_id", companyID), zap.Error(err))
		return SnapshotResponse{}, err
	}

	result := Classify(toRoster(employees))
	if result.RequiresSaudiEmployee {
		log.Warn("exempt entity has no saudi employee", zap.String("company_id", companyID))
	}

	snapshot := &Snapshot{
		ID:                    uuid.New(),
		CompanyID:             companyUUID,
		CalculationDate:       calcDate,
		Sector:                req.Sector,
		TotalEmployees:        result.TotalEmployees,
		SaudiEmployees:        result.SaudiEmployees,
		EffectiveSaudiCount:   result.EffectiveSaudiCount,
		SaudizationPercentage: result.Percentage,
		Zone:                  string(result.Zone),
		EntitySize:            string(result.EntitySize),
		EmployeesNeeded:       result.EmployeesNeeded,
		CreatedAt:             s.now().UTC(),
	}
	if result.NextZone != nil {
		nz := string(*result.NextZone)
		snapshot.NextZone = &nz
	}
	if actor, err := uuid.Parse(actorID); err == nil {
		snapshot.CreatedBy = &actor
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("nitaqat begin tx failed", zap.Error(err))
		return SnapshotResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, snapshot); err != nil {
		log.Error("nitaqat persist snapshot failed", zap.Error(err))
		return SnapshotResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(
			"nitaqat_snapshot",
			snapshot.ID.String(),
			events.NitaqatSnapshotCreatedEventType,
			events.NitaqatSnapshotCreatedTopic,
			rid,
			events.NitaqatSnapshotCreatedEvent{
				EventType:             events.NitaqatSnapshotCreatedEventType,
				SnapshotID:            snapshot.ID.String(),
				CompanyID:             companyID,
				Zone:                  snapshot.Zone,
				SaudizationPercentage: snapshot.SaudizationPercentage.StringFixed(2),
				OccurredAt:            snapshot.CreatedAt,
			},
		)
		if err != nil {
			return SnapshotResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("nitaqat outbox persist failed", zap.Error(err))
			return SnapshotResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("nitaqat commit failed", zap.Error(err))
		return SnapshotResponse{}, err
	}

	s.invalidateLatest(ctx, companyID)

	log.Info("nitaqat snapshot created",
		zap.String("company_id", companyID),
		zap.String("snapshot_id", snapshot.ID.String()),
		zap.String("zone", snapshot.Zone),
		zap.String("percentage", snapshot.SaudizationPercentage.StringFixed(2)),
	)

	return mapToResponse(*snapshot), nil
}

func (s *service) invalidateLatest(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	key := GetLatestSnapshotKey(companyID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Error("failed to invalidate latest snapshot cache", zap.String("key", key), zap.Error(err))
	}
}

func (s *service) GetLatest(ctx context.Context, companyID string) (SnapshotResponse, error) {
	cacheKey := GetLatestSnapshotKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp SnapshotResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		snapshot, err := s.repo.FindLatest(ctx, companyID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToResponse(*snapshot)
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, data, latestSnapshotTTL).Err(); err != nil {
					s.logger.Warn("cache latest snapshot failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return SnapshotResponse{}, err
	}

	return v.(SnapshotResponse), nil
}

func (s *service) GetHistory(ctx context.Context, companyID string) ([]SnapshotResponse, error) {
	snapshots, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("get nitaqat history failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(snapshots), nil
}
