package refdata

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	ReferenceDataCacheKey = "refdata:all"
	cacheTTL              = 1 * time.Hour
)

type LookupItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ReferenceDataResponse struct {
	Departments     []LookupItem `json:"departments"`
	Positions       []LookupItem `json:"positions"`
	EmploymentTypes []LookupItem `json:"employmentTypes"`
}

//go:generate mockgen -source=refdata_service.go -destination=mock/refdata_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) (ReferenceDataResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("refdata.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("refdata.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// GetAll serves the three lookup tables from cache when possible. Master
// data changes out of band, so a 1 hour TTL is acceptable staleness.
func (s *service) GetAll(ctx context.Context) (ReferenceDataResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, ReferenceDataCacheKey).Result(); err == nil {
			var resp ReferenceDataResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight keeps a cold cache from stampeding the store when every
	// client loads the intake form at once.
	v, err, _ := s.sf.Do(ReferenceDataCacheKey, func() (interface{}, error) {
		departments, err := s.repo.FindAllDepartments(ctx)
		if err != nil {
			return nil, err
		}
		positions, err := s.repo.FindAllPositions(ctx)
		if err != nil {
			return nil, err
		}
		employmentTypes, err := s.repo.FindAllEmploymentTypes(ctx)
		if err != nil {
			return nil, err
		}

		resp := ReferenceDataResponse{
			Departments:     mapToItems(departments, func(d Department) (int64, string) { return d.ID, d.Name }),
			Positions:       mapToItems(positions, func(p Position) (int64, string) { return p.ID, p.Name }),
			EmploymentTypes: mapToItems(employmentTypes, func(e EmploymentType) (int64, string) { return e.ID, e.Name }),
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, ReferenceDataCacheKey, string(jsonData), cacheTTL).Err(); err != nil {
					s.logger.Error("cache reference data failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("load reference data failed", zap.Error(err))
		return ReferenceDataResponse{}, err
	}

	return v.(ReferenceDataResponse), nil
}

func mapToItems[T any](rows []T, extract func(T) (int64, string)) []LookupItem {
	items := make([]LookupItem, len(rows))
	for i, row := range rows {
		id, name := extract(row)
		items[i] = LookupItem{ID: id, Name: name}
	}
	return items
}
