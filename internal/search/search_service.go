package search

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

//go:generate mockgen -source=search_service.go -destination=mock/search_service_mock.go -package=mock
type Service interface {
	Search(ctx context.Context, field, value string) ([]SearchResult, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("search.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("search.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Search(ctx context.Context, field, value string) ([]SearchResult, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return []SearchResult{}, nil
	}

	field = strings.ToLower(strings.TrimSpace(field))
	if _, ok := searchFields[field]; !ok {
		// Unrecognized selectors degrade to the multi-field default rather
		// than failing the request.
		if field != "" {
			s.logger.Warn("unknown search field, using default predicate",
				zap.String("field", field),
			)
		}
		field = ""
	}

	s.logger.Debug("search requested",
		zap.String("field", field),
		zap.String("value", value),
	)

	rows, err := s.repo.Search(ctx, field, value)
	if err != nil {
		s.logger.Error("search query failed", zap.Error(err))
		return nil, err
	}

	return mapToResults(rows), nil
}

func mapToResults(rows []Row) []SearchResult {
	results := make([]SearchResult, len(rows))
	for i, row := range rows {
		results[i] = SearchResult{
			ID:                 row.ID,
			FullName:           row.FullName,
			Email:              row.Email,
			PhoneNumber:        row.PhoneNumber,
			PassportNumber:     row.PassportNumber,
			Nationality:        row.Nationality,
			Gender:             row.Gender,
			City:               row.City,
			Country:            row.Country,
			PositionName:       strOrEmpty(row.PositionName),
			DepartmentName:     strOrEmpty(row.DepartmentName),
			EmploymentTypeName: strOrEmpty(row.EmploymentTypeName),
			Degree:             strOrEmpty(row.Degree),
			University:         strOrEmpty(row.University),
			GraduationYear:     intOrZero(row.GraduationYear),
			CompanyName:        strOrEmpty(row.CompanyName),
			JobTitle:           strOrEmpty(row.JobTitle),
		}
	}
	return results
}

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
