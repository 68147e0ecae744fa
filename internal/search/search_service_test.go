package search_test

import (
	"context"
	"errors"
	"testing"

	"go-personnel/internal/search"

	"github.com/stretchr/testify/assert"
)

type fakeSearchRepository struct {
	SearchFn func(ctx context.Context, field, value string) ([]search.Row, error)
	calls    int
}

func (f *fakeSearchRepository) Search(ctx context.Context, field, value string) ([]search.Row, error) {
	f.calls++
	return f.SearchFn(ctx, field, value)
}

func TestSearchService_EmptyValueShortCircuits(t *testing.T) {
	repo := &fakeSearchRepository{
		SearchFn: func(ctx context.Context, field, value string) ([]search.Row, error) {
			t.Fatal("repository must not be queried for an empty value")
			return nil, nil
		},
	}
	svc := search.NewService(repo)

	for _, value := range []string{"", "   ", "\t\n"} {
		results, err := svc.Search(context.Background(), "full_name", value)

		assert.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	}
	assert.Zero(t, repo.calls)
}

func TestSearchService_NormalizesField(t *testing.T) {
	t.Run("field is lowercased and trimmed", func(t *testing.T) {
		repo := &fakeSearchRepository{
			SearchFn: func(ctx context.Context, field, value string) ([]search.Row, error) {
				assert.Equal(t, "full_name", field)
				assert.Equal(t, "jane", value)
				return nil, nil
			},
		}
		svc := search.NewService(repo)

		_, err := svc.Search(context.Background(), " Full_Name ", " jane ")

		assert.NoError(t, err)
		assert.Equal(t, 1, repo.calls)
	})

	t.Run("unknown field degrades to the default predicate", func(t *testing.T) {
		repo := &fakeSearchRepository{
			SearchFn: func(ctx context.Context, field, value string) ([]search.Row, error) {
				assert.Equal(t, "", field)
				return nil, nil
			},
		}
		svc := search.NewService(repo)

		_, err := svc.Search(context.Background(), "shoe_size", "42")

		assert.NoError(t, err)
		assert.Equal(t, 1, repo.calls)
	})
}

func TestSearchService_MapsRows(t *testing.T) {
	position := "Engineer"
	year := 2015

	repo := &fakeSearchRepository{
		SearchFn: func(ctx context.Context, field, value string) ([]search.Row, error) {
			return []search.Row{
				{
					ID:             1,
					FullName:       "Jane Doe",
					Email:          "jane@example.com",
					PositionName:   &position,
					GraduationYear: &year,
					MatchRank:      0,
				},
				{
					ID:        2,
					FullName:  "John Janeway",
					Email:     "john@example.com",
					MatchRank: 1,
				},
			}, nil
		},
	}
	svc := search.NewService(repo)

	results, err := svc.Search(context.Background(), "full_name", "jane")

	assert.NoError(t, err)
	assert.Len(t, results, 2)

	// Ordering is decided by the query; the mapping must preserve it.
	assert.Equal(t, int64(1), results[0].ID)
	assert.Equal(t, "Engineer", results[0].PositionName)
	assert.Equal(t, 2015, results[0].GraduationYear)

	assert.Equal(t, int64(2), results[1].ID)
	assert.Equal(t, "", results[1].PositionName)
	assert.Equal(t, 0, results[1].GraduationYear)
}

func TestSearchService_PropagatesRepositoryError(t *testing.T) {
	repo := &fakeSearchRepository{
		SearchFn: func(ctx context.Context, field, value string) ([]search.Row, error) {
			return nil, errors.New("query timeout")
		},
	}
	svc := search.NewService(repo)

	results, err := svc.Search(context.Background(), "email", "jane")

	assert.Error(t, err)
	assert.Nil(t, results)
}
