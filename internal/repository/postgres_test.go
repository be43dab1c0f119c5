package repository

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"cribinfo/internal/domain"
	"cribinfo/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &PostgresRepository{db: sqlx.NewDb(db, "sqlmock")}, mock
}

func propertyRows(ids ...uuid.UUID) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "city", "title", "area", "bhk", "sqft", "bathrooms",
		"price_lakhs", "amenities", "latitude", "longitude",
	})
	for _, id := range ids {
		rows.AddRow(id, "bangalore", "Test Flat", "Koramangala", 2, 1100, 2,
			85.0, "{gym,pool}", nil, nil)
	}
	return rows
}

func TestSearchSimilarAllFilters(t *testing.T) {
	repo, mock := newMockRepo(t)

	bhk := 2
	maxPrice := 100.0
	minSqft := 800
	filters := model.FilterSet{
		City:     "bangalore",
		BHK:      &bhk,
		MaxPrice: &maxPrice,
		MinSqft:  &minSqft,
		Area:     "Koramangala",
	}
	vec := []float32{0.1, 0.2}

	mock.ExpectQuery(`WHERE city = \$1 AND bhk = \$2 AND price_lakhs <= \$3 AND sqft >= \$4 AND area ILIKE \$5\s+ORDER BY embedding <=> \$6 NULLS LAST\s+LIMIT \$7`).
		WithArgs("bangalore", 2, 100.0, 800, "%Koramangala%", pgvector.NewVector(vec), 10).
		WillReturnRows(propertyRows(uuid.New()))

	properties, err := repo.SearchSimilar(context.Background(), filters, vec, 10)
	require.NoError(t, err)
	assert.Len(t, properties, 1)
	assert.Equal(t, []string{"gym", "pool"}, []string(properties[0].Amenities))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchSimilarNoFilters(t *testing.T) {
	repo, mock := newMockRepo(t)
	vec := []float32{0.3}

	mock.ExpectQuery(`FROM properties\s+ORDER BY embedding <=> \$1 NULLS LAST\s+LIMIT \$2`).
		WithArgs(pgvector.NewVector(vec), 5).
		WillReturnRows(propertyRows())

	properties, err := repo.SearchSimilar(context.Background(), model.FilterSet{}, vec, 5)
	require.NoError(t, err)
	assert.Empty(t, properties)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchSimilarKeepsUnembeddedRows(t *testing.T) {
	// Rows loaded while the embedding backend is disabled carry no vector.
	// They must stay reachable through filter-only matching, so the query
	// may not filter on embedding presence; NULL distances sort last.
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherFunc(
		func(_, actualSQL string) error {
			if strings.Contains(actualSQL, "embedding IS NOT NULL") {
				return fmt.Errorf("query excludes unembedded rows: %s", actualSQL)
			}
			if !strings.Contains(actualSQL, "NULLS LAST") {
				return fmt.Errorf("query does not sort null distances last: %s", actualSQL)
			}
			return nil
		})))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := &PostgresRepository{db: sqlx.NewDb(db, "sqlmock")}

	mock.ExpectQuery("SELECT").WillReturnRows(propertyRows(uuid.New()))

	properties, err := repo.SearchSimilar(context.Background(),
		model.FilterSet{City: "bangalore"}, []float32{0.1}, 10)
	require.NoError(t, err)
	assert.Len(t, properties, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchSimilarStoreError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT`).WillReturnError(assert.AnError)

	_, err := repo.SearchSimilar(context.Background(), model.FilterSet{}, []float32{0.1}, 5)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrStore))
}

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM properties WHERE id = $1`)).
		WithArgs(id).
		WillReturnRows(propertyRows(id))

	property, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, property.ID)
	assert.Equal(t, "bangalore", property.City)
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM properties WHERE id = $1`)).
		WithArgs(id).
		WillReturnRows(propertyRows())

	_, err := repo.GetByID(context.Background(), id)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrNotFound))
}

func TestGetByIDs(t *testing.T) {
	repo, mock := newMockRepo(t)
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = ANY($1)`)).
		WillReturnRows(propertyRows(ids...))

	properties, err := repo.GetByIDs(context.Background(), ids)
	require.NoError(t, err)
	assert.Len(t, properties, 2)
}

func TestCities(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT city FROM properties ORDER BY city`)).
		WillReturnRows(sqlmock.NewRows([]string{"city"}).
			AddRow("bangalore").AddRow("delhi").AddRow("mumbai"))

	cities, err := repo.Cities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"bangalore", "delhi", "mumbai"}, cities)
}

func TestAreasByCity(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE city = $1 AND area IS NOT NULL ORDER BY area`)).
		WithArgs("mumbai").
		WillReturnRows(sqlmock.NewRows([]string{"area"}).
			AddRow("Bandra West").AddRow("Powai"))

	areas, err := repo.AreasByCity(context.Background(), "mumbai")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bandra West", "Powai"}, areas)
}

func TestUpdateEmbedding(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()
	vec := []float32{0.1, 0.2, 0.3}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE properties SET embedding = $1 WHERE id = $2`)).
		WithArgs(pgvector.NewVector(vec), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateEmbedding(context.Background(), id, vec))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMissingEmbeddings(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE city = $1 AND embedding IS NULL`)).
		WithArgs("bangalore").
		WillReturnRows(propertyRows(uuid.New(), uuid.New()))

	properties, err := repo.MissingEmbeddings(context.Background(), "bangalore")
	require.NoError(t, err)
	assert.Len(t, properties, 2)
}
