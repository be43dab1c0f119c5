package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"cribinfo/internal/domain"
	"cribinfo/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

const propertyColumns = `id, city, title, area, bhk, sqft, bathrooms, price_lakhs, amenities, latitude, longitude`

// PostgresRepository handles property store operations.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository connects to PostgreSQL and configures the pool.
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, domain.Wrap(domain.ErrStore, "connect", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection.
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// ApplySchema executes a schema script. The script must not use bind
// parameters; lib/pq runs multi-statement strings through the simple
// protocol.
func (r *PostgresRepository) ApplySchema(ctx context.Context, schema string) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return domain.Wrap(domain.ErrStore, "apply schema", err)
	}
	return nil
}

// SearchSimilar returns properties matching the constraint set, ordered by
// ascending cosine distance between their stored embedding and queryVec.
// Rows without an embedding sort last rather than being excluded, so a
// store populated with the embedding backend disabled still returns
// filter-only results.
func (r *PostgresRepository) SearchSimilar(ctx context.Context, filters model.FilterSet, queryVec []float32, limit int) ([]model.Property, error) {
	whereClauses := []string{}
	args := []interface{}{}
	argIndex := 1

	if filters.City != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("city = $%d", argIndex))
		args = append(args, filters.City)
		argIndex++
	}
	if filters.BHK != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("bhk = $%d", argIndex))
		args = append(args, *filters.BHK)
		argIndex++
	}
	if filters.MinPrice != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("price_lakhs >= $%d", argIndex))
		args = append(args, *filters.MinPrice)
		argIndex++
	}
	if filters.MaxPrice != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("price_lakhs <= $%d", argIndex))
		args = append(args, *filters.MaxPrice)
		argIndex++
	}
	if filters.MinSqft != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("sqft >= $%d", argIndex))
		args = append(args, *filters.MinSqft)
		argIndex++
	}
	if filters.MaxSqft != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("sqft <= $%d", argIndex))
		args = append(args, *filters.MaxSqft)
		argIndex++
	}
	if filters.Area != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("area ILIKE $%d", argIndex))
		args = append(args, "%"+filters.Area+"%")
		argIndex++
	}

	where := ""
	if len(whereClauses) > 0 {
		where = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM properties
		%s
		ORDER BY embedding <=> $%d NULLS LAST
		LIMIT $%d
	`, propertyColumns, where, argIndex, argIndex+1)
	args = append(args, pgvector.NewVector(queryVec), limit)

	var properties []model.Property
	if err := r.db.SelectContext(ctx, &properties, query, args...); err != nil {
		return nil, domain.Wrap(domain.ErrStore, "search properties", err)
	}

	return properties, nil
}

// GetByID retrieves a single property.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM properties WHERE id = $1`, propertyColumns)

	var property model.Property
	if err := r.db.GetContext(ctx, &property, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.Wrap(domain.ErrNotFound, "get property", err)
		}
		return nil, domain.Wrap(domain.ErrStore, "get property", err)
	}
	return &property, nil
}

// GetByIDs retrieves a set of properties by their IDs.
func (r *PostgresRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM properties WHERE id = ANY($1)`, propertyColumns)

	var properties []model.Property
	if err := r.db.SelectContext(ctx, &properties, query, pq.Array(ids)); err != nil {
		return nil, domain.Wrap(domain.ErrStore, "get properties", err)
	}
	return properties, nil
}

// Cities returns the distinct cities with listed properties.
func (r *PostgresRepository) Cities(ctx context.Context) ([]string, error) {
	var cities []string
	err := r.db.SelectContext(ctx, &cities,
		`SELECT DISTINCT city FROM properties ORDER BY city`)
	if err != nil {
		return nil, domain.Wrap(domain.ErrStore, "list cities", err)
	}
	return cities, nil
}

// AreasByCity returns the distinct areas within a city.
func (r *PostgresRepository) AreasByCity(ctx context.Context, city string) ([]string, error) {
	var areas []string
	err := r.db.SelectContext(ctx, &areas,
		`SELECT DISTINCT area FROM properties WHERE city = $1 AND area IS NOT NULL ORDER BY area`,
		city)
	if err != nil {
		return nil, domain.Wrap(domain.ErrStore, "list areas", err)
	}
	return areas, nil
}

// Create inserts a property record.
func (r *PostgresRepository) Create(ctx context.Context, p *model.Property) error {
	query := `
		INSERT INTO properties (id, city, title, area, bhk, sqft, bathrooms, price_lakhs, amenities, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.City, p.Title, p.Area, p.BHK, p.Sqft, p.Bathrooms, p.PriceLakhs,
		p.Amenities, p.Latitude, p.Longitude)
	if err != nil {
		return domain.Wrap(domain.ErrStore, "create property", err)
	}
	return nil
}

// UpdateEmbedding stores the embedding vector for a property.
func (r *PostgresRepository) UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE properties SET embedding = $1 WHERE id = $2`,
		pgvector.NewVector(embedding), id)
	if err != nil {
		return domain.Wrap(domain.ErrStore, "update embedding", err)
	}
	return nil
}

// MissingEmbeddings returns properties in a city that have no embedding
// yet. Used by the seeder backfill.
func (r *PostgresRepository) MissingEmbeddings(ctx context.Context, city string) ([]model.Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM properties WHERE city = $1 AND embedding IS NULL`, propertyColumns)

	var properties []model.Property
	if err := r.db.SelectContext(ctx, &properties, query, city); err != nil {
		return nil, domain.Wrap(domain.ErrStore, "list missing embeddings", err)
	}
	return properties, nil
}
