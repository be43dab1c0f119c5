package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// Property represents a single listed property record.
//
// Embedding is nullable: rows loaded before the backfill, or loaded while
// the embedding backend is disabled, carry no vector.
type Property struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	City       string          `json:"city" db:"city"`
	Title      *string         `json:"title,omitempty" db:"title"`
	Area       *string         `json:"area,omitempty" db:"area"`
	BHK        *int            `json:"bhk,omitempty" db:"bhk"`
	Sqft       *int            `json:"sqft,omitempty" db:"sqft"`
	Bathrooms  *int            `json:"bathrooms,omitempty" db:"bathrooms"`
	PriceLakhs *float64        `json:"price_lakhs,omitempty" db:"price_lakhs"`
	Amenities  pq.StringArray  `json:"amenities" db:"amenities"`
	Latitude   *float64        `json:"latitude,omitempty" db:"latitude"`
	Longitude  *float64        `json:"longitude,omitempty" db:"longitude"`
	Embedding  *pgvector.Vector `json:"-" db:"embedding"`
}
