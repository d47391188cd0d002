package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// Attraction is one catalog row. Embedding is nullable: rows without one are
// only reachable through the lexical paths, never silently promoted by the
// vector scorer. CombinedScore is computed per query and never stored.
type Attraction struct {
	ID              int64            `gorm:"primaryKey" json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Picture         string           `json:"picture"`
	Destination     string           `json:"destination"`
	Rating          *float64         `json:"rating"`
	Categories      pq.StringArray   `gorm:"type:text[]" json:"categories"`
	GeneralLocation string           `gorm:"column:general_location" json:"general_location"`
	Embedding       *pgvector.Vector `gorm:"type:vector(768)" json:"-"`
	CreatedAt       time.Time        `gorm:"autoCreateTime" json:"-"`

	CombinedScore float64 `gorm:"column:combined_score;->" json:"combined_score,omitempty"`
}

func (Attraction) TableName() string { return "attractions" }
