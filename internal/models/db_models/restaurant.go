package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type Restaurant struct {
	ID              int64            `gorm:"primaryKey" json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Picture         string           `json:"picture"`
	Destination     string           `json:"destination"`
	Rating          *float64         `json:"rating"`
	Cuisines        pq.StringArray   `gorm:"type:text[]" json:"cuisines"`
	GeneralLocation string           `gorm:"column:general_location" json:"general_location"`
	Embedding       *pgvector.Vector `gorm:"type:vector(768)" json:"-"`
	CreatedAt       time.Time        `gorm:"autoCreateTime" json:"-"`

	CombinedScore float64 `gorm:"column:combined_score;->" json:"combined_score,omitempty"`
}

func (Restaurant) TableName() string { return "restaurants" }
