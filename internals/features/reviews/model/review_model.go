package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel read-only dari sisi HTTP; diisi lewat seeder.
type ReviewModel struct {
	ID      uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Name    string    `gorm:"column:name;type:varchar(120)"                            json:"name"`
	Image   string    `gorm:"column:image;type:text"                                   json:"image,omitempty"`
	Details string    `gorm:"column:details;type:text"                                 json:"details"`
	Rating  float64   `gorm:"column:rating;type:numeric(3,1)"                          json:"rating"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (ReviewModel) TableName() string { return "reviews" }
