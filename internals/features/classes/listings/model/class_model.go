package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassModel = satu dokumen di collection "alldata" (class listing).
// AvailableSeats tidak dijaga >= 0: settlement yang balapan bisa membuatnya negatif.
type ClassModel struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	ClassTitle      string    `gorm:"column:class_title;type:varchar(200)"                     json:"classTitle"`
	ClassImage      string    `gorm:"column:class_image;type:text"                             json:"classImage,omitempty"`
	CourseFee       float64   `gorm:"column:course_fee;type:numeric(12,2)"                     json:"courseFee"`
	InstructorName  string    `gorm:"column:instructor_name;type:varchar(120)"                 json:"instructorName"`
	InstructorEmail string    `gorm:"column:instructor_email;type:varchar(255);index"          json:"instructorEmail"`
	AvailableSeats  int       `gorm:"column:available_seats;not null;default:0"                json:"availableSeats"`
	Enrolled        int       `gorm:"column:enrolled;not null;default:0"                       json:"enrolled"`
	Status          string    `gorm:"column:status;type:varchar(20);default:'pending'"         json:"status"`
	Feedback        *string   `gorm:"column:feedback;type:text"                                json:"feedback,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (ClassModel) TableName() string { return "classes" }
