package model

import (
	"time"

	"github.com/google/uuid"
)

// SelectedClassModel adalah niat beli yang masih pending, bukan enrollment.
// Dihapus saat payment selesai atau saat student membatalkan.
type SelectedClassModel struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Email          string     `gorm:"column:email;type:varchar(255);index;not null"            json:"email"`
	ClassID        *uuid.UUID `gorm:"column:class_id;type:uuid"                                json:"classId,omitempty"`
	ClassTitle     string     `gorm:"column:class_title;type:varchar(200)"                     json:"classTitle"`
	ClassImage     string     `gorm:"column:class_image;type:text"                             json:"classImage,omitempty"`
	InstructorName string     `gorm:"column:instructor_name;type:varchar(120)"                 json:"instructorName,omitempty"`
	CourseFee      float64    `gorm:"column:course_fee;type:numeric(12,2)"                     json:"courseFee"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (SelectedClassModel) TableName() string { return "selected_classes" }
