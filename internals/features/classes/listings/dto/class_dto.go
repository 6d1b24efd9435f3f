package dto

import (
	"craftedshots_backend/internals/constants"
	"craftedshots_backend/internals/features/classes/listings/model"
)

// CreateClassRequest: body POST /alldata dari instructor.
type CreateClassRequest struct {
	ClassTitle      string  `json:"classTitle"`
	ClassImage      string  `json:"classImage"`
	CourseFee       float64 `json:"courseFee"`
	InstructorName  string  `json:"instructorName"`
	InstructorEmail string  `json:"instructorEmail"`
	AvailableSeats  int     `json:"availableSeats"`
}

// ToModel: listing baru selalu pending sampai admin memutuskan.
func (r *CreateClassRequest) ToModel() *model.ClassModel {
	return &model.ClassModel{
		ClassTitle:      r.ClassTitle,
		ClassImage:      r.ClassImage,
		CourseFee:       r.CourseFee,
		InstructorName:  r.InstructorName,
		InstructorEmail: r.InstructorEmail,
		AvailableSeats:  r.AvailableSeats,
		Status:          constants.ClassStatusPending,
	}
}

// UpdateClassRequest: PATCH /updateclass/:id, hanya judul dan biaya.
type UpdateClassRequest struct {
	ClassTitle string  `json:"classTitle"`
	CourseFee  float64 `json:"courseFee"`
}

func (r *UpdateClassRequest) ToSet() map[string]any {
	return map[string]any{
		"class_title": r.ClassTitle,
		"course_fee":  r.CourseFee,
	}
}

// DenyClassRequest: PATCH /denyclass/:id.
type DenyClassRequest struct {
	Feedback string `json:"feedback"`
}
