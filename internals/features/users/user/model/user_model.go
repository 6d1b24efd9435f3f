package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"craftedshots_backend/internals/constants"
)

// UserModel merepresentasikan collection users.
// Dibuat saat sign-in pertama, role hanya diubah lewat endpoint role, tidak pernah dihapus.
type UserModel struct {
	ID       uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Email    string            `gorm:"column:email;size:255;unique;not null"                    json:"email"`
	Name     string            `gorm:"column:name;size:120"                                     json:"name"`
	PhotoURL string            `gorm:"column:photo_url;type:text"                               json:"photoURL,omitempty"`
	Role     string            `gorm:"column:role;type:varchar(20)"                             json:"role,omitempty"`
	Profile  datatypes.JSONMap `gorm:"column:profile;type:jsonb"                                json:"profile,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) IsAdmin() bool      { return u.Role == constants.RoleAdmin }
func (u *UserModel) IsInstructor() bool { return u.Role == constants.RoleInstructor }

// IsStudent: role kosong juga dianggap student.
func (u *UserModel) IsStudent() bool { return !u.IsAdmin() && !u.IsInstructor() }
