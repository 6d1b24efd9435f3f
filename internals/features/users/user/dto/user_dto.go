package dto

import (
	"strings"

	"gorm.io/datatypes"

	uModel "craftedshots_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest: body sign-in pertama dari client. Field yang tidak
// dikenal disimpan apa adanya di Profile.
type CreateUserRequest struct {
	Email    string
	Name     string
	PhotoURL string
	Role     string
	Extra    map[string]any
}

var knownUserFields = map[string]struct{}{
	"_id": {}, "email": {}, "name": {}, "photoURL": {}, "role": {},
}

// FromBody memecah body JSON bebas menjadi field user + profile.
func FromBody(body map[string]any) CreateUserRequest {
	r := CreateUserRequest{Extra: map[string]any{}}
	r.Email, _ = body["email"].(string)
	r.Name, _ = body["name"].(string)
	r.PhotoURL, _ = body["photoURL"].(string)
	r.Role, _ = body["role"].(string)
	for k, v := range body {
		if _, known := knownUserFields[k]; !known {
			r.Extra[k] = v
		}
	}
	return r
}

// Normalize: trim saja; email tidak di-lowercase supaya cocok dengan
// email di token yang diterbitkan dari body yang sama.
func (r *CreateUserRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Name = strings.TrimSpace(r.Name)
	r.PhotoURL = strings.TrimSpace(r.PhotoURL)
	r.Role = strings.TrimSpace(r.Role)
}

func (r *CreateUserRequest) ToModel() *uModel.UserModel {
	m := &uModel.UserModel{
		Email:    r.Email,
		Name:     r.Name,
		PhotoURL: r.PhotoURL,
		Role:     r.Role,
	}
	if len(r.Extra) > 0 {
		m.Profile = datatypes.JSONMap(r.Extra)
	}
	return m
}
