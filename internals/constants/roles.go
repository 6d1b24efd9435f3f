package constants

// Role user
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// Status class listing
const (
	ClassStatusPending  = "pending"
	ClassStatusApproved = "approved"
	ClassStatusDenied   = "denied"
)

// Pesan error standar
const (
	MsgUnauthorized      = "unauthorized access"
	MsgForbidden         = "forbidden access"
	MsgUserAlreadyExists = "user already exists"
	MsgServerRunning     = "SERVER IS RUNNING"
)
