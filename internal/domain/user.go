package domain

import "time"

// User roles
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
	RoleAuthor     = "author"
)

// ValidRole reports whether role is one of the recognized role values.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin, RoleSuperAdmin, RoleAuthor:
		return true
	}
	return false
}

// User represents a registered account (users table)
type User struct {
	ID           string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Email        string    `gorm:"column:email;uniqueIndex;size:255" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255" json:"-"`
	FirstName    string    `gorm:"column:first_name;size:100" json:"first_name"`
	LastName     string    `gorm:"column:last_name;size:100" json:"last_name"`
	Role         string    `gorm:"column:role;size:20;default:user" json:"role"`
	IsAuthor     bool      `gorm:"column:is_author;default:false" json:"is_author"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// UserResponse is the public representation of a user
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	IsAuthor  bool   `json:"is_author"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts a User to its public representation
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsAuthor:  u.IsAuthor,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// Principal is the authenticated caller, threaded explicitly into service
// calls that gate on identity or role. No service reads ambient auth state.
type Principal struct {
	UserID   string
	Email    string
	Role     string
	IsAuthor bool
}

// CanModerate reports whether the caller may use the moderation API.
func (p Principal) CanModerate() bool {
	return p.Role == RoleAdmin || p.Role == RoleSuperAdmin
}

// UpdateUserRequest is the admin request to change a user's role
type UpdateUserRequest struct {
	Role string `json:"role" binding:"required"`
}
