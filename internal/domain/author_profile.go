package domain

import (
	"time"

	"gorm.io/datatypes"
)

// AuthorProfile represents an author's public profile (author_profiles table).
// The profile itself carries no moderation status; whether the owning user is
// a visible author is gated by User.IsAuthor, flipped on job approval.
type AuthorProfile struct {
	ID                 string                      `gorm:"column:id;primaryKey;size:36" json:"id"`
	UserID             string                      `gorm:"column:user_id;size:36;uniqueIndex" json:"user_id"`
	PreNominals        string                      `gorm:"column:pre_nominals;size:50" json:"pre_nominals,omitempty"`
	MiddleInitials     string                      `gorm:"column:middle_initials;size:50" json:"middle_initials,omitempty"`
	CountryOfResidence string                      `gorm:"column:country_of_residence;size:100" json:"country_of_residence"`
	Bio                string                      `gorm:"column:bio;type:text" json:"bio"`
	Links              datatypes.JSONSlice[string] `gorm:"column:links" json:"links,omitempty"`
	ImageURL           string                      `gorm:"column:image_url;size:500" json:"image_url,omitempty"`
	CreatedAt          time.Time                   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time                   `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (AuthorProfile) TableName() string {
	return "author_profiles"
}

// CreateAuthorProfileRequest is the body of the profile creation endpoint
type CreateAuthorProfileRequest struct {
	PreNominals        string   `json:"pre_nominals"`
	MiddleInitials     string   `json:"middle_initials"`
	CountryOfResidence string   `json:"country_of_residence" binding:"required"`
	Bio                string   `json:"bio" binding:"required"`
	Links              []string `json:"links"`
	ImageURL           string   `json:"image_url"`
}

// UpdateAuthorProfileRequest is the body of the profile update endpoint.
// All fields optional; at least one must be set.
type UpdateAuthorProfileRequest struct {
	PreNominals        *string   `json:"pre_nominals"`
	MiddleInitials     *string   `json:"middle_initials"`
	CountryOfResidence *string   `json:"country_of_residence"`
	Bio                *string   `json:"bio"`
	Links              *[]string `json:"links"`
	ImageURL           *string   `json:"image_url"`
}

// Empty reports whether the update carries no fields.
func (r *UpdateAuthorProfileRequest) Empty() bool {
	return r.PreNominals == nil && r.MiddleInitials == nil &&
		r.CountryOfResidence == nil && r.Bio == nil &&
		r.Links == nil && r.ImageURL == nil
}

// AuthorListItem is an author directory entry: user display fields joined
// with the profile
type AuthorListItem struct {
	UserID             string `json:"user_id"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	PreNominals        string `json:"pre_nominals,omitempty"`
	MiddleInitials     string `json:"middle_initials,omitempty"`
	CountryOfResidence string `json:"country_of_residence"`
	Bio                string `json:"bio"`
	ImageURL           string `json:"image_url,omitempty"`
}

// AuthorDetail is a public author page: the directory entry plus the
// author's approved answers
type AuthorDetail struct {
	AuthorListItem
	Answers []AnswerWithQuestion `json:"answers"`
}
