package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// JobType identifies the kind of change a moderation job gates.
type JobType string

// Job types
const (
	JobTypeNewAuthor        JobType = "new_author"
	JobTypeProfileUpdate    JobType = "profile_update"
	JobTypeAnswerSubmission JobType = "answer_submission"
)

// Valid reports whether t is a recognized job type.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeNewAuthor, JobTypeProfileUpdate, JobTypeAnswerSubmission:
		return true
	}
	return false
}

// Prefix returns the admin number prefix for the job type.
func (t JobType) Prefix() string {
	switch t {
	case JobTypeNewAuthor:
		return "AUTH"
	case JobTypeProfileUpdate:
		return "PROF"
	case JobTypeAnswerSubmission:
		return "ANS"
	}
	return "JOB"
}

// JobStatus is the moderation state of a job. Answers reuse the same values
// for their own visibility status.
type JobStatus string

// Job statuses
const (
	JobStatusPending  JobStatus = "pending"
	JobStatusApproved JobStatus = "approved"
	JobStatusRejected JobStatus = "rejected"
)

// Valid reports whether s is a recognized status value.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusApproved, JobStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether s is a final state with no further transitions.
func (s JobStatus) Terminal() bool {
	return s == JobStatusApproved || s == JobStatusRejected
}

// Job is a moderation request gating an entity change until an administrator
// approves or rejects it (jobs table).
type Job struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	AdminNo   string    `gorm:"column:admin_no;size:16" json:"admin_no"`
	Type      JobType   `gorm:"column:type;size:32" json:"type"`
	Status    JobStatus `gorm:"column:status;size:16;default:pending" json:"status"`
	UserID    string    `gorm:"column:user_id;size:36;index" json:"user_id"`
	RelatedID string    `gorm:"column:related_id;size:36" json:"related_id,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Job) TableName() string {
	return "jobs"
}

// NewJob builds a pending job for the given change. The admin number is a
// display code only; the time-based suffix makes collisions unlikely but does
// not rule them out, so it is never used as a lookup key.
func NewJob(t JobType, userID, relatedID string) *Job {
	now := time.Now()
	return &Job{
		ID:        uuid.New().String(),
		AdminNo:   NewAdminNo(t, now),
		Type:      t,
		Status:    JobStatusPending,
		UserID:    userID,
		RelatedID: relatedID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewAdminNo formats the human-readable display code for a job:
// {prefix}-{last six digits of unix milliseconds}.
func NewAdminNo(t JobType, now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return t.Prefix() + "-" + ms
}

// JobUser is the owning user's display fields resolved onto job rows.
// Nil when the user has since been deleted.
type JobUser struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// JobListItem is a job row with its owner resolved for the admin list view.
type JobListItem struct {
	Job
	User *JobUser `json:"user"`
}

// JobDetail is a job with its owner and the entity it concerns resolved.
// RelatedData is an AuthorProfile or an AnswerWithQuestion depending on the
// job type, or nil when the related entity no longer exists.
type JobDetail struct {
	Job
	User        *JobUser    `json:"user"`
	RelatedData interface{} `json:"related_data"`
}

// JobStatusRequest is the body of the moderation transition endpoint.
type JobStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
