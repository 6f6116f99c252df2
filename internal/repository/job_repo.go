package repository

import (
	"github.com/humanity/backend/internal/domain"
	"gorm.io/gorm"
)

// JobRepository handles moderation job data operations
type JobRepository interface {
	WithTx(tx *gorm.DB) JobRepository
	Create(job *domain.Job) error
	GetByID(id string) (*domain.Job, error)
	GetByIDWithUser(id string) (*domain.JobListItem, error)
	List(status domain.JobStatus, page, limit int) ([]domain.JobListItem, int64, error)
	UpdateStatus(id string, status domain.JobStatus) error
	CountByStatus(status domain.JobStatus) (int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// WithTx returns a copy bound to the given transaction
func (r *jobRepository) WithTx(tx *gorm.DB) JobRepository {
	if tx == nil {
		return r
	}
	return &jobRepository{db: tx}
}

func (r *jobRepository) Create(job *domain.Job) error {
	return r.db.Create(job).Error
}

func (r *jobRepository) GetByID(id string) (*domain.Job, error) {
	var job domain.Job
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// jobRow is a job row joined with the owning user's display fields.
// User columns are nullable since the user may have been deleted.
type jobRow struct {
	domain.Job
	UserRowID     *string `gorm:"column:user_row_id"`
	UserFirstName *string `gorm:"column:user_first_name"`
	UserLastName  *string `gorm:"column:user_last_name"`
	UserEmail     *string `gorm:"column:user_email"`
}

func (row *jobRow) toListItem() domain.JobListItem {
	item := domain.JobListItem{Job: row.Job}
	if row.UserRowID != nil {
		item.User = &domain.JobUser{
			ID:        *row.UserRowID,
			FirstName: derefString(row.UserFirstName),
			LastName:  derefString(row.UserLastName),
			Email:     derefString(row.UserEmail),
		}
	}
	return item
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetByIDWithUser retrieves a single job with its owner resolved
func (r *jobRepository) GetByIDWithUser(id string) (*domain.JobListItem, error) {
	var row jobRow
	err := r.db.Table("jobs AS j").
		Select("j.*, u.id AS user_row_id, u.first_name AS user_first_name, u.last_name AS user_last_name, u.email AS user_email").
		Joins("LEFT JOIN users AS u ON u.id = j.user_id").
		Where("j.id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	item := row.toListItem()
	return &item, nil
}

// List retrieves paginated jobs with owners resolved, newest first.
// An empty status means no status filter.
func (r *jobRepository) List(status domain.JobStatus, page, limit int) ([]domain.JobListItem, int64, error) {
	query := r.db.Model(&domain.Job{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := r.db.Table("jobs AS j").
		Select("j.*, u.id AS user_row_id, u.first_name AS user_first_name, u.last_name AS user_last_name, u.email AS user_email").
		Joins("LEFT JOIN users AS u ON u.id = j.user_id")
	if status != "" {
		listQuery = listQuery.Where("j.status = ?", status)
	}

	offset := (page - 1) * limit
	var rows []jobRow
	if err := listQuery.Order("j.created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]domain.JobListItem, len(rows))
	for i := range rows {
		items[i] = rows[i].toListItem()
	}

	return items, total, nil
}

func (r *jobRepository) UpdateStatus(id string, status domain.JobStatus) error {
	result := r.db.Model(&domain.Job{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *jobRepository) CountByStatus(status domain.JobStatus) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Job{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
