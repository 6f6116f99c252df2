package repository

import (
	"github.com/humanity/backend/internal/domain"
	"gorm.io/gorm"
)

// AuthorProfileRepository handles author profile data operations
type AuthorProfileRepository interface {
	WithTx(tx *gorm.DB) AuthorProfileRepository
	Create(profile *domain.AuthorProfile) error
	FindByID(id string) (*domain.AuthorProfile, error)
	FindByUserID(userID string) (*domain.AuthorProfile, error)
	Update(profile *domain.AuthorProfile) error
	ListAuthors(page, limit int) ([]domain.AuthorListItem, int64, error)
}

type authorProfileRepository struct {
	db *gorm.DB
}

// NewAuthorProfileRepository creates a new AuthorProfileRepository
func NewAuthorProfileRepository(db *gorm.DB) AuthorProfileRepository {
	return &authorProfileRepository{db: db}
}

// WithTx returns a copy bound to the given transaction
func (r *authorProfileRepository) WithTx(tx *gorm.DB) AuthorProfileRepository {
	if tx == nil {
		return r
	}
	return &authorProfileRepository{db: tx}
}

func (r *authorProfileRepository) Create(profile *domain.AuthorProfile) error {
	return r.db.Create(profile).Error
}

func (r *authorProfileRepository) FindByID(id string) (*domain.AuthorProfile, error) {
	var profile domain.AuthorProfile
	if err := r.db.Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *authorProfileRepository) FindByUserID(userID string) (*domain.AuthorProfile, error) {
	var profile domain.AuthorProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *authorProfileRepository) Update(profile *domain.AuthorProfile) error {
	return r.db.Save(profile).Error
}

// ListAuthors retrieves the paginated public author directory: profiles of
// users with is_author set, joined with their display names.
func (r *authorProfileRepository) ListAuthors(page, limit int) ([]domain.AuthorListItem, int64, error) {
	var total int64
	if err := r.db.Table("author_profiles AS p").
		Joins("JOIN users AS u ON u.id = p.user_id").
		Where("u.is_author = ?", true).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []struct {
		UserID             string `gorm:"column:user_id"`
		FirstName          string `gorm:"column:first_name"`
		LastName           string `gorm:"column:last_name"`
		PreNominals        string `gorm:"column:pre_nominals"`
		MiddleInitials     string `gorm:"column:middle_initials"`
		CountryOfResidence string `gorm:"column:country_of_residence"`
		Bio                string `gorm:"column:bio"`
		ImageURL           string `gorm:"column:image_url"`
	}

	offset := (page - 1) * limit
	err := r.db.Table("author_profiles AS p").
		Select("p.user_id, u.first_name, u.last_name, p.pre_nominals, p.middle_initials, p.country_of_residence, p.bio, p.image_url").
		Joins("JOIN users AS u ON u.id = p.user_id").
		Where("u.is_author = ?", true).
		Order("u.last_name ASC, u.first_name ASC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]domain.AuthorListItem, len(rows))
	for i, row := range rows {
		items[i] = domain.AuthorListItem{
			UserID:             row.UserID,
			FirstName:          row.FirstName,
			LastName:           row.LastName,
			PreNominals:        row.PreNominals,
			MiddleInitials:     row.MiddleInitials,
			CountryOfResidence: row.CountryOfResidence,
			Bio:                row.Bio,
			ImageURL:           row.ImageURL,
		}
	}

	return items, total, nil
}
