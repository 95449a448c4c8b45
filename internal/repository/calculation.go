package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ubudab109/number-discussion/internal/domain"
)

// CalculationRepository is the append-only store of calculation rows.
type CalculationRepository interface {
	// Create appends a new calculation row and fills in its assigned id and
	// creation timestamp.
	Create(ctx context.Context, calc *domain.Calculation) error
	// FindByID returns the calculation with the given id or
	// domain.ErrParentNotFound.
	FindByID(ctx context.Context, id uint) (*domain.Calculation, error)
	// ListAll returns every calculation joined with its creator's username,
	// ordered by creation time ascending with id as the tie-breaker.
	ListAll(ctx context.Context) ([]domain.CalculationWithUser, error)
}

// GormCalculationRepository is the MySQL-backed CalculationRepository.
type GormCalculationRepository struct {
	db *gorm.DB
}

// NewGormCalculationRepository constructs a GormCalculationRepository over db.
func NewGormCalculationRepository(db *gorm.DB) *GormCalculationRepository {
	return &GormCalculationRepository{db: db}
}

func (r *GormCalculationRepository) Create(ctx context.Context, calc *domain.Calculation) error {
	return r.db.WithContext(ctx).Create(calc).Error
}

func (r *GormCalculationRepository) FindByID(ctx context.Context, id uint) (*domain.Calculation, error) {
	var calc domain.Calculation
	if err := r.db.WithContext(ctx).First(&calc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrParentNotFound
		}
		return nil, err
	}
	return &calc, nil
}

func (r *GormCalculationRepository) ListAll(ctx context.Context) ([]domain.CalculationWithUser, error) {
	var rows []domain.CalculationWithUser
	err := r.db.WithContext(ctx).
		Model(&domain.Calculation{}).
		Select("calculations.*, users.username").
		Joins("JOIN users ON users.id = calculations.user_id").
		Order("calculations.created_at ASC, calculations.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
