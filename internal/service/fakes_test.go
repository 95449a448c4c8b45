package service

import (
	"context"

	"github.com/ubudab109/number-discussion/internal/domain"
)

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if _, ok := f.users[user.Username]; ok {
		return domain.ErrDuplicateUsername
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.Username] = &stored
	return nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

// fakeCalcRepo is an in-memory CalculationRepository. Insertion order is
// creation order, which also fixes the ListAll ordering.
type fakeCalcRepo struct {
	rows      []domain.Calculation
	usernames map[uint]string
	nextID    uint
	clock     int64
}

func newFakeCalcRepo() *fakeCalcRepo {
	return &fakeCalcRepo{usernames: make(map[uint]string)}
}

func (f *fakeCalcRepo) Create(ctx context.Context, calc *domain.Calculation) error {
	f.nextID++
	f.clock++
	calc.ID = f.nextID
	calc.CreatedAt = f.clock
	f.rows = append(f.rows, *calc)
	return nil
}

func (f *fakeCalcRepo) FindByID(ctx context.Context, id uint) (*domain.Calculation, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			found := f.rows[i]
			return &found, nil
		}
	}
	return nil, domain.ErrParentNotFound
}

func (f *fakeCalcRepo) ListAll(ctx context.Context) ([]domain.CalculationWithUser, error) {
	out := make([]domain.CalculationWithUser, 0, len(f.rows))
	for _, row := range f.rows {
		out = append(out, domain.CalculationWithUser{
			Calculation: row,
			Username:    f.usernames[row.UserID],
		})
	}
	return out, nil
}
