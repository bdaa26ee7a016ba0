package salary

import (
	"context"
	"testing"

	salaryerrors "hr-admin/internal/salary/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	findByEmployeeFn func(ctx context.Context, employeeID string) (*Salary, error)
	upsertFn         func(ctx context.Context, s *Salary) error
}

func (f *fakeRepo) FindByEmployee(ctx context.Context, employeeID string) (*Salary, error) {
	return f.findByEmployeeFn(ctx, employeeID)
}
func (f *fakeRepo) Upsert(ctx context.Context, s *Salary) error { return f.upsertFn(ctx, s) }

func TestSalary_Net(t *testing.T) {
	assert.Equal(t, float64(5300), Salary{Base: 5000, Bonus: 500, Deductions: 200}.Net())
	assert.Zero(t, Salary{}.Net())
	// deductions above base+bonus go negative rather than clamping
	assert.Equal(t, float64(-100), Salary{Base: 100, Deductions: 200}.Net())
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		repo := &fakeRepo{
			findByEmployeeFn: func(ctx context.Context, id string) (*Salary, error) {
				assert.Equal(t, employeeID, id)
				return &Salary{Base: 4000, Bonus: 1000, Deductions: 500}, nil
			},
		}

		svc := NewService(repo)
		resp, err := svc.Get(ctx, employeeID)
		assert.NoError(t, err)
		assert.Equal(t, float64(4500), resp.Net)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeRepo{
			findByEmployeeFn: func(ctx context.Context, id string) (*Salary, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := NewService(repo)
		_, err := svc.Get(ctx, employeeID)
		assert.ErrorIs(t, err, salaryerrors.ErrSalaryNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := NewService(&fakeRepo{})
		_, err := svc.Get(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, salaryerrors.ErrInvalidEmployeeID)
	})
}

func TestService_Set(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	var saved Salary
	repo := &fakeRepo{
		upsertFn: func(ctx context.Context, s *Salary) error {
			saved = *s
			return nil
		},
	}

	svc := NewService(repo)
	resp, err := svc.Set(ctx, employeeID.String(), SetSalaryRequest{
		Base:       6000,
		Bonus:      300,
		Deductions: 450,
	})
	assert.NoError(t, err)

	assert.Equal(t, employeeID, saved.EmployeeID)
	assert.Equal(t, float64(6000), saved.Base)
	assert.Equal(t, float64(5850), resp.Net)
}
