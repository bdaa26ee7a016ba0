package stats

import (
	"context"
	"testing"

	"hr-admin/internal/shared/principal"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	employees int64
	trainings int64
	leaves    int64
	pending   int64
	documents int64
}

func (f *fakeRepo) CountEmployees(ctx context.Context) (int64, error) { return f.employees, nil }
func (f *fakeRepo) CountTrainings(ctx context.Context) (int64, error) { return f.trainings, nil }
func (f *fakeRepo) CountLeaves(ctx context.Context) (int64, error)    { return f.leaves, nil }
func (f *fakeRepo) CountLeavesByStatus(ctx context.Context, status string) (int64, error) {
	return f.pending, nil
}
func (f *fakeRepo) CountDocumentsByEmployee(ctx context.Context, employeeID string) (int64, error) {
	return f.documents, nil
}
func (f *fakeRepo) CountLeavesByEmployee(ctx context.Context, employeeID string) (int64, error) {
	return f.leaves, nil
}
func (f *fakeRepo) CountLeavesByEmployeeAndStatus(ctx context.Context, employeeID, status string) (int64, error) {
	return f.pending, nil
}

func TestService_Dashboard_Admin(t *testing.T) {
	repo := &fakeRepo{employees: 12, trainings: 4, leaves: 9, pending: 2}

	svc := NewService(repo)
	out, err := svc.Dashboard(context.Background(), principal.Principal{Role: principal.RoleAdmin})
	assert.NoError(t, err)

	stats, ok := out.(AdminStats)
	assert.True(t, ok)
	assert.Equal(t, int64(12), stats.Employees)
	assert.Equal(t, int64(4), stats.Trainings)
	assert.Equal(t, int64(9), stats.Leaves)
	assert.Equal(t, int64(2), stats.PendingLeaves)
}

func TestService_Dashboard_Employee(t *testing.T) {
	employeeID := uuid.New()
	repo := &fakeRepo{documents: 3, leaves: 5, pending: 1}

	svc := NewService(repo)
	out, err := svc.Dashboard(context.Background(), principal.Principal{
		Role:       principal.RoleEmployee,
		EmployeeID: &employeeID,
	})
	assert.NoError(t, err)

	stats, ok := out.(EmployeeStats)
	assert.True(t, ok)
	assert.Equal(t, int64(3), stats.MyDocuments)
	assert.Equal(t, int64(5), stats.MyLeaves)
	assert.Equal(t, int64(1), stats.PendingLeaves)
}

func TestService_Dashboard_EmployeeWithoutProfile(t *testing.T) {
	svc := NewService(&fakeRepo{documents: 3, leaves: 5})
	out, err := svc.Dashboard(context.Background(), principal.Principal{Role: principal.RoleEmployee})
	assert.NoError(t, err)

	stats, ok := out.(EmployeeStats)
	assert.True(t, ok)
	assert.Zero(t, stats.MyDocuments)
	assert.Zero(t, stats.MyLeaves)
	assert.Zero(t, stats.PendingLeaves)
}
