package document

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=document_repo.go -destination=mock/document_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, d *Document) error
	FindByEmployee(ctx context.Context, employeeID string) ([]Document, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Document, error) {
	var docs []Document
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("uploaded_on DESC").
		Find(&docs).Error
	return docs, err
}
