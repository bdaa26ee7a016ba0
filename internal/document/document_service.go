package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	documenterrors "hr-admin/internal/document/errors"
	"hr-admin/internal/employee"
	employeeerrors "hr-admin/internal/employee/errors"
	"hr-admin/internal/shared/principal"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeDirectory is the slice of the employee repository this service
// needs: existence checks before touching documents.
type EmployeeDirectory interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	ListOwn(ctx context.Context, p principal.Principal) ([]DocumentResponse, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]DocumentResponse, error)
	Upload(ctx context.Context, p principal.Principal, fh *multipart.FileHeader) (DocumentResponse, error)
}

type service struct {
	repo         Repository
	employeeRepo EmployeeDirectory
	uploadDir    string
	logger       *zap.Logger
}

func NewService(repo Repository, employeeRepo EmployeeDirectory, uploadDir string, logger ...*zap.Logger) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{repo: repo, employeeRepo: employeeRepo, uploadDir: uploadDir, logger: l}
}

func (s *service) ListOwn(ctx context.Context, p principal.Principal) ([]DocumentResponse, error) {
	// no linked employee reads as an empty list, not an error
	if p.EmployeeID == nil {
		return []DocumentResponse{}, nil
	}

	docs, err := s.repo.FindByEmployee(ctx, p.EmployeeID.String())
	if err != nil {
		s.logger.Error("list own documents failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(docs), nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID string) ([]DocumentResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	if _, err := s.employeeRepo.FindByID(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	docs, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list employee documents failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(docs), nil
}

func (s *service) Upload(ctx context.Context, p principal.Principal, fh *multipart.FileHeader) (DocumentResponse, error) {
	if fh == nil {
		return DocumentResponse{}, documenterrors.ErrNoFile
	}
	if p.EmployeeID == nil {
		return DocumentResponse{}, employeeerrors.ErrProfileNotFound
	}

	if _, err := s.employeeRepo.FindByID(ctx, p.EmployeeID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DocumentResponse{}, employeeerrors.ErrProfileNotFound
		}
		return DocumentResponse{}, err
	}

	// nanosecond prefix keeps repeated uploads of the same filename distinct
	storedName := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(fh.Filename))
	if err := s.saveFile(fh, filepath.Join(s.uploadDir, storedName)); err != nil {
		s.logger.Error("store uploaded file failed",
			zap.String("filename", storedName),
			zap.Error(err),
		)
		return DocumentResponse{}, documenterrors.ErrStoreFailed
	}

	doc := &Document{
		ID:         uuid.New(),
		EmployeeID: *p.EmployeeID,
		Filename:   storedName,
		UploadedOn: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		s.logger.Error("create document row failed", zap.String("filename", storedName), zap.Error(err))
		return DocumentResponse{}, err
	}
	s.logger.Info("upload document success",
		zap.String("employee_id", p.EmployeeID.String()),
		zap.String("filename", storedName),
	)

	return mapToResponse(*doc), nil
}

func (s *service) saveFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}

func mapToResponse(d Document) DocumentResponse {
	return DocumentResponse{
		ID:         d.ID.String(),
		Filename:   d.Filename,
		EmployeeID: d.EmployeeID.String(),
		UploadedOn: d.UploadedOn.Format(time.RFC3339),
	}
}

func mapToListResponse(docs []Document) []DocumentResponse {
	res := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		res[i] = mapToResponse(d)
	}
	return res
}
