package document

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	documenterrors "hr-admin/internal/document/errors"
	"hr-admin/internal/employee"
	employeeerrors "hr-admin/internal/employee/errors"
	"hr-admin/internal/shared/principal"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn         func(ctx context.Context, d *Document) error
	findByEmployeeFn func(ctx context.Context, employeeID string) ([]Document, error)
}

func (f *fakeRepo) Create(ctx context.Context, d *Document) error { return f.createFn(ctx, d) }
func (f *fakeRepo) FindByEmployee(ctx context.Context, employeeID string) ([]Document, error) {
	return f.findByEmployeeFn(ctx, employeeID)
}

type fakeDirectory struct {
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
}

func (f *fakeDirectory) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return f.findByIDFn(ctx, id)
}

func fileHeader(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", name)
	assert.NoError(t, err)
	_, err = fw.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	_, fh, err := req.FormFile("file")
	assert.NoError(t, err)
	return fh
}

func TestService_Upload(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	p := principal.Principal{Role: principal.RoleEmployee, EmployeeID: &employeeID}

	directory := &fakeDirectory{
		findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: employeeID}, nil
		},
	}

	t.Run("stores file and row", func(t *testing.T) {
		dir := t.TempDir()
		var saved Document
		repo := &fakeRepo{
			createFn: func(ctx context.Context, d *Document) error {
				saved = *d
				return nil
			},
		}

		svc := NewService(repo, directory, dir)
		resp, err := svc.Upload(ctx, p, fileHeader(t, "contract.pdf", "pdf-bytes"))
		assert.NoError(t, err)

		assert.Equal(t, employeeID.String(), resp.EmployeeID)
		assert.Regexp(t, `^\d+_contract\.pdf$`, resp.Filename)
		assert.Equal(t, saved.Filename, resp.Filename)

		data, err := os.ReadFile(filepath.Join(dir, saved.Filename))
		assert.NoError(t, err)
		assert.Equal(t, "pdf-bytes", string(data))
	})

	t.Run("same filename twice stays distinct", func(t *testing.T) {
		dir := t.TempDir()
		var names []string
		repo := &fakeRepo{
			createFn: func(ctx context.Context, d *Document) error {
				names = append(names, d.Filename)
				return nil
			},
		}

		svc := NewService(repo, directory, dir)
		_, err := svc.Upload(ctx, p, fileHeader(t, "contract.pdf", "v1"))
		assert.NoError(t, err)
		_, err = svc.Upload(ctx, p, fileHeader(t, "contract.pdf", "v2"))
		assert.NoError(t, err)

		assert.Len(t, names, 2)
		assert.NotEqual(t, names[0], names[1])
	})

	t.Run("no file", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, directory, t.TempDir())
		_, err := svc.Upload(ctx, p, nil)
		assert.ErrorIs(t, err, documenterrors.ErrNoFile)
	})

	t.Run("no linked employee", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, directory, t.TempDir())
		_, err := svc.Upload(ctx, principal.Principal{Role: principal.RoleEmployee}, fileHeader(t, "x.txt", "x"))
		assert.ErrorIs(t, err, employeeerrors.ErrProfileNotFound)
	})

	t.Run("employee row gone", func(t *testing.T) {
		missing := &fakeDirectory{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := NewService(&fakeRepo{}, missing, t.TempDir())
		_, err := svc.Upload(ctx, p, fileHeader(t, "x.txt", "x"))
		assert.ErrorIs(t, err, employeeerrors.ErrProfileNotFound)
	})
}

func TestService_ListOwn(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("returns own documents", func(t *testing.T) {
		repo := &fakeRepo{
			findByEmployeeFn: func(ctx context.Context, id string) ([]Document, error) {
				assert.Equal(t, employeeID.String(), id)
				return []Document{{ID: uuid.New(), EmployeeID: employeeID, Filename: "1_a.pdf"}}, nil
			},
		}

		svc := NewService(repo, &fakeDirectory{}, t.TempDir())
		resp, err := svc.ListOwn(ctx, principal.Principal{Role: principal.RoleEmployee, EmployeeID: &employeeID})
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("no linked employee reads as empty", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, &fakeDirectory{}, t.TempDir())
		resp, err := svc.ListOwn(ctx, principal.Principal{Role: principal.RoleEmployee})
		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}

func TestService_ListForEmployee(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("unknown employee", func(t *testing.T) {
		directory := &fakeDirectory{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := NewService(&fakeRepo{}, directory, t.TempDir())
		_, err := svc.ListForEmployee(ctx, employeeID.String())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, &fakeDirectory{}, t.TempDir())
		_, err := svc.ListForEmployee(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}
