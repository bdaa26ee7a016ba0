package leave_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-admin/internal/leave"
	leaveerrors "hr-admin/internal/leave/errors"
	"hr-admin/internal/shared/principal"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	listFn func(ctx context.Context, p principal.Principal) ([]leave.LeaveResponse, error)
	fileFn func(ctx context.Context, p principal.Principal, req leave.FileLeaveRequest) (leave.LeaveResponse, error)
	actFn  func(ctx context.Context, id, action string) (leave.LeaveResponse, error)
}

func (f *fakeService) List(ctx context.Context, p principal.Principal) ([]leave.LeaveResponse, error) {
	return f.listFn(ctx, p)
}
func (f *fakeService) File(ctx context.Context, p principal.Principal, req leave.FileLeaveRequest) (leave.LeaveResponse, error) {
	return f.fileFn(ctx, p, req)
}
func (f *fakeService) Act(ctx context.Context, id, action string) (leave.LeaveResponse, error) {
	return f.actFn(ctx, id, action)
}

func attach(p principal.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(principal.With(c.Request.Context(), p))
	}
}

func TestHandler_File(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeService{}
	handler := leave.NewHandler(svc)

	employeeID := uuid.New()
	router := gin.New()
	router.POST("/leaves", attach(principal.Principal{
		Role:       principal.RoleEmployee,
		EmployeeID: &employeeID,
	}), handler.File)

	t.Run("success", func(t *testing.T) {
		svc.fileFn = func(ctx context.Context, p principal.Principal, req leave.FileLeaveRequest) (leave.LeaveResponse, error) {
			assert.Equal(t, employeeID, *p.EmployeeID)
			return leave.LeaveResponse{ID: uuid.New().String(), Status: leave.StatusPending}, nil
		}

		body, _ := json.Marshal(leave.FileLeaveRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-05",
			Reason:    "vacation",
		})
		req := httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), leave.StatusPending)
	})

	t.Run("missing dates", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/leaves", bytes.NewBufferString(`{"reason":"x"}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Act(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeService{}
	handler := leave.NewHandler(svc)

	router := gin.New()
	router.POST("/leaves/:id/action", handler.Act)

	leaveID := uuid.New().String()

	t.Run("approve", func(t *testing.T) {
		svc.actFn = func(ctx context.Context, id, action string) (leave.LeaveResponse, error) {
			assert.Equal(t, leaveID, id)
			assert.Equal(t, "approve", action)
			return leave.LeaveResponse{ID: id, Status: leave.StatusApproved}, nil
		}

		req := httptest.NewRequest(http.MethodPost, "/leaves/"+leaveID+"/action",
			bytes.NewBufferString(`{"action":"approve"}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), leave.StatusApproved)
	})

	t.Run("missing action", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/leaves/"+leaveID+"/action",
			bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown leave", func(t *testing.T) {
		svc.actFn = func(ctx context.Context, id, action string) (leave.LeaveResponse, error) {
			return leave.LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}

		req := httptest.NewRequest(http.MethodPost, "/leaves/"+leaveID+"/action",
			bytes.NewBufferString(`{"action":"approve"}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeService{}
	handler := leave.NewHandler(svc)

	router := gin.New()
	router.GET("/leaves", attach(principal.Principal{Role: principal.RoleAdmin}), handler.List)

	svc.listFn = func(ctx context.Context, p principal.Principal) ([]leave.LeaveResponse, error) {
		assert.True(t, p.IsAdmin())
		return []leave.LeaveResponse{
			{ID: uuid.New().String(), EmployeeName: "Jane Doe", Status: leave.StatusPending},
		}, nil
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jane Doe")
}
