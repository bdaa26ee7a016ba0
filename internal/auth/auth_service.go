package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	autherrors "hr-admin/internal/auth/errors"
	"hr-admin/internal/employee"
	"hr-admin/internal/salary"
	"hr-admin/internal/session"
	"hr-admin/internal/shared/counter"
	"hr-admin/internal/shared/principal"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const regNoScope = "employee_reg_no"

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, username, password string) (token string, p principal.Principal, err error)
	Logout(ctx context.Context, token string) error
}

type service struct {
	repo     Repository
	counter  counter.Repository
	sessions session.Store
	logger   *zap.Logger
}

func NewService(repo Repository, counterRepo counter.Repository, sessions session.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, counter: counterRepo, sessions: sessions, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) error {
	s.logger.Debug("register requested",
		zap.String("username", req.Username),
		zap.String("role", req.Role),
	)

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	role := req.Role
	if role == "" {
		role = principal.RoleEmployee
	}
	fullName := req.FullName
	if fullName == "" {
		fullName = req.Username
	}

	user := &User{
		ID:       uuid.New(),
		Username: req.Username,
		FullName: fullName,
		Password: string(hashed),
		Email:    req.Email,
		Role:     role,
	}

	if role != principal.RoleEmployee {
		if err := s.repo.Create(ctx, user); err != nil {
			return mapRepositoryError(err)
		}
		s.logger.Info("register success", zap.String("username", req.Username), zap.String("role", role))
		return nil
	}

	// employee accounts get an employee record and a zero salary up front
	nextVal, err := s.counter.GetNextValue(ctx, regNoScope)
	if err != nil {
		s.logger.Error("register generate reg_no failed", zap.Error(err))
		return err
	}

	emp := &employee.Employee{
		ID:         uuid.New(),
		UserID:     &user.ID,
		Name:       fullName,
		RegNo:      fmt.Sprintf("EMP-%06d", nextVal),
		Department: "New Joiner",
		Position:   "Employee",
		JoinedOn:   time.Now().UTC(),
	}
	sal := &salary.Salary{
		ID:         uuid.New(),
		EmployeeID: emp.ID,
	}

	if err := s.repo.CreateWithProfile(ctx, user, emp, sal); err != nil {
		return mapRepositoryError(err)
	}
	s.logger.Info("register success",
		zap.String("username", req.Username),
		zap.String("employee_id", emp.ID.String()),
		zap.String("reg_no", emp.RegNo),
	)
	return nil
}

func (s *service) Login(ctx context.Context, username, password string) (string, principal.Principal, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login lookup failed", zap.String("username", username), zap.Error(err))
		}
		return "", principal.Principal{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", principal.Principal{}, autherrors.ErrInvalidCredentials
	}

	p := principal.Principal{
		UserID:   user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Role:     user.Role,
	}

	if user.Role == principal.RoleEmployee {
		employeeID, err := s.repo.FindEmployeeIDByUser(ctx, user.ID)
		if err != nil {
			s.logger.Error("login resolve employee failed", zap.String("username", username), zap.Error(err))
			return "", principal.Principal{}, err
		}
		p.EmployeeID = employeeID
	}

	token, err := s.sessions.Create(ctx, p)
	if err != nil {
		return "", principal.Principal{}, err
	}
	s.logger.Info("login success",
		zap.String("username", username),
		zap.String("role", user.Role),
	)

	return token, p, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
