package user

import (
	"context"
	"strings"

	"farmtotable-be/internal/auth"
	"farmtotable-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, params RegisterParams) (User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	ChangePassword(ctx context.Context, userID uint, current, newPassword string) error
	GetUsers(ctx context.Context) ([]User, error)
	GetUserByID(ctx context.Context, userID uint) (*User, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) error
}

type service struct {
	repo   Repository
	tokens *auth.Manager
}

func NewService(repo Repository, tokens *auth.Manager) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (User, error) {
	log := logger.FromCtx(ctx)

	role := RoleCustomer
	if params.IsMerchant {
		role = RoleMerchant
	}

	stored, err := storedCredential(role, params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return User{}, err
	}

	u, err := s.repo.CreateWithCart(ctx, CreateUserParams{
		FirstName:  params.FirstName,
		MiddleName: params.MiddleName,
		LastName:   params.LastName,
		Email:      params.Email,
		Password:   stored,
		Role:       role,
	})
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return User{}, ErrEmailExists
		}
		return User{}, err
	}

	log.Info("register service completed",
		zap.Uint("user_id", u.ID),
		zap.String("email", u.Email),
		zap.String("role", string(u.Role)),
	)

	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", User{}, err
	}
	if u == nil {
		log.Info("login rejected: email not found", zap.String("email", email))
		return "", User{}, ErrInvalidCredentials
	}

	if !verifyCredential(u.Role, password, u.Password) {
		log.Info("login rejected: password mismatch", zap.Uint("user_id", u.ID))
		return "", User{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(u.ID, u.Email, string(u.Role))
	if err != nil {
		log.Error("failed to generate session token", zap.Error(err))
		return "", User{}, err
	}

	return token, *u, nil
}

func (s *service) ChangePassword(ctx context.Context, userID uint, current, newPassword string) error {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	if !verifyCredential(u.Role, current, u.Password) {
		return ErrWrongPassword
	}

	stored, err := storedCredential(u.Role, newPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, userID, stored)
}

func (s *service) GetUsers(ctx context.Context) ([]User, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetUserByID(ctx context.Context, userID uint) (*User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *service) UpdateProfile(ctx context.Context, params UpdateProfileParams) error {
	return s.repo.UpdateProfile(ctx, params)
}
