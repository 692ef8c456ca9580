package auth

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	autherrors "go-hostel/internal/auth/errors"
	"go-hostel/internal/rbac"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
	CreateWard(ctx context.Context, req RegisterRequest) (UserResponse, error)
	CreateCook(ctx context.Context, req RegisterRequest) (UserResponse, error)
	BootstrapAdmin(ctx context.Context, req RegisterRequest) (UserResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	// Public registration only ever creates students; privileged roles go
	// through the admin-only endpoints.
	user, err := s.createUser(ctx, req, rbac.RoleStudent)
	if err != nil {
		return AuthResponse{}, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return AuthResponse{}, err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID.String()))
	return AuthResponse{User: mapToUserResponse(*user), Token: token}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return AuthResponse{}, err
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID.String()), zap.String("role", user.Role))
	return AuthResponse{User: mapToUserResponse(*user), Token: token}, nil
}

func (s *service) GetProfile(ctx context.Context, userID string) (UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return UserResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, autherrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	return mapToUserResponse(*user), nil
}

func (s *service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return UserResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, autherrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.ContactNumber != nil {
		user.ContactNumber = *req.ContactNumber
	}
	if req.FatherName != nil {
		user.FatherName = *req.FatherName
	}
	if req.MotherName != nil {
		user.MotherName = *req.MotherName
	}
	if req.Gothram != nil {
		user.Gothram = *req.Gothram
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.ProfileImage != nil {
		user.ProfileImage = req.ProfileImage
	}

	if err := s.repo.Update(ctx, user); err != nil {
		s.logger.Error("update profile persist failed", zap.String("user_id", userID), zap.Error(err))
		return UserResponse{}, err
	}
	return mapToUserResponse(*user), nil
}

func (s *service) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = mapToUserResponse(u)
	}
	return res, nil
}

func (s *service) DeleteUser(ctx context.Context, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return autherrors.ErrInvalidUserID
	}
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrUserNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("user_id", id))
	return nil
}

func (s *service) CreateWard(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	user, err := s.createUser(ctx, req, rbac.RoleWard)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToUserResponse(*user), nil
}

func (s *service) CreateCook(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	user, err := s.createUser(ctx, req, rbac.RoleCook)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToUserResponse(*user), nil
}

// BootstrapAdmin creates the very first admin account. It refuses to run
// once any admin exists; later admins are out of scope for the API.
func (s *service) BootstrapAdmin(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	count, err := s.repo.CountByRole(ctx, rbac.RoleAdmin)
	if err != nil {
		return UserResponse{}, err
	}
	if count > 0 {
		return UserResponse{}, autherrors.ErrAdminExists
	}

	user, err := s.createUser(ctx, req, rbac.RoleAdmin)
	if err != nil {
		return UserResponse{}, err
	}
	s.logger.Info("admin bootstrapped", zap.String("user_id", user.ID.String()))
	return mapToUserResponse(*user), nil
}

func (s *service) createUser(ctx context.Context, req RegisterRequest, role string) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, autherrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:            uuid.New(),
		Name:          req.Name,
		Email:         email,
		Password:      string(hashed),
		Role:          role,
		ContactNumber: req.ContactNumber,
		FatherName:    req.FatherName,
		MotherName:    req.MotherName,
		Gothram:       req.Gothram,
		Age:           req.Age,
		Address:       req.Address,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, mapRepositoryError(err)
	}
	return user, nil
}

func (s *service) generateToken(user *User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    user.Role,
		"exp":     time.Now().Add(30 * 24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToUserResponse(u User) UserResponse {
	return UserResponse{
		ID:            u.ID.String(),
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		ContactNumber: u.ContactNumber,
		FatherName:    u.FatherName,
		MotherName:    u.MotherName,
		Gothram:       u.Gothram,
		Age:           u.Age,
		Address:       u.Address,
		ProfileImage:  u.ProfileImage,
		CreatedAt:     u.CreatedAt.Format(time.RFC3339),
	}
}
