package service

import (
	"context"
	"strings"

	"repouso-data/internal/domain"
	"repouso-data/internal/repository"

	"go.uber.org/zap"
)

// UserService console-account management. Handlers gate these
// operations to admins.
type UserService interface {
	ListUsers(ctx context.Context) ([]*UserView, error)
	GetUser(ctx context.Context, userID string) (*UserView, error)
	CreateUser(ctx context.Context, req UserInput) (string, error)
	UpdateUser(ctx context.Context, userID string, req UserInput) error
	DeleteUser(ctx context.Context, userID string) error
}

// UserView account row without the password hash.
type UserView struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// UserInput create/update payload. Password is optional on update and
// required on create.
type UserInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

type userService struct {
	repo   repository.UsersRepository
	logger *zap.Logger
}

func NewUserService(repo repository.UsersRepository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func userView(u *domain.User) *UserView {
	return &UserView{
		UserID:   u.UserID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
		Status:   u.Status,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]*UserView, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*UserView, 0, len(users))
	for _, u := range users {
		views = append(views, userView(u))
	}
	return views, nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (*UserView, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return userView(user), nil
}

func (s *userService) CreateUser(ctx context.Context, req UserInput) (string, error) {
	if err := validateUserInput(req); err != nil {
		return "", err
	}
	if req.Password == "" {
		return "", &ErrValidation{Message: "Senha é obrigatória"}
	}
	if _, err := s.repo.GetUserByEmail(ctx, req.Email); err == nil {
		return "", &ErrValidation{Message: "Já existe um usuário com este e-mail"}
	}

	id, err := s.repo.CreateUser(ctx, &domain.User{
		FullName:     req.FullName,
		Email:        strings.ToLower(req.Email),
		PasswordHash: HashPassword(req.Email, req.Password),
		Role:         req.Role,
		Status:       req.Status,
	})
	if err != nil {
		return "", err
	}
	s.logger.Info("user created", zap.String("user_id", id), zap.String("role", req.Role))
	return id, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req UserInput) error {
	if err := validateUserInput(req); err != nil {
		return err
	}
	user := &domain.User{
		FullName: req.FullName,
		Email:    strings.ToLower(req.Email),
		Role:     req.Role,
		Status:   req.Status,
	}
	if user.Status == "" {
		user.Status = "active"
	}
	if req.Password != "" {
		user.PasswordHash = HashPassword(req.Email, req.Password)
	}
	return s.repo.UpdateUser(ctx, userID, user)
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.repo.DeleteUser(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("user_id", userID))
	return nil
}

func validateUserInput(req UserInput) error {
	if req.FullName == "" {
		return &ErrValidation{Message: "Nome do usuário é obrigatório"}
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return &ErrValidation{Message: "E-mail inválido"}
	}
	switch req.Role {
	case domain.RoleAdmin, domain.RoleCoordinator, domain.RoleCaregiver:
	default:
		return &ErrValidation{Message: "Perfil de acesso inválido"}
	}
	return nil
}
