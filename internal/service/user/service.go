package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/avis-hq/avis-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
	}
}

// validateManager checks that the referenced user exists and actually holds
// the MANAGER role before anyone is assigned to them.
func (s *UserServiceImpl) validateManager(ctx context.Context, managerID string) error {
	manager, err := s.UserRepository.GetByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrManagerNotFound
		}
		return fmt.Errorf("failed to get manager: %w", err)
	}
	if manager.Role != user.RoleManager {
		return user.ErrManagerRoleRequired
	}
	return nil
}

// List implements user.UserService. Owners see everyone, managers their
// direct reports, employees only themselves.
func (s *UserServiceImpl) List(ctx context.Context, callerRole user.Role, callerID string) ([]user.UserResponse, error) {
	scope := user.VisibilityScope(callerRole, callerID, user.ResourceUsers)

	users, err := s.UserRepository.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}
	return responses, nil
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	found, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	return found.ToResponse(), nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	exists, err := s.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return user.UserResponse{}, user.ErrEmailExists
	}

	if req.ManagerID != nil && *req.ManagerID != "" {
		if err := s.validateManager(ctx, *req.ManagerID); err != nil {
			return user.UserResponse{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         user.Role(req.Role),
		Designation:  req.Designation,
		Department:   req.Department,
		ManagerID:    req.ManagerID,
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}
	return created.ToResponse(), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if req.ManagerID != nil && *req.ManagerID != "" {
		if err := s.validateManager(ctx, *req.ManagerID); err != nil {
			return user.UserResponse{}, err
		}
	}

	updated, err := s.UserRepository.Update(ctx, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}
	return updated.ToResponse(), nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, callerID string, id string) error {
	if callerID == id {
		return user.ErrCannotDeleteSelf
	}
	return s.UserRepository.Delete(ctx, id)
}

// ListManagers implements user.UserService.
func (s *UserServiceImpl) ListManagers(ctx context.Context) ([]user.UserResponse, error) {
	managers, err := s.UserRepository.ListManagers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list managers: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(managers))
	for i := range managers {
		responses = append(responses, managers[i].ToResponse())
	}
	return responses, nil
}
