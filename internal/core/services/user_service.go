package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/checkflowhq/checkflow_backend/internal/apperrors"
	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
	portsrepo "github.com/checkflowhq/checkflow_backend/internal/core/ports/repositories"
	portssvc "github.com/checkflowhq/checkflow_backend/internal/core/ports/services"
	"github.com/checkflowhq/checkflow_backend/internal/dto"
	"github.com/checkflowhq/checkflow_backend/internal/middleware"
	"github.com/checkflowhq/checkflow_backend/internal/utils"
)

// userService implements user management and authentication.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
	notifier portsrepo.SignupNotifier
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, notifier portsrepo.SignupNotifier) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, notifier: notifier}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// Signup self-registers an account. New accounts start inactive with the
// VIEWER role and wait for an administrator to activate them.
func (s *userService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	newUserID := uuid.NewString()
	user := domain.User{
		UserID:       newUserID,
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         domain.RoleViewer,
		IsActive:     false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID, // self registration
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Warn("Signup failed", slog.String("email", req.Email), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	// Best effort: a notification failure never fails the signup.
	adminEmails, err := s.userRepo.FindAdminEmails(ctx)
	if err != nil {
		logger.Error("Failed to look up admin emails for signup notification", slog.String("error", err.Error()))
	} else if err := s.notifier.NotifySignup(ctx, adminEmails, user.Email, user.FullName); err != nil {
		logger.Error("Failed to send signup notification", slog.String("error", err.Error()))
	}

	logger.Info("User signed up, awaiting activation", slog.String("new_user_id", user.UserID))
	return &user, nil
}

// CreateUser creates an active user with an explicit role (admin action).
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("unknown role %q: %w", req.Role, apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         role,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("User created", slog.String("new_user_id", user.UserID), slog.String("role", string(role)))
	return &user, nil
}

// ChangeUserRole sets a user's role. A user cannot change their own role, so
// the last admin cannot silently lock everyone out.
func (s *userService) ChangeUserRole(ctx context.Context, userID string, role domain.UserRole, requestingUserID string) (*domain.User, error) {
	if userID == requestingUserID {
		return nil, fmt.Errorf("cannot change own role: %w", apperrors.ErrForbidden)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("unknown role %q: %w", role, apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}

	user.Role = role
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("User role changed", slog.String("target_user_id", userID), slog.String("new_role", string(role)))
	return user, nil
}

// ToggleUserActive flips the active flag. A user cannot deactivate themselves.
func (s *userService) ToggleUserActive(ctx context.Context, userID string, requestingUserID string) (*domain.User, error) {
	if userID == requestingUserID {
		return nil, fmt.Errorf("cannot deactivate own account: %w", apperrors.ErrForbidden)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}

	user.IsActive = !user.IsActive
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to toggle user active flag: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("User active flag toggled", slog.String("target_user_id", userID), slog.Bool("is_active", user.IsActive))
	return user, nil
}

// DeleteUser soft-deletes a user. A user cannot delete their own account.
func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	if userID == requestingUserID {
		return fmt.Errorf("cannot delete own account: %w", apperrors.ErrForbidden)
	}

	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now(), requestingUserID); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("User deleted", slog.String("target_user_id", userID))
	return nil
}

// AuthenticateUser verifies credentials and that the account is active.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		logger.Warn("Authentication failed: user lookup", slog.String("error", err.Error()))
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Warn("Authentication failed: password mismatch")
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	if !user.IsActive {
		logger.Warn("Authentication refused: account inactive", slog.String("target_user_id", user.UserID))
		return nil, fmt.Errorf("account is not active: %w", apperrors.ErrForbidden)
	}

	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

func (s *userService) CountPendingUsers(ctx context.Context) (int, error) {
	count, err := s.userRepo.CountInactiveUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending users: %w", err)
	}
	return count, nil
}
