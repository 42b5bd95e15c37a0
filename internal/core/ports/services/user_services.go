package services

import (
	"context"

	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
	"github.com/checkflowhq/checkflow_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves users, newest first.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	// CountPendingUsers returns the number of users awaiting activation.
	CountPendingUsers(ctx context.Context) (int, error)
}

// UserWriterSvc defines write and administration operations for users
type UserWriterSvc interface {
	// Signup self-registers an inactive VIEWER account.
	Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error)

	// CreateUser creates an active user with the given role (admin action).
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// ChangeUserRole sets a user's role. A user cannot change their own role.
	ChangeUserRole(ctx context.Context, userID string, role domain.UserRole, requestingUserID string) (*domain.User, error)

	// ToggleUserActive flips a user's active flag. A user cannot deactivate themselves.
	ToggleUserActive(ctx context.Context, userID string, requestingUserID string) (*domain.User, error)

	// DeleteUser soft-deletes a user. A user cannot delete their own account.
	DeleteUser(ctx context.Context, userID string, requestingUserID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser verifies credentials and that the account is active.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
