package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/seyia90/authstarter/internal/auth/entity"
	"github.com/seyia90/authstarter/internal/pkg/goerror"
)

// Admin user management, guarded by the RBAC enforcer.

type UserListInput struct {
	Search string
	Role   string
	Page   int32 `validate:"gte=0"`
	Size   int32 `validate:"gte=0,lte=100"`
}

type UserListOutput struct {
	Users []ProfileOutput `json:"users"`
	total int64
	page  int32
	size  int32
}

func (o *UserListOutput) Meta() map[string]any {
	return map[string]any{
		"total": o.total,
		"page":  o.page,
		"size":  o.size,
	}
}

func (s *Usecase) UserList(ctx context.Context, in UserListInput) (*UserListOutput, error) {
	ctx, span := s.startSpan(ctx, "UserList")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "users", "read"); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.Page < 1 {
		in.Page = 1
	}
	if in.Size < 1 {
		in.Size = 20
	}

	users, total, err := s.repoDB.GetUserList(ctx, entity.UserListFilter{
		Search: strings.TrimSpace(in.Search),
		Role:   entity.UserRole(in.Role),
		Page:   in.Page,
		Size:   in.Size,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user list", "error", err)
		return nil, goerror.NewServer(err)
	}

	out := &UserListOutput{
		Users: make([]ProfileOutput, 0, len(users)),
		total: total,
		page:  in.Page,
		size:  in.Size,
	}
	for i := range users {
		out.Users = append(out.Users, *newProfileOutput(&users[i]))
	}
	return out, nil
}

type UserDetailInput struct {
	ID int64 `validate:"required"`
}

func (s *Usecase) UserDetail(ctx context.Context, in UserDetailInput) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "UserDetail")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "users", "read"); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return newProfileOutput(user), nil
}

type UserUpdateInput struct {
	ID        int64  `validate:"required"`
	FirstName string `validate:"required,max=100"`
	LastName  string `validate:"required,max=100"`
}

func (s *Usecase) UserUpdate(ctx context.Context, in UserUpdateInput) error {
	ctx, span := s.startSpan(ctx, "UserUpdate")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, "users", "write"); err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.UpdateUserProfile(ctx, entity.UpdateProfile{
		ID:        in.ID,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
	}); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("User not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo update user profile", "user_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

type UserDeleteInput struct {
	ID int64 `validate:"required"`
}

func (s *Usecase) UserDelete(ctx context.Context, in UserDeleteInput) error {
	ctx, span := s.startSpan(ctx, "UserDelete")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, "users", "delete")
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if clm.UserID == in.ID {
		return goerror.NewBusiness("You cannot delete your own account", goerror.CodeInvalidInput)
	}

	if err := s.repoDB.MarkUserDeleted(ctx, in.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("User not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo mark user deleted", "user_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
