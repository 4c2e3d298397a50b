package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// GetMe returns the authenticated user.
func (s *Service) GetMe(ctx context.Context) (*domain.User, error) {
	return s.provider.CurrentUser(ctx)
}

// GetUser returns another user's account. Callers need getUsers unless they
// ask for themselves.
func (s *Service) GetUser(ctx context.Context, rawID string) (*domain.User, error) {
	me, err := s.provider.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	target, err := s.provider.UserByString(ctx, "id", rawID)
	if err != nil {
		return nil, err
	}

	if err := s.verifier.VerifyAuthorization(me, domain.PermissionGetUsers, sameUser(me, target)); err != nil {
		return nil, err
	}

	return target, nil
}

// UpdateMe changes the authenticated user's profile.
func (s *Service) UpdateMe(ctx context.Context, input UpdateMeInput) (*domain.User, error) {
	me, err := s.provider.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.verifier.VerifyAuthorization(me, domain.PermissionUpdateUser, me); err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.UserUpdateParams{Name: input.Name, Email: input.Email}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("user.UpdateMe: %w", err)
		}
		params.PasswordHash = &hash
	}

	user, err := s.users.Update(ctx, me.ID, params)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateMe: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", me.ID.String()))

	return user, nil
}

// DeleteMe soft-deletes the authenticated user and returns the account as
// it was before deletion.
func (s *Service) DeleteMe(ctx context.Context) (*domain.User, error) {
	me, err := s.provider.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.verifier.VerifyAuthorization(me, domain.PermissionDeleteUser, me); err != nil {
		return nil, err
	}

	if err := s.users.SoftDelete(ctx, me.ID); err != nil {
		return nil, fmt.Errorf("user.DeleteMe: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted", slog.String("user_id", me.ID.String()))

	return me, nil
}

// sameUser returns target as an ownership candidate only when it is me.
func sameUser(me, target *domain.User) domain.Owned {
	if me.ID == target.ID {
		return target
	}
	return nil
}
