package discord

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/buxdao/holder-bot/internal/adapter"
	"github.com/buxdao/holder-bot/internal/domain"
	"github.com/buxdao/holder-bot/internal/logger"
)

// IdentityService reads and mutates the roles of guild members
//
//go:generate mockgen -source=identity.go -destination=../../mocks/identity.go -package=mocks -mock_names=IdentityService=MockIdentityService
type IdentityService interface {
	// GetMemberRoles returns the live role set of a member
	GetMemberRoles(ctx context.Context, userID domain.UserID) (domain.RoleSet, error)

	// AddRole grants a single role
	AddRole(ctx context.Context, userID domain.UserID, roleID domain.RoleID) error

	// RemoveRole revokes a single role
	RemoveRole(ctx context.Context, userID domain.UserID, roleID domain.RoleID) error
}

type identityService struct {
	session adapter.DiscordSession
	guildID string
}

// NewIdentityService creates an identity service bound to one guild
func NewIdentityService(session adapter.DiscordSession, guildID string) IdentityService {
	return &identityService{
		session: session,
		guildID: guildID,
	}
}

// GetMemberRoles returns the live role set of a member
func (s *identityService) GetMemberRoles(ctx context.Context, userID domain.UserID) (domain.RoleSet, error) {
	ids, err := s.session.GuildMemberRoles(ctx, s.guildID, string(userID))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get roles of %s: %w", domain.ErrIdentityService, userID, err)
	}

	roles := make(domain.RoleSet, len(ids))
	for _, id := range ids {
		roles.Add(domain.RoleID(id))
	}
	return roles, nil
}

// AddRole grants a single role
func (s *identityService) AddRole(ctx context.Context, userID domain.UserID, roleID domain.RoleID) error {
	if err := s.session.GuildMemberRoleAdd(ctx, s.guildID, string(userID), string(roleID)); err != nil {
		return fmt.Errorf("%w: failed to add role %s to %s: %w", domain.ErrIdentityService, roleID, userID, err)
	}
	logger.DebugCtx(ctx, "Role added", logger.User(userID), logger.Role(roleID), zap.String("guild_id", s.guildID))
	return nil
}

// RemoveRole revokes a single role
func (s *identityService) RemoveRole(ctx context.Context, userID domain.UserID, roleID domain.RoleID) error {
	if err := s.session.GuildMemberRoleRemove(ctx, s.guildID, string(userID), string(roleID)); err != nil {
		return fmt.Errorf("%w: failed to remove role %s from %s: %w", domain.ErrIdentityService, roleID, userID, err)
	}
	logger.DebugCtx(ctx, "Role removed", logger.User(userID), logger.Role(roleID), zap.String("guild_id", s.guildID))
	return nil
}
