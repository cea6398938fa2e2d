package adapter

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// DiscordSession defines the guild member operations used for role management to enable mocking
//
//go:generate mockgen -source=discord.go -destination=../mocks/discord.go -package=mocks -mock_names=DiscordSession=MockDiscordSession
type DiscordSession interface {
	// GuildMemberRoles returns the role ids currently held by a guild member
	GuildMemberRoles(ctx context.Context, guildID, userID string) ([]string, error)

	// GuildMemberRoleAdd grants a role to a guild member
	GuildMemberRoleAdd(ctx context.Context, guildID, userID, roleID string) error

	// GuildMemberRoleRemove revokes a role from a guild member
	GuildMemberRoleRemove(ctx context.Context, guildID, userID, roleID string) error
}

// RealDiscordSession wraps a discordgo REST session
type RealDiscordSession struct {
	session *discordgo.Session
}

// NewDiscordSession creates a discordgo session authenticated with a bot token
func NewDiscordSession(botToken string) (DiscordSession, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, err
	}
	return &RealDiscordSession{session: session}, nil
}

// GuildMemberRoles returns the role ids currently held by a guild member
func (d *RealDiscordSession) GuildMemberRoles(ctx context.Context, guildID, userID string) ([]string, error) {
	member, err := d.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return member.Roles, nil
}

// GuildMemberRoleAdd grants a role to a guild member
func (d *RealDiscordSession) GuildMemberRoleAdd(ctx context.Context, guildID, userID, roleID string) error {
	return d.session.GuildMemberRoleAdd(guildID, userID, roleID, discordgo.WithContext(ctx))
}

// GuildMemberRoleRemove revokes a role from a guild member
func (d *RealDiscordSession) GuildMemberRoleRemove(ctx context.Context, guildID, userID, roleID string) error {
	return d.session.GuildMemberRoleRemove(guildID, userID, roleID, discordgo.WithContext(ctx))
}
