package logger

import (
	"go.uber.org/zap"

	"github.com/buxdao/holder-bot/internal/domain"
)

// User returns the structured field for a Discord user id
func User(userID domain.UserID) zap.Field {
	return zap.String("user_id", string(userID))
}

// Wallet returns the structured field for a wallet address
func Wallet(wallet domain.WalletAddress) zap.Field {
	return zap.String("wallet", string(wallet))
}

// Role returns the structured field for a Discord role id
func Role(roleID domain.RoleID) zap.Field {
	return zap.String("role_id", string(roleID))
}
