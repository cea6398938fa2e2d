package rest

import (
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/buxdao/holder-bot/internal/domain"
	"github.com/buxdao/holder-bot/internal/logger"
	"github.com/buxdao/holder-bot/internal/profile"
	"github.com/buxdao/holder-bot/internal/registry"
)

// Discord snowflakes are unsigned 64-bit integers rendered in decimal
var userIDPattern = regexp.MustCompile(`^[0-9]{1,20}$`)

// Handler defines the REST API handlers
type Handler interface {
	// GetHoldings aggregates the holdings of a user without side effects
	// GET /api/v1/users/:user_id/holdings
	GetHoldings(c *gin.Context)

	// RefreshUser runs the full verification: holdings, reward accrual, role reconciliation
	// POST /api/v1/users/:user_id/refresh
	RefreshUser(c *gin.Context)

	// LinkWallet links a wallet to a user
	// POST /api/v1/users/:user_id/wallets
	LinkWallet(c *gin.Context)

	// UnlinkWallet unlinks a wallet from a user
	// DELETE /api/v1/users/:user_id/wallets/:wallet
	UnlinkWallet(c *gin.Context)

	// ReloadHashlists re-reads every hashlist from disk
	// POST /api/v1/admin/hashlists/reload
	ReloadHashlists(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// LinkWalletRequest is the body of LinkWallet
type LinkWalletRequest struct {
	Wallet string `json:"wallet" binding:"required"`
}

// LinkWalletResponse is the body returned by LinkWallet
type LinkWalletResponse struct {
	UserID domain.UserID        `json:"user_id"`
	Wallet domain.WalletAddress `json:"wallet"`
}

// ReloadHashlistsResponse is the body returned by ReloadHashlists
type ReloadHashlistsResponse struct {
	Version     uint64                       `json:"version"`
	LoadedAt    time.Time                    `json:"loaded_at"`
	Collections map[domain.CollectionKey]int `json:"collections"`
}

type handler struct {
	profiles  profile.Service
	hashlists registry.HashlistRegistry
}

// NewHandler creates a new REST API handler
func NewHandler(profiles profile.Service, hashlists registry.HashlistRegistry) Handler {
	return &handler{
		profiles:  profiles,
		hashlists: hashlists,
	}
}

// userID reads and validates the :user_id path parameter, responding 400 when it is malformed
func userID(c *gin.Context) (domain.UserID, bool) {
	id := c.Param("user_id")
	if !userIDPattern.MatchString(id) {
		respondBadRequest(c, "Invalid user id", id)
		return "", false
	}
	return domain.UserID(id), true
}

// GetHoldings aggregates the holdings of a user
func (h *handler) GetHoldings(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	holdings, err := h.profiles.Holdings(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, logger.User(id))
		return
	}

	c.JSON(http.StatusOK, holdings)
}

// RefreshUser runs the full verification of a user
func (h *handler) RefreshUser(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	p, err := h.profiles.Refresh(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, logger.User(id))
		return
	}

	c.JSON(http.StatusOK, p)
}

// LinkWallet links a wallet to a user
func (h *handler) LinkWallet(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req LinkWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	wallet, err := h.profiles.LinkWallet(c.Request.Context(), id, req.Wallet)
	if err != nil {
		respondServiceError(c, err, logger.User(id))
		return
	}

	c.JSON(http.StatusCreated, LinkWalletResponse{UserID: id, Wallet: wallet})
}

// UnlinkWallet unlinks a wallet from a user
func (h *handler) UnlinkWallet(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	if err := h.profiles.UnlinkWallet(c.Request.Context(), id, c.Param("wallet")); err != nil {
		respondServiceError(c, err, logger.User(id))
		return
	}

	c.Status(http.StatusNoContent)
}

// ReloadHashlists re-reads every hashlist from disk
func (h *handler) ReloadHashlists(c *gin.Context) {
	sets := h.hashlists.ReloadFromDisk()

	resp := ReloadHashlistsResponse{
		Version:     sets.Version(),
		LoadedAt:    sets.LoadedAt().UTC(),
		Collections: make(map[domain.CollectionKey]int),
	}
	for _, key := range sets.Collections() {
		resp.Collections[key] = sets.Size(key)
	}

	c.JSON(http.StatusOK, resp)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "ok",
		"hashlist_version": h.hashlists.Current().Version(),
	})
}
