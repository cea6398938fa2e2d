package solana

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/portto/solana-go-sdk/common"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/buxdao/holder-bot/internal/adapter"
	"github.com/buxdao/holder-bot/internal/domain"
	"github.com/buxdao/holder-bot/internal/logger"
)

const (
	methodGetTokenAccountsByOwner = "getTokenAccountsByOwner"

	// JSON-RPC error codes some providers use instead of an HTTP 429
	rpcCodeTooManyRequests       = 429
	rpcCodeTooManyRequestsLegacy = -32429
)

// ChainReader reads the token accounts owned by a wallet
//
//go:generate mockgen -source=client.go -destination=../../mocks/solana_client.go -package=mocks -mock_names=ChainReader=MockChainReader
type ChainReader interface {
	// GetTokenAccounts lists the token accounts of wallet under the standard token program.
	// Makes exactly one upstream call and never retries.
	GetTokenAccounts(ctx context.Context, wallet domain.WalletAddress) (*domain.TokenAccountSnapshot, error)
}

// Config configures the Solana RPC client
type Config struct {
	RPCURL            string
	RequestsPerSecond float64
	Burst             int
}

type client struct {
	rpcURL         string
	httpClient     adapter.HTTPClient
	limiter        *rate.Limiter
	circuitBreaker *gobreaker.CircuitBreaker
}

// NewClient creates a Solana JSON-RPC client
func NewClient(cfg Config, httpClient adapter.HTTPClient) ChainReader {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &client{
		rpcURL:     cfg.RPCURL,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, burst),
		circuitBreaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "solana-rpc",
			MaxRequests: 3,
			Interval:    60 * time.Second,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 5
			},
			// Throttling is expected under load and is handled by the caller's retry policy
			IsSuccessful: func(err error) bool {
				return err == nil ||
					domain.IsRateLimited(err) ||
					errors.Is(err, context.Canceled) ||
					errors.Is(err, context.DeadlineExceeded)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("Circuit breaker state changed",
					zap.String("name", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()))
			},
		}),
	}
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type tokenAccountsResponse struct {
	Result *struct {
		Value []struct {
			Pubkey  string `json:"pubkey"`
			Account struct {
				Data struct {
					Parsed struct {
						Info struct {
							Mint        string `json:"mint"`
							Owner       string `json:"owner"`
							TokenAmount struct {
								Amount   string `json:"amount"`
								Decimals uint8  `json:"decimals"`
							} `json:"tokenAmount"`
						} `json:"info"`
					} `json:"parsed"`
				} `json:"data"`
			} `json:"account"`
		} `json:"value"`
	} `json:"result"`
	Error *rpcError `json:"error"`
}

// GetTokenAccounts lists the token accounts of wallet
func (c *client) GetTokenAccounts(ctx context.Context, wallet domain.WalletAddress) (*domain.TokenAccountSnapshot, error) {
	if _, err := domain.ParseWalletAddress(string(wallet)); err != nil {
		return nil, &domain.ChainQueryError{Wallet: wallet, Err: err}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &domain.ChainQueryError{Wallet: wallet, Err: fmt.Errorf("rate limiter wait failed: %w", err)}
	}

	result, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		return c.getTokenAccounts(ctx, wallet)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &domain.ChainQueryError{Wallet: wallet, Err: err}
		}
		return nil, err
	}

	return result.(*domain.TokenAccountSnapshot), nil
}

func (c *client) getTokenAccounts(ctx context.Context, wallet domain.WalletAddress) (*domain.TokenAccountSnapshot, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  methodGetTokenAccountsByOwner,
		Params: []interface{}{
			string(wallet),
			map[string]string{"programId": common.TokenProgramID.ToBase58()},
			map[string]string{"encoding": "jsonParsed"},
		},
	})
	if err != nil {
		return nil, &domain.ChainQueryError{Wallet: wallet, Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	resp, err := c.httpClient.PostJSON(ctx, c.rpcURL, body, nil)
	if err != nil {
		return nil, &domain.ChainQueryError{Wallet: wallet, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.ChainQueryError{
			Wallet:     wallet,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, truncate(resp.Body, 256)),
		}
	}

	var decoded tokenAccountsResponse
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		return nil, &domain.ChainQueryError{Wallet: wallet, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if decoded.Error != nil {
		status := 0
		if decoded.Error.Code == rpcCodeTooManyRequests || decoded.Error.Code == rpcCodeTooManyRequestsLegacy {
			status = http.StatusTooManyRequests
		}
		return nil, &domain.ChainQueryError{Wallet: wallet, StatusCode: status, Err: decoded.Error}
	}

	if decoded.Result == nil {
		return nil, &domain.ChainQueryError{Wallet: wallet, Err: errors.New("response has neither result nor error")}
	}

	snapshot := &domain.TokenAccountSnapshot{
		Wallet:   wallet,
		Accounts: make([]domain.TokenAccount, 0, len(decoded.Result.Value)),
	}
	for _, item := range decoded.Result.Value {
		info := item.Account.Data.Parsed.Info
		amount, err := strconv.ParseUint(info.TokenAmount.Amount, 10, 64)
		if err != nil {
			logger.WarnCtx(ctx, "Skipping token account with unparseable amount",
				logger.Wallet(wallet),
				zap.String("account", item.Pubkey),
				zap.String("amount", info.TokenAmount.Amount),
				zap.Error(err))
			continue
		}
		snapshot.Accounts = append(snapshot.Accounts, domain.TokenAccount{
			Mint:     info.Mint,
			Owner:    info.Owner,
			Amount:   amount,
			Decimals: info.TokenAmount.Decimals,
		})
	}

	return snapshot, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
