package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const defaultAddr = ":8080"
const defaultChannelID = "LedgerApp"
const defaultChannelKey = "LedgerKey001"
const defaultLogLevel = "info"
const defaultWithdrawalLimit = "500"
const defaultMaxWithdrawals = 3

type Config struct {
	Addr             string
	ChannelID        string
	ChannelKey       string
	LogLevel         string
	WithdrawalLimit  decimal.Decimal
	MaxWithdrawals   int
	WithdrawalPeriod time.Duration
}

func Load() (Config, error) {
	limit, err := decimal.NewFromString(envOrDefault("WITHDRAWAL_LIMIT", defaultWithdrawalLimit))
	if err != nil {
		return Config{}, fmt.Errorf("parse WITHDRAWAL_LIMIT: %w", err)
	}
	if limit.LessThanOrEqual(decimal.Zero) {
		return Config{}, fmt.Errorf("WITHDRAWAL_LIMIT must be greater than zero")
	}

	maxWithdrawals := defaultMaxWithdrawals
	if raw := strings.TrimSpace(os.Getenv("MAX_WITHDRAWALS")); raw != "" {
		maxWithdrawals, err = strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse MAX_WITHDRAWALS: %w", err)
		}
		if maxWithdrawals < 0 {
			return Config{}, fmt.Errorf("MAX_WITHDRAWALS cannot be negative")
		}
	}

	// Zero keeps the withdrawal count cap for the lifetime of the account.
	var period time.Duration
	if raw := strings.TrimSpace(os.Getenv("WITHDRAWAL_PERIOD")); raw != "" {
		period, err = time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse WITHDRAWAL_PERIOD: %w", err)
		}
		if period < 0 {
			return Config{}, fmt.Errorf("WITHDRAWAL_PERIOD cannot be negative")
		}
	}

	return Config{
		Addr:             envOrDefault("LEDGER_ADDR", defaultAddr),
		ChannelID:        envOrDefault("CHANNEL_ID", defaultChannelID),
		ChannelKey:       envOrDefault("CHANNEL_KEY", defaultChannelKey),
		LogLevel:         envOrDefault("LOG_LEVEL", defaultLogLevel),
		WithdrawalLimit:  limit,
		MaxWithdrawals:   maxWithdrawals,
		WithdrawalPeriod: period,
	}, nil
}

func envOrDefault(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
