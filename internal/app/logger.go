package app

import (
	"os"

	"rider-dispatch/internal/config"
	"rider-dispatch/internal/logx"
)

// NewLogger returns the JSON process logger at the configured level.
func NewLogger(cfg *config.Config) logx.Logger {
	return logx.NewJSON(os.Stdout, cfg.LogLevel)
}
