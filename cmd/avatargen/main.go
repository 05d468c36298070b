// Package main generates the Codex Vitae avatar as a self-contained glTF file.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/codex-avatar/internal/avatar"
	"github.com/Faultbox/codex-avatar/internal/config"
	"github.com/Faultbox/codex-avatar/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, os.Stdout); err != nil {
		logger.Error("avatar generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

// run builds and writes the avatar, then reports the result on out.
func run(cfg *config.Config, out io.Writer) error {
	logger.Sugar.Debugf("Config: %+v", cfg)

	res, err := avatar.Build(cfg.Tessellation)
	if err != nil {
		return err
	}
	if err := avatar.Write(res.Document, cfg.Output.Path, cfg.Output.Indent); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output.Path, err)
	}

	logger.Info("wrote avatar", zap.String("path", cfg.Output.Path), zap.Uint32("buffer_bytes", res.BufferBytes))
	_, err = fmt.Fprintf(out, "Wrote %s (%d bytes of buffer data)\n", cfg.Output.Path, res.BufferBytes)
	return err
}
