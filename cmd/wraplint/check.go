package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/wraplint/wraplint/internal/diag"
	"github.com/wraplint/wraplint/internal/javatree"
	"github.com/wraplint/wraplint/internal/linewrap"
	"github.com/wraplint/wraplint/internal/wrapcfg"
)

// defaultConfigFile is picked up from the working directory when no
// explicit --config is given.
const defaultConfigFile = ".wraplint.yaml"

func run(ctx context.Context, configPath string, verbose bool, files []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	opts := linewrap.Options{
		Width:  cfg.LineWrappingIndentation,
		Strict: cfg.Mode == wrapcfg.ModeStrict,
	}
	allow := cfg.Allowed()

	total := 0
	for _, path := range files {
		n, err := checkFile(ctx, path, allow, opts)
		if err != nil {
			return fmt.Errorf("check %s: %w", path, err)
		}

		total += n
	}

	if total > 0 {
		return fmt.Errorf("found %d indentation problems", total)
	}

	return nil
}

func checkFile(ctx context.Context, path string, allow wrapcfg.TokenSet, opts linewrap.Options) (int, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read source: %w", err)
	}

	res, err := javatree.Parse(ctx, src, path)
	if err != nil {
		return 0, fmt.Errorf("parse source: %w", err)
	}

	rep := &diag.Reporter{}
	for _, root := range res.Headers(allow) {
		linewrap.New(res.Tree, root, opts).CheckIndentation(rep)
	}

	rep.WriteSummary(os.Stdout, path)
	slog.Debug("checked file",
		slog.String("file", path),
		slog.Int("headers", len(res.Headers(allow))),
		slog.Int("findings", rep.Len()))

	return rep.Len(), nil
}

func loadConfig(path string) (*wrapcfg.Config, error) {
	if path != "" {
		return wrapcfg.Load(path)
	}

	cfg, err := wrapcfg.Load(defaultConfigFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return wrapcfg.Default(), nil
		}

		return nil, err
	}

	return cfg, nil
}
