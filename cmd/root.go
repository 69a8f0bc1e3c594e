package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"lore-clans/catalog"
	"lore-clans/config"

	"github.com/spf13/cobra"
)

// RootCmd is the lore-clans entry point. Settings come from LORE_* variables
// and are overridden by flags.
var RootCmd = &cobra.Command{
	Use:               "lore-clans",
	Short:             "Browse clan grimoires as flip books",
	Long:              "Serve the village menu and clan books, and manage their asset manifest",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

type rootArgs struct {
	AssetsDir    string
	ManifestPath string
	LogLevel     string
	LogFormat    string
}

var (
	rArgs  rootArgs
	cfg    config.Config
	logger *slog.Logger
)

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVarP(&rArgs.AssetsDir, "assets-dir", "a", "", "asset root holding pages/<clan>/ (env LORE_ASSETS_DIR)")
	flags.StringVarP(&rArgs.ManifestPath, "manifest", "m", "", "static manifest path (env LORE_MANIFEST)")
	flags.StringVar(&rArgs.LogLevel, "log-level", "", "debug, info, warn or error (env LORE_LOG_LEVEL)")
	flags.StringVar(&rArgs.LogFormat, "log-format", "", "text or json (env LORE_LOG_FORMAT)")
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("assets-dir") {
		loaded.AssetsDir = rArgs.AssetsDir
	}
	if flags.Changed("manifest") {
		loaded.ManifestPath = rArgs.ManifestPath
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = rArgs.LogLevel
	}
	if flags.Changed("log-format") {
		loaded.LogFormat = rArgs.LogFormat
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	l, err := loaded.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	cfg = loaded
	logger = l
	slog.SetDefault(logger)
	return nil
}

// loadLibrary reads the manifest, falling back to scanning the asset root.
func loadLibrary() (*catalog.Library, error) {
	m, err := catalog.LoadOrScan(cfg.ManifestPath, os.DirFS(cfg.AssetsDir))
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Debug("catalog loaded", "assets", len(m.Assets), "villages", len(m.Villages))
	return catalog.NewLibrary(m, "/assets"), nil
}
