package cmd

import (
	"fmt"

	"lore-clans/catalog"
	"lore-clans/downloader"
	"lore-clans/utils"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the assets listed in the manifest",
	Long:  "Download the assets listed in the manifest from a remote host into the asset root. Files already present are skipped.",
	RunE:  runFetch,
}

type fetchArgs struct {
	BaseURL string
	Retries int
}

var fArgs fetchArgs

func init() {
	fetchCmd.Flags().StringVarP(&fArgs.BaseURL, "base-url", "u", "", "remote asset root (env LORE_MIRROR_URL)")
	fetchCmd.Flags().IntVarP(&fArgs.Retries, "retries", "r", 0, "retries per asset (env LORE_MIRROR_RETRIES)")
	RootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("base-url") {
		cfg.MirrorURL = fArgs.BaseURL
	}
	if cmd.Flags().Changed("retries") {
		cfg.MirrorRetries = fArgs.Retries
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	m, err := catalog.LoadManifest(cfg.ManifestPath)
	if err != nil {
		return fmt.Errorf("fetch needs a manifest: %w", err)
	}
	remote, err := downloader.NewRemote(utils.NewRestyClient(cfg.MirrorRetries), cfg.MirrorURL)
	if err != nil {
		return err
	}
	report, err := downloader.Sync(cmd.Context(), remote, m.Assets, cfg.AssetsDir, logger)
	if err != nil {
		return fmt.Errorf("failed to fetch assets: %w", err)
	}
	logger.Info("assets fetched", "downloaded", report.Downloaded, "skipped", report.Skipped)
	return nil
}
