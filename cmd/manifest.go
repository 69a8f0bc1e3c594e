package cmd

import (
	"errors"
	"io/fs"
	"os"

	"lore-clans/catalog"

	"github.com/spf13/cobra"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Scan the asset root and write the static manifest",
	Long:  "Scan the asset root and write the static manifest. The village menu of an existing manifest is kept.",
	RunE:  runManifest,
}

type manifestArgs struct {
	OutputPath string
}

var mArgs manifestArgs

func init() {
	manifestCmd.Flags().StringVarP(&mArgs.OutputPath, "output-path", "o", "", "where to write the manifest, defaults to --manifest")
	RootCmd.AddCommand(manifestCmd)
}

func runManifest(cmd *cobra.Command, args []string) error {
	outputPath := cfg.ManifestPath
	if mArgs.OutputPath != "" {
		outputPath = mArgs.OutputPath
	}

	m, err := catalog.LoadManifest(cfg.ManifestPath)
	if errors.Is(err, fs.ErrNotExist) {
		m, err = catalog.DefaultManifest()
	}
	if err != nil {
		return err
	}

	m.Assets, err = catalog.Scan(os.DirFS(cfg.AssetsDir))
	if err != nil {
		return err
	}
	if err := m.Save(outputPath); err != nil {
		return err
	}
	logger.Info("manifest written", "path", outputPath, "assets", len(m.Assets))
	return nil
}
