package cmd

import (
	"errors"
	"fmt"
	"os"

	"lore-clans/epub"

	"github.com/spf13/cobra"
)

type packArgs struct {
	ClanID     string
	OutputPath string
}

var (
	pArgs packArgs
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "pack a clan book into an epub file",
	Long:  "pack a clan book into an epub file",
	RunE:  runPackage,
}

func init() {
	packCmd.Flags().StringVarP(&pArgs.ClanID, "clan", "c", "", "clan id")
	packCmd.Flags().StringVarP(&pArgs.OutputPath, "output-path", "o", "./books", "output path")
	RootCmd.AddCommand(packCmd)
}

func runPackage(cmd *cobra.Command, args []string) error {
	if pArgs.ClanID == "" {
		return fmt.Errorf("clan id is required")
	}
	library, err := loadLibrary()
	if err != nil {
		return err
	}
	set, err := library.Book(pArgs.ClanID)
	if err != nil {
		return err
	}
	clan, village, _ := library.Clan(set.ClanID)

	book := epub.Book{Title: clan.Name, Village: village.Name, Set: set}
	savePath, err := epub.PackClanToEpub(book, os.DirFS(cfg.AssetsDir), pArgs.OutputPath)
	if errors.Is(err, epub.ErrEmptyBook) {
		return fmt.Errorf("clan %s has no pages to pack", set.ClanID)
	}
	if err != nil {
		return fmt.Errorf("failed to create epub: %w", err)
	}
	logger.Info("epub written", "clan", set.ClanID, "pages", len(set.Pages), "path", savePath)
	return nil
}
