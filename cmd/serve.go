package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lore-clans/web"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the village menu and clan books",
	Long:  "Serve the village menu and clan books",
	RunE:  runServe,
}

type serveArgs struct {
	HTTPAddr      string
	DefaultVolume float64
}

var sArgs serveArgs

func init() {
	serveCmd.Flags().StringVarP(&sArgs.HTTPAddr, "http-addr", "l", "", "HTTP listen address (env LORE_HTTP_ADDR)")
	serveCmd.Flags().Float64Var(&sArgs.DefaultVolume, "default-volume", 0, "initial ambient volume in [0,1] (env LORE_DEFAULT_VOLUME)")
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("http-addr") {
		cfg.HTTPAddr = sArgs.HTTPAddr
	}
	if cmd.Flags().Changed("default-volume") {
		cfg.DefaultVolume = sArgs.DefaultVolume
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	library, err := loadLibrary()
	if err != nil {
		return err
	}
	for _, v := range library.Villages() {
		for _, c := range v.Clans {
			set, _ := library.Book(c.ID)
			if set.Empty() {
				logger.Warn("clan has no pages", "village", v.Name, "clan", c.ID)
				continue
			}
			logger.Debug("clan ready", "clan", c.ID, "pages", len(set.Pages), "audio", set.HasAudio())
		}
	}

	server, err := web.NewServer(web.Config{
		HTTPAddr: cfg.HTTPAddr,
		Handler:  web.NewHandler(library, os.DirFS(cfg.AssetsDir), cfg.DefaultVolume, logger),
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
