package spookydraw

import (
	"fmt"
	"log/slog"

	"github.com/dasdy/spookydraw/db"
	"github.com/dasdy/spookydraw/web"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	storagePath string
	port        int
	dev         bool
	verbose     bool
	assetsDir   string
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the editor and gallery web interface",
	Long:  `Open the gallery database and serve the drawing editor, the gallery and the stats pages.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		slog.Debug("Config parameters", "settings", viper.AllSettings())
		slog.Info("Opening storage", "path", storagePath)

		settings, err := loadSettings()
		if err != nil {
			return err
		}

		storage, err := db.NewStorageFromPath(storagePath)
		if err != nil {
			return fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
		}
		defer storage.Close()

		tracker, err := db.NewTransitionCounterFromDB(storage)
		if err != nil {
			return fmt.Errorf("could not create transition tracker: %w", err)
		}

		return web.StartServer(port, &web.Options{
			Storage:   storage,
			Tracker:   tracker,
			Settings:  settings,
			AssetsDir: assetsDir,
			Dev:       dev,
			Verbose:   verbose,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&port, "port", "p", 9000,
		"Port on which server should be watching")

	serveCmd.Flags().StringVarP(
		&storagePath,
		"storage",
		"s",
		"./spookydraw.sqlite",
		"Path to the gallery database")

	serveCmd.Flags().StringVar(
		&assetsDir,
		"assets",
		"assets",
		"Directory with static files served under /assets")

	serveCmd.Flags().BoolVar(&dev,
		"dev",
		false,
		"Enable developer mode")

	serveCmd.Flags().BoolVarP(&verbose,
		"verbose",
		"v",
		false,
		"If provided, every tool switch is logged")
}
