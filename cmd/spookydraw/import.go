package spookydraw

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dasdy/spookydraw/db"
	"github.com/dasdy/spookydraw/gallery"
	"github.com/spf13/cobra"
)

var importFile string

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import users and drawings from a json bundle",
	Long: `Read a json document with "users" and "drawings" arrays and store every valid record.
Invalid records and drawings above the per-user limit are skipped.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		file, err := os.Open(importFile)
		if err != nil {
			return fmt.Errorf("could not open bundle: %w", err)
		}
		defer file.Close()

		bundle, err := gallery.LoadBundle(file)
		if err != nil {
			return err
		}

		storage, err := db.NewStorageFromPath(storagePath)
		if err != nil {
			return fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
		}
		defer storage.Close()

		result, err := gallery.Import(storage, bundle, gallery.NewValidator(), settings, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("import failed after %d drawings: %w", result.Drawings, err)
		}

		slog.Info("Import finished",
			"users", result.Users,
			"drawings", result.Drawings,
			"skipped", result.Skipped)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(
		&importFile,
		"file",
		"f",
		"",
		"Bundle to import")
	cobra.CheckErr(importCmd.MarkFlagRequired("file"))

	importCmd.Flags().StringVarP(
		&storagePath,
		"storage",
		"s",
		"./spookydraw.sqlite",
		"Path to the gallery database")
}
