package spookydraw

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dasdy/spookydraw/gallery"
	"github.com/dasdy/spookydraw/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// settingFlags are read through viper directly and skipped by bindFlags.
var settingFlags = map[string]bool{}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "spookydraw",
	Short: "Draw and share spooky pictures",
	Long: `Spookydraw serves a small drawing editor with a gallery of published drawings.
Tool usage is recorded so that the stats page can show which tools people reach for.`,
	PersistentPreRun: bindFlags,
	SilenceUsage:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.spookydraw.toml)")

	addSettingFlags(rootCmd.PersistentFlags())
	cobra.CheckErr(bindSettingFlags(viper.GetViper(), rootCmd.PersistentFlags()))
}

func addSettingFlags(flags *pflag.FlagSet) {
	defaults := model.DefaultSettings()

	flags.String("site-name", defaults.SiteName, "Name shown in the page header")
	flags.String("theme", defaults.Theme, "Page theme: halloween, light or dark")
	flags.String("default-tool", defaults.DefaultTool.String(), "Tool selected when the editor starts")
	flags.StringSlice("disabled-tools", nil, "Tools shown greyed out in the toolbar")
	flags.Bool("allow-anonymous", defaults.AllowAnonymous, "Allow drawings without an author account")
	flags.Int("max-drawings-per-user", defaults.MaxDrawingsPerUser, "Maximum drawings per author, 0 for unlimited")
}

// bindSettingFlags makes settings flags readable through v, so config and env
// values apply to them as well.
func bindSettingFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error

	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || err != nil {
			return
		}

		settingFlags[f.Name] = true
		err = v.BindPFlag(configName(f.Name), f)
	})

	return err
}

func initConfig() {
	if cfgFile != "" {
		slog.Info("Using config file", "path", cfgFile)
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".spookydraw" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".spookydraw")
	}

	viper.SetEnvPrefix("spookydraw")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create an example config
			createExampleConfig()
		} else {
			slog.Error("Error reading config file", "error", err)
			os.Exit(1)
		}
	}

	slog.Debug("Config loaded", "file", viper.ConfigFileUsed())
}

func createExampleConfig() {
	exampleConfig := `
port = 8080
sitename = "Spooky Draw"
theme = "halloween"
defaulttool = "brush"
disabledtools = []
`
	configPath := "./.spookydraw.toml"

	err := os.WriteFile(configPath, []byte(exampleConfig), 0o644)
	if err != nil {
		slog.Error("Error creating example config file", "error", err)
		os.Exit(1)
	}

	slog.Info("Example config file created", "path", configPath)
}

// configName maps a flag name to its config key. Viper compares keys case
// insensitively, so only the hyphens need to go.
func configName(flagName string) string {
	return strings.ReplaceAll(flagName, "-", "")
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) {
	if err := applyConfig(viper.GetViper(), cmd.Flags()); err != nil {
		slog.Error("Error setting flag from config", "error", err)
		panic(err)
	}
}

func applyConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error

	flags.VisitAll(func(f *pflag.Flag) {
		if settingFlags[f.Name] || err != nil {
			return
		}

		name := configName(f.Name)

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(name) {
			val := v.Get(name)

			if setErr := flags.Set(f.Name, fmt.Sprintf("%v", val)); setErr != nil {
				err = fmt.Errorf("flag %s: %w", f.Name, setErr)

				return
			}

			slog.Debug("Flag set to config value", "flag", f.Name, "value", val)
		}
	})

	return err
}

// loadSettings reads the application settings from flags, config and env.
func loadSettings() (*model.AppSettings, error) {
	return loadSettingsFrom(viper.GetViper())
}

func loadSettingsFrom(v *viper.Viper) (*model.AppSettings, error) {
	settings := model.DefaultSettings()

	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("could not read settings: %w", err)
	}

	if err := gallery.NewValidator().ValidateSettings(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}
