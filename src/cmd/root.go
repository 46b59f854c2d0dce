// Package cmd implements the courtside command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apimgr/courtside/src/api"
	"github.com/apimgr/courtside/src/logging"
	"github.com/apimgr/courtside/src/paths"
	"github.com/apimgr/courtside/src/scoreboard"
	"github.com/apimgr/courtside/src/tui"
)

var (
	// Build info - set via -ldflags at build time
	ProjectName = "courtside"
	Version     = "dev"
	CommitID    = "unknown"
	BuildDate   = "unknown"

	cfgFile  string
	dateFlag string
	offset   int
	timeout  int
	noColor  bool
)

// datePattern accepts zero-padded dash-separated dates like 01-15-2019
var datePattern = regexp.MustCompile(`^\d\d-\d\d-\d{4}$`)

var rootCmd = &cobra.Command{
	Use:   getBinaryName(),
	Short: "Live NBA scores in the terminal",
	Long: `courtside polls the NBA stats scoreboard and renders live games as an
interactive terminal dashboard: a list of the day's games, and a
per-game detail view with box score and shooting stats.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := dateFlag
		if date == "" {
			date = time.Now().Format("01-02-2006")
		}
		if err := validateDate(date); err != nil {
			return err
		}

		if err := logging.Init(); err != nil {
			return err
		}

		if noColor {
			os.Setenv("NO_COLOR", "1")
		}

		timeoutVal := viper.GetInt("api.timeout")
		if timeout > 0 {
			timeoutVal = timeout
		}
		if timeoutVal == 0 {
			timeoutVal = 10
		}

		api.ProjectName = ProjectName
		api.Version = Version
		client := api.NewClient(viper.GetString("api.base_url"), timeoutVal)

		// Initial fetch happens before the UI so an empty slate or a
		// dead endpoint never opens a blank screen.
		apiDate := toAPIDate(date)
		sb, err := client.Scoreboard(context.Background(), apiDate, offset)
		if err != nil {
			return fmt.Errorf("fetch scoreboard: %w", err)
		}

		games := scoreboard.BuildBatch(sb)
		if len(games) == 0 {
			fmt.Println("No games found for given day")
			return nil
		}

		return tui.Run(client, apiDate, offset, games)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.Flags().StringVar(&dateFlag, "date", "", `reference date, eg "01-15-2019" (default: today)`)
	rootCmd.Flags().IntVar(&offset, "offset", 0, "days offset from --date")
	rootCmd.Flags().IntVar(&timeout, "timeout", 0, "request timeout in seconds")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// validateDate rejects malformed --date input before any UI starts
func validateDate(date string) error {
	if !datePattern.MatchString(date) {
		return fmt.Errorf("invalid date %q; use dashes and zero-pad like 01-15-2019", date)
	}
	return nil
}

// toAPIDate converts the CLI's MM-DD-YYYY to the endpoint's MM/DD/YYYY
func toAPIDate(date string) string {
	return strings.ReplaceAll(date, "-", "/")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		configDir := paths.ConfigDir()
		os.MkdirAll(configDir, 0700)
		viper.AddConfigPath(configDir)
		viper.SetConfigName("cli")
		viper.SetConfigType("yaml")
	}

	// Defaults
	viper.SetDefault("api.base_url", "https://stats.nba.com")
	viper.SetDefault("api.timeout", 10)
	viper.SetDefault("refresh.data_interval", 5)
	viper.SetDefault("refresh.pulse_interval", 30)
	viper.SetDefault("display.cell_width", 5)
	viper.SetDefault("logging.level", "warn")

	viper.ReadInConfig()
}

func getBinaryName() string {
	return filepath.Base(os.Args[0])
}
