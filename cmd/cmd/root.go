package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"craft/internal/config"
	"craft/internal/logger"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "craft",
	Short: "Craft turns a topic into card-news, newsletter or infographic content with AI-generated images.",
	Long: `Craft is a content creation tool. Given a topic and optional reference
files (PDF, spreadsheet, CSV, image), it generates structured text for one of
three formats -- 카드뉴스, 뉴스레터, 인포그래픽 -- and synthesizes the
matching image set.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.craft.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded
	logger.SetLevel(cfg.App.LogLevel)
	if cfg.App.Debug {
		logger.SetLevel("debug")
	}
}
