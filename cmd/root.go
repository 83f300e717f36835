package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mj1618/xrandroll/internal/config"
	"github.com/mj1618/xrandroll/internal/logging"
	"github.com/mj1618/xrandroll/internal/model"
	"github.com/mj1618/xrandroll/internal/output"
	"github.com/mj1618/xrandroll/internal/version"
)

var (
	cfgFile string
	cfg     = &config.Config{}
)

var rootCmd = &cobra.Command{
	Use:   "xrandroll",
	Short: "Inspect and rearrange X11 displays through xrandr",
	Long: `xrandroll reads the output of "xrandr --verbose" into a model of the
screen and its outputs, applies edits (position, mode, rotation, scale,
mirroring, primary), and generates the xrandr commands that produce the
result. Layouts can be saved as named profiles and restored later.`,
	SilenceUsage: true,
}

// Execute runs the command tree and exits 1 on error.
func Execute() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version.String()
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.xrandroll.yaml)")
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json, table")
	rootCmd.PersistentFlags().Bool("pretty", false, "Indent JSON output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level for stderr: debug, info, warn, error")
	rootCmd.PersistentFlags().String("input", "", "Read the xrandr --verbose report from this file (- for stdin) instead of running xrandr")
	rootCmd.PersistentFlags().String("xrandr", "", "xrandr binary to run")

	_ = viper.BindPFlag(config.KeyFormat, rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyXrandrPath, rootCmd.PersistentFlags().Lookup("xrandr"))

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := config.Init(viper.GetViper(), cfgFile); err != nil {
			return err
		}
		loaded, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		*cfg = *loaded

		if err := logging.Initialize(cfg.LogLevel); err != nil {
			return err
		}
		if used := viper.ConfigFileUsed(); used != "" {
			logging.Debug("using config file", zap.String("path", used))
		}

		model.PlaceholderSizeMM = cfg.PlaceholderMM

		format, err := output.ParseFormat(cfg.Format)
		if err != nil {
			return err
		}
		output.OutputFormat = format
		if pretty, _ := rootCmd.PersistentFlags().GetBool("pretty"); pretty {
			output.PrettyOutput = true
		}
		return nil
	}
}
