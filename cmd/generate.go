package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/xrandroll/internal/output"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print the xrandr commands for the current layout, with optional edits",
	Long: `Print one xrandr command per output that reproduces the layout after the
given edits. Nothing is executed.

Examples:
  xrandroll generate
  xrandroll generate -m HDMI-A-0 --on --pos 1920,0 --primary
  xrandroll generate -m eDP --scale-mode physical --combine`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addEditFlags(generateCmd)
	generateCmd.Flags().Bool("combine", false, "Emit a single combined xrandr command")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	sess, _, err := loadEditedSession(cmd)
	if err != nil {
		return err
	}
	combine, _ := cmd.Flags().GetBool("combine")
	return output.Print(&output.CommandsResult{Commands: commandsFor(sess.Screen, combine)})
}
