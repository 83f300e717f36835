package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/xrandroll/internal/output"
	"github.com/mj1618/xrandroll/internal/platform"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply edits or a saved profile by running xrandr",
	Long: `Generate the xrandr commands for the edited layout (or load them from a
saved profile) and run them in order. Execution stops at the first command
that fails.

Examples:
  xrandroll apply -m HDMI-A-0 --replica-of eDP
  xrandroll apply --profile docked
  xrandroll apply -m DP-1 --rotate left --dry-run`,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	addEditFlags(applyCmd)
	applyCmd.Flags().String("profile", "", "Restore this saved profile")
	applyCmd.Flags().Bool("dry-run", false, "Print the commands without running them")
	applyCmd.Flags().Bool("combine", false, "Run a single combined xrandr command")
}

func runApply(cmd *cobra.Command, args []string) error {
	profile, _ := cmd.Flags().GetString("profile")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	combine, _ := cmd.Flags().GetBool("combine")

	var (
		cmds     []string
		provider *platform.Provider
	)
	if profile != "" {
		if edit, err := getEditFlags(cmd); err != nil {
			return err
		} else if !edit.IsZero() {
			return fmt.Errorf("--profile cannot be combined with edit flags")
		}
		p, err := openStore().Load(profile)
		if err != nil {
			return err
		}
		cmds = p.Commands
		if combine {
			screen, err := p.Screen()
			if err != nil {
				return err
			}
			cmds = commandsFor(screen, true)
		}
	} else {
		sess, p, err := loadEditedSession(cmd)
		if err != nil {
			return err
		}
		cmds = commandsFor(sess.Screen, combine)
		provider = p
	}

	result := &output.CommandsResult{Commands: cmds, DryRun: dryRun}
	if dryRun {
		return output.Print(result)
	}

	if provider == nil {
		var err error
		if provider, err = newProvider(cmd); err != nil {
			return err
		}
	}
	if provider.Runner == nil {
		return fmt.Errorf("command execution not available on this platform")
	}
	for _, c := range cmds {
		if err := provider.Runner.Run(c); err != nil {
			return err
		}
	}
	result.Applied = true
	return output.Print(result)
}
