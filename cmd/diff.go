package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/xrandroll/internal/model"
	"github.com/mj1618/xrandroll/internal/output"
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show what edits or a saved profile would change",
	Long: `Compare the current layout with the layout after the given edits, or with
a saved profile. Each change lists the output and the fields that differ
(enabled, primary, pos, res, orientation, mode).`,
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	addEditFlags(diffCmd)
	diffCmd.Flags().String("profile", "", "Compare with this saved profile")
}

func runDiff(cmd *cobra.Command, args []string) error {
	sess, _, err := loadEditedSession(cmd)
	if err != nil {
		return err
	}

	profile, _ := cmd.Flags().GetString("profile")
	if profile == "" {
		return output.Print(output.NewDiffResult("current", sess.Changes()))
	}

	p, err := openStore().Load(profile)
	if err != nil {
		return err
	}
	target, err := p.Screen()
	if err != nil {
		return err
	}
	return output.Print(output.NewDiffResult("profile "+profile, model.DiffScreens(sess.Screen, target)))
}
