package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/xrandroll/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current display layout",
	Long: `Parse the xrandr report and print every output: whether it is connected
and enabled, position, logical resolution, current mode, scale, rotation,
and which outputs it mirrors.`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("modes", false, "List each output's available modes")
}

func runShow(cmd *cobra.Command, args []string) error {
	provider, err := newProvider(cmd)
	if err != nil {
		return err
	}
	sess, err := loadSession(provider)
	if err != nil {
		return err
	}
	modes, _ := cmd.Flags().GetBool("modes")
	return output.Print(output.NewScreenResult(sess.Screen, modes))
}
