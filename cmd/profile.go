package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mj1618/xrandroll/internal/logging"
	"github.com/mj1618/xrandroll/internal/model"
	"github.com/mj1618/xrandroll/internal/output"
	"github.com/mj1618/xrandroll/internal/store"
)

// ProfileActionResult is the output of profile save and delete.
type ProfileActionResult struct {
	OK       bool     `yaml:"ok"                 json:"ok"`
	Action   string   `yaml:"action"             json:"action"`
	Name     string   `yaml:"name"               json:"name"`
	Path     string   `yaml:"path,omitempty"     json:"path,omitempty"`
	Commands []string `yaml:"commands,omitempty" json:"commands,omitempty"`
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved display layouts",
	Long: `Profiles are named layouts stored under profiles_dir (default
~/.xrandroll/profiles). Restore one with "xrandroll apply --profile NAME".`,
}

var profileSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save the current layout, with optional edits, as a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileSave,
}

var profileListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved profiles",
	Args:    cobra.NoArgs,
	RunE:    runProfileList,
}

var profileShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a saved profile's layout and commands",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

var profileDeleteCmd = &cobra.Command{
	Use:     "delete NAME",
	Aliases: []string{"rm"},
	Short:   "Delete a saved profile",
	Args:    cobra.ExactArgs(1),
	RunE:    runProfileDelete,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSaveCmd, profileListCmd, profileShowCmd, profileDeleteCmd)
	addEditFlags(profileSaveCmd)
}

func runProfileSave(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := store.ValidateName(name); err != nil {
		return err
	}
	edit, err := getEditFlags(cmd)
	if err != nil {
		return err
	}
	provider, err := newProvider(cmd)
	if err != nil {
		return err
	}
	lines, err := readReport(provider)
	if err != nil {
		return err
	}

	var edits []model.Edit
	if !edit.IsZero() {
		edits = append(edits, edit)
	}
	p, err := store.NewProfile(name, lines, edits...)
	if err != nil {
		return err
	}
	st := openStore()
	if err := st.Save(p); err != nil {
		return err
	}
	logging.Info("saved profile", zap.String("name", name), zap.String("dir", st.BasePath()))
	return output.Print(ProfileActionResult{
		OK:       true,
		Action:   "save",
		Name:     name,
		Path:     st.BasePath(),
		Commands: p.Commands,
	})
}

func runProfileList(cmd *cobra.Command, args []string) error {
	st := openStore()
	profiles, err := st.List(cmd.Context())
	if err != nil {
		return err
	}
	result := output.NewProfilesResult(profiles)
	result.Dir = st.BasePath()
	return output.Print(result)
}

// ProfileShowResult is the output of profile show.
type ProfileShowResult struct {
	store.Profile `yaml:",inline"`
	Layout        *output.ScreenResult `yaml:"layout" json:"layout"`
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	p, err := openStore().Load(args[0])
	if err != nil {
		return err
	}
	screen, err := p.Screen()
	if err != nil {
		return err
	}
	return output.Print(ProfileShowResult{Profile: *p, Layout: output.NewScreenResult(screen, false)})
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	if err := openStore().Delete(args[0]); err != nil {
		return err
	}
	return output.Print(ProfileActionResult{OK: true, Action: "delete", Name: args[0]})
}
