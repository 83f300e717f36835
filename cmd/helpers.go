package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mj1618/xrandroll/internal/logging"
	"github.com/mj1618/xrandroll/internal/model"
	"github.com/mj1618/xrandroll/internal/platform"
	"github.com/mj1618/xrandroll/internal/store"
)

// newProvider builds the platform provider from configuration and the
// --input flag.
func newProvider(cmd *cobra.Command) (*platform.Provider, error) {
	input, _ := cmd.Flags().GetString("input")
	return platform.NewProvider(platform.Options{
		XrandrPath: cfg.XrandrPath,
		Input:      input,
	})
}

func openStore() *store.Store {
	return store.Open(cfg.ProfilesDir)
}

// readReport acquires the raw report lines.
func readReport(provider *platform.Provider) ([]string, error) {
	if provider.Reader == nil {
		return nil, fmt.Errorf("display reader not available on this platform")
	}
	return provider.Reader.ReadLines()
}

// loadSession reads and parses the report.
func loadSession(provider *platform.Provider) (*model.Session, error) {
	lines, err := readReport(provider)
	if err != nil {
		return nil, err
	}
	sess, err := model.NewSession(lines)
	if err != nil {
		return nil, err
	}
	logging.Debug("parsed report",
		zap.Int("lines", len(lines)),
		zap.Strings("outputs", sess.Screen.Order),
	)
	return sess, nil
}

// loadEditedSession reads the report and applies the edit flags of cmd.
func loadEditedSession(cmd *cobra.Command) (*model.Session, *platform.Provider, error) {
	edit, err := getEditFlags(cmd)
	if err != nil {
		return nil, nil, err
	}
	provider, err := newProvider(cmd)
	if err != nil {
		return nil, nil, err
	}
	sess, err := loadSession(provider)
	if err != nil {
		return nil, nil, err
	}
	if !edit.IsZero() {
		logging.Debug("applying edit", zap.Any("edit", edit))
		if err := edit.Apply(sess.Screen); err != nil {
			return nil, nil, err
		}
	}
	return sess, provider, nil
}

// addEditFlags registers the flags that describe an edit to one output.
func addEditFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("monitor", "m", "", "Output to edit (e.g. eDP, HDMI-A-0)")
	cmd.Flags().Bool("on", false, "Turn the output on, picking its preferred mode if it has none")
	cmd.Flags().Bool("off", false, "Turn the output off")
	cmd.Flags().Bool("primary", false, "Make the output primary")
	cmd.Flags().Bool("no-primary", false, "Clear the primary output")
	cmd.Flags().String("mode", "", "Mode id (0x56), mode label, or WxH")
	cmd.Flags().String("pos", "", "New position as X,Y")
	cmd.Flags().Int("snap", -1, "Snap the new position to other outputs' edges within this many pixels (default from config)")
	cmd.Flags().String("rotate", "", "Orientation: normal, left, inverted, right")
	cmd.Flags().String("scale", "", "Scale factor F or HxV (e.g. 1.5 or 2x1.5)")
	cmd.Flags().String("scale-mode", "", "Scale mode: disabled, physical, same, manual")
	cmd.Flags().String("replica-of", "", "Make the output mirror this one")
}

// getEditFlags reads the flags registered by addEditFlags.
func getEditFlags(cmd *cobra.Command) (model.Edit, error) {
	e := model.Edit{}
	e.Output, _ = cmd.Flags().GetString("monitor")
	e.Enable, _ = cmd.Flags().GetBool("on")
	e.Disable, _ = cmd.Flags().GetBool("off")
	e.Primary, _ = cmd.Flags().GetBool("primary")
	e.NoPrimary, _ = cmd.Flags().GetBool("no-primary")
	e.Mode, _ = cmd.Flags().GetString("mode")
	e.Rotate, _ = cmd.Flags().GetString("rotate")
	e.ScaleMode, _ = cmd.Flags().GetString("scale-mode")
	e.ReplicaOf, _ = cmd.Flags().GetString("replica-of")

	if pos, _ := cmd.Flags().GetString("pos"); pos != "" {
		x, y, err := model.ParsePosition(pos)
		if err != nil {
			return e, err
		}
		e.HasPos, e.X, e.Y = true, x, y
		e.Snap, _ = cmd.Flags().GetInt("snap")
		if e.Snap < 0 {
			e.Snap = cfg.SnapThreshold
		}
	}
	if scale, _ := cmd.Flags().GetString("scale"); scale != "" {
		h, v, err := model.ParseScale(scale)
		if err != nil {
			return e, err
		}
		e.ScaleX, e.ScaleY = h, v
	}
	if !e.IsZero() && e.Output == "" && !e.NoPrimary {
		return e, fmt.Errorf("specify the output to edit with --monitor")
	}
	return e, nil
}

// commandsFor generates per-output commands, or one combined command.
func commandsFor(screen *model.Screen, combine bool) []string {
	if combine {
		return []string{screen.GenerateCommand()}
	}
	return screen.Generate()
}
