package server

import "github.com/mark3labs/mcp-go/mcp"

// editOptions are the arguments shared by every tool that edits a layout.
func editOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("output", mcp.Description("Output to edit (e.g. 'eDP', 'HDMI-A-0')")),
		mcp.WithBoolean("enable", mcp.Description("Turn the output on, picking its preferred mode if it has none")),
		mcp.WithBoolean("disable", mcp.Description("Turn the output off")),
		mcp.WithBoolean("primary", mcp.Description("Make the output primary")),
		mcp.WithBoolean("no_primary", mcp.Description("Clear the primary output")),
		mcp.WithString("mode", mcp.Description("Mode id (0x56), mode label, or WxH")),
		mcp.WithString("pos", mcp.Description("New position as X,Y")),
		mcp.WithNumber("snap", mcp.Description("Snap the new position to other outputs' edges within this many pixels")),
		mcp.WithString("rotate", mcp.Description("Orientation: normal, left, inverted, right")),
		mcp.WithString("scale", mcp.Description("Scale factor F or HxV (e.g. '1.5' or '2x1.5')")),
		mcp.WithString("scale_mode", mcp.Description("Scale mode: disabled, physical, same, manual")),
		mcp.WithString("replica_of", mcp.Description("Make the output mirror this one")),
	}
}

func withEdits(opts ...mcp.ToolOption) []mcp.ToolOption {
	return append(opts, editOptions()...)
}

func (s *Server) registerTools() {
	// show
	s.mcp.AddTool(
		mcp.NewTool("show",
			mcp.WithDescription("Show the current display layout: every output with its state, position, resolution, mode, scale and rotation"),
			mcp.WithBoolean("modes", mcp.Description("Include each output's available modes")),
		),
		s.handleShow,
	)

	// generate
	s.mcp.AddTool(
		mcp.NewTool("generate", withEdits(
			mcp.WithDescription("Generate the xrandr commands for the current layout with optional edits applied, without running them"),
			mcp.WithBoolean("combine", mcp.Description("Emit a single combined xrandr command")),
		)...),
		s.handleGenerate,
	)

	// apply
	s.mcp.AddTool(
		mcp.NewTool("apply", withEdits(
			mcp.WithDescription("Apply edits to the display layout, or restore a saved profile, by running xrandr"),
			mcp.WithString("profile", mcp.Description("Restore this saved profile instead of editing")),
			mcp.WithBoolean("combine", mcp.Description("Run a single combined xrandr command")),
			mcp.WithBoolean("dry_run", mcp.Description("Return the commands without running them")),
		)...),
		s.handleApply,
	)

	// diff
	s.mcp.AddTool(
		mcp.NewTool("diff", withEdits(
			mcp.WithDescription("Compare the current layout with the result of edits, or with a saved profile"),
			mcp.WithString("profile", mcp.Description("Compare the current layout with this saved profile")),
		)...),
		s.handleDiff,
	)

	// profiles
	s.mcp.AddTool(
		mcp.NewTool("profiles",
			mcp.WithDescription("List saved layout profiles"),
		),
		s.handleProfiles,
	)

	// save_profile
	s.mcp.AddTool(
		mcp.NewTool("save_profile", withEdits(
			mcp.WithDescription("Save the current layout, with optional edits applied, as a named profile"),
			mcp.WithString("name", mcp.Description("Profile name"), mcp.Required()),
		)...),
		s.handleSaveProfile,
	)
}
