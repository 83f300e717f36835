package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/mj1618/xrandroll/internal/logging"
	"github.com/mj1618/xrandroll/internal/model"
	"github.com/mj1618/xrandroll/internal/output"
	"github.com/mj1618/xrandroll/internal/store"
)

// resultText serializes v to YAML for an MCP response.
func resultText(v interface{}) *mcp.CallToolResult {
	text, err := output.YAML(v)
	if err != nil {
		return mcp.NewToolResultError(errorText(err))
	}
	return mcp.NewToolResultText(text)
}

// session reads the report and applies the edit described by params.
// The caller must hold providerMu.
func (s *Server) session(params map[string]interface{}) (*model.Session, error) {
	edit, err := editFromParams(params, s.snapThreshold)
	if err != nil {
		return nil, err
	}
	lines, err := s.readLines()
	if err != nil {
		return nil, err
	}
	sess, err := model.NewSession(lines)
	if err != nil {
		return nil, err
	}
	if !edit.IsZero() {
		logging.Debug("applying edit", zap.Any("edit", edit))
		if err := edit.Apply(sess.Screen); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

// readLines returns the (possibly cached) report. The caller must hold
// providerMu.
func (s *Server) readLines() ([]string, error) {
	if s.provider.Reader == nil {
		return nil, errors.New("reader not available on this platform")
	}
	return s.cache.ReadLines(s.provider.Reader)
}

func commands(screen *model.Screen, combine bool) []string {
	if combine {
		return []string{screen.GenerateCommand()}
	}
	return screen.Generate()
}

func (s *Server) handleShow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	sess, err := s.session(nil)
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}
	return resultText(output.NewScreenResult(sess.Screen, boolParam(params, "modes", false))), nil
}

func (s *Server) handleGenerate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	sess, err := s.session(params)
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}
	return resultText(&output.CommandsResult{Commands: commands(sess.Screen, boolParam(params, "combine", false))}), nil
}

func (s *Server) handleApply(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	combine := boolParam(params, "combine", false)
	dryRun := boolParam(params, "dry_run", false)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	var cmds []string
	if name := stringParam(params, "profile", ""); name != "" {
		edit, err := editFromParams(params, s.snapThreshold)
		if err != nil {
			return mcp.NewToolResultError(errorText(err)), nil
		}
		if !edit.IsZero() {
			return mcp.NewToolResultError("profile cannot be combined with edit arguments"), nil
		}
		p, err := s.profiles.Load(name)
		if err != nil {
			return mcp.NewToolResultError(errorText(err)), nil
		}
		cmds = p.Commands
		if combine {
			screen, err := p.Screen()
			if err != nil {
				return mcp.NewToolResultError(errorText(err)), nil
			}
			cmds = commands(screen, true)
		}
	} else {
		sess, err := s.session(params)
		if err != nil {
			return mcp.NewToolResultError(errorText(err)), nil
		}
		cmds = commands(sess.Screen, combine)
	}

	result := &output.CommandsResult{Commands: cmds, DryRun: dryRun}
	if dryRun {
		return resultText(result), nil
	}
	if s.provider.Runner == nil {
		return mcp.NewToolResultError("runner not available on this platform"), nil
	}
	defer s.cache.Invalidate()
	for _, c := range cmds {
		if err := s.provider.Runner.Run(c); err != nil {
			return mcp.NewToolResultError(errorText(err)), nil
		}
	}
	result.Applied = true
	return resultText(result), nil
}

func (s *Server) handleDiff(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name := stringParam(params, "profile", "")

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if name == "" {
		sess, err := s.session(params)
		if err != nil {
			return mcp.NewToolResultError(errorText(err)), nil
		}
		return resultText(output.NewDiffResult("current", sess.Changes())), nil
	}

	sess, err := s.session(nil)
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}
	p, err := s.profiles.Load(name)
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}
	target, err := p.Screen()
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}
	return resultText(output.NewDiffResult("profile "+name, model.DiffScreens(sess.Screen, target))), nil
}

func (s *Server) handleProfiles(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}
	return resultText(output.NewProfilesResult(profiles)), nil
}

func (s *Server) handleSaveProfile(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name := stringParam(params, "name", "")
	if name == "" {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	edit, err := editFromParams(params, s.snapThreshold)
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}
	lines, err := s.readLines()
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}
	var edits []model.Edit
	if !edit.IsZero() {
		edits = append(edits, edit)
	}
	p, err := store.NewProfile(name, lines, edits...)
	if err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}
	if err := s.profiles.Save(p); err != nil {
		return mcp.NewToolResultError(errorText(err)), nil
	}
	logging.Info("saved profile", zap.String("name", name), zap.Int("commands", len(p.Commands)))
	return resultText(p), nil
}

// errorText formats an error for a tool result. Unknown outputs and modes
// point the agent at the show tool.
func errorText(err error) string {
	var lookup *model.LookupError
	if errors.As(err, &lookup) {
		return fmt.Sprintf("%v (run the show tool to list outputs and modes)", err)
	}
	return err.Error()
}
