package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/xrandroll/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing xrandroll tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the layout
commands as tools: show, generate, apply, diff, profiles and save_profile.

Supported transports:
  stdio             Standard I/O (default, for local MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  xrandroll serve
  xrandroll serve --transport streamable-http --port 8080
  xrandroll serve --cache-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", -1, "Report cache TTL in milliseconds (0 to disable, default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	srvCfg := server.Config{
		Transport:     transport,
		Port:          port,
		CacheTTL:      cfg.CacheTTL,
		SnapThreshold: cfg.SnapThreshold,
	}
	if cacheTTLMs >= 0 {
		srvCfg.CacheTTL = time.Duration(cacheTTLMs) * time.Millisecond
	}

	provider, err := newProvider(cmd)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	return server.New(provider, openStore(), srvCfg).Serve(srvCfg)
}
