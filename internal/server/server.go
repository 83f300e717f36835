// Package server exposes xrandroll as Model Context Protocol tools.
package server

import (
	"fmt"
	"sync"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/xrandroll/internal/platform"
	"github.com/mj1618/xrandroll/internal/store"
	"github.com/mj1618/xrandroll/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport     string
	Port          int
	CacheTTL      time.Duration
	SnapThreshold int // default snap for edits that move an output
}

// Server wraps the MCP server with the platform provider, profile store
// and report cache. Tool calls are serialized on providerMu.
type Server struct {
	provider      *platform.Provider
	profiles      *store.Store
	cache         *ReportCache
	snapThreshold int
	providerMu    sync.Mutex
	mcp           *mcpserver.MCPServer
}

// New creates and configures an MCP server with all xrandroll tools.
func New(provider *platform.Provider, profiles *store.Store, cfg Config) *Server {
	s := &Server{
		provider:      provider,
		profiles:      profiles,
		cache:         NewReportCache(cfg.CacheTTL),
		snapThreshold: cfg.SnapThreshold,
	}
	s.mcp = mcpserver.NewMCPServer(
		"xrandroll",
		version.Version,
		mcpserver.WithToolCapabilities(false),
	)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}
