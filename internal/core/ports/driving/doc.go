// Package driving defines the inbound (primary) ports: the interfaces
// through which external actors (CLI, TUI, MCP server) drive the core.
package driving
