// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Readcast. It lets AI assistants ask questions about the active
// document and read its sections.
package mcp

import "errors"

// ErrMissingAskService is returned when the ask service is not provided.
var ErrMissingAskService = errors.New("mcp: ask service is required")
