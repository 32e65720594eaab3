package main

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/taigrr/batch-renamer/internal/filesystem"
	"github.com/taigrr/batch-renamer/internal/renamer"
)

var renameService *renamer.Service

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the renamer as an MCP tool over stdio",
		Long: `serve starts a Model Context Protocol server on stdio exposing the
rename_swapped tool, so any MCP-compatible harness can run a rename.`,
		Args: cobra.NoArgs,
		RunE: runServer,
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	renameService = renamer.New(filesystem.New(afero.NewOsFs()))

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "batch-renamer",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
