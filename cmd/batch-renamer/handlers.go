package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/batch-renamer/internal/config"
	"github.com/taigrr/batch-renamer/internal/notice"
	"github.com/taigrr/batch-renamer/internal/types"
)

func handleRename(ctx context.Context, req *mcp.CallToolRequest, input RenameInput) (*mcp.CallToolResult, RenameOutput, error) {
	dir := strings.TrimSpace(input.Directory)
	if dir == "" {
		return &mcp.CallToolResult{IsError: true}, RenameOutput{}, fmt.Errorf("directory cannot be empty")
	}

	opts := config.Default()
	opts.Directory = dir
	opts.Padding = input.Padding
	opts.Recursive = input.Recursive
	if len(input.Extensions) > 0 {
		opts.Extensions = input.Extensions
	}
	if input.Separator != "" {
		opts.Separator = []string{input.Separator}
	}
	if input.JoinSeparator != "" {
		opts.Separator = []string{opts.Separator[0], input.JoinSeparator}
	}

	cfg, err := config.Resolve(opts)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, RenameOutput{}, err
	}

	var collector notice.Collector
	renamed, err := renameService.RenameTree(cfg, &collector)
	output := RenameOutput{
		Renamed: renamed,
		Renames: collector.Renames,
		Skipped: reportedSkips(collector.Skips),
	}
	if output.Renames == nil {
		output.Renames = []types.Rename{}
	}
	if err != nil {
		// The failed rename was reported before it was attempted.
		if len(output.Renames) > renamed {
			output.Renames = output.Renames[:renamed]
		}
		// Completed renames are not rolled back, so the client must see them.
		// Returning err would make the server drop the structured output.
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: failureText(err, output.Renames)}},
		}, output, nil
	}

	return nil, output, nil
}

// failureText describes a failed run along with the renames it already made.
func failureText(err error, renames []types.Rename) string {
	if len(renames) == 0 {
		return err.Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%v\nRenamed %d file(s) before the failure:", err, len(renames))
	for _, r := range renames {
		fmt.Fprintf(&b, "\n%s -> %s", r.OldPath, r.NewPath)
	}
	return b.String()
}

// reportedSkips drops skips for files that never matched the extension set.
func reportedSkips(skips []types.Skip) []types.Skip {
	var reported []types.Skip
	for _, s := range skips {
		if !s.Reason.Silent() {
			reported = append(reported, s)
		}
	}
	return reported
}
