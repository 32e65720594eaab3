package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/batch-renamer/internal/types"
)

type (
	// RenameInput contains parameters for a swapped rename run.
	RenameInput struct {
		Directory     string   `json:"directory" jsonschema:"Absolute path of the directory whose files are renamed"`
		Extensions    []string `json:"extensions,omitempty" jsonschema:"Extensions to match exactly, without the leading dot (default: mp3)"`
		Separator     string   `json:"separator,omitempty" jsonschema:"Separator to split names at; the last occurrence is used (default: -)"`
		JoinSeparator string   `json:"joinSeparator,omitempty" jsonschema:"Separator placed between the swapped parts (default: separator)"`
		Padding       string   `json:"padding,omitempty" jsonschema:"Padding on both sides of the join separator (default: none)"`
		Recursive     bool     `json:"recursive,omitempty" jsonschema:"Rename files in subdirectories too (default: false)"`
	}

	// RenameOutput contains the result of a rename run.
	RenameOutput struct {
		Renamed int            `json:"renamed"`
		Renames []types.Rename `json:"renames"`
		Skipped []types.Skip   `json:"skipped,omitempty"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "rename_swapped",
		Description: "Rename files in a directory by splitting each name at the last separator and swapping the two parts. Files whose names do not split into two parts are skipped. Renames are applied immediately and cannot be undone.",
	}, handleRename)
}
