package main

import "runtime/debug"

// version may be set with -ldflags "-X main.version=...". Otherwise it is
// derived from the module or VCS information embedded in the binary.
var version string

func init() {
	if version == "" {
		version = buildVersion()
	}
}

func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	revision := settings["vcs.revision"]
	if revision == "" {
		return "dev"
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if settings["vcs.modified"] == "true" {
		revision += "-dirty"
	}
	return revision
}
