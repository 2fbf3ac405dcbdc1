package version

import (
	"os"
	"runtime/debug"
)

// Set with -ldflags "-X ryulaunch/version.Version=...". Unset values fall back
// to the VCS stamp Go embeds in the binary.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

type BuildInfo struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Modified  bool
}

func Get() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
	}

	if build, ok := debug.ReadBuildInfo(); ok {
		info = withBuildSettings(info, build)
	}

	if override := os.Getenv("RYULAUNCH_VERSION"); override != "" {
		info.Version = override
	}
	return info
}

func withBuildSettings(info BuildInfo, build *debug.BuildInfo) BuildInfo {
	info.GoVersion = build.GoVersion

	for _, setting := range build.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" && setting.Value != "" {
				info.GitCommit = shortCommit(setting.Value)
			}
		case "vcs.time":
			if info.BuildDate == "unknown" && setting.Value != "" {
				info.BuildDate = setting.Value
			}
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}

	return info
}

func shortCommit(revision string) string {
	if len(revision) > 7 {
		return revision[:7]
	}
	return revision
}
