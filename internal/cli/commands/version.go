package commands

// Version is set via ldflags at build time.
var Version = "dev"

// VersionTemplate is the cobra template used for --version.
const VersionTemplate = "logscan {{.Version}}\n"
