package version

// Version is overridden at build time via -ldflags "-X fibseq/internal/version.Version=...".
var Version = "dev"
