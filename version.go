package hueicons

// Version is the tool version, overridden at build time with
// -ldflags "-X github.com/bifrost-tools/hueicons.Version=...".
var Version = "dev"
