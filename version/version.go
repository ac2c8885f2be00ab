package version

// Version is the version of the snake binary, set at build time with
// -ldflags "-X github.com/battlesnakeio/arcade/version.Version=...".
var Version = "dev"
