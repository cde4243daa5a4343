package types

// Version is overwritten by -ldflags at release build.
var Version = "dev"
