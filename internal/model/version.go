package model

// Version is overridden at build time with -ldflags "-X copypath/internal/model.Version=...".
var Version = "1.2.0"

// Release coordinates used by --update.
var (
	ReleaseOwner      = "copypath"
	ReleaseRepository = "copypath"
)
