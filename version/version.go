package version

// Version is the current sparkasm release.
const Version = "1.0.0"
