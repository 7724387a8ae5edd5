package dembones

// Version is the current release of the dembones tool.
const Version = "0.1.0"
