package internal

// Version is the current psdict release version.
const Version = "1.1.0"
