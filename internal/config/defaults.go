// ABOUTME: Centralized configuration defaults for calendr
// ABOUTME: Contains hardcoded values for display and storage

package config

// Display settings
const (
	DefaultDateLayout = "2006-01-02 15:04:05"
	DefaultStyle      = "dark"
	// GridCellWidth is a month grid column: a two digit day and a space.
	GridCellWidth = 3
)

// Storage settings
const (
	DefaultDirPerms  = 0755
	DefaultFilePerms = 0644
)
