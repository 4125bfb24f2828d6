// Package model defines domain data structures shared across the app: metrics,
// chart types, color themes, widget configurations and the dataset snapshot the
// widgets are drawn from. Enumerations are string-typed so they serialize as-is
// into the persisted layout.
package model
