// Package platform contains OS integration: application data and export
// directories, export file naming and opening files with the system viewer.
package platform
