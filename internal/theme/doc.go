// Package theme builds the greeter stylesheet from the configuration.
// Values are placed into typed slots of a fixed rule-group schema, so a
// malformed value is rejected before any CSS text is produced. An optional
// user theme file can be layered beneath the generated sheet.
package theme
