// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags into the configuration of the shaderc driver and the
// swizzlegen generator.
package cli
