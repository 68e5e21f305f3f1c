// Package app contains the shader compiler driver. It defines the main App
// struct, its configuration, and the build lifecycle (discover sources, scan
// their directives, compile each declared stage), decoupled from any specific
// entrypoint like a CLI.
package app
