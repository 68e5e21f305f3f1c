// Package config defines the format-agnostic model of a shader project file,
// along with the Loader interface that reads one from disk.
//
// The project file is optional. When present it supplies defaults for the
// output mode, the compiler executable and its extra arguments, and the set of
// paths the driver skips. Command-line flags always win over the file.
// Concrete implementations of the Loader, such as for HCL, are provided in
// separate packages.
package config
