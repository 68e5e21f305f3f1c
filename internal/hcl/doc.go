// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for parsing the project file, evaluating its
// expressions against the process environment, and translating the result
// into the format-agnostic config.Project.
package hcl
