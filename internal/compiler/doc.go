// Package compiler builds and runs external shader compiler invocations.
// One invocation compiles one stage of one source file; a non-zero exit
// status from the compiler surfaces as an *ExternalToolError.
package compiler
