package hcl

// projectFile represents the top-level structure of a project file for decoding.
type projectFile struct {
	OutputMode string         `hcl:"output_mode,optional"`
	Exclude    []string       `hcl:"exclude,optional"`
	Compiler   *compilerBlock `hcl:"compiler,block"`
}

// compilerBlock represents the `compiler` block.
type compilerBlock struct {
	Path      string `hcl:"path,optional"`
	ExtraArgs string `hcl:"extra_args,optional"`
}
