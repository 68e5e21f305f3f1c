package swizzle

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/template"
)

// DefaultTemplate renders a C# style expression-bodied property.
const DefaultTemplate = "public Vector{{.Arity}}T<T> {{.Name}} => new Vector{{.Arity}}T<T>({{.Args}});"

// Declaration is the data handed to the declaration template.
type Declaration struct {
	// Name is the sequence itself, used as the accessor name.
	Name string
	// Arity is the sequence length.
	Arity int
	// Components are the sequence characters in order.
	Components []string
	// Args is Components joined by ", ".
	Args string
}

// NewDeclaration builds the template data for seq.
func NewDeclaration(seq string) Declaration {
	comps := make([]string, 0, len(seq))
	for _, r := range seq {
		comps = append(comps, string(r))
	}
	return Declaration{
		Name:       seq,
		Arity:      len(comps),
		Components: comps,
		Args:       strings.Join(comps, ", "),
	}
}

// Renderer writes declarations using a text/template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses text as the declaration template. Empty text selects
// DefaultTemplate.
func NewRenderer(text string) (*Renderer, error) {
	if text == "" {
		text = DefaultTemplate
	}
	tmpl, err := template.New("declaration").Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("invalid declaration template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes one declaration followed by a blank line for every sequence
// of length two or more. Single components are skipped.
func (r *Renderer) Render(w io.Writer, seqs []string) error {
	bw := bufio.NewWriter(w)
	for _, seq := range seqs {
		decl := NewDeclaration(seq)
		if decl.Arity < 2 {
			continue
		}
		if err := r.tmpl.Execute(bw, decl); err != nil {
			return fmt.Errorf("failed to render %s: %w", seq, err)
		}
		if _, err := bw.WriteString("\n\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
