package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// descriptorTemplate renders the State methods for an enum, plus a compile
// guard that breaks the build when the constants drift from the generated
// indexes. Two-state enums additionally get the Binary marker.
const descriptorTemplate = `// Code generated by "{{.Args}}"; DO NOT EDIT.

package {{.Package}}

import "github.com/museun/fsm"

func _() {
	// An "invalid array index" compiler error here means the {{.Type}}
	// constants have changed; rerun fsmgen.
	var x [1]struct{}
{{- range .Consts}}
	_ = x[{{.Name}}-{{.Index}}]
{{- end}}
}

// Index returns the position of s in the {{.Type}} order.
func (s {{.Type}}) Index() int { return int(s) }

// FromIndex returns the {{.Type}} at position i, or a no-such-state error if
// i is outside [0, {{.Count}}).
func (s {{.Type}}) FromIndex(i int) ({{.Type}}, error) {
	if i < 0 || i >= {{.Count}} {
		return 0, fsm.NewErrNoSuchState(i, {{.Count}})
	}
	return {{.Type}}(i), nil
}

// Count returns the number of {{.Type}} states.
func ({{.Type}}) Count() int { return {{.Count}} }
{{- if .Binary}}

// BinaryState marks {{.Type}} as two-state.
func ({{.Type}}) BinaryState() {}
{{- end}}
`

var tmpl = template.Must(template.New("descriptor").Parse(descriptorTemplate))

type templateData struct {
	Args    string
	Package string
	Type    string
	Count   int
	Consts  []Const
	Binary  bool
}

// Render produces the gofmt-formatted descriptor source for e. args is the
// invocation recorded in the generated-file header.
func Render(e *Enum, args string) ([]byte, error) {
	var buf bytes.Buffer
	data := templateData{
		Args:    args,
		Package: e.Package,
		Type:    e.Type,
		Count:   len(e.Consts),
		Consts:  e.Consts,
		Binary:  len(e.Consts) == 2,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render descriptor for %s: %w", e.Type, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source for %s: %w", e.Type, err)
	}
	return src, nil
}
