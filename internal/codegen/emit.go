package codegen

import (
	"bytes"
	"go/format"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var fileTemplate = template.Must(template.New("fixedmap").Funcs(template.FuncMap{
	"lower": lowerFirst,
}).Parse(`// Code generated by fixedmapgen -type={{.Type}}; DO NOT EDIT.

package {{.PackageName}}
{{if not .InLibrary}}
import "{{.ImportPath}}"
{{end}}
// Default{{.Type}} returns the first declared variant of {{.Type}}.
func Default{{.Type}}() {{.Type}} { return {{.First.Name}} }

// {{.Type}}Domain maps the declared variants of {{.Type}} to their
// declaration-order indices in [0, {{len .Variants}}).
type {{.Type}}Domain struct{}

func ({{.Type}}Domain) Size() int { return {{len .Variants}} }

func ({{.Type}}Domain) Index(key {{.Type}}) int {
{{- if .Contiguous}}
	if key < {{.First.Name}} || key > {{.Last.Name}} {
		return -1
	}
	return int(key - {{.First.Name}})
{{- else}}
	switch key {
{{- range $i, $v := .Variants}}
	case {{$v.Name}}:
		return {{$i}}
{{- end}}
	default:
		return -1
	}
{{- end}}
}

func ({{.Type}}Domain) Variant(i int) {{.Type}} { return {{lower .Type}}Variants[i] }

var {{lower .Type}}Variants = [...]{{.Type}}{
{{- range .Variants}}
	{{.Name}},
{{- end}}
}

type (
	// {{.Type}}MapStorage is direct storage for {{.Type}} keys: one value
	// slot per declared variant, no hashing.
	{{.Type}}MapStorage[V any] = {{.Qual}}DirectMapStorage[{{.Type}}, {{.Type}}Domain, V]
	// {{.Type}}SetStorage is the set form of {{.Type}}MapStorage.
	{{.Type}}SetStorage = {{.Qual}}DirectSetStorage[{{.Type}}, {{.Type}}Domain]
)

// New{{.Type}}MapStorage returns empty direct storage for {{.Type}} keys.
func New{{.Type}}MapStorage[V any]() *{{.Type}}MapStorage[V] {
	return {{.Qual}}NewDirectMapStorage[{{.Type}}, {{.Type}}Domain, V]()
}

// New{{.Type}}SetStorage returns empty direct set storage for {{.Type}} keys.
func New{{.Type}}SetStorage() *{{.Type}}SetStorage {
	return {{.Qual}}NewDirectSetStorage[{{.Type}}, {{.Type}}Domain]()
}

// New{{.Type}}Map returns a map keyed by {{.Type}} over direct storage.
func New{{.Type}}Map[V any]() *{{.Qual}}Map[{{.Type}}, V] {
	return {{.Qual}}NewMap[{{.Type}}, V](New{{.Type}}MapStorage[V]())
}

// New{{.Type}}Set returns a set of {{.Type}} over direct storage.
func New{{.Type}}Set() *{{.Qual}}Set[{{.Type}}] {
	return {{.Qual}}NewSet[{{.Type}}](New{{.Type}}SetStorage())
}

var (
	_ {{.Qual}}Domain[{{.Type}}]                = {{.Type}}Domain{}
	_ {{.Qual}}MapStorage[{{.Type}}, struct{}]  = (*{{.Type}}MapStorage[struct{}])(nil)
	_ {{.Qual}}SetStorage[{{.Type}}]            = (*{{.Type}}SetStorage)(nil)
)
`))

type templateData struct {
	*Enum
	ImportPath string
	Qual       string
	First      Variant
	Last       Variant
}

// Emit renders the support code for enum and returns it gofmt-formatted.
func Emit(enum *Enum) ([]byte, error) {
	data := templateData{
		Enum:       enum,
		ImportPath: ImportPath,
		First:      enum.Variants[0],
		Last:       enum.Variants[len(enum.Variants)-1],
	}
	if !enum.InLibrary {
		data.Qual = "fixedmap."
	}
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, "rendering support code for %s", enum.Type)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "formatting generated code for %s", enum.Type)
	}
	return src, nil
}

// OutputFile returns the conventional file name for enum's generated code.
func OutputFile(enum *Enum) string {
	return strings.ToLower(enum.Type) + "_fixedmap.go"
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
