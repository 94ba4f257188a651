package codegen

import "text/template"

// GeneratedHeader is the first line of every generated file.
const GeneratedHeader = "// Code generated by boolenum. DO NOT EDIT."

var codeTemplate = template.Must(template.New("boolenum").Parse(fileTemplate))

const fileTemplate = `{{define "file" -}}
// Code generated by boolenum. DO NOT EDIT.

package {{.Package}}
{{- if .SerdeImport}}

import {{if .SerdeAlias}}{{.SerdeAlias}} {{end}}"{{.SerdeImport}}"
{{- end}}
{{range .Enums}}
{{template "enum" .}}
{{end}}
{{- end}}

{{define "enum" -}}
{{with .Names -}}
// {{.Type}} is a boolean flag with the variants {{.Yes}} and {{.No}}.
// Its zero value is {{.No}}. Untyped boolean constants and comparisons
// convert to {{.Type}} implicitly; other named types do not.
{{- if not (or $.JSON $.YAML $.TOML)}}
// Encoders see it as a plain bool.
{{- end}}
type {{.Type}} bool

const (
	{{.Yes}} {{.Type}} = true
	{{.No}} {{.Type}} = false
)

// {{.FromBool}} returns {{.Yes}} for true and {{.No}} for false.
func {{.FromBool}}(b bool) {{.Type}} {
	if b {
		return {{.Yes}}
	}
	return {{.No}}
}

// {{.Default}} returns {{.No}}.
func {{.Default}}() {{.Type}} {
	return {{.No}}
}

// Bool reports whether x is {{.Yes}}.
func (x {{.Type}}) Bool() bool {
	return x == {{.Yes}}
}

// Not returns the other variant.
func (x {{.Type}}) Not() {{.Type}} {
	return {{.FromBool}}(!x.Bool())
}

// String returns "Yes" or "No".
func (x {{.Type}}) String() string {
	if x.Bool() {
		return "Yes"
	}
	return "No"
}
{{- end}}
{{- if .JSON}}

// MarshalJSON encodes x as a JSON boolean.
func (x {{.Names.Type}}) MarshalJSON() ([]byte, error) {
	return {{.Serde}}.MarshalJSONBool(x.Bool())
}

// UnmarshalJSON accepts only a JSON boolean.
func (x *{{.Names.Type}}) UnmarshalJSON(data []byte) error {
	b, err := {{.Serde}}.UnmarshalJSONBool("{{.Qualified}}", data)
	if err != nil {
		return err
	}
	*x = {{.Names.FromBool}}(b)
	return nil
}
{{- end}}
{{- if .YAML}}

// MarshalYAML encodes x as a YAML boolean.
func (x {{.Names.Type}}) MarshalYAML() (any, error) {
	return {{.Serde}}.MarshalYAMLBool(x.Bool())
}

// UnmarshalYAML accepts only a YAML boolean.
func (x *{{.Names.Type}}) UnmarshalYAML(unmarshal func(any) error) error {
	b, err := {{.Serde}}.UnmarshalYAMLBool("{{.Qualified}}", unmarshal)
	if err != nil {
		return err
	}
	*x = {{.Names.FromBool}}(b)
	return nil
}
{{- end}}
{{- if .TOML}}

// MarshalTOML encodes x as a TOML boolean.
func (x {{.Names.Type}}) MarshalTOML() ([]byte, error) {
	return {{.Serde}}.MarshalTOMLBool(x.Bool())
}

// UnmarshalTOML accepts only a TOML boolean.
func (x *{{.Names.Type}}) UnmarshalTOML(v any) error {
	b, err := {{.Serde}}.UnmarshalTOMLBool("{{.Qualified}}", v)
	if err != nil {
		return err
	}
	*x = {{.Names.FromBool}}(b)
	return nil
}
{{- end}}
{{- end}}
`
