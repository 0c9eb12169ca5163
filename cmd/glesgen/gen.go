package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spaghettifunk/gles3/internal/registry"
)

const header = `// Code generated by glesgen from {{.Source}}. DO NOT EDIT.

package gles

import "unsafe"
`

var procsTemplate = template.Must(template.New("procs").Parse(header + `
// ProcTable holds one Proc per OpenGL ES {{.Version}} entry point.
type ProcTable struct {
{{- range .Commands}}
	{{.GoName}} Proc[{{.FuncType}}]
{{- end}}
}

// Procs is the process-wide entry-point table. Every cell starts out nil.
var Procs = ProcTable{
{{- range .Commands}}
	{{.GoName}}: Proc[{{.FuncType}}]{
		names: []string{ {{- .NameList -}} },
	},
{{- end}}
}

var entries = [...]Entry{
{{- range .Commands}}
	&Procs.{{.GoName}},
{{- end}}
}
`))

var shimsTemplate = template.Must(template.New("shims").Parse(header + `
{{- range .Commands}}

// {{.GoName}} calls {{.Name}}.
func {{.GoName}}({{.ParamList}}){{with .Result}} {{.}}{{end}} {
	if traceEnabled {
		traceCall("{{.Name}}")
	}
{{- if .Probe}}
	{{if .Result}}ret := {{end}}Procs.{{.GoName}}.fn()({{.ArgList}})
	if errorCheckEnabled {
		checkError("{{.Name}}"{{with .ArgList}}, {{.}}{{end}})
	}
{{- if .Result}}
	return ret
{{- end}}
{{- else}}
	return Procs.{{.GoName}}.fn()({{.ArgList}})
{{- end}}
}
{{- end}}
`))

type fileData struct {
	Source   string
	Version  string
	Commands []commandData
}

type commandData struct {
	Name      string
	GoName    string
	FuncType  string
	NameList  string
	ParamList string
	ArgList   string
	Result    string
	// Probe is false for glGetError, which must not poll itself.
	Probe bool
}

func newCommandData(c registry.Command) (commandData, error) {
	result, err := registry.GoType(c.ReturnType())
	if err != nil {
		return commandData{}, err
	}

	var (
		types  []string
		args   []string
		groups []string
		names  []string
	)
	for i, p := range c.Params {
		t, err := registry.GoType(p.Type)
		if err != nil {
			return commandData{}, err
		}
		name := registry.GoParamName(p.Name)
		types = append(types, t)
		args = append(args, name)
		names = append(names, name)
		// Consecutive parameters of one type share a declaration.
		if i+1 < len(c.Params) {
			next, _ := registry.GoType(c.Params[i+1].Type)
			if next == t {
				continue
			}
		}
		groups = append(groups, strings.Join(names, ", ")+" "+t)
		names = names[:0]
	}

	funcType := "func(" + strings.Join(types, ", ") + ")"
	if result != "" {
		funcType += " " + result
	}

	quoted := make([]string, 0, len(c.Fallbacks)+1)
	for _, n := range c.Names() {
		quoted = append(quoted, fmt.Sprintf("%q", n))
	}

	return commandData{
		Name:      c.Name,
		GoName:    c.GoName(),
		FuncType:  funcType,
		NameList:  strings.Join(quoted, ", "),
		ParamList: strings.Join(groups, ", "),
		ArgList:   strings.Join(args, ", "),
		Result:    result,
		Probe:     c.Name != "glGetError",
	}, nil
}

// generate renders procs_gen.go and shims_gen.go into outDir.
func generate(reg *registry.Registry, source, outDir string) error {
	data := fileData{Source: source, Version: reg.Version}
	for _, c := range reg.Commands {
		cd, err := newCommandData(c)
		if err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
		data.Commands = append(data.Commands, cd)
	}

	files := []struct {
		name string
		tmpl *template.Template
	}{
		{"procs_gen.go", procsTemplate},
		{"shims_gen.go", shimsTemplate},
	}
	for _, f := range files {
		src, err := render(f.tmpl, data)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", f.name, err)
		}
		if err := os.WriteFile(filepath.Join(outDir, f.name), src, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func render(t *template.Template, data fileData) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return src, nil
}
