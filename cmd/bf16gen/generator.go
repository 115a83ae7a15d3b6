// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

const fileTemplate = `// Code generated by bf16gen. DO NOT EDIT.

package {{.Package}}
{{range .Groups}}
// ===== {{.Title}} =====
{{range .Methods}}
// {{.Name}} {{.Doc}}
func (v BFloat16x8) {{.Name}}({{if .Binary}}other BFloat16x8{{end}}) BFloat16x8 {
	return {{.Call}}
}
{{end}}{{end}}`

var tmpl = template.Must(template.New("ops").Parse(fileTemplate))

type method struct {
	Name   string
	Doc    string
	Binary bool
	Call   string
}

type group struct {
	Title   string
	Methods []method
}

// MethodName converts a snake_case operator key to its exported Go name,
// e.g. "less_equal" -> "LessEqual".
func MethodName(key string) string {
	title := cases.Title(language.English)
	var sb strings.Builder
	for part := range strings.SplitSeq(key, "_") {
		sb.WriteString(title.String(part))
	}
	return sb.String()
}

// Generate renders the operator table into formatted Go source for package pkg.
func Generate(pkg string, ops []Operator) ([]byte, error) {
	var groups []group
	seen := make(map[string]bool)
	for _, op := range ops {
		name := MethodName(op.Key)
		if name == "" {
			return nil, fmt.Errorf("operator with empty key")
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate operator %q", name)
		}
		seen[name] = true

		m := method{Name: name, Doc: op.Doc}
		switch op.Arity {
		case Unary:
			m.Call = fmt.Sprintf("mapViaF32(v, Float32x4.%s)", name)
		case Binary, Relational:
			m.Binary = true
			m.Call = fmt.Sprintf("binaryViaF32(v, other, Float32x4.%s)", name)
		default:
			return nil, fmt.Errorf("operator %q: unknown arity %d", op.Key, op.Arity)
		}

		title := op.Arity.String()
		if len(groups) == 0 || groups[len(groups)-1].Title != title {
			groups = append(groups, group{Title: title})
		}
		g := &groups[len(groups)-1]
		g.Methods = append(g.Methods, m)
	}

	var buf bytes.Buffer
	data := struct {
		Package string
		Groups  []group
	}{pkg, groups}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := imports.Process("ops_bf16x8_gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}
