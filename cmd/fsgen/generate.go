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
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// target describes one backend of package fastsimd.
type target struct {
	Backend string // backend type, e.g. "AVX2"
	Lanes   int
	Tagged  bool // false for the always-compiled Scalar backend
	// Arch is the architecture part of the backend's build constraint.
	// Backends with a native and an emulated file list the union.
	Arch string
}

var allTargets = []target{
	{Backend: "Scalar", Lanes: 1},
	{Backend: "SSE2", Lanes: 4, Tagged: true, Arch: "amd64 && !goexperiment.simd"},
	{Backend: "SSE41", Lanes: 4, Tagged: true, Arch: "amd64"},
	{Backend: "AVX2", Lanes: 8, Tagged: true, Arch: "amd64"},
	{Backend: "AVX512", Lanes: 16, Tagged: true, Arch: "amd64"},
	{Backend: "NEON", Lanes: 4, Tagged: true, Arch: "arm64"},
}

// Name is the lower-case level name. Backend names are ASCII.
func (t target) Name() string { return strings.ToLower(t.Backend) }

// BuildTag is the constraint under which fastsimd compiles a backend for
// the target's level.
func (t target) BuildTag() string {
	if t.Arch == "" {
		return "!fastsimd_no" + t.Name()
	}
	return t.Arch + " && !fastsimd_no" + t.Name()
}

func (t target) Level() string { return "Level" + t.Backend }

func (t target) TypeArgs() string {
	return fmt.Sprintf("fastsimd.Float32x%[1]d, fastsimd.Int32x%[1]d, fastsimd.Mask32x%[1]d", t.Lanes)
}

func (t target) FileName() string { return "z_dispatch_" + t.Name() + ".go" }

func targetNames() []string {
	names := make([]string, len(allTargets))
	for i, t := range allTargets {
		names[i] = t.Name()
	}
	return names
}

// selectTargets parses a comma-separated level list.
func selectTargets(s string) ([]target, error) {
	if strings.TrimSpace(s) == "all" {
		return allTargets, nil
	}
	var out []target
	for _, name := range strings.Split(s, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		found := false
		for _, t := range allTargets {
			if t.Name() == name {
				out = append(out, t)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown level %q", name)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no levels selected")
	}
	return out, nil
}

const licenseHeader = `// Copyright 2025 go-highway Authors
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
`

var dispatchTemplate = template.Must(template.New("dispatch").Parse(licenseHeader + `
// Code generated by fsgen. DO NOT EDIT.
{{if .T.Tagged}}
//go:build {{.T.BuildTag}}
{{end}}
package {{.Package}}

import "github.com/ajroetker/go-fastsimd/fastsimd"

func init() {
	registerLevel(fastsimd.{{.T.Level}}, instantiate[{{.T.TypeArgs}}](fastsimd.{{.T.Backend}}{}))
}
`))

// render returns the formatted dispatch file for t.
func render(pkg string, t target) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Package string
		T       target
	}{pkg, t}
	if err := dispatchTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template for %s: %w", t.Backend, err)
	}
	src, err := imports.Process(t.FileName(), buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", t.FileName(), err)
	}
	return src, nil
}

// writeDispatchFiles renders one file per target into dir and returns the
// names written.
func writeDispatchFiles(dir, pkg string, targets []target) ([]string, error) {
	var written []string
	for _, t := range targets {
		src, err := render(pkg, t)
		if err != nil {
			return written, err
		}
		path := filepath.Join(dir, t.FileName())
		if err := os.WriteFile(path, src, 0644); err != nil {
			return written, fmt.Errorf("write dispatch file: %w", err)
		}
		written = append(written, t.FileName())
	}
	return written, nil
}
