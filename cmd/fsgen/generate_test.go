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
	"go/build/constraint"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSelectTargets(t *testing.T) {
	tests := []struct {
		levels  string
		want    []string
		wantErr bool
	}{
		{"all", targetNames(), false},
		{"avx2", []string{"avx2"}, false},
		{"Scalar, NEON", []string{"scalar", "neon"}, false},
		{"avx3", nil, true},
		{",", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.levels, func(t *testing.T) {
			got, err := selectTargets(tt.levels)
			if (err != nil) != tt.wantErr {
				t.Fatalf("selectTargets(%q) error = %v, wantErr %v", tt.levels, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			var names []string
			for _, target := range got {
				names = append(names, target.Name())
			}
			if strings.Join(names, ",") != strings.Join(tt.want, ",") {
				t.Errorf("selectTargets(%q) = %v, want %v", tt.levels, names, tt.want)
			}
		})
	}
}

func TestBuildTagArch(t *testing.T) {
	tests := []struct {
		level string
		tags  []string
		want  bool
	}{
		{"scalar", []string{"arm64"}, true},
		{"sse2", []string{"amd64"}, true},
		{"sse2", []string{"amd64", "goexperiment.simd"}, false},
		{"sse41", []string{"amd64", "goexperiment.simd"}, true},
		{"avx2", []string{"amd64"}, true},
		{"avx2", []string{"arm64"}, false},
		{"avx512", []string{"arm64"}, false},
		{"avx512", []string{"amd64", "fastsimd_noavx512"}, false},
		{"neon", []string{"arm64"}, true},
		{"neon", []string{"amd64"}, false},
	}
	for _, tt := range tests {
		got, err := selectTargets(tt.level)
		if err != nil {
			t.Fatal(err)
		}
		expr, err := constraint.Parse("//go:build " + got[0].BuildTag())
		if err != nil {
			t.Fatalf("%s: %v", tt.level, err)
		}
		set := make(map[string]bool)
		for _, tag := range tt.tags {
			set[tag] = true
		}
		if ok := expr.Eval(func(tag string) bool { return set[tag] }); ok != tt.want {
			t.Errorf("%s with %v: built = %v, want %v", tt.level, tt.tags, ok, tt.want)
		}
	}
}

func TestRenderParses(t *testing.T) {
	for _, target := range allTargets {
		t.Run(target.Name(), func(t *testing.T) {
			src, err := render("fastnoise", target)
			if err != nil {
				t.Fatalf("render: %v", err)
			}

			fset := token.NewFileSet()
			f, err := parser.ParseFile(fset, target.FileName(), src, parser.ParseComments)
			if err != nil {
				t.Fatalf("generated file does not parse: %v\n%s", err, src)
			}
			if f.Name.Name != "fastnoise" {
				t.Errorf("package = %s, want fastnoise", f.Name.Name)
			}

			text := string(src)
			if !strings.Contains(text, "// Code generated by fsgen. DO NOT EDIT.") {
				t.Error("missing generated-code marker")
			}
			hasTag := strings.Contains(text, "//go:build "+target.BuildTag())
			if hasTag != target.Tagged {
				t.Errorf("build tag present = %v, want %v", hasTag, target.Tagged)
			}
			if !strings.Contains(text, "registerLevel(fastsimd."+target.Level()) {
				t.Error("missing registerLevel call")
			}
		})
	}
}

// TestCheckedInFilesUpToDate fails when the dispatch files in fastnoise
// differ from what fsgen would write. Run go generate ./fastnoise to fix.
func TestCheckedInFilesUpToDate(t *testing.T) {
	dir := filepath.Join("..", "..", "fastnoise")
	for _, target := range allTargets {
		want, err := render("fastnoise", target)
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		got, err := os.ReadFile(filepath.Join(dir, target.FileName()))
		if err != nil {
			t.Fatalf("read checked-in file: %v", err)
		}
		if string(got) != string(want) {
			t.Errorf("%s is stale; run go generate ./fastnoise", target.FileName())
		}
	}
}

func TestWriteDispatchFiles(t *testing.T) {
	dir := t.TempDir()
	targets, err := selectTargets("scalar,avx512")
	if err != nil {
		t.Fatal(err)
	}
	files, err := writeDispatchFiles(dir, "fastnoise", targets)
	if err != nil {
		t.Fatalf("writeDispatchFiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("wrote %d files, want 2", len(files))
	}
	for _, name := range files {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}
