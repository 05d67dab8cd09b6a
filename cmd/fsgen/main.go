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

// Command fsgen writes the per-level dispatch files of package fastnoise.
//
// Each file instantiates the generic algorithm table for one backend and
// registers it under the backend's level. The file carries the backend's
// build tag, so excluding a backend at build time also drops its
// instantiation.
//
// Usage:
//
//	fsgen -out ./fastnoise
//	fsgen -out ./fastnoise -levels scalar,avx2
//
// Or via go:generate in package fastnoise:
//
//	//go:generate go run ../cmd/fsgen -out .
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputDir  = flag.String("out", ".", "Output directory")
	packageOut = flag.String("pkg", "fastnoise", "Output package name")
	levels     = flag.String("levels", "all", "Comma-separated levels ("+strings.Join(targetNames(), ",")+") or 'all'")
)

func main() {
	flag.Parse()

	targets, err := selectTargets(*levels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	files, err := writeDispatchFiles(*outputDir, *packageOut, targets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %s\n", strings.Join(files, ", "))
}
