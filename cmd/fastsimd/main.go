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

// Command fastsimd inspects and exercises the fastsimd backends on the
// running machine.
//
// Usage:
//
//	fastsimd info --format yaml
//	fastsimd sample --algorithm checkerboard --cell-size 2 --size 8
//	fastsimd bench --algorithm white --size 64 --workers 4
//	fastsimd verify --all-levels
//
// Flags may also be set through FASTSIMD_* environment variables or a YAML
// config file passed with --config.
package main

import (
	"os"

	"github.com/ajroetker/go-fastsimd/cmd/fastsimd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
