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

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-fastsimd/internal/cpuinfo"
)

func newInfoCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the detected capability level and CPU features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(cmd, v); err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), cpuinfo.Collect(), v.GetString("format"))
		},
	}
	cmd.Flags().String("format", "text", "output format (text, yaml, json)")
	return cmd
}

func writeReport(w io.Writer, r cpuinfo.Report, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case "text":
		fmt.Fprintf(w, "Platform:        %s/%s\n", r.GOOS, r.GOARCH)
		if r.Brand != "" {
			fmt.Fprintf(w, "CPU:             %s (%s)\n", r.Brand, r.Vendor)
			fmt.Fprintf(w, "Cores:           %d physical, %d logical\n", r.PhysicalCores, r.LogicalCores)
			fmt.Fprintf(w, "Cache:           L1D %d, L2 %d, L3 %d bytes\n", r.CacheL1D, r.CacheL2, r.CacheL3)
		}
		fmt.Fprintf(w, "Detected level:  %s\n", r.Detected)
		fmt.Fprintf(w, "Compiled levels: %s\n", strings.Join(r.Compiled, ", "))
		fmt.Fprintf(w, "Native levels:   %s\n", strings.Join(r.Native, ", "))
		fmt.Fprintf(w, "Features:        %s\n", strings.Join(r.Features, ","))
		fmt.Fprintf(w, "FMA enabled:     %t\n", r.UseFMA)
		fmt.Fprintf(w, "Gen. constants:  %t\n", r.GenerateConstants)
		if r.NoSimdEnv {
			fmt.Fprintln(w, "SIMD disabled by FASTSIMD_NO_SIMD")
		}
		if len(r.Mismatches) > 0 {
			fmt.Fprintf(w, "CPUID disagrees: %s\n", strings.Join(r.Mismatches, ","))
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
