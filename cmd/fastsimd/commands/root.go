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

// Package commands implements the fastsimd command line.
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-fastsimd/fastsimd"
)

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand(viper.New()).Execute()
}

// NewRootCommand builds the command tree. Flags, FASTSIMD_* environment
// variables and the optional config file are resolved through v.
func NewRootCommand(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:   "fastsimd",
		Short: "Inspect and exercise the fastsimd backends",
		Long: `fastsimd reports the capability level detected on this machine and
runs the fastnoise generators at every compiled level.

Detection honours FASTSIMD_NO_SIMD and FASTSIMD_MAX_LEVEL.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd, v)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text, json)")
	pf.String("max-level", "", "cap detection at this level, e.g. sse41")

	root.AddCommand(
		newInfoCommand(v),
		newSampleCommand(v),
		newBenchCommand(v),
		newVerifyCommand(v),
	)
	return root
}

// rootFlags are the persistent flags also settable from the environment
// and the config file.
var rootFlags = []string{"log-level", "log-format", "max-level"}

// bindNamed binds the named flags of fs into v.
func bindNamed(v *viper.Viper, fs *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		if err := v.BindPFlag(name, fs.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// setup reads the config file and environment, then installs the logger
// and the detection cap.
func setup(cmd *cobra.Command, v *viper.Viper) error {
	if err := bindNamed(v, cmd.Root().PersistentFlags(), rootFlags...); err != nil {
		return err
	}
	v.SetEnvPrefix("FASTSIMD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	logger, err := newLogger(v.GetString("log-level"), v.GetString("log-format"), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	fastsimd.SetLogger(logger)

	if capLevel := v.GetString("max-level"); capLevel != "" {
		if _, err := fastsimd.ParseLevel(capLevel); err != nil {
			return err
		}
		if err := os.Setenv(fastsimd.EnvMaxLevel, capLevel); err != nil {
			return fmt.Errorf("set %s: %w", fastsimd.EnvMaxLevel, err)
		}
		fastsimd.ResetDetection()
	}
	return nil
}

func newLogger(level, format string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	switch format {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
	return logger, nil
}

// bindFlags binds the running command's flags into v. Subcommands share
// flag names, so binding happens when a command runs rather than when the
// tree is built.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	return nil
}
