/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cmd implements the weasel command line.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/weasel"
	"dirpx.dev/weasel/builder"
	"dirpx.dev/weasel/config"
	"dirpx.dev/weasel/resolver"
)

// options are shared by every subcommand.
type options struct {
	cfgFile string
	verbose bool
	log     *zap.Logger
}

// setup builds the logger and applies the config file, if any.
func (o *options) setup() error {
	var err error
	if o.verbose {
		o.log, err = zap.NewDevelopment()
	} else {
		o.log, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	weasel.SetBuilder(builder.New(builder.WithLogger(o.log)))

	if o.cfgFile == "" {
		return nil
	}
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}
	weasel.SetConfig(cfg)
	o.log.Debug("config applied", zap.String("path", o.cfgFile))
	return nil
}

// logStats logs the resolver cache counters at debug level.
func (o *options) logStats() {
	st, ok := resolver.StatsOf(weasel.Resolver())
	if !ok {
		return
	}
	o.log.Debug("resolver caches",
		zap.Uint64("values_hits", st.Values.Hits),
		zap.Uint64("values_misses", st.Values.Misses),
		zap.Uint64("types_hits", st.Types.Hits),
		zap.Uint64("types_misses", st.Types.Misses),
		zap.Uint64("properties_hits", st.Properties.Hits),
		zap.Uint64("properties_misses", st.Properties.Misses),
	)
}

// NewRootCmd returns the weasel command tree.
func NewRootCmd() *cobra.Command {
	o := &options{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "weasel",
		Short: "Display-name and text helpers",
		Long: `weasel exposes the helpers of the weasel module on the command line:
Russian plural forms, rune-aware cropping, yes/no labels, power-of-two
checks and display-label catalogs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return o.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			o.logStats()
			_ = o.log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&o.cfgFile, "config", "", "config file (.yaml, .yml or .toml)")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newInflectCmd(o),
		newCropCmd(o),
		newYesNoCmd(o),
		newPow2Cmd(o),
		newCatalogCmd(o),
		newConfigCmd(o),
	)
	return root
}

// Execute runs the command tree with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
