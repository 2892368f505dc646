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

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"dirpx.dev/weasel"
	"dirpx.dev/weasel/catalog"
)

func newCatalogCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog FILE",
		Short: "Validate a label catalog and list its entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Load(args[0])
			if err != nil {
				return err
			}
			o.log.Debug("catalog loaded", zap.String("path", args[0]), zap.Int("labels", c.Len()))

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range []catalog.Section{catalog.Types, catalog.Members, catalog.Properties} {
				for _, k := range c.Keys(s) {
					label, _ := c.Lookup(s, k)
					fmt.Fprintf(w, "%s\t%s\t%s\n", s, k, label)
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d labels\n", c.Len())
			return nil
		},
	}
}

// effectiveConfig is the YAML view of the active configuration, in the
// layout config.Load reads.
type effectiveConfig struct {
	Separator   string `yaml:"separator"`
	IncludeZero bool   `yaml:"include_zero"`
	TagKey      string `yaml:"tag_key"`
	MaxUnwrap   int    `yaml:"max_unwrap"`
}

func newConfigCmd(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := weasel.Config()
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			err := enc.Encode(effectiveConfig{
				Separator:   cfg.Separator,
				IncludeZero: cfg.IncludeZero,
				TagKey:      cfg.TagKey,
				MaxUnwrap:   cfg.MaxUnwrap,
			})
			if err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
