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
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/weasel/boolx"
	"dirpx.dev/weasel/numx"
	"dirpx.dev/weasel/stringx"
)

func newInflectCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inflect N MANY ONE FEW",
		Short: "Print the Russian plural form of a word for N",
		Long: `Print the Russian plural form of a word for N. Negative N use the
form of their absolute value. Flags are not parsed, so N may be negative.`,
		Example: `  weasel inflect 21 дней день дня   # 21 день
  weasel inflect -2 дней день дня   # -2 дня`,
		Args:               cobra.ExactArgs(4),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse N: %w", err)
			}
			word := numx.Inflect(n, args[1], args[2], args[3])
			o.log.Debug("inflected", zap.Int64("n", n), zap.String("word", word))
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", n, word)
			return nil
		},
	}
}

func newCropCmd(o *options) *cobra.Command {
	var (
		length   int
		ellipsis string
		trim     bool
		upper    bool
	)
	c := &cobra.Command{
		Use:   "crop TEXT",
		Short: "Crop TEXT to a number of runes, ellipsis included",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := args[0]
			if trim {
				s = stringx.TrimSpaces(s)
			}
			if upper {
				s = stringx.EnsureFirstUpper(s)
			}
			out := stringx.Crop(s, length, ellipsis)
			o.log.Debug("cropped", zap.Int("length", length), zap.Bool("changed", out != s))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	c.Flags().IntVarP(&length, "length", "n", 20, "maximum length in runes")
	c.Flags().StringVar(&ellipsis, "ellipsis", stringx.DefaultEllipsis, "marker appended to cropped text")
	c.Flags().BoolVar(&trim, "trim", false, "collapse repeated spaces first")
	c.Flags().BoolVar(&upper, "upper", false, "upper-case the first letter")
	return c
}

func newYesNoCmd(o *options) *cobra.Command {
	var (
		yes, no, null string
		noNull        bool
	)
	c := &cobra.Command{
		Use:   "yesno [true|false|null]",
		Short: "Print the label of an optional boolean",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var b *bool
			if len(args) == 1 && !strings.EqualFold(args[0], "null") {
				v, err := strconv.ParseBool(args[0])
				if err != nil {
					return fmt.Errorf("parse value: %w", err)
				}
				b = &v
			}

			var opts []boolx.Option
			if cmd.Flags().Changed("yes") {
				opts = append(opts, boolx.WithYes(yes))
			}
			if cmd.Flags().Changed("no") {
				opts = append(opts, boolx.WithNo(no))
			}
			if cmd.Flags().Changed("null") {
				opts = append(opts, boolx.WithNull(null))
			}
			if noNull {
				opts = append(opts, boolx.WithoutNull())
			}

			label, ok := boolx.YesNo(b, opts...)
			if !ok {
				o.log.Debug("no label for null")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), label)
			return nil
		},
	}
	c.Flags().StringVar(&yes, "yes", boolx.DefaultYes, "label for true")
	c.Flags().StringVar(&no, "no", boolx.DefaultNo, "label for false")
	c.Flags().StringVar(&null, "null", boolx.DefaultNull, "label for an absent value")
	c.Flags().BoolVar(&noNull, "no-null", false, "print nothing for an absent value")
	return c
}

func newPow2Cmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pow2 N...",
		Short: "Report whether each N is a power of two",
		Long: `Report whether each N is a power of two. N may be decimal, 0x hex,
0o octal or 0b binary. Flags are not parsed, so N may be negative.`,
		Args:               cobra.MinimumNArgs(1),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range args {
				var ok bool
				if u, err := strconv.ParseUint(a, 0, 64); err == nil {
					ok = numx.IsPowerOfTwo(u)
				} else if i, err := strconv.ParseInt(a, 0, 64); err == nil {
					ok = numx.IsPowerOfTwo(i)
				} else {
					return fmt.Errorf("parse %q: %w", a, err)
				}
				o.log.Debug("checked", zap.String("n", a), zap.Bool("pow2", ok))
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\n", a, ok)
			}
			return nil
		},
	}
}
