package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eringen/convcalc/conversions"
)

func convertCmd() *cobra.Command {
	var (
		reverse  bool
		decimals int
	)
	cmd := &cobra.Command{
		Use:     "convert <slug> <value>",
		Short:   "Convert a value with a registered converter",
		Example: "  convcalc convert pounds-to-kilograms 12\n  convcalc convert fahrenheit-to-celsius 100 --reverse",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, ok := conversions.BySlug(args[0])
			if !ok {
				return fmt.Errorf("unknown converter %q", args[0])
			}
			v, ok := conversions.ParseValue(args[1])
			if !ok {
				return fmt.Errorf("invalid value %q", args[1])
			}
			dir := conversions.Forward
			if reverse {
				dir = conversions.Reverse
			}
			from, to := pair.Units(dir)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n",
				conversions.FormatNumber(v, decimals), from.Symbol,
				conversions.FormatNumber(pair.Apply(v, dir), decimals), to.Symbol)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "convert from the target unit back to the source unit")
	cmd.Flags().IntVarP(&decimals, "decimals", "d", conversions.DefaultDecimals, "maximum fractional digits")
	return cmd
}

func listCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List converters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs := conversions.Conversions()
			if category != "" {
				if _, ok := conversions.CategoryByID(category); !ok {
					return fmt.Errorf("unknown category %q", category)
				}
				pairs = conversions.ByCategory(category)
			}
			printPairs(cmd, pairs)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only list converters in this category")
	return cmd
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query...>",
		Short: "Search converters by name or symbol",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			results := conversions.Search(strings.Join(args, " "))
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no converters found")
				return
			}
			printPairs(cmd, results)
		},
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List converter categories",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range conversions.Categories() {
				fmt.Fprintf(w, "%s\t%s\t%d\n", c.ID, c.Name, len(conversions.ByCategory(c.ID)))
			}
			w.Flush()
		},
	}
}

func printPairs(cmd *cobra.Command, pairs []conversions.Pair) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, p := range pairs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Slug, p.Category, p.Title)
	}
	w.Flush()
}
