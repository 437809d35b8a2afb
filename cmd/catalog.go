package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/jsphweid/fretchord/catalog"
	"github.com/jsphweid/fretchord/model"
	"github.com/spf13/cobra"
)

var (
	catalogFormat   string
	catalogCategory string
)

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().StringVarP(&catalogFormat, "format", "f", formatText, "output format: text, json or yaml")
	catalogCmd.Flags().StringVar(&catalogCategory, "category", "", "only list chords in this category")
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Lists the chords a catalog can recognize",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(catalogFormat); err != nil {
			return err
		}
		c, err := catalog.Get(settings.Catalog)
		if err != nil {
			return err
		}

		entries := c.Entries()
		if catalogCategory != "" {
			entries = c.ByCategory(catalogCategory)
		}

		if catalogFormat != formatText {
			return encode(cmd.OutOrStdout(), catalogFormat, model.CatalogResponse{
				Name:       c.Name(),
				Categories: c.Categories(),
				Chords:     entries,
			})
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTYPE\tCATEGORY\tNOTES\tSTRUCTURE")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Name, e.Type, e.Category, strings.Join(e.Notes, " "), e.Structure)
		}
		return w.Flush()
	},
}
