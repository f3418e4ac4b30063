package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gravitrone/listbox/internal/items"
)

// LoadItems reads path, or returns the built-in sample list when path is
// empty.
func LoadItems(path string) (*items.Store, error) {
	if path == "" {
		return items.Sample(), nil
	}
	return items.LoadFile(path)
}

// PrintItems lists every item of store with its index.
func PrintItems(out io.Writer, store *items.Store) {
	for item := range store.All() {
		fmt.Fprintf(out, "%3d  %s\n", item.Index, item.Text)
	}
	fmt.Fprintf(out, "%d items\n", store.Len())
}

// ItemsCmd returns the `listbox items` command.
func ItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "items [file]",
		Short: "Parse an items file and print what the list box would show",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			store, err := LoadItems(path)
			if err != nil {
				return err
			}
			PrintItems(c.OutOrStdout(), store)
			return nil
		},
	}
}
