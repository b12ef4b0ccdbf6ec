package main

import (
	"fmt"

	"github.com/seba2390/bevydoc"
	"github.com/seba2390/bevydoc/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	lookups, err := deps.Lookups.FindLookups(deps.Ctx, bevydoc.LookupFilter{SortBy: bevydoc.SortByKeyword})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bevydoc.ErrorMessage(err))
		return err
	}

	if len(lookups) == 0 {
		fmt.Fprintf(deps.Stderr, "error: nothing to export. Use 'bevydoc lookup' to cache some items first.\n")
		return bevydoc.Errorf(bevydoc.ENOTFOUND, "no cached lookups")
	}

	store := fs.NewExportStore(c.Dir, c.Name)
	for _, l := range lookups {
		if err := store.Save(deps.Ctx, l); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", bevydoc.ErrorMessage(err))
			return err
		}
	}

	if err := store.Commit(); err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", bevydoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d lookups to %s\n", len(lookups), store.Dir())
	return nil
}
