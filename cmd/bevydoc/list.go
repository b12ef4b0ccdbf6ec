package main

import (
	"fmt"

	"github.com/seba2390/bevydoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	sortBy := bevydoc.SortByFetchedAt
	if c.Sort == "keyword" {
		sortBy = bevydoc.SortByKeyword
	}

	lookups, err := deps.Lookups.FindLookups(deps.Ctx, bevydoc.LookupFilter{SortBy: sortBy})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bevydoc.ErrorMessage(err))
		return err
	}

	if len(lookups) == 0 {
		fmt.Fprintln(deps.Stdout, "No cached lookups. Use 'bevydoc lookup' to create one.")
		return nil
	}

	for _, l := range lookups {
		fmt.Fprintf(deps.Stdout, "%s  %-24s  %s\n",
			l.FetchedAt.Format("2006-01-02"), l.Keyword, l.ItemPath)
	}

	return nil
}
