package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"library/internal/catalog"
	"library/internal/publication"
)

func demoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through add, filter, save, remove and reload against the catalog file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.demo()
		},
	}
}

func (a *app) demo() error {
	c := catalog.New(catalog.WithReporter(a.reporter))

	book, err := publication.NewBook(publication.Record{Title: "1984", Author: "George Orwell", Year: 1949})
	if err != nil {
		return err
	}
	magazine, err := publication.NewMagazine(publication.Record{Title: "National Geographic", Author: "Various", Year: 2023})
	if err != nil {
		return err
	}

	c.Add(book)
	c.Add(magazine)

	fmt.Fprintln(a.out, "All publications:")
	fmt.Fprintln(a.out, c)

	fmt.Fprintln(a.out, "\nPublications by George Orwell:")
	for p := range c.FilterByAuthor("George Orwell") {
		fmt.Fprintln(a.out, p)
	}

	if err := a.file.Save(c); err != nil {
		return err
	}

	c.Remove(book)
	fmt.Fprintln(a.out, "\nAfter removal:")
	fmt.Fprintln(a.out, c)

	if _, err := a.file.Load(c); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "\nAfter reloading from file:")
	fmt.Fprintln(a.out, c)
	return nil
}
