package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"library/internal/publication"
)

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every publication in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := a.open()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, c)
			return nil
		},
	}
}

func byAuthorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "by-author <author>",
		Short: "Print publications whose author matches exactly",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := a.open()
			if err != nil {
				return err
			}
			for p := range c.FilterByAuthor(args[0]) {
				fmt.Fprintln(a.out, p)
			}
			return nil
		},
	}
}

func addCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <kind> <title> <author> <year>",
		Short: "Add a publication and save the catalog",
		Args:  cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			rec, err := publication.NewRecord(args[1], args[2], args[3])
			if err != nil {
				return err
			}
			p, err := publication.Build(publication.Kind(args[0]), rec)
			if err != nil {
				return err
			}

			c, err := a.open()
			if err != nil {
				return err
			}
			c.Add(p)
			return a.file.Save(c)
		},
	}
}

func removeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <position>",
		Short: "Remove the publication at a 1-based list position and save the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("position must be an integer: %w", err)
			}

			c, err := a.open()
			if err != nil {
				return err
			}
			all := c.All()
			if pos < 1 || pos > len(all) {
				return fmt.Errorf("no publication at position %d (catalog has %d)", pos, len(all))
			}
			c.Remove(all[pos-1])
			return a.file.Save(c)
		},
	}
}

func kindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "Print the publication kinds the file format accepts",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, k := range publication.Kinds() {
				fmt.Fprintln(a.out, k)
			}
			return nil
		},
	}
}
