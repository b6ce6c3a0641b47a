package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/kitfetch/internal/core/domain"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [platform [version [target]]]",
		Short: "List the kits available in the repository",
		Long: `List the kits available in the repository.

With no arguments (or "all") every platform is listed. Narrow the listing by
naming a platform (linux, macos, windows or auto), a version such as 5.12.4,
and a target such as desktop or android.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := listSelection(args)
			if err != nil {
				return err
			}
			return c.app.List(cmd.Context(), sel)
		},
	}
}

// listSelection builds the selection from the positional listing arguments.
func listSelection(args []string) (domain.Selection, error) {
	if len(args) == 0 || args[0] == "all" {
		return domain.Selection{All: true}, nil
	}

	platform, err := parsePlatformArg(args[0])
	if err != nil {
		return domain.Selection{}, err
	}
	sel := domain.Selection{Platform: platform}

	if len(args) >= 2 {
		v, err := domain.ParseVersion(args[1])
		if err != nil {
			return domain.Selection{}, err
		}
		sel.Version = &v
	}
	if len(args) == 3 {
		sel.Target = args[2]
	}
	return sel, nil
}
