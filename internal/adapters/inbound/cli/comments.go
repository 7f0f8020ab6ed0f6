package cli

import (
	"fmt"

	"github.com/billkraft/billkraft/internal/adapters/outbound/config"
	"github.com/billkraft/billkraft/internal/application"
	"github.com/spf13/cobra"
)

func newCommentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comments [path]",
		Short: "Print an invoice's comments",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			svc := application.NewInvoiceService(config.New())
			summary, err := svc.SummarizePath(path, nil)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), summary.Comments)
			return nil
		},
	}
}
