package cli

import (
	"fmt"

	"github.com/billkraft/billkraft/internal/adapters/outbound/config"
	"github.com/billkraft/billkraft/internal/adapters/outbound/tui"
	"github.com/billkraft/billkraft/internal/application"
	"github.com/spf13/cobra"
)

func newTotalCmd() *cobra.Command {
	var (
		discount float64
		plain    bool
	)

	cmd := &cobra.Command{
		Use:   "total [path]",
		Short: "Compute an invoice total",
		Long: "Load an invoice document and print its total. path may be a YAML file or a directory " +
			"containing .billkraft.yaml; a directory without one uses the sample invoice.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			var override *float64
			if cmd.Flags().Changed("discount") {
				override = &discount
			}

			svc := application.NewInvoiceService(config.New())
			summary, err := svc.SummarizePath(path, override)
			if err != nil {
				return err
			}

			if plain {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderPlain(summary))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(summary))
			return nil
		},
	}

	cmd.Flags().Float64Var(&discount, "discount", 0, "Discount rate applied before tax (overrides the document, 0.2 = 20%)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print only the total line and comments")

	return cmd
}
