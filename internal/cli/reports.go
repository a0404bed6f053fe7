package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/me/p2h/pkg/model"
	"github.com/spf13/cobra"
)

func newReportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List and inspect P2H reports",
	}
	cmd.AddCommand(newReportsListCmd(), newReportsShowCmd())
	return cmd
}

func newReportsListCmd() *cobra.Command {
	var kategori string
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List submitted reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := client.Reports(cmd.Context(), model.ListOptions{
				Page:     page,
				PageSize: pageSize,
				Kategori: model.Kategori(kategori),
			})
			if err != nil {
				return fmt.Errorf("list reports: %w", err)
			}

			if len(reports) == 0 {
				fmt.Println("No reports found.")
				return nil
			}

			fmt.Printf("%-36s  %-10s  %-10s  %s\n", "ID", "VEHICLE", "STATUS", "SUBMITTED")
			for _, r := range reports {
				vehicle := r.VehicleID
				if r.Vehicle != nil {
					vehicle = r.Vehicle.NoLambung
				}
				fmt.Printf("%-36s  %-10s  %-10s  %s\n", r.ID, vehicle, r.OverallStatus(), humanize.Time(r.SubmittedAt))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kategori, "kategori", "", "Filter by fleet (IMM or Travel)")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "Page size")
	return cmd
}

func newReportsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <report_id>",
		Short: "Show one report with its checklist answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := client.GetReport(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get report: %w", err)
			}

			fmt.Printf("Report: %s\n", r.ID)
			if r.Vehicle != nil {
				fmt.Printf("  Vehicle:   %s (%s)\n", r.Vehicle.NoLambung, r.Vehicle.PlatNomor)
			}
			if r.User != nil {
				fmt.Printf("  Driver:    %s\n", r.User.FullName)
			}
			fmt.Printf("  Status:    %s\n", r.OverallStatus())
			if !r.SubmittedAt.IsZero() {
				fmt.Printf("  Submitted: %s (%s)\n", r.SubmittedAt.Format("2006-01-02 15:04"), humanize.Time(r.SubmittedAt))
			}

			if len(r.Details) > 0 {
				fmt.Println("  Checklist:")
				for _, d := range r.Details {
					name := d.ChecklistItemID
					if d.Item != nil {
						name = d.Item.ItemName
					}
					line := fmt.Sprintf("    - %s: %s", name, d.Status)
					if d.Keterangan != "" {
						line += " (" + d.Keterangan + ")"
					}
					fmt.Println(line)
				}
			}
			return nil
		},
	}
}
