package cli

import (
	"fmt"

	"github.com/me/p2h/pkg/model"
	"github.com/spf13/cobra"
)

func newVehiclesCmd() *cobra.Command {
	var kategori, search string
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "vehicles",
		Short: "List fleet vehicles",
		RunE: func(cmd *cobra.Command, args []string) error {
			vehicles, err := client.Vehicles(cmd.Context(), model.ListOptions{
				Page:     page,
				PageSize: pageSize,
				Kategori: model.Kategori(kategori),
				Search:   search,
			})
			if err != nil {
				return fmt.Errorf("list vehicles: %w", err)
			}

			if len(vehicles) == 0 {
				fmt.Println("No vehicles found.")
				return nil
			}

			fmt.Printf("%-10s  %-12s  %-18s  %-8s  %s\n", "LAMBUNG", "PLAT", "TYPE", "ACTIVE", "STNK")
			for _, v := range vehicles {
				active := "yes"
				if !v.IsActive {
					active = "no"
				}
				fmt.Printf("%-10s  %-12s  %-18s  %-8s  %s\n", v.NoLambung, v.PlatNomor, v.Type, active, v.STNKExpiry)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kategori, "kategori", "", "Filter by fleet (IMM or Travel)")
	cmd.Flags().StringVar(&search, "search", "", "Search term")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "Page size")
	return cmd
}

func newMonitorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monitor <no_lambung>",
		Short: "Look up a vehicle by hull number (no login required)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := client.VehicleByLambung(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("lookup vehicle: %w", err)
			}

			fmt.Printf("Vehicle: %s\n", v.NoLambung)
			fmt.Printf("  Plat:   %s\n", v.PlatNomor)
			fmt.Printf("  Type:   %s\n", v.Type)
			if v.Merk != "" {
				fmt.Printf("  Merk:   %s\n", v.Merk)
			}
			if v.STNKExpiry != "" {
				fmt.Printf("  STNK:   %s\n", v.STNKExpiry)
			}
			if v.PajakExpiry != "" {
				fmt.Printf("  Pajak:  %s\n", v.PajakExpiry)
			}
			if v.Driver != nil {
				fmt.Printf("  Driver: %s\n", v.Driver.FullName)
			}
			if v.Company != nil {
				fmt.Printf("  PT:     %s\n", v.Company.Name)
			}
			return nil
		},
	}
}
