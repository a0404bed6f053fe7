package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/me/p2h/pkg/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// answersFile is the YAML input for `p2h submit`.
type answersFile struct {
	Vehicle string `yaml:"vehicle"` // hull number
	Answers []struct {
		Item       string `yaml:"item"` // checklist item id or name
		Status     string `yaml:"status"`
		Keterangan string `yaml:"keterangan"`
	} `yaml:"answers"`
}

func newSubmitCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a P2H inspection from a YAML answers file",
		Long: `Submit a daily inspection. The answers file names the vehicle by hull
number and lists one status per checklist item:

  vehicle: P.309
  answers:
    - item: Kondisi rem
      status: normal
    - item: Lampu depan
      status: abnormal
      keterangan: lampu kiri mati`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read answers file: %w", err)
			}
			var af answersFile
			if err := yaml.Unmarshal(data, &af); err != nil {
				return fmt.Errorf("parse answers file: %w", err)
			}
			if af.Vehicle == "" {
				return fmt.Errorf("answers file: vehicle is required")
			}
			if len(af.Answers) == 0 {
				return fmt.Errorf("answers file: no answers given")
			}

			vehicle, err := client.VehicleByLambung(cmd.Context(), af.Vehicle)
			if err != nil {
				return fmt.Errorf("resolve vehicle %q: %w", af.Vehicle, err)
			}

			items, err := client.ActiveChecklist(cmd.Context(), vehicle.Type)
			if err != nil {
				return fmt.Errorf("fetch checklist: %w", err)
			}

			report := model.Report{VehicleID: vehicle.ID}
			for _, a := range af.Answers {
				item, ok := matchItem(items, a.Item)
				if !ok {
					return fmt.Errorf("answers file: unknown checklist item %q", a.Item)
				}
				status := model.InspectionStatus(strings.ToLower(a.Status))
				switch status {
				case model.StatusNormal, model.StatusAbnormal, model.StatusWarning:
				default:
					return fmt.Errorf("answers file: invalid status %q for %q", a.Status, a.Item)
				}
				report.Details = append(report.Details, model.ReportDetail{
					ChecklistItemID: item.ID,
					Status:          status,
					Keterangan:      a.Keterangan,
				})
			}

			submitted, err := client.SubmitReport(cmd.Context(), report)
			if err != nil {
				return fmt.Errorf("submit report: %w", err)
			}

			fmt.Printf("Report %s submitted for %s (%s).\n", submitted.ID, vehicle.NoLambung, submitted.OverallStatus())
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML answers file (required)")
	cmd.MarkFlagRequired("file")
	return cmd
}

// matchItem resolves an answer's item reference against the active
// checklist, by id first and then by case-insensitive name.
func matchItem(items []model.ChecklistItem, ref string) (model.ChecklistItem, bool) {
	for _, it := range items {
		if it.ID == ref {
			return it, true
		}
	}
	for _, it := range items {
		if strings.EqualFold(it.ItemName, ref) {
			return it, true
		}
	}
	return model.ChecklistItem{}, false
}
