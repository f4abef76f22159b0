// The export command: write the canonical table or the ranked cause view
// to a file for analysis outside the dashboard.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/mesh-intelligence/mortalidash/internal/pipeline"
	"github.com/mesh-intelligence/mortalidash/internal/sqlite"
	"github.com/mesh-intelligence/mortalidash/internal/views"
)

var (
	flagExportFormat     string
	flagExportDepartment string
	flagExportOut        string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the joined record table (sqlite) or top causes (xlsx)",
	Long: `Export writes a snapshot of the canonical record table into an SQLite
database under the data directory, or the ranked top-causes table as an
xlsx workbook. The optional department filter restricts the exported
records the same way the dashboard selector does.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := buildContext(cfg)

		switch flagExportFormat {
		case "sqlite":
			records := ctx.Records
			if flagExportDepartment != "" && flagExportDepartment != views.FilterAll {
				filtered := make([]pipeline.Record, 0, len(records))
				for _, rec := range records {
					if rec.DepartmentName == flagExportDepartment {
						filtered = append(filtered, rec)
					}
				}
				records = filtered
			}
			snapshotID, err := sqlite.Export(cfg.DataDir, flagExportDepartment, records)
			if err != nil {
				return fmt.Errorf("export sqlite snapshot: %w", err)
			}
			fmt.Printf("snapshot %s: %d records\n", snapshotID, len(records))
			return nil

		case "xlsx":
			v := views.Compute(ctx, flagExportDepartment)
			if err := writeTopCausesXLSX(flagExportOut, v.TopCauses); err != nil {
				return fmt.Errorf("export xlsx: %w", err)
			}
			fmt.Printf("%s: %d causes\n", flagExportOut, len(v.TopCauses))
			return nil

		default:
			return fmt.Errorf("unknown export format %q (want sqlite or xlsx)", flagExportFormat)
		}
	},
}

// writeTopCausesXLSX writes the ranked cause table as a workbook.
func writeTopCausesXLSX(path string, causes []views.CauseRow) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	head := []any{"Código", "Nombre de la causa", "Total"}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return err
	}
	for i, row := range causes {
		cells := []any{row.Code, row.Name, row.Total}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func init() {
	exportCmd.Flags().StringVar(&flagExportFormat, "format", "sqlite", "export format: sqlite or xlsx")
	exportCmd.Flags().StringVar(&flagExportDepartment, "departamento", views.FilterAll, "department name to filter by (default: all)")
	exportCmd.Flags().StringVar(&flagExportOut, "out", "top_causas.xlsx", "output path for the xlsx format")
}
