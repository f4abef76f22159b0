// The summary command: print the aggregate views to the terminal.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mortalidash/internal/views"
)

var flagDepartment string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the aggregate views for a department selection",
	Long: `Summary computes the dashboard aggregates over the loaded datasets and
prints them as tables, optionally restricted to one department. With
--json the full view set is emitted as JSON instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := buildContext(cfg)
		v := views.Compute(ctx, flagDepartment)

		if flagJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		}

		fmt.Printf("Registros totales: %d\n", v.Summary.TotalRecords)
		fmt.Printf("Departamentos detectados: %d\n", v.Summary.Departments)
		fmt.Printf("Municipios detectados: %d\n\n", v.Summary.Municipalities)

		printCountTable("Muertes por Departamento", "Departamento", v.ByDepartment)

		fmt.Println("Muertes por Mes")
		monthTable := tablewriter.NewWriter(os.Stdout)
		monthTable.SetHeader([]string{"Mes", "Total"})
		for _, row := range v.ByMonth {
			monthTable.Append([]string{strconv.Itoa(row.Month), strconv.Itoa(row.Total)})
		}
		monthTable.Render()
		fmt.Println()

		printCountTable("Ciudades Más Violentas (homicidios)", "Municipio", v.TopHomicides)
		printCountTable("Ciudades con Menor Mortalidad", "Municipio", v.LowestMortality)

		fmt.Println("Muertes por Sexo")
		sexTable := tablewriter.NewWriter(os.Stdout)
		sexTable.SetHeader([]string{"Departamento", "Sexo", "Total"})
		for _, row := range v.ByDepartmentSex {
			sexTable.Append([]string{row.Department, row.Sex, strconv.Itoa(row.Total)})
		}
		sexTable.Render()
		fmt.Println()

		printCountTable("Distribución por Grupo de Edad", "Grupo de edad", v.ByAgeGroup)

		fmt.Println("Top 10 Causas")
		causeTable := tablewriter.NewWriter(os.Stdout)
		causeTable.SetHeader([]string{"Código", "Nombre de la causa", "Total"})
		for _, row := range v.TopCauses {
			causeTable.Append([]string{row.Code, row.Name, strconv.Itoa(row.Total)})
		}
		causeTable.Render()

		return nil
	},
}

// printCountTable renders one labeled count view.
func printCountTable(title, label string, rows []views.CountRow) {
	fmt.Println(title)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{label, "Total"})
	for _, row := range rows {
		table.Append([]string{row.Label, strconv.Itoa(row.Total)})
	}
	table.Render()
	fmt.Println()
}

func init() {
	summaryCmd.Flags().StringVar(&flagDepartment, "departamento", views.FilterAll, "department name to filter by (default: all)")
}
