//Package preview renders a sweep table for the terminal
package preview

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/gehtsoft-usa/go_aerotable"
)

var titles = [go_aerotable.ColumnCount]string{"Mach", "CD", "CP [m]", "CN", "CNa"}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			Align(lipgloss.Right).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)

	cellStyle = lipgloss.NewStyle().
			Align(lipgloss.Right)

	columnStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)

//Sample returns every n-th row of the table starting from the first one.
//The last row is always included.
func Sample(table go_aerotable.Table, every int) go_aerotable.Table {
	if every < 1 {
		every = 1
	}
	var rows go_aerotable.Table
	for i := 0; i < len(table); i += every {
		rows = append(rows, table[i])
	}
	if len(table) > 0 && (len(table)-1)%every != 0 {
		rows = append(rows, table[len(table)-1])
	}
	return rows
}

//Render renders every n-th row of the table as right aligned columns with
//the same precision the report uses
func Render(table go_aerotable.Table, every int) string {
	rows := Sample(table, every)

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, go_aerotable.ColumnCount)
		for c := range row {
			precision := 6
			if c == go_aerotable.ColumnMach {
				precision = 3
			}
			cells[i][c] = strconv.FormatFloat(row[c], 'f', precision, 64)
		}
	}
	return Columns(titles[:], cells)
}

//Columns renders the rows under the titles, each column as wide as its
//widest cell. Rows shorter than the titles are padded with empty cells.
func Columns(titles []string, rows [][]string) string {
	columns := make([]string, 0, len(titles))
	for c, title := range titles {
		width := lipgloss.Width(title)
		for _, row := range rows {
			if c < len(row) {
				width = max(width, lipgloss.Width(row[c]))
			}
		}

		cells := make([]string, 0, len(rows)+1)
		cells = append(cells, headerStyle.Width(width).Render(title))
		for _, row := range rows {
			var v string
			if c < len(row) {
				v = row[c]
			}
			cells = append(cells, cellStyle.Width(width).Render(v))
		}
		columns = append(columns, columnStyle.Render(lipgloss.JoinVertical(lipgloss.Right, cells...)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}
