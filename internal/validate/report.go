package validate

import "slices"

var reportColumns = []string{
	"id",
	"uuid",
	"project",
	"priority",
	"entry",
	"start",
	"due",
	"age",
	"age_compact",
	"active",
	"tags",
	"recur",
	"recurrence_indicator",
	"tag_indicator",
	"description_only",
	"description",
}

// ReportColumnNames returns the column names a report may display.
func ReportColumnNames() []string {
	return slices.Clone(reportColumns)
}

// ReportColumns checks every column against the known report columns and
// reports all unknown ones in a single error.
func ReportColumns(columns []string) error {
	var bad []string
	for _, c := range columns {
		if !slices.Contains(reportColumns, c) {
			bad = append(bad, c)
		}
	}
	if len(bad) > 0 {
		return newError(UnrecognizedColumn, bad...)
	}
	return nil
}

// SortColumns checks that every sort spec, minus its trailing direction
// character ("+" or "-"), names one of the report's columns.
func SortColumns(sortSpecs, columns []string) error {
	var bad []string
	for _, spec := range sortSpecs {
		if spec == "" || !slices.Contains(columns, spec[:len(spec)-1]) {
			bad = append(bad, spec)
		}
	}
	if len(bad) > 0 {
		return newError(UnknownSortColumn, bad...)
	}
	return nil
}
