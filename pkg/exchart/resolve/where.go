package resolve

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// CompileWhere compiles a row filter expression.
// Columns are visible by name and through the row map, e.g.
// `Dept == "Sales" && row["Score 1"] > 80`.
func CompileWhere(expression string) (*vm.Program, error) {
	program, err := expr.Compile(expression, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", expression, err)
	}
	return program, nil
}

// rowEnv exposes a row to a filter expression.
func rowEnv(t *models.TableView, i int) map[string]any {
	row := t.RowMap(i)
	env := make(map[string]any, len(row)+2)
	for k, v := range row {
		env[k] = v
	}
	env["row"] = row
	env["index"] = i
	return env
}

// ResolveWhere filters the primary sheet with a boolean expression and
// returns the entity key of the first surviving row. Rows where the
// expression fails to evaluate (e.g. comparing a missing cell) do not match.
func ResolveWhere(wb *models.Workbook, expression string) (Resolution, error) {
	program, err := CompileWhere(expression)
	if err != nil {
		return Resolution{}, err
	}

	primary, ok := wb.Primary()
	if !ok {
		return Resolution{Reason: "workbook has no sheets"}, nil
	}
	t := primary.Table
	if t.NumRows() == 0 || t.Empty() {
		return Resolution{Reason: fmt.Sprintf("sheet %q has no rows", primary.Name)}, nil
	}

	res := Resolution{Value: expression}
	for i := 0; i < t.NumRows(); i++ {
		out, err := expr.Run(program, rowEnv(t, i))
		if err != nil {
			continue
		}
		if b, ok := out.(bool); !ok || !b {
			continue
		}
		if res.Matches == 0 {
			res.Key = t.Cell(i, 0)
		}
		res.Matches++
	}

	switch {
	case res.Matches == 0:
		res.Reason = "no data selected"
	case models.IsMissing(res.Key):
		res.Key = nil
		res.Reason = "first matching row has no entity key"
	default:
		res.Found = true
	}
	return res, nil
}
