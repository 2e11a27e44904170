package exchart

import "github.com/ukaji3/exchart-go/pkg/exchart/models"

// SampleEntity is the entity charted from the sample workbook by default.
const SampleEntity = "Li Si"

// SampleWorkbook returns a built-in workbook with one sheet per chart role.
// Wang Wu's completion row is all zero, so selecting him shows the zero
// indicator on the pie chart.
func SampleWorkbook() *models.Workbook {
	return models.NewWorkbook("sample.xlsx",
		models.Sheet{Name: "Skills", Table: models.NewTableViewFromGrid(
			[]string{"Name", "Skill 1", "Skill 2", "Skill 3", "Skill 4", "Skill 5", "Skill 6"},
			[][]any{
				{"Zhang San", int64(85), int64(78), int64(92), int64(88), int64(75), int64(80)},
				{"Li Si", int64(90), int64(82), int64(85), int64(95), int64(80), int64(88)},
				{"Wang Wu", int64(75), int64(88), int64(70), int64(80), int64(85), int64(92)},
			},
		)},
		models.Sheet{Name: "Completion", Table: models.NewTableViewFromGrid(
			[]string{"Name", "Done", "Pending"},
			[][]any{
				{"Zhang San", int64(80), int64(20)},
				{"Li Si", int64(100), int64(0)},
				{"Wang Wu", int64(0), int64(0)},
			},
		)},
		models.Sheet{Name: "Projects", Table: models.NewTableViewFromGrid(
			[]string{"Name", "Project 1", "Project 2", "Project 3", "Project 4"},
			[][]any{
				{"Zhang San", int64(120), int64(180), int64(90), int64(210)},
				{"Li Si", int64(150), int64(200), int64(130), int64(190)},
				{"Wang Wu", int64(90), int64(160), int64(110), int64(180)},
			},
		)},
		models.Sheet{Name: "Budget", Table: models.NewTableViewFromGrid(
			[]string{"Name", "Q1", "Q2", "Q3", "Q4"},
			[][]any{
				{"Zhang San", int64(40), int64(55), int64(35), int64(60)},
				{"Li Si", int64(50), int64(45), int64(65), int64(70)},
				{"Wang Wu", int64(30), int64(40), int64(45), int64(50)},
			},
		)},
		models.Sheet{Name: "Monthly", Table: models.NewTableViewFromGrid(
			[]string{"Name", "Jan", "Feb", "Mar", "Apr", "May", "Jun"},
			[][]any{
				{"Zhang San", int64(25), int64(35), int64(30), int64(40), int64(45), int64(50)},
				{"Li Si", int64(30), int64(40), int64(45), int64(50), int64(55), int64(60)},
				{"Wang Wu", int64(20), int64(30), int64(25), int64(35), int64(40), int64(45)},
			},
		)},
	)
}
