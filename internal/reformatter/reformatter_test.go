package reformatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadtools/competency-reformatter/internal/types"
)

func ctx(program, rootID string) types.ProgramContext {
	return types.ProgramContext{ProgramName: program, RootID: rootID}
}

func TestReformat_EmptyInput(t *testing.T) {
	_, err := Reformat(nil, ctx("Physical Education", "100"), Options{})
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Reformat([]types.InputRecord{}, ctx("Physical Education", "100"), Options{})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestReformat_FrameworkRow(t *testing.T) {
	records := []types.InputRecord{
		{Name: "Physical Education", Description: "Program desc"},
	}

	result, err := Reformat(records, ctx("Physical Education", "100"), Options{})
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)

	fw := result.Rows[0]
	assert.Equal(t, "", fw.ParentID)
	assert.Equal(t, "100", fw.ID)
	assert.Equal(t, "Physical Education", fw.ShortName)
	assert.Equal(t, "Program desc", fw.Description)
	assert.Equal(t, "1", fw.DescriptionFormat)
	assert.Equal(t, "1", fw.IsFramework)
	assert.Equal(t, "Not yet competent,Competent", fw.ScaleValues)
	assert.Equal(t,
		`[{"scaleid":"2"},{"id":1,"scaledefault":1,"proficient":0},{"id":2,"scaledefault":0,"proficient":1}]`,
		fw.ScaleConfiguration)
	assert.Equal(t, "competency,competency,competency,competency,competency", fw.Taxonomy)
}

func TestReformat_ThreeTierScenario(t *testing.T) {
	records := []types.InputRecord{
		{Name: "Physical Education", Description: "Program desc"},
		{Name: "Knowledge"},
		{Name: "Theoretical Understanding"},
		{Name: "K1", Description: "Outcome 1"},
	}

	result, err := Reformat(records, ctx("Physical Education", "100"), Options{})
	require.NoError(t, err)
	require.Len(t, result.Rows, 4)
	assert.Empty(t, result.Notices)

	assert.Equal(t, "100", result.Rows[0].ID)

	major := result.Rows[1]
	assert.Equal(t, "PE-K", major.ID)
	assert.Equal(t, "", major.ParentID)
	assert.Equal(t, "Knowledge", major.ShortName)

	sub := result.Rows[2]
	assert.Equal(t, "PE-K-TU", sub.ID)
	assert.Equal(t, "PE-K", sub.ParentID)

	leaf := result.Rows[3]
	assert.Equal(t, "PE-K-TU-K1", leaf.ID)
	assert.Equal(t, "PE-K-TU", leaf.ParentID)
	assert.Equal(t, "K1", leaf.ShortName)
	assert.Equal(t, "Outcome 1", leaf.Description)
	assert.Equal(t, "", leaf.IsFramework)
	assert.Equal(t, "", leaf.ScaleValues)
	assert.Equal(t, "", leaf.ScaleConfiguration)
}

func TestReformat_AllMajorAndSubAreas(t *testing.T) {
	records := []types.InputRecord{
		{Name: "Dental Surgery"},
		{Name: "Knowledge"},
		{Name: "Theoretical Understanding"},
		{Name: "Applied Knowledge"},
		{Name: "Skills"},
		{Name: "Practical Application"},
		{Name: "Communication Skills"},
		{Name: "Generic Problem Solving"},
		{Name: "Competence"},
		{Name: "Critical Thinking"},
		{Name: "Autonomy & Responsibility"},
	}

	result, err := Reformat(records, ctx("Dental Surgery", "2299"), Options{})
	require.NoError(t, err)
	require.Len(t, result.Rows, 11)
	assert.Empty(t, result.Notices)

	byName := map[string]types.OutputRow{}
	for _, row := range result.Rows {
		byName[row.ShortName] = row
	}

	assert.Equal(t, "DS-K", byName["Knowledge"].ID)
	assert.Equal(t, "DS-S", byName["Skills"].ID)
	assert.Equal(t, "DS-C", byName["Competence"].ID)
	for _, name := range []string{"Knowledge", "Skills", "Competence"} {
		assert.Equal(t, "", byName[name].ParentID)
	}

	assert.Equal(t, "DS-K-TU", byName["Theoretical Understanding"].ID)
	assert.Equal(t, "DS-K-AK", byName["Applied Knowledge"].ID)
	assert.Equal(t, "DS-S-PA", byName["Practical Application"].ID)
	assert.Equal(t, "DS-S-CS", byName["Communication Skills"].ID)
	assert.Equal(t, "DS-S-GPS", byName["Generic Problem Solving"].ID)
	assert.Equal(t, "DS-C-CT", byName["Critical Thinking"].ID)
	assert.Equal(t, "DS-C-AR", byName["Autonomy & Responsibility"].ID)

	assert.Equal(t, "DS-K", byName["Theoretical Understanding"].ParentID)
	assert.Equal(t, "DS-S", byName["Generic Problem Solving"].ParentID)
	assert.Equal(t, "DS-C", byName["Autonomy & Responsibility"].ParentID)
}

func TestReformat_LeafOutcomesParentToDefaultSubAreas(t *testing.T) {
	records := []types.InputRecord{
		{Name: "Physical Education"},
		{Name: "Knowledge"},
		{Name: "Theoretical Understanding"},
		{Name: "Skills"},
		{Name: "Generic Problem Solving"},
		{Name: "Competence"},
		{Name: "Autonomy & Responsibility"},
		{Name: "K1"},
		{Name: "s2"},
		{Name: "C10"},
	}

	result, err := Reformat(records, ctx("Physical Education", "100"), Options{})
	require.NoError(t, err)
	assert.Empty(t, result.Notices)

	byName := map[string]types.OutputRow{}
	for _, row := range result.Rows {
		byName[row.ShortName] = row
	}

	assert.Equal(t, "PE-K-TU-K1", byName["K1"].ID)
	assert.Equal(t, "PE-K-TU", byName["K1"].ParentID)

	// Lowercase leaf names are uppercased in the identifier only; the
	// short name stays verbatim.
	assert.Equal(t, "PE-S-GPS-S2", byName["s2"].ID)
	assert.Equal(t, "PE-S-GPS", byName["s2"].ParentID)

	assert.Equal(t, "PE-C-AR-C10", byName["C10"].ID)
	assert.Equal(t, "PE-C-AR", byName["C10"].ParentID)
}

func TestReformat_LeafBeforeSubAreaIsNoticed(t *testing.T) {
	records := []types.InputRecord{
		{Name: "Physical Education"},
		{Name: "K1", Description: "arrives before any area row"},
	}

	result, err := Reformat(records, ctx("Physical Education", "100"), Options{})
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)
	require.Len(t, result.Notices, 1)
	assert.Contains(t, result.Notices[0], "K1")

	// The canonical parent identifier is still synthesized, so a later
	// manual fix only has to add the missing area rows.
	assert.Equal(t, "PE-K-TU-K1", result.Rows[1].ID)
	assert.Equal(t, "PE-K-TU", result.Rows[1].ParentID)
}

func TestReformat_GenericFallback(t *testing.T) {
	t.Run("orphaned at top level", func(t *testing.T) {
		records := []types.InputRecord{
			{Name: "Physical Education"},
			{Name: "Unrelated Topic"},
		}

		result, err := Reformat(records, ctx("Physical Education", "100"), Options{})
		require.NoError(t, err)
		require.Len(t, result.Rows, 2)
		require.Len(t, result.Notices, 1)

		row := result.Rows[1]
		assert.Equal(t, "", row.ParentID)
		assert.Equal(t, "PE-UT", row.ID)
		assert.Equal(t, "Unrelated Topic", row.ShortName)
	})

	t.Run("attached to known default sub-area", func(t *testing.T) {
		records := []types.InputRecord{
			{Name: "Physical Education"},
			{Name: "Knowledge"},
			{Name: "Theoretical Understanding"},
			{Name: "Kinematics of movement"},
		}

		result, err := Reformat(records, ctx("Physical Education", "100"), Options{})
		require.NoError(t, err)
		assert.Empty(t, result.Notices)

		row := result.Rows[3]
		assert.Equal(t, "PE-K-TU", row.ParentID)
		assert.Equal(t, "PE-K-TU-KOM", row.ID)
	})
}

func TestReformat_EmptyNamesSkipped(t *testing.T) {
	records := []types.InputRecord{
		{Name: "Physical Education"},
		{Name: "", Description: "stray description cell"},
		{Name: "Knowledge"},
	}

	result, err := Reformat(records, ctx("Physical Education", "100"), Options{})
	require.NoError(t, err)
	assert.Len(t, result.Rows, 2)
	assert.Equal(t, 1, result.Skipped)
}

func TestReformat_RowCountProperty(t *testing.T) {
	records := []types.InputRecord{
		{Name: "Physical Education"},
		{Name: "Knowledge"},
		{Name: ""},
		{Name: "Theoretical Understanding"},
		{Name: "K1"},
		{Name: ""},
	}

	result, err := Reformat(records, ctx("Physical Education", "100"), Options{})
	require.NoError(t, err)

	// Framework row plus one row per non-empty-named subsequent record.
	assert.Len(t, result.Rows, 1+3)
}

func TestReformat_ParentsPrecedeChildren(t *testing.T) {
	records := []types.InputRecord{
		{Name: "Dental Surgery"},
		{Name: "Knowledge"},
		{Name: "Theoretical Understanding"},
		{Name: "K1"},
		{Name: "K2"},
		{Name: "Skills"},
		{Name: "Generic Problem Solving"},
		{Name: "S1"},
		{Name: "Competence"},
		{Name: "Autonomy & Responsibility"},
		{Name: "C1"},
	}

	result, err := Reformat(records, ctx("Dental Surgery", "2299"), Options{})
	require.NoError(t, err)

	seen := map[string]bool{}
	for i, row := range result.Rows {
		if row.ParentID != "" {
			assert.True(t, seen[row.ParentID],
				"row %d (%s) references parent %s before it was emitted", i, row.ID, row.ParentID)
		}
		seen[row.ID] = true
	}
}

func TestReformat_PrefixOverrides(t *testing.T) {
	records := []types.InputRecord{
		{Name: "مخرجات برنامج التمريض"},
		{Name: "Knowledge"},
	}

	opts := Options{PrefixOverrides: map[string]string{"مخرجات برنامج التمريض": "NUR"}}
	result, err := Reformat(records, ctx("مخرجات برنامج التمريض", "100"), opts)
	require.NoError(t, err)

	assert.Equal(t, "NUR-K", result.Rows[1].ID)
}

func TestReformat_Deterministic(t *testing.T) {
	records := []types.InputRecord{
		{Name: "Physical Education", Description: "Program desc"},
		{Name: "Knowledge"},
		{Name: "Theoretical Understanding"},
		{Name: "K1", Description: "Outcome 1"},
		{Name: "Unrelated Topic"},
	}

	first, err := Reformat(records, ctx("Physical Education", "100"), Options{})
	require.NoError(t, err)
	second, err := Reformat(records, ctx("Physical Education", "100"), Options{})
	require.NoError(t, err)

	assert.Equal(t, first.Rows, second.Rows)
	assert.Equal(t, first.Notices, second.Notices)
}
