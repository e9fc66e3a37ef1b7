package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sameer-B786/portfolio/internal/domain/portfolio"
)

func experienceSeq() []portfolio.Experience {
	return []portfolio.Experience{
		{ID: 10, Role: "A", Company: "X"},
		{ID: 20, Role: "B", Company: "Y"},
	}
}

func TestAddPrepends(t *testing.T) {
	seq := experienceSeq()
	out := Add(seq, func() portfolio.Experience { return portfolio.Experience{ID: 30, Role: "C"} })

	require.Len(t, out, 3)
	assert.Equal(t, int64(30), out[0].ID)
	assert.Equal(t, int64(10), out[1].ID)
	// Input untouched.
	assert.Equal(t, experienceSeq(), seq)
}

func TestAddThenRemoveRestoresOriginal(t *testing.T) {
	seq := experienceSeq()
	grown := Add(seq, func() portfolio.Experience { return portfolio.Experience{ID: 30} })
	shrunk := Remove(grown, 30)

	assert.Equal(t, seq, shrunk)
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	seq := experienceSeq()
	assert.Equal(t, seq, Remove(seq, 999))
}

func TestUpdateTouchesExactlyOneField(t *testing.T) {
	seq := experienceSeq()
	out := Update(seq, 20, "role", "Staff")

	// Full structural diff: only seq[1].Role changed.
	expected := experienceSeq()
	expected[1].Role = "Staff"
	assert.Equal(t, expected, out)
	assert.Equal(t, experienceSeq(), seq)
}

func TestUpdateUnknownIDOrFieldIsNoOp(t *testing.T) {
	seq := experienceSeq()
	assert.Equal(t, seq, Update(seq, 999, "role", "Staff"))
	assert.Equal(t, seq, Update(seq, 10, "bogus", "v"))
}

func TestProjectLifecycleScenario(t *testing.T) {
	// Empty sequence → add → tag update from "a, b" → remove → empty again.
	var seq []portfolio.Project

	seq = Add(seq, func() portfolio.Project {
		return portfolio.Project{ID: 1001, Title: "New Project", Tags: []string{}}
	})
	require.Len(t, seq, 1)
	assert.Equal(t, int64(1001), seq[0].ID)

	seq = Update(seq, 1001, "tags", "a, b")
	assert.Equal(t, []string{"a", "b"}, seq[0].Tags)

	seq = Remove(seq, 1001)
	assert.Empty(t, seq)
}
