package portfolio

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleModel() *PortfolioModel {
	m := Default()
	m.Name = "Ada"
	m.Experiences = []Experience{{ID: 1, Role: "Engineer", Company: "Acme"}}
	m.Projects = []Project{{ID: 2, Title: "Tracer", Tags: []string{"go", "otel"}}}
	m.Skills = []SkillCategory{{Title: "Backend", Skills: []Skill{{Name: "Go", Icon: "go", Color: "#00ADD8"}}}}
	return m
}

func TestCloneIsStructurallyEqual(t *testing.T) {
	m := sampleModel()
	assert.Equal(t, m.Clone(), m.Clone())
}

func TestCloneSharesNothingWithOriginal(t *testing.T) {
	m := sampleModel()
	c := m.Clone()

	c.Name = "changed"
	c.Experiences[0].Role = "changed"
	c.Projects[0].Tags[0] = "changed"
	c.Skills[0].Skills[0].Name = "changed"

	assert.Equal(t, "Ada", m.Name)
	assert.Equal(t, "Engineer", m.Experiences[0].Role)
	assert.Equal(t, "go", m.Projects[0].Tags[0])
	assert.Equal(t, "Go", m.Skills[0].Skills[0].Name)
}

func TestModelJSONRoundTrip(t *testing.T) {
	m := sampleModel()
	payload, err := json.Marshal(m)
	require.NoError(t, err)

	loaded, err := MergeWithDefaults(payload)
	require.NoError(t, err)
	assert.Equal(t, m.Clone(), loaded)
}

func TestRecordIDAccessors(t *testing.T) {
	assert.Equal(t, int64(1), Experience{ID: 1}.RecordID())
	assert.Equal(t, int64(2), Education{ID: 2}.RecordID())
	assert.Equal(t, int64(3), Project{ID: 3}.RecordID())
	assert.Equal(t, int64(4), Certificate{ID: 4}.RecordID())
}

func TestSetFieldUnknownFieldIsRejected(t *testing.T) {
	p := Project{ID: 1, Title: "t"}
	updated, ok := p.SetField("nope", "x")
	assert.False(t, ok)
	assert.Equal(t, p, updated)
}

func TestSetFieldTagsParsesDelimitedString(t *testing.T) {
	p, ok := Project{ID: 1}.SetField("tags", "a, b")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, p.Tags)
}
