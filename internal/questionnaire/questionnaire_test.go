package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswersAccessors(t *testing.T) {
	a := Answers{
		"personal_suicides": AnswerYes,
		"want_serve":        AnswerNo,
		"credits":           "  ",
		"religion_teachers": "имам Х",
	}

	assert.True(t, a.Yes("personal_suicides"))
	assert.False(t, a.Yes("want_serve"))
	assert.True(t, a.No("want_serve"))
	assert.False(t, a.NonEmpty("credits"))
	assert.True(t, a.NonEmpty("religion_teachers"))
	assert.False(t, a.Yes("never_answered"))
}

func TestClone(t *testing.T) {
	a := Answers{"full_name": "Иванов"}
	b := a.Clone()
	b["full_name"] = "Петров"
	assert.Equal(t, "Иванов", a["full_name"])
}

func TestSectionsMilitaryOnly(t *testing.T) {
	military := Sections(true)
	civilian := Sections(false)

	ids := func(sections []Section) []string {
		var out []string
		for _, s := range sections {
			out = append(out, s.ID)
		}
		return out
	}

	assert.Contains(t, ids(military), "work_military")
	assert.NotContains(t, ids(civilian), "work_military")
}

func TestMissingRequired(t *testing.T) {
	sections := []Section{{
		ID: "s",
		Fields: []Field{
			{ID: "a", Required: true},
			{ID: "b", Required: false},
			{ID: "c", Required: true},
		},
	}}

	missing := MissingRequired(sections, Answers{"c": "x"})
	assert.Equal(t, []string{"a"}, missing)
}
