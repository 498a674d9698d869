// Package questionnaire defines the biographical questionnaire catalogue and
// the flat answer record kept on a session. The presentation layer renders
// the sections; the synthesizer reads individual keys through the typed
// accessors here.
package questionnaire

import "strings"

// Answer literals used by the radio/select fields. The catalogue is Russian;
// yes/no flags are stored verbatim.
const (
	AnswerYes = "Да"
	AnswerNo  = "Нет"
)

// Attendance options for the religious_attendance field, in catalogue order.
const (
	AttendanceDaily         = "Каждый день"
	AttendanceSeveralWeekly = "Несколько раз в неделю"
	AttendanceWeekly        = "Раз в неделю"
	AttendanceMonthly       = "Несколько раз в месяц"
	AttendanceRarely        = "Редко"
	AttendanceNever         = "Никогда"
)

// FieldType tells the presentation layer what control to render.
type FieldType string

const (
	FieldText        FieldType = "text"
	FieldTextarea    FieldType = "textarea"
	FieldDate        FieldType = "date"
	FieldNumber      FieldType = "number"
	FieldRadio       FieldType = "radio"
	FieldSelect      FieldType = "select"
	FieldMultiSelect FieldType = "multiselect"
	FieldSlider      FieldType = "slider"
)

// Field is one questionnaire prompt.
type Field struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Type     FieldType `json:"type"`
	Options  []string  `json:"options,omitempty"`
	Required bool      `json:"required"`
}

// Section groups related fields for rendering.
type Section struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// Answers is the flat key→value record of biographical responses. It grows
// monotonically within a session and survives a restart when the participant
// chooses to keep it.
type Answers map[string]string

// Get returns the raw answer for a key, empty when unanswered.
func (a Answers) Get(key string) string { return a[key] }

// Yes reports whether the key was answered affirmatively.
func (a Answers) Yes(key string) bool { return a[key] == AnswerYes }

// No reports whether the key was answered negatively.
func (a Answers) No(key string) bool { return a[key] == AnswerNo }

// NonEmpty reports whether a free-text key holds a non-blank answer.
func (a Answers) NonEmpty(key string) bool {
	return strings.TrimSpace(a[key]) != ""
}

// Clone returns an independent copy, for restart-with-preserve.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// MissingRequired lists required fields of the given sections that have no
// answer yet, in catalogue order.
func MissingRequired(sections []Section, a Answers) []string {
	var missing []string
	for _, sec := range sections {
		for _, f := range sec.Fields {
			if f.Required && !a.NonEmpty(f.ID) {
				missing = append(missing, f.ID)
			}
		}
	}
	return missing
}
