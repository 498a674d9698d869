package questionnaire

// Sections returns the questionnaire catalogue for a profile. The military
// profile carries the service-readiness and team sections; the civilian
// variant shares everything else so downstream logic never forks.
func Sections(militaryProfile bool) []Section {
	sections := []Section{
		{
			ID:    "personal_info",
			Title: "Личная информация",
			Fields: []Field{
				{ID: "full_name", Text: "ФИО", Type: FieldText, Required: true},
				{ID: "birth_date", Text: "Дата рождения", Type: FieldDate, Required: true},
				{ID: "birth_place", Text: "Место рождения", Type: FieldText, Required: true},
				{ID: "residence", Text: "Место жительства", Type: FieldText, Required: true},
				{ID: "residence_coliving", Text: "С кем в настоящее время проживаете и в течение какого времени", Type: FieldText, Required: true},
				{ID: "nationality", Text: "Национальность", Type: FieldText, Required: true},
				{ID: "marital_status", Text: "Семейное положение", Type: FieldSelect, Options: []string{"Холост", "Женат", "Разведен"}, Required: true},
				{ID: "education", Text: "Образование", Type: FieldSelect, Options: []string{"Среднее", "Среднее специальное", "Высшее", "Неполное высшее"}, Required: true},
				{ID: "social_media", Text: "Укажите ваши аккаунты в соц сетях", Type: FieldTextarea},
			},
		},
		{
			ID:    "family_info",
			Title: "Информация о семье",
			Fields: []Field{
				{ID: "family_completeness", Text: "Вы воспитывались в полной/неполной семье", Type: FieldSelect, Options: []string{"Полной", "Неполной"}, Required: true},
				{ID: "father_info", Text: "ФИО отца, возраст, место работы", Type: FieldTextarea},
				{ID: "father_relationship", Text: "Взаимоотношения с отцом", Type: FieldSelect, Options: []string{"Отличные", "Хорошие", "Удовлетворительные", "Плохие", "Отсутствуют"}},
				{ID: "mother_info", Text: "ФИО матери, возраст, место работы", Type: FieldTextarea},
				{ID: "mother_relationship", Text: "Взаимоотношения с матерью", Type: FieldSelect, Options: []string{"Отличные", "Хорошие", "Удовлетворительные", "Плохие", "Отсутствуют"}},
				{ID: "siblings", Text: "Братья и сестры (ФИО, возраст)", Type: FieldTextarea},
				{ID: "home_escapes", Text: "Бывали ли у вас случаи побегов из дома?", Type: FieldRadio, Options: []string{AnswerYes, AnswerNo}, Required: true},
				{ID: "family_suicides", Text: "Были ли самоубийства или суицидальные попытки у родственников", Type: FieldRadio, Options: []string{AnswerYes, AnswerNo}, Required: true},
				{ID: "personal_suicides", Text: "Имелись ли у вас в прошлом суицидальные попытки/мысли", Type: FieldRadio, Options: []string{AnswerYes, AnswerNo}, Required: true},
			},
		},
		{
			ID:    "health_history",
			Title: "Медицинская история",
			Fields: []Field{
				{ID: "family_alcoholism", Text: "Был ли в вашей семье алкоголизм", Type: FieldRadio, Options: []string{AnswerYes, AnswerNo}, Required: true},
				{ID: "family_drugs", Text: "Была ли в вашей семье наркомания", Type: FieldRadio, Options: []string{AnswerYes, AnswerNo}, Required: true},
				{ID: "family_criminal", Text: "Была ли в вашей семье судимость", Type: FieldRadio, Options: []string{AnswerYes, AnswerNo}, Required: true},
				{ID: "family_mental", Text: "Были ли в семье наследственные нервно-психические заболевания", Type: FieldRadio, Options: []string{AnswerYes, AnswerNo}, Required: true},
				{ID: "personal_alcoholism", Text: "Были ли у вас факты алкоголизма", Type: FieldRadio, Options: []string{AnswerYes, AnswerNo}, Required: true},
				{ID: "personal_drugs", Text: "Были ли у вас факты наркомании", Type: FieldRadio, Options: []string{AnswerYes, AnswerNo}, Required: true},
				{ID: "personal_criminal", Text: "Были ли у вас судимости", Type: FieldRadio, Options: []string{AnswerYes, AnswerNo}, Required: true},
				{ID: "personal_mental", Text: "Были ли у вас нервно-психические заболевания", Type: FieldRadio, Options: []string{AnswerYes, AnswerNo}, Required: true},
				{ID: "personal_headtrauma", Text: "Были ли у вас сотрясения мозга/травмы головы", Type: FieldRadio, Options: []string{AnswerYes, AnswerNo}, Required: true},
				{ID: "personal_gambling", Text: "Была ли у вас игромания", Type: FieldRadio, Options: []string{AnswerYes, AnswerNo}, Required: true},
				{ID: "hereditary_diseases", Text: "Имеете ли вы тяжёлые наследственные заболевания?", Type: FieldTextarea},
				{ID: "seizures", Text: "Были ли у ближайших родственников или у вас судорожные припадки", Type: FieldRadio, Options: []string{AnswerYes, AnswerNo}, Required: true},
			},
		},
		{
			ID:    "religion_lifestyle",
			Title: "Религия и образ жизни",
			Fields: []Field{
				{ID: "religion_type", Text: "Какую религию исповедуете", Type: FieldText},
				{ID: "religion_direction", Text: "Какое направление религии", Type: FieldText},
				{ID: "religion_teachers", Text: "Если вы слушаете духовных учителей, перечислите их", Type: FieldText},
				{ID: "religious_attendance", Text: "Как часто ходите в мечеть/церковь", Type: FieldSelect, Options: []string{
					AttendanceDaily, AttendanceSeveralWeekly, AttendanceWeekly,
					AttendanceMonthly, AttendanceRarely, AttendanceNever,
				}},
				{ID: "traditional_holidays", Text: "Празднуете ли вы традиционные праздники?", Type: FieldRadio, Options: []string{AnswerYes, AnswerNo}, Required: true},
				{ID: "social_events", Text: "Ходите ли на различные торжества (дни рождения, свадьбы)", Type: FieldRadio, Options: []string{AnswerYes, AnswerNo}, Required: true},
			},
		},
		{
			ID:    "financial_health",
			Title: "Финансы и здоровье",
			Fields: []Field{
				{ID: "betting", Text: "Делаете ли ставки в букмекерских конторах или онлайн", Type: FieldRadio, Options: []string{AnswerYes, AnswerNo}, Required: true},
				{ID: "credits", Text: "Есть ли у вас кредиты/займы (сколько, на какую сумму, кто оплачивает)", Type: FieldTextarea},
				{ID: "medical_examination", Text: "Полностью ли вы прошли обследование у врачей", Type: FieldRadio, Options: []string{AnswerYes, AnswerNo}, Required: true},
				{ID: "hidden_health_facts", Text: "Есть ли факты относительно вашего здоровья, о которых вы не сообщили", Type: FieldTextarea},
			},
		},
	}

	if militaryProfile {
		sections = append(sections, Section{
			ID:    "work_military",
			Title: "Работа и военная служба",
			Fields: []Field{
				{ID: "team_senior", Text: "Старший команды", Type: FieldText},
				{ID: "work_before_army", Text: "Кем работали до армии, сколько времени?", Type: FieldTextarea},
				{ID: "want_serve", Text: "Желаете ли вы проходить военную службу", Type: FieldRadio, Options: []string{AnswerYes, AnswerNo}, Required: true},
				{ID: "serve_reason", Text: "Причина (если не желаете служить)", Type: FieldTextarea},
				{ID: "service_difficulties", Text: "В чем для вас будет трудность воинской службы", Type: FieldMultiSelect, Options: []string{
					"Беспрекословное подчинение", "Физические нагрузки", "Удаленность от дома",
					"Высокая личная ответственность", "Преодоление собственных отрицательных привычек", "Другое",
				}, Required: true},
			},
		})
	}

	return sections
}
