package bank

// Catalogue data. Item texts come from the source screening methodology:
// Buss-Perry aggression, Russell isolation/deprivation, Beck somatic
// depression, NUDS anxiety, nervous-psychic stability, military adaptation,
// and a sincerity validity check. Texts are kept verbatim in Russian; ids are
// stable and referenced by stored sessions.
type item struct {
	id   string
	text string
}

var scaleOrder = []ScaleID{
	ScaleAggression,
	ScaleIsolation,
	ScaleSomatic,
	ScaleAnxiety,
	ScaleStability,
	ScaleMilitary,
	ScaleSincerity,
}

var scaleNames = map[ScaleID]string{
	ScaleAggression: "Шкала агрессии (Басса-Перри)",
	ScaleIsolation:  "Шкала изоляции/депривации (Д. Рассел)",
	ScaleSomatic:    "Шкала соматической депрессии (Бека)",
	ScaleAnxiety:    "Шкала тревожности и депрессии (NUDS)",
	ScaleStability:  "Шкала нервно-психической устойчивости",
	ScaleMilitary:   "Шкала военной адаптации",
	ScaleSincerity:  "Шкала искренности",
}

var screeningItems = map[ScaleID][]item{
	ScaleAggression: {
		{"ag1", "Я раздражаюсь, когда у меня что-то не получается."},
		{"ag2", "Иногда, когда я неважно себя чувствую, я бываю раздражительным."},
		{"ag3", "Некоторые мои друзья считают, что я вспыльчив."},
	},
	ScaleIsolation: {
		{"is1", "Мне трудно заводить друзей."},
		{"is2", "Мне не хватает общения."},
		{"is3", "Мне не с кем поговорить."},
	},
	ScaleSomatic: {
		{"som1", "Иногда у меня бывает ускоренное сердцебиение"},
		{"som2", "Иногда я чувствую, что я не могу контролировать свои мысли"},
		{"som3", "Иногда у меня бывают желудочно-кишечные расстройства"},
	},
	ScaleAnxiety: {
		{"anx1", "Я испытываю напряженность, мне не по себе"},
		{"anx2", "Приступы плохого настроения у меня бывают редко."},
		{"anx3", "Иногда совершенно безо всякой причины у меня вдруг наступает период необычайной веселости."},
	},
	ScaleStability: {
		{"stab1", "Я могу получить удовольствие от хорошей книги, радио- или телепрограммы"},
		{"stab2", "Бывало, что при обсуждении некоторых вопросов я, особенно не задумываясь, соглашался с мнением других."},
		{"stab3", "У меня часто бывают подъемы и спады настроения."},
	},
	ScaleMilitary: {
		{"mil1", "Мне трудно выполнять приказы без объяснения причин."},
		{"mil2", "Я боюсь физических нагрузок и испытаний."},
		{"mil3", "Мне сложно находиться далеко от дома длительное время."},
	},
	ScaleSincerity: {
		{"sin1", "Бывало, что я говорил о вещах, в которых не разбираюсь."},
		{"sin2", "Бывает, что я сержусь."},
		{"sin3", "Иногда я говорю неправду."},
	},
}

var mediumItems = map[ScaleID][]item{
	ScaleAggression: {
		{"ag_med1", "Я дерусь чаще, чем окружающие."},
		{"ag_med2", "Если кто-то ударит меня, я дам сдачи."},
		{"ag_med3", "Иногда я выхожу из себя без особой причины."},
		{"ag_med4", "Мне трудно сдерживать раздражение."},
		{"ag_med5", "Иногда я настолько выходил из себя, что ломал вещи."},
	},
	ScaleIsolation: {
		{"is_med1", "Счастливей всего я бываю, когда я один."},
		{"is_med2", "Если бы люди не были настроены против меня, я достиг бы в жизни гораздо большего."},
		{"is_med3", "Иногда я бываю уверен, что другие люди знают, о чем я думаю."},
		{"is_med4", "Мне кажется, что по отношению именно ко мне особенно часто поступают несправедливо."},
		{"is_med5", "Часто, даже когда все складывается для меня хорошо, я чувствую, что мне все безразлично."},
		{"is_med6", "Мне кажется, что я все чувствую более остро, чем другие."},
	},
	ScaleSomatic: {
		{"som_med1", "Бывало, что я целыми днями или даже неделями ничего не мог делать, потому что никак не мог заставить себя взяться за работу."},
		{"som_med2", "Иногда я чувствую, что у меня удушье"},
		{"som_med3", "Иногда я чувствую, что у меня затрудненное дыхание"},
		{"som_med4", "Когда я пытаюсь что-то сделать, то часто замечаю, что у меня дрожат руки."},
		{"som_med5", "Иногда я чувствую испуг"},
		{"som_med6", "Беспокойные мысли крутятся у меня в голове"},
	},
	ScaleAnxiety: {
		{"anx_med1", "У меня бывает внезапное чувство паники"},
		{"anx_med2", "Я испытываю внутреннее напряжение или дрожь"},
		{"anx_med3", "Я испытываю неусидчивость, словно мне постоянно нужно двигаться"},
		{"anx_med4", "То, что приносило мне большое удовольствие, и сейчас вызывает у меня такое же чувство"},
		{"anx_med5", "Работа, требующая пристального внимания, мне нравится."},
	},
	ScaleStability: {
		{"stab_med1", "Определенно судьба не благосклонна ко мне."},
		{"stab_med2", "Я легко теряю терпение с людьми."},
		{"stab_med3", "Люди проявляют ко мне столько сочувствия и симпатии, сколько я заслуживаю."},
		{"stab_med4", "Иногда мне в голову приходят такие нехорошие мысли, что лучше о них никому не рассказывать."},
		{"stab_med5", "Должен признать, что временами я волнуюсь из-за пустяков."},
		{"stab_med6", "Я часто предаюсь грустным размышлениям."},
		{"stab_med7", "Я человек нервный и легковозбудимый."},
	},
	ScaleMilitary: {
		{"mil_med1", "Мне трудно принимать решения в стрессовых ситуациях."},
		{"mil_med2", "Я плохо переношу критику от старших."},
		{"mil_med3", "Мне сложно работать в команде."},
		{"mil_med4", "Я избегаю ответственности за других людей."},
		{"mil_med5", "Мне трудно соблюдать строгий распорядок дня."},
	},
}

var fullItems = map[ScaleID][]item{
	ScaleAggression: {
		{"ag_full1", "Иногда я не могу сдержать желание ударить другого человека."},
		{"ag_full2", "Я быстро вспыхиваю, но и быстро остываю."},
		{"ag_full3", "Бывает, что я просто схожу с ума от ревности."},
		{"ag_full4", "Если меня спровоцировать, я могу ударить другого человека."},
		{"ag_full5", "Иногда я не могу сдержать желание ударить другого человека."},
		{"ag_full6", "Временами мне кажется, что жизнь мне что-то недодала."},
		{"ag_full7", "Я легко теряю терпение с людьми."},
		{"ag_full8", "Иногда я чувствую, что вот-вот взорвусь."},
		{"ag_full9", "Другим постоянно везет."},
		{"ag_full10", "Я дерусь чаще, чем окружающие."},
	},
	ScaleIsolation: {
		{"is_high1", "Я несчастлив, занимаясь столькими вещами в одиночку."},
		{"is_high2", "Я чувствую себя изолированным от других."},
		{"is_high3", "Я чувствую себя покинутым."},
		{"is_high4", "Я впечатлительнее большинства других людей."},
		{"is_high5", "Я несчастен, будучи таким отверженным."},
		{"is_high6", "Я чувствую себя совершенно одиноким."},
	},
	ScaleSomatic: {
		{"som_high1", "Голова у меня болит часто."},
		{"som_high2", "Иногда мой слух настолько обостряется, что это мне даже мешает."},
		{"som_high3", "Иногда я чувствую, что у меня затрудненное дыхание"},
		{"som_high4", "Иногда я чувствую страх смерти"},
		{"som_high5", "Раз в неделю или чаще я бываю возбужденным и взволнованным."},
		{"som_high6", "Иногда я принимаю валериану, элениум или другие успокаивающие средства."},
	},
	ScaleAnxiety: {
		{"anx_high1", "Я испытываю страх, кажется, будто что-то ужасное может вот-вот случиться"},
		{"anx_high2", "Некоторые вещи настолько меня волнуют, что мне даже говорить о них трудно."},
		{"anx_high3", "Иногда меня подводят нервы"},
		{"anx_high4", "Думаю, что я человек обреченный."},
		{"anx_high5", "Временами я бываю совершенно уверен в своей никчемности."},
	},
	ScaleStability: {
		{"stab_high1", "Теперь мне трудно надеяться на то, что я чего-нибудь добьюсь в жизни."},
		{"stab_high2", "Я легко теряю терпение с людьми."},
		{"stab_high3", "У меня бывали периоды, когда я что-то делал, а потом не знал, что именно я делал."},
		{"stab_high4", "Иногда у меня бывает чувство, что передо мной нагромоздилось столько трудностей, что одолеть их просто невозможно."},
		{"stab_high5", "Если в моих неудачах кто-то виноват, я не оставляю его безнаказанным."},
		{"stab_high6", "Мне очень трудно приспособиться к новым условиям жизни, работы или учебы."},
		{"stab_high7", "Иногда я чувствую, что близок к нервному срыву."},
	},
	ScaleMilitary: {
		{"mil_high1", "Мне трудно принимать решения в стрессовых ситуациях."},
		{"mil_high2", "Я плохо переношу критику от старших."},
		{"mil_high3", "Мне сложно работать в команде."},
		{"mil_high4", "Я избегаю ответственности за других людей."},
		{"mil_high5", "Мне трудно соблюдать строгий распорядок дня."},
	},
}
