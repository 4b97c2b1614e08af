package reminder

import "github.com/SemenBogdanov/remindbot2/internal/domain"

// User-facing texts are in Russian, the working language of the chat.
const (
	headerNextBirthdays = "🎂 Следующие 5 дней рождений:"
	headerVacations     = "🏝 Отпуска:"

	sectionToday    = "🎉 Сегодня:"
	sectionTomorrow = "🎈 Завтра:"
	sectionSoon     = "📅 Уже скоро:"

	sectionVacationCurrent  = "🏖 Сейчас в отпуске:"
	sectionVacationSoon     = "🧳 Скоро в отпуск:"
	sectionVacationUpcoming = "📅 Отпуска в ближайший месяц:"

	footerDataAsOf = "📊 Данные актуальны на: "

	noBirthdayData  = "Нет данных о ближайших днях рождения."
	noVacationData  = "Нет данных об отпусках."
	emptyTableRow   = "Нет ближайших дней рождений"
	unknownSyncTime = "Неизвестно"

	tableColCategory = "Категория"
	tableColName     = "ФИО"
	tableColBirthday = "Дата рождения"
)

var categoryTitles = map[domain.Category]string{
	domain.CategoryToday:     "Сегодня",
	domain.CategoryTomorrow:  "Завтра",
	domain.CategoryNextWeek:  "На след. неделе",
	domain.CategoryNextMonth: "В след. месяце",
}
