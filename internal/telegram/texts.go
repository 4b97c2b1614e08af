package telegram

// User-facing texts in Russian.
const (
	startText = "👋 Я бот-напоминалка о днях рождения и отпусках.\n\n" +
		"Команды:\n" +
		"/birthdays — таблица ближайших дней рождений\n" +
		"/next5 — следующие 5 дней рождений (только для админа)\n" +
		"/vacations — отпуска (только для админа)"
	deniedText   = "У вас нет прав для выполнения этой команды."
	greetingText = "Бот напоминалка успешно запущен!"
)
