package reminder

import (
	"context"
	"fmt"
	"html"
	"sort"

	"go.uber.org/zap"

	"github.com/SemenBogdanov/remindbot2/internal/domain"
	"github.com/SemenBogdanov/remindbot2/internal/store"
)

// Notifier is the outbound notification channel.
type Notifier interface {
	SendText(chatID int64, text string, parseMode string) error
	SendPhoto(chatID int64, image []byte) error
}

// TableRenderer renders the table view to an image. Optional; without it
// the table is sent as monospace text.
type TableRenderer interface {
	Render(head []string, rows [][]string) ([]byte, error)
}

// ViewOptions consolidates the formatting knobs of the table view.
type ViewOptions struct {
	AllEmployees bool
	NameWidth    int // rune wrap width for the name column, 0 disables
	SectionOrder []domain.Category
}

// DefaultViewOptions returns the options the daily dispatch uses.
func DefaultViewOptions() ViewOptions {
	return ViewOptions{
		AllEmployees: false,
		NameWidth:    50,
		SectionOrder: []domain.Category{
			domain.CategoryToday,
			domain.CategoryTomorrow,
			domain.CategoryNextWeek,
			domain.CategoryNextMonth,
		},
	}
}

const defaultTopK = 5

// Service runs one full dispatch: fetch records, bucket and rank them,
// format, send. It holds no mutable state, so concurrent invocations
// from the scheduler and the command router are safe.
type Service struct {
	log      *zap.Logger
	repo     store.Repo
	notify   Notifier
	clock    domain.Clock
	renderer TableRenderer
	windows  domain.Windows
	view     ViewOptions
	topK     int
}

// NewService creates a Service. renderer may be nil.
func NewService(log *zap.Logger, repo store.Repo, notify Notifier, clock domain.Clock, renderer TableRenderer) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		notify:   notify,
		clock:    clock,
		renderer: renderer,
		windows:  domain.DefaultWindows(),
		view:     DefaultViewOptions(),
		topK:     defaultTopK,
	}
}

// freshness returns the "data as of" timestamp, or a stub when the
// source is unreachable.
func (s *Service) freshness(ctx context.Context) string {
	ts, err := s.repo.LastSyncTime(ctx)
	if err != nil {
		s.log.Warn("last sync time unavailable", zap.Error(err))
		return unknownSyncTime
	}
	return ts
}

// fetchBirthdays pulls the latest snapshot; a fetch failure degrades to
// an empty batch so the views render an explicit "no data" answer.
func (s *Service) fetchBirthdays(ctx context.Context) []domain.EmployeeRecord {
	recs, err := s.repo.ListBirthdays(ctx, s.view.AllEmployees)
	if err != nil {
		s.log.Error("fetch birthdays failed", zap.Error(err))
		return nil
	}
	return recs
}

// SendBirthdayTable sends the categorized table view to the chat.
func (s *Service) SendBirthdayTable(ctx context.Context, chatID int64) error {
	type tableRow struct {
		pos      int
		category string
		name     string
		birthday string
	}

	order := make(map[domain.Category]int, len(s.view.SectionOrder))
	for i, c := range s.view.SectionOrder {
		order[c] = i
	}

	today := s.clock.Now()
	var tRows []tableRow
	for _, rec := range s.fetchBirthdays(ctx) {
		if !rec.Active || rec.Birthday == "" {
			continue
		}
		day, month, err := domain.ParseBirthday(rec.Birthday)
		if err != nil {
			s.log.Warn("skipping malformed birthday",
				zap.String("employee", rec.FullName),
				zap.String("birthday", rec.Birthday),
			)
			continue
		}
		cat, err := domain.Categorize(day, month, today)
		if err != nil {
			s.log.Warn("skipping birthday without occurrence",
				zap.String("employee", rec.FullName),
				zap.String("birthday", rec.Birthday),
			)
			continue
		}
		pos, ok := order[cat]
		if !ok {
			continue
		}
		tRows = append(tRows, tableRow{
			pos:      pos,
			category: categoryTitles[cat],
			name:     wrapText(rec.FullName, s.view.NameWidth),
			birthday: rec.Birthday,
		})
	}
	sort.SliceStable(tRows, func(i, j int) bool { return tRows[i].pos < tRows[j].pos })

	rows := make([][]string, 0, len(tRows))
	for _, r := range tRows {
		rows = append(rows, []string{r.category, r.name, r.birthday})
	}
	if len(rows) == 0 {
		rows = append(rows, []string{"-", emptyTableRow, "-"})
	}
	head := []string{tableColCategory, tableColName, tableColBirthday}

	if s.renderer != nil {
		img, err := s.renderer.Render(head, rows)
		if err == nil {
			return s.notify.SendPhoto(chatID, img)
		}
		s.log.Warn("table render failed, sending text", zap.Error(err))
	}
	text := "<pre>" + html.EscapeString(renderTextTable(head, rows)) + "</pre>"
	return s.notify.SendText(chatID, text, "HTML")
}

// SendUpcomingBirthdays sends the tie-inclusive top-5 upcoming view.
func (s *Service) SendUpcomingBirthdays(ctx context.Context, chatID int64) error {
	today := s.clock.Now()
	var items []domain.Upcoming
	for _, rec := range s.fetchBirthdays(ctx) {
		if !rec.Active || rec.Birthday == "" {
			continue
		}
		day, month, err := domain.ParseBirthday(rec.Birthday)
		if err != nil {
			s.log.Warn("skipping malformed birthday",
				zap.String("employee", rec.FullName),
				zap.String("birthday", rec.Birthday),
			)
			continue
		}
		days, err := domain.DaysUntil(day, month, today)
		if err != nil {
			s.log.Warn("skipping birthday without occurrence",
				zap.String("employee", rec.FullName),
				zap.String("birthday", rec.Birthday),
			)
			continue
		}
		items = append(items, domain.Upcoming{Record: rec, DaysUntil: days})
	}

	top := domain.TopUpcoming(items, s.topK)
	if len(top) == 0 {
		return s.notify.SendText(chatID, noBirthdayData, "")
	}

	var todayLines, tomorrowLines, laterLines []string
	for _, it := range top {
		line := fmt.Sprintf(" - %s (%s)", it.Record.FullName, it.Record.Birthday)
		switch it.DaysUntil {
		case 0:
			todayLines = append(todayLines, line)
		case 1:
			tomorrowLines = append(tomorrowLines, line)
		default:
			laterLines = append(laterLines, fmt.Sprintf("%s - через %d дней", line, it.DaysUntil))
		}
	}

	body := RenderMessage(headerNextBirthdays,
		[]Section{
			{Title: sectionToday, Lines: todayLines},
			{Title: sectionTomorrow, Lines: tomorrowLines},
			{Title: sectionSoon, Lines: laterLines},
		},
		footerDataAsOf+s.freshness(ctx),
	)
	return s.notify.SendText(chatID, body, "")
}

// SendVacations sends current and upcoming vacations with compacted names.
func (s *Service) SendVacations(ctx context.Context, chatID int64) error {
	recs, err := s.repo.ListVacations(ctx)
	if err != nil {
		s.log.Error("fetch vacations failed", zap.Error(err))
		recs = nil
	}

	today := s.clock.Now()
	var current, soon, upcoming []string
	for _, rec := range recs {
		phase, days := domain.VacationPhase(rec.Start, rec.End, today, s.windows)
		name := domain.CompactName(rec.FullName)
		switch phase {
		case domain.PhaseCurrent:
			current = append(current, fmt.Sprintf(" - %s — до %s (осталось %d дн.)", name, rec.End.Format("02.01"), days))
		case domain.PhaseStartingSoon:
			soon = append(soon, fmt.Sprintf(" - %s — с %s (через %d дн.)", name, rec.Start.Format("02.01"), days))
		case domain.PhaseUpcoming:
			upcoming = append(upcoming, fmt.Sprintf(" - %s — с %s (через %d дн.)", name, rec.Start.Format("02.01"), days))
		}
	}

	if len(current)+len(soon)+len(upcoming) == 0 {
		return s.notify.SendText(chatID, noVacationData, "")
	}

	body := RenderMessage(headerVacations,
		[]Section{
			{Title: sectionVacationCurrent, Lines: current},
			{Title: sectionVacationSoon, Lines: soon},
			{Title: sectionVacationUpcoming, Lines: upcoming},
		},
		footerDataAsOf+s.freshness(ctx),
	)
	return s.notify.SendText(chatID, body, "")
}
