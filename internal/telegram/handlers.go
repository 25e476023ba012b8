package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"alpha-x/internal/database"
	"alpha-x/internal/insight"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handlers.go - Telegram bot command handlers

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	message := `🎯 Alpha-X Insights

Your tracker is connected!

Commands:
/weekly [n] - weekly report (n weeks back, default 0)
/monthly - detailed monthly report
/log - record today's answers
/help - command reference

Example:
/log coding=yes workout=no sleep=7 marriage=good`

	b.SendMessageOrLogError(message)
}

func (b *Bot) handleWeekly(msg *tgbotapi.Message) {
	weeksAgo := 0
	if arg := strings.TrimSpace(strings.TrimPrefix(msg.Text, "/weekly")); arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			b.SendMessageOrLogError("❌ Format: /weekly [weeks back, 0 = current]")
			return
		}
		weeksAgo = n
	}

	report, err := b.services.Report.WeeklyReport(weeksAgo)
	if err != nil {
		b.SendMessageOrLogError("❌ Could not build the weekly report")
		return
	}

	if err := b.SendReport(report); err != nil {
		b.SendMessageOrLogError("❌ Could not deliver the weekly report")
	}
}

func (b *Bot) handleMonthly(msg *tgbotapi.Message) {
	report, err := b.services.Report.MonthlyReport()
	if err != nil {
		b.SendMessageOrLogError("❌ Could not build the monthly report")
		return
	}

	if err := b.SendReport(report); err != nil {
		b.SendMessageOrLogError("❌ Could not deliver the monthly report")
	}
}

// logAnswers maps the short /log values to engine labels, per field.
var logAnswers = map[string]map[string]insight.Label{
	"coding": {
		"yes": insight.Yes,
		"no":  insight.No,
	},
	"focus": {
		"sharp":     insight.FocusSharp,
		"multitask": insight.FocusMultitask,
	},
	"career": {
		"goal": insight.CareerGoalMet,
		"lazy": insight.CareerLazy,
	},
	"protein": {
		"yes": insight.ProteinMet,
		"no":  insight.ProteinMissed,
	},
	"workout": {
		"yes": insight.Yes,
		"no":  insight.No,
	},
	"sunshine": {
		"yes": insight.Yes,
		"no":  insight.No,
	},
	"marriage": {
		"good":    insight.MarriageGood,
		"okayish": insight.MarriageOkayish,
		"bad":     insight.MarriageNotGood,
	},
	"performance": {
		"better": insight.PerfBetter,
		"same":   insight.PerfSame,
		"worse":  insight.PerfWorse,
	},
	"happiness": {
		"happy":   insight.HappyYes,
		"neutral": insight.HappyNeutral,
		"bad":     insight.HappyBad,
	},
	"day": {
		"enjoyed":        insight.DayHardEnjoyed,
		"burnout":        insight.DayHardBurnedOut,
		"procrastinated": insight.DayProcrastinate,
	},
}

func (b *Bot) handleLogUsage(msg *tgbotapi.Message) {
	message := `📝 Record today's answers

Format:
/log key=value [key=value ...]

Keys:
coding=yes|no
focus=sharp|multitask
career=goal|lazy
protein=yes|no
workout=yes|no
sleep=[hours]
sunshine=yes|no
marriage=good|okayish|bad
performance=better|same|worse
happiness=happy|neutral|bad
day=enjoyed|burnout|procrastinated

Example:
/log coding=yes focus=sharp sleep=7 marriage=good

Re-logging a day updates only the keys you pass;
earlier answers for that day are kept.`

	b.SendMessageOrLogError(message)
}

func (b *Bot) handleLog(msg *tgbotapi.Message) {
	text := strings.TrimPrefix(msg.Text, "/log ")

	rec := insight.DailyRecord{Timestamp: time.Now().UTC()}
	logged := 0

	for _, pair := range strings.Fields(text) {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			b.SendMessageOrLogError(fmt.Sprintf("❌ Bad pair %q. Use key=value, see /log", pair))
			return
		}
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.ToLower(strings.TrimSpace(parts[1]))

		if key == "sleep" {
			rec.Sleep = value + " hrs"
			logged++
			continue
		}

		label, ok := logAnswers[key][value]
		if !ok {
			b.SendMessageOrLogError(fmt.Sprintf("❌ Unknown answer %q for %q. See /log", value, key))
			return
		}

		switch key {
		case "coding":
			rec.Coding = label
		case "focus":
			rec.Focus = label
		case "career":
			rec.CareerFocus = label
		case "protein":
			rec.Protein = label
		case "workout":
			rec.Workout = label
		case "sunshine":
			rec.Sunshine = label
		case "marriage":
			rec.Marriage = label
		case "performance":
			rec.Performance = label
		case "happiness":
			rec.Happiness = label
		case "day":
			rec.DayOverview = label
		}
		logged++
	}

	if logged == 0 {
		b.handleLogUsage(msg)
		return
	}

	repo := database.NewRepository(b.db)
	if err := repo.MergeEntry(rec); err != nil {
		b.SendMessageOrLogError("❌ Could not save today's entry")
		return
	}

	b.SendMessageOrLogError(fmt.Sprintf(
		"✅ Logged %d answer(s) for %s",
		logged, rec.Timestamp.Format("2006-01-02"),
	))
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) {
	message := `📚 Commands

Reports:
/weekly - report for the current week
/weekly 1 - report for last week
/monthly - trailing 30 days with trends

Tracking:
/log key=value ... - record today's answers
Example: /log coding=yes sleep=7 workout=no

Reports cover career, health & fitness, marriage and
overall performance, with focus areas for next week.`

	b.SendMessageOrLogError(message)
}
