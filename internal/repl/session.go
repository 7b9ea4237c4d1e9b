// Package repl implements the commands of the interactive calculator. The
// line editor lives in cmd/calc; a Session only sees complete lines.
package repl

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/DjordjeVuckovic/sci-calc/internal/catalog"
	"github.com/DjordjeVuckovic/sci-calc/internal/domain"
	"github.com/DjordjeVuckovic/sci-calc/internal/messages"
	"github.com/DjordjeVuckovic/sci-calc/internal/service"
	"github.com/DjordjeVuckovic/sci-calc/internal/token"
	"github.com/DjordjeVuckovic/sci-calc/internal/types/angle"
)

const (
	CommandPrefix = ":"

	defaultHistoryLines = 10
	resultPrefix        = "= "
)

// Commands lists every command, used for tab completion.
func Commands() []string {
	return []string{":deg", ":rad", ":history", ":recall", ":search", ":clear", ":settings", ":help", ":tips", ":quit"}
}

// Completions lists what tab completion offers at the start of a line:
// every command and every function name with its opening parenthesis.
func Completions() []string {
	out := Commands()
	for _, fn := range token.Functions() {
		out = append(out, fn.String()+"(")
	}
	return out
}

type Session struct {
	svc *service.Calculator
	out io.Writer
	now func() time.Time

	recalled string
}

func NewSession(svc *service.Calculator, out io.Writer) *Session {
	return &Session{svc: svc, out: out, now: time.Now}
}

// TakeRecalled returns the expression picked by :recall, once. The line
// editor offers it as the next input.
func (s *Session) TakeRecalled() string {
	r := s.recalled
	s.recalled = ""
	return r
}

func (s *Session) t(id messages.ID, args ...any) string {
	return messages.T(s.svc.Locale(), id, args...)
}

// Greet prints the welcome line, a hint on first launch and the daily tip
// once per day.
func (s *Session) Greet(ctx context.Context) error {
	st, err := s.svc.Settings(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, s.t(messages.Welcome, st.AngleUnit.DisplayName()))

	first, err := s.svc.CompleteFirstLaunch(ctx)
	if err != nil {
		return err
	}
	if first {
		fmt.Fprintln(s.out, s.t(messages.FirstLaunch))
	}

	tip, ok, err := s.svc.DailyTip(ctx, s.now())
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintln(s.out, s.t(messages.DailyTip, tip.Title, tip.Content))
	}
	return nil
}

// Prompt shows the current angle unit.
func (s *Session) Prompt(ctx context.Context) string {
	st, err := s.svc.Settings(ctx)
	if err != nil {
		return "> "
	}
	return st.AngleUnit.DisplayName() + "> "
}

// Handle runs one input line and reports whether the session should end.
func (s *Session) Handle(ctx context.Context, line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	if strings.HasPrefix(line, CommandPrefix) {
		return s.command(ctx, line)
	}
	return false, s.calculate(ctx, line)
}

func (s *Session) calculate(ctx context.Context, expression string) error {
	out, err := s.svc.Calculate(ctx, expression, nil)
	if err != nil && out.Expression == "" {
		return err
	}
	if out.Failed() {
		fmt.Fprintln(s.out, out.Message)
	} else {
		fmt.Fprintln(s.out, resultPrefix+out.Formatted)
	}
	return err
}

func (s *Session) command(ctx context.Context, line string) (bool, error) {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case ":q", ":quit", ":exit":
		fmt.Fprintln(s.out, s.t(messages.Goodbye))
		return true, nil
	case ":deg":
		return false, s.setUnit(ctx, angle.Degree)
	case ":rad":
		return false, s.setUnit(ctx, angle.Radian)
	case ":history":
		return false, s.history(ctx, arg)
	case ":recall":
		return false, s.recall(ctx, arg)
	case ":search":
		return false, s.search(ctx, arg)
	case ":clear":
		if err := s.svc.ClearHistory(ctx); err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, s.t(messages.HistoryCleared))
		return false, nil
	case ":settings":
		return false, s.settings(ctx)
	case ":help":
		s.help(arg)
		return false, nil
	case ":tips":
		for _, tip := range s.svc.Tips() {
			fmt.Fprintf(s.out, "- %s: %s\n", tip.Title, tip.Content)
		}
		return false, nil
	default:
		fmt.Fprintln(s.out, s.t(messages.UnknownCommand, name))
		return false, nil
	}
}

func (s *Session) setUnit(ctx context.Context, unit angle.Unit) error {
	st, err := s.svc.SetAngleUnit(ctx, unit)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, s.t(messages.AngleUnitSet, st.AngleUnit.DisplayName()))
	return nil
}

func (s *Session) history(ctx context.Context, arg string) error {
	limit := defaultHistoryLines
	if arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			fmt.Fprintln(s.out, "usage: :history [n]")
			return nil
		}
		limit = n
	}

	entries, err := s.svc.RecentHistory(ctx, limit)
	if err != nil {
		return err
	}
	return s.printEntries(entries)
}

// recall picks the n-th most recent entry, 1 being the newest.
func (s *Session) recall(ctx context.Context, arg string) error {
	n := 1
	if arg != "" {
		v, err := strconv.Atoi(arg)
		if err != nil || v < 1 {
			fmt.Fprintln(s.out, "usage: :recall [n]")
			return nil
		}
		n = v
	}

	entries, err := s.svc.RecentHistory(ctx, n)
	if err != nil {
		return err
	}
	if len(entries) < n {
		fmt.Fprintln(s.out, s.t(messages.NoSuchEntry, n))
		return nil
	}

	entry := entries[n-1]
	s.recalled = entry.Expression
	fmt.Fprintln(s.out, s.t(messages.Recalled, entry.ReusableExpression()))
	return nil
}

func (s *Session) search(ctx context.Context, text string) error {
	if text == "" {
		fmt.Fprintln(s.out, "usage: :search text")
		return nil
	}
	entries, err := s.svc.SearchHistory(ctx, text, defaultHistoryLines)
	if err != nil {
		return err
	}
	return s.printEntries(entries)
}

func (s *Session) settings(ctx context.Context) error {
	st, err := s.svc.Settings(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "angle unit\t%s\n", st.AngleUnit.DisplayName())
	fmt.Fprintf(w, "decimal places\t%d\n", st.DecimalPlaces)
	fmt.Fprintf(w, "scientific notation\t%t\n", st.UseScientificNotation)
	fmt.Fprintf(w, "save history\t%t\n", st.AutoSaveHistory)
	fmt.Fprintf(w, "max history\t%d\n", st.MaxHistoryCount)
	return w.Flush()
}

func (s *Session) help(topic string) {
	if topic != "" {
		f, ok := catalog.Lookup(topic)
		if !ok {
			fmt.Fprintln(s.out, s.t(messages.UnknownFunction))
			return
		}
		fmt.Fprintf(s.out, "%s (%s): %s\n  usage:   %s\n  example: %s\n", f.Name, f.Symbol, f.Description, f.Usage, f.Example)
		return
	}

	fmt.Fprintln(s.out, "Commands: :deg :rad :history [n] :recall [n] :search text :clear :settings :tips :help [name] :quit")
	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	for _, c := range catalog.Categories() {
		names := make([]string, 0)
		for _, f := range catalog.ByCategory(c) {
			names = append(names, f.Name)
		}
		fmt.Fprintf(w, "%s\t%s\n", c, strings.Join(names, " "))
	}
	_ = w.Flush()
}

func (s *Session) printEntries(entries []domain.HistoryEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(s.out, s.t(messages.HistoryEmpty))
		return nil
	}
	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.AngleUnit.DisplayName(),
			e.Expression,
			e.FormattedResult())
	}
	return w.Flush()
}
