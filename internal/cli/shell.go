// Package cli provides a line-based shell over the restaurant service.
//
// Each input line is one command followed by whitespace-separated arguments.
// Output is written in the configured locale; logs go to the shell logger.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/guttosm/restaurant-service/internal/domain/model"
	"github.com/guttosm/restaurant-service/internal/i18n"
	"github.com/guttosm/restaurant-service/internal/logger"
	"github.com/guttosm/restaurant-service/internal/service"
	"github.com/rs/zerolog"
)

var (
	// errUsage reports arguments that do not match the command usage.
	errUsage = errors.New("invalid arguments")
	// errInternal replaces failures that must not reach the user verbatim.
	errInternal = errors.New("internal error")
)

// commandError is a user-facing failure rendered from a message key.
type commandError struct {
	key  string
	args []interface{}
}

func newCommandError(key string, args ...interface{}) *commandError {
	return &commandError{key: key, args: args}
}

func (e *commandError) Error() string {
	return fmt.Sprintf("%s %v", e.key, e.args)
}

type command struct {
	usage string
	run   handler
}

// Option configures a Shell.
type Option func(*Shell)

// Shell reads commands and applies them to a restaurant.
type Shell struct {
	restaurant service.Restaurant
	translator *i18n.Translator
	locale     string
	logger     zerolog.Logger
	sessionID  string
	out        io.Writer
	prompt     string
	metrics    func(io.Writer) error
	commands   map[string]command
}

// WithLocale sets the language of shell output.
func WithLocale(locale string) Option {
	return func(s *Shell) {
		s.locale = i18n.ParseLocale(locale)
	}
}

// WithLogger sets the base logger; the shell adds a session id to it.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Shell) {
		s.logger = l
	}
}

// WithPrompt prints prompt before reading each line.
func WithPrompt(prompt string) Option {
	return func(s *Shell) {
		s.prompt = prompt
	}
}

// WithMetricsWriter enables the metrics command, which calls write.
func WithMetricsWriter(write func(io.Writer) error) Option {
	return func(s *Shell) {
		s.metrics = write
	}
}

// NewShell creates a shell writing its output to out.
func NewShell(r service.Restaurant, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		restaurant: r,
		translator: i18n.GetTranslator(),
		locale:     i18n.DefaultLocale,
		logger:     zerolog.Nop(),
		out:        out,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger, s.sessionID = logger.WithSession(s.logger)

	s.commands = map[string]command{
		"tables":  {usage: "tables", run: s.listTables},
		"show":    {usage: "show [n] [--json]", run: s.show},
		"occupy":  {usage: "occupy n", run: s.tableCommand(r.OccupyTable)},
		"reserve": {usage: "reserve n", run: s.tableCommand(r.ReserveTable)},
		"seat":    {usage: "seat n", run: s.tableCommand(r.OccupyFromReservation)},
		"release": {usage: "release n", run: s.tableCommand(r.ReleaseTable)},
		"order":   {usage: "order n name:price:minutes:ingredient,ingredient ...", run: s.placeOrder},
		"serve":   {usage: "serve n [order]", run: s.serve},
		"close":   {usage: "close n", run: s.closeTable},
		"dishes":  {usage: "dishes", run: s.orderedDishes},
		"count":   {usage: "count name", run: s.countDish},
		"top":     {usage: "top", run: s.mostOrdered},
		"report":  {usage: "report", run: s.report},
		"metrics": {usage: "metrics", run: s.writeMetrics},
		"help":    {usage: "help", run: s.help},
	}
	return s
}

// SessionID returns the id attached to every log line of this shell.
func (s *Shell) SessionID() string {
	return s.sessionID
}

// Run executes lines from in until quit, end of input or ctx cancellation.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	s.logger.Info().Str("locale", s.locale).Msg("session started")
	defer s.logger.Info().Msg("session ended")

	scanner := bufio.NewScanner(in)
	s.printPrompt()
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if quit := s.Execute(scanner.Text()); quit {
			return nil
		}
		s.printPrompt()
	}
	return scanner.Err()
}

// Execute runs a single command line and reports whether the session should end.
func (s *Shell) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	if name == "quit" || name == "exit" {
		s.say(i18n.MsgKeyGoodbye)
		return true
	}

	cmd, ok := s.commands[name]
	if !ok {
		s.say(i18n.ErrKeyUnknownCommand, fields[0])
		return false
	}

	run := chain(name, cmd.run, s.recovery, s.logging)
	if err := run(args); err != nil {
		s.printError(cmd, err)
	}
	return false
}

func (s *Shell) printError(cmd command, err error) {
	var cmdErr *commandError
	switch {
	case errors.Is(err, errUsage):
		s.say(i18n.ErrKeyUsage, cmd.usage)
	case errors.As(err, &cmdErr):
		s.say(cmdErr.key, cmdErr.args...)
	case errors.Is(err, model.ErrValidation):
		fmt.Fprintln(s.out, s.translator.TranslateError(err, s.locale))
	default:
		s.say(i18n.ErrKeyInternalError)
	}
}

func (s *Shell) say(key string, args ...interface{}) {
	fmt.Fprintln(s.out, s.translator.Translatef(key, s.locale, args...))
}

func (s *Shell) printPrompt() {
	if s.prompt != "" {
		fmt.Fprint(s.out, s.prompt)
	}
}

func (s *Shell) help([]string) error {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	s.say(i18n.MsgKeyCommands)
	for _, name := range names {
		fmt.Fprintf(s.out, "  %s\n", s.commands[name].usage)
	}
	fmt.Fprintln(s.out, "  quit")
	return nil
}
