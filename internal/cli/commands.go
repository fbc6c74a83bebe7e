package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/guttosm/restaurant-service/internal/domain/dto"
	"github.com/guttosm/restaurant-service/internal/domain/model"
	"github.com/guttosm/restaurant-service/internal/i18n"
	"github.com/guttosm/restaurant-service/internal/service"
)

const jsonFlag = "--json"

func (s *Shell) listTables(args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	for _, t := range s.restaurant.Snapshot() {
		s.say(i18n.MsgKeyTableRow, t.Number, t.Capacity, t.Status, len(t.Orders))
	}
	return nil
}

func (s *Shell) show(args []string) error {
	asJSON := false
	var rest []string
	for _, a := range args {
		if a == jsonFlag {
			asJSON = true
			continue
		}
		rest = append(rest, a)
	}

	switch len(rest) {
	case 0:
		tables := s.restaurant.Snapshot()
		if asJSON {
			return s.writeJSON(tables)
		}
		parts := make([]string, 0, len(tables))
		for _, summary := range tables {
			t, err := s.restaurant.Table(summary.Number)
			if err != nil {
				return err
			}
			parts = append(parts, t.String())
		}
		fmt.Fprintln(s.out, strings.Join(parts, "\n\n"))
		return nil
	case 1:
		n, err := parseNumber(rest[0])
		if err != nil {
			return err
		}
		t, err := s.restaurant.Table(n)
		if err != nil {
			return tableError(n, err)
		}
		if asJSON {
			return s.writeJSON(dto.NewTableSummary(t))
		}
		fmt.Fprintln(s.out, t.String())
		return nil
	default:
		return errUsage
	}
}

// tableCommand adapts a table transition to a command taking the table number.
func (s *Shell) tableCommand(apply func(tableNumber int) (bool, error)) handler {
	return func(args []string) error {
		if len(args) != 1 {
			return errUsage
		}
		n, err := parseNumber(args[0])
		if err != nil {
			return err
		}
		changed, err := apply(n)
		if err != nil {
			return tableError(n, err)
		}
		return s.reportTable(n, changed)
	}
}

func (s *Shell) reportTable(n int, changed bool) error {
	if !changed {
		s.say(i18n.MsgKeyNothingChanged)
		return nil
	}
	t, err := s.restaurant.Table(n)
	if err != nil {
		return tableError(n, err)
	}
	s.say(i18n.MsgKeyTableUpdated, n, t.Status())
	return nil
}

func (s *Shell) placeOrder(args []string) error {
	if len(args) < 2 {
		return errUsage
	}
	n, err := parseNumber(args[0])
	if err != nil {
		return err
	}

	req := dto.PlaceOrderRequest{TableNumber: n}
	for _, spec := range args[1:] {
		dr, err := dto.ParseDishRequest(spec)
		if err != nil {
			return newCommandError(i18n.ErrKeyMalformedDish, spec)
		}
		req.Dishes = append(req.Dishes, dr)
	}
	if err := req.Validate(); err != nil {
		if errors.Is(err, dto.ErrNoDishes) {
			return errUsage
		}
		return newCommandError(i18n.ErrKeyTableNotFound, n)
	}

	dishes, err := req.BuildDishes()
	if err != nil {
		return err
	}
	order := s.restaurant.NewOrder()
	for _, d := range dishes {
		order.AddDish(d)
	}

	placed, err := s.restaurant.PlaceOrder(n, order)
	if err != nil {
		return tableError(n, err)
	}
	if !placed {
		s.say(i18n.MsgKeyOrderNotPlaced, n)
		return nil
	}
	s.say(i18n.MsgKeyOrderPlaced, order.ID(), n)
	return nil
}

func (s *Shell) serve(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	n, err := parseNumber(args[0])
	if err != nil {
		return err
	}

	var closed bool
	if len(args) == 2 {
		id, err := parseNumber(args[1])
		if err != nil {
			return err
		}
		closed, err = s.restaurant.CloseOrderByID(n, id)
		if err != nil {
			return tableError(n, err)
		}
	} else {
		closed, err = s.restaurant.CloseLastOrder(n)
		if err != nil {
			return tableError(n, err)
		}
	}

	if !closed {
		s.say(i18n.MsgKeyNothingChanged)
		return nil
	}
	s.say(i18n.MsgKeyOrderClosed)
	return nil
}

func (s *Shell) closeTable(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	n, err := parseNumber(args[0])
	if err != nil {
		return err
	}
	closed, err := s.restaurant.CloseTable(n)
	if err != nil {
		return tableError(n, err)
	}
	if !closed {
		s.say(i18n.MsgKeyTableNotClosed, n)
		return nil
	}
	s.say(i18n.MsgKeyTableUpdated, n, model.TableFree)
	return nil
}

func (s *Shell) orderedDishes(args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	names, ok := s.restaurant.ListOrderedDishNames()
	if !ok {
		s.say(i18n.MsgKeyNothingOrdered)
		return nil
	}
	fmt.Fprintln(s.out, strings.Join(names, ", "))
	return nil
}

func (s *Shell) countDish(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	name := strings.Join(args, " ")
	count, ok := s.restaurant.CountDish(name)
	if !ok {
		s.say(i18n.MsgKeyNeverOrdered, name)
		return nil
	}
	s.say(i18n.MsgKeyDishCount, name, count)
	return nil
}

func (s *Shell) mostOrdered(args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	names, ok := s.restaurant.MostOrderedDishes()
	if !ok {
		s.say(i18n.MsgKeyNothingOrdered)
		return nil
	}
	s.say(i18n.MsgKeyMostOrdered, model.JoinWithAnd(names))
	return nil
}

func (s *Shell) report(args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	return s.writeJSON(s.restaurant.Report())
}

func (s *Shell) writeMetrics(args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	if s.metrics == nil {
		s.say(i18n.MsgKeyMetricsOff)
		return nil
	}
	return s.metrics(s.out)
}

func (s *Shell) writeJSON(v interface{}) error {
	enc := json.NewEncoder(s.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, newCommandError(i18n.ErrKeyInvalidNumber, arg)
	}
	return n, nil
}

// tableError maps an unknown table to a user-facing error.
func tableError(n int, err error) error {
	if errors.Is(err, service.ErrTableNotFound) {
		return newCommandError(i18n.ErrKeyTableNotFound, n)
	}
	return err
}
