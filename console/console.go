// Package console is the interactive menu of the phonebook. It reads one
// answer per line, so it can be driven by a terminal or by a script.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fulldump/phonebookdb/database"
	"github.com/fulldump/phonebookdb/phonebook"
)

const menu = `
>> Main Menu <<
  [1] Add entries
  [2] Delete entry
  [3] Find room number (by phone)
  [4] Find phone number (by room)
  [5] List all
  [6] Total entries
  [7] Sort
  [8] Load database
  [9] Exit
 [10] Persist database
`

type session struct {
	ctx   context.Context
	db    *database.Database
	out   io.Writer
	lines <-chan string
}

// Run loads the database and serves the menu until the user exits, the input
// ends or ctx is cancelled. The database is stopped (and persisted when a
// data directory is configured) before returning.
func Run(ctx context.Context, in io.Reader, out io.Writer, db *database.Database) error {

	err := db.Load()
	if err != nil {
		return err
	}
	defer db.Stop()

	// releases the reader goroutine when the menu ends with input left
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c := &session{
		ctx:   ctx,
		db:    db,
		out:   out,
		lines: readLines(ctx, in),
	}

	for {
		fmt.Fprint(out, menu)
		fmt.Fprintln(out, "Database:", db.Source())
		option, err := c.readLine("Option: ")
		if err != nil {
			return nil
		}

		// errExit, end of input or cancelled in the middle of an option
		if c.dispatch(option) != nil {
			return nil
		}
	}
}

var errExit = errors.New("exit")

func (c *session) dispatch(option string) error {
	switch option {
	case "1":
		return c.add()
	case "2":
		return c.delete()
	case "3":
		return c.findPhone()
	case "4":
		return c.findRoom()
	case "5":
		return c.listAll()
	case "6":
		return c.total()
	case "7":
		return c.sort()
	case "8":
		return c.load()
	case "9":
		return c.exit()
	case "10":
		return c.persist()
	}
	fmt.Fprintf(c.out, "Error: unknown option '%s'.\n", option)
	return nil
}

func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

func (c *session) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	select {
	case <-c.ctx.Done():
		return "", c.ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

func describe(field string, digits int, err error) string {
	switch {
	case errors.Is(err, phonebook.ErrOutOfRange):
		return fmt.Sprintf("Error: %s - out of Range, it must have 1 to %d digits and be greater than zero.", field, digits)
	case errors.Is(err, phonebook.ErrInvalidCharacter):
		return fmt.Sprintf("Error: %s - Character(s) detected, character(s) are not allowed.", field)
	}
	return "Error: " + err.Error()
}

// askRoom re-prompts until the answer is a valid room. Blank answer returns
// ok=false.
func (c *session) askRoom(prompt string) (int, bool, error) {
	for {
		text, err := c.readLine(prompt)
		if err != nil || text == "" {
			return 0, false, err
		}
		room, err := phonebook.ParseRoom(text)
		if err == nil {
			return room, true, nil
		}
		fmt.Fprintln(c.out, describe("Room Number", phonebook.RoomDigits, err))
	}
}

func (c *session) askPhone(prompt string) (int64, bool, error) {
	for {
		text, err := c.readLine(prompt)
		if err != nil || text == "" {
			return 0, false, err
		}
		phone, err := phonebook.ParsePhone(text)
		if err == nil {
			return phone, true, nil
		}
		fmt.Fprintln(c.out, describe("Phone Number", phonebook.PhoneDigits, err))
	}
}

func printEntries(out io.Writer, entries []phonebook.Entry) {
	fmt.Fprintf(out, "%5s  %-4s  %-8s\n", "#", "Room", "Phone")
	for i, e := range entries {
		fmt.Fprintf(out, "%5d  %-4d  %-8d\n", i+1, e.Room, e.Phone)
	}
}
