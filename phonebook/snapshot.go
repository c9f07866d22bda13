package phonebook

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var snapshotLine = regexp.MustCompile(`^[0-9]{1,4},[0-9]{1,8}$`)

// ParseSnapshot reads `<room>,<phone>` lines. It stops at the first
// malformed line.
func ParseSnapshot(r io.Reader) ([]Entry, error) {

	entries := []Entry{}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if !snapshotLine.MatchString(text) {
			return nil, fmt.Errorf("line %d '%s': %w", line, text, ErrParse)
		}

		room, phone, _ := strings.Cut(text, ",")
		e := Entry{}
		e.Room, _ = strconv.Atoi(room)
		e.Phone, _ = strconv.ParseInt(phone, 10, 64)
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", line, err.Error(), ErrParse)
		}

		entries = append(entries, e)
	}
	if err := scanner.Err(); errors.Is(err, bufio.ErrTooLong) {
		return nil, fmt.Errorf("line %d: %s: %w", line+1, err.Error(), ErrParse)
	} else if err != nil {
		return nil, fmt.Errorf("read line %d: %s: %w", line+1, err.Error(), ErrIO)
	}

	return entries, nil
}

// Load replaces the whole store with the snapshot read from r. On any error
// the store is left untouched.
func (s *Store) Load(r io.Reader) error {

	entries, err := ParseSnapshot(r)
	if err != nil {
		return err
	}

	if len(entries) > s.capacity {
		return fmt.Errorf("%d records, capacity is %d: %w: %w", len(entries), s.capacity, ErrParse, ErrFull)
	}

	s.replace(entries)

	return nil
}

func (s *Store) LoadFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open '%s': %s: %w", filename, err.Error(), ErrIO)
	}
	defer f.Close()

	err = s.Load(f)
	if err != nil {
		return fmt.Errorf("load '%s': %w", filename, err)
	}

	return nil
}

// Persist writes one line per entry in current order.
func (s *Store) Persist(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range s.entries {
		_, err := fmt.Fprintf(bw, "%d,%d\n", e.Room, e.Phone)
		if err != nil {
			return errors.Join(ErrIO, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Join(ErrIO, err)
	}
	return nil
}

// PersistFile writes the snapshot to a temporary file next to filename and
// renames it over the target, so a failed write never truncates the previous
// snapshot.
func (s *Store) PersistFile(filename string) error {

	dir := filepath.Dir(filename)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return fmt.Errorf("mkdir '%s': %s: %w", dir, err.Error(), ErrIO)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(filename)+"."+uuid.New().String()+".tmp")
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0666)
	if err != nil {
		return fmt.Errorf("create '%s': %s: %w", tmp, err.Error(), ErrIO)
	}
	defer os.Remove(tmp) // no-op after a successful rename

	err = s.Persist(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("write '%s': %w", tmp, err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync '%s': %s: %w", tmp, err.Error(), ErrIO)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close '%s': %s: %w", tmp, err.Error(), ErrIO)
	}

	if err := os.Rename(tmp, filename); err != nil {
		return fmt.Errorf("rename '%s': %s: %w", filename, err.Error(), ErrIO)
	}

	return nil
}
