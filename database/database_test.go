package database

import (
	"errors"
	"os"
	"path"
	"testing"

	. "github.com/fulldump/biff"

	"github.com/fulldump/phonebookdb/phonebook"
)

func TestDatabase_RamMode(t *testing.T) {

	db := NewDatabase(&Config{})
	AssertEqual(db.GetStatus(), StatusOpening)

	AssertNil(db.Load())
	AssertEqual(db.GetStatus(), StatusOperating)
	AssertEqual(db.Source(), RamMode)
	AssertEqual(db.Filename(), "")

	err := db.Persist()
	AssertTrue(errors.Is(err, phonebook.ErrIO))

	AssertNil(db.Stop())
	AssertEqual(db.GetStatus(), StatusClosing)
}

func TestDatabase_MissingSnapshotStartsEmpty(t *testing.T) {

	dir := t.TempDir()
	db := NewDatabase(&Config{Dir: dir})

	AssertNil(db.Load())
	AssertEqual(db.GetStatus(), StatusOperating)
	AssertEqual(db.Source(), RamMode)

	db.Lock(func(s *phonebook.Store) error {
		AssertEqual(s.Count(), 0)
		AssertEqual(s.Capacity(), phonebook.DefaultCapacity)
		return nil
	})
}

func TestDatabase_StopPersists(t *testing.T) {

	dir := t.TempDir()

	{
		db := NewDatabase(&Config{Dir: dir, Snapshot: "rooms.db"})
		AssertNil(db.Load())
		db.Lock(func(s *phonebook.Store) error {
			_, err := s.Add(101, 5551212)
			return err
		})
		AssertNil(db.Stop())
	}

	content, err := os.ReadFile(path.Join(dir, "rooms.db"))
	AssertNil(err)
	AssertEqual(string(content), "101,5551212\n")

	{
		db := NewDatabase(&Config{Dir: dir, Snapshot: "rooms.db"})
		AssertNil(db.Load())
		AssertEqual(db.Source(), path.Join(dir, "rooms.db"))
		db.Lock(func(s *phonebook.Store) error {
			AssertEqual(s.Count(), 1)
			AssertEqual(s.AddCount(), 1)
			return nil
		})
	}
}

func TestDatabase_CorruptSnapshotIsKept(t *testing.T) {

	dir := t.TempDir()
	filename := path.Join(dir, "phonebook.db")
	os.WriteFile(filename, []byte("12a,555\n"), 0666)

	db := NewDatabase(&Config{Dir: dir})
	err := db.Load()
	AssertTrue(errors.Is(err, phonebook.ErrParse))
	AssertEqual(db.GetStatus(), StatusClosing)

	db.Stop()

	content, _ := os.ReadFile(filename)
	AssertEqual(string(content), "12a,555\n")
}

func TestDatabase_LoadSnapshotKeepsStoreOnError(t *testing.T) {

	dir := t.TempDir()
	db := NewDatabase(&Config{Dir: dir})
	AssertNil(db.Load())

	db.Lock(func(s *phonebook.Store) error {
		s.Add(101, 5551212)
		return nil
	})

	err := db.LoadSnapshot()
	AssertTrue(errors.Is(err, phonebook.ErrIO))

	db.Lock(func(s *phonebook.Store) error {
		AssertEqual(s.Count(), 1)
		return nil
	})
}

func TestDatabase_LoadFrom(t *testing.T) {

	filename := path.Join(t.TempDir(), "other.db")
	os.WriteFile(filename, []byte("101,5551212\n102,5550000\n"), 0666)

	db := NewDatabase(&Config{})
	AssertNil(db.Load())
	AssertNil(db.LoadFrom(filename))
	AssertEqual(db.Source(), filename)

	db.Lock(func(s *phonebook.Store) error {
		AssertEqual(s.Count(), 2)
		return nil
	})
}
