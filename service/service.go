package service

import (
	"strings"

	"github.com/fulldump/phonebookdb/database"
	"github.com/fulldump/phonebookdb/phonebook"
)

// Service exposes the phonebook operations taking raw text input, every call
// holding the database lock.
type Service struct {
	db *database.Database
}

func NewService(db *database.Database) *Service {
	return &Service{
		db: db,
	}
}

func (s *Service) Add(room, phone string) (*AddedEntry, error) {

	var result *AddedEntry
	err := s.db.Lock(func(store *phonebook.Store) error {
		id, err := store.AddText(room, phone)
		if err != nil {
			return err
		}
		entry, err := store.Get(id)
		if err != nil {
			return err
		}
		result = &AddedEntry{
			Id:    id,
			Entry: entry,
		}
		return nil
	})

	return result, err
}

func (s *Service) Delete(room, phone string) (*Deleted, error) {

	r, err := phonebook.ParseRoom(strings.TrimSpace(room))
	if err != nil {
		return nil, err
	}
	p, err := phonebook.ParsePhone(strings.TrimSpace(phone))
	if err != nil {
		return nil, err
	}

	var result *Deleted
	err = s.db.Lock(func(store *phonebook.Store) error {
		n, err := store.Delete(r, p)
		if err != nil {
			return err
		}
		result = &Deleted{
			Deleted: n,
			Entries: store.LastDeleted(),
		}
		return nil
	})

	return result, err
}

func (s *Service) FindByPhone(phone string) (result []phonebook.Entry, err error) {

	p, err := phonebook.ParsePhone(strings.TrimSpace(phone))
	if err != nil {
		return nil, err
	}

	err = s.db.Lock(func(store *phonebook.Store) error {
		result, err = store.FindByPhone(p)
		return err
	})

	return
}

func (s *Service) FindByRoom(room string) (result []phonebook.Entry, err error) {

	r, err := phonebook.ParseRoom(strings.TrimSpace(room))
	if err != nil {
		return nil, err
	}

	err = s.db.Lock(func(store *phonebook.Store) error {
		result, err = store.FindByRoom(r)
		return err
	})

	return
}

func (s *Service) Match(filter map[string]interface{}) (result []phonebook.Entry, err error) {
	err = s.db.Lock(func(store *phonebook.Store) error {
		result, err = store.Match(filter)
		return err
	})
	return
}

func (s *Service) ListAll() (result []phonebook.Entry, err error) {
	err = s.db.Lock(func(store *phonebook.Store) error {
		result, err = store.ListAll()
		return err
	})
	return
}

func (s *Service) Sort(direction string) error {

	d, err := phonebook.ParseDirection(direction)
	if err != nil {
		return err
	}

	return s.db.Lock(func(store *phonebook.Store) error {
		return store.Sort(d)
	})
}

func (s *Service) LastDeleted() (result []phonebook.Entry) {
	s.db.Lock(func(store *phonebook.Store) error {
		result = store.LastDeleted()
		return nil
	})
	if result == nil {
		result = []phonebook.Entry{}
	}
	return
}

func (s *Service) Stats() *Stats {

	source := s.db.Source()

	result := &Stats{Source: source}
	s.db.Lock(func(store *phonebook.Store) error {
		result.Count = store.Count()
		result.Added = store.AddCount()
		result.Deleted = store.DeleteCount()
		result.Capacity = store.Capacity()
		return nil
	})

	return result
}

func (s *Service) Persist() error {
	return s.db.Persist()
}

func (s *Service) Load() error {
	return s.db.LoadSnapshot()
}
