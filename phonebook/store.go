package phonebook

import (
	"fmt"
	"slices"
	"strings"

	"github.com/SierraSoftworks/connor"

	"github.com/fulldump/phonebookdb/utils"
)

const DefaultCapacity = 500

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

var directions = map[string]Direction{
	"a":          Ascending,
	"asc":        Ascending,
	"ascending":  Ascending,
	"d":          Descending,
	"desc":       Descending,
	"descending": Descending,
}

func ParseDirection(s string) (Direction, error) {
	d, ok := directions[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Ascending, fmt.Errorf("%w '%s', must be [%s]", ErrBadDirection, s, strings.Join(utils.GetKeys(directions), "|"))
	}
	return d, nil
}

// Store is a bounded, ordered collection of entries. It is not safe for
// concurrent use: callers sharing a Store must serialize every call.
type Store struct {
	capacity    int
	entries     []Entry
	addCount    int
	deleteCount int
	lastDeleted []Entry
}

func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		capacity: capacity,
		entries:  make([]Entry, 0, capacity),
	}
}

func (s *Store) Capacity() int {
	return s.capacity
}

// AddText validates raw room and phone text and adds the entry.
func (s *Store) AddText(room, phone string) (EntryID, error) {
	r, err := ParseRoom(strings.TrimSpace(room))
	if err != nil {
		return 0, err
	}
	p, err := ParsePhone(strings.TrimSpace(phone))
	if err != nil {
		return 0, err
	}
	return s.Add(r, p)
}

func (s *Store) Add(room int, phone int64) (EntryID, error) {

	entry := Entry{Room: room, Phone: phone}
	if err := entry.Validate(); err != nil {
		return 0, err
	}

	if len(s.entries) >= s.capacity {
		return 0, fmt.Errorf("%d entries added, that is the maximum: %w", s.capacity, ErrFull)
	}

	s.lastDeleted = nil
	s.entries = append(s.entries, entry)
	s.addCount++

	return EntryID(len(s.entries)), nil
}

// Get returns the entry currently at position id.
func (s *Store) Get(id EntryID) (Entry, error) {
	if id < 1 || int(id) > len(s.entries) {
		return Entry{}, fmt.Errorf("entry %d: %w", id, ErrNotFound)
	}
	return s.entries[id-1], nil
}

// Delete removes every entry matching both room and phone and keeps them as
// the last deleted batch.
func (s *Store) Delete(room int, phone int64) (int, error) {

	s.lastDeleted = nil

	kept := s.entries[:0]
	var removed []Entry
	for _, e := range s.entries {
		if e.Room == room && e.Phone == phone {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}

	if len(removed) == 0 {
		return 0, fmt.Errorf("room %d with phone %d: %w", room, phone, ErrNotFound)
	}

	// zero the tail so the backing array does not keep stale values
	clear(s.entries[len(kept):])
	s.entries = kept
	s.lastDeleted = removed
	s.deleteCount += len(removed)

	return len(removed), nil
}

func (s *Store) FindByPhone(phone int64) ([]Entry, error) {
	found := s.filter(func(e Entry) bool { return e.Phone == phone })
	if len(found) == 0 {
		return nil, fmt.Errorf("phone %d: %w", phone, ErrNotFound)
	}
	return found, nil
}

func (s *Store) FindByRoom(room int) ([]Entry, error) {
	found := s.filter(func(e Entry) bool { return e.Room == room })
	if len(found) == 0 {
		return nil, fmt.Errorf("room %d: %w", room, ErrNotFound)
	}
	return found, nil
}

// Match returns the entries satisfying a mongo-like filter, for example
// {"room": {"$gte": 100}, "phone": 5551212}. Keys are the json field names of
// Entry.
func (s *Store) Match(filter map[string]interface{}) ([]Entry, error) {

	result := []Entry{}
	for _, e := range s.entries {
		data := map[string]interface{}{}
		err := utils.Remarshal(e, &data)
		if err != nil {
			return nil, fmt.Errorf("remarshal: %w", err)
		}
		match, err := connor.Match(filter, data)
		if err != nil {
			return nil, fmt.Errorf("match: %w", err)
		}
		if match {
			result = append(result, e)
		}
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("filter: %w", ErrNotFound)
	}

	return result, nil
}

func (s *Store) filter(f func(e Entry) bool) []Entry {
	var result []Entry
	for _, e := range s.entries {
		if f(e) {
			result = append(result, e)
		}
	}
	return result
}

func (s *Store) ListAll() ([]Entry, error) {
	if len(s.entries) == 0 {
		return nil, ErrEmptyStore
	}
	return slices.Clone(s.entries), nil
}

// Sort orders entries by phone. Equal phones keep their relative order.
func (s *Store) Sort(d Direction) error {
	if len(s.entries) == 0 {
		return ErrEmptyStore
	}

	slices.SortStableFunc(s.entries, func(a, b Entry) int {
		c := compareInt64(a.Phone, b.Phone)
		if d == Descending {
			return -c
		}
		return c
	})

	return nil
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Count returns the number of live entries.
func (s *Store) Count() int {
	return len(s.entries)
}

// AddCount returns how many entries were ever added since the store was
// created or last loaded. Deletes do not decrement it.
func (s *Store) AddCount() int {
	return s.addCount
}

func (s *Store) DeleteCount() int {
	return s.deleteCount
}

// LastDeleted returns the batch removed by the most recent Delete, if no Add
// or Delete happened after it.
func (s *Store) LastDeleted() []Entry {
	return slices.Clone(s.lastDeleted)
}

// replace swaps the whole content, used by Load once parsing succeeded.
func (s *Store) replace(entries []Entry) {
	s.entries = make([]Entry, len(entries), s.capacity)
	copy(s.entries, entries)
	s.addCount = len(entries)
	s.deleteCount = 0
	s.lastDeleted = nil
}
