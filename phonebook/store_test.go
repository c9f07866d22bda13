package phonebook

import (
	"errors"
	"testing"

	. "github.com/fulldump/biff"
)

func TestAddThenFindByRoom(t *testing.T) {

	entries := []Entry{
		{Room: 101, Phone: 5551212},
		{Room: 1, Phone: 1},
		{Room: MaxRoom, Phone: MaxPhone},
		{Room: 1, Phone: MaxPhone},
		{Room: MaxRoom, Phone: 1},
	}

	for _, e := range entries {
		s := NewStore(DefaultCapacity)

		id, err := s.Add(e.Room, e.Phone)
		AssertNil(err)
		AssertEqual(id, EntryID(1))

		found, err := s.FindByRoom(e.Room)
		AssertNil(err)
		AssertEqual(found, []Entry{e})

		found, err = s.FindByPhone(e.Phone)
		AssertNil(err)
		AssertEqual(found, []Entry{e})

		got, err := s.Get(id)
		AssertNil(err)
		AssertEqual(got, e)
	}

	for _, e := range []Entry{{0, 1}, {MaxRoom + 1, 1}, {1, 0}, {1, MaxPhone + 1}} {
		s := NewStore(DefaultCapacity)
		_, err := s.Add(e.Room, e.Phone)
		AssertTrue(errors.Is(err, ErrOutOfRange))
		AssertEqual(s.Count(), 0)
	}
}

func TestGet_OutOfRange(t *testing.T) {

	s := NewStore(DefaultCapacity)
	s.Add(101, 5551212)

	_, err := s.Get(0)
	AssertTrue(errors.Is(err, ErrNotFound))

	_, err = s.Get(2)
	AssertTrue(errors.Is(err, ErrNotFound))
}

func TestAddText(t *testing.T) {

	s := NewStore(DefaultCapacity)

	id, err := s.AddText(" 102", "5550000 ")
	AssertNil(err)
	AssertEqual(id, EntryID(1))
	AssertEqual(s.Count(), 1)

	_, err = s.AddText("12345", "5551212")
	AssertTrue(errors.Is(err, ErrOutOfRange))

	_, err = s.AddText("101", "55a1212")
	AssertTrue(errors.Is(err, ErrInvalidCharacter))

	_, err = s.AddText("101", "123456789")
	AssertTrue(errors.Is(err, ErrOutOfRange))

	// rejected adds leave no trace
	AssertEqual(s.Count(), 1)
	AssertEqual(s.AddCount(), 1)
}

func TestAdd_Full(t *testing.T) {

	s := NewStore(DefaultCapacity)
	for i := 0; i < DefaultCapacity; i++ {
		_, err := s.Add(i%MaxRoom+1, int64(i+1))
		AssertNil(err)
	}

	_, err := s.Add(1, 1)
	AssertTrue(errors.Is(err, ErrFull))
	AssertEqual(s.Count(), DefaultCapacity)
	AssertEqual(s.AddCount(), DefaultCapacity)
}

func TestDelete(t *testing.T) {

	s := NewStore(DefaultCapacity)
	s.Add(101, 5551212)

	n, err := s.Delete(101, 5551212)
	AssertNil(err)
	AssertEqual(n, 1)
	AssertEqual(s.Count(), 0)
	AssertEqual(s.AddCount(), 1)
	AssertEqual(s.DeleteCount(), 1)
	AssertEqual(s.LastDeleted(), []Entry{{Room: 101, Phone: 5551212}})

	_, err = s.Delete(101, 5551212)
	AssertTrue(errors.Is(err, ErrNotFound))
	AssertEqual(len(s.LastDeleted()), 0)
}

func TestDelete_RequiresBothKeys(t *testing.T) {

	s := NewStore(DefaultCapacity)
	s.Add(101, 5551212)
	s.Add(101, 5550000)
	s.Add(102, 5551212)

	_, err := s.Delete(101, 5559999)
	AssertTrue(errors.Is(err, ErrNotFound))
	AssertEqual(s.Count(), 3)
}

func TestDelete_Duplicates(t *testing.T) {

	s := NewStore(DefaultCapacity)
	s.Add(101, 5551212)
	s.Add(200, 1)
	s.Add(101, 5551212)
	s.Add(300, 2)

	n, err := s.Delete(101, 5551212)
	AssertNil(err)
	AssertEqual(n, 2)

	all, _ := s.ListAll()
	AssertEqual(all, []Entry{{Room: 200, Phone: 1}, {Room: 300, Phone: 2}})
	AssertEqual(s.LastDeleted(), []Entry{{Room: 101, Phone: 5551212}, {Room: 101, Phone: 5551212}})

	// next add clears the recovery batch
	s.Add(400, 3)
	AssertEqual(len(s.LastDeleted()), 0)
}

func TestFindByPhone(t *testing.T) {

	s := NewStore(DefaultCapacity)
	s.Add(101, 5551212)
	s.Add(102, 5550000)
	s.Add(103, 5551212)

	found, err := s.FindByPhone(5551212)
	AssertNil(err)
	AssertEqual(found, []Entry{{Room: 101, Phone: 5551212}, {Room: 103, Phone: 5551212}})

	_, err = s.FindByPhone(1)
	AssertTrue(errors.Is(err, ErrNotFound))

	_, err = s.FindByRoom(999)
	AssertTrue(errors.Is(err, ErrNotFound))
}

func TestMatch(t *testing.T) {

	s := NewStore(DefaultCapacity)
	s.Add(101, 5551212)
	s.Add(202, 5550000)
	s.Add(303, 5559999)

	found, err := s.Match(map[string]interface{}{
		"room": map[string]interface{}{"$gt": 150.0},
	})
	AssertNil(err)
	AssertEqual(found, []Entry{{Room: 202, Phone: 5550000}, {Room: 303, Phone: 5559999}})

	found, err = s.Match(map[string]interface{}{"phone": 5551212.0})
	AssertNil(err)
	AssertEqual(found, []Entry{{Room: 101, Phone: 5551212}})

	_, err = s.Match(map[string]interface{}{"room": 1.0})
	AssertTrue(errors.Is(err, ErrNotFound))
}

func TestListAll_Empty(t *testing.T) {

	s := NewStore(DefaultCapacity)

	_, err := s.ListAll()
	AssertTrue(errors.Is(err, ErrEmptyStore))

	err = s.Sort(Ascending)
	AssertTrue(errors.Is(err, ErrEmptyStore))
}

func TestListAll_ReturnsCopy(t *testing.T) {

	s := NewStore(DefaultCapacity)
	s.Add(101, 5551212)

	all, _ := s.ListAll()
	all[0].Phone = 1

	all, _ = s.ListAll()
	AssertEqual(all[0].Phone, int64(5551212))
}

func TestSort(t *testing.T) {

	s := NewStore(DefaultCapacity)
	s.Add(101, 5551212)
	s.Add(102, 5550000)
	AssertEqual(s.Count(), 2)

	err := s.Sort(Ascending)
	AssertNil(err)

	all, _ := s.ListAll()
	AssertEqual(all, []Entry{{Room: 102, Phone: 5550000}, {Room: 101, Phone: 5551212}})
}

func TestSort_Reverse(t *testing.T) {

	s := NewStore(DefaultCapacity)
	for _, e := range []Entry{{7, 30}, {1, 10}, {9, 50}, {3, 20}, {5, 40}} {
		s.Add(e.Room, e.Phone)
	}

	s.Sort(Ascending)
	asc, _ := s.ListAll()
	AssertEqual(asc, []Entry{{1, 10}, {3, 20}, {7, 30}, {5, 40}, {9, 50}})

	s.Sort(Descending)
	desc, _ := s.ListAll()
	for i := range asc {
		AssertEqual(desc[i], asc[len(asc)-1-i])
	}
}

func TestSort_Stable(t *testing.T) {

	s := NewStore(DefaultCapacity)
	s.Add(1, 20)
	s.Add(2, 10)
	s.Add(3, 20)
	s.Add(4, 10)

	s.Sort(Ascending)
	all, _ := s.ListAll()
	AssertEqual(all, []Entry{{2, 10}, {4, 10}, {1, 20}, {3, 20}})

	s.Sort(Descending)
	all, _ = s.ListAll()
	AssertEqual(all, []Entry{{1, 20}, {3, 20}, {2, 10}, {4, 10}})
}

func TestParseDirection(t *testing.T) {

	d, err := ParseDirection("A")
	AssertNil(err)
	AssertEqual(d, Ascending)

	d, err = ParseDirection("desc")
	AssertNil(err)
	AssertEqual(d, Descending)
	AssertEqual(d.String(), "descending")

	_, err = ParseDirection("sideways")
	AssertTrue(errors.Is(err, ErrBadDirection))
}
