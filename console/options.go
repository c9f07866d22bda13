package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fulldump/phonebookdb/phonebook"
)

func (c *session) add() error {

	fmt.Fprintln(c.out, ">> Add Entry <<")
	fmt.Fprintln(c.out, "Please add your entry, leave blank to quit to Main Menu")

	added := 0
	for {
		var next, capacity int
		c.db.Lock(func(s *phonebook.Store) error {
			next = s.Count() + 1
			capacity = s.Capacity()
			return nil
		})
		if next > capacity {
			fmt.Fprintf(c.out, "Database is full!: %d entries were added, that is the Maximum No. I can hold.\n", capacity)
			return nil
		}

		room, ok, err := c.askRoom(fmt.Sprintf("Enter Room Number [%3d]: ", next))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(c.out, "You chose to quit: Entry %d was not added to the database, %d added.\n", next, added)
			return nil
		}

		phone, ok, err := c.askPhone(fmt.Sprintf("Enter Phone Number [%3d]: ", next))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(c.out, "You chose to quit: Entry %d was not added to the database, %d added.\n", next, added)
			return nil
		}

		err = c.db.Lock(func(s *phonebook.Store) error {
			_, err := s.Add(room, phone)
			return err
		})
		if errors.Is(err, phonebook.ErrFull) {
			fmt.Fprintf(c.out, "Database is full!: %d entries were added, that is the Maximum No. I can hold.\n", capacity)
			return nil
		}
		if err != nil {
			fmt.Fprintln(c.out, "Error:", err.Error())
			return nil
		}
		added++
	}
}

func (c *session) delete() error {

	fmt.Fprintln(c.out, ">> Delete Entry <<")

	room, ok, err := c.askRoom("Enter room number to delete: ")
	if err != nil || !ok {
		return err
	}
	phone, ok, err := c.askPhone("Enter phone number to delete: ")
	if err != nil || !ok {
		return err
	}

	var deleted, count int
	var recovered []phonebook.Entry
	err = c.db.Lock(func(s *phonebook.Store) (err error) {
		deleted, err = s.Delete(room, phone)
		count = s.Count()
		recovered = s.LastDeleted()
		return
	})
	if errors.Is(err, phonebook.ErrNotFound) {
		fmt.Fprintln(c.out, "Error: The Room No./Phone No. you're looking for was Not Found.")
		return nil
	}
	if err != nil {
		fmt.Fprintln(c.out, "Error:", err.Error())
		return nil
	}

	fmt.Fprintf(c.out, "Successful: There are currently %d entries in the database, deleted %d.\n", count, deleted)
	fmt.Fprintln(c.out, "Deleted entries (add them again to recover):")
	printEntries(c.out, recovered)
	return nil
}

func (c *session) findPhone() error {

	fmt.Fprintln(c.out, ">> Find Room Number <<")

	phone, ok, err := c.askPhone("Enter the phone number to search for: ")
	if err != nil || !ok {
		return err
	}

	var found []phonebook.Entry
	var count int
	err = c.db.Lock(func(s *phonebook.Store) (err error) {
		found, err = s.FindByPhone(phone)
		count = s.Count()
		return
	})
	if err != nil {
		fmt.Fprintln(c.out, "Error: The Phone No. you're looking for was Not Found.")
		return nil
	}

	printEntries(c.out, found)
	fmt.Fprintf(c.out, "Successful: There are currently %d entries in the database, found %d.\n", count, len(found))
	return nil
}

func (c *session) findRoom() error {

	fmt.Fprintln(c.out, ">> Find Phone Number <<")

	room, ok, err := c.askRoom("Enter the room number to search for: ")
	if err != nil || !ok {
		return err
	}

	var found []phonebook.Entry
	var count int
	err = c.db.Lock(func(s *phonebook.Store) (err error) {
		found, err = s.FindByRoom(room)
		count = s.Count()
		return
	})
	if err != nil {
		fmt.Fprintln(c.out, "Error: The Room No. you're looking for was Not Found.")
		return nil
	}

	printEntries(c.out, found)
	fmt.Fprintf(c.out, "Successful: There are currently %d entries in the database, found %d.\n", count, len(found))
	return nil
}

func (c *session) listAll() error {

	fmt.Fprintln(c.out, ">> List All <<")

	var all []phonebook.Entry
	err := c.db.Lock(func(s *phonebook.Store) (err error) {
		all, err = s.ListAll()
		return
	})
	if err != nil {
		fmt.Fprintln(c.out, "Empty List")
		return nil
	}

	printEntries(c.out, all)
	fmt.Fprintln(c.out, "List Successful")
	return nil
}

func (c *session) total() error {
	var count, added int
	c.db.Lock(func(s *phonebook.Store) error {
		count = s.Count()
		added = s.AddCount()
		return nil
	})
	fmt.Fprintf(c.out, "There are currently %d entries stored in the Database (%d added this session).\n", count, added)
	return nil
}

func (c *session) sort() error {

	fmt.Fprintln(c.out, ">> Sort All Entries <<")
	fmt.Fprintln(c.out, "Note: Database is sorted by phone no. entries.")

	answer, err := c.readLine("Press 'A' for [A]scending order or 'D' for [D]escending order: ")
	if err != nil {
		return err
	}
	d, err := phonebook.ParseDirection(answer)
	if err != nil {
		fmt.Fprintln(c.out, "Error:", err.Error())
		return nil
	}

	err = c.db.Lock(func(s *phonebook.Store) error {
		return s.Sort(d)
	})
	if err != nil {
		fmt.Fprintln(c.out, "Database was not sorted - Database is empty!")
		return nil
	}

	fmt.Fprintf(c.out, "Database was successfully sorted in %s order.\n", d)
	return nil
}

func (c *session) load() error {

	fmt.Fprintln(c.out, ">> Load Database <<")

	prompt := "Enter the database file name: "
	if c.db.Filename() != "" {
		prompt = fmt.Sprintf("Enter the database file name [%s]: ", c.db.Filename())
	}
	filename, err := c.readLine(prompt)
	if err != nil {
		return err
	}
	if filename == "" {
		filename = c.db.Filename()
	}
	if filename == "" {
		fmt.Fprintln(c.out, "Error: no file name given, database not loaded.")
		return nil
	}

	err = c.db.LoadFrom(filename)
	if err != nil {
		fmt.Fprintln(c.out, "Error: database not loaded:", err.Error())
		return nil
	}

	fmt.Fprintln(c.out, "Database loaded:", filename)
	return c.total()
}

func (c *session) persist() error {

	err := c.db.Persist()
	if err != nil {
		fmt.Fprintln(c.out, "Error: database not persisted:", err.Error())
		return nil
	}

	fmt.Fprintln(c.out, "Database persisted:", c.db.Filename())
	return nil
}

func (c *session) exit() error {

	answer, err := c.readLine("Do you really want to exit?, Press 'Y' to confirm, anything else to cancel: ")
	if err != nil {
		return err
	}
	if strings.EqualFold(answer, "y") {
		return errExit
	}
	return nil
}
