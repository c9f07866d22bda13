package database

import (
	"errors"
	"fmt"
	"os"
	"path"
	"sync"
	"time"

	"github.com/fulldump/phonebookdb/phonebook"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

const RamMode = "No database file loaded (RAM mode)"

type Config struct {
	Dir      string // empty means RAM mode, nothing is read or written
	Snapshot string
	Capacity int
}

// Database owns the phonebook store and is the single mutual-exclusion
// boundary around it.
type Database struct {
	Config *Config
	status string
	source string
	store  *phonebook.Store
	mutex  *sync.Mutex
	exit   chan struct{}
	once   *sync.Once
}

func NewDatabase(config *Config) *Database {
	if config.Snapshot == "" {
		config.Snapshot = "phonebook.db"
	}
	return &Database{
		Config: config,
		status: StatusOpening,
		source: RamMode,
		store:  phonebook.NewStore(config.Capacity),
		mutex:  &sync.Mutex{},
		exit:   make(chan struct{}),
		once:   &sync.Once{},
	}
}

func (db *Database) GetStatus() string {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	return db.status
}

func (db *Database) setStatus(status string) {
	db.mutex.Lock()
	db.status = status
	db.mutex.Unlock()
}

// Source is the snapshot file the store was loaded from, or RamMode.
func (db *Database) Source() string {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	return db.source
}

// Filename is where snapshots are persisted, empty in RAM mode.
func (db *Database) Filename() string {
	if db.Config.Dir == "" {
		return ""
	}
	return path.Join(db.Config.Dir, db.Config.Snapshot)
}

// Lock runs f with exclusive access to the store.
func (db *Database) Lock(f func(s *phonebook.Store) error) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	return f(db.store)
}

// Load reads the configured snapshot. A missing snapshot is not an error: the
// database starts empty and the first Persist will create it.
func (db *Database) Load() error {

	filename := db.Filename()
	if filename == "" {
		fmt.Println(RamMode) // todo: move to logger
		db.setStatus(StatusOperating)
		return nil
	}

	fmt.Printf("Loading database %s...\n", filename) // todo: move to logger
	t0 := time.Now()
	err := db.LoadSnapshot()
	if errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Snapshot '%s' does not exist yet, starting empty\n", filename)
		db.setStatus(StatusOperating)
		return nil
	}
	if err != nil {
		fmt.Printf("ERROR: load snapshot '%s': %s\n", filename, err.Error())
		db.setStatus(StatusClosing)
		return err
	}

	db.Lock(func(s *phonebook.Store) error {
		fmt.Println(filename, s.Count(), time.Since(t0))
		return nil
	})

	db.setStatus(StatusOperating)

	return nil
}

// LoadSnapshot replaces the store with the configured snapshot file.
func (db *Database) LoadSnapshot() error {

	filename := db.Filename()
	if filename == "" {
		return fmt.Errorf("%s: %w", RamMode, phonebook.ErrIO)
	}

	return db.LoadFrom(filename)
}

// LoadFrom replaces the store with the content of any snapshot file. The
// store is untouched if the file cannot be read or parsed.
func (db *Database) LoadFrom(filename string) error {

	if _, err := os.Stat(filename); err != nil {
		return fmt.Errorf("stat '%s': %w: %w", filename, phonebook.ErrIO, err)
	}

	return db.Lock(func(s *phonebook.Store) error {
		err := s.LoadFile(filename)
		if err != nil {
			return err
		}
		db.source = filename
		return nil
	})
}

// Persist writes the store to the configured snapshot file.
func (db *Database) Persist() error {

	filename := db.Filename()
	if filename == "" {
		return fmt.Errorf("%s: %w", RamMode, phonebook.ErrIO)
	}

	return db.Lock(func(s *phonebook.Store) error {
		err := s.PersistFile(filename)
		if err != nil {
			return err
		}
		db.source = filename
		return nil
	})
}

func (db *Database) Start() error {

	go db.Load()

	<-db.exit

	return nil
}

func (db *Database) Stop() error {

	var err error
	db.once.Do(func() {
		defer close(db.exit)

		// never overwrite a snapshot that failed to load
		operating := db.GetStatus() == StatusOperating
		db.setStatus(StatusClosing)

		if !operating || db.Filename() == "" {
			return
		}

		fmt.Printf("Persisting '%s'...\n", db.Filename())
		err = db.Persist()
		if err != nil {
			fmt.Printf("ERROR: persist(%s): %s\n", db.Filename(), err.Error())
		}
	})

	return err
}
