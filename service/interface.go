package service

import (
	"github.com/fulldump/phonebookdb/phonebook"
)

type Servicer interface {
	Add(room, phone string) (*AddedEntry, error)
	Delete(room, phone string) (*Deleted, error)
	FindByPhone(phone string) ([]phonebook.Entry, error)
	FindByRoom(room string) ([]phonebook.Entry, error)
	Match(filter map[string]interface{}) ([]phonebook.Entry, error)
	ListAll() ([]phonebook.Entry, error)
	Sort(direction string) error
	LastDeleted() []phonebook.Entry
	Stats() *Stats
	Persist() error
	Load() error
}

type AddedEntry struct {
	Id phonebook.EntryID `json:"id"`
	phonebook.Entry
}

type Deleted struct {
	Deleted int               `json:"deleted"`
	Entries []phonebook.Entry `json:"entries"`
}

type Stats struct {
	Count    int    `json:"count"`
	Added    int    `json:"added"`
	Deleted  int    `json:"deleted"`
	Capacity int    `json:"capacity"`
	Source   string `json:"source"`
}
