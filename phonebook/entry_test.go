package phonebook

import (
	"errors"
	"testing"

	. "github.com/fulldump/biff"
)

func TestParseRoom(t *testing.T) {

	room, err := ParseRoom("101")
	AssertNil(err)
	AssertEqual(room, 101)

	room, err = ParseRoom("9999")
	AssertNil(err)
	AssertEqual(room, 9999)

	_, err = ParseRoom("12345")
	AssertTrue(errors.Is(err, ErrOutOfRange))

	_, err = ParseRoom("12a")
	AssertTrue(errors.Is(err, ErrInvalidCharacter))

	_, err = ParseRoom("-1")
	AssertTrue(errors.Is(err, ErrInvalidCharacter))

	_, err = ParseRoom("")
	AssertTrue(errors.Is(err, ErrInvalidCharacter))

	_, err = ParseRoom("0")
	AssertTrue(errors.Is(err, ErrOutOfRange))

	// characters are checked before length
	for _, s := range []string{"ééé", "12a45", "１２", "١٢٣", "abcdefghij"} {
		_, err = ParseRoom(s)
		AssertTrue(errors.Is(err, ErrInvalidCharacter))
		AssertFalse(errors.Is(err, ErrOutOfRange))
	}
}

func TestParsePhone(t *testing.T) {

	phone, err := ParsePhone("99999999")
	AssertNil(err)
	AssertEqual(phone, int64(99999999))

	_, err = ParsePhone("123456789")
	AssertTrue(errors.Is(err, ErrOutOfRange))

	_, err = ParsePhone("555 1212")
	AssertTrue(errors.Is(err, ErrInvalidCharacter))

	_, err = ParsePhone("5551212x99")
	AssertTrue(errors.Is(err, ErrInvalidCharacter))

	_, err = ParsePhone("00000000")
	AssertTrue(errors.Is(err, ErrOutOfRange))
}

func TestEntry_Validate(t *testing.T) {
	AssertNil(Entry{Room: 1, Phone: 1}.Validate())
	AssertTrue(errors.Is(Entry{Room: 10000, Phone: 1}.Validate(), ErrOutOfRange))
	AssertTrue(errors.Is(Entry{Room: 1, Phone: 100000000}.Validate(), ErrOutOfRange))
	AssertEqual(Entry{Room: 101, Phone: 5551212}.String(), "101,5551212")
}
