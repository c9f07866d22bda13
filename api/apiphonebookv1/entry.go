package apiphonebookv1

import (
	"bytes"
	"encoding/json"
	"net/http"

	json2 "github.com/go-json-experiment/json"

	"github.com/fulldump/phonebookdb/phonebook"
)

// Digits keeps a room or phone exactly as typed so validation can tell
// "too many digits" from "not a digit". Both `"0101"` and `101` are accepted.
type Digits string

func (d *Digits) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*d = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		s := ""
		err := json.Unmarshal(b, &s)
		if err != nil {
			return err
		}
		*d = Digits(s)
		return nil
	}
	*d = Digits(b)
	return nil
}

type entryRequest struct {
	Room  Digits `json:"room"`
	Phone Digits `json:"phone"`
}

// writeEntries streams entries as newline delimited json.
func writeEntries(w http.ResponseWriter, entries []phonebook.Entry) error {
	w.Header().Set("Content-Type", "application/x-ndjson")
	for _, entry := range entries {
		err := json2.MarshalWrite(w, entry)
		if err != nil {
			return err
		}
		_, err = w.Write([]byte("\n"))
		if err != nil {
			return err
		}
	}
	return nil
}
