package service

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

func decodeLines(body string) []interface{} {
	result := []interface{}{}
	dec := json.NewDecoder(strings.NewReader(body))
	for dec.More() {
		var item interface{}
		if err := dec.Decode(&item); err != nil {
			break
		}
		result = append(result, item)
	}
	return result
}

// Acceptance runs the http scenarios against any handler built over a
// database persisted in a temporary directory.
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("List empty", func(a *biff.A) {
		resp := apiRequest("GET", "/entries").Do()
		Save(resp, "List - empty", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "database is empty",
				"description": "database is empty",
			},
		})
	})

	a.Alternative("Sort empty", func(a *biff.A) {
		resp := apiRequest("POST", "/entries:sort").
			WithBodyJson(JSON{"direction": "asc"}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})

	a.Alternative("Add room out of range", func(a *biff.A) {
		resp := apiRequest("POST", "/entries").
			WithBodyJson(JSON{"room": "12345", "phone": "5551212"}).Do()
		Save(resp, "Add - out of range", `
			Rooms have up to 4 digits, phones up to 8 digits.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "room '12345': out of range",
				"description": "room must have up to 4 digits and phone up to 8 digits, both greater than zero",
			},
		})
	})

	a.Alternative("Add invalid character", func(a *biff.A) {
		resp := apiRequest("POST", "/entries").
			WithBodyJson(JSON{"room": "101", "phone": "555-1212"}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "phone '555-1212': invalid character",
				"description": "only decimal digits are allowed",
			},
		})
	})

	a.Alternative("Add entry", func(a *biff.A) {
		resp := apiRequest("POST", "/entries").
			WithBodyJson(JSON{"room": "101", "phone": "5551212"}).Do()
		Save(resp, "Add entry", `
			Room and phone are accepted both as strings and as numbers.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		biff.AssertEqualJson(resp.BodyJson(), JSON{"id": 1, "room": 101, "phone": 5551212})

		a.Alternative("Add second entry and sort", func(a *biff.A) {
			resp := apiRequest("POST", "/entries").
				WithBodyJson(JSON{"room": 102, "phone": 5550000}).Do()
			biff.AssertEqual(resp.StatusCode, http.StatusCreated)
			biff.AssertEqualJson(resp.BodyJson(), JSON{"id": 2, "room": 102, "phone": 5550000})

			resp = apiRequest("POST", "/entries:sort").
				WithBodyJson(JSON{"direction": "asc"}).Do()
			Save(resp, "Sort", `
				Entries are sorted by phone, entries with the same phone keep
				their relative order.
			`)
			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

			resp = apiRequest("GET", "/entries").Do()
			Save(resp, "List", ``)
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(decodeLines(resp.BodyString()), []JSON{
				{"room": 102, "phone": 5550000},
				{"room": 101, "phone": 5551212},
			})

			a.Alternative("Sort descending", func(a *biff.A) {
				resp := apiRequest("POST", "/entries:sort").
					WithBodyJson(JSON{"direction": "desc"}).Do()
				biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

				resp = apiRequest("GET", "/entries").Do()
				biff.AssertEqualJson(decodeLines(resp.BodyString()), []JSON{
					{"room": 101, "phone": 5551212},
					{"room": 102, "phone": 5550000},
				})
			})

			a.Alternative("Sort bad direction", func(a *biff.A) {
				resp := apiRequest("POST", "/entries:sort").
					WithBodyJson(JSON{"direction": "sideways"}).Do()
				biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			})

			a.Alternative("Find with filter", func(a *biff.A) {
				resp := apiRequest("POST", "/entries:find").
					WithBodyJson(JSON{
						"filter": JSON{
							"room": JSON{"$gt": 101},
						},
					}).Do()
				Save(resp, "Find - filter", `
					Filters are evaluated over every entry, there are no indexes.
				`)
				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(decodeLines(resp.BodyString()), []JSON{
					{"room": 102, "phone": 5550000},
				})
			})

			a.Alternative("Stats", func(a *biff.A) {
				resp := apiRequest("GET", "/stats").Do()
				Save(resp, "Stats", ``)
				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqual(resp.BodyJsonMap()["count"], json.Number("2"))
				biff.AssertEqual(resp.BodyJsonMap()["added"], json.Number("2"))
			})
		})

		a.Alternative("Find by room", func(a *biff.A) {
			resp := apiRequest("POST", "/entries:find").
				WithBodyJson(JSON{"room": "101"}).Do()
			Save(resp, "Find - by room", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(decodeLines(resp.BodyString()), []JSON{
				{"room": 101, "phone": 5551212},
			})
		})

		a.Alternative("Find by phone", func(a *biff.A) {
			resp := apiRequest("POST", "/entries:find").
				WithBodyJson(JSON{"phone": 5551212}).Do()
			Save(resp, "Find - by phone", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(decodeLines(resp.BodyString()), []JSON{
				{"room": 101, "phone": 5551212},
			})
		})

		a.Alternative("Find not found", func(a *biff.A) {
			resp := apiRequest("POST", "/entries:find").
				WithBodyJson(JSON{"phone": "1"}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})

		a.Alternative("Find without criteria", func(a *biff.A) {
			resp := apiRequest("POST", "/entries:find").
				WithBodyJson(JSON{}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})

		a.Alternative("Delete", func(a *biff.A) {
			resp := apiRequest("POST", "/entries:delete").
				WithBodyJson(JSON{"room": "101", "phone": "5551212"}).Do()
			Save(resp, "Delete", `
				Both room and phone must match. Every matching entry is removed.
			`)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"deleted": 1,
				"entries": []JSON{
					{"room": 101, "phone": 5551212},
				},
			})

			a.Alternative("Last deleted", func(a *biff.A) {
				resp := apiRequest("GET", "/entries:lastDeleted").Do()
				Save(resp, "Last deleted", `
					The batch removed by the most recent delete. It is cleared by the
					next add or delete.
				`)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), []JSON{
					{"room": 101, "phone": 5551212},
				})
			})

			a.Alternative("Delete again", func(a *biff.A) {
				resp := apiRequest("POST", "/entries:delete").
					WithBodyJson(JSON{"room": "101", "phone": "5551212"}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"error": JSON{
						"message":     "room 101 with phone 5551212: not found",
						"description": "no entry matches",
					},
				})
			})
		})

		a.Alternative("Persist and load", func(a *biff.A) {
			resp := apiRequest("POST", "/snapshot:persist").Do()
			Save(resp, "Snapshot - persist", `
				Writes the snapshot file atomically, one "room,phone" line per entry.
			`)
			biff.AssertEqual(resp.StatusCode, http.StatusOK)

			apiRequest("POST", "/entries").
				WithBodyJson(JSON{"room": "300", "phone": "3000"}).Do()

			resp = apiRequest("POST", "/snapshot:load").Do()
			Save(resp, "Snapshot - load", `
				Replaces the whole database with the snapshot file content.
			`)
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.BodyJsonMap()["count"], json.Number("1"))
			biff.AssertEqual(resp.BodyJsonMap()["added"], json.Number("1"))
		})
	})
}
