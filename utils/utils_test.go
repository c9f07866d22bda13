package utils

import (
	"testing"

	. "github.com/fulldump/biff"
)

func TestGetKeys(t *testing.T) {
	keys := GetKeys(map[string]int{"desc": 1, "asc": 0, "a": 0})
	AssertEqual(keys, []string{"a", "asc", "desc"})
}

func TestRemarshal(t *testing.T) {
	input := struct {
		Room  int   `json:"room"`
		Phone int64 `json:"phone"`
	}{101, 5551212}

	output := map[string]interface{}{}
	err := Remarshal(input, &output)

	AssertNil(err)
	AssertEqual(output, map[string]interface{}{"room": float64(101), "phone": float64(5551212)})
}
