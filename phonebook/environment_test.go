package phonebook

import (
	"fmt"
	"os"
	"path"
	"time"
)

func Environment(f func(filename string)) {
	filename := path.Join(os.TempDir(), fmt.Sprintf("phonebook-%v", time.Now().UnixNano()))
	defer os.Remove(filename)

	f(filename)
}
