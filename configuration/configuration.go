package configuration

import (
	"github.com/fulldump/phonebookdb/phonebook"
)

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	Dir               string `usage:"data directory, empty runs in RAM mode"`
	Snapshot          string `usage:"snapshot file name inside the data directory"`
	Capacity          int    `usage:"maximum number of entries"`
	Console           bool   `usage:"run the interactive menu instead of the HTTP server"`
	Statics           string `usage:"statics directory, empty serves the embedded web console"`
	ApiKey            string `usage:"api key, empty disables authentication"`
	ApiSecret         string `usage:"api secret"`
	EnableCompression bool   `usage:"gzip responses"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:          "127.0.0.1:8080",
		Dir:               "data",
		Snapshot:          "phonebook.db",
		Capacity:          phonebook.DefaultCapacity,
		Console:           false,
		EnableCompression: true,
		ShowBanner:        true,
		ShowConfig:        false,
	}
}
