package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fulldump/goconfig"
)

type Config struct {
	Test    string `usage:"name of the test: ALL | ADD | DELETE"`
	Base    string `usage:"base URL, empty starts a local server"`
	N       int64  `usage:"number of entries"`
	Workers int    `usage:"number of workers"`
}

var cleanups []func()

func main() {

	defer func() {
		fmt.Println("Cleaning up...")
		for _, cleanup := range cleanups {
			cleanup()
		}
	}()

	c := Config{
		Test:    "all",
		Base:    "",
		N:       10_000,
		Workers: 16,
	}
	goconfig.Read(&c)

	if c.Base == "" {
		start, stop := CreateServer(&c)
		defer stop()
		go start()
		time.Sleep(100 * time.Millisecond)
	}

	switch strings.ToUpper(c.Test) {
	case "ALL":
		TestAdd(c)
		TestDelete(c)
	case "ADD":
		TestAdd(c)
	case "DELETE":
		TestDelete(c)
	default:
		log.Fatalf("Unknown test %s", c.Test)
	}

}
