package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/phonebookdb/bootstrap"
	"github.com/fulldump/phonebookdb/configuration"
	"github.com/fulldump/phonebookdb/console"
)

var VERSION = "dev"

var banner = `
 ____  _                      _                 _    ____  ____  
|  _ \| |__   ___  _ __   ___| |__   ___   ___ | | _|  _ \| __ ) 
| |_) | '_ \ / _ \| '_ \ / _ \ '_ \ / _ \ / _ \| |/ / | | |  _ \ 
|  __/| | | | (_) | | | |  __/ |_) | (_) | (_) |   <| |_| | |_) |
|_|   |_| |_|\___/|_| |_|\___|_.__/ \___/ \___/|_|\_\____/|____/ 
                                                 version ` + VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	bootstrap.VERSION = VERSION

	if c.Console {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer cancel()

		db := bootstrap.NewDatabase(&c)
		err := console.Run(ctx, os.Stdin, os.Stdout, db)
		if err != nil {
			fmt.Println("ERROR:", err.Error())
			os.Exit(1)
		}
		return
	}

	start, _ := bootstrap.Bootstrap(&c)
	start()
}
