package main

import (
	"fmt"
	"net/http"
	"os"
	"sync/atomic"
	"time"
)

func TestAdd(c Config) {

	client := NewClient()

	items := c.N
	var full int64

	t0 := time.Now()
	Parallel(c.Workers, func() {
		for {
			n := atomic.AddInt64(&items, -1)
			if n < 0 {
				return
			}
			status, err := Post(client, c.Base+"/v1/entries", generated(n))
			if err != nil {
				fmt.Println("ERROR: add:", err.Error())
				os.Exit(3)
			}
			if status == http.StatusInsufficientStorage {
				atomic.AddInt64(&full, 1)
			}
		}
	})

	took := time.Since(t0)
	fmt.Println("sent:", c.N)
	fmt.Println("rejected (full):", full)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f adds/sec\n", float64(c.N)/took.Seconds())

	PrintStats(client, c.Base)
}
