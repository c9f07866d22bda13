package main

import (
	"fmt"
	"net/http"
	"os"
	"sync/atomic"
	"time"
)

// TestDelete removes the entries generated by TestAdd. Every delete scans the
// whole store, so throughput drops with the store size.
func TestDelete(c Config) {

	client := NewClient()

	items := c.N
	var deleted, missing int64

	t0 := time.Now()
	Parallel(c.Workers, func() {
		for {
			n := atomic.AddInt64(&items, -1)
			if n < 0 {
				return
			}
			status, err := Post(client, c.Base+"/v1/entries:delete", generated(n))
			if err != nil {
				fmt.Println("ERROR: delete:", err.Error())
				os.Exit(4)
			}
			switch status {
			case http.StatusOK:
				atomic.AddInt64(&deleted, 1)
			case http.StatusNotFound:
				atomic.AddInt64(&missing, 1)
			}
		}
	})

	took := time.Since(t0)
	fmt.Println("deleted:", deleted)
	fmt.Println("not found:", missing)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f deletes/sec\n", float64(c.N)/took.Seconds())

	PrintStats(client, c.Base)
}
