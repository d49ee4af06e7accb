package main

import (
	"fmt"
	"log"
	"os"
	"slices"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"lrucache/internal/cache"
)

func main() {
	app := &cli.App{
		Name:  "lrucache",
		Usage: "demonstrate fixed-capacity LRU cache behaviour",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "capacity",
				Value: 5,
				Usage: "maximum number of resident entries",
			},
			&cli.IntFlag{
				Name:  "entries",
				Value: 10,
				Usage: "number of sample entries to insert",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Value: 42,
				Usage: "seed for generated sample values",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx *cli.Context) error {
	capacity := ctx.Int("capacity")
	entries := ctx.Int("entries")
	faker := gofakeit.New(ctx.Uint64("seed"))

	c, err := cache.New[string, string](capacity)
	if err != nil {
		return errors.Wrap(err, "constructing cache")
	}

	log.Printf("lrucache demo: capacity=%d, inserting %d entries", capacity, entries)

	// -------------------------------------------------------------------
	// 1) Fill past capacity; each overflowing insert evicts exactly the
	//    least recently used key.
	// -------------------------------------------------------------------
	for i := 0; i < entries; i++ {
		key := fmt.Sprintf("key%d", i)
		c.Put(key, faker.Word())
		log.Printf("PUT %-6s (MRU->LRU: %v)", key, slices.Collect(c.Keys()))
	}

	if entries > capacity {
		if _, ok := c.Get("key0"); !ok {
			log.Println("GET key0: miss (evicted as LRU)")
		}
	}

	if k, v, ok := c.Newest(); ok {
		log.Printf("newest: %s=%q", k, v)
	}
	if k, v, ok := c.Oldest(); ok {
		log.Printf("oldest: %s=%q", k, v)
	}

	// -------------------------------------------------------------------
	// 2) Touch the oldest resident key; it becomes the newest and the
	//    eviction victim shifts accordingly.
	// -------------------------------------------------------------------
	if k, _, ok := c.Oldest(); ok {
		if v, hit := c.Get(k); hit {
			log.Printf("GET %s = %q (promoted to MRU)", k, v)
		}
		c.Put("extra", faker.Word())
		log.Printf("PUT extra  (MRU->LRU: %v)", slices.Collect(c.Keys()))
	}

	log.Printf("done: %d/%d entries resident", c.Len(), c.Cap())
	return nil
}
