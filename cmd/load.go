package cmd

import (
	"fmt"

	"github.com/csalas-alarcon/genoma-humano/internal/seqio"
	"github.com/csalas-alarcon/genoma-humano/internal/seqlist"
)

// loadList reads the sequences in each file, in order, to the back of a new list.
// Invalid sequences are skipped with a warning, or fail the load if conf.Strict
func loadList(paths []string) (*seqlist.List, error) {
	l := seqlist.New()
	for _, path := range paths {
		entries, err := seqio.Load(path, conf.Format)
		if err != nil {
			return nil, err
		}

		loaded := 0
		for i, e := range entries {
			s, ok := e.Sequence()
			if !ok {
				if conf.Strict {
					return nil, fmt.Errorf("invalid sequence %d (%q) in %s", i+1, e.Desc, path)
				}
				stderr.Printf("skipping invalid sequence %d (%q) in %s", i+1, e.Desc, path)
				continue
			}

			l.PushBack(s)
			loaded++
		}

		if conf.Verbose {
			stderr.Printf("loaded %d of %d sequences from %s", loaded, len(entries), path)
		}
	}

	return l, nil
}
