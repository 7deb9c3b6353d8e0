// Package wordtree counts word occurrences using an unbalanced binary search tree
// and reports them in alphabetical order.
package wordtree

import (
	"fmt"
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/outofforest/wordtree/tokenize"
	"github.com/outofforest/wordtree/tree"
)

// Counter counts occurrences of words.
//
// The underlying tree does no synchronization on its own, so every operation of the counter
// holds the lock for its whole duration. It's safe to use the counter from many goroutines.
type Counter struct {
	mu   sync.Mutex
	tree *tree.Tree
}

// New creates new counter.
func New(opts ...tree.Option) *Counter {
	return &Counter{
		tree: tree.New(opts...),
	}
}

// Add records single occurrence of the word.
func (c *Counter) Add(word string) error {
	return c.AddN(word, 1)
}

// AddN records n occurrences of the word.
func (c *Counter) AddN(word string, n int) error {
	if n <= 0 {
		return errors.Errorf("invalid count %d for word %q", n, word)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.add(word, n)
}

func (c *Counter) add(word string, n int) error {
	if err := c.tree.Add(tree.Item{Word: word, Count: n}); err != nil {
		return errors.Wrapf(err, "adding word %q failed", word)
	}
	return nil
}

// Count returns the number of recorded occurrences of the word.
func (c *Counter) Count(word string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, exists := c.tree.Find(word)
	if !exists {
		return 0
	}
	return n.Count()
}

// Remove forgets the word.
func (c *Counter) Remove(word string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.tree.Delete(word); err != nil {
		return errors.Wrapf(err, "removing word %q failed", word)
	}
	return nil
}

// Len returns the number of distinct words.
func (c *Counter) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tree.Len()
}

// Full returns true if no new distinct word can be recorded.
func (c *Counter) Full() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tree.IsFull()
}

// Reset forgets all the words.
func (c *Counter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tree.DeleteAll()
}

// ReadWords records every word read from r. It returns the number of words recorded.
// Processing stops on the first error, words recorded before stay in the counter.
// When the counter runs out of capacity the returned error matches tree.ErrFull.
func (c *Counter) ReadWords(r io.Reader) (int64, error) {
	var count int64
	err := tokenize.Tokenize(r, func(word string) error {
		c.mu.Lock()
		defer c.mu.Unlock()

		if err := c.add(word, 1); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}

// Snapshot returns all the recorded words sorted alphabetically.
func (c *Counter) Snapshot() []tree.Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]tree.Item, 0, c.tree.Len())
	c.tree.Traverse(func(item tree.Item) {
		items = append(items, item)
	})
	return items
}

// Words returns all the recorded words sorted alphabetically.
func (c *Counter) Words() []string {
	return lo.Map(c.Snapshot(), func(item tree.Item, _ int) string {
		return item.Word
	})
}

// WriteReport writes "word: count" line for every recorded word, in alphabetical order.
func (c *Counter) WriteReport(w io.Writer) error {
	for _, item := range c.Snapshot() {
		if _, err := fmt.Fprintf(w, "%s: %d\n", item.Word, item.Count); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
