package watch

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestHintCell_SetGetClear(t *testing.T) {
	h := NewHintCell()
	if h.Get() != "" {
		t.Fatalf("new cell should be empty, got %q", h.Get())
	}

	h.Set("first")
	h.Set("second")
	if h.Get() != "second" {
		t.Errorf("Get() = %q, want last write", h.Get())
	}

	h.Clear()
	if h.Get() != "" {
		t.Errorf("Get() after Clear = %q", h.Get())
	}
}

// TestHintCell_ConcurrentAccess interleaves shell reads with loop writes.
// Every read must observe one complete value that was written.
func TestHintCell_ConcurrentAccess(t *testing.T) {
	const writers, writes, readers = 4, 200, 8

	valid := make(map[string]bool)
	for w := 0; w < writers; w++ {
		valid[hintValue(w)] = true
	}
	valid[""] = true

	h := NewHintCell()
	var wg sync.WaitGroup
	stop := make(chan struct{})
	bad := make(chan string, readers)

	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				if got := h.Get(); !valid[got] {
					bad <- got
					return
				}
			}
		}()
	}

	var writersWG sync.WaitGroup
	for w := 0; w < writers; w++ {
		writersWG.Add(1)
		go func(w int) {
			defer writersWG.Done()
			for i := 0; i < writes; i++ {
				h.Set(hintValue(w))
			}
		}(w)
	}
	writersWG.Wait()
	close(stop)
	wg.Wait()
	close(bad)

	for got := range bad {
		t.Errorf("observed torn hint %q", got)
	}
}

func hintValue(w int) string {
	return strings.Repeat(fmt.Sprintf("hint-%d;", w), 64)
}
