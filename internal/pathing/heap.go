package pathing

// Heap is an indexed binary min-heap keyed by float64 scores. A side map from
// item identity to current slot is maintained on every swap, so Contains is
// O(1) and Rescore (A*'s decrease-key) is O(log n) with no linear scan.
// All operations are total: popping an empty heap or rescoring an absent item
// returns a negative result instead of panicking.
type Heap[T comparable] struct {
	entries []heapEntry[T]
	slots   map[T]int
}

type heapEntry[T comparable] struct {
	item  T
	score float64
}

// NewHeap creates an empty heap.
func NewHeap[T comparable]() *Heap[T] {
	return &Heap[T]{slots: make(map[T]int)}
}

// Len returns the number of queued items.
func (h *Heap[T]) Len() int {
	return len(h.entries)
}

// Contains reports whether item is currently queued.
func (h *Heap[T]) Contains(item T) bool {
	_, ok := h.slots[item]
	return ok
}

// Push queues item with the given score. Pushing an item that is already
// queued rescores it instead of duplicating it.
func (h *Heap[T]) Push(item T, score float64) {
	if _, ok := h.slots[item]; ok {
		h.Rescore(item, score)
		return
	}
	h.entries = append(h.entries, heapEntry[T]{item: item, score: score})
	h.slots[item] = len(h.entries) - 1
	h.siftUp(len(h.entries) - 1)
}

// Pop removes and returns the minimum-scored item, or the zero value and
// false when the heap is empty.
func (h *Heap[T]) Pop() (T, bool) {
	if len(h.entries) == 0 {
		var zero T
		return zero, false
	}
	top := h.entries[0].item
	last := len(h.entries) - 1
	h.swap(0, last)
	h.entries = h.entries[:last]
	delete(h.slots, top)
	if last > 0 {
		h.siftDown(0)
	}
	return top, true
}

// Rescore updates a queued item's score and re-sifts it. It reports whether
// the item was present.
func (h *Heap[T]) Rescore(item T, score float64) bool {
	i, ok := h.slots[item]
	if !ok {
		return false
	}
	old := h.entries[i].score
	h.entries[i].score = score
	if score < old {
		h.siftUp(i)
	} else {
		h.siftDown(i)
	}
	return true
}

func (h *Heap[T]) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.slots[h.entries[i].item] = i
	h.slots[h.entries[j].item] = j
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.entries[parent].score <= h.entries[i].score {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.entries)
	for {
		least := i
		if left := 2*i + 1; left < n && h.entries[left].score < h.entries[least].score {
			least = left
		}
		if right := 2*i + 2; right < n && h.entries[right].score < h.entries[least].score {
			least = right
		}
		if least == i {
			return
		}
		h.swap(i, least)
		i = least
	}
}
