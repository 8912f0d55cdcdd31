package tree

import "container/heap"

// HeapItem is a word ranked by how often it occurs.
type HeapItem struct {
	Word  string
	Count int
	Index int
}

// MinHeap keeps the weakest item on top: lowest count first, and on equal
// counts the alphabetically last word, so that popping evicts the entry a
// top-n ranking would drop.
type MinHeap []*HeapItem

func (mh MinHeap) Len() int {
	return len(mh)
}

func (mh MinHeap) Less(i, j int) bool {
	if mh[i].Count == mh[j].Count {
		return mh[i].Word > mh[j].Word
	} else {
		return mh[i].Count < mh[j].Count
	}
}

func (mh MinHeap) Swap(i, j int) {
	mh[i], mh[j] = mh[j], mh[i]
	mh[i].Index = i
	mh[j].Index = j
}

func (mh *MinHeap) Push(x interface{}) {
	n := len(*mh)
	item := x.(*HeapItem)
	item.Index = n
	*mh = append(*mh, item)
}

func (mh *MinHeap) Pop() interface{} {
	old := *mh
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	item.Index = -1
	*mh = old[0 : n-1]
	return item
}

func (mh *MinHeap) Top() *HeapItem {
	arr := *mh
	return arr[0]
}

func (mh *MinHeap) Update(item *HeapItem, count int) {
	item.Count = count
	heap.Fix(mh, item.Index)
}

// Offer pushes item while the heap holds fewer than limit items, otherwise
// replaces the top if item outranks it.
func (mh *MinHeap) Offer(item *HeapItem, limit int) {
	if limit <= 0 {
		return
	}
	if mh.Len() < limit {
		heap.Push(mh, item)
		return
	}
	top := mh.Top()
	if item.Count > top.Count || (item.Count == top.Count && item.Word < top.Word) {
		top.Word = item.Word
		mh.Update(top, item.Count)
	}
}

func NewMinHeap(initSize int) *MinHeap {
	mh := make(MinHeap, 0, initSize)
	heap.Init(&mh)
	return &mh
}
