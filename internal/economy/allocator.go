package economy

// Allocator issues character ids. The first id is 0 and ids are never reused.
type Allocator struct {
	next uint64
}

// Next returns the current counter value, then increments it
func (a *Allocator) Next() uint64 {
	id := a.next
	a.next++
	return id
}

// Peek returns the id the next call to Next will return
func (a *Allocator) Peek() uint64 {
	return a.next
}
