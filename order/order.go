// This package implements the recency order of the cache: a total order
// over resident keys from least- to most-recently-used.

package order

/*
node represents ONE key inside the recency structure. We use a
doubly-linked list to track usage order.
*/
type node struct {
	// key is the cache key this node represents
	key string

	// prev points to the node that was used just after this one
	prev *node

	// next points to the node that was used just before this one
	next *node
}

/*
List is the recency order. It pairs a hash map (key → node, for O(1)
access to any position) with an intrusive doubly-linked list (for O(1)
move-to-front, O(1) tail lookup, and O(1) unlink).

Go maps do not order their iteration, so the order has to be explicit;
this is the same structure the LRU eviction policy of any cache uses,
just exposed as a reusable order rather than hidden inside a policy.

head is the MOST recently used key; tail is the LEAST recently used.
*/
type List struct {
	nodes map[string]*node
	head  *node
	tail  *node
}

func New() *List {
	return &List{nodes: make(map[string]*node)}
}

// Touch marks a key as most recently used. If the key is not tracked
// yet, it is inserted at the most-recent end.
func (l *List) Touch(key string) {
	if n, ok := l.nodes[key]; ok {
		l.moveToFront(n)
		return
	}
	n := &node{key: key}
	l.nodes[key] = n
	l.addFront(n)
}

// Candidate returns the least-recently-used key without removing it.
// The second return is false when the order is empty.
func (l *List) Candidate() (string, bool) {
	if l.tail == nil {
		return "", false
	}
	return l.tail.key, true
}

// Remove deletes a key from the order. It reports whether the key was
// present, so callers can detect bookkeeping drift.
func (l *List) Remove(key string) bool {
	n, ok := l.nodes[key]
	if !ok {
		return false
	}
	l.unlink(n)
	delete(l.nodes, key)
	return true
}

// Contains reports whether the key has a position in the order.
func (l *List) Contains(key string) bool {
	_, ok := l.nodes[key]
	return ok
}

// Len returns how many keys the order tracks.
func (l *List) Len() int {
	return len(l.nodes)
}

// Clear drops every tracked key.
func (l *List) Clear() {
	l.nodes = make(map[string]*node)
	l.head = nil
	l.tail = nil
}

/*
Keys returns a snapshot of the order from most- to least-recently-used.
The snapshot is a plain slice: iterating it is naturally restartable,
and later mutation of the order does not affect it.
*/
func (l *List) Keys() []string {
	keys := make([]string, 0, len(l.nodes))
	for n := l.head; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

/*
KeysOldestFirst returns the reverse snapshot: least- to
most-recently-used. Because a touch re-inserts a key at the recent end,
this is also the insertion order of the resident keys, which is the
order scans like Find and ForEach use.
*/
func (l *List) KeysOldestFirst() []string {
	keys := make([]string, 0, len(l.nodes))
	for n := l.tail; n != nil; n = n.prev {
		keys = append(keys, n.key)
	}
	return keys
}

// addFront adds a node to the front of the linked list. This marks the
// node as most recently used.
func (l *List) addFront(n *node) {
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n

	// If the list was empty, head and tail are the same
	if l.tail == nil {
		l.tail = n
	}
}

// unlink removes a node from the linked list, fixing up neighbor
// pointers and head/tail as needed.
func (l *List) unlink(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
}

// moveToFront re-marks an already-tracked key as most recently used.
func (l *List) moveToFront(n *node) {
	if l.head == n {
		return
	}
	l.unlink(n)
	l.addFront(n)
}
