package common

// LinkedMap implements linked map which keeps the first-insertion order of keys,
// it's not safe for concurrent use
type LinkedMap[K comparable, V any] struct {
	keys []K
	m    map[K]V
}

// NewLinkedMap create linked map
func NewLinkedMap[K comparable, V any]() *LinkedMap[K, V] {
	return &LinkedMap[K, V]{m: map[K]V{}}
}

// Put put value with key, the position of an exist key is not changed
func (p *LinkedMap[K, V]) Put(key K, value V) {
	if _, ok := p.m[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.m[key] = value
}

// Get value with key
func (p *LinkedMap[K, V]) Get(key K) (val V, ok bool) {
	val, ok = p.m[key]
	return
}

// Len return the length of the map
func (p *LinkedMap[K, V]) Len() int {
	return len(p.keys)
}

// Clear remove all entries
func (p *LinkedMap[K, V]) Clear() {
	p.keys = nil
	p.m = map[K]V{}
}

// Range calls f for each entry in order, stop when f returns false
func (p *LinkedMap[K, V]) Range(f func(key K, value V) bool) {
	for _, key := range p.keys {
		if !f(key, p.m[key]) {
			return
		}
	}
}

// Clone return a copy of the map with the same order
func (p *LinkedMap[K, V]) Clone() *LinkedMap[K, V] {
	n := &LinkedMap[K, V]{
		keys: append([]K(nil), p.keys...),
		m:    make(map[K]V, len(p.m)),
	}
	for k, v := range p.m {
		n.m[k] = v
	}
	return n
}
