package domain

// Bucket is a default-valued mapping from string keys to value lists.
// Reading a missing key yields an empty list without creating the key;
// appending to a missing key creates it. Per-key append order is preserved.
//
// Bucket is not safe for concurrent use.
type Bucket struct {
	data map[string][]any
}

// NewBucket creates an empty bucket.
func NewBucket() *Bucket {
	return &Bucket{data: make(map[string][]any)}
}

// Get returns the values for key, or an empty list if the key is absent.
// The returned slice must not be mutated by the caller.
func (b *Bucket) Get(key string) []any {
	return b.data[key]
}

// Append adds values to the list for key, creating the key if needed.
func (b *Bucket) Append(key string, values ...any) {
	b.data[key] = append(b.data[key], values...)
}

// Has returns true if the key has been created by a previous Append.
func (b *Bucket) Has(key string) bool {
	_, ok := b.data[key]
	return ok
}

// Len returns the number of created keys.
func (b *Bucket) Len() int {
	return len(b.data)
}

// Keys returns the created keys in unspecified order.
func (b *Bucket) Keys() []string {
	keys := make([]string, 0, len(b.data))
	for k := range b.data {
		keys = append(keys, k)
	}
	return keys
}
