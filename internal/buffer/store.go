package buffer

// Store owns one Buffer per Field. The zero value is ready to use: every
// buffer starts empty with its cursor at zero.
type Store struct {
	buffers [NumFields]Buffer
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the buffer for f. Text and cursor travel together so an edit
// and the cursor update that follows it always see the same state.
func (s *Store) Get(f Field) *Buffer {
	return &s.buffers[f]
}

// Snapshot copies every buffer, indexed by Field.
func (s *Store) Snapshot() [NumFields]Snapshot {
	var out [NumFields]Snapshot
	for _, f := range Fields {
		out[f] = s.buffers[f].Snapshot()
	}
	return out
}
