package results

import "time"

type entry struct {
	record Record
	added  time.Time
}

// Store keeps records newest first. Index 0 is always the most recent
// arrival. Duplicate ids are kept as separate rows.
type Store struct {
	// entries is in arrival order; At reverses it.
	entries []entry
}

// InsertAtTop adds a record at index 0.
func (s *Store) InsertAtTop(r Record) {
	s.push(r, time.Time{})
}

func (s *Store) push(r Record, at time.Time) {
	s.entries = append(s.entries, entry{record: r, added: at})
}

// Clear drops every record.
func (s *Store) Clear() {
	s.entries = nil
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	return len(s.entries)
}

// At returns the record at newest-first index i.
func (s *Store) At(i int) Record {
	return s.entries[len(s.entries)-1-i].record
}

func (s *Store) addedAt(i int) time.Time {
	return s.entries[len(s.entries)-1-i].added
}

// Records returns a newest-first copy of the store.
func (s *Store) Records() []Record {
	if len(s.entries) == 0 {
		return nil
	}
	out := make([]Record, len(s.entries))
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}
