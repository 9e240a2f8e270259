package results

import (
	"strings"
	"time"
)

// documentPrefix is stripped from record ids when building viewer links.
const documentPrefix = "file_"

// Record is one graded document as pushed by the server. Records are
// immutable once created and identified by ID.
type Record struct {
	ID          string
	FileName    string
	Score       string
	ProcessedAt time.Time
	ProcessedBy string
}

// DocumentID returns the id the document viewer expects.
func (r Record) DocumentID() string {
	return strings.TrimPrefix(r.ID, documentPrefix)
}

// ViewerPath joins the viewer route prefix and the document id.
func (r Record) ViewerPath(prefix string) string {
	id := r.DocumentID()
	if prefix == "" {
		return id
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + id
}
