package models

// Fees holds a student's fee ledger. Due is always recomputed as
// Total - Paid whenever either side changes; it is never entered directly.
type Fees struct {
	Total int `json:"total" example:"50000"` // Total fees assessed
	Paid  int `json:"paid" example:"20000"`  // Amount paid so far
	Due   int `json:"due" example:"30000"`   // Outstanding balance (Total - Paid)
}

// Registration holds a student's enrollment state. Courses stores course IDs;
// membership is treated as a set even though order is preserved.
type Registration struct {
	Status  string   `json:"status" example:"Completed"`
	Courses []string `json:"courses"`
}

// Library holds a student's library loans. Issued keeps titles in issue
// order; the same title may legitimately appear more than once.
type Library struct {
	Issued []string `json:"issued"`
	Fines  int      `json:"fines" example:"0"`
}

// Student defines a student record. Password is kept as an opaque plaintext
// string because the system this replaces stored it that way; it round-trips
// through snapshots but is stripped from API responses at the DTO layer.
type Student struct {
	ID           string            `json:"id" example:"user1"`               // Unique identifier for the student record
	Name         string            `json:"name" example:"Priya Sharma"`      // Student's full name
	Email        string            `json:"email" example:"priya@example.com"`// Student's email address (unique)
	Password     string            `json:"password"`                         // Plaintext credential inherited from the demo dataset
	StudentID    string            `json:"studentId" example:"100001"`       // 6-digit display code
	Fees         Fees              `json:"fees"`
	Registration Registration      `json:"registration"`
	Results      map[string]string `json:"results"` // semester label -> grade label
	Library      Library           `json:"library"`
}

// Clone returns a deep copy so callers can never reach into store-owned state.
func (s Student) Clone() Student {
	out := s
	if s.Registration.Courses != nil {
		out.Registration.Courses = append([]string(nil), s.Registration.Courses...)
	}
	if s.Library.Issued != nil {
		out.Library.Issued = append([]string(nil), s.Library.Issued...)
	}
	if s.Results != nil {
		out.Results = make(map[string]string, len(s.Results))
		for k, v := range s.Results {
			out.Results[k] = v
		}
	}
	return out
}

// IsEnrolled reports whether the student's registration references courseID.
func (s Student) IsEnrolled(courseID string) bool {
	for _, id := range s.Registration.Courses {
		if id == courseID {
			return true
		}
	}
	return false
}
