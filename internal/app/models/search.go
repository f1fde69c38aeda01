package models

// RatingSortHigh orders search results by average rating, best first
const RatingSortHigh = "high"

// StudentSearch is a resolved search over one department. In discrete mode
// NameTerm and the id sets are ANDed; in free-text mode the name predicate and
// the id sets are ORed.
type StudentSearch struct {
	// ProgramIDs scopes the search; an empty set matches nothing.
	ProgramIDs []int64

	// FreeText selects OR combination instead of AND.
	FreeText bool

	// Name predicates. NameTerm matches first OR last name. FirstTerm/LastTerm
	// match first and last name respectively and are ORed. FullNameTerm matches
	// "first last".
	NameTerm     string
	FirstTerm    string
	LastTerm     string
	FullNameTerm string

	// SkillStudentIDs and CourseStudentIDs are nil when the filter is absent.
	// A non-nil empty slice means the filter matched nothing.
	SkillStudentIDs  []int64
	CourseStudentIDs []int64
}

// HasNamePredicate reports whether any name term is set
func (s *StudentSearch) HasNamePredicate() bool {
	return s.NameTerm != "" || s.FirstTerm != "" || s.LastTerm != "" || s.FullNameTerm != ""
}
