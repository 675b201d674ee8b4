package tile

// ExclusionSet is a set of ordered (from,to) asset-name pairs forbidden
// from being adjacent regardless of socket compatibility.
//
// Exclusions are ordered, matching Rust's HashSet<(&str,&str)>:
// excluding "a" from neighboring "b" in one
// direction does not automatically exclude "b" neighboring "a" — callers
// who want a symmetric exclusion must supply both (a,b) and (b,a).
type ExclusionSet map[[2]string]struct{}

// NewExclusionSet builds an ExclusionSet from the given ordered pairs.
func NewExclusionSet(pairs ...[2]string) ExclusionSet {
	s := make(ExclusionSet, len(pairs))
	for _, p := range pairs {
		s[p] = struct{}{}
	}

	return s
}

// Contains reports whether (from,to) is an excluded ordered pair.
func (s ExclusionSet) Contains(from, to string) bool {
	_, ok := s[[2]string{from, to}]

	return ok
}
