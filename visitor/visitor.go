package visitor

// Visitor is an interface that Visits over pairs of (key, element).
// The Visit method calls the provided callback for each pair.
// If the callback returns (false, nil), the Visit stops.
// If the callback returns an error, the Visit stops and returns that error.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error

// Sequence represents elements that can be visited by index
type Sequence struct {
	Visit Visitor[int, any]
	Len   int
}

// Elements returns all sequence elements
func (s Sequence) Elements() ([]any, error) {
	ret := make([]any, 0, s.Len)
	err := s.Visit(func(_ int, element any) (bool, error) {
		ret = append(ret, element)
		return true, nil
	})
	return ret, err
}

// First returns the first element
func (s Sequence) First() (any, bool) {
	var ret any
	found := false
	_ = s.Visit(func(_ int, element any) (bool, error) {
		ret, found = element, true
		return false, nil
	})
	return ret, found
}
