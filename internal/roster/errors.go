package roster

import (
	"errors"
	"fmt"
)

var (
	// ErrListing marks a failed page-listing request.
	ErrListing = errors.New("listing failed")
	// ErrDetail marks a failed detail request.
	ErrDetail = errors.New("detail failed")
)

// Kind classifies a load failure.
type Kind int

const (
	KindListing Kind = iota + 1
	KindDetail
)

func (k Kind) String() string {
	switch k {
	case KindListing:
		return "listing"
	case KindDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// LoadError reports a page load that failed as a unit.
type LoadError struct {
	Kind Kind
	Page Page
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load page offset=%d limit=%d: %s: %v", e.Page.Offset, e.Page.Limit, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrListing and ErrDetail by kind.
func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrListing:
		return e.Kind == KindListing
	case ErrDetail:
		return e.Kind == KindDetail
	}
	return false
}
