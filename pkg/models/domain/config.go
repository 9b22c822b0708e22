package domain

import "fmt"

// UnknownFeedPolicy decides what happens when a feed type has no norm.
type UnknownFeedPolicy string

const (
	// UnknownFeedReject fails the calculation with an invalid input error.
	UnknownFeedReject UnknownFeedPolicy = "reject"
	// UnknownFeedZero uses a zero norm and flags the result.
	UnknownFeedZero UnknownFeedPolicy = "zero"
)

func (p UnknownFeedPolicy) Valid() bool {
	return p == UnknownFeedReject || p == UnknownFeedZero
}

const (
	DefaultPrecision = 2
	MaxPrecision     = 10
)

// Profile is a named set of calculation settings.
type Profile struct {
	Name        string
	UnknownFeed UnknownFeedPolicy
	Precision   int32
}

func (p Profile) String() string {
	return fmt.Sprintf("%s:%s", p.Name, p.UnknownFeed)
}
