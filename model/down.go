package model

import "fmt"

// Down is the numbered attempt (1st-4th) within a set of downs.
type Down int

const (
	DownFirst  Down = 1
	DownSecond Down = 2
	DownThird  Down = 3
	DownFourth Down = 4
)

func (d Down) Valid() bool {
	return d >= DownFirst && d <= DownFourth
}

func (d Down) String() string {
	switch d {
	case DownFirst:
		return "1st"
	case DownSecond:
		return "2nd"
	case DownThird:
		return "3rd"
	case DownFourth:
		return "4th"
	default:
		return fmt.Sprintf("down(%d)", int(d))
	}
}
