package custody

import "fmt"

type Side int

const (
	SideBuy Side = iota
	SideSell
)

func ParseSide(value string) (Side, error) {
	switch value {
	case "BUY":
		return SideBuy, nil
	case "SELL":
		return SideSell, nil
	}

	return -1, fmt.Errorf("unknown side: [%v]", value)
}

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	default:
		panic("unknown side")
	}
}
