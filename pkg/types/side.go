package types

// SideType defines the direction of an open position
type SideType string

const (
	SideTypeLong  = SideType("LONG")
	SideTypeShort = SideType("SHORT")
)

func (side SideType) Reverse() SideType {
	switch side {
	case SideTypeLong:
		return SideTypeShort

	case SideTypeShort:
		return SideTypeLong
	}

	return side
}

func (side SideType) IsValid() bool {
	return side == SideTypeLong || side == SideTypeShort
}

func (side SideType) String() string {
	return string(side)
}
