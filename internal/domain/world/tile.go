package world

// Kind orders terrain by solidity layer: deep water at the bottom, grass on
// top. Blending and collision both rely on this ordering.
type Kind uint8

const (
	DeepWater Kind = iota
	ShallowWater
	Sand
	Grass
)

func (k Kind) String() string {
	switch k {
	case DeepWater:
		return "deep_water"
	case ShallowWater:
		return "shallow_water"
	case Sand:
		return "sand"
	case Grass:
		return "grass"
	default:
		return "unknown"
	}
}

type ContentType uint8

const (
	ContentEmpty ContentType = iota
	ContentItem
	ContentStructure
	ContentStump
)

// Content is the tagged occupant of a tile. Exactly one variant is active at
// a time, so a loose item and a placed structure can never coexist.
type Content struct {
	Type      ContentType `json:"type"`
	Item      string      `json:"item,omitempty"`       // item or structure kind
	ChoppedAt int64       `json:"chopped_at,omitempty"` // game minute a stump was cut
}

func Empty() Content {
	return Content{Type: ContentEmpty}
}

func ItemContent(kind string) Content {
	return Content{Type: ContentItem, Item: kind}
}

func StructureContent(kind string) Content {
	return Content{Type: ContentStructure, Item: kind}
}

func StumpContent(choppedAt int64) Content {
	return Content{Type: ContentStump, ChoppedAt: choppedAt}
}

func (c Content) IsEmpty() bool {
	return c.Type == ContentEmpty
}

type Tile struct {
	Kind    Kind    `json:"kind"`
	Content Content `json:"content"`
	// Variant is a per-tile random seed fixed at generation, used by
	// renderers for stable decoration. Never mutated afterwards.
	Variant uint8 `json:"variant"`
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}
