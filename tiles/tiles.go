// Package tiles holds the static tile catalog: the mapping from 9-character
// pixel signatures to tile descriptors. The catalog is plain configuration
// data loaded from an embedded YAML file - no dependencies on ebitengine,
// donburi, or resolv, so it can be used by tools and tests directly.
package tiles

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// SignatureLen is the length of a block signature: a 3x3 pixel block read
// top row left-to-right, then middle, then bottom.
const SignatureLen = 9

// Kind classifies what a tile does in the world.
type Kind int

const (
	KindBlock Kind = iota // solid, walkable geometry
	KindDanger            // solid geometry that kills on contact
	KindSave              // checkpoint marker, no collision
	KindStart             // level start marker, no collision
	KindEnd               // level end marker, no collision
	KindSkin              // player skin sprite, never placed in a level
)

func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindDanger:
		return "danger"
	case KindSave:
		return "save"
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	case KindSkin:
		return "skin"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Color is the four-way player/tile color plus ColorNone for neutral tiles.
type Color int

const (
	ColorNone Color = iota
	ColorWhite
	ColorRed
	ColorGreen
	ColorBlue
)

func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorWhite:
		return "white"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Sprite addresses a cell in the tile sheet.
type Sprite struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// Descriptor is an immutable catalog entry for one tile type.
type Descriptor struct {
	Name      string
	Signature string // empty for skins, which are never placed
	Kind      Kind
	Color     Color // ColorNone for neutral tiles
	Sprite    Sprite
}

// Catalog maps block signatures to tile descriptors. Built once at startup,
// read-only afterwards.
type Catalog struct {
	bySignature map[string]Descriptor
	skins       map[Color]Descriptor
}

// rawEntry is the YAML shape of one catalog entry.
type rawEntry struct {
	Name      string `yaml:"name"`
	Signature string `yaml:"signature"`
	Kind      string `yaml:"kind"`
	Color     string `yaml:"color"`
	Sprite    Sprite `yaml:"sprite"`
}

type rawCatalog struct {
	Tiles []rawEntry `yaml:"tiles"`
}

var kindNames = map[string]Kind{
	"block":  KindBlock,
	"danger": KindDanger,
	"save":   KindSave,
	"start":  KindStart,
	"end":    KindEnd,
	"skin":   KindSkin,
}

var colorNames = map[string]Color{
	"white": ColorWhite,
	"red":   ColorRed,
	"green": ColorGreen,
	"blue":  ColorBlue,
}

// Load parses the embedded catalog. A broken catalog is a build defect, so
// callers should treat an error here as fatal at startup.
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse builds a catalog from YAML bytes, validating every entry.
func Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse tile catalog: %w", err)
	}
	if len(raw.Tiles) == 0 {
		return nil, fmt.Errorf("tile catalog is empty")
	}

	c := &Catalog{
		bySignature: make(map[string]Descriptor, len(raw.Tiles)),
		skins:       make(map[Color]Descriptor, 4),
	}
	for _, e := range raw.Tiles {
		d, err := convertEntry(e)
		if err != nil {
			return nil, fmt.Errorf("tile %q: %w", e.Name, err)
		}
		if d.Kind == KindSkin {
			if _, dup := c.skins[d.Color]; dup {
				return nil, fmt.Errorf("tile %q: duplicate skin for color %s", e.Name, d.Color)
			}
			c.skins[d.Color] = d
			continue
		}
		if _, dup := c.bySignature[d.Signature]; dup {
			return nil, fmt.Errorf("tile %q: duplicate signature %q", e.Name, d.Signature)
		}
		c.bySignature[d.Signature] = d
	}
	return c, nil
}

func convertEntry(e rawEntry) (Descriptor, error) {
	var d Descriptor
	if e.Name == "" {
		return d, fmt.Errorf("missing name")
	}
	kind, ok := kindNames[e.Kind]
	if !ok {
		return d, fmt.Errorf("unknown kind %q", e.Kind)
	}

	color := ColorNone
	if e.Color != "" {
		color, ok = colorNames[e.Color]
		if !ok {
			return d, fmt.Errorf("unknown color %q", e.Color)
		}
	}

	if kind == KindSkin {
		// Skins are looked up by color, never by signature.
		if color == ColorNone {
			return d, fmt.Errorf("skin entry needs a color")
		}
		if e.Signature != "" {
			return d, fmt.Errorf("skin entry must not carry a signature")
		}
	} else {
		if err := checkSignature(e.Signature); err != nil {
			return d, err
		}
	}

	d = Descriptor{
		Name:      e.Name,
		Signature: e.Signature,
		Kind:      kind,
		Color:     color,
		Sprite:    e.Sprite,
	}
	return d, nil
}

func checkSignature(sig string) error {
	if len(sig) != SignatureLen {
		return fmt.Errorf("signature %q must be %d characters", sig, SignatureLen)
	}
	for i := 0; i < len(sig); i++ {
		switch sig[i] {
		case 'W', 'R', 'G', 'B', 'L', 'P', 'D', 'E':
		default:
			return fmt.Errorf("signature %q has invalid code %q at position %d", sig, sig[i], i)
		}
	}
	return nil
}

// Lookup returns the descriptor for a signature. Unknown signatures are not
// an error: the decoder treats them as empty space.
func (c *Catalog) Lookup(signature string) (Descriptor, bool) {
	d, ok := c.bySignature[signature]
	return d, ok
}

// Skin returns the player skin descriptor for a color.
func (c *Catalog) Skin(color Color) (Descriptor, bool) {
	d, ok := c.skins[color]
	return d, ok
}

// Len reports the number of placeable (signature-keyed) entries.
func (c *Catalog) Len() int {
	return len(c.bySignature)
}
