package colour

import "sort"

// Role is a named UI slot a palette colour is assigned to.
type Role string

const (
	RoleBackground          Role = "background"
	RoleSecondaryBackground Role = "secondary-background"
	RoleHeading             Role = "heading"
	RoleNav                 Role = "nav"
	RoleButton              Role = "button"
	RoleButtonHover         Role = "button-hover"
	RoleFooter              Role = "footer"
)

// AllRoles returns every role in display order.
func AllRoles() []Role {
	return []Role{
		RoleBackground, RoleSecondaryBackground, RoleHeading,
		RoleNav, RoleButton, RoleButtonHover, RoleFooter,
	}
}

// Region is a block of the page layout preview.
type Region string

const (
	RegionHTML      Region = "html"
	RegionBody      Region = "body"
	RegionNav       Region = "nav"
	RegionSlideshow Region = "slideshow"
	RegionMain      Region = "main"
	RegionAside     Region = "aside"
	RegionFooter    Region = "footer"
)

// AllRegions returns every layout region in page order.
func AllRegions() []Region {
	return []Region{
		RegionHTML, RegionBody, RegionNav, RegionSlideshow,
		RegionMain, RegionAside, RegionFooter,
	}
}

// Assignment is the result of mapping a palette onto UI roles by lightness.
type Assignment struct {
	Darkest          Swatch
	Lightest         Swatch
	SecondBackground Swatch
	Accent           Swatch
	Hover            Swatch
}

// AssignRoles sorts a copy of the palette by ascending lightness and picks:
// darkest (first), lightest (last), second background (second to last, or the
// last when there is only one colour), accent (index n/2) and hover
// (index max(0, n-2)). Ties on lightness are broken by hex, so the result does
// not depend on input order. A single colour fills every role. An empty
// palette returns false.
func AssignRoles(swatches []Swatch) (Assignment, bool) {
	n := len(swatches)
	if n == 0 {
		return Assignment{}, false
	}

	sorted := make([]Swatch, n)
	copy(sorted, swatches)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Lightness != sorted[j].Lightness {
			return sorted[i].Lightness < sorted[j].Lightness
		}
		return sorted[i].Formats.Hex < sorted[j].Formats.Hex
	})

	second := sorted[n-1]
	if n >= 2 {
		second = sorted[n-2]
	}

	return Assignment{
		Darkest:          sorted[0],
		Lightest:         sorted[n-1],
		SecondBackground: second,
		Accent:           sorted[n/2],
		Hover:            sorted[max(0, n-2)],
	}, true
}

// Swatch returns the colour assigned to a role.
func (a Assignment) Swatch(role Role) Swatch {
	switch role {
	case RoleBackground:
		return a.Lightest
	case RoleSecondaryBackground:
		return a.SecondBackground
	case RoleHeading, RoleButton:
		return a.Accent
	case RoleButtonHover:
		return a.Hover
	default: // nav, footer
		return a.Darkest
	}
}

// Roles returns the role to hex mapping.
func (a Assignment) Roles() map[Role]string {
	roles := make(map[Role]string, len(AllRoles()))
	for _, role := range AllRoles() {
		roles[role] = a.Swatch(role).Hex()
	}
	return roles
}

// RegionSwatch returns the colour painted on a layout region.
func (a Assignment) RegionSwatch(region Region) Swatch {
	switch region {
	case RegionHTML:
		return a.Lightest
	case RegionBody:
		return a.SecondBackground
	case RegionSlideshow, RegionMain:
		return a.Accent
	case RegionAside:
		return a.Hover
	default: // nav, footer
		return a.Darkest
	}
}
