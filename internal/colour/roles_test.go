package colour

import (
	"fmt"
	"math/rand"
	"testing"
)

func swatchesWithLightness(lightness ...int) []Swatch {
	swatches := make([]Swatch, len(lightness))
	for i, l := range lightness {
		swatches[i] = NewSwatch(fmt.Sprintf("Color %d", i+1), HSL{H: 200, S: 50, L: l}, DefaultAlpha)
	}
	return swatches
}

func TestAssignRolesFive(t *testing.T) {
	palette := swatchesWithLightness(50, 90, 10, 70, 30)

	got, ok := AssignRoles(palette)
	if !ok {
		t.Fatal("AssignRoles() reported empty palette")
	}

	checks := []struct {
		name string
		s    Swatch
		want int
	}{
		{name: "darkest", s: got.Darkest, want: 10},
		{name: "lightest", s: got.Lightest, want: 90},
		{name: "second background", s: got.SecondBackground, want: 70},
		{name: "accent", s: got.Accent, want: 50},
		{name: "hover", s: got.Hover, want: 70},
	}
	for _, c := range checks {
		if c.s.Lightness != c.want {
			t.Errorf("%s lightness = %d, want %d", c.name, c.s.Lightness, c.want)
		}
	}

	roles := got.Roles()
	expect := map[Role]Swatch{
		RoleBackground:          got.Lightest,
		RoleSecondaryBackground: got.SecondBackground,
		RoleHeading:             got.Accent,
		RoleNav:                 got.Darkest,
		RoleButton:              got.Accent,
		RoleButtonHover:         got.Hover,
		RoleFooter:              got.Darkest,
	}
	if len(roles) != len(expect) {
		t.Fatalf("Roles() has %d entries, want %d", len(roles), len(expect))
	}
	for role, s := range expect {
		if roles[role] != s.Hex() {
			t.Errorf("role %s = %s, want %s", role, roles[role], s.Hex())
		}
	}
}

func TestAssignRolesTwo(t *testing.T) {
	got, _ := AssignRoles(swatchesWithLightness(80, 20))

	// n/2 = 1 picks the lighter colour, max(0, n-2) = 0 the darker.
	if got.Accent.Lightness != 80 {
		t.Errorf("accent lightness = %d, want 80", got.Accent.Lightness)
	}
	if got.Hover.Lightness != 20 {
		t.Errorf("hover lightness = %d, want 20", got.Hover.Lightness)
	}
	if got.SecondBackground.Lightness != 20 {
		t.Errorf("second background lightness = %d, want 20", got.SecondBackground.Lightness)
	}
}

func TestAssignRolesSingleColourFillsEveryRole(t *testing.T) {
	palette := swatchesWithLightness(42)
	got, ok := AssignRoles(palette)
	if !ok {
		t.Fatal("AssignRoles() reported empty palette")
	}
	for role, hex := range got.Roles() {
		if hex != palette[0].Hex() {
			t.Errorf("role %s = %s, want %s", role, hex, palette[0].Hex())
		}
	}
	for _, region := range AllRegions() {
		if got.RegionSwatch(region).Hex() != palette[0].Hex() {
			t.Errorf("region %s not painted with the only colour", region)
		}
	}
}

func TestAssignRolesEmpty(t *testing.T) {
	if _, ok := AssignRoles(nil); ok {
		t.Error("AssignRoles(nil) = ok, want false")
	}
}

func TestAssignRolesPermutationInvariant(t *testing.T) {
	palette := []Swatch{
		NewSwatch("a", HSL{H: 10, S: 80, L: 50}, DefaultAlpha),
		NewSwatch("b", HSL{H: 200, S: 80, L: 50}, DefaultAlpha), // ties with a
		NewSwatch("c", HSL{H: 120, S: 40, L: 20}, DefaultAlpha),
		NewSwatch("d", HSL{H: 300, S: 60, L: 85}, DefaultAlpha),
		NewSwatch("e", HSL{H: 45, S: 90, L: 85}, DefaultAlpha), // ties with d
		NewSwatch("f", HSL{H: 90, S: 30, L: 65}, DefaultAlpha),
	}

	base, _ := AssignRoles(palette)
	want := base.Roles()

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		shuffled := make([]Swatch, len(palette))
		copy(shuffled, palette)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, _ := AssignRoles(shuffled)
		for role, hex := range got.Roles() {
			if want[role] != hex {
				t.Fatalf("shuffle %d: role %s = %s, want %s", i, role, hex, want[role])
			}
		}
	}
}

func TestAssignRolesDoesNotReorderInput(t *testing.T) {
	palette := swatchesWithLightness(90, 10, 50)
	AssignRoles(palette)
	if palette[0].Lightness != 90 || palette[1].Lightness != 10 || palette[2].Lightness != 50 {
		t.Error("AssignRoles() reordered its input")
	}
}

func TestRegionSwatch(t *testing.T) {
	got, _ := AssignRoles(swatchesWithLightness(10, 30, 50, 70, 90))

	want := map[Region]int{
		RegionHTML:      90,
		RegionBody:      70,
		RegionNav:       10,
		RegionSlideshow: 50,
		RegionMain:      50,
		RegionAside:     70,
		RegionFooter:    10,
	}
	for region, l := range want {
		if got.RegionSwatch(region).Lightness != l {
			t.Errorf("region %s lightness = %d, want %d", region, got.RegionSwatch(region).Lightness, l)
		}
	}
}
