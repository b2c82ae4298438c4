// Package locale answers territory names and calling codes for the directory.
package locale

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Catalog resolves localized region names through x/text and calling codes
// through libphonenumber metadata.
type Catalog struct {
	tag   language.Tag
	names display.Namer
}

// NewCatalog returns a catalog naming regions in the given BCP 47 locale.
// Locales without region names fall back to English.
func NewCatalog(locale string) (*Catalog, error) {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	names := display.Regions(tag)
	if names == nil {
		names = display.English.Regions()
	}
	return &Catalog{tag: tag, names: names}, nil
}

func (c *Catalog) Tag() language.Tag { return c.tag }

func (c *Catalog) LocalizedName(code string) (string, bool) {
	region, err := language.ParseRegion(code)
	if err != nil {
		return "", false
	}
	name := c.names.Name(region)
	if name == "" {
		return "", false
	}
	return name, true
}

func (c *Catalog) DialingPrefix(code string) (string, bool) {
	cc := phonenumbers.GetCountryCodeForRegion(strings.ToUpper(code))
	if cc == 0 {
		return "", false
	}
	return strconv.Itoa(cc), true
}

// AllTerritoryCodes lists every region libphonenumber has metadata for,
// sorted so the directory's tie order is stable between runs.
func (c *Catalog) AllTerritoryCodes() []string {
	regions := phonenumbers.GetSupportedRegions()
	out := make([]string, 0, len(regions))
	for region := range regions {
		out = append(out, region)
	}
	sort.Strings(out)
	return out
}
