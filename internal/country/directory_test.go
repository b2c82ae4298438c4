package country

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jask/dialpick/internal/country/mocks"
)

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestLoadAllSortsCaseInsensitively(t *testing.T) {
	lookup := staticLookup{
		names: map[string]string{
			"DE": "germany", "AL": "Albania", "FR": "France", "BE": "belgium", "ZW": "Zimbabwe",
		},
		prefixes: map[string]string{"DE": "49", "AL": "355", "FR": "33", "BE": "32", "ZW": "263"},
	}

	all := LoadAll([]string{"ZW", "DE", "FR", "AL", "BE"}, lookup)
	require.Equal(t, []string{"Albania", "belgium", "France", "germany", "Zimbabwe"}, names(all))
	for i := 1; i < len(all); i++ {
		require.LessOrEqual(t, strings.ToLower(all[i-1].Name), strings.ToLower(all[i].Name))
	}
}

func TestLoadAllStableOnEqualNames(t *testing.T) {
	lookup := staticLookup{
		names:    map[string]string{"CG": "Congo", "CD": "congo", "AO": "Angola"},
		prefixes: map[string]string{"CG": "242", "CD": "243", "AO": "244"},
	}

	all := LoadAll([]string{"CG", "AO", "CD"}, lookup)
	require.Len(t, all, 3)
	require.Equal(t, "AO", all[0].Code)
	require.Equal(t, "CG", all[1].Code)
	require.Equal(t, "CD", all[2].Code)
}

func TestLoadAllDropsUnbuildableCodes(t *testing.T) {
	all := LoadAll([]string{"US", "XX", "1A", "FR"}, sampleLookup())
	require.Equal(t, []string{"France", "United States"}, names(all))
}

func TestLoadAllEmpty(t *testing.T) {
	require.Empty(t, LoadAll([]string{"XX", "YY"}, sampleLookup()))
	require.Empty(t, LoadAll(nil, sampleLookup()))
}

func TestLoadCommonKeepsOrder(t *testing.T) {
	common := LoadCommon([]string{"US", "QQ", "GB", "FR"}, sampleLookup())
	require.Equal(t, []string{"United States", "United Kingdom", "France"}, names(common))
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	all := LoadAll([]string{"US", "GB", "FR"}, sampleLookup())

	upper := Search(all, "US")
	lower := Search(all, "us")
	require.Equal(t, upper, lower)
	require.Equal(t, []string{"United States"}, names(upper))

	require.Equal(t, []string{"United Kingdom", "United States"}, names(Search(all, "UNITED")))
}

func TestSearchMatchesPrefixAndCode(t *testing.T) {
	all := LoadAll([]string{"US", "GB", "FR"}, sampleLookup())

	require.Equal(t, []string{"United Kingdom"}, names(Search(all, "+44")))
	require.Equal(t, []string{"France"}, names(Search(all, "fr")))
	require.Equal(t, []string{"United States"}, names(Search(all, "+1")))
}

func TestSearchEmptyQueryMatchesEverything(t *testing.T) {
	all := LoadAll([]string{"US", "GB", "FR"}, sampleLookup())

	got := Search(all, "")
	require.Equal(t, all, got)

	got[0] = Entry{}
	require.NotEqual(t, all[0], got[0], "search must return a fresh slice")
}

func TestSearchNoMatches(t *testing.T) {
	all := LoadAll([]string{"US", "GB", "FR"}, sampleLookup())
	got := Search(all, "atlantis")
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestDirectoryEndToEnd(t *testing.T) {
	d := NewDirectory(sampleLookup(), []string{"US", "GB"})

	require.Equal(t, Browsing, d.Mode())
	require.Equal(t, 2, d.SectionCount())
	require.Equal(t, 2, d.RowCount(0))
	require.Equal(t, 3, d.RowCount(1))
	require.Equal(t, "United States", d.EntryAt(0, 0).Name)
	require.Equal(t, "United Kingdom", d.EntryAt(0, 1).Name)
	require.Equal(t, "France", d.EntryAt(1, 0).Name)

	d.SetQuery("united")
	require.Equal(t, Filtering, d.Mode())
	require.Equal(t, 1, d.SectionCount())
	require.Equal(t, 2, d.RowCount(0))
	require.Equal(t, "United Kingdom", d.EntryAt(0, 0).Name)
	require.Equal(t, "United States", d.EntryAt(0, 1).Name)

	d.SetQuery("")
	require.Equal(t, Browsing, d.Mode())
	require.Equal(t, 2, d.SectionCount())
	require.Empty(t, d.Filtered())
	require.Equal(t, "United States", d.EntryAt(0, 0).Name)
}

func TestDirectoryCommonOverlapsAll(t *testing.T) {
	d := NewDirectory(sampleLookup(), []string{"FR"})
	require.Equal(t, d.EntryAt(0, 0), d.EntryAt(1, 0))
}

func TestDirectoryWhitespaceQueryFilters(t *testing.T) {
	d := NewDirectory(sampleLookup(), []string{"US"})

	d.SetQuery(" ")
	require.Equal(t, Filtering, d.Mode())
	require.Equal(t, []string{"United Kingdom", "United States"}, names(d.Filtered()))
}

func TestDirectorySetQueryIdempotent(t *testing.T) {
	d := NewDirectory(sampleLookup(), nil)

	d.SetQuery("u")
	first := d.Filtered()
	d.SetQuery("u")
	second := d.Filtered()
	require.Equal(t, first, second)
	require.Equal(t, "u", d.Query())
}

func TestDirectoryZeroMatches(t *testing.T) {
	d := NewDirectory(sampleLookup(), []string{"US"})

	d.SetQuery("zzz")
	require.Equal(t, Filtering, d.Mode())
	require.Equal(t, 1, d.SectionCount())
	require.Equal(t, 0, d.RowCount(0))
	require.Panics(t, func() { d.EntryAt(0, 0) })
}

func TestDirectoryOutOfRangePanics(t *testing.T) {
	d := NewDirectory(sampleLookup(), []string{"US", "GB"})

	require.Panics(t, func() { d.EntryAt(0, 2) })
	require.Panics(t, func() { d.EntryAt(1, -1) })
	require.Panics(t, func() { d.EntryAt(2, 0) })
	require.Equal(t, 0, d.RowCount(2))

	d.SetQuery("united")
	require.Panics(t, func() { d.EntryAt(1, 0) })
}

func TestDirectorySectionTitles(t *testing.T) {
	d := NewDirectory(sampleLookup(), []string{"US"})
	require.Equal(t, "Common Countries", d.SectionTitle(0))
	require.Equal(t, "All Countries", d.SectionTitle(1))

	d.SetQuery("fr")
	require.Equal(t, "", d.SectionTitle(0))
}

func TestDirectoryOnSelectNotifiesListener(t *testing.T) {
	d := NewDirectory(sampleLookup(), []string{"US", "GB"})
	d.OnSelect(d.EntryAt(0, 0)) // no listener yet

	var got []Entry
	d.SetListener(ListenerFunc(func(e Entry) { got = append(got, e) }))
	d.SetQuery("fr")
	d.OnSelect(d.EntryAt(0, 0))

	require.Len(t, got, 1)
	require.Equal(t, "FR", got[0].Code)
	require.Equal(t, Filtering, d.Mode())
	require.Equal(t, "fr", d.Query())
}

func TestNewDirectoryQueriesSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	src.EXPECT().AllTerritoryCodes().Return([]string{"JP"})
	src.EXPECT().LocalizedName("JP").Return("Japan", true).Times(2)
	src.EXPECT().DialingPrefix("JP").Return("81", true).Times(2)

	d := NewDirectory(src, []string{"jp"})
	require.Equal(t, "+81", d.EntryAt(0, 0).Prefix)
	require.Equal(t, "JP", d.EntryAt(1, 0).Code)
}

func TestNewDirectoryNilSource(t *testing.T) {
	d := NewDirectory(nil, []string{"US"})
	require.Equal(t, 0, d.RowCount(0))
	require.Equal(t, 0, d.RowCount(1))
}

func TestClosest(t *testing.T) {
	all := LoadAll([]string{"US", "GB", "FR"}, sampleLookup())

	got, ok := Closest(all, "frnace")
	require.True(t, ok)
	require.Equal(t, "FR", got.Code)

	_, ok = Closest(all, "  ")
	require.False(t, ok)
	_, ok = Closest(nil, "france")
	require.False(t, ok)
}
