package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	values, err := url.ParseQuery("q=lotus&category=ring&category=ring&category=bracelet&metal=gold&min=10&max=abc&sort=price-desc&page=2")
	require.NoError(t, err)

	f := ParseQuery(values)
	assert.Equal(t, "lotus", f.Search)
	assert.Equal(t, Selection{"ring", "bracelet"}, f.Category)
	assert.Equal(t, Selection{"gold"}, f.Metal)
	assert.Empty(t, f.EnamelColor)
	require.NotNil(t, f.MinPrice)
	assert.Equal(t, 10.0, *f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Equal(t, SortPriceDesc, f.Sort)
	assert.Equal(t, 2, f.Page)
}

func TestParseQuery_Defaults(t *testing.T) {
	f := ParseQuery(url.Values{"sort": {"random"}, "page": {"-4"}})
	assert.Equal(t, SortFeatured, f.Sort)
	assert.Equal(t, 1, f.Page)
	assert.False(t, f.HasPriceBound())
}

func TestFilterState_EncodeRoundTrip(t *testing.T) {
	f := NewFilterState()
	f.Search = "nuit"
	f.Metal = NewSelection("silver", "gold")
	f.MinPrice = price(5)
	f.Sort = SortNameAsc
	f.Page = 4

	values, err := url.ParseQuery(f.Encode())
	require.NoError(t, err)
	assert.Equal(t, f, ParseQuery(values))
}

func TestSelection(t *testing.T) {
	var s Selection
	assert.True(t, s.Allows("anything"))

	s = s.Add("gold").Add("").Add("gold").Add("silver")
	assert.Equal(t, Selection{"gold", "silver"}, s)
	assert.True(t, s.Allows("gold"))
	assert.False(t, s.Allows("bronze"))
	assert.Equal(t, Selection{"silver"}, s.Remove("gold"))
}
