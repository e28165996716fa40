package service

import (
	"math"
	"strconv"
	"testing"

	"github.com/ikkim/udonggeum-storefront/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ringA     = model.Product{ID: "a", Name: "Bague Lotus", Price: 10, Currency: "EUR", Category: "ring", Thumbnail: "img/a.jpg"}
	braceletB = model.Product{ID: "b", Name: "Jonc Azur", Price: 20, Currency: "EUR", Category: "bracelet", Thumbnail: "img/b.jpg"}
)

func TestCart_AddMergesByProduct(t *testing.T) {
	var cart Cart
	cart.Add(ringA, 1)
	cart.Add(ringA, 1)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "a", cart.Lines[0].ID)
	assert.Equal(t, 2, cart.Lines[0].Qty)
	assert.Equal(t, 2, cart.TotalQuantity())
	assert.Equal(t, 20.0, cart.Total())
}

func TestCart_AddKeepsInsertionOrderAndCapturedFields(t *testing.T) {
	var cart Cart
	cart.Add(braceletB, 2)
	cart.Add(ringA, 1)

	renamed := braceletB
	renamed.Name = "Jonc Azur (nouveau)"
	renamed.Price = 99
	cart.Add(renamed, 1)

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "b", cart.Lines[0].ID)
	assert.Equal(t, "Jonc Azur", cart.Lines[0].Name)
	assert.Equal(t, 20.0, cart.Lines[0].Price)
	assert.Equal(t, 3, cart.Lines[0].Qty)
	assert.Equal(t, "a", cart.Lines[1].ID)
	assert.Equal(t, 4, cart.TotalQuantity())
	assert.Equal(t, 70.0, cart.Total())
}

func TestCart_AddClampsQuantity(t *testing.T) {
	var cart Cart
	cart.Add(ringA, 0)
	cart.Add(ringA, -5)

	assert.Equal(t, 2, cart.Lines[0].Qty)
}

func TestCart_MergeStopsAtMaxQuantity(t *testing.T) {
	var cart Cart
	cart.Add(ringA, ParseQuantity(strconv.Itoa(math.MaxInt)))
	cart.Add(ringA, 1)
	cart.Add(ringA, math.MaxInt)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, MaxQuantity, cart.Lines[0].Qty)
	assert.Equal(t, MaxQuantity, cart.TotalQuantity())

	cart.Lines[0].Qty = math.MaxInt
	cart.Add(ringA, 1)
	assert.Equal(t, MaxQuantity, cart.Lines[0].Qty)
}

func TestCart_SetQuantityNeverBelowOne(t *testing.T) {
	var cart Cart
	cart.Add(ringA, 3)

	for _, v := range []int{0, -1, -100} {
		require.NoError(t, cart.SetQuantity(0, v))
		assert.Equal(t, 1, cart.Lines[0].Qty)
	}

	require.NoError(t, cart.SetQuantity(0, 7))
	assert.Equal(t, 7, cart.Lines[0].Qty)

	require.NoError(t, cart.SetQuantity(0, math.MaxInt))
	assert.Equal(t, MaxQuantity, cart.Lines[0].Qty)

	assert.ErrorIs(t, cart.SetQuantity(1, 2), ErrCartLineNotFound)
	assert.ErrorIs(t, cart.SetQuantity(-1, 2), ErrCartLineNotFound)
}

func TestCart_Remove(t *testing.T) {
	var cart Cart
	cart.Add(ringA, 1)
	cart.Add(braceletB, 1)

	require.NoError(t, cart.Remove(0))
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "b", cart.Lines[0].ID)

	assert.ErrorIs(t, cart.Remove(5), ErrCartLineNotFound)
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"4", 4},
		{" 12 ", 12},
		{"3abc", 3},
		{"2.9", 2},
		{"+5", 5},
		{"10000", MaxQuantity},
		{"99999999999999999999999", MaxQuantity},
		{"-99999999999999999999999", 1},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuantity(tt.in))
		})
	}
}

func TestEncodeDecodeCart_RoundTrip(t *testing.T) {
	var cart Cart
	cart.Add(braceletB, 2)
	cart.Add(ringA, 5)

	payload, err := EncodeCart(&cart)
	require.NoError(t, err)

	decoded, err := DecodeCart(payload)
	require.NoError(t, err)
	assert.Equal(t, cart.Lines, decoded.Lines)
}

func TestEncodeCart_EmptyIsArray(t *testing.T) {
	payload, err := EncodeCart(&Cart{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(payload))
}

func TestDecodeCart_Sanitizes(t *testing.T) {
	cart, err := DecodeCart([]byte(`[{"id":"a","qty":0},{"name":"ghost","qty":2},{"id":"b","qty":3},{"id":"c","qty":9223372036854775807}]`))
	require.NoError(t, err)
	require.Len(t, cart.Lines, 3)
	assert.Equal(t, 1, cart.Lines[0].Qty)
	assert.Equal(t, "b", cart.Lines[1].ID)
	assert.Equal(t, MaxQuantity, cart.Lines[2].Qty)

	_, err = DecodeCart([]byte(`{not json`))
	assert.Error(t, err)
}
