package catalog

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.connectwisedev.com/coffee-service/models"
)

func decodeRaw(t *testing.T, s string) RawProduct {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var raw RawProduct
	require.NoError(t, dec.Decode(&raw))
	return raw
}

func TestNormalizeCanonicalFields(t *testing.T) {
	raw := decodeRaw(t, `{"id":"1","name":"美式咖啡","description":"d","price":25,"image":"i.png","category":"经典咖啡","rating":4.5,"isHot":true}`)

	assert.Equal(t, models.Product{
		ID: "1", Name: "美式咖啡", Description: "d", Price: 25, Image: "i.png",
		Category: "经典咖啡", Rating: 4.5, IsHot: true,
	}, Normalize(raw))
}

func TestNormalizeAliases(t *testing.T) {
	raw := decodeRaw(t, `{"_id":42,"title":"Latte","desc":"milky","price":"32.5","imageUrl":"","img":"l.png","type":"milk","rating":"4.8"}`)

	p := Normalize(raw)
	assert.Equal(t, "42", p.ID)
	assert.Equal(t, "Latte", p.Name)
	assert.Equal(t, "milky", p.Description)
	assert.Equal(t, 32.5, p.Price)
	assert.Equal(t, "l.png", p.Image, "empty imageUrl falls through to img")
	assert.Equal(t, "milk", p.Category)
	assert.Equal(t, 4.8, p.Rating)
}

func TestNormalizeAliasOrder(t *testing.T) {
	raw := decodeRaw(t, `{"id":"a","_id":"b","name":"first","title":"second","image":"x","img":"y"}`)

	p := Normalize(raw)
	assert.Equal(t, "a", p.ID)
	assert.Equal(t, "first", p.Name)
	assert.Equal(t, "x", p.Image)
}

func TestNormalizeDefaults(t *testing.T) {
	p := Normalize(decodeRaw(t, `{}`))

	assert.Len(t, p.ID, 7)
	assert.Equal(t, PlaceholderName, p.Name)
	assert.Equal(t, PlaceholderCategory, p.Category)
	assert.Empty(t, p.Description)
	assert.Empty(t, p.Image)
	assert.Zero(t, p.Price)
	assert.Zero(t, p.Rating)
	assert.False(t, p.IsHot)
	assert.False(t, p.IsNew)
}

func TestNormalizeFalsyValuesFallThrough(t *testing.T) {
	p := Normalize(decodeRaw(t, `{"id":"","_id":"x","name":null,"category":"","price":0,"isNew":0}`))

	assert.Equal(t, "x", p.ID)
	assert.Equal(t, PlaceholderName, p.Name)
	assert.Equal(t, PlaceholderCategory, p.Category)
	assert.Zero(t, p.Price)
	assert.False(t, p.IsNew)
}

func TestNormalizeClampsNumbers(t *testing.T) {
	p := Normalize(decodeRaw(t, `{"id":"1","price":-3,"rating":9}`))
	assert.Zero(t, p.Price)
	assert.Equal(t, 5.0, p.Rating)

	p = Normalize(decodeRaw(t, `{"id":"1","price":"abc","rating":"12.5 stars"}`))
	assert.Zero(t, p.Price)
	assert.Equal(t, 5.0, p.Rating)
}

func TestNormalizeStringFlags(t *testing.T) {
	p := Normalize(decodeRaw(t, `{"id":"1","isHot":"true","isNew":"false"}`))
	assert.True(t, p.IsHot)
	assert.False(t, p.IsNew)
}

func TestNormalizeAllPreservesOrder(t *testing.T) {
	raws := []RawProduct{
		decodeRaw(t, `{"id":"3"}`),
		decodeRaw(t, `{"id":"1"}`),
		decodeRaw(t, `{"id":"2"}`),
	}

	products := NormalizeAll(raws)
	require.Len(t, products, 3)
	assert.Equal(t, []string{"3", "1", "2"}, []string{products[0].ID, products[1].ID, products[2].ID})
}

func TestParseLeadingFloat(t *testing.T) {
	cases := map[string]float64{
		"25":    25,
		" 3.5 ": 3.5,
		"12abc": 12,
		"1.2.3": 1.2,
		".5":    0.5,
		"-2":    -2,
		"abc":   0,
		"":      0,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLeadingFloat(in), in)
	}
}

func TestParseRaw(t *testing.T) {
	raw, err := parseRaw(json.RawMessage(` {"id":"9","price":12.5}`))
	require.NoError(t, err)
	assert.Equal(t, "9", Normalize(raw).ID)
	assert.Equal(t, 12.5, Normalize(raw).Price)

	for _, elem := range []string{`"junk"`, `42`, `true`, `[]`} {
		raw, err := parseRaw(json.RawMessage(elem))
		require.NoError(t, err, elem)
		assert.Empty(t, raw, elem)
	}

	_, err = parseRaw(json.RawMessage(`null`))
	assert.ErrorIs(t, err, errNullElement)
}
