package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"gitlab.connectwisedev.com/coffee-service/models"
)

const (
	PlaceholderName     = "未知商品"
	PlaceholderCategory = "其他"
	maxRating           = 5
)

// Alias lists, tried in order. The upstream source is not trusted to use a
// single naming scheme.
var (
	idFields          = []string{"id", "_id"}
	nameFields        = []string{"name", "title"}
	descriptionFields = []string{"description", "desc"}
	priceFields       = []string{"price"}
	imageFields       = []string{"image", "imageUrl", "img"}
	categoryFields    = []string{"category", "type"}
	ratingFields      = []string{"rating"}
	isHotFields       = []string{"isHot"}
	isNewFields       = []string{"isNew"}
)

// RawProduct is one undecoded element of the upstream data array.
type RawProduct map[string]any

var errNullElement = errors.New("null element")

// parseRaw decodes one data element. Strings, numbers, booleans and arrays
// carry no fields and become an empty RawProduct; a null element is an error.
func parseRaw(elem json.RawMessage) (RawProduct, error) {
	trimmed := bytes.TrimSpace(elem)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, errNullElement
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return RawProduct{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var raw RawProduct
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Normalize coerces a raw element into a Product.
func Normalize(raw RawProduct) models.Product {
	id, ok := raw.firstString(idFields)
	if !ok {
		id = placeholderID()
	}
	name, ok := raw.firstString(nameFields)
	if !ok {
		name = PlaceholderName
	}
	description, _ := raw.firstString(descriptionFields)
	image, _ := raw.firstString(imageFields)
	category, ok := raw.firstString(categoryFields)
	if !ok {
		category = PlaceholderCategory
	}

	price := raw.firstNumber(priceFields)
	if price < 0 {
		price = 0
	}
	rating := raw.firstNumber(ratingFields)
	switch {
	case rating < 0:
		rating = 0
	case rating > maxRating:
		rating = maxRating
	}

	return models.Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Image:       image,
		Category:    category,
		Rating:      rating,
		IsHot:       raw.firstBool(isHotFields),
		IsNew:       raw.firstBool(isNewFields),
	}
}

// NormalizeAll maps every element, preserving order.
func NormalizeAll(raws []RawProduct) []models.Product {
	products := make([]models.Product, 0, len(raws))
	for _, raw := range raws {
		products = append(products, Normalize(raw))
	}
	return products
}

func placeholderID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
}

// first returns the first alias holding a truthy value.
func (r RawProduct) first(keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && truthy(v) {
			return v, true
		}
	}
	return nil, false
}

func (r RawProduct) firstString(keys []string) (string, bool) {
	v, ok := r.first(keys)
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}

// firstNumber parses the leading numeric prefix the way a lenient client
// would; anything unparseable counts as 0.
func (r RawProduct) firstNumber(keys []string) float64 {
	v, ok := r.first(keys)
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		return f
	case float64:
		return t
	case string:
		return parseLeadingFloat(t)
	}
	return 0
}

func (r RawProduct) firstBool(keys []string) bool {
	v, ok := r.first(keys)
	if !ok {
		return false
	}
	// "false" and "0" read as false, unlike a plain truthiness check.
	if s, isString := v.(string); isString {
		b, err := strconv.ParseBool(s)
		return err == nil && b
	}
	return true
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0
	}
	return true
}

func parseLeadingFloat(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	seenDot, seenDigit := false, false
scan:
	for i, c := range s {
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
			end = i + 1
		case c == '.' && !seenDot:
			seenDot = true
		case (c == '-' || c == '+') && i == 0:
		default:
			break scan
		}
	}
	if !seenDigit {
		return 0
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return f
}
