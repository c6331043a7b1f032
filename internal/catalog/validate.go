package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidID = errors.New("invalid product id")

// FieldError kinds. Exactly one field is reported per request: validation
// stops at the first failing field.
const (
	KindMissingField = "missing_field"
	KindInvalidValue = "invalid_value"
)

// FieldError describes a single rejected request field along with the raw
// value the client sent.
type FieldError struct {
	Kind     string
	Field    string
	Message  string
	Received any
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseProductID parses a path segment as a positive integer id. Non-numeric
// and non-positive input both yield ErrInvalidID, never a not-found.
func ParseProductID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ValidateNewProduct checks a decoded create payload field by field and
// returns a fully defaulted NewProduct, or the first failing field.
func ValidateNewProduct(raw map[string]any) (NewProduct, *FieldError) {
	p := NewProduct{Images: []string{}}

	title, ok := raw["title"]
	if !ok || !isNonEmptyString(title) {
		return NewProduct{}, &FieldError{
			Kind:     KindMissingField,
			Field:    "title",
			Message:  "Title is required and must be a non-empty string",
			Received: title,
		}
	}
	p.Title = strings.TrimSpace(title.(string))

	price, ok := raw["price"]
	if !ok {
		return NewProduct{}, &FieldError{
			Kind:    KindMissingField,
			Field:   "price",
			Message: "Price is required",
		}
	}
	value, valid := parseNumber(price)
	if !valid || value < 0 {
		return NewProduct{}, &FieldError{
			Kind:     KindInvalidValue,
			Field:    "price",
			Message:  "Price must be a non-negative number",
			Received: price,
		}
	}
	p.Price = value

	if stock, ok := raw["stock"]; ok {
		value, valid := parseInteger(stock)
		if !valid || value < 0 {
			return NewProduct{}, &FieldError{
				Kind:     KindInvalidValue,
				Field:    "stock",
				Message:  "Stock must be a non-negative integer",
				Received: stock,
			}
		}
		p.Stock = value
	}

	if discount, ok := raw["discountPercentage"]; ok {
		value, valid := parseNumber(discount)
		if !valid || value < 0 || value > 100 {
			return NewProduct{}, &FieldError{
				Kind:     KindInvalidValue,
				Field:    "discountPercentage",
				Message:  "Discount percentage must be a number between 0 and 100",
				Received: discount,
			}
		}
		p.DiscountPercentage = value
	}

	if rating, ok := raw["rating"]; ok {
		value, valid := parseNumber(rating)
		if !valid || value < 0 || value > 5 {
			return NewProduct{}, &FieldError{
				Kind:     KindInvalidValue,
				Field:    "rating",
				Message:  "Rating must be a number between 0 and 5",
				Received: rating,
			}
		}
		p.Rating = value
	}

	for _, field := range []struct {
		name string
		dst  *string
	}{
		{"description", &p.Description},
		{"brand", &p.Brand},
		{"category", &p.Category},
		{"thumbnail", &p.Thumbnail},
	} {
		value, ok := raw[field.name]
		if !ok {
			continue
		}
		s, isString := value.(string)
		if !isString {
			return NewProduct{}, &FieldError{
				Kind:     KindInvalidValue,
				Field:    field.name,
				Message:  fmt.Sprintf("%s must be a string", titleCase(field.name)),
				Received: value,
			}
		}
		*field.dst = s
	}

	// Soft fallback: anything that is not a string array becomes empty,
	// never an error.
	if images, ok := raw["images"]; ok {
		p.Images = coerceImages(images)
	}

	return p, nil
}

// ValidateProductPatch checks a decoded update payload. Only the fields
// present in the payload are validated; each carries the same per-field rule
// as on create. Explicit null is rejected for every field except images.
func ValidateProductPatch(raw map[string]any) (ProductPatch, *FieldError) {
	var patch ProductPatch

	if title, ok := raw["title"]; ok {
		if !isNonEmptyString(title) {
			return ProductPatch{}, &FieldError{
				Kind:     KindInvalidValue,
				Field:    "title",
				Message:  "Title must be a non-empty string",
				Received: title,
			}
		}
		trimmed := strings.TrimSpace(title.(string))
		patch.Title = &trimmed
	}

	if price, ok := raw["price"]; ok {
		value, valid := parseNumber(price)
		if !valid || value < 0 {
			return ProductPatch{}, &FieldError{
				Kind:     KindInvalidValue,
				Field:    "price",
				Message:  "Price must be a non-negative number",
				Received: price,
			}
		}
		patch.Price = &value
	}

	if stock, ok := raw["stock"]; ok {
		value, valid := parseInteger(stock)
		if !valid || value < 0 {
			return ProductPatch{}, &FieldError{
				Kind:     KindInvalidValue,
				Field:    "stock",
				Message:  "Stock must be a non-negative integer",
				Received: stock,
			}
		}
		patch.Stock = &value
	}

	if discount, ok := raw["discountPercentage"]; ok {
		value, valid := parseNumber(discount)
		if !valid || value < 0 || value > 100 {
			return ProductPatch{}, &FieldError{
				Kind:     KindInvalidValue,
				Field:    "discountPercentage",
				Message:  "Discount percentage must be a number between 0 and 100",
				Received: discount,
			}
		}
		patch.DiscountPercentage = &value
	}

	if rating, ok := raw["rating"]; ok {
		value, valid := parseNumber(rating)
		if !valid || value < 0 || value > 5 {
			return ProductPatch{}, &FieldError{
				Kind:     KindInvalidValue,
				Field:    "rating",
				Message:  "Rating must be a number between 0 and 5",
				Received: rating,
			}
		}
		patch.Rating = &value
	}

	for _, field := range []struct {
		name string
		dst  **string
	}{
		{"description", &patch.Description},
		{"brand", &patch.Brand},
		{"category", &patch.Category},
		{"thumbnail", &patch.Thumbnail},
	} {
		value, ok := raw[field.name]
		if !ok {
			continue
		}
		s, isString := value.(string)
		if !isString {
			return ProductPatch{}, &FieldError{
				Kind:     KindInvalidValue,
				Field:    field.name,
				Message:  fmt.Sprintf("%s must be a string", titleCase(field.name)),
				Received: value,
			}
		}
		copied := s
		*field.dst = &copied
	}

	if images, ok := raw["images"]; ok {
		coerced := coerceImages(images)
		patch.Images = &coerced
	}

	return patch, nil
}

func isNonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

// parseNumber accepts JSON numbers and numeric strings, mirroring the loose
// parseFloat-style inputs the API has always taken. NaN and infinities are
// invalid.
func parseNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func parseInteger(v any) (int, bool) {
	f, ok := parseNumber(v)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func coerceImages(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return []string{}
	}
	images := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return []string{}
		}
		images = append(images, s)
	}
	return images
}

func titleCase(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
