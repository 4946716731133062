package seed

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"clearx/internal/domain/entity"
)

// The product fixture is the frontend's mock module: a TypeScript file with
// an exported PRODUCTS array. ExtractArrayLiteral pulls the array text out;
// RewriteEnumRefs and normalizeToJSON then turn it into plain JSON so it can
// go through encoding/json instead of being evaluated as code.

const exportMarker = "export const PRODUCTS"

// ExtractArrayLiteral returns the bracketed array literal assigned to the
// PRODUCTS export. The scan starts after the first '=' past the marker so a
// type annotation like `: Product[] =` cannot be mistaken for the array's
// own brackets, then walks a bracket-depth counter to the matching close.
func ExtractArrayLiteral(src string) (string, error) {
	start := strings.Index(src, exportMarker)
	if start == -1 {
		return "", fmt.Errorf("seed: %s export not found", "PRODUCTS")
	}
	after := src[start:]

	eq := strings.Index(after, "=")
	if eq == -1 {
		return "", fmt.Errorf("seed: no '=' after PRODUCTS export")
	}
	afterEq := after[eq+1:]

	open := strings.Index(afterEq, "[")
	if open == -1 {
		return "", fmt.Errorf("seed: no array literal after PRODUCTS assignment")
	}

	depth := 0
	for i := open; i < len(afterEq); i++ {
		switch afterEq[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return afterEq[open : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("seed: unterminated PRODUCTS array literal")
}

var enumRefPattern = regexp.MustCompile(`\b(?:VerticalType|Vertical)\.(\w+)`)

// RewriteEnumRefs replaces enum-qualified references like Vertical.DEALS
// with the bare quoted string 'DEALS'.
func RewriteEnumRefs(literal string) string {
	return enumRefPattern.ReplaceAllString(literal, "'$1'")
}

// normalizeToJSON converts a JS/TS array literal to JSON: comments dropped,
// single-quoted strings requoted, bare object keys quoted, trailing commas
// removed, undefined mapped to null.
func normalizeToJSON(literal string) string {
	var out strings.Builder
	out.Grow(len(literal))

	i := 0
	for i < len(literal) {
		c := literal[i]

		switch {
		case c == '/' && i+1 < len(literal) && literal[i+1] == '/':
			for i < len(literal) && literal[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(literal) && literal[i+1] == '*':
			i += 2
			for i+1 < len(literal) && !(literal[i] == '*' && literal[i+1] == '/') {
				i++
			}
			i += 2
		case c == '\'' || c == '"' || c == '`':
			str, next := scanString(literal, i)
			out.WriteString(str)
			i = next
		case isIdentStart(c):
			j := i
			for j < len(literal) && isIdentPart(literal[j]) {
				j++
			}
			word := literal[i:j]
			i = j

			switch word {
			case "true", "false", "null":
				out.WriteString(word)
			case "undefined":
				out.WriteString("null")
			default:
				// A bare identifier followed by ':' is an object key.
				k := j
				for k < len(literal) && (literal[k] == ' ' || literal[k] == '\t' || literal[k] == '\n' || literal[k] == '\r') {
					k++
				}
				if k < len(literal) && literal[k] == ':' {
					out.WriteByte('"')
					out.WriteString(word)
					out.WriteByte('"')
				} else {
					out.WriteString(word)
				}
			}
		case c == ',':
			// Drop trailing commas before a closing bracket or brace.
			k := i + 1
			for k < len(literal) && (literal[k] == ' ' || literal[k] == '\t' || literal[k] == '\n' || literal[k] == '\r') {
				k++
			}
			if k < len(literal) && (literal[k] == ']' || literal[k] == '}') {
				i++
				continue
			}
			out.WriteByte(c)
			i++
		default:
			out.WriteByte(c)
			i++
		}
	}

	return out.String()
}

// scanString consumes the quoted string starting at literal[start] and
// returns it re-quoted as a JSON string plus the index past its end.
func scanString(literal string, start int) (string, int) {
	quote := literal[start]

	var out strings.Builder
	out.WriteByte('"')

	i := start + 1
	for i < len(literal) {
		c := literal[i]
		switch {
		case c == '\\' && i+1 < len(literal):
			esc := literal[i+1]
			if esc == quote {
				// \' inside a single-quoted string needs no escape in JSON.
				if quote == '"' {
					out.WriteString(`\"`)
				} else {
					out.WriteByte(esc)
				}
			} else {
				out.WriteByte('\\')
				out.WriteByte(esc)
			}
			i += 2
		case c == quote:
			out.WriteByte('"')
			return out.String(), i + 1
		case c == '"':
			out.WriteString(`\"`)
			i++
		case c == '\n':
			out.WriteString(`\n`)
			i++
		default:
			out.WriteByte(c)
			i++
		}
	}

	out.WriteByte('"')
	return out.String(), i
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// mockProduct matches the mock module's field names, which differ slightly
// from the persisted schema (makerMaterial vs material). Unknown keys in
// the fixture are ignored by encoding/json.
type mockProduct struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Discount      string  `json:"discount"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	Vertical      string  `json:"vertical"`
	StoreName     string  `json:"storeName"`
	StoreID       string  `json:"storeId"`
	Stock         int     `json:"stock"`
	Rating        float64 `json:"rating"`
	Distance      string  `json:"distance"`
	DeliveryTime  string  `json:"deliveryTime"`
	ExpiryDate    string  `json:"expiryDate"`
	Weight        string  `json:"weight"`
	Origin        string  `json:"origin"`
	Material      string  `json:"material"`
	MakerMaterial string  `json:"makerMaterial"`
	Dimensions    string  `json:"dimensions"`
}

// ParseProducts extracts and decodes the PRODUCTS fixture from mock module
// source text.
func ParseProducts(src string) ([]*entity.Product, error) {
	literal, err := ExtractArrayLiteral(src)
	if err != nil {
		return nil, err
	}

	normalized := normalizeToJSON(RewriteEnumRefs(literal))

	var mocks []mockProduct
	if err := json.Unmarshal([]byte(normalized), &mocks); err != nil {
		return nil, fmt.Errorf("seed: decoding PRODUCTS fixture: %w", err)
	}

	products := make([]*entity.Product, len(mocks))
	for i, m := range mocks {
		material := m.Material
		if material == "" {
			material = m.MakerMaterial
		}
		rating := m.Rating
		if rating == 0 {
			rating = entity.DefaultRating
		}

		products[i] = &entity.Product{
			ID:            m.ID,
			Name:          m.Name,
			Description:   m.Description,
			Price:         m.Price,
			OriginalPrice: m.OriginalPrice,
			Discount:      m.Discount,
			Image:         m.Image,
			Category:      m.Category,
			Vertical:      m.Vertical,
			StoreName:     m.StoreName,
			StoreID:       m.StoreID,
			Stock:         m.Stock,
			Rating:        rating,
			Distance:      m.Distance,
			DeliveryTime:  m.DeliveryTime,
			ExpiryDate:    m.ExpiryDate,
			Weight:        m.Weight,
			Origin:        m.Origin,
			Material:      material,
			Dimensions:    m.Dimensions,
		}
	}
	return products, nil
}
