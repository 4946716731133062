package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractArrayLiteral(t *testing.T) {
	src := "export const PRODUCTS: Product[] = [ {id:'a'}, {id:'b'} ]"

	literal, err := ExtractArrayLiteral(src)
	require.NoError(t, err)
	assert.Equal(t, "[ {id:'a'}, {id:'b'} ]", literal)
}

func TestExtractArrayLiteralNestedBrackets(t *testing.T) {
	src := `
const CATEGORIES = ['unrelated'];
export const PRODUCTS: Product[] = [
  { id: 'p1', tags: ['a', 'b'] },
];
export const OTHER = [];
`
	literal, err := ExtractArrayLiteral(src)
	require.NoError(t, err)
	assert.Contains(t, literal, "tags: ['a', 'b']")
	assert.NotContains(t, literal, "OTHER")
}

func TestExtractArrayLiteralErrors(t *testing.T) {
	_, err := ExtractArrayLiteral("const PRODUCTS = []")
	assert.Error(t, err)

	_, err = ExtractArrayLiteral("export const PRODUCTS: Product[] = [ {id:'a'}")
	assert.Error(t, err)
}

func TestRewriteEnumRefs(t *testing.T) {
	literal := "[{vertical: Vertical.DEALS}, {vertical: VerticalType.MAKERS}]"

	rewritten := RewriteEnumRefs(literal)

	assert.Contains(t, rewritten, "'DEALS'")
	assert.Contains(t, rewritten, "'MAKERS'")
	assert.NotContains(t, rewritten, "Vertical.")
	assert.NotContains(t, rewritten, "VerticalType.")
}

func TestParseProducts(t *testing.T) {
	src := `
export enum Vertical {
  DEALS = 'DEALS',
  RURAL = 'RURAL',
  MAKERS = 'MAKERS',
}

export const PRODUCTS: Product[] = [
  {
    id: 'prod-1',
    name: 'Fresh Milk',
    description: "Farm fresh milk, 1L",
    price: 45,
    originalPrice: 60,
    discount: '25% OFF',
    category: 'Dairy',
    vertical: Vertical.DEALS, // flash deal
    storeName: 'Daily Dairy',
    storeId: 'store-1',
    stock: 20,
    rating: 4.7,
    expiryDate: '2025-01-15',
  },
  {
    id: 'prod-2',
    name: 'Handwoven Basket',
    price: 350,
    vertical: VerticalType.MAKERS,
    makerMaterial: 'Bamboo',
    dimensions: undefined,
  },
]
`
	products, err := ParseProducts(src)
	require.NoError(t, err)
	require.Len(t, products, 2)

	milk := products[0]
	assert.Equal(t, "prod-1", milk.ID)
	assert.Equal(t, "Fresh Milk", milk.Name)
	assert.Equal(t, 45.0, milk.Price)
	assert.Equal(t, "DEALS", milk.Vertical)
	assert.Equal(t, 20, milk.Stock)
	assert.Equal(t, 4.7, milk.Rating)
	assert.Equal(t, "2025-01-15", milk.ExpiryDate)

	basket := products[1]
	assert.Equal(t, "MAKERS", basket.Vertical)
	// makerMaterial maps onto the persisted material field.
	assert.Equal(t, "Bamboo", basket.Material)
	// Unrated fixtures pick up the default rating.
	assert.Equal(t, 4.5, basket.Rating)
	assert.Empty(t, basket.Dimensions)
}

func TestParseProductsEscapedQuote(t *testing.T) {
	src := `export const PRODUCTS = [{id: 'p1', name: 'Farmer\'s Honey'}]`

	products, err := ParseProducts(src)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Farmer's Honey", products[0].Name)
}

func TestParseProductsBadSource(t *testing.T) {
	_, err := ParseProducts("nothing exported here")
	assert.Error(t, err)
}
