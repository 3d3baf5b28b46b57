package usecase

import (
	"strings"

	"github.com/sailwalpranjal/SMART/internal/domain"
)

// typeRule is one classification rule: a product type and the keyword
// disjunction that selects it
type typeRule struct {
	productType domain.ProductType
	keywords    []string
}

// typeRules are evaluated in order and the first match wins. For each rule
// every keyword is tested against the category breadcrumb first, then the
// product name, before the next rule is consulted. Ambiguous products
// ("Leather Jacket" filed under Furniture) therefore resolve to the
// earliest type whose keywords hit either field. Keep the order fixed.
var typeRules = []typeRule{
	{domain.TypeClothing, []string{"clothing", "apparel", "shirt", "dress", "jacket", "pants", "sweater", "hoodie", "coat", "blouse", "skirt", "jeans"}},
	{domain.TypeShoes, []string{"shoe", "sneaker", "boot", "sandal", "footwear", "loafer"}},
	{domain.TypeFurniture, []string{"furniture", "chair", "table", "sofa", "couch", "desk", "dresser", "bookshelf", "bed frame", "ottoman"}},
	{domain.TypeJewelry, []string{"jewelry", "necklace", "bracelet", "earring", "pendant", "ring"}},
	{domain.TypeGlasses, []string{"glasses", "sunglasses", "eyewear", "frames"}},
	{domain.TypeElectronics, []string{"electronics", "laptop", "phone", "tablet", "headphone", "camera", "monitor", "television"}},
}

// classifyProductType classifies a product from its category breadcrumb
// and name. Falls back to general when no rule matches.
func classifyProductType(category, name string) domain.ProductType {
	category = strings.ToLower(category)
	name = strings.ToLower(name)

	for _, rule := range typeRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(category, keyword) || strings.Contains(name, keyword) {
				return rule.productType
			}
		}
	}
	return domain.TypeGeneral
}
