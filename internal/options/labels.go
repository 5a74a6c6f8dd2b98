package options

import "github.com/gradwear/storefront/internal/models"

// Arabic display names for option keys. Every view reads from here.
var displayNames = map[string]string{
	"nameOnSash":      "الاسم على الوشاح",
	"embroideryColor": "لون التطريز",
	"capFabric":       "قماش الكاب",
	"size":            "المقاس",
	"color":           "اللون",
	"capColor":        "لون الكاب",
	"dandoshColor":    "لون الدندوش",
	"fabric":          "نوع القماش",
	"length":          "الطول",
	"width":           "العرض",
}

var valueTranslations = map[string]string{
	"gold":      "ذهبي",
	"silver":    "فضي",
	"black":     "أسود",
	"white":     "أبيض",
	"red":       "أحمر",
	"blue":      "أزرق",
	"navy":      "كحلي",
	"gray":      "رمادي",
	"brown":     "بني",
	"burgundy":  "عنابي",
	"pink":      "وردي",
	"green":     "أخضر",
	"purple":    "بنفسجي",
	"cotton":    "قطن",
	"silk":      "حرير",
	"polyester": "بوليستر",
	"wool":      "صوف",
	"small":     "صغير",
	"medium":    "متوسط",
	"large":     "كبير",
	"xlarge":    "كبير جداً",
}

// Product types offered in the admin form, in display order.
var ProductTypes = []string{
	"وشاح وكاب",
	"جاكيت",
	"عباية تخرج",
	"مريول مدرسي",
	"كاب فقط",
}

var sizeGuides = map[string]string{
	"جاكيت":       "/src/assets/size1.png",
	"عباية تخرج":  "/src/assets/size2.png",
	"مريول مدرسي": "/src/assets/size3.png",
}

// DisplayName maps an option key to its Arabic label. Unknown keys are returned as-is.
func DisplayName(key string) string {
	if name, ok := displayNames[key]; ok {
		return name
	}

	return key
}

// DisplayValue translates a stored option value for display. Unknown values are returned as-is.
func DisplayValue(value string) string {
	if v, ok := valueTranslations[value]; ok {
		return v
	}

	return value
}

// SizeGuideImage returns the size chart for a product type, if it has one.
func SizeGuideImage(productType string) (string, bool) {
	img, ok := sizeGuides[productType]

	return img, ok
}

// Labels collects the display text for every option name and listed value of defs,
// keyed by the stored form.
func Labels(defs []models.OptionDefinition) map[string]string {
	labels := make(map[string]string)

	for _, def := range defs {
		labels[def.Name] = DisplayName(def.Name)
		for _, v := range def.Values() {
			labels[v] = DisplayValue(v)
		}
	}

	return labels
}
