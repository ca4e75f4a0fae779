package domain

// VehicleCategory represents the vehicle size category a formula applies to
type VehicleCategory string

const (
	CategoryPetiteCitadine VehicleCategory = "petite-citadine"
	CategoryCitadine       VehicleCategory = "citadine"
	CategoryBerline        VehicleCategory = "berline"
	CategorySUV            VehicleCategory = "suv"
)

// AllCategories список всех категорий транспорта
var AllCategories = []VehicleCategory{
	CategoryPetiteCitadine,
	CategoryCitadine,
	CategoryBerline,
	CategorySUV,
}

// IsValid returns true if the category belongs to the fixed set
func (c VehicleCategory) IsValid() bool {
	switch c {
	case CategoryPetiteCitadine, CategoryCitadine, CategoryBerline, CategorySUV:
		return true
	default:
		return false
	}
}

// NormalizeCategory возвращает категорию для поиска формулы
// Неизвестные категории откатываются на "citadine" (исторический fallback)
func NormalizeCategory(c VehicleCategory) VehicleCategory {
	if c.IsValid() {
		return c
	}
	return CategoryCitadine
}
