package persistence

import (
	"fmt"

	"github.com/kashpo/storefront/internal/domain/catalog"
	"github.com/kashpo/storefront/internal/domain/i18n"
)

var containerDimensions = map[catalog.Size]catalog.Dimensions{
	catalog.Size5L:  {HeightMM: 220, DiameterMM: 240},
	catalog.Size10L: {HeightMM: 280, DiameterMM: 300},
	catalog.Size16L: {HeightMM: 330, DiameterMM: 360},
}

var containerColors = []struct {
	id       string
	name     i18n.LocalizedText
	color    string
	gradient string
}{
	{"gray", i18n.Text("Серый", "Kulrang"), "#8c8c8c", ""},
	{"white", i18n.Text("Белый", "Oq"), "#f5f5f0", ""},
	{"graphite", i18n.Text("Графит", "Grafit"), "#3b3b3b", ""},
	{"sand", i18n.Text("Песочный", "Qumrang"), "#d8c3a0", "linear-gradient(135deg, #e6d5b8 0%, #c9ad82 100%)"},
}

var containerFeatures = []i18n.LocalizedText{
	i18n.Text("Ручное плетение из искусственного ротанга", "Sun'iy rotangdan qo'lda to'qilgan"),
	i18n.Text("Не выцветает на солнце", "Quyoshda rangi o'chmaydi"),
	i18n.Text("Подходит для улицы и помещения", "Ochiq havo va xona uchun mos"),
	i18n.Text("Внутренний пластиковый горшок в комплекте", "Ichki plastik tuvak to'plamda"),
}

// SeedCatalog returns the built-in product catalog in display order.
// Every container size comes in both styles; 10L classic is the flagship.
func SeedCatalog() []catalog.Product {
	products := []catalog.Product{
		seedContainer(catalog.Size10L, catalog.StyleClassic, true, 0),
		seedContainer(catalog.Size10L, catalog.StyleRound, true, 0),
		seedContainer(catalog.Size5L, catalog.StyleClassic, false, 0),
		seedContainer(catalog.Size5L, catalog.StyleRound, false, 0),
		seedContainer(catalog.Size16L, catalog.StyleClassic, false, 0),
		seedContainer(catalog.Size16L, catalog.StyleRound, false, 10),
		{
			ID:       "rattan-fiber",
			Category: catalog.CategoryFiber,
			Name:     i18n.Text("Искусственный ротанг для плетения", "To'qish uchun sun'iy rotang"),
			Description: i18n.Text(
				"Полиэтиленовый ротанг для плетения мебели и кашпо. Продаётся на вес.",
				"Mebel va kashpo to'qish uchun polietilen rotang. Og'irlik bo'yicha sotiladi.",
			),
			Features: []i18n.LocalizedText{
				i18n.Text("Ширина ленты 8 мм", "Lenta kengligi 8 mm"),
				i18n.Text("Устойчив к влаге и морозу", "Namlik va sovuqqa chidamli"),
			},
			Variants: []catalog.ColorVariant{
				{ID: "natural", Name: i18n.Text("Натуральный", "Tabiiy"), Images: []string{"/images/fiber/natural-1.jpg", "/images/fiber/natural-2.jpg"}, Color: "#c8a165"},
				{ID: "walnut", Name: i18n.Text("Орех", "Yong'oq"), Images: []string{"/images/fiber/walnut-1.jpg"}, Color: "#6b4a2b"},
				{ID: "gray", Name: i18n.Text("Серый", "Kulrang"), Images: []string{"/images/fiber/gray-1.jpg"}, Color: "#8c8c8c"},
			},
			Image:   "/images/fiber/natural-1.jpg",
			Popular: true,
		},
		{
			ID:       "rattan-fiber-mix",
			Category: catalog.CategoryFiber,
			Name:     i18n.Text("Ротанг ассорти", "Aralash rotang"),
			Description: i18n.Text(
				"Остатки лент разных цветов для небольших работ.",
				"Kichik ishlar uchun turli rangdagi lenta qoldiqlari.",
			),
			Image: "/images/fiber/mix.jpg",
		},
	}
	return products
}

func seedContainer(size catalog.Size, style catalog.Style, popular bool, discount int) catalog.Product {
	dims := containerDimensions[size]
	id := fmt.Sprintf("container-%s-%s", size, style)

	variants := make([]catalog.ColorVariant, 0, len(containerColors))
	for _, c := range containerColors {
		base := fmt.Sprintf("/images/%s/%s", id, c.id)
		variants = append(variants, catalog.ColorVariant{
			ID:       c.id,
			Name:     c.name.Clone(),
			Images:   []string{base + "-1.jpg", base + "-2.jpg", base + "-3.jpg"},
			Color:    c.color,
			Gradient: c.gradient,
		})
	}

	features := make([]i18n.LocalizedText, len(containerFeatures))
	for i, f := range containerFeatures {
		features[i] = f.Clone()
	}

	return catalog.Product{
		ID:         id,
		Category:   catalog.CategoryContainer,
		Size:       size,
		Style:      style,
		Dimensions: &dims,
		Name: i18n.Text(
			fmt.Sprintf("Кашпо %s %s", seedStyleAdjective[style].In(i18n.LocaleRU), size.DisplayName(i18n.LocaleRU)),
			fmt.Sprintf("%s kashpo %s", seedStyleAdjective[style].In(i18n.LocaleUZ), size.DisplayName(i18n.LocaleUZ)),
		),
		Description: i18n.Text(
			fmt.Sprintf("Плетёное кашпо объёмом %s, высота %d мм, диаметр %d мм.", size.DisplayName(i18n.LocaleRU), dims.HeightMM, dims.DiameterMM),
			fmt.Sprintf("%s hajmli to'qilgan kashpo, balandligi %d mm, diametri %d mm.", size.DisplayName(i18n.LocaleUZ), dims.HeightMM, dims.DiameterMM),
		),
		Features:        features,
		Variants:        variants,
		Popular:         popular,
		DiscountPercent: discount,
	}
}

var seedStyleAdjective = map[catalog.Style]i18n.LocalizedText{
	catalog.StyleClassic: i18n.Text("классическое", "Klassik"),
	catalog.StyleRound:   i18n.Text("округлое", "Dumaloq"),
}
