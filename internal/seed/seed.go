package seed

import (
	"fmt"
	"log"
	"time"

	"github.com/salah559/Box-eat/internal/domain"
	"github.com/salah559/Box-eat/internal/storage"
)

// Run loads the initial bilingual menu and offers. It is a no-op when menu
// items already exist, so restarts against a durable store do not duplicate
// rows.
func Run(store storage.Store) error {
	existing, err := store.ListMenuItems()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Println("[boxeat] data already seeded, skipping")
		return nil
	}

	log.Println("[boxeat] seeding initial data...")

	menuItems := []domain.MenuItem{
		{
			Name:          "Classic Burger",
			NameAr:        "برجر كلاسيك",
			Description:   "Juicy beef patty with fresh vegetables",
			DescriptionAr: "لحم بقري طازج مع الخضروات الطازجة",
			Price:         "450.00",
			Category:      "برجر",
			Image:         "/assets/images/classic-burger.png",
			IsAvailable:   true,
			IsPopular:     true,
		},
		{
			Name:          "French Fries",
			NameAr:        "بطاطا مقلية",
			Description:   "Crispy golden fries",
			DescriptionAr: "بطاطا مقلية ذهبية مقرمشة",
			Price:         "200.00",
			Category:      "برجر",
			Image:         "/assets/images/french-fries.png",
			IsAvailable:   true,
			IsPopular:     true,
		},
		{
			Name:          "Chicken Wrap",
			NameAr:        "لفائف الدجاج",
			Description:   "Grilled chicken with fresh vegetables",
			DescriptionAr: "دجاج مشوي مع الخضروات الطازجة",
			Price:         "380.00",
			Category:      "ساندويتش",
			Image:         "/assets/images/chicken-wrap.png",
			IsAvailable:   true,
			IsNew:         true,
		},
		{
			Name:          "Fresh Juice",
			NameAr:        "عصير طازج",
			Description:   "Refreshing natural juice",
			DescriptionAr: "عصير طبيعي منعش",
			Price:         "150.00",
			Category:      "مشروبات",
			Image:         "/assets/images/fresh-juice.png",
			IsAvailable:   true,
		},
		{
			Name:          "Chocolate Cake",
			NameAr:        "كيك شوكولاتة",
			Description:   "Rich chocolate dessert",
			DescriptionAr: "حلوى شوكولاتة غنية",
			Price:         "280.00",
			Category:      "حلويات",
			Image:         "/assets/images/chocolate-cake.png",
			IsAvailable:   true,
			IsPopular:     true,
		},
		{
			Name:          "Fresh Salad",
			NameAr:        "سلطة طازجة",
			Description:   "Mixed green salad with dressing",
			DescriptionAr: "سلطة خضراء مشكلة مع الصلصة",
			Price:         "250.00",
			Category:      "سلطات",
			Image:         "/assets/images/fresh-salad.png",
			IsAvailable:   true,
		},
		{
			Name:          "Grilled Chicken",
			NameAr:        "دجاج مشوي",
			Description:   "Perfectly grilled chicken pieces",
			DescriptionAr: "قطع دجاج مشوية بإتقان",
			Price:         "420.00",
			Category:      "برجر",
			Image:         "/assets/images/grilled-chicken.png",
			IsAvailable:   true,
			IsPopular:     true,
		},
	}

	for _, item := range menuItems {
		if _, err := store.CreateMenuItem(item); err != nil {
			return fmt.Errorf("seed menu item %q: %w", item.Name, err)
		}
	}

	offers := []domain.Offer{
		{
			Title:         "Burger Combo Deal",
			TitleAr:       "عرض كومبو برجر",
			Description:   "Get burger, fries and drink",
			DescriptionAr: "احصل على برجر، بطاطا ومشروب",
			Discount:      25,
			Image:         "/assets/images/classic-burger.png",
			ValidUntil:    time.Now().AddDate(0, 0, 30).Format("2006-01-02"),
			IsActive:      true,
		},
		{
			Title:         "Dessert Special",
			TitleAr:       "عرض خاص على الحلويات",
			Description:   "Special discount on all desserts",
			DescriptionAr: "خصم خاص على جميع الحلويات",
			Discount:      15,
			Image:         "/assets/images/chocolate-cake.png",
			ValidUntil:    time.Now().AddDate(0, 0, 15).Format("2006-01-02"),
			IsActive:      true,
		},
	}

	for _, offer := range offers {
		if _, err := store.CreateOffer(offer); err != nil {
			return fmt.Errorf("seed offer %q: %w", offer.Title, err)
		}
	}

	log.Println("[boxeat] data seeded successfully")
	return nil
}
