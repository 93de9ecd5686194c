// internal/seed/seed.go
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/seahome/seahome-backend/internal/models"
)

var Amenities = []string{
	"Wi-Fi", "Кондиционер", "Кухня", "Парковка", "Бассейн",
	"С животными", "Детская площадка", "Мангал", "Трансфер",
}

var Regions = []string{
	"Крым", "Краснодарский край", "Кавказские Минеральные Воды",
	"Абхазия", "Турция", "Грузия", "Индия",
	"Таиланд", "Малайзия", "Индонезия", "ОАЭ", "Египет", "Вьетнам",
}

// DomesticRegions drive the country field on new listings and are hidden in
// region pickers for the moto, sim and exchange categories.
var DomesticRegions = []string{"Крым", "Краснодарский край", "Кавказские Минеральные Воды"}

var CitiesByRegion = map[string][]string{
	"Крым":                        {"Ялта", "Севастополь", "Алушта", "Евпатория", "Феодосия", "Судак"},
	"Краснодарский край":          {"Сочи", "Адлер", "Анапа", "Геленджик", "Новороссийск", "Туапсе"},
	"Кавказские Минеральные Воды": {"Пятигорск", "Кисловодск", "Ессентуки", "Железноводск", "Минеральные Воды", "Лермонтов"},
	"Абхазия":                     {"Гагра", "Пицунда", "Новый Афон", "Сухум"},
	"Турция":                      {"Анталья", "Аланья", "Кемер", "Мармарис", "Бодрум", "Фетхие"},
	"Грузия":                      {"Батуми", "Кобулети", "Сарпи"},
	"Индия":                       {"Гоа", "Варкала", "Гокарна"},
	"Таиланд":                     {"Пхукет", "Самуи", "Паттайя", "Панган", "Краби"},
	"Малайзия":                    {"Лангкави", "Пенанг", "Кота-Кинабалу"},
	"Индонезия":                   {"Чангу", "Убуд", "Улувату", "Семиньяк", "Нуса-Дуа"},
	"ОАЭ":                         {"Дубай", "Абу-Даби", "Шарджа", "Рас-эль-Хайма"},
	"Египет":                      {"Шарм-эш-Шейх", "Хургада", "Дахаб", "Марса-Алам"},
	"Вьетнам":                     {"Нячанг", "Дананг", "Фукуок", "Муйне"},
}

var RegionTags = map[string]string{
	"Крым":                        "Дворцы и горы",
	"Краснодарский край":          "Центр отдыха",
	"Кавказские Минеральные Воды": "Здоровье и релакс",
	"Абхазия":                     "Душа Кавказа",
	"Турция":                      "Все включено",
	"Грузия":                      "Вино и гостеприимство",
	"Индия":                       "Йога и океан",
	"Таиланд":                     "Острова и Будда",
	"Малайзия":                    "Джунгли и небоскребы",
	"Индонезия":                   "Серфинг на Бали",
	"ОАЭ":                         "Роскошь будущего",
	"Египет":                      "Тайны Красного моря",
	"Вьетнам":                     "Азиатский уют",
}

func IsDomesticRegion(region string) bool {
	for _, r := range DomesticRegions {
		if r == region {
			return true
		}
	}
	return false
}

// Users returns the demo user set stored when the users key is absent.
func Users() []models.User {
	return []models.User{
		{ID: "dev_user", Username: "traveler_dev", Role: models.RoleGuest},
		{ID: "seed_host_anna", Username: "anna_sochi_host", Role: models.RoleOwner},
		{ID: "seed_host_timur", Username: "timur_phuket", Role: models.RoleOwner},
	}
}

// Listings returns the demo catalog stored when the listings key is absent or
// empty. A couple of entries stay pending so the moderation queue is not
// empty on first run.
func Listings() []models.Listing {
	now := time.Now()
	return []models.Listing{
		{
			ID:            uuid.NewString(),
			Category:      models.CategoryStay,
			Type:          models.TypeGuestHouse,
			OwnerID:       "seed_host_anna",
			OwnerUsername: "anna_sochi_host",
			Title:         "Гостевой дом «Лазурный»",
			Description:   "Уютный гостевой дом в пяти минутах от набережной.",
			Country:       "Россия",
			Region:        "Краснодарский край",
			City:          "Сочи",
			Address:       "ул. Приморская, 14",
			PricePerNight: 3500,
			Stay:          &models.StayDetails{DistanceToSea: 350, MaxGuests: 4},
			Amenities:     []string{"Wi-Fi", "Кондиционер", "Кухня"},
			Images:        []string{"https://picsum.photos/seed/lazurny/800/600"},
			Status:        models.StatusApproved,
			CreatedAt:     now.Add(-72 * time.Hour),
			IsVerified:    true,
			Rating:        0,
			Reviews:       []models.Review{},
		},
		{
			ID:            uuid.NewString(),
			Category:      models.CategoryStay,
			Type:          models.TypeMiniHotel,
			OwnerID:       "seed_host_anna",
			OwnerUsername: "anna_sochi_host",
			Title:         "Мини-отель «Волна»",
			Description:   "Номера с видом на море, завтрак включен.",
			Country:       "Россия",
			Region:        "Крым",
			City:          "Ялта",
			Address:       "наб. Ленина, 3",
			PricePerNight: 5200,
			Stay:          &models.StayDetails{DistanceToSea: 120, MaxGuests: 2},
			Amenities:     []string{"Wi-Fi", "Бассейн", "Трансфер"},
			Images:        []string{"https://picsum.photos/seed/volna/800/600"},
			Status:        models.StatusApproved,
			CreatedAt:     now.Add(-48 * time.Hour),
			IsFeatured:    true,
			Rating:        0,
			Reviews:       []models.Review{},
		},
		{
			ID:            uuid.NewString(),
			Category:      models.CategoryMoto,
			Type:          models.TypeScooter,
			OwnerID:       "seed_host_timur",
			OwnerUsername: "timur_phuket",
			Title:         "Скутер Honda Click 155",
			Description:   "Свежий скутер, два шлема в комплекте.",
			Country:       "Зарубежье",
			Region:        "Таиланд",
			City:          "Пхукет",
			Address:       "Rawai, Soi Saliga 2",
			PricePerNight: 300,
			Moto:          &models.MotoDetails{EngineCapacity: "155cc"},
			Amenities:     []string{},
			Images:        []string{"https://picsum.photos/seed/click155/800/600"},
			Status:        models.StatusApproved,
			CreatedAt:     now.Add(-24 * time.Hour),
			Rating:        0,
			Reviews:       []models.Review{},
		},
		{
			ID:            uuid.NewString(),
			Category:      models.CategorySim,
			Type:          models.TypePrepaid,
			OwnerID:       "seed_host_timur",
			OwnerUsername: "timur_phuket",
			Title:         "AIS Traveller SIM",
			Description:   "Безлимитный интернет для туристов.",
			Country:       "Зарубежье",
			Region:        "Таиланд",
			City:          "Пхукет",
			Address:       "Phuket Town, Ranong Rd",
			PricePerNight: 450,
			Sim:           &models.SimDetails{DataVolume: "Unlimited", ValidityPeriod: "30 days"},
			Amenities:     []string{},
			Images:        []string{"https://picsum.photos/seed/aissim/800/600"},
			Status:        models.StatusPending,
			CreatedAt:     now.Add(-6 * time.Hour),
			Rating:        0,
			Reviews:       []models.Review{},
		},
		{
			ID:            uuid.NewString(),
			Category:      models.CategoryExchange,
			Type:          models.TypeCash,
			OwnerID:       "seed_host_timur",
			OwnerUsername: "timur_phuket",
			Title:         "Phuket Money",
			Description:   "Обмен наличных по выгодному курсу.",
			Country:       "Зарубежье",
			Region:        "Таиланд",
			City:          "Пхукет",
			Address:       "Patong, Bangla Rd 21",
			PricePerNight: 0,
			Exchange:      &models.ExchangeDetails{ExchangeRates: "RUB -> THB (0.38)", WorkingHours: "10:00 - 20:00"},
			Amenities:     []string{},
			Images:        []string{"https://picsum.photos/seed/phuketmoney/800/600"},
			Status:        models.StatusPending,
			CreatedAt:     now.Add(-2 * time.Hour),
			Rating:        0,
			Reviews:       []models.Review{},
		},
	}
}
