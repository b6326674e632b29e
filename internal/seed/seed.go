// Package seed holds the fixed sample catalog loaded at startup.
package seed

import (
	"fmt"
	"log"

	"herbal/internal/models"
	"herbal/internal/repositories"
)

// Catalog stores the sample plants and tours unless the plant store already
// has rows. Tour plant ids refer to the sample plants by insertion order.
func Catalog(plants repositories.PlantRepository, tours repositories.TourRepository) error {
	n, err := plants.Count()
	if err != nil {
		return fmt.Errorf("failed to inspect plant store: %w", err)
	}
	if n > 0 {
		log.Printf("Plant store already has %d plants, skipping seed", n)
		return nil
	}

	for _, plant := range Plants() {
		if err := plants.Create(&plant); err != nil {
			return fmt.Errorf("failed to seed plant %s: %w", plant.CommonName, err)
		}
	}
	for _, tour := range Tours() {
		if err := tours.Create(&tour); err != nil {
			return fmt.Errorf("failed to seed virtual tour %s: %w", tour.Title, err)
		}
	}
	log.Printf("Seeded %d plants and %d virtual tours", len(Plants()), len(Tours()))
	return nil
}

// Plants returns the sample plants.
func Plants() []models.Plant {
	return []models.Plant{
		{
			CommonName:         "Turmeric",
			BotanicalName:      "Curcuma longa",
			Region:             "South Asia",
			Habitat:            "Native to South Asia, thrives in tropical climates with well-drained soil.",
			MedicinalUses:      "Anti-inflammatory, antioxidant, joint health, immunity booster, digestive aid.",
			Cultivation:        "Plant rhizomes in warm, humid conditions. Requires 7-10 months to mature.",
			PrimaryUse:         "Powerful anti-inflammatory and antioxidant properties for joint health and immunity.",
			Category:           "Anti-inflammatory",
			ImageURL:           "https://pixabay.com/get/g147565bfb2b01fc3de6ef211cdcba9867f0a5a41a48d3aa52ce24f3905741d7d1255c2a6e378bf4994a55ecb4562aa1415862675157ded8bca663eb8b912bd1c_1280.jpg",
			ModelURL:           "/models/turmeric_1752659858842.glb",
			PreparationMethods: []string{"Fresh root juice", "Dried powder", "Turmeric paste", "Golden milk"},
			AyushSystem:        "Ayurveda",
			IsPopular:          true,
		},
		{
			CommonName:         "Neem",
			BotanicalName:      "Azadirachta indica",
			Region:             "India",
			Habitat:            "Native to India and Myanmar, grows in tropical and semi-tropical regions.",
			MedicinalUses:      "Natural antibacterial and antifungal properties for skin health and pest control.",
			Cultivation:        "Fast-growing tree, drought resistant, grows in various soil types.",
			PrimaryUse:         "Natural antibacterial and antifungal properties for skin health and pest control.",
			Category:           "Antibacterial",
			ImageURL:           "https://images.unsplash.com/photo-1526336024174-e58f5cdd8e13?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			ModelURL:           "/models/neem_tree_1752659894030.glb",
			PreparationMethods: []string{"Neem oil", "Leaf paste", "Decoction", "Powder"},
			AyushSystem:        "Ayurveda",
			IsPopular:          true,
		},
		{
			CommonName:         "Ashwagandha",
			BotanicalName:      "Withania somnifera",
			Region:             "India",
			Habitat:            "Dry regions of India, particularly in Rajasthan, Punjab, Haryana, and Gujarat.",
			MedicinalUses:      "Powerful adaptogen for stress relief, energy enhancement and immune support.",
			Cultivation:        "Grows in dry and sub-tropical regions, requires well-drained soil.",
			PrimaryUse:         "Powerful adaptogen for stress relief, energy enhancement and immune support.",
			Category:           "Adaptogen",
			ImageURL:           "https://images.unsplash.com/photo-1542281286-9e0a16bb7366?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			ModelURL:           "/models/ashwagandha_1752659931972.glb",
			PreparationMethods: []string{"Root powder", "Capsules", "Churna", "Herbal tea"},
			AyushSystem:        "Ayurveda",
			IsPopular:          true,
		},
		{
			CommonName:         "Ginger",
			BotanicalName:      "Zingiber officinale",
			Region:             "Southeast Asia",
			Habitat:            "Tropical regions with warm, humid climate and rich, well-drained soil.",
			MedicinalUses:      "Excellent for digestion, nausea relief and anti-inflammatory benefits.",
			Cultivation:        "Grown from rhizomes in warm, humid conditions with partial shade.",
			PrimaryUse:         "Excellent for digestion, nausea relief and anti-inflammatory benefits.",
			Category:           "Digestive",
			ImageURL:           "https://images.unsplash.com/photo-1518977676601-b53f82aba655?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			ModelURL:           "/models/ginger_rhizome_1752659969242.glb",
			PreparationMethods: []string{"Fresh ginger tea", "Dried powder", "Ginger paste", "Essential oil"},
			AyushSystem:        "Ayurveda",
			IsPopular:          true,
		},
		{
			CommonName:         "Aloe Vera",
			BotanicalName:      "Aloe barbadensis",
			Region:             "Africa",
			Habitat:            "Arid and semi-arid regions, requires minimal water and good drainage.",
			MedicinalUses:      "Soothing gel for skin healing, burns treatment and digestive health.",
			Cultivation:        "Succulent plant that grows in sandy, well-draining soil with minimal water.",
			PrimaryUse:         "Soothing gel for skin healing, burns treatment and digestive health.",
			Category:           "Healing",
			ImageURL:           "https://pixabay.com/get/gabbc91ed0a38a59fd4b7bd722b2ae23d2ce18e7ccc633f0c35c6df7c647eb3bbd42b36f4db08ff4d754e22df0d86c46f01d458e0a850aa104dacc8fec588a741_1280.jpg",
			ModelURL:           "/models/aloe_vera_1752659996190.glb",
			PreparationMethods: []string{"Fresh gel", "Aloe juice", "Topical cream", "Powder"},
			AyushSystem:        "Unani",
			IsPopular:          true,
		},
		{
			CommonName:         "Brahmi",
			BotanicalName:      "Bacopa monnieri",
			Region:             "India",
			Habitat:            "Wetlands and muddy shores throughout India and other tropical regions.",
			MedicinalUses:      "Enhances memory, cognitive function and supports mental clarity.",
			Cultivation:        "Grows in wetlands, requires constant moisture and warm climate.",
			PrimaryUse:         "Enhances memory, cognitive function and supports mental clarity.",
			Category:           "Brain Health",
			ImageURL:           "https://pixabay.com/get/gbcc44e869cf6e7bad599f2acf497234dd32130cbbf39586fc2733b211f675560e43bf44b40751ade50897a4a4acfa358727b28592bfbaccfcc6a3478c53e5326_1280.jpg",
			ModelURL:           "/models/brahmi_1752660022307.glb",
			PreparationMethods: []string{"Brahmi oil", "Powder", "Fresh juice", "Herbal tea"},
			AyushSystem:        "Ayurveda",
			IsPopular:          true,
		},
		{
			CommonName:         "Tulsi",
			BotanicalName:      "Ocimum sanctum",
			Region:             "India",
			Habitat:            "Native to tropical regions of India, grows in various soil types.",
			MedicinalUses:      "Holy basil for respiratory health, stress relief and spiritual well-being.",
			Cultivation:        "Easy to grow herb, requires warm climate and regular watering.",
			PrimaryUse:         "Holy basil for respiratory health, stress relief and spiritual well-being.",
			Category:           "Sacred",
			ImageURL:           "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			ModelURL:           "/models/tulsi_basil_1752660043152.glb",
			PreparationMethods: []string{"Tulsi tea", "Fresh leaves", "Essential oil", "Powder"},
			AyushSystem:        "Ayurveda",
			IsPopular:          true,
		},
		{
			CommonName:         "Amla",
			BotanicalName:      "Phyllanthus emblica",
			Region:             "India",
			Habitat:            "Deciduous forests of tropical and subtropical India.",
			MedicinalUses:      "Rich in Vitamin C, supports immunity, hair health and digestion.",
			Cultivation:        "Hardy tree that grows in various climates, requires minimal care.",
			PrimaryUse:         "Rich in Vitamin C, supports immunity, hair health and digestion.",
			Category:           "Vitamin C",
			ImageURL:           "https://pixabay.com/get/g78684d8987a94d92dfb731df6973d48107c17c0b0e6588ce7c206a797193ef46b06755d38e7366e502fcb886c8dd43c0356b68e3ab156bb689a68a4e1512fc5a_1280.jpg",
			ModelURL:           "/models/amla_tree_1752660069472.glb",
			PreparationMethods: []string{"Fresh fruit", "Amla juice", "Powder", "Pickles"},
			AyushSystem:        "Ayurveda",
			IsPopular:          true,
		},
	}
}

// Tours returns the sample virtual tours.
func Tours() []models.VirtualTour {
	return []models.VirtualTour{
		{
			Title:       "Top 10 Immunity Herbs",
			Description: "Explore powerful herbs that boost natural immunity and strengthen your body's defenses.",
			ImageURL:    "https://pixabay.com/get/gb2d3275d26b80acb8fd03ba5aa93348caf54656eab8473ba1b00d1ce4816b006e6fc3f6eb749f6128ed566ff101c84056428196db2112c94a984d4da2f621923_1280.jpg",
			PlantCount:  12,
			Duration:    "15 min tour",
			Category:    "Immunity",
			PlantIDs:    []uint{1, 2, 3, 6, 7, 8},
		},
		{
			Title:       "Skin Healing Plants",
			Description: "Discover natural remedies for healthy, glowing skin from traditional Ayurvedic medicine.",
			ImageURL:    "https://images.unsplash.com/photo-1622737133809-d95047b9e673?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			PlantCount:  8,
			Duration:    "10 min tour",
			Category:    "Skin Care",
			PlantIDs:    []uint{2, 5, 7},
		},
		{
			Title:       "Digestive Aids Tour",
			Description: "Learn about herbs that promote healthy digestion and gut wellness in traditional medicine.",
			ImageURL:    "https://pixabay.com/get/g9dc5f9fc617e442fb01e19e7e8d22adedbeb77d1738b03cf68e56d991dcf8fa19223803bbdaee6044e2f4ef5920dedec4794ffd0cf4945e4439a2768b8a55e3b_1280.jpg",
			PlantCount:  10,
			Duration:    "12 min tour",
			Category:    "Digestion",
			PlantIDs:    []uint{1, 4, 8},
		},
	}
}
