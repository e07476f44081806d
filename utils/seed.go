package utils

import (
	"github.com/akber360/QA-Cinema/models"
	"gorm.io/gorm"
)

// SeedCatalog loads the movie, screen and screening reference data.
// Safe to run on every startup; rows that already exist are kept.
func SeedCatalog(db *gorm.DB) error {
	movies := []models.Movie{
		{
			Title:       "The Midnight Reel",
			Director:    "Ana Moreau",
			Actors:      "J. Okafor, L. Tan, R. Whitfield",
			ReleaseDate: "1962-05-11",
			Description: "A projectionist discovers a film that plays a different ending every night.",
			Poster:      "midnight_reel.jpg",
			Classic:     true,
		},
		{
			Title:         "Static Horizon",
			Director:      "Priya Nair",
			Actors:        "D. Kowalski, M. Achebe",
			ReleaseDate:   "2024-02-09",
			Description:   "A storm-chasing crew picks up a broadcast that predicts tomorrow's weather.",
			Poster:        "static_horizon.jpg",
			AgeRestricted: true,
		},
		{
			Title:       "Paper Lanterns",
			Director:    "Ken Arai",
			Actors:      "S. Fontaine, H. Ito, B. Mwangi",
			ReleaseDate: "2023-10-20",
			Description: "Three strangers share a night bus and one unclaimed suitcase.",
			Poster:      "paper_lanterns.jpg",
		},
	}
	for _, m := range movies {
		var existing models.Movie
		if err := db.Where("title = ?", m.Title).First(&existing).Error; err != nil {
			if err := db.Create(&m).Error; err != nil {
				return err
			}
		}
	}

	var screenCount int64
	if err := db.Model(&models.Screen{}).Count(&screenCount).Error; err != nil {
		return err
	}
	if screenCount == 0 {
		screens := []models.Screen{
			{Standard: true, SeatingCapacity: 100},
			{Standard: false, SeatingCapacity: 59},
		}
		if err := db.Create(&screens).Error; err != nil {
			return err
		}

		screenings := []models.Screening{
			{MovieID: 1, ScreenID: 1, Day: "Friday", Time: "12:00:00", CurrentCapacity: 100},
			{MovieID: 1, ScreenID: 1, Day: "Friday", Time: "18:30:00", CurrentCapacity: 100},
			{MovieID: 2, ScreenID: 2, Day: "Saturday", Time: "13:00:00", CurrentCapacity: 59},
			{MovieID: 3, ScreenID: 2, Day: "Sunday", Time: "15:45:00", CurrentCapacity: 59},
		}
		if err := db.Create(&screenings).Error; err != nil {
			return err
		}
	}

	return nil
}
