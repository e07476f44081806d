package services

import (
	"testing"
	"time"

	"github.com/akber360/QA-Cinema/models"
	"github.com/akber360/QA-Cinema/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testPrices = map[string]float64{
	TicketAdult:      15.50,
	TicketChild:      9.50,
	TicketConcession: 7.50,
}

var testSwearWords = []string{"shit", "crap"}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a second pooled connection would see its own empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Movie{}, &models.Screen{}, &models.Screening{},
		&models.Discussion{}, &models.Booking{}, &models.BookingDetail{},
	))

	return db
}

func seedFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()

	hashed, err := utils.HashPassword("password123")
	require.NoError(t, err)

	user := models.User{
		Username:   "testuser",
		Email:      "testuser@example.com",
		Password:   hashed,
		FirstName:  "Test",
		LastName:   "User",
		Address:    "123 Test St",
		CardNumber: "1234567890123456",
		CardExpiry: "12/24",
		CardCVC:    "123",
	}
	require.NoError(t, db.Create(&user).Error)

	movies := []models.Movie{
		{Title: "Test_Movie(classic)", Director: "Test Director", Actors: "Actor1, Actor2, Actor3",
			ReleaseDate: "2023-01-01", Description: "A test movie description", Poster: "movie_poster.jpg",
			Classic: true},
		{Title: "Test_Movie(new release)", Director: "Test Director", Actors: "Actor1, Actor2, Actor3",
			ReleaseDate: "2023-01-01", Description: "A test movie description", Poster: "movie_poster2.jpg",
			AgeRestricted: true},
		{Title: "Film123", Director: "Test Director", Actors: "Actor1, Actor2, Actor3",
			ReleaseDate: "2023-01-01", Description: "A test movie description", Poster: "movie_poster3.jpg",
			Classic: true, AgeRestricted: true},
	}
	require.NoError(t, db.Create(&movies).Error)

	screens := []models.Screen{
		{Standard: true, SeatingCapacity: 100},
		{Standard: false, SeatingCapacity: 59},
	}
	require.NoError(t, db.Create(&screens).Error)

	screenings := []models.Screening{
		{MovieID: 1, ScreenID: 1, Day: "Friday", Time: "12:00:00", CurrentCapacity: 100},
		{MovieID: 2, ScreenID: 2, Day: "Saturday", Time: "13:00:00", CurrentCapacity: 25},
	}
	require.NoError(t, db.Create(&screenings).Error)

	discussions := []models.Discussion{
		{Username: "testuser", MovieID: 1, Topic: "Test Topic 1", RespondingTo: "Post",
			Content: "Test content for Test Topic 1", Timestamp: time.Now().Add(-2 * time.Hour)},
		{Username: "testuser", MovieID: 2, Topic: "Test Topic 2", RespondingTo: "Post",
			Content: "Test content for Test Topic 2", Timestamp: time.Now().Add(-time.Hour)},
		{Username: "testuser", MovieID: 1, Topic: "Test Topic 1", RespondingTo: "1",
			Content: "Test comment for Test Topic 1", Timestamp: time.Now()},
	}
	require.NoError(t, db.Create(&discussions).Error)
}
