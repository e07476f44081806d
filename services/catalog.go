package services

import (
	"errors"

	"github.com/akber360/QA-Cinema/models"
	"gorm.io/gorm"
)

// CatalogService answers read-only queries over the movie, screen and
// screening reference data.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) ListMovies() ([]models.Movie, error) {
	var movies []models.Movie
	if err := s.db.Order("id").Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

// SearchMovies returns movies whose title contains the query,
// case-insensitively.
func (s *CatalogService) SearchMovies(query string) ([]models.Movie, error) {
	var movies []models.Movie
	if err := s.db.
		Where("LOWER(title) LIKE LOWER(?)", "%"+query+"%").
		Order("id").
		Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (s *CatalogService) Classics() ([]models.Movie, error) {
	var movies []models.Movie
	if err := s.db.Where("classic = ?", true).Order("id").Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (s *CatalogService) NewReleases() ([]models.Movie, error) {
	var movies []models.Movie
	if err := s.db.Where("classic = ?", false).Order("id").Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (s *CatalogService) GetMovie(id uint) (*models.Movie, error) {
	var movie models.Movie
	if err := s.db.First(&movie, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &movie, nil
}

// ScreeningsFor lists screenings of a movie on a given weekday. An empty
// slice means no showings that day; callers render their own message.
func (s *CatalogService) ScreeningsFor(movieID uint, day string) ([]models.Screening, error) {
	var screenings []models.Screening
	if err := s.db.
		Where("movie_id = ? AND day = ?", movieID, day).
		Order("time").
		Find(&screenings).Error; err != nil {
		return nil, err
	}
	return screenings, nil
}

func (s *CatalogService) GetScreening(id uint) (*models.Screening, error) {
	var screening models.Screening
	if err := s.db.Preload("Movie").Preload("Screen").First(&screening, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScreeningNotFound
		}
		return nil, err
	}
	return &screening, nil
}

func (s *CatalogService) ListScreens() ([]models.Screen, error) {
	var screens []models.Screen
	if err := s.db.Order("id").Find(&screens).Error; err != nil {
		return nil, err
	}
	return screens, nil
}
