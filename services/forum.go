package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/akber360/QA-Cinema/models"
	"gorm.io/gorm"
)

const (
	topicFlaggedMsg   = "Your topic contains inappropriate language!"
	contentFlaggedMsg = "Your comment contains inappropriate language!"
)

// RespondingToPost marks a top-level topic; anything else is the id of
// the post being replied to.
const RespondingToPost = "Post"

// ForumService persists discussion posts after both topic and content
// pass the moderation filter.
type ForumService struct {
	db     *gorm.DB
	filter *Filter
}

func NewForumService(db *gorm.DB, filter *Filter) *ForumService {
	return &ForumService{db: db, filter: filter}
}

func (s *ForumService) List() ([]models.Discussion, error) {
	var posts []models.Discussion
	if err := s.db.Preload("Movie").Order("timestamp").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Post creates a topic or a reply. Both fields are checked independently
// and the post is rejected whole if either is flagged, so flagged text
// never reaches the forum listing.
func (s *ForumService) Post(username string, movieID uint, respondingTo, topic, content string) (*models.Discussion, error) {
	if username == "" {
		return nil, ErrUnauthorized
	}

	var flagged []string
	if s.filter.Flagged(topic) {
		flagged = append(flagged, topicFlaggedMsg)
	}
	if s.filter.Flagged(content) {
		flagged = append(flagged, contentFlaggedMsg)
	}
	if len(flagged) > 0 {
		return nil, &ModerationError{Messages: flagged}
	}

	if respondingTo == "" {
		respondingTo = RespondingToPost
	}
	if respondingTo != RespondingToPost {
		parentID, err := strconv.Atoi(respondingTo)
		if err != nil {
			return nil, &ValidationError{Field: "responding_to", Message: "invalid post reference"}
		}
		var parent models.Discussion
		if err := s.db.First(&parent, parentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPostNotFound
			}
			return nil, err
		}
	}

	post := models.Discussion{
		Username:     username,
		MovieID:      movieID,
		Topic:        topic,
		RespondingTo: respondingTo,
		Content:      content,
		Timestamp:    time.Now(),
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}

	return &post, nil
}
