package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/akber360/QA-Cinema/config"
	"github.com/akber360/QA-Cinema/models"
	"github.com/akber360/QA-Cinema/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:      "8080",
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
		TicketPrices: map[string]float64{
			"Adult":      15.50,
			"Child":      9.50,
			"Concession": 7.50,
		},
		SwearWords:        []string{"shit", "crap"},
		PasswordMinLength: 8,
	}
}

func setupServer(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	hashed, err := utils.HashPassword("password123")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Username: "testuser", Email: "testuser@example.com", Password: hashed,
	}).Error)

	movies := []models.Movie{
		{Title: "Test_Movie(classic)", Classic: true},
		{Title: "Test_Movie(new release)", AgeRestricted: true},
		{Title: "Film123", Classic: true, AgeRestricted: true},
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

	return db, SetupRouter(db, testConfig())
}

func postForm(r *gin.Engine, path string, form url.Values, cookie string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w := postForm(r, "/login", url.Values{"username": {username}, "password": {password}}, "")
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == "session" {
			return c.Name + "=" + c.Value
		}
	}
	t.Fatal("no session cookie in login response")
	return ""
}

func TestBookingEndToEnd(t *testing.T) {
	db, r := setupServer(t)
	cookie := login(t, r, "testuser", "password123")

	w := postForm(r, "/booking/1", url.Values{
		"Adult":      {"1"},
		"Child":      {"1"},
		"Concession": {"1"},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	location := w.Header().Get("Location")
	assert.True(t, strings.HasPrefix(location, "/payment/1?booking="), "unexpected redirect %q", location)

	var booking models.Booking
	require.NoError(t, db.Where("user_id = ?", 1).First(&booking).Error)
	assert.Equal(t, 32.5, booking.TotalPrice)

	var details []models.BookingDetail
	require.NoError(t, db.Where("booking_id = ?", booking.ID).Order("id").Find(&details).Error)
	require.Len(t, details, 3)
	assert.Equal(t, "Adult", details[0].TicketType)
	assert.Equal(t, "Child", details[1].TicketType)
	assert.Equal(t, "Concession", details[2].TicketType)

	// follow the redirect to the payment form
	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, location, nil)
	r.ServeHTTP(w2, req)
	require.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "Payment Form")
	assert.Contains(t, w2.Body.String(), "Test_Movie(classic)")
}

func TestBookingRequiresLogin(t *testing.T) {
	_, r := setupServer(t)

	w := postForm(r, "/booking/1", url.Values{"Adult": {"1"}}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookingScreeningNotFound(t *testing.T) {
	_, r := setupServer(t)
	cookie := login(t, r, "testuser", "password123")

	w := postForm(r, "/booking/99", url.Values{"Adult": {"1"}}, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestForumModeration(t *testing.T) {
	_, r := setupServer(t)
	cookie := login(t, r, "testuser", "password123")

	w := postForm(r, "/forum", url.Values{
		"responding_to": {"Post"},
		"movie_id":      {"1"},
		"topic":         {"Crap"},
		"content":       {"shit"},
	}, cookie)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Your topic contains inappropriate language!")
	assert.Contains(t, w.Body.String(), "Your comment contains inappropriate language!")

	// the flagged text never shows up in the listing
	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/forum", nil)
	r.ServeHTTP(w2, req)
	require.Equal(t, http.StatusOK, w2.Code)
	assert.NotContains(t, w2.Body.String(), "Crap")
	assert.NotContains(t, w2.Body.String(), "shit")
}

func TestForumPostAndReply(t *testing.T) {
	_, r := setupServer(t)
	cookie := login(t, r, "testuser", "password123")

	w := postForm(r, "/forum", url.Values{
		"responding_to": {"Post"},
		"movie_id":      {"1"},
		"topic":         {"Test Topic 3"},
		"content":       {"Test content for Test Topic 3"},
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Comment posted successfully!")

	w = postForm(r, "/forum", url.Values{
		"responding_to": {"1"},
		"movie_id":      {"1"},
		"topic":         {"Test Topic 3"},
		"content":       {"Replying to the first post"},
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/forum", nil)
	r.ServeHTTP(w2, req)
	assert.Contains(t, w2.Body.String(), "Test Topic 3")
	assert.Contains(t, w2.Body.String(), "Replying to the first post")
}

func TestSearch(t *testing.T) {
	_, r := setupServer(t)

	w := postForm(r, "/search", url.Values{"searchinput": {"Test"}}, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Test_Movie(classic)")
	assert.Contains(t, body, "Test_Movie(new release)")
	assert.NotContains(t, body, "Film123")
}

func TestScreeningsAPI(t *testing.T) {
	_, r := setupServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/movies/1/screenings?day=Friday", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "12:00:00")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/movies/3/screenings?day=Friday", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "There are currently no showings of this film")
}

func TestSignupThenLogin(t *testing.T) {
	_, r := setupServer(t)

	w := postForm(r, "/signup", url.Values{
		"username":     {"testuser2"},
		"email":        {"testuser2@example.com"},
		"password":     {"Password123$"},
		"confirmation": {"Password123$"},
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	login(t, r, "testuser2", "Password123$")
}

func TestSignupConflict(t *testing.T) {
	_, r := setupServer(t)

	w := postForm(r, "/signup", url.Values{
		"username":     {"testuser"},
		"email":        {"fresh@example.com"},
		"password":     {"Password123$"},
		"confirmation": {"Password123$"},
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	_, r := setupServer(t)

	w := postForm(r, "/login", url.Values{"username": {"ghost"}, "password": {"password123"}}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "no account associated with this username - please sign up")

	w = postForm(r, "/login", url.Values{"username": {"testuser"}, "password": {"wrongpassword"}}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "incorrect username or password")
	assert.NotContains(t, w.Body.String(), "wrong password")
}

func TestLogoutClearsSession(t *testing.T) {
	_, r := setupServer(t)
	cookie := login(t, r, "testuser", "password123")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.Header.Set("Cookie", cookie)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "successfully logged out.")

	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "session" && c.Value == "" {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout should clear the session cookie")

	// logging out again is harmless
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// and requests without the cookie are back to unauthenticated
	w = postForm(r, "/forum", url.Values{
		"responding_to": {"Post"}, "movie_id": {"1"}, "topic": {"t"}, "content": {"c"},
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHomePageShowsSessionUser(t *testing.T) {
	_, r := setupServer(t)
	cookie := login(t, r, "testuser", "password123")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", cookie)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bringing Stories to Life, One Screen at a Time")
	assert.Contains(t, w.Body.String(), "testuser")
}

func TestPaymentUpdatesBillingProfile(t *testing.T) {
	db, r := setupServer(t)
	cookie := login(t, r, "testuser", "password123")

	w := postForm(r, "/payment/1", url.Values{
		"first_name":  {"Payment"},
		"last_name":   {"Test"},
		"address":     {"10 Payment Test Road"},
		"card_number": {"9876543219876543"},
		"card_expiry": {"10/25"},
		"card_cvc":    {"456"},
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, db.Where("username = ?", "testuser").First(&user).Error)
	assert.Equal(t, "Payment", user.FirstName)
	assert.Equal(t, "Test", user.LastName)
	assert.Equal(t, "9876543219876543", user.CardNumber)
}

func TestUnknownRoute(t *testing.T) {
	_, r := setupServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
