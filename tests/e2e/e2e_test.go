package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/xyz1481/turf-booking/internal/database"
	"github.com/xyz1481/turf-booking/internal/domain"
	"github.com/xyz1481/turf-booking/internal/middleware"
	"github.com/xyz1481/turf-booking/internal/modules/admin"
	"github.com/xyz1481/turf-booking/internal/modules/auth"
	"github.com/xyz1481/turf-booking/internal/modules/booking"
	"github.com/xyz1481/turf-booking/internal/modules/catalog"
	"github.com/xyz1481/turf-booking/internal/modules/review"
	jwtsvc "github.com/xyz1481/turf-booking/internal/pkg/jwt"
	"github.com/xyz1481/turf-booking/internal/repository"
)

type testServer struct {
	router *gin.Engine
	jwt    *jwtsvc.Service

	turfs    *repository.TurfRepository
	users    *repository.UserRepository
	bookings *repository.BookingRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	// An in-memory DSN is per connection; keep the pool at one so every
	// query sees the same database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repository.Migrate(db))

	turfRepo := repository.NewTurfRepository(db)
	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New("e2e-secret", time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	catalogHandler := catalog.NewHandler(catalog.NewService(turfRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, turfRepo, userRepo, nil))
	adminHandler := admin.NewHandler(admin.NewService(bookingRepo, turfRepo, userRepo, nil))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, turfRepo))

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterRoutes(v1, nil)

		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(nil, protected)

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	return &testServer{
		router:   r,
		jwt:      j,
		turfs:    turfRepo,
		users:    userRepo,
		bookings: bookingRepo,
	}
}

func (s *testServer) seed(t *testing.T) (playerToken, adminToken string) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.turfs.Create(ctx, &domain.Turf{
		ID:             "t1",
		Name:           "Test Turf",
		Location:       "Test St",
		PricePerHour:   1000,
		AvailableHours: []string{"09:00", "10:00"},
	}))

	require.NoError(t, s.users.Create(ctx, &domain.User{
		ID:        "user-1",
		Name:      "Player One",
		Email:     "playerone@example.com",
		ContactNo: "9876543210",
		Role:      domain.RolePlayer,
	}))
	require.NoError(t, s.users.Create(ctx, &domain.User{
		ID:        "admin-1",
		Name:      "Turf Owner",
		Email:     "admin@example.com",
		ContactNo: "9123456789",
		Role:      domain.RoleAdmin,
	}))

	playerToken, err := s.jwt.GenerateToken("user-1", string(domain.RolePlayer))
	require.NoError(t, err)
	adminToken, err = s.jwt.GenerateToken("admin-1", string(domain.RoleAdmin))
	require.NoError(t, err)
	return playerToken, adminToken
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "response body: %s", w.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func (s *testServer) availability(t *testing.T, turfID, date string) []string {
	t.Helper()
	w := s.do(t, http.MethodGet, "/api/v1/turfs/"+turfID+"/availability?date="+date, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got struct {
		AvailableSlots []string `json:"available_slots"`
	}
	decodeData(t, w, &got)
	return got.AvailableSlots
}

// Walks the booking lifecycle end to end: book a slot, confirm it, block
// the other slot, then free both again and verify availability after
// every step.
func TestBookingLifecycle(t *testing.T) {
	s := newTestServer(t)
	playerToken, adminToken := s.seed(t)
	const date = "2025-08-01"

	require.Equal(t, []string{"09:00", "10:00"}, s.availability(t, "t1", date))

	// Player books 09:00; the pending booking holds the slot immediately.
	w := s.do(t, http.MethodPost, "/api/v1/bookings", playerToken, gin.H{
		"turf_id":   "t1",
		"date":      date,
		"time_slot": "09:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Booking domain.Booking `json:"booking"`
	}
	decodeData(t, w, &created)
	require.Equal(t, domain.BookingPending, created.Booking.Status)
	require.Equal(t, domain.PaymentUnpaid, created.Booking.PaymentStatus)

	require.Equal(t, []string{"10:00"}, s.availability(t, "t1", date))

	// Booking the same slot again conflicts.
	w = s.do(t, http.MethodPost, "/api/v1/bookings", playerToken, gin.H{
		"turf_id":   "t1",
		"date":      date,
		"time_slot": "09:00",
	})
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Admin confirms; the slot stays held.
	w = s.do(t, http.MethodPatch, "/api/v1/admin/bookings/"+created.Booking.ID+"/status", adminToken, gin.H{
		"status": "confirmed",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, []string{"10:00"}, s.availability(t, "t1", date))

	// Confirmed bookings cannot be decided again.
	w = s.do(t, http.MethodPatch, "/api/v1/admin/bookings/"+created.Booking.ID+"/status", adminToken, gin.H{
		"status": "rejected",
	})
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Admin blocks 10:00; the grid is now empty.
	w = s.do(t, http.MethodPost, "/api/v1/admin/blocks", adminToken, gin.H{
		"turf_id":   "t1",
		"date":      date,
		"time_slot": "10:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var blocked struct {
		Block domain.Booking `json:"block"`
	}
	decodeData(t, w, &blocked)
	require.Equal(t, domain.BookingBlocked, blocked.Block.Status)
	require.Equal(t, domain.PaymentNotApplicable, blocked.Block.PaymentStatus)
	require.Equal(t, domain.DefaultBlockNotes, blocked.Block.Notes)

	require.Empty(t, s.availability(t, "t1", date))

	// Blocking the same slot twice conflicts.
	w = s.do(t, http.MethodPost, "/api/v1/admin/blocks", adminToken, gin.H{
		"turf_id":   "t1",
		"date":      date,
		"time_slot": "10:00",
	})
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Unblocking frees 10:00 again.
	w = s.do(t, http.MethodDelete, "/api/v1/admin/blocks?turf_id=t1&date="+date+"&time_slot=10:00", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, []string{"10:00"}, s.availability(t, "t1", date))

	// A rejected booking keeps its row but frees the slot.
	w = s.do(t, http.MethodPost, "/api/v1/bookings", playerToken, gin.H{
		"turf_id":   "t1",
		"date":      date,
		"time_slot": "10:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decodeData(t, w, &created)

	w = s.do(t, http.MethodPatch, "/api/v1/admin/bookings/"+created.Booking.ID+"/status", adminToken, gin.H{
		"status": "rejected",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, []string{"10:00"}, s.availability(t, "t1", date))

	rejected, err := s.bookings.GetByID(context.Background(), created.Booking.ID)
	require.NoError(t, err)
	require.Equal(t, domain.BookingRejected, rejected.Status)
}

func TestRegisterAndSignIn(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":       "New Player",
		"email":      "new@example.com",
		"contact_no": "9999999999",
		"role":       "admin",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var registered struct {
		User        domain.User `json:"user"`
		AccessToken string      `json:"access_token"`
	}
	decodeData(t, w, &registered)
	require.Equal(t, domain.RolePlayer, registered.User.Role)
	require.NotEmpty(t, registered.AccessToken)

	// Same (email, contactNo) pair cannot register twice.
	w = s.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":       "New Player",
		"email":      "new@example.com",
		"contact_no": "9999999999",
	})
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Sign-in needs both fields to match exactly.
	w = s.do(t, http.MethodPost, "/api/v1/auth/signin", "", gin.H{
		"email":      "new@example.com",
		"contact_no": "9999999999",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/v1/auth/signin", "", gin.H{
		"email":      "new@example.com",
		"contact_no": "0000000000",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
}

func TestAdminRoutesAreGated(t *testing.T) {
	s := newTestServer(t)
	playerToken, _ := s.seed(t)

	w := s.do(t, http.MethodGet, "/api/v1/admin/bookings", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/admin/bookings", playerToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestReviewFlow(t *testing.T) {
	s := newTestServer(t)
	playerToken, _ := s.seed(t)

	w := s.do(t, http.MethodPost, "/api/v1/reviews", playerToken, gin.H{
		"turf_id": "t1",
		"rating":  4,
		"comment": "Great surface.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/v1/turfs/t1/reviews", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got struct {
		Reviews []domain.Review `json:"reviews"`
	}
	decodeData(t, w, &got)
	require.Len(t, got.Reviews, 1)
	require.Equal(t, 4, got.Reviews[0].Rating)
}
