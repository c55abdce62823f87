package routers

import (
	"caremarket-service/internal/app/config"
	"caremarket-service/internal/app/delivery/http/controllers"
	"caremarket-service/internal/app/delivery/http/middlewares"
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/dto/requests"
	"caremarket-service/internal/pkg/dto/responses"
	"caremarket-service/internal/pkg/exceptions"
	"caremarket-service/internal/pkg/utils"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "router-secret"

type routerFixture struct {
	router       *chi.Mux
	providers    *mockProviderUsecase
	availability *mockAvailabilityUsecase
	bookings     *mockBookingUsecase
	messages     *mockMessageUsecase
	translations *mockTranslationUsecase
}

func newRouterFixture() *routerFixture {
	cfg := &config.InternalConfig{}
	cfg.App.EndpointPrefix = "api"
	cfg.App.Version = "v1"
	cfg.App.RequestBodyLimitInMegabyte = 1
	cfg.App.MessageRatePerSecond = 100
	cfg.App.MessageRateBurst = 100
	cfg.JWT.Secret = testSecret

	logger := zap.NewNop()
	fx := &routerFixture{
		router:       chi.NewRouter(),
		providers:    new(mockProviderUsecase),
		availability: new(mockAvailabilityUsecase),
		bookings:     new(mockBookingUsecase),
		messages:     new(mockMessageUsecase),
		translations: new(mockTranslationUsecase),
	}
	SetupRoutes(
		fx.router,
		cfg,
		middlewares.NewMiddlewares(logger, cfg),
		&controllers.ProviderController{Log: logger, ProviderUsecase: fx.providers, MaxPhotoBytes: constvars.MaxProfilePhotoBytes},
		&controllers.AvailabilityController{Log: logger, AvailabilityUsecase: fx.availability},
		&controllers.BookingController{Log: logger, BookingUsecase: fx.bookings},
		&controllers.WebhookController{Log: logger, BookingUsecase: fx.bookings},
		&controllers.MessageController{Log: logger, MessageUsecase: fx.messages},
		&controllers.TranslationController{Log: logger, TranslationUsecase: fx.translations},
	)
	return fx
}

func bearer(t *testing.T, sub string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, utils.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: sub, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func (fx *routerFixture) do(method, target, auth string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if auth != "" {
		req.Header.Set(constvars.HeaderAuthorization, auth)
	}
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	require.NoError(t, json.Unmarshal(envelope.Data, target))
}

func TestMessageRoutes(t *testing.T) {
	t.Run("Requires A Token", func(t *testing.T) {
		fx := newRouterFixture()

		w := fx.do(http.MethodPost, "/api/v1/messages", "", strings.NewReader(`{"sender_id":"alice","recipient_id":"bob","content":"hi"}`))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		fx.messages.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Sender Mismatch Rejected Before Validation", func(t *testing.T) {
		bodies := []string{
			`{"sender_id":"","recipient_id":"bob","content":"hi"}`,
			`{"sender_id":"mallory","content":"hi"}`,
			`{"sender_id":" alice ","recipient_id":"bob","content":"hi"}`,
			`{"recipient_id":"bob","content":"hi"}`,
		}
		for _, body := range bodies {
			fx := newRouterFixture()

			w := fx.do(http.MethodPost, "/api/v1/messages", bearer(t, "alice"), strings.NewReader(body))

			assert.Equal(t, http.StatusForbidden, w.Code, body)
			assert.Contains(t, w.Body.String(), constvars.ErrClientIdentityMismatch, body)
			fx.messages.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("Missing Recipient", func(t *testing.T) {
		fx := newRouterFixture()

		w := fx.do(http.MethodPost, "/api/v1/messages", bearer(t, "alice"), strings.NewReader(`{"sender_id":"alice","content":"hi"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		fx.messages.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Moderation Rejection", func(t *testing.T) {
		fx := newRouterFixture()
		fx.messages.On("SendMessage", mock.Anything, &models.MessageInput{
			SenderID:    "alice",
			RecipientID: "bob",
			Content:     "see http://example.com",
		}, "alice").Return(nil, exceptions.ErrModerationLinksNotAllowed())

		w := fx.do(http.MethodPost, "/api/v1/messages", bearer(t, "alice"),
			strings.NewReader(`{"sender_id":"alice","recipient_id":" bob ","content":"see http://example.com"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), constvars.ErrClientLinksNotAllowed)
	})

	t.Run("Sent", func(t *testing.T) {
		fx := newRouterFixture()
		fx.messages.On("SendMessage", mock.Anything, mock.Anything, "alice").Return(&models.Message{
			ID:          "m1",
			SenderID:    "alice",
			RecipientID: "bob",
			Content:     "Hello there",
			Timestamp:   "2024-05-01T02:30:00Z",
		}, nil)

		w := fx.do(http.MethodPost, "/api/v1/messages", bearer(t, "alice"),
			strings.NewReader(`{"sender_id":"alice","recipient_id":"bob","content":"<b>Hello</b> there"}`))

		require.Equal(t, http.StatusCreated, w.Code)
		var message responses.Message
		decodeData(t, w, &message)
		assert.Equal(t, "Hello there", message.Content)
		assert.Equal(t, "2024-05-01T02:30:00Z", message.Timestamp)
	})

	t.Run("Conversation", func(t *testing.T) {
		fx := newRouterFixture()
		fx.messages.On("ListConversation", mock.Anything, "alice", "bob", 10).Return([]models.Message{{ID: "m1"}}, nil)

		w := fx.do(http.MethodGet, "/api/v1/messages/bob?limit=10", bearer(t, "alice"), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		fx.messages.AssertExpectations(t)
	})
}

func TestAvailabilityRoutes(t *testing.T) {
	t.Run("Grouped Availability Is Public", func(t *testing.T) {
		fx := newRouterFixture()
		fx.availability.On("GetProviderAvailabilityGrouped", mock.Anything, "p1").
			Return(map[string][]string{"2024-05-01": {"09:00", "10:00"}}, nil)

		w := fx.do(http.MethodGet, "/api/v1/providers/p1/availability", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var grouped responses.GroupedAvailability
		decodeData(t, w, &grouped)
		assert.Equal(t, []string{"09:00", "10:00"}, grouped.Dates["2024-05-01"])
	})

	t.Run("Sync Of Another Provider Is Forbidden", func(t *testing.T) {
		fx := newRouterFixture()

		w := fx.do(http.MethodPost, "/api/v1/providers/p2/availability/sync", bearer(t, "p1"), nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		fx.availability.AssertNotCalled(t, "SyncAvailabilityToProfile", mock.Anything, mock.Anything)
	})

	t.Run("Own Sync", func(t *testing.T) {
		fx := newRouterFixture()
		fx.availability.On("SyncAvailabilityToProfile", mock.Anything, "p1").Return(nil)

		w := fx.do(http.MethodPost, "/api/v1/providers/p1/availability/sync", bearer(t, "p1"), nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid Slot", func(t *testing.T) {
		fx := newRouterFixture()

		w := fx.do(http.MethodPut, "/api/v1/providers/me/availability", bearer(t, "p1"),
			strings.NewReader(`{"slots":[{"date":"2024-05-01","time":"9am","is_available":true}]}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		fx.availability.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBookingRoutes(t *testing.T) {
	t.Run("Durations", func(t *testing.T) {
		fx := newRouterFixture()
		fx.bookings.On("FindAvailableDurations", mock.Anything, "p1", "2024-05-01", "9:00 AM", []float64{1, 2}).
			Return([]float64{1}, nil)

		w := fx.do(http.MethodGet, "/api/v1/providers/p1/durations?date=2024-05-01&start_time=9:00%20am&durations=1,2", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var result responses.AvailableDurations
		decodeData(t, w, &result)
		assert.Equal(t, []float64{1}, result.Durations)
	})

	t.Run("Durations Validation", func(t *testing.T) {
		fx := newRouterFixture()

		w := fx.do(http.MethodGet, "/api/v1/providers/p1/durations?date=2024-05-01&start_time=09:00&durations=1", "", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Week With Invalid Start", func(t *testing.T) {
		fx := newRouterFixture()

		w := fx.do(http.MethodGet, "/api/v1/providers/p1/week?week_start=01-05-2024", "", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Checkout", func(t *testing.T) {
		fx := newRouterFixture()
		fx.bookings.On("Checkout", mock.Anything, "client-1", &requests.Checkout{
			ProviderID: "p1",
			Date:       "2024-05-01",
			Time:       "10:00 AM",
			Duration:   1.5,
		}).Return(&responses.CheckoutSession{BookingID: "b1", SessionID: "cs_1", CheckoutURL: "https://checkout"}, nil)

		w := fx.do(http.MethodPost, "/api/v1/bookings/checkout", bearer(t, "client-1"),
			strings.NewReader(`{"provider_id":"p1","date":"2024-05-01","time":"10:00 am","duration":1.5}`))

		require.Equal(t, http.StatusCreated, w.Code)
		var session responses.CheckoutSession
		decodeData(t, w, &session)
		assert.Equal(t, "https://checkout", session.CheckoutURL)
	})

	t.Run("Checkout Conflict", func(t *testing.T) {
		fx := newRouterFixture()
		fx.bookings.On("Checkout", mock.Anything, "client-1", mock.Anything).Return(nil, exceptions.ErrSlotConflict())

		w := fx.do(http.MethodPost, "/api/v1/bookings/checkout", bearer(t, "client-1"),
			strings.NewReader(`{"provider_id":"p1","date":"2024-05-01","time":"10:00 AM","duration":1}`))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Stripe Webhook", func(t *testing.T) {
		fx := newRouterFixture()
		payload := `{"type":"checkout.session.completed"}`
		fx.bookings.On("HandlePaymentWebhook", mock.Anything, []byte(payload), "t=1,v1=abc").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/stripe", strings.NewReader(payload))
		req.Header.Set(constvars.HeaderStripeSignature, "t=1,v1=abc")
		w := httptest.NewRecorder()
		fx.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		fx.bookings.AssertExpectations(t)
	})
}

func TestProviderAndTranslationRoutes(t *testing.T) {
	t.Run("Search", func(t *testing.T) {
		fx := newRouterFixture()
		fx.providers.On("SearchProviders", mock.Anything, mock.MatchedBy(func(r *requests.SearchProviders) bool {
			return r.Specialty == "physio" && r.MinRate != nil && *r.MinRate == 5000 && r.Page == 1
		})).Return([]responses.ProviderProfile{{ID: "prof-1"}}, 1, nil)

		w := fx.do(http.MethodGet, "/api/v1/providers?specialty=Physio&min_rate=5000", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		fx.providers.AssertExpectations(t)
	})

	t.Run("Search With Bad Rate", func(t *testing.T) {
		fx := newRouterFixture()

		w := fx.do(http.MethodGet, "/api/v1/providers?min_rate=cheap", "", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Profile Not Found", func(t *testing.T) {
		fx := newRouterFixture()
		fx.providers.On("FindProviderByID", mock.Anything, "ghost").Return(nil, exceptions.ErrResourceNotFound("provider profile"))

		w := fx.do(http.MethodGet, "/api/v1/providers/ghost", "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Translations", func(t *testing.T) {
		fx := newRouterFixture()
		fx.translations.On("GetTranslations", mock.Anything, "id", []string{"book_now", "cancel"}).
			Return(map[string]string{"book_now": "Pesan", "cancel": "cancel"}, nil)

		w := fx.do(http.MethodGet, "/api/v1/translations/id?keys=book_now,cancel", "", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var result responses.Translations
		decodeData(t, w, &result)
		assert.Equal(t, "Pesan", result.Values["book_now"])
	})

	t.Run("Request ID Is Echoed", func(t *testing.T) {
		fx := newRouterFixture()
		fx.translations.On("GetTranslations", mock.Anything, "en", mock.Anything).Return(map[string]string{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/translations/en", nil)
		req.Header.Set(constvars.HeaderXRequestID, "req-123")
		w := httptest.NewRecorder()
		fx.router.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get(constvars.HeaderXRequestID))
	})
}
