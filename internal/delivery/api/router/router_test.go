package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/delivery/api/middleware"
	"tracker/internal/delivery/api/router/handler"
	"tracker/internal/delivery/api/validator"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/infra/auth"
	"tracker/internal/infra/qrcode"
	"tracker/internal/infra/realtime"
	mockUsecase "tracker/internal/mocks/usecase"
	"tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "router-test-secret"

type apiFixtures struct {
	echo       *echo.Echo
	trackingUC *mockUsecase.MockTrackingUsecase
	deviceUC   *mockUsecase.MockDeviceUsecase
	hub        *realtime.Hub
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func newAPI(t *testing.T) apiFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{TestRoutes: &config.TestRoutesConfig{Enabled: true}}
	cfg.SecretKey.Access = testSecret

	verifier, err := auth.NewJWTVerifier(cfg)
	require.NoError(t, err)

	trackingUC := mockUsecase.NewMockTrackingUsecase(t)
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	hub := realtime.NewHubWithOptions(nil, logger, time.Now)
	t.Cleanup(hub.Close)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		TrackingHandler: handler.NewTrackingHandler(handler.TrackingHandlerParams{
			TrackingUC: trackingUC,
			ShareCodes: qrcode.NewShareCodeService(cfg),
			Logger:     logger,
		}),
		DeviceHandler:   handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: deviceUC, Logger: logger}),
		WSHandler:       handler.NewWSHandler(handler.WSHandlerParams{Hub: hub, Logger: logger}),
		TestHandler:     handler.NewTestHandler(cfg),
		AuthMiddleware:  middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{Verifier: verifier}),
		Config:          cfg,
	})
	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)

	return apiFixtures{echo: e, trackingUC: trackingUC, deviceUC: deviceUC, hub: hub}
}

func tokenFor(t *testing.T, userID uuid.UUID, roles ...entity.Role) string {
	t.Helper()

	token, err := auth.SignAccessToken(testSecret, userID, roles, time.Hour)
	require.NoError(t, err)

	return token
}

func (f apiFixtures) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestHealth(t *testing.T) {
	api := newAPI(t)

	rec, _ := api.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthentication(t *testing.T) {
	api := newAPI(t)
	path := "/api/v1/deliveries/" + uuid.NewString() + "/tracking"

	t.Run("missing token", func(t *testing.T) {
		rec, env := api.do(t, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	})

	t.Run("forged token", func(t *testing.T) {
		forged, err := auth.SignAccessToken("other-secret", uuid.New(), entity.Roles{entity.RoleCustomer}, time.Hour)
		require.NoError(t, err)

		rec, _ := api.do(t, http.MethodGet, path, forged, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		customer := tokenFor(t, uuid.New(), entity.RoleCustomer)

		rec, env := api.do(t, http.MethodPost, "/api/v1/deliveries/"+uuid.NewString()+"/locations", customer, `{"latitude":1,"longitude":2}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "FORBIDDEN", env.Error.Code)
	})
}

func TestReportLocation(t *testing.T) {
	api := newAPI(t)
	courierID := uuid.New()
	deliveryID := uuid.New()
	token := tokenFor(t, courierID, entity.RoleCourier)
	path := "/api/v1/deliveries/" + deliveryID.String() + "/locations"

	t.Run("stores the ping", func(t *testing.T) {
		api.trackingUC.EXPECT().
			ReportLocation(mock.Anything, mock.MatchedBy(func(u usecase.LocationUpdate) bool {
				return u.DeliveryID == deliveryID && u.CourierID == courierID &&
					u.Latitude == 25.033 && u.Longitude == 121.5654 &&
					u.Heading != nil && *u.Heading == 90
			})).
			Return(&usecase.LocationReport{
				Ping: &entity.LocationPing{DeliveryID: deliveryID, Latitude: 25.033, Longitude: 121.5654, IsActive: true},
				ETA:  &usecase.ETA{Minutes: 7},
			}, nil).Once()

		rec, env := api.do(t, http.MethodPost, path, token, `{"latitude":25.033,"longitude":121.5654,"heading":90}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var report usecase.LocationReport
		require.NoError(t, json.Unmarshal(env.Data, &report))
		assert.Equal(t, 25.033, report.Ping.Latitude)
		assert.Equal(t, 7, report.ETA.Minutes)
	})

	t.Run("zero coordinates are accepted", func(t *testing.T) {
		api.trackingUC.EXPECT().
			ReportLocation(mock.Anything, mock.MatchedBy(func(u usecase.LocationUpdate) bool {
				return u.Latitude == 0 && u.Longitude == 0
			})).
			Return(&usecase.LocationReport{Ping: &entity.LocationPing{}}, nil).Once()

		rec, _ := api.do(t, http.MethodPost, path, token, `{"latitude":0,"longitude":0}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing longitude", func(t *testing.T) {
		rec, env := api.do(t, http.MethodPost, path, token, `{"latitude":25.0}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

		var fields []validator.FieldError
		require.NoError(t, json.Unmarshal(env.Error.Details, &fields))
		require.Len(t, fields, 1)
		assert.Equal(t, "longitude", fields[0].Field)
		assert.Equal(t, "required", fields[0].Rule)
	})

	t.Run("out of range coordinate", func(t *testing.T) {
		api.trackingUC.EXPECT().
			ReportLocation(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidCoordinate.WithDetails("latitude 91 out of range")).Once()

		rec, env := api.do(t, http.MethodPost, path, token, `{"latitude":91,"longitude":0}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_COORDINATE", env.Error.Code)
		assert.JSONEq(t, `"latitude 91 out of range"`, string(env.Error.Details))
	})

	t.Run("invalid delivery id", func(t *testing.T) {
		rec, env := api.do(t, http.MethodPost, "/api/v1/deliveries/abc/locations", token, `{"latitude":1,"longitude":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})
}

func TestAdvanceStatus(t *testing.T) {
	api := newAPI(t)
	dispatcherID := uuid.New()
	deliveryID := uuid.New()
	token := tokenFor(t, dispatcherID, entity.RoleDispatcher)
	path := "/api/v1/deliveries/" + deliveryID.String() + "/status"

	t.Run("applies the transition", func(t *testing.T) {
		api.trackingUC.EXPECT().
			AdvanceStatus(mock.Anything, mock.MatchedBy(func(change usecase.StatusChange) bool {
				return change.DeliveryID == deliveryID &&
					change.Status == entity.StatusPickedUp &&
					change.Actor.UserID == dispatcherID &&
					change.Actor.IsDispatcher() &&
					change.Metadata == `{"bag":2}`
			})).
			Return(&usecase.StatusChangeResult{
				Delivery: &entity.Delivery{ID: deliveryID, Status: entity.StatusPickedUp},
				Previous: entity.StatusAssigned,
				Changed:  true,
			}, nil).Once()

		rec, env := api.do(t, http.MethodPost, path, token, `{"status":"picked_up","metadata":{"bag":2}}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var result usecase.StatusChangeResult
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.True(t, result.Changed)
		assert.Equal(t, entity.StatusAssigned, result.Previous)
	})

	t.Run("invalid transition", func(t *testing.T) {
		api.trackingUC.EXPECT().
			AdvanceStatus(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrInvalidTransition.WithDetails("delivered -> picked_up"), "advance status")).Once()

		rec, env := api.do(t, http.MethodPost, path, token, `{"status":"picked_up"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "INVALID_TRANSITION", env.Error.Code)
		assert.JSONEq(t, `"delivered -> picked_up"`, string(env.Error.Details))
	})

	t.Run("persistence failure is retryable", func(t *testing.T) {
		api.trackingUC.EXPECT().
			AdvanceStatus(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("deadlock detected"), "update status")).Once()

		rec, env := api.do(t, http.MethodPost, path, token, `{"status":"picked_up"}`)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "PERSISTENCE_FAILURE", env.Error.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
		assert.Empty(t, env.Error.Details)
	})

	t.Run("latitude without longitude", func(t *testing.T) {
		rec, env := api.do(t, http.MethodPost, path, token, `{"status":"picked_up","latitude":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("unexpected error is hidden", func(t *testing.T) {
		api.trackingUC.EXPECT().
			AdvanceStatus(mock.Anything, mock.Anything).
			Return(nil, errors.New("pq: secret internals")).Once()

		rec, env := api.do(t, http.MethodPost, path, token, `{"status":"picked_up"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, rec.Body.String(), "secret internals")
	})
}

func TestInitializeTracking(t *testing.T) {
	api := newAPI(t)
	courierID := uuid.New()
	deliveryID := uuid.New()

	api.trackingUC.EXPECT().
		InitializeTracking(mock.Anything, deliveryID, usecase.Actor{UserID: courierID, Roles: entity.Roles{entity.RoleCourier}}).
		Return(&usecase.TrackingInitialization{Delivery: &entity.Delivery{ID: deliveryID}, Fallback: true}, nil)

	rec, env := api.do(t, http.MethodPost, "/api/v1/deliveries/"+deliveryID.String()+"/tracking", tokenFor(t, courierID, entity.RoleCourier), "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var result usecase.TrackingInitialization
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.True(t, result.Fallback)
}

func TestGetSnapshot(t *testing.T) {
	api := newAPI(t)
	customerID := uuid.New()
	deliveryID := uuid.New()

	api.trackingUC.EXPECT().
		GetSnapshot(mock.Anything, deliveryID, usecase.Actor{UserID: customerID, Roles: entity.Roles{entity.RoleCustomer}}).
		Return(nil, errors.WithStack(domainerrors.ErrDeliveryNotFound))

	rec, env := api.do(t, http.MethodGet, "/api/v1/deliveries/"+deliveryID.String()+"/tracking", tokenFor(t, customerID, entity.RoleCustomer), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DELIVERY_NOT_FOUND", env.Error.Code)
}

func TestGetShareCode(t *testing.T) {
	api := newAPI(t)
	customerID := uuid.New()
	deliveryID := uuid.New()
	otherID := uuid.New()
	token := tokenFor(t, customerID, entity.RoleCustomer)

	api.trackingUC.EXPECT().
		GetSnapshot(mock.Anything, deliveryID, mock.Anything).
		Return(&usecase.TrackingSnapshot{}, nil).Once()
	api.trackingUC.EXPECT().
		GetSnapshot(mock.Anything, otherID, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrForbidden)).Once()

	rec, _ := api.do(t, http.MethodGet, "/api/v1/deliveries/"+deliveryID.String()+"/share-code", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes()[:4])

	rec, env := api.do(t, http.MethodGet, "/api/v1/deliveries/"+otherID.String()+"/share-code", token, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
}

func TestGetLocationTrail(t *testing.T) {
	api := newAPI(t)
	customerID := uuid.New()
	deliveryID := uuid.New()
	token := tokenFor(t, customerID, entity.RoleCustomer)
	path := "/api/v1/deliveries/" + deliveryID.String() + "/trail"

	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.Point{121.5654, 25.033}))
	api.trackingUC.EXPECT().
		GetLocationTrail(mock.Anything, deliveryID, mock.Anything, 50).
		Return(fc, nil).Once()

	rec, _ := api.do(t, http.MethodGet, path+"?limit=50", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get(echo.HeaderContentType))

	decoded, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, decoded.Features, 1)
	assert.Equal(t, orb.Point{121.5654, 25.033}, decoded.Features[0].Geometry)

	rec, env := api.do(t, http.MethodGet, path+"?limit=-1", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestRecalculateRoute(t *testing.T) {
	api := newAPI(t)
	dispatcherID := uuid.New()
	deliveryID := uuid.New()
	path := "/api/v1/deliveries/" + deliveryID.String() + "/route"

	api.trackingUC.EXPECT().
		RecalculateRoute(mock.Anything, deliveryID, usecase.Actor{UserID: dispatcherID, Roles: entity.Roles{entity.RoleDispatcher}}).
		Return(&usecase.RouteRecalculation{Route: &usecase.RouteView{Route: &entity.Route{DistanceMeters: 2100}}}, nil)

	rec, env := api.do(t, http.MethodPut, path, tokenFor(t, dispatcherID, entity.RoleDispatcher), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result usecase.RouteRecalculation
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.False(t, result.Fallback)

	rec, env = api.do(t, http.MethodPut, path, tokenFor(t, uuid.New(), entity.RoleCustomer), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
}

func TestListNotificationLogs(t *testing.T) {
	api := newAPI(t)
	dispatcherID := uuid.New()
	deliveryID := uuid.New()
	path := "/api/v1/deliveries/" + deliveryID.String() + "/notifications"

	logs := []*entity.NotificationLog{{ID: uuid.New(), DeliveryID: deliveryID, Type: "status_update", Status: entity.NotificationStatusFailed}}
	api.trackingUC.EXPECT().
		ListNotificationLogs(mock.Anything, deliveryID, mock.Anything, 20).
		Return(logs, nil).Once()

	rec, env := api.do(t, http.MethodGet, path+"?limit=20", tokenFor(t, dispatcherID, entity.RoleDispatcher), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []*entity.NotificationLog
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, entity.NotificationStatusFailed, got[0].Status)

	rec, _ = api.do(t, http.MethodGet, path, tokenFor(t, uuid.New(), entity.RoleCourier), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListCourierDeliveries(t *testing.T) {
	api := newAPI(t)
	courierID := uuid.New()
	path := "/api/v1/couriers/" + courierID.String() + "/deliveries"

	deliveries := []*entity.Delivery{{ID: uuid.New(), CourierID: &courierID, Status: entity.StatusPickedUp}}
	api.trackingUC.EXPECT().
		ListCourierDeliveries(mock.Anything, courierID, usecase.Actor{UserID: courierID, Roles: entity.Roles{entity.RoleCourier}}, 5).
		Return(deliveries, nil).Once()

	rec, env := api.do(t, http.MethodGet, path+"?limit=5", tokenFor(t, courierID, entity.RoleCourier), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []*entity.Delivery
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, deliveries[0].ID, got[0].ID)

	rec, _ = api.do(t, http.MethodGet, path, tokenFor(t, uuid.New(), entity.RoleCustomer), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env = api.do(t, http.MethodGet, "/api/v1/couriers/not-a-uuid/deliveries", tokenFor(t, courierID, entity.RoleCourier), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestResolveShareCode(t *testing.T) {
	api := newAPI(t)
	customerID := uuid.New()
	deliveryID := uuid.New()
	token := tokenFor(t, customerID, entity.RoleCustomer)

	payload, err := json.Marshal(qrcode.Payload{DeliveryID: deliveryID.String(), Type: "tracking"})
	require.NoError(t, err)
	body, err := json.Marshal(handler.ResolveShareCodeRequest{Payload: string(payload)})
	require.NoError(t, err)

	api.trackingUC.EXPECT().
		GetSnapshot(mock.Anything, deliveryID, usecase.Actor{UserID: customerID, Roles: entity.Roles{entity.RoleCustomer}}).
		Return(&usecase.TrackingSnapshot{Delivery: &entity.Delivery{ID: deliveryID}}, nil).Once()

	rec, env := api.do(t, http.MethodPost, "/api/v1/share-codes/resolve", token, string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot usecase.TrackingSnapshot
	require.NoError(t, json.Unmarshal(env.Data, &snapshot))
	assert.Equal(t, deliveryID, snapshot.Delivery.ID)

	rec, env = api.do(t, http.MethodPost, "/api/v1/share-codes/resolve", token, `{"payload":"https://example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestDevices(t *testing.T) {
	api := newAPI(t)
	userID := uuid.New()
	token := tokenFor(t, userID, entity.RoleDispatcher)

	api.deviceUC.EXPECT().
		RegisterDevice(mock.Anything, userID, &usecase.DeviceInfo{FCMToken: "fcm-1", DeviceID: "browser-1", Platform: "web"}).
		Return(&entity.UserDevice{ID: uuid.New(), UserID: userID, Platform: entity.PlatformWeb, IsActive: true}, nil)

	rec, _ := api.do(t, http.MethodPost, "/api/v1/devices", token, `{"fcm_token":"fcm-1","device_id":"browser-1","platform":"web"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, env := api.do(t, http.MethodPost, "/api/v1/devices", token, `{"fcm_token":"fcm-1","device_id":"x","platform":"symbian"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	deviceID := uuid.New()
	api.deviceUC.EXPECT().DeactivateDevice(mock.Anything, userID, deviceID).Return(domainerrors.ErrDeviceNotFound)

	rec, env = api.do(t, http.MethodDelete, "/api/v1/devices/"+deviceID.String(), token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DEVICE_NOT_FOUND", env.Error.Code)

	api.deviceUC.EXPECT().UpdateFCMToken(mock.Anything, userID, deviceID, "fcm-2").Return(nil)

	rec, _ = api.do(t, http.MethodPut, "/api/v1/devices/"+deviceID.String()+"/token", token, `{"fcm_token":"fcm-2"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTestRoutes_IssueToken(t *testing.T) {
	api := newAPI(t)
	userID := uuid.New()

	rec, env := api.do(t, http.MethodPost, "/test/token", "", `{"user_id":"`+userID.String()+`","roles":["courier"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var issued struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &issued))

	rec, env = api.do(t, http.MethodGet, "/test/auth", issued.AccessToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var who struct {
		UserID   uuid.UUID       `json:"user_id"`
		UserType entity.UserType `json:"user_type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &who))
	assert.Equal(t, userID, who.UserID)
	assert.Equal(t, entity.UserTypeCourier, who.UserType)

	rec, _ = api.do(t, http.MethodPost, "/test/token", "", `{"user_id":"`+userID.String()+`","roles":["admin"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebsocket(t *testing.T) {
	api := newAPI(t)
	server := httptest.NewServer(api.echo)
	t.Cleanup(server.Close)

	userID := uuid.New()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?token=" + tokenFor(t, userID, entity.RoleStore)

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var hello struct {
		Type string                  `json:"type"`
		Data entity.ConnectedPayload `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, "connected", hello.Type)
	assert.Equal(t, userID, hello.Data.UserID)
	assert.Equal(t, entity.UserTypeStore, hello.Data.UserType)

	require.NoError(t, api.hub.Broadcast(t.Context(), []uuid.UUID{userID}, entity.TrackingMessage{
		Type: entity.MessageStatusUpdate,
		Data: entity.StatusUpdatePayload{Status: entity.StatusPickedUp},
	}))

	var update struct {
		Type string                     `json:"type"`
		Data entity.StatusUpdatePayload `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, "status_update", update.Type)
	assert.Equal(t, entity.StatusPickedUp, update.Data.Status)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return api.hub.SessionCount() == 0 }, 2*time.Second, 10*time.Millisecond)

	_, resp, err = websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/ws", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()
}
