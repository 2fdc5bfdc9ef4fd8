package analytics

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/grovemarket/marketplace-manager/internal/analytics"
	"github.com/grovemarket/marketplace-manager/internal/auth"
	"github.com/grovemarket/marketplace-manager/internal/dependency/mocks"
	"github.com/grovemarket/marketplace-manager/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *mocks.Orders, *mocks.Products) {
	ordersMock := mocks.NewOrders(t)
	productsMock := mocks.NewProducts(t)

	repo := mocks.NewRepository(t)
	repo.On("Orders").Return(ordersMock).Maybe()
	repo.On("Products").Return(productsMock).Maybe()

	return New(analytics.New(repo)), ordersMock, productsMock
}

func orderWithItems(id int, userID int, items string) entity.Order {
	return entity.Order{
		ID:             id,
		UUID:           fmt.Sprintf("uuid-%d", id),
		UserID:         userID,
		OrderedItems:   json.RawMessage(items),
		OrderingStatus: "Completed",
	}
}

func TestGetAdminAnalyticsTotalRevenue(t *testing.T) {
	srv, ordersMock, productsMock := newTestServer(t)

	ordersMock.On("GetOrdersInRange", mock.Anything, mock.Anything).
		Return([]entity.Order{
			orderWithItems(1, 10, `[{"productId":"p1","quantity":2}]`),
		}, nil)
	productsMock.On("GetProductsByIds", mock.Anything, []string{"p1"}).
		Return([]entity.Product{
			{ID: "p1", Name: "mug", Price: decimal.NewFromInt(15)},
		}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/admin/analytics?type=totalRevenue&startMonthYear=2024-01&endMonthYear=2024-03", nil)
	rec := httptest.NewRecorder()

	srv.GetAdminAnalytics(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"totalRevenue":30}}`, rec.Body.String())
}

func TestGetAdminAnalyticsUnknownMetric(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/analytics?type=nonsense", nil)
	rec := httptest.NewRecorder()

	srv.GetAdminAnalytics(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "nonsense")
}

func TestGetAdminAnalyticsBadDate(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet,
		"/api/admin/analytics?type=totalRevenue&startMonthYear=March-2024", nil)
	rec := httptest.NewRecorder()

	srv.GetAdminAnalytics(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAdminAnalyticsMissingType(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/analytics", nil)
	rec := httptest.NewRecorder()

	srv.GetAdminAnalytics(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAdminAnalyticsStoreError(t *testing.T) {
	srv, ordersMock, _ := newTestServer(t)

	ordersMock.On("GetOrdersInRange", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/analytics?type=totalRevenue", nil)
	rec := httptest.NewRecorder()

	srv.GetAdminAnalytics(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// store details must not leak to the client
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestGetSellerAnalyticsScopesToSeller(t *testing.T) {
	srv, ordersMock, productsMock := newTestServer(t)

	ordersMock.On("GetOrdersInRange", mock.Anything, mock.Anything).
		Return([]entity.Order{
			orderWithItems(1, 10, `[{"productId":"p1","quantity":1},{"productId":"p2","quantity":1}]`),
		}, nil)
	productsMock.On("GetProductsByIds", mock.Anything, []string{"p1", "p2"}).
		Return([]entity.Product{
			{ID: "p1", Name: "mug", Price: decimal.NewFromInt(15), SellerID: sellerRef(7)},
			{ID: "p2", Name: "hat", Price: decimal.NewFromInt(100), SellerID: sellerRef(8)},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/seller/analytics?type=totalRevenue", nil)
	req = req.WithContext(auth.WithSellerID(req.Context(), 7))
	rec := httptest.NewRecorder()

	srv.GetSellerAnalytics(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"totalRevenue":15}}`, rec.Body.String())
}

func TestGetSellerAnalyticsSellerIDParam(t *testing.T) {
	srv, ordersMock, _ := newTestServer(t)

	ordersMock.On("GetOrdersInRange", mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	tests := []struct {
		name     string
		sellerID string
		want     int
	}{
		{name: "matching param", sellerID: "7", want: http.StatusOK},
		{name: "mismatched param", sellerID: "8", want: http.StatusUnauthorized},
		{name: "non numeric param", sellerID: "seven", want: http.StatusBadRequest},
		{name: "non positive param", sellerID: "0", want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet,
				"/api/seller/analytics?type=totalRevenue&sellerId="+tt.sellerID, nil)
			req = req.WithContext(auth.WithSellerID(req.Context(), 7))
			rec := httptest.NewRecorder()

			srv.GetSellerAnalytics(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestGetSellerAnalyticsNoIdentity(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/seller/analytics?type=totalRevenue", nil)
	rec := httptest.NewRecorder()

	srv.GetSellerAnalytics(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func sellerRef(id int32) sql.NullInt32 {
	return sql.NullInt32{Int32: id, Valid: true}
}
