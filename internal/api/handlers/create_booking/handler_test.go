package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/BKT-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	return rec
}

const validBody = `{
	"experienceId": 1,
	"slotId": 10,
	"customerName": "Анна Петрова",
	"customerEmail": "anna@example.com",
	"quantity": 2,
	"promoCode": "SAVE10"
}`

func TestHandle_Success(t *testing.T) {
	promo := "SAVE10"
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:             1,
		RefID:          "BKTABC12345",
		ExperienceID:   1,
		SlotID:         10,
		CustomerName:   "Анна Петрова",
		CustomerEmail:  "anna@example.com",
		Quantity:       2,
		Subtotal:       2000,
		DiscountAmount: 200,
		TaxAmount:      108,
		TotalAmount:    1908,
		PromoCode:      &promo,
		CreatedAt:      time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "BKTABC12345", resp.RefID)
	assert.Equal(t, 1908.0, resp.TotalAmount)
	assert.Equal(t, "2026-09-01T12:00:00Z", resp.CreatedAt)
	require.NotNil(t, resp.PromoCode)
	assert.Equal(t, "SAVE10", *resp.PromoCode)
}

func TestHandle_EmptyPromoCodeTreatedAsAbsent(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{RefID: "BKTX"}}

	body := `{"experienceId":1,"slotId":10,"customerName":"Анна","customerEmail":"anna@example.com","quantity":1,"promoCode":""}`
	rec := doRequest(t, uc, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Nil(t, uc.gotReq.PromoCode)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"невалидные данные", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"слот недоступен", createBooking.ErrSlotNotAvailable, http.StatusConflict},
		{"experience не найден", createBooking.ErrExperienceNotFound, http.StatusNotFound},
		{"промокод неприменим", createBooking.ErrPromoNotApplicable, http.StatusUnprocessableEntity},
		{"внутренняя ошибка", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"битый JSON", `{"experienceId":`},
		{"неизвестное поле", `{"experienceId":1,"slotId":10,"customerName":"Анна","customerEmail":"a@b.com","quantity":1,"bogus":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{}, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
