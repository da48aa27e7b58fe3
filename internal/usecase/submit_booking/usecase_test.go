package submit_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/internal/integrations/academyservice"
	"github.com/m1shk4/ASB-BookingFront/internal/integrations/identityservice"
	"github.com/m1shk4/ASB-BookingFront/pkg/ptr"
	"github.com/m1shk4/ASB-BookingFront/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (p fixedTime) Now() time.Time { return p.now }

type fakeAvailability struct {
	slots map[types.DateString]domain.AvailabilitySlot
	err   error
}

func (f *fakeAvailability) GetMonth(_ context.Context, _ int64, _ int, _ time.Month) (map[types.DateString]domain.AvailabilitySlot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.slots, nil
}

type fakeScheduleGate struct {
	info *domain.ScheduleInfo
	err  error
}

func (f *fakeScheduleGate) GetScheduleInfo(_ context.Context, _ domain.ItemType, _, _ int64) (*domain.ScheduleInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

type fakeDraftService struct {
	mu     sync.Mutex
	clears int
}

func (f *fakeDraftService) Clear(_ context.Context, _ domain.DraftKey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clears++
	return nil
}

func (f *fakeDraftService) clearCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clears
}

type fakeAcademyClient struct {
	mu      sync.Mutex
	calls   int
	lastReq academyservice.InitiateBookingRequest
	resp    *academyservice.InitiateBookingResponse
	err     error
	block   chan struct{} // если задан, вызов ждёт закрытия канала
}

func (f *fakeAcademyClient) InitiateBooking(_ context.Context, req academyservice.InitiateBookingRequest) (*academyservice.InitiateBookingResponse, error) {
	f.mu.Lock()
	f.calls++
	f.lastReq = req
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeIdentityClient struct {
	profile *identityservice.Profile
}

func (f *fakeIdentityClient) GetProfileWithGracefulDegradation(_ context.Context, _ string) *identityservice.Profile {
	return f.profile
}

func activeScheduleInfo() *domain.ScheduleInfo {
	return &domain.ScheduleInfo{
		ScheduleID: 3,
		Window: domain.ScheduleWindow{
			StartDate: "2026-06-01",
			EndDate:   "2026-08-31",
			Active:    true,
		},
		BasePrice: 50,
	}
}

func successResponse(token string) *academyservice.InitiateBookingResponse {
	resp := &academyservice.InitiateBookingResponse{Success: true}
	resp.Data.BookingToken = token
	return resp
}

func validCourseRequest() *Request {
	return &Request{
		ClientID:   "client-1",
		ItemType:   domain.ItemTypeCourse,
		ItemID:     7,
		ScheduleID: 3,
		Contact:    domain.Contact{Name: "Анна", Email: "anna@example.com", Phone: "111"},
		Participants: []domain.Participant{
			{ID: 1, FirstName: "Анна", DailyHours: 1},
		},
		SelectedDates: []types.DateString{"2026-07-01", "2026-07-02"},
	}
}

func newTestUseCase(gate *fakeScheduleGate, academy *fakeAcademyClient, drafts *fakeDraftService, avail *fakeAvailability) *UseCase {
	if avail == nil {
		avail = &fakeAvailability{}
	}
	uc := NewUseCase(avail, gate, drafts, academy, &fakeIdentityClient{}, nopLogger{})
	day, _ := types.DateString("2026-07-10").Time()
	uc.timeProvider = fixedTime{now: day}
	return uc
}

func TestExecuteAggregatesPreconditionViolations(t *testing.T) {
	academy := &fakeAcademyClient{}
	uc := newTestUseCase(&fakeScheduleGate{info: activeScheduleInfo()}, academy, &fakeDraftService{}, nil)

	req := validCourseRequest()
	req.Contact = domain.Contact{}
	req.Participants[0].FirstName = ""
	req.SelectedDates = nil

	_, err := uc.Execute(context.Background(), req)

	var precondition *PreconditionError
	require.ErrorAs(t, err, &precondition)
	assert.Equal(t,
		"укажите контактное имя; укажите email; укажите телефон; укажите имя первого участника; выберите хотя бы одну дату",
		precondition.Message)
	assert.Equal(t, 0, academy.calls, "preconditions must be checked before any network call")
}

func TestExecuteSuccessClearsDraft(t *testing.T) {
	academy := &fakeAcademyClient{resp: successResponse("BK-100")}
	drafts := &fakeDraftService{}
	avail := &fakeAvailability{slots: map[types.DateString]domain.AvailabilitySlot{
		"2026-07-01": {Date: "2026-07-01", Price: 50},
		"2026-07-02": {Date: "2026-07-02", Price: 70},
	}}
	uc := newTestUseCase(&fakeScheduleGate{info: activeScheduleInfo()}, academy, drafts, avail)

	resp, err := uc.Execute(context.Background(), validCourseRequest())
	require.NoError(t, err)

	assert.Equal(t, "BK-100", resp.BookingReference)
	assert.Equal(t, 120.0, resp.Quote.Subtotal)
	assert.Equal(t, 1, drafts.clearCount())
}

func TestExecuteBackendRejectionPreservesDraft(t *testing.T) {
	academy := &fakeAcademyClient{err: &academyservice.RejectionError{Message: "мест не осталось"}}
	drafts := &fakeDraftService{}
	uc := newTestUseCase(&fakeScheduleGate{info: activeScheduleInfo()}, academy, drafts, nil)

	_, err := uc.Execute(context.Background(), validCourseRequest())

	var rejection *BackendRejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "мест не осталось", rejection.Message, "backend reason must pass through verbatim")
	assert.Equal(t, 0, drafts.clearCount(), "failed submission must not destroy the draft")
}

func TestExecuteGateViolationBlocksSubmission(t *testing.T) {
	academy := &fakeAcademyClient{}
	info := activeScheduleInfo()
	info.Rule = domain.BookingRule{MinParticipants: ptr.Ptr(2)}
	uc := newTestUseCase(&fakeScheduleGate{info: info}, academy, &fakeDraftService{}, nil)

	_, err := uc.Execute(context.Background(), validCourseRequest())

	var violation *GateViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "минимальное количество участников — 2", violation.Message)
	assert.Equal(t, 0, academy.calls)
}

func TestExecuteDuplicateSubmissionBlocked(t *testing.T) {
	block := make(chan struct{})
	academy := &fakeAcademyClient{resp: successResponse("BK-100"), block: block}
	drafts := &fakeDraftService{}
	uc := newTestUseCase(&fakeScheduleGate{info: activeScheduleInfo()}, academy, drafts, nil)

	firstDone := make(chan error, 1)
	go func() {
		_, err := uc.Execute(context.Background(), validCourseRequest())
		firstDone <- err
	}()

	// Дожидаемся, пока первая отправка дойдёт до сетевого вызова
	require.Eventually(t, func() bool {
		academy.mu.Lock()
		defer academy.mu.Unlock()
		return academy.calls == 1
	}, time.Second, 5*time.Millisecond)

	_, err := uc.Execute(context.Background(), validCourseRequest())
	require.ErrorIs(t, err, ErrSubmissionInFlight)

	close(block)
	require.NoError(t, <-firstDone)

	// После завершения первой отправки ключ освобождён
	academy.block = nil
	_, err = uc.Execute(context.Background(), validCourseRequest())
	require.NoError(t, err)
}

func TestExecuteAvailabilityFailureFallsBackToBasePrice(t *testing.T) {
	academy := &fakeAcademyClient{resp: successResponse("BK-100")}
	avail := &fakeAvailability{err: errors.New("upstream down")}
	uc := newTestUseCase(&fakeScheduleGate{info: activeScheduleInfo()}, academy, &fakeDraftService{}, avail)

	resp, err := uc.Execute(context.Background(), validCourseRequest())
	require.NoError(t, err)

	// 2 даты по базовой цене 50
	assert.Equal(t, 100.0, resp.Quote.Subtotal)
}

func TestExecutePackageUsesFlatPrice(t *testing.T) {
	academy := &fakeAcademyClient{resp: successResponse("BK-200")}
	info := activeScheduleInfo()
	info.BasePrice = 200
	uc := newTestUseCase(&fakeScheduleGate{info: info}, academy, &fakeDraftService{}, nil)

	req := validCourseRequest()
	req.ItemType = domain.ItemTypePackage
	req.SelectedDates = nil
	req.Participants = append(req.Participants, domain.Participant{ID: 2, FirstName: "Пётр", DailyHours: 3})

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Пакет: плоская цена × количество участников, dailyHours не участвует
	assert.Equal(t, 400.0, resp.Quote.Subtotal)
	assert.Equal(t, "package", academy.lastReq.ItemType)
	assert.Empty(t, academy.lastReq.BookedDates)
}

func TestExecuteSendsClientQuoteToBackend(t *testing.T) {
	academy := &fakeAcademyClient{resp: successResponse("BK-100")}
	avail := &fakeAvailability{slots: map[types.DateString]domain.AvailabilitySlot{
		"2026-07-01": {Date: "2026-07-01", Price: 50},
		"2026-07-02": {Date: "2026-07-02", Price: 70},
	}}
	uc := newTestUseCase(&fakeScheduleGate{info: activeScheduleInfo()}, academy, &fakeDraftService{}, avail)

	req := validCourseRequest()
	req.CouponCode = "SUMMER10"
	req.Discount = &domain.Discount{Type: domain.DiscountPercentage, Amount: 10}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 120.0, academy.lastReq.OriginalAmount)
	assert.Equal(t, 12.0, academy.lastReq.DiscountAmount)
	assert.Equal(t, 108.0, academy.lastReq.FinalAmount)
	assert.Equal(t, "SUMMER10", academy.lastReq.CouponCode)
}
