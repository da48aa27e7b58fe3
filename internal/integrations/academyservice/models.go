package academyservice

// AvailabilitySlot модель слота доступности из AcademyService
type AvailabilitySlot struct {
	Date           string  `json:"date"` // YYYY-MM-DD
	AvailableSlots int     `json:"availableSlots"`
	Price          float64 `json:"price"`
	IsBookingOpen  bool    `json:"isBookingOpen"`
}

// ScheduleInfo модель расписания из AcademyService
type ScheduleInfo struct {
	ScheduleID      int64   `json:"scheduleId"`
	StartDate       string  `json:"startDate"` // YYYY-MM-DD
	EndDate         string  `json:"endDate"`   // YYYY-MM-DD
	Active          bool    `json:"active"`
	MinParticipants *int    `json:"minParticipants,omitempty"`
	MaxParticipants *int    `json:"maxParticipants,omitempty"`
	BasePrice       float64 `json:"basePrice"`
}

// CouponValidationRequest запрос на валидацию купона
type CouponValidationRequest struct {
	CouponCode string `json:"couponCode"`
	ItemType   string `json:"itemType"` // course | package
	ItemID     int64  `json:"itemId"`
}

// CouponValidationResponse ответ валидации купона
type CouponValidationResponse struct {
	Valid         bool    `json:"valid"`
	Message       string  `json:"message"`
	DiscountType  string  `json:"discountType,omitempty"`  // PERCENTAGE | FIXED_AMOUNT
	DiscountValue float64 `json:"discountValue,omitempty"`
}

// BookingParticipant участник в запросе на создание бронирования
type BookingParticipant struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	Gender       string `json:"gender,omitempty"`
	SkillLevel   string `json:"skillLevel,omitempty"`
	MedicalNotes string `json:"medicalNotes,omitempty"`
	DailyHours   int    `json:"dailyHours"`
}

// InitiateBookingRequest запрос на создание бронирования
type InitiateBookingRequest struct {
	UserID         *int64               `json:"userId,omitempty"`
	GuestName      string               `json:"guestName"`
	GuestEmail     string               `json:"guestEmail"`
	GuestPhone     string               `json:"guestPhone"`
	ItemType       string               `json:"itemType"`
	ItemID         int64                `json:"itemId"`
	ScheduleID     int64                `json:"scheduleId"`
	Participants   []BookingParticipant `json:"participants"`
	BookedDates    []string             `json:"bookedDates,omitempty"`
	CouponCode     string               `json:"couponCode,omitempty"`
	OriginalAmount float64              `json:"originalAmount"`
	DiscountAmount float64              `json:"discountAmount"`
	FinalAmount    float64              `json:"finalAmount"`
}

// InitiateBookingResponse ответ на создание бронирования
type InitiateBookingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    struct {
		BookingToken string `json:"bookingToken"`
	} `json:"data"`
}

// ErrorResponse модель ошибки от AcademyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
