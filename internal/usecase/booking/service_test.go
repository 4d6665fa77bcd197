package booking

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"rentease-backend/internal/domain/actor"
	domain "rentease-backend/internal/domain/booking"
	"rentease-backend/internal/domain/fault"
	"rentease-backend/internal/domain/party"
	"rentease-backend/internal/domain/payment"
	"rentease-backend/internal/domain/property"
	"rentease-backend/internal/domain/uow"
	"rentease-backend/internal/testutil/bookingmock"
	"rentease-backend/internal/testutil/partymock"
	"rentease-backend/internal/testutil/paymentmock"
	"rentease-backend/internal/testutil/propertymock"
	"rentease-backend/internal/testutil/sendermock"
	"rentease-backend/internal/testutil/uowmock"
	"rentease-backend/internal/usecase/leasedraft"
	"rentease-backend/pkg/signature"
)

const testSecret = "test-gateway-secret"

var (
	testTenant   = &party.Tenant{TenantID: "tenant-1", Username: "asha", Email: "asha@example.com"}
	testLandlord = &party.Landlord{LandlordID: "landlord-1", Username: "ravi", Email: "ravi@example.com"}
)

type fixture struct {
	svc      *Service
	bookings *bookingmock.Repo
	props    *propertymock.Repo
	payments *paymentmock.Repo
	sender   *sendermock.Sender
}

func newFixture(t *testing.T, propStatus property.Status) *fixture {
	t.Helper()
	prop := &property.Property{
		PropertyID: "prop-1",
		LandlordID: "landlord-1",
		Title:      "2BHK",
		Location:   "Pune",
		Price:      15000,
		Status:     propStatus,
	}
	props := &propertymock.Repo{
		GetByPropertyIDFn: func(ctx context.Context, id string) (*property.Property, error) {
			if id == prop.PropertyID {
				return prop, nil
			}
			return nil, property.ErrNotFound
		},
	}
	parties := partymock.Seeded(testTenant, testLandlord)
	bookings := &bookingmock.Repo{}
	payments := &paymentmock.Repo{}
	sender := &sendermock.Sender{}
	u := uowmock.New(uow.Repos{
		Properties: props,
		Parties:    parties,
		Bookings:   bookings,
		Payments:   payments,
	})
	svc := NewService(
		u, bookings, props, parties,
		leasedraft.NewEngine(props, parties),
		signature.NewVerifier(testSecret),
		sender,
	)
	return &fixture{svc: svc, bookings: bookings, props: props, payments: payments, sender: sender}
}

func validInput() BookInput {
	start, _ := time.Parse("2006-01-02", "2026-10-01")
	end, _ := time.Parse("2006-01-02", "2027-10-01")
	return BookInput{
		PropertyID:      "prop-1",
		StartDate:       start,
		EndDate:         end,
		MonthlyRent:     15000,
		SecurityDeposit: 30000,
	}
}

func TestBook(t *testing.T) {
	f := newFixture(t, property.StatusAvailable)
	var created *domain.Booking
	f.bookings.CreateFn = func(ctx context.Context, b *domain.Booking) error {
		created = b
		return nil
	}

	b, err := f.svc.Book(context.Background(), actor.Tenant("tenant-1"), validInput())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if created == nil {
		t.Fatal("booking not persisted")
	}
	if b.Status != domain.StatusPending || b.PaymentStatus != domain.PaymentPending {
		t.Errorf("new booking = %s/%s, want pending/pending", b.Status, b.PaymentStatus)
	}
	if b.LandlordID != "landlord-1" {
		t.Errorf("landlord id = %q, want resolved from property", b.LandlordID)
	}

	var draft leasedraft.Draft
	if err := json.Unmarshal([]byte(b.LeaseTerms), &draft); err != nil {
		t.Fatalf("lease terms are not a valid draft: %v", err)
	}
	if draft.LeaseTerms.Duration != "12 months" {
		t.Errorf("draft duration = %q", draft.LeaseTerms.Duration)
	}
	if len(f.sender.Sent()) != 1 {
		t.Errorf("landlord notifications = %d, want 1", len(f.sender.Sent()))
	}
}

func TestBook_FieldValidation(t *testing.T) {
	f := newFixture(t, property.StatusAvailable)
	tenant := actor.Tenant("tenant-1")

	mutate := []struct {
		name  string
		field string
		fn    func(*BookInput)
	}{
		{"missing property", "property_id", func(in *BookInput) { in.PropertyID = "" }},
		{"missing start", "start_date", func(in *BookInput) { in.StartDate = time.Time{} }},
		{"missing end", "end_date", func(in *BookInput) { in.EndDate = time.Time{} }},
		{"end before start", "end_date", func(in *BookInput) { in.EndDate = in.StartDate.AddDate(0, -1, 0) }},
		{"zero rent", "monthly_rent", func(in *BookInput) { in.MonthlyRent = 0 }},
		{"zero deposit", "security_deposit", func(in *BookInput) { in.SecurityDeposit = 0 }},
		{"negative deposit", "security_deposit", func(in *BookInput) { in.SecurityDeposit = -1 }},
	}
	for _, tc := range mutate {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.fn(&in)
			_, err := f.svc.Book(context.Background(), tenant, in)
			var ve *fault.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("want validation fault, got %v", err)
			}
			if ve.Field != tc.field {
				t.Errorf("field = %q, want %q", ve.Field, tc.field)
			}
		})
	}
}

func TestBook_MixedCaseStoredStatus(t *testing.T) {
	f := newFixture(t, property.Status("Available"))
	f.bookings.CreateFn = func(ctx context.Context, b *domain.Booking) error { return nil }
	if _, err := f.svc.Book(context.Background(), actor.Tenant("tenant-1"), validInput()); err != nil {
		t.Fatalf("Book with mixed-case stored status: %v", err)
	}
}

func TestBook_PropertyNotAvailable(t *testing.T) {
	f := newFixture(t, property.StatusBooked)
	_, err := f.svc.Book(context.Background(), actor.Tenant("tenant-1"), validInput())
	if !fault.IsStateConflict(err) {
		t.Fatalf("want state conflict, got %v", err)
	}
}

func pendingBooking() *domain.Booking {
	start, _ := time.Parse("2006-01-02", "2026-10-01")
	end, _ := time.Parse("2006-01-02", "2027-10-01")
	return &domain.Booking{
		BookingID:     "booking-1",
		PropertyID:    "prop-1",
		TenantID:      "tenant-1",
		LandlordID:    "landlord-1",
		StartDate:     start,
		EndDate:       end,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentPending,
	}
}

func wireBooking(f *fixture, b *domain.Booking) {
	f.bookings.GetByBookingIDForUpdateFn = func(ctx context.Context, id string) (*domain.Booking, error) {
		if b != nil && b.BookingID == id {
			return b, nil
		}
		return nil, domain.ErrNotFound
	}
	f.bookings.SaveFn = func(ctx context.Context, sb *domain.Booking) error { return nil }
}

func TestVerifyPaymentAndActivate(t *testing.T) {
	f := newFixture(t, property.StatusAvailable)
	b := pendingBooking()
	wireBooking(f, b)

	var casFrom, casTo property.Status
	f.props.UpdateStatusIfFn = func(ctx context.Context, id string, from, to property.Status) error {
		casFrom, casTo = from, to
		return nil
	}
	markCalled := false
	f.payments.MarkCompletedByOrderIDFn = func(ctx context.Context, orderID, gatewayPaymentID, sig string, at time.Time) (*payment.Payment, error) {
		markCalled = true
		return &payment.Payment{OrderID: orderID}, nil
	}

	sig := signature.Sign(testSecret, "order-9", "pay-9")
	got, err := f.svc.VerifyPaymentAndActivate(context.Background(), actor.Tenant("tenant-1"), "booking-1", "order-9", "pay-9", sig)
	if err != nil {
		t.Fatalf("VerifyPaymentAndActivate: %v", err)
	}
	if got.Status != domain.StatusBooked || got.PaymentStatus != domain.PaymentCompleted {
		t.Errorf("booking = %s/%s, want booked/completed", got.Status, got.PaymentStatus)
	}
	if got.PaidAt == nil {
		t.Error("paid at not set")
	}
	if casFrom != property.StatusAvailable || casTo != property.StatusBooked {
		t.Errorf("property CAS = %s -> %s, want available -> booked", casFrom, casTo)
	}
	if !markCalled {
		t.Error("payment row not completed")
	}
	if len(f.sender.Sent()) != 2 {
		t.Errorf("notifications = %d, want landlord and tenant", len(f.sender.Sent()))
	}
}

func TestVerifyPayment_BadSignature(t *testing.T) {
	f := newFixture(t, property.StatusAvailable)
	b := pendingBooking()
	wireBooking(f, b)
	saved := false
	f.bookings.SaveFn = func(ctx context.Context, sb *domain.Booking) error {
		saved = true
		return nil
	}

	_, err := f.svc.VerifyPaymentAndActivate(context.Background(), actor.Tenant("tenant-1"), "booking-1", "order-9", "pay-9", strings.Repeat("ab", 32))
	if err != fault.ErrSignatureMismatch {
		t.Fatalf("want signature mismatch, got %v", err)
	}
	if saved {
		t.Error("booking was written despite bad signature")
	}
	if b.Status != domain.StatusPending {
		t.Errorf("booking status = %s, want untouched pending", b.Status)
	}
}

func TestVerifyPayment_Replay(t *testing.T) {
	f := newFixture(t, property.StatusAvailable)
	b := pendingBooking()
	b.Status = domain.StatusBooked
	b.PaymentStatus = domain.PaymentCompleted
	b.OrderID = "order-1"
	b.PaymentID = "pay-1"
	wireBooking(f, b)
	casCalled := false
	f.props.UpdateStatusIfFn = func(ctx context.Context, id string, from, to property.Status) error {
		casCalled = true
		return nil
	}

	sig := signature.Sign(testSecret, "order-2", "pay-2")
	got, err := f.svc.VerifyPaymentAndActivate(context.Background(), actor.Tenant("tenant-1"), "booking-1", "order-2", "pay-2", sig)
	if err != nil {
		t.Fatalf("replay should be idempotent, got %v", err)
	}
	if got.OrderID != "order-1" || got.PaymentID != "pay-1" {
		t.Errorf("replay overwrote the first confirmation: %s/%s", got.OrderID, got.PaymentID)
	}
	if casCalled {
		t.Error("replay touched the property row")
	}
}

func TestVerifyPayment_CancelledBooking(t *testing.T) {
	f := newFixture(t, property.StatusAvailable)
	b := pendingBooking()
	b.Status = domain.StatusCancelled
	wireBooking(f, b)

	sig := signature.Sign(testSecret, "order-9", "pay-9")
	_, err := f.svc.VerifyPaymentAndActivate(context.Background(), actor.Tenant("tenant-1"), "booking-1", "order-9", "pay-9", sig)
	if !fault.IsStateConflict(err) {
		t.Fatalf("want state conflict, got %v", err)
	}
}

func TestVerifyPayment_PropertyTaken(t *testing.T) {
	f := newFixture(t, property.StatusAvailable)
	b := pendingBooking()
	wireBooking(f, b)
	f.props.UpdateStatusIfFn = func(ctx context.Context, id string, from, to property.Status) error {
		return property.ErrStatusConflict
	}

	sig := signature.Sign(testSecret, "order-9", "pay-9")
	_, err := f.svc.VerifyPaymentAndActivate(context.Background(), actor.Tenant("tenant-1"), "booking-1", "order-9", "pay-9", sig)
	if !fault.IsStateConflict(err) {
		t.Fatalf("want state conflict when CAS loses, got %v", err)
	}
}

func TestCancel(t *testing.T) {
	f := newFixture(t, property.StatusAvailable)
	b := pendingBooking()
	wireBooking(f, b)

	got, err := f.svc.Cancel(context.Background(), actor.Tenant("tenant-1"), "booking-1", "found another place")
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if got.Status != domain.StatusCancelled || got.CancellationReason != "found another place" {
		t.Errorf("cancel result = %s / %q", got.Status, got.CancellationReason)
	}
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	f := newFixture(t, property.StatusAvailable)
	b := pendingBooking()
	b.Status = domain.StatusCancelled
	wireBooking(f, b)

	if _, err := f.svc.Cancel(context.Background(), actor.Tenant("tenant-1"), "booking-1", ""); !fault.IsStateConflict(err) {
		t.Fatalf("want state conflict, got %v", err)
	}
}

func TestCancel_ForeignTenant(t *testing.T) {
	f := newFixture(t, property.StatusAvailable)
	b := pendingBooking()
	wireBooking(f, b)

	if _, err := f.svc.Cancel(context.Background(), actor.Tenant("intruder"), "booking-1", ""); !fault.IsNotFound(err) {
		t.Fatalf("want not-found fault, got %v", err)
	}
}

func TestUpdateStatus_AdminForcesOccupied(t *testing.T) {
	f := newFixture(t, property.StatusAvailable)
	b := pendingBooking()
	wireBooking(f, b)
	var forced property.Status
	f.props.UpdateStatusFn = func(ctx context.Context, id string, to property.Status) error {
		forced = to
		return nil
	}

	got, err := f.svc.UpdateStatus(context.Background(), actor.Admin("admin-1"), "booking-1", "Active")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if got.Status != domain.StatusBooked {
		t.Errorf("legacy 'Active' parsed to %s, want booked", got.Status)
	}
	if forced != property.StatusOccupied {
		t.Errorf("property forced to %s, want occupied", forced)
	}
}

func TestUpdateStatus_NonAdmin(t *testing.T) {
	f := newFixture(t, property.StatusAvailable)
	if _, err := f.svc.UpdateStatus(context.Background(), actor.Landlord("landlord-1"), "booking-1", "booked"); !fault.IsValidation(err) {
		t.Fatalf("want validation fault, got %v", err)
	}
}
