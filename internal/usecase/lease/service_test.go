package lease

import (
	"context"
	"testing"
	"time"

	"rentease-backend/internal/domain/actor"
	"rentease-backend/internal/domain/fault"
	domain "rentease-backend/internal/domain/lease"
	"rentease-backend/internal/domain/party"
	"rentease-backend/internal/domain/uow"
	"rentease-backend/internal/testutil/leasemock"
	"rentease-backend/internal/testutil/partymock"
	"rentease-backend/internal/testutil/sendermock"
	"rentease-backend/internal/testutil/uowmock"
)

var (
	testTenant   = &party.Tenant{TenantID: "tenant-1", Username: "asha", Email: "asha@example.com"}
	testLandlord = &party.Landlord{LandlordID: "landlord-1", Username: "ravi", Email: "ravi@example.com"}
)

type fixture struct {
	svc    *Service
	leases *leasemock.Repo
	sender *sendermock.Sender
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	leases := &leasemock.Repo{}
	sender := &sendermock.Sender{}
	u := uowmock.New(uow.Repos{Leases: leases})
	svc := NewService(u, leases, partymock.Seeded(testTenant, testLandlord), sender)
	return &fixture{svc: svc, leases: leases, sender: sender}
}

func pendingLease() *domain.Lease {
	start, _ := time.Parse("2006-01-02", "2026-10-01")
	end, _ := time.Parse("2006-01-02", "2027-10-01")
	terms := domain.Terms{RentAmount: 15000, SecurityDeposit: 30000}
	terms.ApplyDefaults()
	return &domain.Lease{
		LeaseID:         "lease-1",
		PropertyID:      "prop-1",
		LandlordID:      "landlord-1",
		TenantID:        "tenant-1",
		StartDate:       start,
		EndDate:         end,
		RentAmount:      15000,
		SecurityDeposit: 30000,
		Terms:           terms,
		Status:          domain.StatusPending,
	}
}

func wireLease(f *fixture, l *domain.Lease) {
	f.leases.GetByLeaseIDFn = func(ctx context.Context, id string) (*domain.Lease, error) {
		if l != nil && l.LeaseID == id {
			return l, nil
		}
		return nil, domain.ErrNotFound
	}
	f.leases.GetByLeaseIDForUpdateFn = f.leases.GetByLeaseIDFn
	f.leases.SaveFn = func(ctx context.Context, sl *domain.Lease) error { return nil }
}

func TestSign_FirstSignatureKeepsPending(t *testing.T) {
	f := newFixture(t)
	l := pendingLease()
	wireLease(f, l)

	got, err := f.svc.Sign(context.Background(), actor.Tenant("tenant-1"), "lease-1", "sig-tenant")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if got.Status != domain.StatusPending {
		t.Errorf("status = %s, want still pending with one signature", got.Status)
	}
	if got.TenantSignature == nil || *got.TenantSignature != "sig-tenant" {
		t.Errorf("tenant signature = %v", got.TenantSignature)
	}
	if got.SignedDate != nil {
		t.Error("signed date set before both signatures present")
	}
	sent := f.sender.Sent()
	if len(sent) != 1 || sent[0].To != testLandlord.Email {
		t.Errorf("counterparty mail = %+v", sent)
	}
}

func TestSign_SecondSignatureActivates(t *testing.T) {
	f := newFixture(t)
	l := pendingLease()
	tenantSig := "sig-tenant"
	l.TenantSignature = &tenantSig
	wireLease(f, l)

	got, err := f.svc.Sign(context.Background(), actor.Landlord("landlord-1"), "lease-1", "sig-landlord")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if got.Status != domain.StatusActive {
		t.Errorf("status = %s, want active with both signatures", got.Status)
	}
	if got.SignedDate == nil {
		t.Error("signed date not stamped on activation")
	}
	if len(f.sender.Sent()) != 2 {
		t.Errorf("activation mails = %d, want both parties", len(f.sender.Sent()))
	}
}

func TestSign_DoubleSignSameParty(t *testing.T) {
	f := newFixture(t)
	l := pendingLease()
	sig := "sig-tenant"
	l.TenantSignature = &sig
	wireLease(f, l)

	_, err := f.svc.Sign(context.Background(), actor.Tenant("tenant-1"), "lease-1", "sig-again")
	if !fault.IsStateConflict(err) {
		t.Fatalf("want state conflict, got %v", err)
	}
}

func TestSign_TerminatedLease(t *testing.T) {
	f := newFixture(t)
	l := pendingLease()
	l.Status = domain.StatusTerminated
	wireLease(f, l)

	if _, err := f.svc.Sign(context.Background(), actor.Tenant("tenant-1"), "lease-1", "x"); !fault.IsStateConflict(err) {
		t.Fatalf("want state conflict, got %v", err)
	}
}

func TestSign_ForeignParty(t *testing.T) {
	f := newFixture(t)
	l := pendingLease()
	wireLease(f, l)

	if _, err := f.svc.Sign(context.Background(), actor.Tenant("intruder"), "lease-1", "x"); !fault.IsNotFound(err) {
		t.Fatalf("want not-found fault, got %v", err)
	}
}

func TestRenew(t *testing.T) {
	f := newFixture(t)
	orig := pendingLease()
	orig.Status = domain.StatusActive
	sig := "s"
	orig.TenantSignature, orig.LandlordSignature = &sig, &sig
	wireLease(f, orig)
	var created *domain.Lease
	f.leases.CreateFn = func(ctx context.Context, l *domain.Lease) error {
		created = l
		return nil
	}

	start := orig.EndDate
	end := orig.EndDate.AddDate(1, 0, 0)
	got, err := f.svc.Renew(context.Background(), actor.Tenant("tenant-1"), "lease-1", RenewInput{
		StartDate:  start,
		EndDate:    end,
		RentAmount: 16000,
	})
	if err != nil {
		t.Fatalf("Renew: %v", err)
	}
	if created == nil {
		t.Fatal("renewal not persisted")
	}
	if got.Status != domain.StatusPending {
		t.Errorf("renewal status = %s, want pending", got.Status)
	}
	if got.TenantSignature != nil || got.LandlordSignature != nil {
		t.Error("renewal must carry no signatures")
	}
	if got.RenewedFrom != "lease-1" {
		t.Errorf("renewed from = %q", got.RenewedFrom)
	}
	if got.LeaseID == orig.LeaseID {
		t.Error("renewal reused the original lease id")
	}
	if got.RentAmount != 16000 || got.Terms.RentAmount != 16000 {
		t.Errorf("rent not updated: %.0f / %.0f", got.RentAmount, got.Terms.RentAmount)
	}
	if got.Terms.NoticePeriod != orig.Terms.NoticePeriod {
		t.Error("terms not cloned")
	}
	if orig.Status != domain.StatusActive {
		t.Errorf("original lease was modified: %s", orig.Status)
	}
}

func TestRenew_Terminated(t *testing.T) {
	f := newFixture(t)
	orig := pendingLease()
	orig.Status = domain.StatusTerminated
	wireLease(f, orig)

	_, err := f.svc.Renew(context.Background(), actor.Tenant("tenant-1"), "lease-1", RenewInput{
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(1, 0, 0),
	})
	if !fault.IsStateConflict(err) {
		t.Fatalf("want state conflict, got %v", err)
	}
}

func TestTerminate(t *testing.T) {
	f := newFixture(t)
	l := pendingLease()
	l.Status = domain.StatusActive
	wireLease(f, l)

	got, err := f.svc.Terminate(context.Background(), actor.Landlord("landlord-1"), "lease-1", "sale of property")
	if err != nil {
		t.Fatalf("Terminate: %v", err)
	}
	if got.Status != domain.StatusTerminated {
		t.Errorf("status = %s, want terminated", got.Status)
	}
	if len(f.sender.Sent()) != 2 {
		t.Errorf("termination mails = %d, want both parties", len(f.sender.Sent()))
	}
}

func TestTerminate_AlreadyTerminated(t *testing.T) {
	f := newFixture(t)
	l := pendingLease()
	l.Status = domain.StatusTerminated
	wireLease(f, l)

	if _, err := f.svc.Terminate(context.Background(), actor.Landlord("landlord-1"), "lease-1", ""); !fault.IsStateConflict(err) {
		t.Fatalf("want state conflict, got %v", err)
	}
}

func TestRemindExpiring(t *testing.T) {
	f := newFixture(t)
	f.leases.ListActiveEndingByFn = func(ctx context.Context, cutoff time.Time) ([]domain.Lease, error) {
		l := pendingLease()
		l.Status = domain.StatusActive
		return []domain.Lease{*l}, nil
	}

	n, err := f.svc.RemindExpiring(context.Background(), 30)
	if err != nil {
		t.Fatalf("RemindExpiring: %v", err)
	}
	if n != 1 {
		t.Errorf("reminded = %d, want 1", n)
	}
	if len(f.sender.Sent()) != 2 {
		t.Errorf("mails = %d, want tenant and landlord", len(f.sender.Sent()))
	}
}

func TestExpiringWithin_BadWindow(t *testing.T) {
	f := newFixture(t)
	if _, err := f.svc.ExpiringWithin(context.Background(), 0); !fault.IsValidation(err) {
		t.Fatalf("want validation fault, got %v", err)
	}
}
