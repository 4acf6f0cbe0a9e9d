package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dfwhvac/internal/db"
	applog "github.com/dfwhvac/internal/logger"
	"github.com/dfwhvac/internal/metrics"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(db.Models()...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gdb
}

type recordingNotifier struct {
	mu    sync.Mutex
	leads []*db.Lead
	err   error
}

func (r *recordingNotifier) NotifyLead(_ context.Context, lead *db.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = append(r.leads, lead)
	return r.err
}

func validLeadInput() LeadInput {
	return LeadInput{
		FirstName:          "  John ",
		LastName:           "Smith",
		Email:              "john@example.com",
		Phone:              "972.555.0100",
		ServiceAddress:     "123 Main St, Dallas, TX 75201",
		ProblemDescription: "AC not cooling",
		LeadType:           "estimate",
		SourcePage:         "/services/residential/air-conditioning",
	}
}

func TestLeadService_SubmitStoresAndNotifies(t *testing.T) {
	gdb := setupServiceTestDB(t)
	notifier := &recordingNotifier{}
	m := metrics.New()
	svc := NewLeadService(gdb, NewDBLeadGuard(gdb, 10*time.Minute), notifier, applog.NewTestLogger(t), m)

	lead, err := svc.Submit(context.Background(), validLeadInput())
	if err != nil {
		t.Fatalf("submit lead: %v", err)
	}
	if lead.PublicID == "" || lead.Status != db.LeadStatusNew {
		t.Fatalf("expected public id and new status, got %#v", lead)
	}
	if lead.FirstName != "John" || lead.Phone != "(972) 555-0100" {
		t.Fatalf("expected trimmed name and formatted phone, got %q %q", lead.FirstName, lead.Phone)
	}
	if lead.LeadType != db.LeadTypeEstimate {
		t.Fatalf("unexpected lead type %q", lead.LeadType)
	}

	var count int64
	gdb.Model(&db.Lead{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 stored lead, got %d", count)
	}
	if len(notifier.leads) != 1 || notifier.leads[0].PublicID != lead.PublicID {
		t.Fatalf("expected notifier to receive the lead, got %#v", notifier.leads)
	}
	if got := testutil.ToFloat64(m.LeadCounter(db.LeadTypeEstimate, metrics.LeadCreated)); got != 1 {
		t.Fatalf("expected created counter 1, got %v", got)
	}
}

func TestLeadService_SubmitRejectsInvalidInput(t *testing.T) {
	gdb := setupServiceTestDB(t)
	m := metrics.New()
	svc := NewLeadService(gdb, nil, nil, nil, m)

	cases := []struct {
		name  string
		input LeadInput
		field string
	}{
		{name: "missing first name", input: LeadInput{Phone: "9725550100"}, field: "firstName"},
		{name: "no contact", input: LeadInput{FirstName: "Ann"}, field: "phone"},
		{name: "short phone", input: LeadInput{FirstName: "Ann", Phone: "555-0100"}, field: "phone"},
		{name: "bad email", input: LeadInput{FirstName: "Ann", Email: "not-an-email"}, field: "email"},
		{name: "long description", input: LeadInput{FirstName: "Ann", Phone: "9725550100", ProblemDescription: strings.Repeat("é", MaxProblemDescription+1)}, field: "problemDescription"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tc.input)
			if !errors.Is(err, ErrLeadInvalid) {
				t.Fatalf("expected ErrLeadInvalid, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if _, ok := verr.Fields[tc.field]; !ok {
				t.Fatalf("expected field %q in %v", tc.field, verr.Fields)
			}
		})
	}

	var count int64
	gdb.Model(&db.Lead{}).Count(&count)
	if count != 0 {
		t.Fatalf("invalid leads must not be stored, got %d", count)
	}
	if got := testutil.ToFloat64(m.LeadCounter(db.LeadTypeService, metrics.LeadInvalid)); got != float64(len(cases)) {
		t.Fatalf("expected %d invalid observations, got %v", len(cases), got)
	}
}

func TestLeadService_DescriptionAtLimitIsAccepted(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewLeadService(gdb, nil, nil, nil, nil)

	input := LeadInput{FirstName: "Ann", Email: "ann@example.com", ProblemDescription: strings.Repeat("é", MaxProblemDescription)}
	if _, err := svc.Submit(context.Background(), input); err != nil {
		t.Fatalf("expected description at limit to pass, got %v", err)
	}
}

func TestLeadService_DuplicateWithinWindow(t *testing.T) {
	gdb := setupServiceTestDB(t)
	notifier := &recordingNotifier{}
	svc := NewLeadService(gdb, NewDBLeadGuard(gdb, 10*time.Minute), notifier, nil, nil)

	if _, err := svc.Submit(context.Background(), validLeadInput()); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	again := validLeadInput()
	again.Phone = "(972) 555-0100"
	if _, err := svc.Submit(context.Background(), again); !errors.Is(err, ErrLeadDuplicate) {
		t.Fatalf("expected ErrLeadDuplicate, got %v", err)
	}

	other := validLeadInput()
	other.LeadType = "contact"
	if _, err := svc.Submit(context.Background(), other); err != nil {
		t.Fatalf("different lead type should be accepted, got %v", err)
	}

	var count int64
	gdb.Model(&db.Lead{}).Count(&count)
	if count != 2 {
		t.Fatalf("expected 2 stored leads, got %d", count)
	}
	if len(notifier.leads) != 2 {
		t.Fatalf("duplicates must not notify, got %d notifications", len(notifier.leads))
	}
}

func TestLeadService_StoreFailureReleasesDedupKey(t *testing.T) {
	gdb := setupServiceTestDB(t)
	mr, client := setupRedis(t)
	notifier := &recordingNotifier{}
	svc := NewLeadService(gdb, NewRedisLeadGuard(client, 10*time.Minute), notifier, applog.NewTestLogger(t), nil)

	failInsert := true
	err := gdb.Callback().Create().Before("gorm:create").Register("test:fail_lead_insert", func(tx *gorm.DB) {
		if failInsert {
			_ = tx.AddError(errors.New("database is locked"))
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	if _, err := svc.Submit(context.Background(), validLeadInput()); err == nil || errors.Is(err, ErrLeadDuplicate) {
		t.Fatalf("expected a store error, got %v", err)
	}
	if mr.Exists("lead:dedup:estimate:9725550100") {
		t.Fatal("dedup key must be released when the insert fails")
	}

	failInsert = false
	lead, err := svc.Submit(context.Background(), validLeadInput())
	if err != nil {
		t.Fatalf("retry after a failed insert must be accepted, got %v", err)
	}
	if lead.PublicID == "" {
		t.Fatalf("expected stored lead, got %#v", lead)
	}

	var count int64
	gdb.Model(&db.Lead{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 stored lead, got %d", count)
	}
	if len(notifier.leads) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.leads))
	}
	if !mr.Exists("lead:dedup:estimate:9725550100") {
		t.Fatal("a stored lead keeps its dedup key")
	}
}

func TestLeadService_CountryCodePhoneIsNormalized(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewLeadService(gdb, NewDBLeadGuard(gdb, 10*time.Minute), nil, nil, nil)

	input := validLeadInput()
	input.Phone = "+1 972 555 0100"
	lead, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if lead.Phone != "(972) 555-0100" {
		t.Fatalf("expected national format, got %q", lead.Phone)
	}

	again := validLeadInput()
	again.Email = "someone-else@example.com"
	if _, err := svc.Submit(context.Background(), again); !errors.Is(err, ErrLeadDuplicate) {
		t.Fatalf("same number without +1 should be a duplicate, got %v", err)
	}

	odd := validLeadInput()
	odd.LeadType = "contact"
	odd.Phone = "+44 20 7946 0958"
	lead, err = svc.Submit(context.Background(), odd)
	if err != nil {
		t.Fatalf("submit foreign number: %v", err)
	}
	if lead.Phone != "+44 20 7946 0958" {
		t.Fatalf("non-US numbers are stored as typed, got %q", lead.Phone)
	}
}

func TestLeadService_NotifierFailureDoesNotFailSubmit(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewLeadService(gdb, nil, &recordingNotifier{err: errors.New("ses down")}, applog.NewTestLogger(t), nil)

	if _, err := svc.Submit(context.Background(), validLeadInput()); err != nil {
		t.Fatalf("notification failure must not surface, got %v", err)
	}
}

func TestLeadService_UnknownTypeDefaultsToService(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewLeadService(gdb, nil, nil, nil, nil)

	input := validLeadInput()
	input.LeadType = "bogus"
	lead, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if lead.LeadType != db.LeadTypeService {
		t.Fatalf("expected service lead type, got %q", lead.LeadType)
	}
}

func TestLeadService_UpdateStatus(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewLeadService(gdb, nil, nil, nil, nil)

	lead, err := svc.Submit(context.Background(), validLeadInput())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	updated, err := svc.UpdateStatus(lead.PublicID, "Closed")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != db.LeadStatusClosed {
		t.Fatalf("unexpected status %q", updated.Status)
	}
	// 任意顺序都允许
	if _, err := svc.UpdateStatus(lead.PublicID, db.LeadStatusNew); err != nil {
		t.Fatalf("reopen lead: %v", err)
	}

	if _, err := svc.UpdateStatus(lead.PublicID, "archived"); !errors.Is(err, ErrLeadStatusInvalid) {
		t.Fatalf("expected ErrLeadStatusInvalid, got %v", err)
	}
	if _, err := svc.UpdateStatus("missing", db.LeadStatusClosed); !errors.Is(err, ErrLeadNotFound) {
		t.Fatalf("expected ErrLeadNotFound, got %v", err)
	}
}

func TestLeadService_ListPaginatesAndCounts(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewLeadService(gdb, nil, nil, nil, nil)

	for i := 0; i < 12; i++ {
		input := validLeadInput()
		input.Phone = fmt.Sprintf("97255501%02d", i)
		if _, err := svc.Submit(context.Background(), input); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	first, err := svc.List(LeadFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if first.Page != 1 || first.PerPage != 10 || len(first.Leads) != 10 {
		t.Fatalf("unexpected first page %d/%d/%d", first.Page, first.PerPage, len(first.Leads))
	}
	if first.Total != 12 || first.TotalPages != 2 || first.NewCount != 12 {
		t.Fatalf("unexpected totals %#v", first)
	}

	if _, err := svc.UpdateStatus(first.Leads[0].PublicID, db.LeadStatusContacted); err != nil {
		t.Fatalf("update status: %v", err)
	}
	contacted, err := svc.List(LeadFilter{Status: db.LeadStatusContacted})
	if err != nil {
		t.Fatalf("list contacted: %v", err)
	}
	if contacted.Total != 1 || contacted.NewCount != 11 || contacted.ContactedCount != 1 {
		t.Fatalf("unexpected filtered result %#v", contacted)
	}

	empty, err := svc.List(LeadFilter{LeadType: db.LeadTypeContact})
	if err != nil {
		t.Fatalf("list contact leads: %v", err)
	}
	if empty.Total != 0 || empty.TotalPages != 1 {
		t.Fatalf("expected single empty page, got %#v", empty)
	}

	if _, err := svc.List(LeadFilter{Status: "archived"}); !errors.Is(err, ErrLeadStatusInvalid) {
		t.Fatalf("expected ErrLeadStatusInvalid, got %v", err)
	}
}

func TestSuccessMessage(t *testing.T) {
	cases := map[string]string{
		"":         "Thank you! We'll call you within 2 business hours.",
		"service":  "Thank you! We'll call you within 2 business hours.",
		"estimate": "Thank you! We'll contact you within 24 hours.",
		"contact":  "Thank you! We'll get back to you within 24 hours.",
	}
	for leadType, want := range cases {
		if got := SuccessMessage(leadType); got != want {
			t.Fatalf("SuccessMessage(%q) = %q, want %q", leadType, got, want)
		}
	}
}
