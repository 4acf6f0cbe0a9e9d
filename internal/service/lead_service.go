package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/dfwhvac/internal/db"
	"github.com/dfwhvac/internal/format"
	"github.com/dfwhvac/internal/logger"
	"github.com/dfwhvac/internal/metrics"
	"github.com/dfwhvac/internal/notify"
)

var (
	ErrLeadInvalid       = errors.New("lead payload is invalid")
	ErrLeadDuplicate     = errors.New("lead already received")
	ErrLeadNotFound      = errors.New("lead not found")
	ErrLeadStatusInvalid = errors.New("lead status is invalid")
)

// MaxProblemDescription 限制问题描述的字符数（按 rune 计）。
const MaxProblemDescription = 2000

// 前台提示文案，与表单类型一一对应。
const (
	msgServiceSuccess  = "Thank you! We'll call you within 2 business hours."
	msgEstimateSuccess = "Thank you! We'll contact you within 24 hours."
	msgContactSuccess  = "Thank you! We'll get back to you within 24 hours."
	MsgLeadFailed      = "Something went wrong. Please call us directly."
)

var emailValidator = validator.New()

// ValidationError lists field level problems keyed by the JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid lead: " + strings.Join(parts, "; ")
}

// Summary joins the field messages for a user facing toast.
func (e *ValidationError) Summary() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrLeadInvalid
}

// LeadInput 是前台表单与 JSON 接口共用的提交结构。
type LeadInput struct {
	FirstName          string `json:"firstName" form:"firstName"`
	LastName           string `json:"lastName" form:"lastName"`
	Email              string `json:"email" form:"email"`
	Phone              string `json:"phone" form:"phone"`
	ServiceAddress     string `json:"serviceAddress" form:"serviceAddress"`
	NumSystems         string `json:"numSystems" form:"numSystems"`
	ProblemDescription string `json:"problemDescription" form:"problemDescription"`
	LeadType           string `json:"leadType" form:"leadType"`
	SourcePage         string `json:"sourcePage" form:"sourcePage"`
	UserAgent          string `json:"-" form:"-"`
	ClientIP           string `json:"-" form:"-"`
}

// LeadFilter describes filters for the admin lead list.
type LeadFilter struct {
	Status   string
	LeadType string
	Page     int
	PerPage  int
}

// LeadListResult aggregates a page of leads and per-status counters.
type LeadListResult struct {
	Leads          []db.Lead
	Total          int64
	NewCount       int64
	ContactedCount int64
	ClosedCount    int64
	TotalPages     int
	Page           int
	PerPage        int
}

// LeadService stores lead submissions and serves the admin list.
type LeadService struct {
	db       *gorm.DB
	guard    LeadGuard
	notifier notify.LeadNotifier
	log      logger.Logger
	metrics  *metrics.Metrics
}

// NewLeadService wires a lead service. Nil collaborators are replaced by
// no-op versions.
func NewLeadService(gdb *gorm.DB, guard LeadGuard, notifier notify.LeadNotifier, log logger.Logger, m *metrics.Metrics) *LeadService {
	if log == nil {
		log = logger.NewNop()
	}
	if guard == nil {
		guard = NoopLeadGuard{}
	}
	if notifier == nil {
		notifier = notify.NewLogNotifier(log)
	}
	return &LeadService{db: gdb, guard: guard, notifier: notifier, log: log, metrics: m}
}

// NormalizeLeadType maps empty or unknown types to service.
func NormalizeLeadType(leadType string) string {
	switch strings.ToLower(strings.TrimSpace(leadType)) {
	case db.LeadTypeEstimate:
		return db.LeadTypeEstimate
	case db.LeadTypeContact:
		return db.LeadTypeContact
	default:
		return db.LeadTypeService
	}
}

// SuccessMessage returns the toast text for a lead type.
func SuccessMessage(leadType string) string {
	switch NormalizeLeadType(leadType) {
	case db.LeadTypeEstimate:
		return msgEstimateSuccess
	case db.LeadTypeContact:
		return msgContactSuccess
	default:
		return msgServiceSuccess
	}
}

// Validate trims the input and builds the row to store.
func (in LeadInput) Validate() (*db.Lead, error) {
	lead := &db.Lead{
		LeadType:           NormalizeLeadType(in.LeadType),
		FirstName:          strings.TrimSpace(in.FirstName),
		LastName:           strings.TrimSpace(in.LastName),
		Email:              strings.TrimSpace(in.Email),
		Phone:              strings.TrimSpace(in.Phone),
		ServiceAddress:     strings.TrimSpace(in.ServiceAddress),
		NumSystems:         strings.TrimSpace(in.NumSystems),
		ProblemDescription: strings.TrimSpace(in.ProblemDescription),
		SourcePage:         strings.TrimSpace(in.SourcePage),
		UserAgent:          truncate(in.UserAgent, 255),
		ClientIP:           truncate(in.ClientIP, 64),
	}

	fields := map[string]string{}
	if lead.FirstName == "" {
		fields["firstName"] = "first name is required"
	}
	if lead.Email != "" {
		if err := emailValidator.Var(lead.Email, "email"); err != nil {
			fields["email"] = "email address is invalid"
		}
	}
	if lead.Phone != "" {
		if len(format.Digits(lead.Phone)) < 10 {
			fields["phone"] = "phone number must have at least 10 digits"
		} else if national := format.NationalDigits(lead.Phone); len(national) == 10 {
			lead.Phone = format.FormatPhoneNumber(national)
		}
	}
	if lead.Phone == "" && lead.Email == "" {
		fields["phone"] = "a phone number or email address is required"
	}
	if utf8.RuneCountInString(lead.ProblemDescription) > MaxProblemDescription {
		fields["problemDescription"] = fmt.Sprintf("description must be at most %d characters", MaxProblemDescription)
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	return lead, nil
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// Submit validates, de-duplicates, stores and announces one lead.
// A duplicate returns ErrLeadDuplicate and stores nothing.
func (s *LeadService) Submit(ctx context.Context, input LeadInput) (*db.Lead, error) {
	lead, err := input.Validate()
	if err != nil {
		s.metrics.ObserveLead(NormalizeLeadType(input.LeadType), metrics.LeadInvalid)
		return nil, err
	}

	first, err := s.guard.Claim(ctx, lead)
	if err != nil {
		// 去重失败不影响线索入库
		s.log.Warn("lead dedup check failed", map[string]interface{}{"error": err})
	}
	if !first {
		s.metrics.ObserveLead(lead.LeadType, metrics.LeadDuplicate)
		s.log.Info("duplicate lead ignored", map[string]interface{}{"lead_type": lead.LeadType})
		return nil, ErrLeadDuplicate
	}

	if err := s.db.WithContext(ctx).Create(lead).Error; err != nil {
		s.metrics.ObserveLead(lead.LeadType, metrics.LeadFailed)
		if rerr := s.guard.Release(ctx, lead); rerr != nil {
			s.log.Warn("release lead dedup key failed", map[string]interface{}{"error": rerr})
		}
		return nil, fmt.Errorf("store lead: %w", err)
	}
	s.metrics.ObserveLead(lead.LeadType, metrics.LeadCreated)

	if err := s.notifier.NotifyLead(ctx, lead); err != nil {
		s.log.Error("lead notification failed", map[string]interface{}{
			"id":    lead.PublicID,
			"error": err,
		})
	}
	return lead, nil
}

// Get returns a lead by its public id.
func (s *LeadService) Get(publicID string) (*db.Lead, error) {
	var lead db.Lead
	if err := s.db.Where("public_id = ?", strings.TrimSpace(publicID)).First(&lead).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &lead, nil
}

// ValidLeadStatus reports whether status is a known status.
func ValidLeadStatus(status string) bool {
	switch status {
	case db.LeadStatusNew, db.LeadStatusContacted, db.LeadStatusClosed:
		return true
	}
	return false
}

// UpdateStatus moves a lead to any known status.
func (s *LeadService) UpdateStatus(publicID, status string) (*db.Lead, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !ValidLeadStatus(status) {
		return nil, ErrLeadStatusInvalid
	}
	lead, err := s.Get(publicID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(lead).Update("status", status).Error; err != nil {
		return nil, err
	}
	lead.Status = status
	return lead, nil
}

func (s *LeadService) applyFilters(query *gorm.DB, filter LeadFilter, includeStatus bool) *gorm.DB {
	if includeStatus {
		if status := strings.ToLower(strings.TrimSpace(filter.Status)); status != "" {
			query = query.Where("status = ?", status)
		}
	}
	if leadType := strings.ToLower(strings.TrimSpace(filter.LeadType)); leadType != "" {
		query = query.Where("lead_type = ?", leadType)
	}
	return query
}

// List returns a page of leads, newest first.
func (s *LeadService) List(filter LeadFilter) (*LeadListResult, error) {
	result := &LeadListResult{Page: filter.Page, PerPage: filter.PerPage}
	if result.Page <= 0 {
		result.Page = 1
	}
	if result.PerPage <= 0 {
		result.PerPage = 10
	}

	if filter.Status != "" && !ValidLeadStatus(strings.ToLower(strings.TrimSpace(filter.Status))) {
		return nil, ErrLeadStatusInvalid
	}

	countQuery := s.applyFilters(s.db.Model(&db.Lead{}), filter, true)
	if err := countQuery.Count(&result.Total).Error; err != nil {
		return nil, err
	}

	offset := (result.Page - 1) * result.PerPage
	dataQuery := s.applyFilters(s.db.Model(&db.Lead{}), filter, true)
	if err := dataQuery.Order("created_at desc, id desc").Limit(result.PerPage).Offset(offset).Find(&result.Leads).Error; err != nil {
		return nil, err
	}

	counters := map[string]*int64{
		db.LeadStatusNew:       &result.NewCount,
		db.LeadStatusContacted: &result.ContactedCount,
		db.LeadStatusClosed:    &result.ClosedCount,
	}
	for status, dst := range counters {
		base := s.applyFilters(s.db.Model(&db.Lead{}), filter, false)
		if err := base.Where("status = ?", status).Count(dst).Error; err != nil {
			return nil, err
		}
	}

	if result.Total == 0 {
		result.TotalPages = 1
	} else {
		result.TotalPages = int((result.Total + int64(result.PerPage) - 1) / int64(result.PerPage))
	}
	return result, nil
}
