// Package notify tells the office about new leads.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/dfwhvac/internal/db"
	"github.com/dfwhvac/internal/logger"
)

// LeadNotifier is called once per stored lead.
type LeadNotifier interface {
	NotifyLead(ctx context.Context, lead *db.Lead) error
}

// SESAPI is the subset of the SES client used here.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SNSAPI is the subset of the SNS client used here.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Config selects the channels. Empty fields disable a channel.
type Config struct {
	Region string
	From   string
	To     []string
	SMSTo  string
}

// SplitRecipients parses a comma separated address list.
func SplitRecipients(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if addr := strings.TrimSpace(part); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// New 根据配置组装通知渠道；没有可用渠道时退回到日志通知。
func New(ctx context.Context, cfg Config, log logger.Logger) (LeadNotifier, error) {
	if log == nil {
		log = logger.NewNop()
	}
	emailOn := cfg.From != "" && len(cfg.To) > 0
	smsOn := strings.TrimSpace(cfg.SMSTo) != ""
	if cfg.Region == "" || (!emailOn && !smsOn) {
		return NewLogNotifier(log), nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	var notifiers Multi
	if emailOn {
		notifiers = append(notifiers, NewSESNotifier(ses.NewFromConfig(awsCfg), cfg.From, cfg.To))
	}
	if smsOn {
		notifiers = append(notifiers, NewSNSNotifier(sns.NewFromConfig(awsCfg), cfg.SMSTo))
	}
	log.Info("lead notifications enabled", map[string]interface{}{
		"region": cfg.Region,
		"email":  emailOn,
		"sms":    smsOn,
	})
	return notifiers, nil
}

// SESNotifier e-mails a plain text summary to the office.
type SESNotifier struct {
	client SESAPI
	from   string
	to     []string
}

// NewSESNotifier wraps an SES client.
func NewSESNotifier(client SESAPI, from string, to []string) *SESNotifier {
	return &SESNotifier{client: client, from: from, to: to}
}

// NotifyLead sends one e-mail. Reply-To is the customer when known.
func (n *SESNotifier) NotifyLead(ctx context.Context, lead *db.Lead) error {
	if lead == nil {
		return nil
	}
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: n.to,
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(Subject(lead))},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(Body(lead))},
			},
		},
		Source: aws.String(n.from),
	}
	if lead.Email != "" {
		input.ReplyToAddresses = []string{lead.Email}
	}
	if _, err := n.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}

// SNSNotifier texts a short alert to the on-call phone.
type SNSNotifier struct {
	client SNSAPI
	phone  string
}

// NewSNSNotifier wraps an SNS client. phone must be E.164, e.g. +19727772665.
func NewSNSNotifier(client SNSAPI, phone string) *SNSNotifier {
	return &SNSNotifier{client: client, phone: strings.TrimSpace(phone)}
}

// NotifyLead publishes one SMS.
func (n *SNSNotifier) NotifyLead(ctx context.Context, lead *db.Lead) error {
	if lead == nil {
		return nil
	}
	_, err := n.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(n.phone),
		Message:     aws.String(SMSText(lead)),
	})
	if err != nil {
		return fmt.Errorf("sns publish: %w", err)
	}
	return nil
}

// LogNotifier only writes the lead to the log.
type LogNotifier struct {
	log logger.Logger
}

// NewLogNotifier builds a notifier for deployments without AWS.
func NewLogNotifier(log logger.Logger) *LogNotifier {
	if log == nil {
		log = logger.NewNop()
	}
	return &LogNotifier{log: log}
}

// NotifyLead never fails.
func (n *LogNotifier) NotifyLead(_ context.Context, lead *db.Lead) error {
	if lead == nil {
		return nil
	}
	n.log.Info("new lead", map[string]interface{}{
		"id":        lead.PublicID,
		"lead_type": lead.LeadType,
		"name":      lead.FullName(),
		"phone":     lead.Phone,
	})
	return nil
}

// Multi fans out to every notifier and joins the failures.
type Multi []LeadNotifier

// NotifyLead calls each notifier even when an earlier one failed.
func (m Multi) NotifyLead(ctx context.Context, lead *db.Lead) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.NotifyLead(ctx, lead); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var leadTypeLabels = map[string]string{
	db.LeadTypeService:  "Service request",
	db.LeadTypeEstimate: "Estimate request",
	db.LeadTypeContact:  "Contact message",
}

func leadLabel(leadType string) string {
	if label, ok := leadTypeLabels[leadType]; ok {
		return label
	}
	return "Lead"
}

// Subject returns the e-mail subject line.
func Subject(lead *db.Lead) string {
	return fmt.Sprintf("[DFW HVAC] %s from %s", leadLabel(lead.LeadType), lead.FullName())
}

// Body renders the plain text e-mail body. Empty fields are skipped.
func Body(lead *db.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", leadLabel(lead.LeadType))
	line := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		fmt.Fprintf(&b, "%s: %s\n", label, value)
	}
	line("Name", lead.FullName())
	line("Phone", lead.Phone)
	line("Email", lead.Email)
	line("Service address", lead.ServiceAddress)
	line("Systems", lead.NumSystems)
	line("Source page", lead.SourcePage)
	if desc := strings.TrimSpace(lead.ProblemDescription); desc != "" {
		fmt.Fprintf(&b, "\n%s\n", desc)
	}
	fmt.Fprintf(&b, "\nLead ID: %s\n", lead.PublicID)
	return b.String()
}

// SMSText is a single line alert.
func SMSText(lead *db.Lead) string {
	contact := lead.Phone
	if contact == "" {
		contact = lead.Email
	}
	return fmt.Sprintf("DFW HVAC: %s from %s, %s", strings.ToLower(leadLabel(lead.LeadType)), lead.FullName(), contact)
}
