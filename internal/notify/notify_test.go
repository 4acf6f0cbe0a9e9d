package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/dfwhvac/internal/db"
	"github.com/dfwhvac/internal/logger"
)

type fakeSES struct {
	inputs []*ses.SendEmailInput
	err    error
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

type fakeSNS struct {
	inputs []*sns.PublishInput
	err    error
}

func (f *fakeSNS) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{}, nil
}

func sampleLead() *db.Lead {
	return &db.Lead{
		PublicID:           "5b8f6a1e-0000-4000-8000-000000000001",
		LeadType:           db.LeadTypeEstimate,
		FirstName:          "Maria",
		LastName:           "Lopez",
		Email:              "maria@example.com",
		Phone:              "(972) 555-0142",
		ServiceAddress:     "123 Main St, Coppell, TX",
		ProblemDescription: "Upstairs unit blowing warm air.",
	}
}

func TestSESNotifierBuildsMessage(t *testing.T) {
	client := &fakeSES{}
	n := NewSESNotifier(client, "leads@dfwhvac.com", []string{"office@dfwhvac.com"})

	if err := n.NotifyLead(context.Background(), sampleLead()); err != nil {
		t.Fatalf("NotifyLead returned error: %v", err)
	}
	if len(client.inputs) != 1 {
		t.Fatalf("expected one e-mail, got %d", len(client.inputs))
	}
	in := client.inputs[0]
	if aws.ToString(in.Source) != "leads@dfwhvac.com" {
		t.Fatalf("unexpected source %q", aws.ToString(in.Source))
	}
	if got := in.Destination.ToAddresses; len(got) != 1 || got[0] != "office@dfwhvac.com" {
		t.Fatalf("unexpected recipients %v", got)
	}
	if got := in.ReplyToAddresses; len(got) != 1 || got[0] != "maria@example.com" {
		t.Fatalf("expected reply-to customer, got %v", got)
	}
	subject := aws.ToString(in.Message.Subject.Data)
	if subject != "[DFW HVAC] Estimate request from Maria Lopez" {
		t.Fatalf("unexpected subject %q", subject)
	}
	body := aws.ToString(in.Message.Body.Text.Data)
	for _, want := range []string{"Phone: (972) 555-0142", "Upstairs unit blowing warm air.", "Lead ID: 5b8f6a1e"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "Systems:") {
		t.Fatalf("empty fields should be skipped:\n%s", body)
	}
}

func TestSESNotifierWrapsError(t *testing.T) {
	client := &fakeSES{err: errors.New("throttled")}
	n := NewSESNotifier(client, "a@b.c", []string{"d@e.f"})
	err := n.NotifyLead(context.Background(), sampleLead())
	if err == nil || !strings.Contains(err.Error(), "throttled") {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestSNSNotifierPublishesSMS(t *testing.T) {
	client := &fakeSNS{}
	n := NewSNSNotifier(client, " +19727772665 ")
	if err := n.NotifyLead(context.Background(), sampleLead()); err != nil {
		t.Fatalf("NotifyLead returned error: %v", err)
	}
	in := client.inputs[0]
	if aws.ToString(in.PhoneNumber) != "+19727772665" {
		t.Fatalf("unexpected phone %q", aws.ToString(in.PhoneNumber))
	}
	if got := aws.ToString(in.Message); got != "DFW HVAC: estimate request from Maria Lopez, (972) 555-0142" {
		t.Fatalf("unexpected sms %q", got)
	}
}

func TestMultiCallsEveryNotifier(t *testing.T) {
	failing := &fakeSES{err: errors.New("ses down")}
	texts := &fakeSNS{}
	m := Multi{NewSESNotifier(failing, "a@b.c", []string{"d@e.f"}), nil, NewSNSNotifier(texts, "+1")}

	err := m.NotifyLead(context.Background(), sampleLead())
	if err == nil || !strings.Contains(err.Error(), "ses down") {
		t.Fatalf("expected joined error, got %v", err)
	}
	if len(texts.inputs) != 1 {
		t.Fatal("expected sms to be sent after e-mail failure")
	}
}

func TestNewWithoutAWSFallsBackToLog(t *testing.T) {
	n, err := New(context.Background(), Config{From: "a@b.c", To: []string{"d@e.f"}}, logger.NewTestLogger(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, ok := n.(*LogNotifier); !ok {
		t.Fatalf("expected log notifier without region, got %T", n)
	}
	if err := n.NotifyLead(context.Background(), sampleLead()); err != nil {
		t.Fatalf("log notifier should not fail: %v", err)
	}
}

func TestSplitRecipients(t *testing.T) {
	got := SplitRecipients(" office@dfwhvac.com, ,owner@dfwhvac.com ")
	if len(got) != 2 || got[1] != "owner@dfwhvac.com" {
		t.Fatalf("unexpected recipients %v", got)
	}
	if SplitRecipients("") != nil {
		t.Fatal("expected nil for empty input")
	}
}
