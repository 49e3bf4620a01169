package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type fakeSQSClient struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSQSNotifierSendsEvent(t *testing.T) {
	client := &fakeSQSClient{}
	n := &sqsNotifier{
		id:       "platform-queue",
		queueURL: "https://sqs.eu-west-1.amazonaws.com/123/status",
		client:   client,
		log:      noopLogger{},
	}

	err := n.Notify(context.Background(), Event{Service: "device-telemetry", State: "down"})
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.QueueUrl); got != "https://sqs.eu-west-1.amazonaws.com/123/status" {
		t.Fatalf("QueueUrl = %s", got)
	}
	attr, ok := client.input.MessageAttributes["service"]
	if !ok || aws.ToString(attr.StringValue) != "device-telemetry" {
		t.Fatalf("service attribute missing or wrong: %#v", attr)
	}
	if !strings.Contains(aws.ToString(client.input.MessageBody), `"state":"down"`) {
		t.Fatalf("MessageBody missing state: %s", aws.ToString(client.input.MessageBody))
	}
}

func TestSQSNotifierSendError(t *testing.T) {
	client := &fakeSQSClient{err: errors.New("boom")}
	n := &sqsNotifier{
		id:       "platform-queue",
		queueURL: "https://sqs.eu-west-1.amazonaws.com/123/status",
		client:   client,
		log:      noopLogger{},
	}

	if err := n.Notify(context.Background(), Event{Service: "device-telemetry"}); err == nil {
		t.Fatalf("expected send error")
	}
}
