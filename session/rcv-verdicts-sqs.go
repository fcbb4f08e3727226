package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"

	"github.com/codesync/backend/judge"
)

// VerdictMsg is the wire format background judging workers put on the
// verdict queue. Timestamp is unix milliseconds and must match the
// submission's recorded creation time exactly.
type VerdictMsg struct {
	SessionID string       `json:"session_id"`
	Timestamp int64        `json:"timestamp"`
	Verdict   judge.Report `json:"verdict"`
}

// StartReceivingVerdictsFromSqs long-polls the verdict queue until
// ctx is cancelled and attaches each received verdict to its
// submission. Messages that fail to attach are not deleted, so the
// queue redelivers them.
func StartReceivingVerdictsFromSqs(
	ctx context.Context,
	sqsUrl string,
	client *sqs.Client,
	srvc *SessionSrvc,
	logger *slog.Logger,
) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			output, err := client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
				QueueUrl:            aws.String(sqsUrl),
				MaxNumberOfMessages: 10,
				WaitTimeSeconds:     1,
			})
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				logger.Error("failed to receive messages", "error", err)
				continue
			}

			for _, msg := range output.Messages {
				if msg.Body == nil || msg.ReceiptHandle == nil {
					logger.Error("received message without body or receipt handle")
					continue
				}

				var verdictMsg VerdictMsg
				err = json.Unmarshal([]byte(*msg.Body), &verdictMsg)
				if err != nil {
					logger.Error("failed to unmarshal verdict message", "error", err)
					continue
				}

				sessionId, err := uuid.Parse(verdictMsg.SessionID)
				if err != nil {
					logger.Error("failed to parse session_id",
						"session_id", verdictMsg.SessionID,
						"error", err)
					continue
				}

				go func(handle string, sessionId uuid.UUID, verdictMsg VerdictMsg) {
					_, err := srvc.AttachVerdict(
						context.Background(),
						sessionId,
						time.UnixMilli(verdictMsg.Timestamp),
						verdictMsg.Verdict,
					)
					if err != nil {
						logger.Error("failed to attach verdict",
							"session_id", sessionId,
							"timestamp", verdictMsg.Timestamp,
							"error", err)
						return
					}
					_, err = client.DeleteMessage(context.TODO(), &sqs.DeleteMessageInput{
						QueueUrl:      aws.String(sqsUrl),
						ReceiptHandle: aws.String(handle),
					})
					if err != nil {
						logger.Error("failed to ack verdict message", "error", err)
					}
				}(*msg.ReceiptHandle, sessionId, verdictMsg)
			}
		}
	}
}
