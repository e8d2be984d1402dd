package utils

import (
	"sync"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

var messageMap sync.Map

// TrackMessage remembers which Kafka message carried a review so its offset
// can be committed once the whole batch is stored.
func TrackMessage(reviewID string, msg *kafka.Message) {
	messageMap.Store(reviewID, msg)
}

func GetMessageForReview(reviewID string) (*kafka.Message, bool) {
	msg, ok := messageMap.Load(reviewID)
	if !ok {
		return nil, false
	}
	messageMap.Delete(reviewID)
	return msg.(*kafka.Message), true
}
