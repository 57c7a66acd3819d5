package kafka

import (
	"encoding/json"
	"strconv"

	"github.com/Astemirdum/circulation-service/pkg/circuit_breaker"
	"github.com/IBM/sarama"
)

type Enqueuer interface {
	Enqueue(topic string, key int64, v any) error
}

func NewEnqueuer(producer sarama.SyncProducer, cb circuit_breaker.CircuitBreaker) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
		cb:       cb,
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
}

// Enqueue keys messages by asset id so events of one asset stay ordered within a partition.
func (q *enqueuerImpl) Enqueue(topic string, key int64, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(key, 10)),
		Value: sarama.ByteEncoder(data),
	}
	return q.cb.Call(func() error {
		_, _, err := q.producer.SendMessage(msg)
		return err
	})
}

type nopEnqueuer struct{}

func NewNopEnqueuer() Enqueuer { return nopEnqueuer{} }

func (nopEnqueuer) Enqueue(string, int64, any) error { return nil }
