package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const defaultDialTimeout = 5 * time.Second

// NewGroup builds a consumer group for the catalog event stream. Offsets start
// at newest: a cold start has an empty cache, so replaying old price changes
// would only evict keys that are not there.
func NewGroup(brokers []string, groupID string, dialTimeout time.Duration) (sarama.ConsumerGroup, error) {
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_6_0_0
	cfg.Consumer.Group.Rebalance.Strategy = sarama.BalanceStrategyRange
	cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	cfg.Net.DialTimeout = dialTimeout
	return sarama.NewConsumerGroup(brokers, groupID, cfg)
}
