package events

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/segmentio/kafka-go"
)

func topicConfigs(prefix string, names ...string) []kafka.TopicConfig {
	cfgs := make([]kafka.TopicConfig, 0, len(names))
	for _, n := range names {
		cfgs = append(cfgs, kafka.TopicConfig{
			Topic:             prefix + n,
			NumPartitions:     1,
			ReplicationFactor: 1,
		})
	}
	return cfgs
}

// EnsureTopics creates the event topics through the cluster controller.
// Topics that already exist are left untouched.
func EnsureTopics(ctx context.Context, broker, prefix string, names ...string) error {
	conn, err := kafka.DialContext(ctx, "tcp", broker)
	if err != nil {
		return fmt.Errorf("kafka: dial %s: %w", broker, err)
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("kafka: controller: %w", err)
	}

	admin, err := kafka.DialContext(ctx, "tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return fmt.Errorf("kafka: dial controller: %w", err)
	}
	defer admin.Close()

	if err := admin.CreateTopics(topicConfigs(prefix, names...)...); err != nil && !errors.Is(err, kafka.TopicAlreadyExists) {
		return fmt.Errorf("kafka: create topics: %w", err)
	}
	return nil
}
