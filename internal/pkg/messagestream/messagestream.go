package messagestream

import (
	"cinema-ticket-service/config"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
)

type MessageStream interface {
	NewPublisher() (message.Publisher, error)
}

type ampq struct {
	cfg *config.MessageStreamConfig
}

func NewAmpq(cfg *config.MessageStreamConfig) MessageStream {
	return &ampq{
		cfg: cfg,
	}
}

func (a *ampq) NewPublisher() (message.Publisher, error) {
	amqpURI := fmt.Sprintf("amqp://%s:%s@%s:%s/", a.cfg.Username, a.cfg.Password, a.cfg.Host, a.cfg.Port)
	amqpConfig := amqp.NewDurableQueueConfig(amqpURI)

	return amqp.NewPublisher(amqpConfig, watermill.NewStdLogger(false, false))
}
