package rmq

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"

	"text2phenotype.com/absa/logger"
)

type Config struct {
	Host                    string `envconfig:"ABSA_RMQ_HOST" required:"true"`
	Port                    string `envconfig:"ABSA_RMQ_PORT" required:"true"`
	Username                string `envconfig:"ABSA_RMQ_USERNAME" required:"true"`
	Password                string `envconfig:"ABSA_RMQ_PASSWORD" required:"true"`
	Exchange                string `envconfig:"ABSA_RMQ_DEFAULT_EXCHANGE" default:"text2phenotype-default-exchange"`
	MaxParallelRequestCount int    `envconfig:"ABSA_RMQ_MAX_PARALLEL_REQUESTS" default:"5"`
	TaskQueue               string `envconfig:"ABSA_RMQ_TASK_QUEUE" default:"absa-tasks"`
	SequencerTaskQueue      string `envconfig:"ABSA_RMQ_SEQUENCER_TASK_QUEUE" required:"true"`
}

// Client consumes aspect sentiment chunk tasks and reports finished ones
// back to the sequencer queue. Requests and responses use separate
// connections so a slow publisher never blocks consumption.
type Client struct {
	Deliveries     <-chan amqp.Delivery
	ReqChanErrors  <-chan *amqp.Error
	RespChanErrors <-chan *amqp.Error
	config         Config
	reqConn        *amqp.Connection
	respConn       *amqp.Connection
	respChannel    *amqp.Channel
	log            *zerolog.Logger
}

func NewClient() (*Client, error) {
	log := logger.NewLogger("RMQ client")
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Error().Err(err).Msg("Could not read env config")
		return nil, err
	}

	url := config.URL()
	respConn, respChannel, err := dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed response connection: %w", err)
	}
	reqConn, reqChannel, err := dial(url)
	if err != nil {
		_ = respConn.Close()
		return nil, fmt.Errorf("failed request connection: %w", err)
	}

	deliveries, err := consume(reqChannel, config)
	if err != nil {
		_ = respConn.Close()
		_ = reqConn.Close()
		return nil, err
	}
	log.Info().
		Str("queue", config.TaskQueue).
		Int("prefetch", config.MaxParallelRequestCount).
		Msg("Consuming task queue")

	return &Client{
		Deliveries:     deliveries,
		ReqChanErrors:  reqChannel.NotifyClose(make(chan *amqp.Error)),
		RespChanErrors: respChannel.NotifyClose(make(chan *amqp.Error)),
		config:         config,
		reqConn:        reqConn,
		respConn:       respConn,
		respChannel:    respChannel,
		log:            &log,
	}, nil
}

func (c *Client) SendMessageToSequencer(msg amqp.Publishing) error {
	return c.respChannel.Publish(
		c.config.Exchange,
		c.config.SequencerTaskQueue,
		false,
		false,
		msg)
}

func (c *Client) Close() {
	if err := c.reqConn.Close(); err != nil {
		c.log.Debug().Err(err).Msg("Request connection close")
	}
	if err := c.respConn.Close(); err != nil {
		c.log.Debug().Err(err).Msg("Response connection close")
	}
}

func (config Config) URL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s", config.Username, config.Password, config.Host, config.Port)
}

// consume binds the task queue to the exchange under its own name as the
// routing key. The queue itself is owned by the sequencer and must exist.
func consume(channel *amqp.Channel, config Config) (<-chan amqp.Delivery, error) {
	q, err := channel.QueueDeclarePassive(
		config.TaskQueue, // name
		true,             // durable
		false,            // delete when unused
		false,            // exclusive
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("queue %s: %w", config.TaskQueue, err)
	}
	if err := channel.QueueBind(q.Name, q.Name, config.Exchange, false, nil); err != nil {
		return nil, fmt.Errorf("bind %s: %w", q.Name, err)
	}
	if err := channel.Qos(config.MaxParallelRequestCount, 0, false); err != nil {
		return nil, fmt.Errorf("qos: %w", err)
	}
	deliveries, err := channel.Consume(
		q.Name,
		"absa",
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("consume deliveries: %w", err)
	}
	return deliveries, nil
}

func dial(url string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return conn, ch, nil
}
