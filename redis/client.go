package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/go-redis/redis/v8"
	"github.com/kelseyhightower/envconfig"

	"text2phenotype.com/absa/utils/partial"
)

type DB int
type ReleaseLock func() error

type Client struct {
	client         redis.UniversalClient
	lockExpiration time.Duration
}

var ctx = context.Background()

type Config struct {
	LockExpirationSeconds   int     `envconfig:"ABSA_REDIS_LOCK_EXPIRATION" default:"3"`
	Host                    string  `envconfig:"ABSA_REDIS_HOST" required:"true"`
	Port                    string  `envconfig:"ABSA_REDIS_PORT" required:"true"`
	HASentinelPort          string  `envconfig:"ABSA_REDIS_HA_SENTINEL_PORT" default:"26379"`
	HASentinelMasterName    string  `envconfig:"ABSA_REDIS_HA_MASTER_NAME" default:"mymaster"`
	Password                string  `envconfig:"ABSA_REDIS_AUTH_PASSWORD" default:"0"`
	AuthRequired            bool    `envconfig:"ABSA_REDIS_AUTH_REQUIRED" default:"false"`
	HAMode                  bool    `envconfig:"ABSA_REDIS_HA_MODE" default:"false"`
	HASentinelSocketTimeout float32 `envconfig:"ABSA_REDIS_SOCKET_TIMEOUT" default:"0.5"`
}

func NewClient(db DB) (Client, error) {
	cfg, err := readEnvironment()
	if err != nil {
		return Client{}, err
	}
	var client redis.UniversalClient
	if cfg.HAMode {
		client = CreateClusterClient(cfg, db)
	} else {
		client = CreateClient(cfg, db)
	}
	return Client{
		client:         client,
		lockExpiration: time.Duration(cfg.LockExpirationSeconds) * time.Second,
	}, nil
}

func CreateClusterClient(cfg *Config, db DB) *redis.ClusterClient {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.HASentinelPort)
	timeout := time.Duration(float64(cfg.HASentinelSocketTimeout) * float64(time.Second))
	options := redis.FailoverOptions{
		SentinelAddrs: []string{addr},
		ReadTimeout:   timeout,
		WriteTimeout:  timeout,
		MaxRetries:    6,
		DB:            int(db),
		MasterName:    cfg.HASentinelMasterName,
	}
	if cfg.AuthRequired {
		options.Password = cfg.Password
	}
	return redis.NewFailoverClusterClient(&options)
}

func CreateClient(cfg *Config, db DB) *redis.Client {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	options := redis.Options{
		Addr:       addr,
		MaxRetries: 6,
		DB:         int(db),
	}
	if cfg.AuthRequired {
		options.Password = cfg.Password
	}
	return redis.NewClient(&options)
}

// GetPartialDocument reads the JSON object at redisKey into doc.
func (client *Client) GetPartialDocument(redisKey string, doc partial.Document) error {
	b, err := client.client.Get(ctx, redisKey).Bytes()
	if err != nil {
		return fmt.Errorf("get %s: %w", redisKey, err)
	}
	return partial.Decode(b, doc)
}

// UpdatePartialDocument runs update against the document at redisKey under
// the key lock and stores the result.
func UpdatePartialDocument[T partial.Document](client *Client, redisKey string, doc T, update func(T)) (err error) {
	releaseLock, err := client.Lock(redisKey)
	if err != nil {
		return err
	}
	defer func() {
		releaseErr := releaseLock()
		if err == nil {
			err = releaseErr
		}
	}()
	if err = client.GetPartialDocument(redisKey, doc); err != nil {
		return err
	}
	if err = partial.ApplyUpdates(doc, update); err != nil {
		return err
	}
	return client.SaveDoc(redisKey, doc)
}

func (client *Client) Lock(redisKey string) (ReleaseLock, error) {
	lockCl := redislock.New(client.client)
	str := redislock.LimitRetry(redislock.LinearBackoff(time.Second), 20)
	lockKey := fmt.Sprintf("lock:%s", redisKey)
	lock, err := lockCl.Obtain(ctx, lockKey, client.lockExpiration, &redislock.Options{RetryStrategy: str})
	if err != nil {
		return nil, err
	}
	return func() error {
		return lock.Release(ctx)
	}, nil
}

func (client *Client) SaveDoc(redisKey string, document partial.Document) error {
	b, err := partial.Encode(document)
	if err != nil {
		return err
	}
	if err := client.client.Set(ctx, redisKey, b, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", redisKey, err)
	}
	return nil
}

func (client *Client) Close() error {
	return client.client.Close()
}

func readEnvironment() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
