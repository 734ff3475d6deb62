package s3client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"text2phenotype.com/absa/logger"
)

var ErrNoSession = errors.New("could not get S3 session")

// Client stores chunk texts, external parses and aspect sentiment results.
// A background goroutine owns the session and hands it out on request,
// replacing it after any failed call.
type Client struct {
	holder     *sessionHolder
	bucketName string
	region     string
	env        EnvironmentConfig
}

type sessionHolder struct {
	curr      *session.Session
	requestCh <-chan *session.Session
	errorCh   chan<- error
	closeCh   chan<- struct{}
}

type EnvironmentConfig struct {
	BucketName  string `envconfig:"ABSA_STORAGE_CONTAINER_NAME" required:"true"`
	Env         string `envconfig:"ABSA_ENV" default:"prod"`
	Region      string `envconfig:"ABSA_AWS_REGION_NAME" required:"true"`
	AwsEndpoint string `envconfig:"ABSA_AWS_ENDPOINT_URL" default:""`
	AccessKeyID string `envconfig:"ABSA_AWS_ACCESS_ID" default:""`
	AccessKey   string `envconfig:"ABSA_AWS_ACCESS_KEY" default:""`
}

var clientLogger = logger.NewLogger("S3Client")
var sdkLogger = logger.NewLogger("S3-SDK")

func New() (*Client, error) {
	var env EnvironmentConfig
	if err := envconfig.Process("", &env); err != nil {
		clientLogger.Err(err).Caller().Msg("Failed to get proper variables from environment")
		return nil, err
	}
	client := Client{
		bucketName: env.BucketName,
		region:     env.Region,
		env:        env,
	}
	sessionCh := make(chan *session.Session)
	errorCh := make(chan error)
	closeCh := make(chan struct{}, 1)

	client.holder = &sessionHolder{
		requestCh: sessionCh,
		errorCh:   errorCh,
		closeCh:   closeCh,
	}
	if err := client.acquireNewSession(); err != nil {
		return nil, err
	}
	go keepSessionRefreshed(&client, sessionCh, errorCh, closeCh)
	return &client, nil
}

func (client Client) Upload(data string, key string) (*s3manager.UploadOutput, error) {
	params := &s3manager.UploadInput{
		Bucket: &client.bucketName,
		Key:    &key,
		Body:   strings.NewReader(data),
	}
	return withSession(client, func(sess *session.Session) (*s3manager.UploadOutput, error) {
		log := keyLogger(clientLogger, params.Bucket, params.Key)
		sdkLog := keyLogger(sdkLogger, params.Bucket, params.Key)
		uploader := s3manager.NewUploader(sess.Copy(&aws.Config{Logger: &s3Logger{sdkLog}}))
		log.Debug().Msg("Uploading the file")
		// the body reader is consumed by a failed attempt
		params.Body = strings.NewReader(data)
		return uploader.Upload(params)
	})
}

func (client Client) Download(key string) ([]byte, error) {
	params := &s3.GetObjectInput{
		Bucket: &client.bucketName,
		Key:    &key,
	}
	return withSession(client, func(sess *session.Session) ([]byte, error) {
		log := keyLogger(clientLogger, params.Bucket, params.Key)
		sdkLog := keyLogger(sdkLogger, params.Bucket, params.Key)
		downloader := s3manager.NewDownloader(sess.Copy(&aws.Config{Logger: &s3Logger{sdkLog}}))
		buf := aws.NewWriteAtBuffer([]byte{})
		log.Debug().Msg("Downloading file")
		size, err := downloader.Download(buf, params)
		if err != nil {
			log.Error().Err(err).Msg("Failed to download file")
			return nil, err
		}
		log.Debug().Int64("bytes", size).Msg("Downloaded file")
		return buf.Bytes(), nil
	})
}

func (client Client) Close() {
	client.holder.closeCh <- struct{}{}
}

// withSession runs call once with the current session and once more with a
// refreshed session if the first attempt fails.
func withSession[T any](client Client, call func(sess *session.Session) (T, error)) (T, error) {
	var zero T
	sess, err := client.session()
	if err != nil {
		return zero, err
	}
	res, err := call(sess)
	if err == nil {
		return res, nil
	}
	sess, err = client.tryRefreshingSession(err)
	if err != nil {
		return zero, err
	}
	return call(sess)
}

func keepSessionRefreshed(client *Client, sessionCh chan<- *session.Session, errorCh <-chan error, closeCh <-chan struct{}) {
	for {
		select {
		case sessionCh <- client.holder.curr:
			continue
		default:
		}
		select {
		case sessionCh <- client.holder.curr:
		case err := <-errorCh:
			clientLogger.Error().Err(err).Msg("Caught error while using S3 session, trying to refresh it")
			if err = client.acquireNewSession(); err != nil {
				clientLogger.Error().Err(err).Msg("Caught error while refreshing S3 session")
				continue
			}
			clientLogger.Info().Msg("Successfully refreshed session")
		case <-closeCh:
			clientLogger.Info().Msg("Closing client")
			return
		}
	}
}

func (client Client) tryRefreshingSession(err error) (*session.Session, error) {
	var sess *session.Session
	select {
	case client.holder.errorCh <- err:
		sess = <-client.holder.requestCh
	case sess = <-client.holder.requestCh:
	}
	if sess == nil {
		return nil, fmt.Errorf("failed to refresh session: %w", err)
	}
	return sess, nil
}

func (client Client) session() (*session.Session, error) {
	sess := <-client.holder.requestCh
	if sess == nil {
		return nil, ErrNoSession
	}
	return sess, nil
}

func (client Client) instanceConfig() *aws.Config {
	return &aws.Config{
		Region:     aws.String(client.region),
		MaxRetries: aws.Int(4),
		LogLevel:   aws.LogLevel(aws.LogDebug),
	}
}

func (client Client) envConfig() (*aws.Config, error) {
	creds := credentials.NewStaticCredentials(
		client.env.AccessKeyID,
		client.env.AccessKey,
		"")
	if _, err := creds.Get(); err != nil {
		return nil, fmt.Errorf("credentials from environment: %w", err)
	}
	cfg := aws.NewConfig().
		WithRegion(client.region).
		WithMaxRetries(4).
		WithCredentials(creds).
		WithLogLevel(aws.LogDebug)

	if client.env.Env == "dev" && len(client.env.AwsEndpoint) > 0 {
		cfg = cfg.WithEndpoint(client.env.AwsEndpoint).
			WithS3ForcePathStyle(true)
	}
	return cfg, nil
}

// acquireNewSession prefers the instance role and falls back to static
// credentials from the environment.
func (client *Client) acquireNewSession() error {
	client.holder.curr = nil
	if sess, err := verifiedSession(client.instanceConfig()); err == nil {
		client.holder.curr = sess
		clientLogger.Info().Msg("S3 session successfully initialized using EC2")
		return nil
	}
	clientLogger.Info().Msg("Could not initialize S3 session using EC2, trying env credentials")
	cfg, err := client.envConfig()
	if err != nil {
		clientLogger.Error().Err(err).Msg("Error with credentials from environment")
		return err
	}
	sess, err := verifiedSession(cfg)
	if err != nil {
		clientLogger.Error().Err(err).Msg("Could not initialize S3 session")
		return fmt.Errorf("could not initialize S3 session: %w", err)
	}
	client.holder.curr = sess
	clientLogger.Info().Msg("S3 session successfully initialized using env credentials")
	return nil
}

func verifiedSession(cfg *aws.Config) (*session.Session, error) {
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, err
	}
	if _, err = sts.New(sess).GetCallerIdentity(&sts.GetCallerIdentityInput{}); err != nil {
		return nil, err
	}
	return sess, nil
}

func keyLogger(base zerolog.Logger, bucket, key *string) zerolog.Logger {
	return base.With().
		Str("key", *key).
		Str("bucket", *bucket).Logger()
}

type s3Logger struct {
	log zerolog.Logger
}

func (l *s3Logger) Log(v ...interface{}) {
	l.log.Debug().Msg(fmt.Sprint(v...))
}
